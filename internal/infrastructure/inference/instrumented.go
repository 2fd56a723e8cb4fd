package inference

import (
	"context"
	"time"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coaching"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/phase"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/metrics"
)

// InstrumentedClient decorates a CompletionClient with latency and failure
// metrics. Fallback counting lives here too: every failed completion becomes
// a fallback reply upstream.
type InstrumentedClient struct {
	inner    coaching.CompletionClient
	provider string
	metrics  *metrics.Metrics
}

var _ coaching.CompletionClient = (*InstrumentedClient)(nil)

// NewInstrumentedClient wraps inner with the given metrics.
func NewInstrumentedClient(inner coaching.CompletionClient, provider string, m *metrics.Metrics) *InstrumentedClient {
	return &InstrumentedClient{inner: inner, provider: provider, metrics: m}
}

// Complete implements coaching.CompletionClient.
func (c *InstrumentedClient) Complete(ctx context.Context, systemPrompt string, history []phase.Turn, userMessage string) (string, error) {
	start := time.Now()
	text, err := c.inner.Complete(ctx, systemPrompt, history, userMessage)
	c.metrics.CompletionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderFailures.WithLabelValues(c.provider).Inc()
		c.metrics.FallbacksTotal.Inc()
	}
	return text, err
}
