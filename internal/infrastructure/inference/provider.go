package inference

import (
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/config"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coaching"
)

// NewCompletionClient selects the provider configured in COACH_PROVIDER.
func NewCompletionClient(cfg *config.Config, log zerolog.Logger) coaching.CompletionClient {
	client := newRestyClient(cfg.CompletionTimeout)
	switch cfg.CoachProvider {
	case config.ProviderQwen:
		return NewQwenClient(client, cfg.QwenBaseURL, cfg.QwenAPIKey, cfg.QwenModel, log)
	default:
		return NewOpenAIClient(client, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
	}
}

func newRestyClient(timeout time.Duration) *resty.Client {
	return resty.New().SetTimeout(timeout)
}
