// Package coaching orchestrates one coaching turn: sentiment tagging, phase
// classification, prompt composition, the completion call and its fallback,
// and persistence of the resulting exchange.
package coaching

import (
	"context"
	"time"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/phase"
)

// Exchange is one stored question/answer pair. Exchanges are append-only and
// immutable once stored; insertion order defines recency.
type Exchange struct {
	ID             uint      `json:"id"`
	ConversationID string    `json:"conversation_id"`
	UserID         string    `json:"-"`
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	SentimentScore int       `json:"sentiment_score"`
	Emotions       []string  `json:"emotions,omitempty"`
	Phase          string    `json:"phase"`
	CreatedAt      time.Time `json:"created_at"`
}

// Turns expands the exchange into its user and assistant turns for phase
// classification.
func (e *Exchange) Turns() []phase.Turn {
	return []phase.Turn{
		{Role: phase.RoleUser, Text: e.Question},
		{Role: phase.RoleAssistant, Text: e.Answer},
	}
}

// ExchangeRepository is the conversation store. Losing a write here corrupts
// conversation continuity, so repository errors are the one class the caller
// surfaces to the user.
type ExchangeRepository interface {
	Append(ctx context.Context, exchange *Exchange) error
	// GetRecent returns up to limit exchanges for the conversation, oldest
	// first, taken from the newest end of the log.
	GetRecent(ctx context.Context, conversationID string, limit int) ([]*Exchange, error)
	// Clear deletes every exchange of the conversation.
	Clear(ctx context.Context, conversationID string) error
}

// CompletionClient is the remote chat-completion surface. Implementations
// classify every transport, HTTP and decode failure as a provider error so
// the orchestrator can fall back instead of propagating.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, history []phase.Turn, userMessage string) (string, error)
}
