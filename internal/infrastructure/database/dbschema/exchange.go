package dbschema

import (
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coaching"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(CoachingExchange{})
}

// CoachingExchange is the stored question/answer pair of one coaching turn.
type CoachingExchange struct {
	BaseModel
	ConversationID string     `gorm:"type:varchar(100);index:idx_exchange_conversation;not null"`
	UserID         string     `gorm:"type:varchar(100);index;not null"`
	Question       string     `gorm:"type:text;not null"`
	Answer         string     `gorm:"type:text;not null"`
	SentimentScore int        `gorm:"not null;default:0"`
	Emotions       StringList `gorm:"type:jsonb"`
	Phase          string     `gorm:"type:varchar(20);not null"`
}

// NewSchemaExchange converts a domain exchange to its schema row.
func NewSchemaExchange(e *coaching.Exchange) *CoachingExchange {
	return &CoachingExchange{
		BaseModel:      BaseModel{ID: e.ID, CreatedAt: e.CreatedAt},
		ConversationID: e.ConversationID,
		UserID:         e.UserID,
		Question:       e.Question,
		Answer:         e.Answer,
		SentimentScore: e.SentimentScore,
		Emotions:       StringList(e.Emotions),
		Phase:          e.Phase,
	}
}

// EtoD converts the schema row to its domain exchange.
func (e *CoachingExchange) EtoD() *coaching.Exchange {
	return &coaching.Exchange{
		ID:             e.ID,
		ConversationID: e.ConversationID,
		UserID:         e.UserID,
		Question:       e.Question,
		Answer:         e.Answer,
		SentimentScore: e.SentimentScore,
		Emotions:       []string(e.Emotions),
		Phase:          e.Phase,
		CreatedAt:      e.CreatedAt,
	}
}
