package dbschema

import (
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/strength"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Strength{})
}

// Strength is one row of a user's ranked strengths list.
type Strength struct {
	BaseModel
	UserID string `gorm:"type:varchar(100);uniqueIndex:idx_strength_user_rank;not null"`
	Rank   int    `gorm:"uniqueIndex:idx_strength_user_rank;not null"`
	Name   string `gorm:"type:varchar(100);not null"`
	Domain string `gorm:"type:varchar(50)"`
}

// NewSchemaStrength converts a domain strength to its schema row.
func NewSchemaStrength(s *strength.Strength) *Strength {
	return &Strength{
		BaseModel: BaseModel{ID: s.ID},
		UserID:    s.UserID,
		Rank:      s.Rank,
		Name:      s.Name,
		Domain:    s.Domain,
	}
}

// EtoD converts the schema row to its domain strength.
func (s *Strength) EtoD() *strength.Strength {
	return &strength.Strength{
		ID:        s.ID,
		UserID:    s.UserID,
		Rank:      s.Rank,
		Name:      s.Name,
		Domain:    s.Domain,
		UpdatedAt: s.UpdatedAt,
	}
}
