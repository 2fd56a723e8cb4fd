package dbschema

import (
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/note"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(CoachingNote{})
}

// CoachingNote is a stored coaching note.
type CoachingNote struct {
	BaseModel
	UserID  string     `gorm:"type:varchar(100);index;not null"`
	Title   string     `gorm:"type:varchar(256);not null"`
	Content string     `gorm:"type:text;not null"`
	Tags    StringList `gorm:"type:jsonb"`
}

// NewSchemaNote converts a domain note to its schema row.
func NewSchemaNote(n *note.Note) *CoachingNote {
	return &CoachingNote{
		BaseModel: BaseModel{ID: n.ID},
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      StringList(n.Tags),
	}
}

// EtoD converts the schema row to its domain note.
func (n *CoachingNote) EtoD() *note.Note {
	return &note.Note{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      []string(n.Tags),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
