// Package note holds the coaching-notes feature: free-form notes a user keeps
// alongside their coaching conversations.
package note

import (
	"context"
	"time"
)

// Note is one coaching note.
type Note struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository is the persistence surface for notes.
type Repository interface {
	Create(ctx context.Context, note *Note) error
	ListByUser(ctx context.Context, userID string) ([]*Note, error)
	Delete(ctx context.Context, userID string, id uint) error
}
