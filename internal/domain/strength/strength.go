// Package strength manages a user's CliftonStrengths ranking. The ranking is
// replaced wholesale when re-submitted; the coaching core only ever reads the
// top few names in rank order.
package strength

import (
	"context"
	"time"
)

// Strength is one ranked entry of a user's strengths list.
type Strength struct {
	ID        uint      `json:"-"`
	UserID    string    `json:"-"`
	Rank      int       `json:"rank"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository is the persistence surface for rankings.
type Repository interface {
	// ReplaceAll swaps the user's entire ranking in one transaction.
	ReplaceAll(ctx context.Context, userID string, strengths []*Strength) error
	// ListByUser returns the user's ranking ordered by rank ascending.
	ListByUser(ctx context.Context, userID string) ([]*Strength, error)
}
