package note

import (
	"context"
	"fmt"
	"strings"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

// Service handles coaching-note business logic.
type Service struct {
	repo Repository
}

// NewService creates a note Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a note.
func (s *Service) Create(ctx context.Context, n *Note) (*Note, error) {
	if strings.TrimSpace(n.Title) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "note title is required", fmt.Errorf("empty title"))
	}
	if strings.TrimSpace(n.Content) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "note content is required", fmt.Errorf("empty content"))
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create note")
	}
	return n, nil
}

// List returns the user's notes, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*Note, error) {
	notes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list notes")
	}
	return notes, nil
}

// Delete removes one of the user's notes.
func (s *Service) Delete(ctx context.Context, userID string, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete note")
	}
	return nil
}
