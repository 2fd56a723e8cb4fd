package strength

import (
	"context"
	"fmt"
	"strings"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

// Service validates and persists strength rankings.
type Service struct {
	repo Repository
}

// NewService creates a strength Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Replace validates that the submitted list is a clean ranking and replaces
// the user's stored ranking with it.
func (s *Service) Replace(ctx context.Context, userID string, strengths []*Strength) error {
	if err := validateRanking(strengths); err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "invalid strengths ranking", err)
	}
	if err := s.repo.ReplaceAll(ctx, userID, strengths); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to replace strengths")
	}
	return nil
}

// List returns the user's full ranking, most intense first.
func (s *Service) List(ctx context.Context, userID string) ([]*Strength, error) {
	strengths, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list strengths")
	}
	return strengths, nil
}

// Top returns the user's top k strengths in rank order. A short or empty
// ranking returns what exists; the caller handles the empty case.
func (s *Service) Top(ctx context.Context, userID string, k int) ([]*Strength, error) {
	strengths, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(strengths) > k {
		strengths = strengths[:k]
	}
	return strengths, nil
}

// validateRanking checks that ranks form a permutation of 1..N with no
// duplicate names.
func validateRanking(strengths []*Strength) error {
	if len(strengths) == 0 {
		return fmt.Errorf("ranking is empty")
	}

	ranks := make(map[int]bool, len(strengths))
	names := make(map[string]bool, len(strengths))
	for _, str := range strengths {
		name := strings.TrimSpace(str.Name)
		if name == "" {
			return fmt.Errorf("strength at rank %d has no name", str.Rank)
		}
		if str.Rank < 1 || str.Rank > len(strengths) {
			return fmt.Errorf("rank %d out of range 1..%d", str.Rank, len(strengths))
		}
		if ranks[str.Rank] {
			return fmt.Errorf("duplicate rank %d", str.Rank)
		}
		if names[strings.ToLower(name)] {
			return fmt.Errorf("duplicate strength %q", name)
		}
		ranks[str.Rank] = true
		names[strings.ToLower(name)] = true
	}
	return nil
}
