package strength

import (
	"context"
	"testing"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

type fakeRepo struct {
	byUser map[string][]*Strength
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUser: make(map[string][]*Strength)}
}

func (f *fakeRepo) ReplaceAll(_ context.Context, userID string, strengths []*Strength) error {
	f.byUser[userID] = strengths
	return nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string) ([]*Strength, error) {
	return f.byUser[userID], nil
}

func ranking(names ...string) []*Strength {
	strengths := make([]*Strength, len(names))
	for i, name := range names {
		strengths[i] = &Strength{Rank: i + 1, Name: name}
	}
	return strengths
}

func TestReplaceValidRanking(t *testing.T) {
	svc := NewService(newFakeRepo())
	if err := svc.Replace(context.Background(), "u1", ranking("Learner", "Achiever", "Strategic")); err != nil {
		t.Fatalf("valid ranking rejected: %v", err)
	}
}

func TestReplaceRejectsBadRankings(t *testing.T) {
	tests := []struct {
		name      string
		strengths []*Strength
	}{
		{"empty", nil},
		{"duplicate rank", []*Strength{{Rank: 1, Name: "Learner"}, {Rank: 1, Name: "Achiever"}}},
		{"rank out of range", []*Strength{{Rank: 1, Name: "Learner"}, {Rank: 3, Name: "Achiever"}}},
		{"duplicate name", []*Strength{{Rank: 1, Name: "Learner"}, {Rank: 2, Name: "learner"}}},
		{"blank name", []*Strength{{Rank: 1, Name: "  "}}},
	}

	svc := NewService(newFakeRepo())
	for _, tt := range tests {
		err := svc.Replace(context.Background(), "u1", tt.strengths)
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		if !platformerrors.IsType(err, platformerrors.ErrorTypeValidation) {
			t.Errorf("%s: expected validation error type, got %v", tt.name, err)
		}
	}
}

func TestTopTruncates(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()
	if err := svc.Replace(ctx, "u1", ranking("Learner", "Achiever", "Strategic", "Relator", "Focus")); err != nil {
		t.Fatal(err)
	}

	top, err := svc.Top(ctx, "u1", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3, got %d", len(top))
	}
	if top[0].Name != "Learner" || top[2].Name != "Strategic" {
		t.Errorf("top strengths out of order: %v", top)
	}
}

func TestTopShortList(t *testing.T) {
	svc := NewService(newFakeRepo())
	top, err := svc.Top(context.Background(), "nobody", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("expected empty list for unknown user, got %v", top)
	}
}
