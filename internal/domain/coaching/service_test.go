package coaching

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/phase"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/strength"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

// memoryExchangeRepo is an in-memory ExchangeRepository.
type memoryExchangeRepo struct {
	byConversation map[string][]*Exchange
	nextID         uint
	failAppend     bool
}

func newMemoryExchangeRepo() *memoryExchangeRepo {
	return &memoryExchangeRepo{byConversation: make(map[string][]*Exchange)}
}

func (m *memoryExchangeRepo) Append(ctx context.Context, exchange *Exchange) error {
	if m.failAppend {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "append failed", fmt.Errorf("disk full"))
	}
	m.nextID++
	exchange.ID = m.nextID
	m.byConversation[exchange.ConversationID] = append(m.byConversation[exchange.ConversationID], exchange)
	return nil
}

func (m *memoryExchangeRepo) GetRecent(_ context.Context, conversationID string, limit int) ([]*Exchange, error) {
	all := m.byConversation[conversationID]
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (m *memoryExchangeRepo) Clear(_ context.Context, conversationID string) error {
	delete(m.byConversation, conversationID)
	return nil
}

// stubCompletion returns a fixed reply or a provider error.
type stubCompletion struct {
	reply string
	fail  bool
	calls int
}

func (s *stubCompletion) Complete(ctx context.Context, _ string, _ []phase.Turn, _ string) (string, error) {
	s.calls++
	if s.fail {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeProvider, "provider unreachable", fmt.Errorf("connection refused"))
	}
	return s.reply, nil
}

func newTestService(repo ExchangeRepository, completion CompletionClient) *Service {
	strengthSvc := strength.NewService(&stubStrengthRepo{})
	return NewService(repo, strengthSvc, completion, Options{FallbackSeed: 1}, zerolog.Nop())
}

type stubStrengthRepo struct {
	strengths []*strength.Strength
}

func (s *stubStrengthRepo) ReplaceAll(_ context.Context, _ string, strengths []*strength.Strength) error {
	s.strengths = strengths
	return nil
}

func (s *stubStrengthRepo) ListByUser(_ context.Context, _ string) ([]*strength.Strength, error) {
	return s.strengths, nil
}

func TestSubmitTurnRoundTrip(t *testing.T) {
	repo := newMemoryExchangeRepo()
	svc := newTestService(repo, &stubCompletion{reply: "(nodding thoughtfully) Tell me more. What feels most alive for you?"})
	ctx := context.Background()

	result, err := svc.SubmitTurn(ctx, "u1", "2024-01-01", "Hello")
	if err != nil {
		t.Fatalf("SubmitTurn: %v", err)
	}
	if result.ResponseText == "" {
		t.Fatal("empty response text")
	}

	exchanges, err := svc.RecentExchanges(ctx, "2024-01-01", 10)
	if err != nil {
		t.Fatalf("RecentExchanges: %v", err)
	}
	if len(exchanges) != 1 {
		t.Fatalf("expected exactly one stored exchange, got %d", len(exchanges))
	}
	if exchanges[0].Question != "Hello" {
		t.Errorf("question not preserved verbatim: %q", exchanges[0].Question)
	}
	if exchanges[0].Answer != result.ResponseText {
		t.Error("stored answer differs from returned response")
	}
}

func TestSubmitTurnFallbackGuarantee(t *testing.T) {
	repo := newMemoryExchangeRepo()
	completion := &stubCompletion{fail: true}
	svc := newTestService(repo, completion)

	result, err := svc.SubmitTurn(context.Background(), "u1", "conv", "I feel betrayed by my manager")
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if strings.TrimSpace(result.ResponseText) == "" {
		t.Fatal("fallback produced empty response")
	}
	if !strings.HasSuffix(strings.TrimSpace(result.ResponseText), "?") {
		t.Errorf("fallback must end with an open question: %q", result.ResponseText)
	}
	if completion.calls != 1 {
		t.Errorf("expected exactly one completion attempt (no retries), got %d", completion.calls)
	}
}

func TestSubmitTurnEmptyMessage(t *testing.T) {
	svc := newTestService(newMemoryExchangeRepo(), &stubCompletion{reply: "ok?"})

	_, err := svc.SubmitTurn(context.Background(), "u1", "conv", "   ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !platformerrors.IsType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error type, got %v", err)
	}
}

func TestSubmitTurnPersistenceErrorSurfaces(t *testing.T) {
	repo := newMemoryExchangeRepo()
	repo.failAppend = true
	svc := newTestService(repo, &stubCompletion{reply: "fine?"})

	_, err := svc.SubmitTurn(context.Background(), "u1", "conv", "Hello")
	if err == nil {
		t.Fatal("store failure must surface to the caller")
	}
	if !platformerrors.IsType(err, platformerrors.ErrorTypeDatabaseError) {
		t.Errorf("expected database error type, got %v", err)
	}
}

func TestClearHistoryResetsPhase(t *testing.T) {
	repo := newMemoryExchangeRepo()
	svc := newTestService(repo, &stubCompletion{reply: "(smiling warmly) And what else?"})
	ctx := context.Background()

	// Drive the conversation out of exploration.
	for _, message := range []string{
		"I feel angry about my review",
		"I feel hurt and overwhelmed by it",
		"It affects my motivation because I doubt myself",
	} {
		if _, err := svc.SubmitTurn(ctx, "u1", "conv", message); err != nil {
			t.Fatal(err)
		}
	}

	result, err := svc.SubmitTurn(ctx, "u1", "conv", "It really does.")
	if err != nil {
		t.Fatal(err)
	}
	if result.Phase == phase.Exploration {
		t.Fatalf("conversation should have advanced, still %q", result.Phase)
	}

	if err := svc.ClearHistory(ctx, "conv"); err != nil {
		t.Fatal(err)
	}

	result, err = svc.SubmitTurn(ctx, "u1", "conv", "Hello from a clean slate")
	if err != nil {
		t.Fatal(err)
	}
	if result.Phase != phase.Exploration {
		t.Errorf("cleared conversation must re-derive exploration, got %q", result.Phase)
	}
}

func TestSubmitTurnEthicsPhase(t *testing.T) {
	svc := newTestService(newMemoryExchangeRepo(), &stubCompletion{reply: "(making eye contact) Your safety matters. Who could you reach out to today?"})

	result, err := svc.SubmitTurn(context.Background(), "u1", "conv", "My manager asked me to commit fraud")
	if err != nil {
		t.Fatal(err)
	}
	if result.Phase != phase.Ethics {
		t.Errorf("expected ethics phase, got %q", result.Phase)
	}
}

func TestEffectivenessTracking(t *testing.T) {
	repo := newMemoryExchangeRepo()
	svc := newTestService(repo, &stubCompletion{reply: "(tilting head) What might a first step look like?"})
	ctx := context.Background()

	if _, err := svc.SubmitTurn(ctx, "u1", "conv", "I feel betrayed and angry"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SubmitTurn(ctx, "u1", "conv", "Actually I feel happy and grateful now"); err != nil {
		t.Fatal(err)
	}

	delta, ok := svc.PhaseEffectiveness(phase.Exploration)
	if !ok {
		t.Fatal("expected an effectiveness observation for exploration")
	}
	if delta <= 0 {
		t.Errorf("sentiment improved, expected positive delta, got %f", delta)
	}
}
