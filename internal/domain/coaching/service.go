package coaching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coachprompt"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/phase"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/sentiment"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/strength"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/functional"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

const effectivenessCapacity = 64

// TurnResult is what one submitted turn produces.
type TurnResult struct {
	ResponseText string      `json:"response_text"`
	Phase        phase.Phase `json:"phase"`
	Emotions     []string    `json:"emotions"`
}

// Options tune the orchestrator.
type Options struct {
	// HistoryWindow is how many recent exchanges feed phase classification
	// and completion history.
	HistoryWindow int
	// TopStrengths is how many ranked strengths the composer may reference.
	TopStrengths int
	// FallbackSeed seeds the canned-response picker; zero means time-based.
	FallbackSeed int64
}

// Service is the coaching-turn orchestrator.
type Service struct {
	exchanges  ExchangeRepository
	strengths  *strength.Service
	completion CompletionClient
	classifier *phase.Classifier
	fallback   *FallbackResponder
	effect     *effectivenessLog
	opts       Options
	log        zerolog.Logger
}

// NewService wires the orchestrator.
func NewService(
	exchanges ExchangeRepository,
	strengths *strength.Service,
	completion CompletionClient,
	opts Options,
	log zerolog.Logger,
) *Service {
	if opts.HistoryWindow < 1 {
		opts.HistoryWindow = 10
	}
	if opts.TopStrengths < 1 {
		opts.TopStrengths = 5
	}
	if opts.FallbackSeed == 0 {
		opts.FallbackSeed = time.Now().UnixNano()
	}
	return &Service{
		exchanges:  exchanges,
		strengths:  strengths,
		completion: completion,
		classifier: phase.NewClassifier(),
		fallback:   NewFallbackResponder(opts.FallbackSeed),
		effect:     newEffectivenessLog(effectivenessCapacity),
		opts:       opts,
		log:        log.With().Str("component", "coaching-service").Logger(),
	}
}

// SubmitTurn handles one user message end to end. Provider failures never
// escape: they resolve to a fallback reply. The only errors returned are
// validation failures and store read/write failures.
func (s *Service) SubmitTurn(ctx context.Context, userID, conversationID, message string) (*TurnResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "message must not be empty", fmt.Errorf("empty message"))
	}
	if strings.TrimSpace(conversationID) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "conversation id must not be empty", fmt.Errorf("empty conversation id"))
	}

	tagged := sentiment.Analyze(message)

	recent, err := s.exchanges.GetRecent(ctx, conversationID, s.opts.HistoryWindow)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load conversation history")
	}

	history := historyTurns(recent)
	window := append(history, phase.Turn{Role: phase.RoleUser, Text: message})
	currentPhase := s.classifier.Derive(window)

	emotions := []string{string(tagged.Label)}
	topics := sentiment.Topics(append(recentQuestions(recent), message))

	ranked, err := s.topStrengths(ctx, userID)
	if err != nil {
		// Strengths are context, not a prerequisite; coach without them.
		s.log.Warn().Err(err).Str("user_id", userID).Msg("strengths unavailable, composing without them")
		ranked = nil
	}

	systemPrompt := coachprompt.Compose(coachprompt.Input{
		Phase:     currentPhase,
		Strengths: ranked,
		Emotions:  emotions,
		Topics:    topics,
	})

	responseText, completionErr := s.completion.Complete(ctx, systemPrompt, history, message)
	if completionErr != nil || strings.TrimSpace(responseText) == "" {
		s.log.Warn().
			Err(completionErr).
			Str("conversation_id", conversationID).
			Str("phase", string(currentPhase)).
			Int("prompt_bytes", len(systemPrompt)).
			Msg("completion failed, using fallback response")
		responseText = s.fallback.Respond(emotions, ranked)
	}

	s.recordEffectiveness(recent, currentPhase, tagged.Score)

	exchange := &Exchange{
		ConversationID: conversationID,
		UserID:         userID,
		Question:       message,
		Answer:         responseText,
		SentimentScore: tagged.Score,
		Emotions:       emotions,
		Phase:          string(currentPhase),
	}
	if err := s.exchanges.Append(ctx, exchange); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to store exchange")
	}

	return &TurnResult{
		ResponseText: responseText,
		Phase:        currentPhase,
		Emotions:     emotions,
	}, nil
}

// RecentExchanges returns up to limit stored exchanges, oldest first.
func (s *Service) RecentExchanges(ctx context.Context, conversationID string, limit int) ([]*Exchange, error) {
	if limit < 1 {
		limit = s.opts.HistoryWindow
	}
	exchanges, err := s.exchanges.GetRecent(ctx, conversationID, limit)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load exchanges")
	}
	return exchanges, nil
}

// ClearHistory wipes the conversation. Phase is derived from history, so the
// next turn classifies as exploration without any explicit reset.
func (s *Service) ClearHistory(ctx context.Context, conversationID string) error {
	if err := s.exchanges.Clear(ctx, conversationID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to clear conversation")
	}
	return nil
}

// PhaseEffectiveness reports the mean sentiment shift observed after replies
// generated in the given phase. Advisory only.
func (s *Service) PhaseEffectiveness(p phase.Phase) (float64, bool) {
	return s.effect.averageDelta(p)
}

func (s *Service) topStrengths(ctx context.Context, userID string) ([]coachprompt.RankedStrength, error) {
	top, err := s.strengths.Top(ctx, userID, s.opts.TopStrengths)
	if err != nil {
		return nil, err
	}
	return functional.Map(top, func(str *strength.Strength) coachprompt.RankedStrength {
		return coachprompt.RankedStrength{Rank: str.Rank, Name: str.Name}
	}), nil
}

// recordEffectiveness attributes the sentiment shift between the previous
// user message and this one to the phase of the previous reply.
func (s *Service) recordEffectiveness(recent []*Exchange, _ phase.Phase, currentScore int) {
	if len(recent) == 0 {
		return
	}
	last := recent[len(recent)-1]
	s.effect.record(phase.Phase(last.Phase), currentScore-last.SentimentScore)
}

func historyTurns(exchanges []*Exchange) []phase.Turn {
	turns := make([]phase.Turn, 0, len(exchanges)*2)
	for _, exchange := range exchanges {
		turns = append(turns, exchange.Turns()...)
	}
	return turns
}

func recentQuestions(exchanges []*Exchange) []string {
	return functional.Map(exchanges, func(e *Exchange) string { return e.Question })
}
