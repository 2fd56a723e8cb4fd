package coaching

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coachprompt"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/sentiment"
)

var fallbackAcknowledgements = []string{
	"I hear how important this is to you.",
	"This sounds like a challenging situation.",
	"Thank you for sharing that with me.",
	"I can sense there's a lot to explore here.",
}

var fallbackQuestions = []string{
	"Could you tell me more about what this means for you?",
	"What aspects of this situation feel most important to address?",
	"How are you feeling about this right now?",
	"What would you like to focus on as we discuss this?",
}

// FallbackResponder produces canned, context-flavoured replies when the
// completion provider is unavailable, so a conversation never dead-ends.
type FallbackResponder struct {
	rng *rand.Rand
}

// NewFallbackResponder creates a responder seeded with the given source.
func NewFallbackResponder(seed int64) *FallbackResponder {
	return &FallbackResponder{rng: rand.New(rand.NewSource(seed))}
}

// Respond assembles a reply that opens with a body-language cue, acknowledges
// available emotional context, references a strength only when one was
// actually supplied, and always closes with an open question.
func (f *FallbackResponder) Respond(emotions []string, strengths []coachprompt.RankedStrength) string {
	var b strings.Builder

	b.WriteString(coachprompt.BodyLanguageCues[f.rng.Intn(len(coachprompt.BodyLanguageCues))])
	b.WriteString(" ")

	if len(emotions) > 0 && emotions[0] != string(sentiment.LabelNeutral) {
		fmt.Fprintf(&b, "I'm noticing something %s in what you shared. ", emotions[0])
	}

	b.WriteString(fallbackAcknowledgements[f.rng.Intn(len(fallbackAcknowledgements))])
	b.WriteString(" ")

	if len(strengths) > 0 {
		fmt.Fprintf(&b, "I also remember your #%d strength, %s, which may be worth keeping in mind here. ",
			strengths[0].Rank, strengths[0].Name)
	}

	b.WriteString(fallbackQuestions[f.rng.Intn(len(fallbackQuestions))])
	return b.String()
}
