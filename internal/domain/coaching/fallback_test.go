package coaching

import (
	"strings"
	"testing"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coachprompt"
)

func TestFallbackShape(t *testing.T) {
	responder := NewFallbackResponder(42)

	for i := 0; i < 20; i++ {
		reply := responder.Respond([]string{"negative"}, nil)

		hasCue := false
		for _, cue := range coachprompt.BodyLanguageCues {
			if strings.HasPrefix(reply, cue) {
				hasCue = true
				break
			}
		}
		if !hasCue {
			t.Errorf("reply must open with a body-language cue: %q", reply)
		}
		if !strings.HasSuffix(reply, "?") {
			t.Errorf("reply must end with an open question: %q", reply)
		}
	}
}

func TestFallbackStrengthReference(t *testing.T) {
	responder := NewFallbackResponder(7)

	with := responder.Respond(nil, []coachprompt.RankedStrength{{Rank: 1, Name: "Learner"}})
	if !strings.Contains(with, "#1 strength, Learner") {
		t.Errorf("supplied strength should be cited with its rank: %q", with)
	}

	without := responder.Respond(nil, nil)
	if strings.Contains(without, "strength") {
		t.Errorf("no strength supplied, none may be referenced: %q", without)
	}
}

func TestFallbackNeutralEmotionSkipsAcknowledgement(t *testing.T) {
	responder := NewFallbackResponder(11)
	reply := responder.Respond([]string{"neutral"}, nil)
	if strings.Contains(reply, "I'm noticing something") {
		t.Errorf("neutral sentiment should not be called out: %q", reply)
	}
}
