package coachprompt

import (
	"strings"
	"testing"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/phase"
)

func TestComposeStrengthsPhaseCitesRanks(t *testing.T) {
	prompt := Compose(Input{
		Phase: phase.Strengths,
		Strengths: []RankedStrength{
			{Rank: 1, Name: "Learner"},
			{Rank: 2, Name: "Achiever"},
			{Rank: 3, Name: "Strategic"},
		},
	})

	for _, want := range []string{"#1 Learner", "#2 Achiever", "#3 Strategic"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing ranked strength %q", want)
		}
	}
	if !strings.Contains(prompt, "Never mention any strength that is not in the list") {
		t.Error("prompt missing the hard constraint against invented strengths")
	}
}

func TestComposeOmitsStrengthsOutsideStrengthsPhase(t *testing.T) {
	strengths := []RankedStrength{{Rank: 1, Name: "Learner"}}

	for _, p := range []phase.Phase{phase.Exploration, phase.Understanding, phase.GoalSetting} {
		prompt := Compose(Input{Phase: p, Strengths: strengths})
		if strings.Contains(prompt, "Learner") {
			t.Errorf("phase %q must not surface strength names", p)
		}
	}
}

func TestComposeEmptyStrengthsList(t *testing.T) {
	prompt := Compose(Input{Phase: phase.Strengths})

	if strings.Contains(prompt, "top strengths, most intense first") {
		t.Error("empty strengths list must not emit a strengths section")
	}
	// The persona block is always present.
	if !strings.Contains(prompt, "body language cues") {
		t.Error("persona preamble missing")
	}
}

func TestComposeEthicsOverridesContext(t *testing.T) {
	prompt := Compose(Input{
		Phase:    phase.Ethics,
		Emotions: []string{"very negative"},
		Topics:   []string{"conflict"},
	})

	if !strings.Contains(prompt, "ethical or safety concern") {
		t.Error("ethics guidance missing")
	}
	if strings.Contains(prompt, "Detected emotions") || strings.Contains(prompt, "Key topics") {
		t.Error("ethics phase must suppress the normal coaching context")
	}
	if !strings.Contains(prompt, "referral") {
		t.Error("ethics guidance should direct toward referral")
	}
}

func TestComposeIncludesEmotionAndTopicContext(t *testing.T) {
	prompt := Compose(Input{
		Phase:    phase.Understanding,
		Emotions: []string{"negative"},
		Topics:   []string{"workload", "confidence"},
	})

	if !strings.Contains(prompt, "Detected emotions: negative") {
		t.Error("emotion context missing")
	}
	if !strings.Contains(prompt, "Key topics discussed: workload, confidence") {
		t.Error("topic context missing")
	}
}

func TestEveryPhaseHasGuidance(t *testing.T) {
	for _, p := range []phase.Phase{phase.Exploration, phase.Understanding, phase.GoalSetting, phase.Strengths, phase.Ethics} {
		prompt := Compose(Input{Phase: p})
		if len(prompt) <= len(personaPreamble) {
			t.Errorf("phase %q produced no guidance", p)
		}
	}
}
