// Package coachprompt assembles the system instruction block handed to the
// completion provider. Composition is pure string assembly: the composer
// never fails, it only omits sections whose inputs are missing.
package coachprompt

import (
	"fmt"
	"strings"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/phase"
)

// RankedStrength is one entry of the client's ordered strengths list.
type RankedStrength struct {
	Rank int
	Name string
}

// Input carries everything the composer folds into the instruction block.
type Input struct {
	Phase     phase.Phase
	Strengths []RankedStrength
	Emotions  []string
	Topics    []string
}

// Compose builds the system prompt for the given phase and context.
//
// The strengths list is only surfaced in the strengths phase, and the
// instructions hard-require rank citations because the provider cannot be
// trusted to stay inside the supplied list on its own.
func Compose(in Input) string {
	var b strings.Builder
	b.WriteString(personaPreamble)
	b.WriteString("\n\n")
	b.WriteString(guidanceFor(in.Phase))

	if in.Phase == phase.Strengths && len(in.Strengths) > 0 {
		b.WriteString("\n\nThe client's top strengths, most intense first:\n")
		b.WriteString(FormatStrengths(in.Strengths))
	}

	if in.Phase != phase.Ethics {
		if len(in.Emotions) > 0 {
			fmt.Fprintf(&b, "\n\nDetected emotions: %s", strings.Join(in.Emotions, ", "))
		}
		if len(in.Topics) > 0 {
			fmt.Fprintf(&b, "\nKey topics discussed: %s", strings.Join(in.Topics, ", "))
		}
	}

	return b.String()
}

// guidanceFor is a closed dispatch over the phase enum; adding a phase without
// a guidance block is a compile-time-visible omission here rather than a
// silent map miss.
func guidanceFor(p phase.Phase) string {
	switch p {
	case phase.Ethics:
		return ethicsGuidance
	case phase.Understanding:
		return understandingGuidance
	case phase.GoalSetting:
		return goalSettingGuidance
	case phase.Strengths:
		return strengthsGuidance
	case phase.Exploration:
		return explorationGuidance
	default:
		return explorationGuidance
	}
}

// FormatStrengths renders the ranked list as "#rank Name" lines.
func FormatStrengths(strengths []RankedStrength) string {
	lines := make([]string, len(strengths))
	for i, s := range strengths {
		lines[i] = fmt.Sprintf("#%d %s", s.Rank, s.Name)
	}
	return strings.Join(lines, "\n")
}
