// Package phase derives the coaching-conversation phase from recent turns.
//
// The phase is never stored: it is recomputed from persisted history on every
// turn, so clearing a conversation's history automatically resets it to
// exploration, and a client can never spoof its own phase.
package phase

// Phase is a coarse stage of a coaching conversation.
type Phase string

const (
	Exploration   Phase = "exploration"
	Understanding Phase = "understanding"
	GoalSetting   Phase = "goalSetting"
	Strengths     Phase = "strengths"
	Ethics        Phase = "ethics"
)

// next returns the phase that follows p in the normal progression.
// Strengths is terminal.
func (p Phase) next() Phase {
	switch p {
	case Exploration:
		return Understanding
	case Understanding:
		return GoalSetting
	case GoalSetting:
		return Strengths
	case Strengths:
		return Strengths
	case Ethics:
		return Exploration
	default:
		return Exploration
	}
}

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	switch p {
	case Exploration, Understanding, GoalSetting, Strengths, Ethics:
		return true
	}
	return false
}

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is the slice of a conversation turn the classifier needs.
type Turn struct {
	Role Role
	Text string
}
