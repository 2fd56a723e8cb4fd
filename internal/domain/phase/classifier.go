package phase

import (
	"strings"
)

const (
	// stallThreshold is how many same-theme assistant questions in a row count
	// as the coach being stuck.
	stallThreshold = 2

	// emotionHitThreshold is how many emotion-bearing user turns are needed
	// before moving past exploration.
	emotionHitThreshold = 2

	// understandingTurnLimit advances understanding -> goalSetting on turn
	// count alone, so a conversation cannot idle there forever.
	understandingTurnLimit = 6
)

// Classifier derives the conversation phase from a recent window of turns.
// It holds no per-conversation state; every call is a pure function of its
// inputs.
type Classifier struct{}

// NewClassifier returns a Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Derive recomputes the phase from scratch for the given recent window,
// starting from exploration and replaying the advancement rules over growing
// prefixes of the window. An empty window yields exploration.
//
// Only the window passed in is ever scanned, so an ethics keyword in a turn
// that has aged out of the window no longer pins the conversation to ethics.
func (c *Classifier) Derive(turns []Turn) Phase {
	current := Exploration
	for i := range turns {
		current = c.Advance(turns[:i+1], current)
	}
	return current
}

// Advance applies the transition rules once, in precedence order, and returns
// the (possibly unchanged) next phase.
func (c *Classifier) Advance(turns []Turn, current Phase) Phase {
	if !current.Valid() {
		current = Exploration
	}

	// 1. Ethics override: absolute priority, short-circuits everything else.
	if containsEthicsConcern(turns) {
		return Ethics
	}
	if current == Ethics {
		// Sticky only while indicators persist in the window.
		current = Exploration
	}

	// 2. Frustration/stall override.
	if current == Exploration || current == Understanding {
		if assistantIsStalling(turns) || userIsFrustrated(turns) {
			return GoalSetting
		}
	}

	// 3. Normal advancement.
	switch current {
	case Exploration:
		if countEmotionHits(turns) >= emotionHitThreshold {
			return current.next()
		}
	case Understanding:
		if containsImpactLanguage(turns) || len(turns) >= understandingTurnLimit {
			return current.next()
		}
	case GoalSetting:
		if containsDesireLanguage(turns) {
			return current.next()
		}
	case Strengths:
		return Strengths
	}

	return current
}

func containsEthicsConcern(turns []Turn) bool {
	for _, turn := range turns {
		text := strings.ToLower(turn.Text)
		for _, keyword := range ethicsKeywords {
			if strings.Contains(text, keyword) {
				return true
			}
		}
	}
	return false
}

// assistantIsStalling reports whether the assistant's trailing questions keep
// hitting the same theme.
func assistantIsStalling(turns []Turn) bool {
	var lastTheme string
	repeats := 0
	for _, turn := range turns {
		if turn.Role != RoleAssistant || !strings.Contains(turn.Text, "?") {
			continue
		}
		theme := questionTheme(turn.Text)
		if theme == "" {
			continue
		}
		if theme == lastTheme {
			repeats++
		} else {
			lastTheme = theme
			repeats = 1
		}
	}
	return repeats >= stallThreshold
}

// userIsFrustrated checks the latest user turn for frustration markers.
func userIsFrustrated(turns []Turn) bool {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role != RoleUser {
			continue
		}
		text := strings.ToLower(turns[i].Text)
		for _, marker := range frustrationMarkers {
			if strings.Contains(text, marker) {
				return true
			}
		}
		return false
	}
	return false
}

func questionTheme(text string) string {
	lower := strings.ToLower(text)
	for _, theme := range []string{"feelings", "impact", "goals", "people"} {
		for _, keyword := range questionThemes[theme] {
			if strings.Contains(lower, keyword) {
				return theme
			}
		}
	}
	return ""
}

func countEmotionHits(turns []Turn) int {
	hits := 0
	for _, turn := range turns {
		if turn.Role != RoleUser {
			continue
		}
		text := strings.ToLower(turn.Text)
		for _, word := range emotionWords {
			if strings.Contains(text, word) {
				hits++
				break
			}
		}
	}
	return hits
}

func containsImpactLanguage(turns []Turn) bool {
	return anyUserTurnContains(turns, impactWords)
}

func containsDesireLanguage(turns []Turn) bool {
	return anyUserTurnContains(turns, desireWords)
}

func anyUserTurnContains(turns []Turn, words []string) bool {
	for _, turn := range turns {
		if turn.Role != RoleUser {
			continue
		}
		text := strings.ToLower(turn.Text)
		for _, word := range words {
			if strings.Contains(text, word) {
				return true
			}
		}
	}
	return false
}
