package phase

import "testing"

func user(text string) Turn      { return Turn{Role: RoleUser, Text: text} }
func assistant(text string) Turn { return Turn{Role: RoleAssistant, Text: text} }

func TestDeriveEmptyHistory(t *testing.T) {
	c := NewClassifier()
	if got := c.Derive(nil); got != Exploration {
		t.Errorf("empty history should derive exploration, got %q", got)
	}
}

func TestEthicsOverridePrecedence(t *testing.T) {
	c := NewClassifier()

	// Ethics keyword present alongside every other advancement signal.
	turns := []Turn{
		user("I feel angry and betrayed"),
		user("I feel sad because it affects my work"),
		user("I want to report the fraud my manager committed"),
	}

	if got := c.Derive(turns); got != Ethics {
		t.Errorf("ethics keyword must win over all other signals, got %q", got)
	}

	// And from any starting phase.
	for _, current := range []Phase{Exploration, Understanding, GoalSetting, Strengths} {
		if got := c.Advance(turns, current); got != Ethics {
			t.Errorf("Advance from %q with ethics keyword = %q, want ethics", current, got)
		}
	}
}

func TestEthicsReleasesWhenKeywordAgesOut(t *testing.T) {
	c := NewClassifier()

	// The window no longer contains the sensitive remark.
	turns := []Turn{
		user("Things are calmer now"),
	}
	if got := c.Advance(turns, Ethics); got == Ethics {
		t.Error("ethics phase should release once indicators leave the window")
	}
}

func TestTerminalStability(t *testing.T) {
	c := NewClassifier()
	turns := []Turn{
		user("I keep making progress on my plan"),
		assistant("(nodding thoughtfully) What will you try next?"),
	}

	for i := 0; i < 3; i++ {
		if got := c.Advance(turns, Strengths); got != Strengths {
			t.Fatalf("strengths must be terminal, got %q on call %d", got, i+1)
		}
	}
}

func TestFrustrationOverride(t *testing.T) {
	c := NewClassifier()
	turns := []Turn{
		assistant("How do you feel about that?"),
		user("It was hard."),
		assistant("And how does that make you feel?"),
		user("Enough, I already told you."),
	}

	if got := c.Derive(turns); got != GoalSetting {
		t.Errorf("repeated feeling questions plus frustration should force goalSetting, got %q", got)
	}
}

func TestStallDetectorAlone(t *testing.T) {
	c := NewClassifier()
	turns := []Turn{
		assistant("How do you feel about the change?"),
		user("Not sure."),
		assistant("What feelings come up for you?"),
	}

	if got := c.Advance(turns, Exploration); got != GoalSetting {
		t.Errorf("two same-theme questions should trip the stall detector, got %q", got)
	}
}

func TestNormalProgression(t *testing.T) {
	c := NewClassifier()

	// Exploration holds until enough emotional language accumulates.
	turns := []Turn{user("My new role started last month.")}
	if got := c.Derive(turns); got != Exploration {
		t.Fatalf("expected exploration, got %q", got)
	}

	turns = append(turns, user("I feel anxious about it."))
	if got := c.Derive(turns); got != Exploration {
		t.Fatalf("one emotional turn should not advance, got %q", got)
	}

	turns = append(turns, user("Honestly I feel overwhelmed most days."))
	if got := c.Derive(turns); got != Understanding {
		t.Fatalf("expected understanding after repeated emotional language, got %q", got)
	}

	turns = append(turns, user("It affects my sleep because I cannot switch off."))
	if got := c.Derive(turns); got != GoalSetting {
		t.Fatalf("expected goalSetting after impact language, got %q", got)
	}

	turns = append(turns, user("I want to set better boundaries."))
	if got := c.Derive(turns); got != Strengths {
		t.Fatalf("expected strengths after desire language, got %q", got)
	}
}

func TestUnderstandingTurnLimit(t *testing.T) {
	c := NewClassifier()
	turns := make([]Turn, 0, understandingTurnLimit)
	for i := 0; i < understandingTurnLimit; i++ {
		turns = append(turns, assistant("Tell me more."))
	}

	if got := c.Advance(turns, Understanding); got != GoalSetting {
		t.Errorf("understanding should advance on turn count alone, got %q", got)
	}
}

func TestInvalidCurrentPhase(t *testing.T) {
	c := NewClassifier()
	if got := c.Advance(nil, Phase("bogus")); got != Exploration {
		t.Errorf("unknown phase should normalise to exploration, got %q", got)
	}
}
