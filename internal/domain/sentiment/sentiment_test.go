package sentiment

import (
	"testing"
)

func TestScoreOrdering(t *testing.T) {
	negative := Score("I feel betrayed and angry and hurt")
	positive := Score("I feel happy")

	if negative >= positive {
		t.Errorf("expected %q to score below %q, got %d vs %d",
			"I feel betrayed and angry and hurt", "I feel happy", negative, positive)
	}
	if negative >= 0 {
		t.Errorf("expected negative score, got %d", negative)
	}
}

func TestLabelThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  Label
	}{
		{3, LabelVeryPositive},
		{2, LabelPositive},
		{1, LabelPositive},
		{0, LabelNeutral},
		{-1, LabelNegative},
		{-2, LabelNegative},
		{-3, LabelVeryNegative},
	}

	for _, tt := range tests {
		if got := LabelFor(tt.score); got != tt.want {
			t.Errorf("LabelFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAnalyzeUnknownTokens(t *testing.T) {
	result := Analyze("quarterly synergy alignment")
	if result.Score != 0 {
		t.Errorf("unknown tokens should contribute zero, got %d", result.Score)
	}
	if result.Label != LabelNeutral {
		t.Errorf("expected neutral label, got %q", result.Label)
	}
}

func TestAnalyzePunctuationAndCase(t *testing.T) {
	a := Score("I'm ANGRY, betrayed!")
	b := Score("i'm angry betrayed")
	if a != b {
		t.Errorf("case and punctuation should not change the score: %d vs %d", a, b)
	}
}

func TestTopics(t *testing.T) {
	topics := Topics([]string{
		"My manager keeps spreading gossip",
		"I doubt myself on every deadline",
	})

	want := map[string]bool{
		"work relationships": true,
		"workload":           true,
		"confidence":         true,
	}
	if len(topics) != len(want) {
		t.Fatalf("expected %d topics, got %v", len(want), topics)
	}
	for _, topic := range topics {
		if !want[topic] {
			t.Errorf("unexpected topic %q", topic)
		}
	}
}

func TestTopicsEmpty(t *testing.T) {
	if topics := Topics(nil); len(topics) != 0 {
		t.Errorf("expected no topics, got %v", topics)
	}
}
