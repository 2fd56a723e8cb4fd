// Package sentiment scores free text with a lexicon-based tagger. The scorer
// is a pure function: it sums per-token weights from a base lexicon extended
// with workplace-coaching terms, so unknown tokens simply contribute zero.
package sentiment

import (
	"strings"
	"unicode"
)

// Label is the coarse emotion classification derived from a score.
type Label string

const (
	LabelVeryPositive Label = "very positive"
	LabelPositive     Label = "positive"
	LabelNeutral      Label = "neutral"
	LabelNegative     Label = "negative"
	LabelVeryNegative Label = "very negative"
)

// Result pairs a raw sentiment score with its label.
type Result struct {
	Score int
	Label Label
}

// Score sums lexicon weights over the tokens of text.
func Score(text string) int {
	score := 0
	for _, token := range tokenize(text) {
		score += lexicon[token]
	}
	return score
}

// Analyze scores text and maps the score onto a Label.
func Analyze(text string) Result {
	score := Score(text)
	return Result{Score: score, Label: LabelFor(score)}
}

// LabelFor maps a score onto the coarse label thresholds.
func LabelFor(score int) Label {
	switch {
	case score > 2:
		return LabelVeryPositive
	case score > 0:
		return LabelPositive
	case score < -2:
		return LabelVeryNegative
	case score < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Topics returns the coaching topics mentioned across texts, in lexicon order,
// without duplicates.
func Topics(texts []string) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, topic := range topicOrder {
		if seen[topic] {
			continue
		}
		for _, text := range texts {
			if containsAnyToken(text, topicKeywords[topic]) {
				topics = append(topics, topic)
				seen[topic] = true
				break
			}
		}
	}
	return topics
}

func containsAnyToken(text string, keywords []string) bool {
	tokens := make(map[string]bool)
	for _, token := range tokenize(text) {
		tokens[token] = true
	}
	for _, keyword := range keywords {
		if tokens[keyword] {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}
