package sentiment

// lexicon is the merged word-weight table. The base weights follow the usual
// AFINN-style scale (-5..5); the coaching extension assigns strong negative
// weight to emotionally charged workplace terms the base table misses or
// underweights.
var lexicon = map[string]int{
	// base lexicon (common subset)
	"happy":      3,
	"joy":        3,
	"great":      3,
	"good":       3,
	"love":       3,
	"excited":    3,
	"grateful":   3,
	"proud":      2,
	"hopeful":    2,
	"confident":  2,
	"calm":       2,
	"better":     2,
	"progress":   2,
	"success":    2,
	"thanks":     2,
	"thank":      2,
	"fine":       1,
	"okay":       1,
	"ok":         1,
	"bad":        -3,
	"sad":        -2,
	"worried":    -3,
	"anxious":    -2,
	"afraid":     -2,
	"scared":     -2,
	"tired":      -2,
	"stressed":   -2,
	"stress":     -2,
	"upset":      -2,
	"hate":       -3,
	"terrible":   -3,
	"awful":      -3,
	"worse":      -3,
	"hurt":       -2,
	"failed":     -2,
	"failure":    -2,
	"frustrated": -2,
	"hopeless":   -3,
	"depressed":  -3,

	// coaching-domain extension
	"betrayed":     -4,
	"angry":        -3,
	"gossip":       -2,
	"lonely":       -2,
	"isolated":     -2,
	"undermined":   -3,
	"excluded":     -2,
	"ignored":      -2,
	"humiliated":   -3,
	"overwhelmed":  -2,
	"micromanaged": -2,
	"unfair":       -2,
	"unappreciated": -2,
}

// topicKeywords maps a coaching topic to the tokens that indicate it. Topics
// are only ever used as prompt-composition context, never as hard state.
var topicKeywords = map[string][]string{
	"work relationships": {"colleague", "colleagues", "coworker", "coworkers", "boss", "manager", "team", "gossip"},
	"career growth":      {"promotion", "career", "growth", "opportunity", "role", "title"},
	"workload":           {"workload", "overtime", "deadline", "deadlines", "busy", "overwhelmed"},
	"confidence":         {"confidence", "confident", "doubt", "imposter", "insecure"},
	"leadership":         {"leadership", "leading", "lead", "delegate", "delegation"},
	"conflict":           {"conflict", "argument", "disagreement", "tension", "betrayed"},
}

// topicOrder fixes the output order of Topics.
var topicOrder = []string{
	"work relationships",
	"career growth",
	"workload",
	"confidence",
	"leadership",
	"conflict",
}
