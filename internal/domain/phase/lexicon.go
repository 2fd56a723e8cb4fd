package phase

// ethicsKeywords force the ethics phase from any state. Matching is substring
// based on the lowercased turn text so multi-word phrases are caught.
var ethicsKeywords = []string{
	// self-harm
	"suicide", "kill myself", "hurt myself", "self-harm", "self harm", "end my life",
	// violence and abuse
	"violence", "violent", "assault", "abuse", "abusive", "threaten", "threatened",
	// illegality and fraud
	"illegal", "fraud", "embezzle", "bribe", "steal", "stolen", "blackmail",
	// discrimination and harassment
	"discriminat", "harass", "racist", "sexist",
}

// frustrationMarkers in the latest user message force an advance to
// goal-setting. These exist because early versions of the coach looped on
// "how do you feel" until users gave up.
var frustrationMarkers = []string{
	"enough",
	"already told",
	"already said",
	"again",
	"what?",
	"stop asking",
}

// emotionWords gate the exploration -> understanding transition.
var emotionWords = []string{
	"feel", "feeling", "felt", "emotion", "emotions",
	"angry", "sad", "happy", "frustrated", "anxious", "worried", "scared",
	"hurt", "betrayed", "lonely", "overwhelmed", "stressed", "upset",
}

// impactWords gate the understanding -> goalSetting transition.
var impactWords = []string{
	"impact", "because", "affects", "affect", "makes me", "causing", "caused",
	"result", "consequence",
}

// desireWords gate the goalSetting -> strengths transition.
var desireWords = []string{
	"want to", "wish", "would like", "need to", "hope to", "plan to", "goal is",
}

// questionThemes classify an assistant question so the stall detector can
// notice the coach circling on the same theme.
var questionThemes = map[string][]string{
	"feelings": {"feel", "feeling", "emotion", "emotions", "mood"},
	"impact":   {"impact", "affect", "affects", "influence", "consequence"},
	"goals":    {"goal", "achieve", "outcome", "change", "want"},
	"people":   {"who", "colleague", "manager", "team", "relationship"},
}
