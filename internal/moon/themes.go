package moon

// signTheme is the energy reading attached to a moon sign.
type signTheme struct {
	theme   string
	optimal []string
	avoid   []string
}

var signThemes = map[string]signTheme{
	"Aries": {
		theme:   "Action & Initiative",
		optimal: []string{"Starting new projects", "Physical activity", "Quick decisions"},
		avoid:   []string{"Patience-required tasks", "Delicate negotiations", "Long-term planning"},
	},
	"Taurus": {
		theme:   "Stability & Comfort",
		optimal: []string{"Financial planning", "Enjoying nature", "Cooking", "Sensual pleasures"},
		avoid:   []string{"Rushing", "Sudden changes", "Skipping meals"},
	},
	"Gemini": {
		theme:   "Communication & Curiosity",
		optimal: []string{"Writing", "Learning", "Short trips", "Networking"},
		avoid:   []string{"Detailed analysis", "Emotional depth", "Long-term commitments"},
	},
	"Cancer": {
		theme:   "Nurturing & Emotional Depth",
		optimal: []string{"Family time", "Home projects", "Self-care", "Emotional conversations"},
		avoid:   []string{"Confrontations", "Major business decisions", "Excessive socializing"},
	},
	"Leo": {
		theme:   "Creativity & Self-Expression",
		optimal: []string{"Creative projects", "Leadership", "Romance", "Public speaking"},
		avoid:   []string{"Humility tasks", "Background roles", "Criticism"},
	},
	"Virgo": {
		theme:   "Analysis & Service",
		optimal: []string{"Organizing", "Health routines", "Detail work", "Helping others"},
		avoid:   []string{"Big picture thinking", "Spontaneity", "Overlooking details"},
	},
	"Libra": {
		theme:   "Harmony & Partnership",
		optimal: []string{"Relationships", "Negotiations", "Art appreciation", "Social events"},
		avoid:   []string{"Confrontation", "Solo decisions", "Unbalanced situations"},
	},
	"Scorpio": {
		theme:   "Transformation & Depth",
		optimal: []string{"Deep research", "Psychological work", "Intimacy", "Endings/Beginnings"},
		avoid:   []string{"Superficial interactions", "Avoiding emotions", "Control issues"},
	},
	"Sagittarius": {
		theme:   "Expansion & Adventure",
		optimal: []string{"Travel", "Philosophy", "Higher learning", "Optimism"},
		avoid:   []string{"Details", "Confinement", "Pessimistic people"},
	},
	"Capricorn": {
		theme:   "Achievement & Structure",
		optimal: []string{"Career planning", "Long-term goals", "Discipline", "Authority"},
		avoid:   []string{"Spontaneity", "Emotional displays", "Shortcuts"},
	},
	"Aquarius": {
		theme:   "Innovation & Humanity",
		optimal: []string{"Technology", "Social causes", "Unconventional ideas", "Group activities"},
		avoid:   []string{"Tradition for tradition's sake", "Emotional demands", "Routine"},
	},
	"Pisces": {
		theme:   "Intuition & Compassion",
		optimal: []string{"Meditation", "Creative arts", "Spiritual practices", "Compassion"},
		avoid:   []string{"Harsh reality", "Strict boundaries", "Confrontation"},
	},
}
