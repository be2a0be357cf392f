package numerology

// meaning holds the interpretation attached to a number.
type meaning struct {
	Theme         string
	Quality       string
	Keywords      []string
	Favorable     []string
	Challenging   []string
	MasterMessage string
}

var meanings = map[int]meaning{
	1: {
		Theme:       "New Beginnings & Independence",
		Quality:     "Active",
		Keywords:    []string{"initiative", "leadership", "independence", "pioneering"},
		Favorable:   []string{"Starting projects", "Taking initiative", "Self-promotion"},
		Challenging: []string{"Teamwork", "Patience", "Following others"},
	},
	2: {
		Theme:       "Partnership & Balance",
		Quality:     "Receptive",
		Keywords:    []string{"cooperation", "diplomacy", "sensitivity", "patience"},
		Favorable:   []string{"Collaboration", "Listening", "Mediation", "Details"},
		Challenging: []string{"Quick decisions", "Standing alone", "Confrontation"},
	},
	3: {
		Theme:       "Expression & Creativity",
		Quality:     "Creative",
		Keywords:    []string{"communication", "joy", "creativity", "self-expression"},
		Favorable:   []string{"Creative work", "Social events", "Writing", "Speaking"},
		Challenging: []string{"Routine tasks", "Discipline", "Serious matters"},
	},
	4: {
		Theme:       "Foundation & Structure",
		Quality:     "Stable",
		Keywords:    []string{"discipline", "organization", "hard work", "foundation"},
		Favorable:   []string{"Planning", "Building", "Organization", "Practical tasks"},
		Challenging: []string{"Spontaneity", "Change", "Taking risks"},
	},
	5: {
		Theme:       "Change & Freedom",
		Quality:     "Dynamic",
		Keywords:    []string{"freedom", "adventure", "change", "versatility"},
		Favorable:   []string{"Travel", "Variety", "Adaptability", "New experiences"},
		Challenging: []string{"Routine", "Commitment", "Long-term planning"},
	},
	6: {
		Theme:       "Responsibility & Nurturing",
		Quality:     "Nurturing",
		Keywords:    []string{"home", "family", "responsibility", "service"},
		Favorable:   []string{"Family matters", "Home projects", "Caregiving", "Teaching"},
		Challenging: []string{"Personal freedom", "Saying no", "Self-focus"},
	},
	7: {
		Theme:       "Introspection & Wisdom",
		Quality:     "Spiritual",
		Keywords:    []string{"analysis", "spirituality", "wisdom", "solitude"},
		Favorable:   []string{"Research", "Meditation", "Study", "Reflection"},
		Challenging: []string{"Social events", "Quick decisions", "Surface matters"},
	},
	8: {
		Theme:       "Abundance & Power",
		Quality:     "Material",
		Keywords:    []string{"success", "power", "abundance", "manifestation"},
		Favorable:   []string{"Business", "Financial matters", "Authority", "Achievement"},
		Challenging: []string{"Letting go", "Emotional matters", "Spiritual pursuits"},
	},
	9: {
		Theme:       "Completion & Humanitarianism",
		Quality:     "Universal",
		Keywords:    []string{"completion", "humanitarianism", "wisdom", "endings"},
		Favorable:   []string{"Finishing projects", "Giving", "Release", "Global thinking"},
		Challenging: []string{"New beginnings", "Personal gain", "Attachment"},
	},
	11: {
		Theme:         "Illumination & Intuition (Master Number)",
		Quality:       "Inspirational",
		Keywords:      []string{"intuition", "inspiration", "illumination", "idealism"},
		Favorable:     []string{"Spiritual work", "Inspiration", "Teaching", "Healing"},
		Challenging:   []string{"Grounding", "Practical matters", "Self-doubt"},
		MasterMessage: "Master Number 11 active - heightened intuition and spiritual insight available. Trust your inner guidance.",
	},
	22: {
		Theme:         "Master Builder (Master Number)",
		Quality:       "Manifesting",
		Keywords:      []string{"vision", "practical idealism", "large projects", "legacy"},
		Favorable:     []string{"Large-scale projects", "Manifestation", "Building systems"},
		Challenging:   []string{"Small thinking", "Impatience", "Overwhelm"},
		MasterMessage: "Master Number 22 active - potential for manifesting grand visions into reality. Think big but act practically.",
	},
	33: {
		Theme:         "Master Teacher (Master Number)",
		Quality:       "Compassionate",
		Keywords:      []string{"compassion", "healing", "teaching", "selfless service"},
		Favorable:     []string{"Teaching", "Healing", "Compassionate service", "Guidance"},
		Challenging:   []string{"Self-care", "Boundaries", "Personal needs"},
		MasterMessage: "Master Number 33 active - profound healing and teaching energy available. Serve with love but maintain boundaries.",
	},
}

// meaningFor looks up the interpretation for a number, falling back to 1 for
// anything outside the reduced set.
func meaningFor(n int) meaning {
	if m, ok := meanings[n]; ok {
		return m
	}
	return meanings[1]
}
