package wellness

import (
	"fmt"
	"strings"

	"github.com/starfield-labs/almanac/internal/biorhythm"
	"github.com/starfield-labs/almanac/internal/moon"
)

// MorningRitual frames the start of the day.
type MorningRitual struct {
	WakeTime        string
	Intention       string
	Breathwork      string
	Movement        string
	DurationMinutes int
}

// Meditation is the day's sitting practice.
type Meditation struct {
	Technique       string
	DurationMinutes int
	OptimalTime     string
	FocusTheme      string
	Mantra          string
}

// Journaling holds the day's writing prompts.
type Journaling struct {
	MorningPrompt    string
	EveningPrompt    string
	ThemeExploration string
	GratitudeFocus   string
}

// EveningRitual frames the close of the day.
type EveningRitual struct {
	WindDownTime       string
	ScreenCutoff       string
	ReflectionPractice string
	SleepPreparation   string
	OptimalSleepTime   string
}

var breathworkByElement = map[string]string{
	"Fire":  "Breath of Fire (Kapalabhati) - 3 minutes",
	"Earth": "4-7-8 Breathing for grounding - 5 minutes",
	"Air":   "Alternate nostril breathing - 5 minutes",
	"Water": "Ocean breath (Ujjayi) - 5 minutes",
}

var movementByElement = map[string]string{
	"Fire":  "Sun salutations - energizing flow",
	"Earth": "Grounding yoga poses - stability focus",
	"Air":   "Dynamic stretching - varied movement",
	"Water": "Gentle flowing yoga - fluid motion",
}

// MorningRitualForDay assembles the wake-up routine from overall energy and
// moon element.
func MorningRitualForDay(moonReport moon.Report, bio biorhythm.Reading) MorningRitual {
	var wake string
	switch bio.OverallEnergy {
	case "High":
		wake = "6:00 AM - Rise with energy"
	case "Low":
		wake = "7:00 AM - Gentle awakening"
	default:
		wake = "6:30 AM - Balanced start"
	}

	breathwork, ok := breathworkByElement[moonReport.Element]
	if !ok {
		breathwork = "Deep belly breathing - 5 minutes"
	}
	movement, ok := movementByElement[moonReport.Element]
	if !ok {
		movement = "Gentle stretching - 10 minutes"
	}

	return MorningRitual{
		WakeTime:        wake,
		Intention:       fmt.Sprintf("I embrace %s today", strings.ToLower(moonReport.EnergyTheme)),
		Breathwork:      breathwork,
		Movement:        movement,
		DurationMinutes: 20,
	}
}

var meditationTechniques = map[string]string{
	"Fire":  "Candle gazing (Trataka)",
	"Earth": "Body scan meditation",
	"Air":   "Mindfulness of thoughts",
	"Water": "Loving-kindness meditation",
}

var meditationMantras = map[string]string{
	"Fire":  "I am powerful and radiant",
	"Earth": "I am grounded and secure",
	"Air":   "I am clear and free",
	"Water": "I flow with life's currents",
}

// MeditationForDay selects technique and mantra by element, with duration
// scaled to the intellectual cycle.
func MeditationForDay(moonReport moon.Report, bio biorhythm.Reading) Meditation {
	technique, ok := meditationTechniques[moonReport.Element]
	if !ok {
		technique = "Breath awareness"
	}

	var duration int
	var optimal string
	switch {
	case bio.Intellectual > 50:
		duration, optimal = 25, "Morning or midday"
	case bio.Intellectual > 0:
		duration, optimal = 20, "Midday"
	default:
		duration, optimal = 15, "Evening (shorter, gentler)"
	}

	return Meditation{
		Technique:       technique,
		DurationMinutes: duration,
		OptimalTime:     optimal,
		FocusTheme:      moonReport.EnergyTheme,
		Mantra:          meditationMantras[moonReport.Element],
	}
}

var morningPrompts = map[string]string{
	"Fire":  "What bold action can I take today?",
	"Earth": "What practical step can I take toward my goals?",
	"Air":   "What new perspective can I explore today?",
	"Water": "What emotional truth wants to be acknowledged?",
}

var eveningPrompts = map[string]string{
	"Fire":  "Where did I express my authentic power today?",
	"Earth": "What did I build or accomplish today?",
	"Air":   "What new idea or connection emerged today?",
	"Water": "What feelings flowed through me today?",
}

var signInquiries = map[string]string{
	"Aries":       "Where am I holding back from starting something new?",
	"Taurus":      "What do I truly value and how am I honoring that?",
	"Gemini":      "What am I curious about that I haven't explored?",
	"Cancer":      "What does my inner child need right now?",
	"Leo":         "How can I express my creativity more fully?",
	"Virgo":       "What small improvement would make a big difference?",
	"Libra":       "Where do I need more balance in my life?",
	"Scorpio":     "What am I ready to release and transform?",
	"Sagittarius": "What adventure is calling to me?",
	"Capricorn":   "What legacy am I building?",
	"Aquarius":    "How can I contribute to something larger than myself?",
	"Pisces":      "What does my intuition want me to know?",
}

// JournalingForDay assembles the day's prompts.
func JournalingForDay(moonReport moon.Report, bio biorhythm.Reading) Journaling {
	morning, ok := morningPrompts[moonReport.Element]
	if !ok {
		morning = "What is my intention for today?"
	}
	evening, ok := eveningPrompts[moonReport.Element]
	if !ok {
		evening = "What am I grateful for today?"
	}
	inquiry, ok := signInquiries[moonReport.Sign]
	if !ok {
		inquiry = "What wants to emerge today?"
	}

	var gratitude string
	switch bio.OverallEnergy {
	case "Low":
		gratitude = "Simple blessings and basic comforts"
	case "High":
		gratitude = "Opportunities and energy for action"
	default:
		gratitude = "Balance and present moment awareness"
	}

	return Journaling{
		MorningPrompt:    morning,
		EveningPrompt:    evening,
		ThemeExploration: inquiry,
		GratitudeFocus:   gratitude,
	}
}

// EveningRitualForDay schedules wind-down timing from overall energy.
func EveningRitualForDay(bio biorhythm.Reading) EveningRitual {
	var windDown, screenOff, sleep string
	switch bio.OverallEnergy {
	case "Low":
		windDown, screenOff, sleep = "8:00 PM", "8:30 PM", "9:30 PM"
	case "High":
		windDown, screenOff, sleep = "9:00 PM", "9:30 PM", "10:30 PM"
	default:
		windDown, screenOff, sleep = "8:30 PM", "9:00 PM", "10:00 PM"
	}

	return EveningRitual{
		WindDownTime:       windDown,
		ScreenCutoff:       screenOff,
		ReflectionPractice: "Review three wins from today",
		SleepPreparation:   "Warm bath or shower, dim lights, gratitude practice",
		OptimalSleepTime:   sleep,
	}
}
