// Package risk synthesizes moon, biorhythm, and numerology signals into
// per-domain risk scores, warnings, and protective guidance.
//
// The rule table is additive and evaluated in a fixed order; the warnings
// list preserves that order. Subscores clamp to [0,10].
package risk

import (
	"math"

	"github.com/starfield-labs/almanac/internal/biorhythm"
	"github.com/starfield-labs/almanac/internal/moon"
	"github.com/starfield-labs/almanac/internal/numerology"
)

// Rule weights.
const (
	weightMoonVOC           = 3
	weightBiorhythmCritical = 4
	weightBiorhythmLow      = 2
	weightIntellectual      = 2
	weightNumerology        = 1
)

// lowThreshold marks a depleted cycle.
const lowThreshold = -50.0

// Warning is one fired risk rule.
type Warning struct {
	Domain   string
	Source   string
	Message  string
	Severity string
}

// Analysis is the complete risk picture for one day.
type Analysis struct {
	SpiritualRisk int
	EmotionalRisk int
	PhysicalRisk  int

	Score        float64
	OverallLevel string

	Warnings            []Warning
	ProtectivePractices []string
	GroundingTechniques []string
}

var protectivePractices = map[string][]string{
	"spiritual": {
		"Morning grounding meditation",
		"Protective visualization",
		"Energy clearing",
		"Intention setting",
	},
	"emotional": {
		"Journaling",
		"Breathwork",
		"Self-compassion practice",
		"Connecting with supportive people",
	},
	"physical": {
		"Gentle stretching",
		"Adequate hydration",
		"Extra rest",
		"Mindful movement",
	},
}

var groundingTechniques = map[string][]string{
	"Low":      {"5-minute breathing", "Brief nature walk"},
	"Moderate": {"10-minute meditation", "Grounding visualization", "Body scan"},
	"Elevated": {"20-minute meditation", "Earth connection exercise", "Cold water on wrists"},
	"High":     {"Extended meditation", "Nature immersion", "Digital detox", "Early bedtime"},
}

// Analyze evaluates the full rule table for one day's domain readings.
func Analyze(moonReport moon.Report, bio biorhythm.Reading, numReading numerology.Reading) Analysis {
	var spiritual, emotional, physical int
	var warnings []Warning

	if moonReport.VoidOfCourse {
		spiritual += weightMoonVOC
		emotional += weightMoonVOC
		warnings = append(warnings, Warning{
			Domain:   "Spiritual",
			Source:   "Moon Void of Course",
			Message:  "Avoid initiating new projects or making major decisions",
			Severity: "Caution",
		})
	}

	if bio.PhysicalCritical {
		physical += weightBiorhythmCritical
		warnings = append(warnings, Warning{
			Domain:   "Physical",
			Source:   "Physical Biorhythm Critical",
			Message:  "Take extra care with physical activities; accident risk elevated",
			Severity: "Warning",
		})
	}
	if bio.Physical < lowThreshold {
		physical += weightBiorhythmLow
	}

	if bio.EmotionalCritical {
		emotional += weightBiorhythmCritical
		warnings = append(warnings, Warning{
			Domain:   "Emotional",
			Source:   "Emotional Biorhythm Critical",
			Message:  "Emotional sensitivity heightened; practice extra self-care",
			Severity: "Warning",
		})
	}
	if bio.Emotional < lowThreshold {
		emotional += weightBiorhythmLow
	}

	// Intellectual signals have no domain of their own; they land on the
	// spiritual subscore.
	if bio.IntellectualCritical {
		spiritual += weightIntellectual
		warnings = append(warnings, Warning{
			Domain:   "Spiritual",
			Source:   "Intellectual Biorhythm Critical",
			Message:  "Mental clarity fluctuating; double-check important decisions",
			Severity: "Caution",
		})
	}
	if bio.Intellectual < lowThreshold {
		spiritual += weightIntellectual
	}

	switch numReading.PersonalDay {
	case 4:
		physical += weightNumerology
	case 7:
		spiritual += weightNumerology
	case 9:
		emotional += weightNumerology
	}

	spiritual = clamp(spiritual)
	emotional = clamp(emotional)
	physical = clamp(physical)

	score := math.Min(float64(spiritual+emotional+physical)/3*10, 100)
	score = math.Round(score*10) / 10
	level := levelForScore(score)

	return Analysis{
		SpiritualRisk: spiritual,
		EmotionalRisk: emotional,
		PhysicalRisk:  physical,

		Score:        score,
		OverallLevel: level,

		Warnings:            warnings,
		ProtectivePractices: selectProtective(spiritual, emotional, physical),
		GroundingTechniques: groundingTechniques[level],
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

func levelForScore(score float64) string {
	switch {
	case score < 25:
		return "Low"
	case score < 50:
		return "Moderate"
	case score < 75:
		return "Elevated"
	default:
		return "High"
	}
}

// selectProtective picks two practices per elevated domain, capped at four.
func selectProtective(spiritual, emotional, physical int) []string {
	var practices []string
	if spiritual >= 3 {
		practices = append(practices, protectivePractices["spiritual"][:2]...)
	}
	if emotional >= 3 {
		practices = append(practices, protectivePractices["emotional"][:2]...)
	}
	if physical >= 3 {
		practices = append(practices, protectivePractices["physical"][:2]...)
	}
	if len(practices) == 0 {
		return []string{"Standard self-care practices", "Mindful awareness"}
	}
	if len(practices) > 4 {
		practices = practices[:4]
	}
	return practices
}
