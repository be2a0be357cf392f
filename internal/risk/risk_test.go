package risk

import (
	"testing"

	"github.com/starfield-labs/almanac/internal/biorhythm"
	"github.com/starfield-labs/almanac/internal/moon"
	"github.com/starfield-labs/almanac/internal/numerology"
)

// TestAnalyzeQuietDay verifies a day with no fired rules scores zero.
func TestAnalyzeQuietDay(t *testing.T) {
	analysis := Analyze(moon.Report{}, biorhythm.Reading{
		Physical: 60, Emotional: 60, Intellectual: 60,
	}, numerology.Reading{PersonalDay: 1})

	if analysis.SpiritualRisk != 0 || analysis.EmotionalRisk != 0 || analysis.PhysicalRisk != 0 {
		t.Fatalf("expected zero subscores, got %+v", analysis)
	}
	if analysis.Score != 0 || analysis.OverallLevel != "Low" {
		t.Fatalf("score = %v level = %q, want 0 Low", analysis.Score, analysis.OverallLevel)
	}
	if len(analysis.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", analysis.Warnings)
	}
	if len(analysis.ProtectivePractices) != 2 {
		t.Fatalf("expected general practices, got %v", analysis.ProtectivePractices)
	}
}

// TestAnalyzeVOCRule checks the void-of-course weights and warning.
func TestAnalyzeVOCRule(t *testing.T) {
	analysis := Analyze(moon.Report{VoidOfCourse: true}, biorhythm.Reading{
		Physical: 60, Emotional: 60, Intellectual: 60,
	}, numerology.Reading{PersonalDay: 1})

	if analysis.SpiritualRisk != 3 || analysis.EmotionalRisk != 3 {
		t.Fatalf("VOC weights wrong: %+v", analysis)
	}
	if len(analysis.Warnings) != 1 || analysis.Warnings[0].Source != "Moon Void of Course" {
		t.Fatalf("warnings = %v", analysis.Warnings)
	}
	// Mean 2, score 20, still Low.
	if analysis.Score != 20 || analysis.OverallLevel != "Low" {
		t.Fatalf("score = %v level = %q", analysis.Score, analysis.OverallLevel)
	}
}

// TestAnalyzeCriticalVsLow ensures critical days warn but low cycles only
// add points.
func TestAnalyzeCriticalVsLow(t *testing.T) {
	analysis := Analyze(moon.Report{}, biorhythm.Reading{
		Physical:         -60,
		PhysicalCritical: false,
		Emotional:        60,
		Intellectual:     -60,
	}, numerology.Reading{PersonalDay: 1})

	if analysis.PhysicalRisk != 2 {
		t.Fatalf("physical low weight = %d, want 2", analysis.PhysicalRisk)
	}
	if analysis.SpiritualRisk != 2 {
		t.Fatalf("intellectual low should add 2 spiritual, got %d", analysis.SpiritualRisk)
	}
	if len(analysis.Warnings) != 0 {
		t.Fatalf("low cycles must not warn: %v", analysis.Warnings)
	}

	critical := Analyze(moon.Report{}, biorhythm.Reading{
		Physical:         2,
		PhysicalCritical: true,
		Emotional:        60,
		Intellectual:     60,
	}, numerology.Reading{PersonalDay: 1})
	if critical.PhysicalRisk != 4 {
		t.Fatalf("physical critical weight = %d, want 4", critical.PhysicalRisk)
	}
	if len(critical.Warnings) != 1 || critical.Warnings[0].Severity != "Warning" {
		t.Fatalf("warnings = %v", critical.Warnings)
	}
}

// TestAnalyzeNumerologyDays checks the challenging personal days.
func TestAnalyzeNumerologyDays(t *testing.T) {
	quiet := biorhythm.Reading{Physical: 60, Emotional: 60, Intellectual: 60}

	four := Analyze(moon.Report{}, quiet, numerology.Reading{PersonalDay: 4})
	if four.PhysicalRisk != 1 {
		t.Fatalf("day 4 physical = %d, want 1", four.PhysicalRisk)
	}
	seven := Analyze(moon.Report{}, quiet, numerology.Reading{PersonalDay: 7})
	if seven.SpiritualRisk != 1 {
		t.Fatalf("day 7 spiritual = %d, want 1", seven.SpiritualRisk)
	}
	nine := Analyze(moon.Report{}, quiet, numerology.Reading{PersonalDay: 9})
	if nine.EmotionalRisk != 1 {
		t.Fatalf("day 9 emotional = %d, want 1", nine.EmotionalRisk)
	}
	if len(four.Warnings)+len(seven.Warnings)+len(nine.Warnings) != 0 {
		t.Fatal("numerology rules must not warn")
	}
}

// TestAnalyzeSubscoresClamped verifies [0,10] holds even when every rule
// fires at once.
func TestAnalyzeSubscoresClamped(t *testing.T) {
	analysis := Analyze(moon.Report{VoidOfCourse: true}, biorhythm.Reading{
		Physical:             -60,
		PhysicalCritical:     true,
		Emotional:            -60,
		EmotionalCritical:    true,
		Intellectual:         -60,
		IntellectualCritical: true,
	}, numerology.Reading{PersonalDay: 9})

	for _, sub := range []int{analysis.SpiritualRisk, analysis.EmotionalRisk, analysis.PhysicalRisk} {
		if sub < 0 || sub > 10 {
			t.Fatalf("subscore %d out of [0,10]", sub)
		}
	}
	if analysis.Score > 100 {
		t.Fatalf("score %v above 100", analysis.Score)
	}
	if analysis.OverallLevel != "Elevated" && analysis.OverallLevel != "High" {
		t.Fatalf("level = %q for a maximal day", analysis.OverallLevel)
	}
	if len(analysis.ProtectivePractices) != 4 {
		t.Fatalf("protective practices capped at 4, got %v", analysis.ProtectivePractices)
	}
}

// TestLevelBoundaries pins the 25/50/75 thresholds exactly.
func TestLevelBoundaries(t *testing.T) {
	tcs := []struct {
		score float64
		want  string
	}{
		{0, "Low"},
		{24.9, "Low"},
		{25, "Moderate"},
		{49.9, "Moderate"},
		{50, "Elevated"},
		{74.9, "Elevated"},
		{75, "High"},
		{100, "High"},
	}
	for _, tc := range tcs {
		if got := levelForScore(tc.score); got != tc.want {
			t.Fatalf("levelForScore(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

// TestWarningsKeepRuleOrder verifies the warnings list follows evaluation
// order.
func TestWarningsKeepRuleOrder(t *testing.T) {
	analysis := Analyze(moon.Report{VoidOfCourse: true}, biorhythm.Reading{
		Physical:          2,
		PhysicalCritical:  true,
		Emotional:         2,
		EmotionalCritical: true,
		Intellectual:      60,
	}, numerology.Reading{PersonalDay: 1})

	want := []string{
		"Moon Void of Course",
		"Physical Biorhythm Critical",
		"Emotional Biorhythm Critical",
	}
	if len(analysis.Warnings) != len(want) {
		t.Fatalf("warnings = %v", analysis.Warnings)
	}
	for i, source := range want {
		if analysis.Warnings[i].Source != source {
			t.Fatalf("warning %d = %q, want %q", i, analysis.Warnings[i].Source, source)
		}
	}
}

// TestGroundingTechniquesMatchLevel ensures each level maps to techniques.
func TestGroundingTechniquesMatchLevel(t *testing.T) {
	analysis := Analyze(moon.Report{}, biorhythm.Reading{
		Physical: 60, Emotional: 60, Intellectual: 60,
	}, numerology.Reading{PersonalDay: 1})
	if len(analysis.GroundingTechniques) == 0 {
		t.Fatal("expected grounding techniques")
	}
}
