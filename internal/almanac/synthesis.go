package almanac

import (
	"fmt"
	"strings"

	"github.com/starfield-labs/almanac/internal/biorhythm"
	"github.com/starfield-labs/almanac/internal/humandesign"
	"github.com/starfield-labs/almanac/internal/iching"
	"github.com/starfield-labs/almanac/internal/moon"
	"github.com/starfield-labs/almanac/internal/numerology"
)

// dailyTheme combines the moon theme with the leading part of the numerology
// day theme.
func dailyTheme(moonReport moon.Report, numReading numerology.Reading) string {
	head, _, _ := strings.Cut(numReading.DayTheme, " & ")
	return fmt.Sprintf("%s with %s", moonReport.EnergyTheme, head)
}

// themeKeywords gathers one keyword per contributing domain.
func themeKeywords(moonReport moon.Report, numReading numerology.Reading, chart humandesign.Chart) []string {
	return []string{
		moonReport.Element,
		numReading.EnergyQuality,
		chart.Signature,
	}
}

// powerHours derives the day's high-capability windows from biorhythm
// thresholds.
func powerHours(bio biorhythm.Reading) []PowerHour {
	var hours []PowerHour

	if bio.Physical > 30 {
		hours = append(hours, PowerHour{
			TimeRange:  "7:00 AM - 10:00 AM",
			OptimalFor: []string{"Exercise", "Physical tasks", "Active work"},
			EnergyType: "Physical energy peak",
		})
	}
	if bio.Intellectual > 30 {
		hours = append(hours, PowerHour{
			TimeRange:  "10:00 AM - 1:00 PM",
			OptimalFor: []string{"Complex thinking", "Important decisions", "Learning"},
			EnergyType: "Mental clarity peak",
		})
	}
	if bio.Emotional > 20 && bio.Intellectual > 20 {
		hours = append(hours, PowerHour{
			TimeRange:  "3:00 PM - 6:00 PM",
			OptimalFor: []string{"Creative projects", "Collaboration", "Expression"},
			EnergyType: "Creative synthesis",
		})
	}

	if len(hours) == 0 {
		hours = append(hours, PowerHour{
			TimeRange:  "When energy feels best",
			OptimalFor: []string{"Routine tasks", "Self-paced work"},
			EnergyType: "Moderate energy day",
		})
	}
	return hours
}

// cautionPeriods derives the day's windows to avoid from the VOC window and
// depleted cycles.
func cautionPeriods(moonReport moon.Report, bio biorhythm.Reading) []CautionPeriod {
	var cautions []CautionPeriod

	if moonReport.VoidOfCourse && moonReport.VOC != nil {
		cautions = append(cautions, CautionPeriod{
			TimeRange: fmt.Sprintf("VOC: %s - %s",
				moonReport.VOC.Start.Format("3:04 PM"),
				moonReport.VOC.End.Format("3:04 PM")),
			Reason:    "Moon Void of Course",
			Avoid:     []string{"Starting new projects", "Major purchases", "Important decisions"},
			InsteadDo: []string{"Routine tasks", "Review work", "Rest"},
		})
	}
	if bio.Intellectual < -20 {
		cautions = append(cautions, CautionPeriod{
			TimeRange: "Afternoon (1:00 PM - 4:00 PM)",
			Reason:    "Mental energy low",
			Avoid:     []string{"Complex analysis", "Important negotiations"},
			InsteadDo: []string{"Physical tasks", "Routine work"},
		})
	}
	return cautions
}

var elementAffirmations = map[string]string{
	"Fire":  "I embrace my power and shine brightly",
	"Earth": "I build my dreams with patient, steady hands",
	"Air":   "I welcome new ideas and connections with an open mind",
	"Water": "I flow with life's currents and trust my intuition",
}

func affirmationForElement(element string) string {
	if affirmation, ok := elementAffirmations[element]; ok {
		return affirmation
	}
	return "I am aligned with my highest path"
}

func mantraForHexagram(reading iching.Reading) string {
	return fmt.Sprintf("I embody the wisdom of %s", reading.HexagramName)
}

func closingReflection(moonReport moon.Report) string {
	return fmt.Sprintf("Rest well knowing you honored %s today",
		strings.ToLower(moonReport.EnergyTheme))
}
