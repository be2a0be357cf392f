// Package biorhythm evaluates the three classical sinusoidal cycles
// (physical, emotional, intellectual) for a birth date and target date.
//
// All functions are pure and total: negative days-alive values evaluate
// normally, so readings can be produced for dates before birth.
package biorhythm

import (
	"math"
	"time"
)

// Cycle lengths in days.
const (
	PhysicalCycle     = 23
	EmotionalCycle    = 28
	IntellectualCycle = 33
)

// criticalThreshold marks how close to zero a cycle value must be for the
// cycle to read as critical.
const criticalThreshold = 5.0

// criticalWindow is the tolerance, in days, around a cycle's zero crossings
// used for critical-day detection.
const criticalWindow = 0.5

// Reading holds the complete biorhythm evaluation for one day.
type Reading struct {
	Physical     float64
	Emotional    float64
	Intellectual float64

	PhysicalPhase     string
	EmotionalPhase    string
	IntellectualPhase string

	PhysicalCritical     bool
	EmotionalCritical    bool
	IntellectualCritical bool

	OverallEnergy  string
	BestFor        []string
	ChallengingFor []string

	PeakPhysicalHours string
	PeakMentalHours   string
	RestRecommended   string
}

// DaysAlive returns the whole-day difference between the target date and the
// birth date. Negative when the target precedes birth.
func DaysAlive(birth, target time.Time) int {
	b := time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(b).Hours() / 24)
}

// CycleValue evaluates one cycle: sin(2π·daysAlive/cycle)·100, in [-100,100].
func CycleValue(daysAlive, cycle int) float64 {
	radians := 2 * math.Pi * float64(daysAlive) / float64(cycle)
	return math.Sin(radians) * 100
}

// Phase classifies a cycle value into one of six named phases.
func Phase(value float64) string {
	switch {
	case math.Abs(value) <= criticalThreshold:
		return "Critical"
	case value > 80:
		return "Peak"
	case value > 50:
		return "High"
	case value > 0:
		return "Rising"
	case value > -50:
		return "Recovering"
	default:
		return "Low"
	}
}

// trueMod returns the non-negative remainder of x mod m.
func trueMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// IsCriticalDay reports whether the cycle crosses zero on this day: the
// position within the cycle is within half a day of 0 or of the half-cycle
// point.
func IsCriticalDay(daysAlive, cycle int) bool {
	position := trueMod(float64(daysAlive), float64(cycle))
	half := float64(cycle) / 2
	if position <= criticalWindow || position >= float64(cycle)-criticalWindow {
		return true
	}
	return math.Abs(position-half) <= criticalWindow
}

// OverallEnergy summarizes all three cycles as High, Moderate, Low, or Mixed.
// Mixed wins when at least two cycles pull one way (beyond 20) and at least
// one pulls the other.
func OverallEnergy(physical, emotional, intellectual float64) string {
	values := []float64{physical, emotional, intellectual}
	sum := 0.0
	positive, negative := 0, 0
	for _, v := range values {
		sum += v
		if v > 20 {
			positive++
		}
		if v < -20 {
			negative++
		}
	}
	avg := sum / 3

	switch {
	case positive >= 2 && negative >= 1:
		return "Mixed"
	case negative >= 2 && positive >= 1:
		return "Mixed"
	case avg > 40:
		return "High"
	case avg > -20:
		return "Moderate"
	default:
		return "Low"
	}
}

// BestActivities lists up to four recommended activities for the day's cycle
// values.
func BestActivities(physical, emotional, intellectual float64) []string {
	var activities []string

	if physical > 50 {
		activities = append(activities, "Exercise", "Physical labor", "Sports", "Active tasks")
	} else if physical > 0 {
		activities = append(activities, "Moderate activity", "Walking", "Light exercise")
	}

	if emotional > 50 {
		activities = append(activities, "Social events", "Creative expression", "Relationships")
	} else if emotional > 0 {
		activities = append(activities, "Connecting with friends", "Artistic pursuits")
	}

	if intellectual > 50 {
		activities = append(activities, "Complex problem-solving", "Learning", "Strategic planning")
	} else if intellectual > 0 {
		activities = append(activities, "Reading", "Research", "Mental tasks")
	}

	if len(activities) == 0 {
		activities = []string{"Rest", "Routine tasks", "Self-care"}
	}
	if len(activities) > 4 {
		activities = activities[:4]
	}
	return activities
}

// ChallengingActivities lists up to four activities to avoid or approach with
// caution.
func ChallengingActivities(physical, emotional, intellectual float64) []string {
	var challenges []string

	if physical < -30 {
		challenges = append(challenges, "Strenuous exercise", "Physical competitions")
	}
	if math.Abs(physical) <= criticalThreshold {
		challenges = append(challenges, "High-risk physical activities")
	}

	if emotional < -30 {
		challenges = append(challenges, "Difficult conversations", "Emotional decisions")
	}
	if math.Abs(emotional) <= criticalThreshold {
		challenges = append(challenges, "Relationship confrontations")
	}

	if intellectual < -30 {
		challenges = append(challenges, "Complex analysis", "Important decisions")
	}
	if math.Abs(intellectual) <= criticalThreshold {
		challenges = append(challenges, "Strategic planning")
	}

	if len(challenges) == 0 {
		return []string{"No specific challenges today"}
	}
	if len(challenges) > 4 {
		challenges = challenges[:4]
	}
	return challenges
}

// PeakHours recommends windows for physical and mental effort.
func PeakHours(physical, intellectual float64) (physicalHours, mentalHours string) {
	switch {
	case physical > 30:
		physicalHours = "Morning (6-10 AM) - Physical energy peak"
	case physical > 0:
		physicalHours = "Late morning (9-11 AM)"
	default:
		physicalHours = "Gentle movement anytime, avoid strenuous activity"
	}

	switch {
	case intellectual > 30:
		mentalHours = "Late morning to early afternoon (10 AM - 2 PM)"
	case intellectual > 0:
		mentalHours = "Mid-morning (9-11 AM)"
	default:
		mentalHours = "Routine mental tasks only, avoid complex decisions"
	}
	return physicalHours, mentalHours
}

// ForDay computes the complete biorhythm reading for one target date.
func ForDay(birth, target time.Time) Reading {
	daysAlive := DaysAlive(birth, target)

	physical := round1(CycleValue(daysAlive, PhysicalCycle))
	emotional := round1(CycleValue(daysAlive, EmotionalCycle))
	intellectual := round1(CycleValue(daysAlive, IntellectualCycle))

	reading := Reading{
		Physical:     physical,
		Emotional:    emotional,
		Intellectual: intellectual,

		PhysicalPhase:     Phase(physical),
		EmotionalPhase:    Phase(emotional),
		IntellectualPhase: Phase(intellectual),

		PhysicalCritical:     IsCriticalDay(daysAlive, PhysicalCycle),
		EmotionalCritical:    IsCriticalDay(daysAlive, EmotionalCycle),
		IntellectualCritical: IsCriticalDay(daysAlive, IntellectualCycle),

		OverallEnergy:  OverallEnergy(physical, emotional, intellectual),
		BestFor:        BestActivities(physical, emotional, intellectual),
		ChallengingFor: ChallengingActivities(physical, emotional, intellectual),
	}
	reading.PeakPhysicalHours, reading.PeakMentalHours = PeakHours(physical, intellectual)
	reading.RestRecommended = restRecommendation(reading)
	return reading
}

func restRecommendation(r Reading) string {
	switch {
	case r.OverallEnergy == "Low":
		return "Extra rest needed - early bedtime recommended"
	case r.PhysicalCritical || r.EmotionalCritical || r.IntellectualCritical:
		return "Critical day - additional rest and self-care important"
	case r.OverallEnergy == "High":
		return "Normal rest schedule, energy levels good"
	default:
		return "Standard rest, wind down by 10 PM"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
