package humandesign

import (
	"fmt"
	"time"

	"github.com/starfield-labs/almanac/internal/ephemeris"
)

// Transits is one day's activation picture: the transiting gates, the
// channels they complete against the natal chart, and the centers those
// channels define for the day.
type Transits struct {
	ActiveGates         []GateActivation
	ActiveChannels      []Channel
	DefinedCentersToday []string

	DecisionCue      string
	EnergyManagement string
}

// SunGate returns the Sun's activation among the day's gates.
func (t Transits) SunGate() (GateActivation, bool) {
	for _, g := range t.ActiveGates {
		if g.Body == ephemeris.BodySun {
			return g, true
		}
	}
	return GateActivation{}, false
}

// TransitsForDay computes the day's gate activations at noon UTC and the
// channels they form together with the natal gates.
func TransitsForDay(provider ephemeris.Provider, chart Chart, target time.Time) (Transits, error) {
	jd := ephemeris.JulianDay(ephemeris.NoonUTC(target.Year(), target.Month(), target.Day()))
	if err := ephemeris.CheckRange(jd); err != nil {
		return Transits{}, err
	}

	gates, err := snapshotGates(provider, jd)
	if err != nil {
		return Transits{}, err
	}

	combined := chart.ActiveGates()
	for _, g := range gates {
		combined[g.Gate] = true
	}

	defined := definedChannels(combined)
	transits := Transits{
		ActiveGates:         gates,
		ActiveChannels:      defined,
		DefinedCentersToday: definedCenters(defined),

		DecisionCue:      fmt.Sprintf("Trust your %s response", decisionWord(chart.Authority)),
		EnergyManagement: "Honor your energy type's natural rhythm",
	}
	return transits, nil
}

func decisionWord(authority string) string {
	switch authority {
	case "Emotional":
		return "emotional clarity"
	case "Sacral":
		return "sacral"
	case "Splenic":
		return "splenic"
	case "Lunar":
		return "lunar cycle"
	default:
		return "inner"
	}
}
