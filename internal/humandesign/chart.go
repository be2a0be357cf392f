package humandesign

import (
	"time"

	"github.com/starfield-labs/almanac/internal/ephemeris"
)

// designOffsetDays is the fixed offset from birth to the design snapshot.
// This is a documented approximation of the 88-degrees-of-solar-arc rule;
// an exact implementation would solve for the Sun-longitude-minus-88 instant.
const designOffsetDays = 88

// The five types and their fixed texts.
const (
	TypeGenerator    = "Generator"
	TypeManifestingG = "Manifesting Generator"
	TypeProjector    = "Projector"
	TypeManifestor   = "Manifestor"
	TypeReflector    = "Reflector"
)

var strategies = map[string]string{
	TypeGenerator:    "Wait to respond",
	TypeManifestingG: "Wait to respond, then inform",
	TypeProjector:    "Wait for the invitation",
	TypeManifestor:   "Inform before acting",
	TypeReflector:    "Wait a lunar cycle",
}

var signatures = map[string]string{
	TypeGenerator:    "Satisfaction",
	TypeManifestingG: "Satisfaction",
	TypeProjector:    "Success",
	TypeManifestor:   "Peace",
	TypeReflector:    "Surprise",
}

var notSelfThemes = map[string]string{
	TypeGenerator:    "Watch for frustration if forcing actions",
	TypeManifestingG: "Watch for frustration and anger if not responding",
	TypeProjector:    "Watch for bitterness if not recognized",
	TypeManifestor:   "Watch for anger if meeting resistance",
	TypeReflector:    "Watch for disappointment if rushing decisions",
}

// Chart is a natal Human Design chart, computed once per profile and safe to
// share read-only.
type Chart struct {
	Type      string
	Strategy  string
	Authority string
	Signature string
	NotSelf   string

	DefinedCenters  []string
	DefinedChannels []Channel

	PersonalityGates []GateActivation
	DesignGates      []GateActivation
}

// ActiveGates returns the union of personality and design gates.
func (c Chart) ActiveGates() map[int]bool {
	active := make(map[int]bool, len(c.PersonalityGates)+len(c.DesignGates))
	for _, g := range c.PersonalityGates {
		active[g.Gate] = true
	}
	for _, g := range c.DesignGates {
		active[g.Gate] = true
	}
	return active
}

// snapshotGates computes one chart snapshot: every chart body's activation
// at the given instant.
func snapshotGates(provider ephemeris.Provider, jd float64) ([]GateActivation, error) {
	gates := make([]GateActivation, 0, len(ephemeris.ChartBodies))
	for _, body := range ephemeris.ChartBodies {
		lon, err := provider.Longitude(jd, body)
		if err != nil {
			return nil, err
		}
		gates = append(gates, ActivationForLongitude(lon, body))
	}
	return gates, nil
}

// NatalChart derives the full chart from a birth instant: personality gates
// at birth, design gates 88 days earlier, then centers, type, and authority.
func NatalChart(provider ephemeris.Provider, birth time.Time) (Chart, error) {
	birthJD := ephemeris.JulianDay(birth)
	if err := ephemeris.CheckRange(birthJD); err != nil {
		return Chart{}, err
	}
	designJD := birthJD - designOffsetDays

	personality, err := snapshotGates(provider, birthJD)
	if err != nil {
		return Chart{}, err
	}
	design, err := snapshotGates(provider, designJD)
	if err != nil {
		return Chart{}, err
	}

	chart := Chart{
		PersonalityGates: personality,
		DesignGates:      design,
	}

	defined := definedChannels(chart.ActiveGates())
	chart.DefinedChannels = defined
	chart.DefinedCenters = definedCenters(defined)

	chart.Type = deriveType(chart.DefinedCenters, defined)
	chart.Strategy = strategies[chart.Type]
	chart.Authority = deriveAuthority(chart.Type, chart.DefinedCenters, defined)
	chart.Signature = signatures[chart.Type]
	chart.NotSelf = notSelfThemes[chart.Type]
	return chart, nil
}

func deriveType(centers []string, defined []Channel) string {
	if len(centers) == 0 {
		return TypeReflector
	}

	has := make(map[string]bool, len(centers))
	for _, c := range centers {
		has[c] = true
	}
	motorToThroat := connectedToThroat(defined, motorCenters)

	if has[CenterSacral] {
		if motorToThroat {
			return TypeManifestingG
		}
		return TypeGenerator
	}
	if motorToThroat {
		return TypeManifestor
	}
	return TypeProjector
}

// deriveAuthority walks the fixed authority ladder over the defined centers.
func deriveAuthority(hdType string, centers []string, defined []Channel) string {
	if hdType == TypeReflector {
		return "Lunar"
	}

	has := make(map[string]bool, len(centers))
	for _, c := range centers {
		has[c] = true
	}

	switch {
	case has[CenterSolarPlexus]:
		return "Emotional"
	case has[CenterSacral]:
		return "Sacral"
	case has[CenterSpleen]:
		return "Splenic"
	case has[CenterHeart] && connectedToThroat(defined, map[string]bool{CenterHeart: true}):
		return "Ego"
	case has[CenterG]:
		return "Self-Projected"
	default:
		return "Mental"
	}
}
