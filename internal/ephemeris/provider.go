package ephemeris

import (
	"fmt"
	"time"

	"github.com/starfield-labs/almanac/internal/platform/errors"
)

// Houses holds the twelve house cusps and chart angles for an instant.
type Houses struct {
	Cusps     [12]float64 // ecliptic longitudes, house 1 first
	Ascendant float64
	Midheaven float64
}

// Provider supplies ecliptic longitudes and house cusps.
//
// Implementations must be pure functions of their inputs: the same Julian Day
// and body always yield the same longitude. That contract is what makes
// position results safely cacheable across concurrent day computations.
type Provider interface {
	// Longitude returns the ecliptic longitude of body in degrees [0,360).
	Longitude(jd float64, body Body) (float64, error)

	// HousesAt returns house cusps and angles for an instant and location.
	HousesAt(jd float64, latitude, longitude float64) (Houses, error)
}

// Supported data range. Instants outside it fail with EPHEMERIS_UNAVAILABLE.
const (
	MinYear = 1800
	MaxYear = 2400
)

var (
	minJD = JulianDay(time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC))
	maxJD = JulianDay(time.Date(MaxYear, time.December, 31, 23, 59, 59, 0, time.UTC))
)

// CheckRange verifies jd falls inside the supported data range.
func CheckRange(jd float64) error {
	if jd < minJD || jd > maxJD {
		return errors.New(errors.CodeEphemerisUnavailable,
			fmt.Sprintf("instant %.2f outside supported range %d-%d", jd, MinYear, MaxYear))
	}
	return nil
}
