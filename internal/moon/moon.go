// Package moon derives lunar phase, zodiac placement, and void-of-course
// windows from ephemeris positions.
//
// All daily values are sampled at noon UTC of the target date, matching the
// sampling instant the rest of the daily pipeline uses.
package moon

import (
	"time"

	"github.com/starfield-labs/almanac/internal/ephemeris"
)

// Signs lists the twelve zodiac signs in ecliptic order.
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// elements cycles every four signs starting at Aries.
var elements = [4]string{"Fire", "Earth", "Air", "Water"}

// modalities cycles every three signs starting at Aries.
var modalities = [3]string{"Cardinal", "Fixed", "Mutable"}

// phaseRanges maps phase-angle buckets to phase names. The New Moon bucket
// wraps across the 0/360 boundary at 337.5.
var phaseRanges = []struct {
	start, end float64
	name       string
}{
	{0, 22.5, "New Moon"},
	{22.5, 67.5, "Waxing Crescent"},
	{67.5, 112.5, "First Quarter"},
	{112.5, 157.5, "Waxing Gibbous"},
	{157.5, 202.5, "Full Moon"},
	{202.5, 247.5, "Waning Gibbous"},
	{247.5, 292.5, "Last Quarter"},
	{292.5, 337.5, "Waning Crescent"},
	{337.5, 360, "New Moon"},
}

// VOCWindow is a void-of-course interval: from the Moon's last major aspect
// to its ingress into the next sign.
type VOCWindow struct {
	Start time.Time
	End   time.Time
}

// Report holds the complete lunar evaluation for one day.
type Report struct {
	PhaseAngle   float64
	Phase        string
	Illumination float64

	SignIndex int
	Sign      string
	Element   string
	Modality  string

	EnergyTheme       string
	OptimalActivities []string
	AvoidActivities   []string

	VoidOfCourse bool
	VOC          *VOCWindow
}

// PhaseFromAngle classifies a phase angle into a named phase and an
// illumination percentage (0 at new moon, 100 at full moon).
func PhaseFromAngle(angle float64) (string, float64) {
	angle = ephemeris.Normalize(angle)
	illumination := (1 - absf(180-angle)/180) * 100
	illumination = round1(illumination)

	for _, r := range phaseRanges {
		if angle >= r.start && angle < r.end {
			return r.name, illumination
		}
	}
	return "New Moon", illumination
}

// SignIndexFromLongitude buckets an ecliptic longitude into a sign index.
func SignIndexFromLongitude(longitude float64) int {
	return int(ephemeris.Normalize(longitude)/30) % 12
}

// SignFromLongitude returns the zodiac sign name for a longitude.
func SignFromLongitude(longitude float64) string {
	return Signs[SignIndexFromLongitude(longitude)]
}

// ElementForSign returns the element of a sign index.
func ElementForSign(signIndex int) string {
	return elements[signIndex%4]
}

// ModalityForSign returns the modality of a sign index.
func ModalityForSign(signIndex int) string {
	return modalities[signIndex%3]
}

// ForDay computes the complete lunar report for the target date.
func ForDay(provider ephemeris.Provider, target time.Time) (Report, error) {
	jd := ephemeris.JulianDay(ephemeris.NoonUTC(target.Year(), target.Month(), target.Day()))

	moonLon, err := provider.Longitude(jd, ephemeris.BodyMoon)
	if err != nil {
		return Report{}, err
	}
	sunLon, err := provider.Longitude(jd, ephemeris.BodySun)
	if err != nil {
		return Report{}, err
	}

	angle := ephemeris.Normalize(moonLon - sunLon)
	phase, illumination := PhaseFromAngle(angle)

	signIndex := SignIndexFromLongitude(moonLon)
	sign := Signs[signIndex]
	theme := signThemes[sign]

	report := Report{
		PhaseAngle:   angle,
		Phase:        phase,
		Illumination: illumination,

		SignIndex: signIndex,
		Sign:      sign,
		Element:   ElementForSign(signIndex),
		Modality:  ModalityForSign(signIndex),

		EnergyTheme:       theme.theme,
		OptimalActivities: theme.optimal,
		AvoidActivities:   theme.avoid,
	}

	voc, err := findVoidOfCourse(provider, jd)
	if err != nil {
		return Report{}, err
	}
	if voc != nil {
		report.VoidOfCourse = true
		report.VOC = voc
	}
	return report, nil
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func round1(v float64) float64 {
	if v < 0 {
		return float64(int(v*10-0.5)) / 10
	}
	return float64(int(v*10+0.5)) / 10
}
