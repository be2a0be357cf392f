package ephemeris

import (
	"fmt"
	"math"

	"github.com/starfield-labs/almanac/internal/platform/errors"
)

// j2000 is the Julian Day of the J2000.0 epoch.
const j2000 = 2451545.0

// obliquity of the ecliptic in degrees, J2000 mean value.
const obliquity = 23.4393

// meanElement holds a linear mean-longitude series at J2000.
type meanElement struct {
	epoch float64 // degrees at J2000
	rate  float64 // degrees per day
}

// Mean longitudes at J2000 and daily motion. These are low-precision series:
// adequate for sign, gate, and phase bucketing, not for eclipse work.
var meanElements = map[Body]meanElement{
	BodySun:     {280.466, 0.9856474},
	BodyMercury: {252.251, 4.092335},
	BodyVenus:   {181.980, 1.602130},
	BodyMars:    {355.433, 0.524033},
	BodyJupiter: {34.351, 0.083056},
	BodySaturn:  {50.077, 0.033371},
	BodyUranus:  {314.055, 0.011698},
	BodyNeptune: {304.348, 0.006020},
	BodyPluto:   {238.958, 0.003968},
}

// Approx is the built-in approximate position provider.
//
// It evaluates mean-longitude series for the planets, a first-order
// perturbation for the Moon, and the retrograde mean lunar node. Earth is the
// Sun's antipode. All results are deterministic functions of the Julian Day.
type Approx struct{}

// NewApprox creates the built-in approximate provider.
func NewApprox() *Approx {
	return &Approx{}
}

// Longitude returns the ecliptic longitude of body in degrees [0,360).
func (a *Approx) Longitude(jd float64, body Body) (float64, error) {
	if err := CheckRange(jd); err != nil {
		return 0, err
	}
	d := jd - j2000

	switch body {
	case BodyMoon:
		// Mean longitude corrected by the principal elliptic term.
		l := 218.32 + 13.176396*d
		m := 134.963 + 13.064993*d
		return Normalize(l + 6.29*sinDeg(m)), nil
	case BodyEarth:
		sun, err := a.Longitude(jd, BodySun)
		if err != nil {
			return 0, err
		}
		return Normalize(sun + 180), nil
	case BodyNorthNode:
		return Normalize(125.045 - 0.052954*d), nil
	case BodySouthNode:
		node, err := a.Longitude(jd, BodyNorthNode)
		if err != nil {
			return 0, err
		}
		return Normalize(node + 180), nil
	}

	el, ok := meanElements[body]
	if !ok {
		return 0, errors.New(errors.CodeUnknownBody,
			fmt.Sprintf("no mean elements for body %s", body))
	}
	return Normalize(el.epoch + el.rate*d), nil
}

// HousesAt returns whole-sign house cusps from an approximate ascendant.
func (a *Approx) HousesAt(jd float64, latitude, longitude float64) (Houses, error) {
	if err := CheckRange(jd); err != nil {
		return Houses{}, err
	}
	if latitude < -90 || latitude > 90 {
		return Houses{}, errors.New(errors.CodeInvalidLatitude,
			fmt.Sprintf("latitude %.4f outside [-90,90]", latitude))
	}
	if longitude < -180 || longitude > 180 {
		return Houses{}, errors.New(errors.CodeInvalidLongitude,
			fmt.Sprintf("longitude %.4f outside [-180,180]", longitude))
	}

	d := jd - j2000
	ramc := Normalize(280.46062 + 360.98564737*d + longitude)

	eps := obliquity * math.Pi / 180
	ramcRad := ramc * math.Pi / 180
	latRad := latitude * math.Pi / 180

	mc := Normalize(math.Atan2(math.Sin(ramcRad), math.Cos(ramcRad)*math.Cos(eps)) * 180 / math.Pi)
	asc := Normalize(math.Atan2(
		math.Cos(ramcRad),
		-(math.Tan(latRad)*math.Sin(eps) + math.Sin(ramcRad)*math.Cos(eps)),
	) * 180 / math.Pi)

	houses := Houses{Ascendant: asc, Midheaven: mc}
	first := math.Floor(asc/30) * 30
	for i := 0; i < 12; i++ {
		houses.Cusps[i] = Normalize(first + float64(i)*30)
	}
	return houses, nil
}
