package moon

import (
	"math"

	"github.com/starfield-labs/almanac/internal/ephemeris"
)

// Major aspect angles, in degrees of separation.
var aspectAngles = [5]float64{0, 60, 90, 120, 180}

const (
	// Search step in days, roughly fifteen minutes. The Moon moves at most
	// about 0.16 degrees relative to another body per step, well inside the
	// crossing tolerance.
	vocStep = 0.01

	// The Moon spends at most 2.5 days in a sign, so the next ingress always
	// falls inside this horizon.
	ingressHorizon = 3.0

	// How far back to look for the Moon's last perfected aspect.
	aspectLookback = 10.0

	// Bisection stops when the bracket is under a tenth of a second.
	timeTolerance = 1e-6
)

// findVoidOfCourse reports the void-of-course window containing jd, or nil
// when an aspect still perfects before the Moon's next sign ingress.
func findVoidOfCourse(provider ephemeris.Provider, jd float64) (*VOCWindow, error) {
	ingress, err := findNextIngress(provider, jd)
	if err != nil {
		return nil, err
	}

	pending, err := hasAspectBetween(provider, jd, ingress)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, nil
	}

	last, err := findLastAspect(provider, jd)
	if err != nil {
		return nil, err
	}

	return &VOCWindow{
		Start: ephemeris.Instant(last).UTC(),
		End:   ephemeris.Instant(ingress).UTC(),
	}, nil
}

// findNextIngress locates the Julian Day of the Moon's next sign change
// after jd by forward stepping and bisection.
func findNextIngress(provider ephemeris.Provider, jd float64) (float64, error) {
	startLon, err := provider.Longitude(jd, ephemeris.BodyMoon)
	if err != nil {
		return 0, err
	}
	startSign := SignIndexFromLongitude(startLon)

	prev := jd
	for t := jd + vocStep; t <= jd+ingressHorizon; t += vocStep {
		lon, err := provider.Longitude(t, ephemeris.BodyMoon)
		if err != nil {
			return 0, err
		}
		if SignIndexFromLongitude(lon) != startSign {
			return bisectIngress(provider, prev, t, startSign)
		}
		prev = t
	}
	// The Moon cannot stay in one sign this long; treat the horizon edge as
	// the boundary rather than failing the whole day.
	return jd + ingressHorizon, nil
}

func bisectIngress(provider ephemeris.Provider, lo, hi float64, startSign int) (float64, error) {
	for hi-lo > timeTolerance {
		mid := (lo + hi) / 2
		lon, err := provider.Longitude(mid, ephemeris.BodyMoon)
		if err != nil {
			return 0, err
		}
		if SignIndexFromLongitude(lon) == startSign {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, nil
}

// separation returns the unsigned angular separation of the Moon from a body
// at jd, in [0,180].
func separation(provider ephemeris.Provider, jd float64, body ephemeris.Body) (float64, error) {
	moonLon, err := provider.Longitude(jd, ephemeris.BodyMoon)
	if err != nil {
		return 0, err
	}
	bodyLon, err := provider.Longitude(jd, body)
	if err != nil {
		return 0, err
	}
	return math.Abs(ephemeris.AngleDiff(moonLon, bodyLon)), nil
}

// aspectPerfects reports whether any major aspect of the Moon to an aspect
// body perfects in the step (t0, t1]. Separation is a continuous function of
// time, so a perfection shows up as the separation crossing or touching an
// aspect angle within the step.
func aspectPerfects(prev, cur map[ephemeris.Body]float64) bool {
	for _, body := range ephemeris.AspectBodies {
		s0, s1 := prev[body], cur[body]
		for _, angle := range aspectAngles {
			d0, d1 := s0-angle, s1-angle
			if d0 == 0 || d1 == 0 || (d0 < 0) != (d1 < 0) {
				return true
			}
			// The separation reflects at 0 and 180 degrees, so conjunctions
			// and oppositions can touch the angle without a sign change.
			if (angle == 0 || angle == 180) && math.Min(math.Abs(d0), math.Abs(d1)) < 0.05 {
				return true
			}
		}
	}
	return false
}

func separations(provider ephemeris.Provider, jd float64) (map[ephemeris.Body]float64, error) {
	seps := make(map[ephemeris.Body]float64, len(ephemeris.AspectBodies))
	for _, body := range ephemeris.AspectBodies {
		s, err := separation(provider, jd, body)
		if err != nil {
			return nil, err
		}
		seps[body] = s
	}
	return seps, nil
}

func hasAspectBetween(provider ephemeris.Provider, from, to float64) (bool, error) {
	prev, err := separations(provider, from)
	if err != nil {
		return false, err
	}
	for t := from + vocStep; t < to+vocStep; t += vocStep {
		if t > to {
			t = to
		}
		cur, err := separations(provider, t)
		if err != nil {
			return false, err
		}
		if aspectPerfects(prev, cur) {
			return true, nil
		}
		if t == to {
			break
		}
		prev = cur
	}
	return false, nil
}

// findLastAspect locates the Julian Day of the Moon's most recent perfected
// aspect at or before jd. Steps backward one interval at a time; with nine
// aspect bodies and five angles an aspect always lands inside the lookback
// window.
func findLastAspect(provider ephemeris.Provider, jd float64) (float64, error) {
	cur, err := separations(provider, jd)
	if err != nil {
		return 0, err
	}
	for t := jd - vocStep; t >= jd-aspectLookback; t -= vocStep {
		prev, err := separations(provider, t)
		if err != nil {
			return 0, err
		}
		if aspectPerfects(prev, cur) {
			// The crossing lies in (t, t+vocStep]; the step edge is close
			// enough for a window boundary.
			return t + vocStep, nil
		}
		cur = prev
	}
	return jd - aspectLookback, nil
}
