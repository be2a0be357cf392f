package humandesign

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/starfield-labs/almanac/internal/ephemeris"
	"github.com/starfield-labs/almanac/internal/platform/errors"
)

// House themes for the twelve-year profection wheel.
var houseThemes = [12]string{
	"Self & Identity",
	"Resources & Values",
	"Communication & Learning",
	"Home & Foundation",
	"Creativity & Joy",
	"Health & Service",
	"Partnerships & Relationships",
	"Transformation & Shared Resources",
	"Expansion & Philosophy",
	"Career & Public Image",
	"Community & Aspirations",
	"Spirituality & Release",
}

// SolarReturnMoment is the instant in a target year when the Sun returns to
// its natal longitude, along with the sky at that instant.
type SolarReturnMoment struct {
	Year         int
	Instant      time.Time
	SunLongitude float64
	Longitudes   map[ephemeris.Body]float64
	Houses       *ephemeris.Houses
}

// SolarTransit is the day's solar placement relative to the active return.
type SolarTransit struct {
	SunSign        string
	SunGate        int
	HouseFocus     int
	HouseTheme     string
	TransitMessage string
}

const (
	// Initial bracket half-width around the birthday anchor, in days. The
	// Sun moves about one degree per day, so four days comfortably brackets
	// the root; the solver widens once if leap-day drift pushes it outside.
	returnBracket = 4.0

	returnTolerance = 1e-6
)

// FindSolarReturn solves for the instant in targetYear at which the Sun's
// longitude equals natalSunLon. Bisection on the signed angular difference,
// which is continuous and monotonic near the root, avoids the 0/360 seam.
func FindSolarReturn(provider ephemeris.Provider, birth time.Time, natalSunLon float64, targetYear int) (time.Time, error) {
	anchor := time.Date(targetYear, birth.Month(), birth.Day(),
		birth.Hour(), birth.Minute(), birth.Second(), 0, time.UTC)
	anchorJD := ephemeris.JulianDay(anchor)
	if err := ephemeris.CheckRange(anchorJD); err != nil {
		return time.Time{}, err
	}

	diffAt := func(jd float64) (float64, error) {
		lon, err := provider.Longitude(jd, ephemeris.BodySun)
		if err != nil {
			return 0, err
		}
		return ephemeris.AngleDiff(lon, natalSunLon), nil
	}

	lo, hi := anchorJD-returnBracket, anchorJD+returnBracket
	fLo, err := diffAt(lo)
	if err != nil {
		return time.Time{}, err
	}
	fHi, err := diffAt(hi)
	if err != nil {
		return time.Time{}, err
	}
	if fLo > 0 || fHi < 0 {
		lo, hi = anchorJD-3*returnBracket, anchorJD+3*returnBracket
		if fLo, err = diffAt(lo); err != nil {
			return time.Time{}, err
		}
		if fHi, err = diffAt(hi); err != nil {
			return time.Time{}, err
		}
	}
	if fLo > 0 || fHi < 0 {
		return time.Time{}, errors.WithMetadata(errors.CodeEphemerisUnavailable,
			"solar return not bracketed near birthday",
			map[string]string{"year": fmt.Sprintf("%d", targetYear)})
	}

	for hi-lo > returnTolerance {
		mid := (lo + hi) / 2
		fMid, err := diffAt(mid)
		if err != nil {
			return time.Time{}, err
		}
		if fMid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return ephemeris.Instant((lo + hi) / 2).UTC(), nil
}

// SolarReturnCache computes and retains one return moment per profile and
// year. Entries invalidate when the natal Sun longitude changes.
type SolarReturnCache struct {
	provider ephemeris.Provider

	mu      sync.RWMutex
	moments map[string]returnEntry
}

type returnEntry struct {
	natalSunLon float64
	moment      SolarReturnMoment
}

// NewSolarReturnCache builds an empty cache backed by the given provider.
func NewSolarReturnCache(provider ephemeris.Provider) *SolarReturnCache {
	return &SolarReturnCache{
		provider: provider,
		moments:  make(map[string]returnEntry),
	}
}

func returnKey(profileID string, year int) string {
	return fmt.Sprintf("%s/%d", profileID, year)
}

// Moment returns the solar-return moment for a profile and year, solving and
// caching on first use. Location is optional; when present, house cusps at
// the return instant are included.
func (c *SolarReturnCache) Moment(profileID string, birth time.Time, year int, latitude, longitude *float64) (SolarReturnMoment, error) {
	natalSunLon, err := c.provider.Longitude(ephemeris.JulianDay(birth), ephemeris.BodySun)
	if err != nil {
		return SolarReturnMoment{}, err
	}

	key := returnKey(profileID, year)
	c.mu.RLock()
	entry, ok := c.moments[key]
	c.mu.RUnlock()
	if ok && entry.natalSunLon == natalSunLon {
		return entry.moment, nil
	}

	instant, err := FindSolarReturn(c.provider, birth, natalSunLon, year)
	if err != nil {
		return SolarReturnMoment{}, err
	}

	jd := ephemeris.JulianDay(instant)
	longitudes := make(map[ephemeris.Body]float64, len(ephemeris.ChartBodies))
	for _, body := range ephemeris.ChartBodies {
		lon, err := c.provider.Longitude(jd, body)
		if err != nil {
			return SolarReturnMoment{}, err
		}
		longitudes[body] = lon
	}

	moment := SolarReturnMoment{
		Year:         year,
		Instant:      instant,
		SunLongitude: natalSunLon,
		Longitudes:   longitudes,
	}
	if latitude != nil && longitude != nil {
		houses, err := c.provider.HousesAt(jd, *latitude, *longitude)
		if err != nil {
			return SolarReturnMoment{}, err
		}
		moment.Houses = &houses
	}

	c.mu.Lock()
	c.moments[key] = returnEntry{natalSunLon: natalSunLon, moment: moment}
	c.mu.Unlock()
	return moment, nil
}

// ActiveReturn picks the return moment governing a target date: the target
// year's return if it has already happened, otherwise the previous year's.
func (c *SolarReturnCache) ActiveReturn(profileID string, birth time.Time, target time.Time, latitude, longitude *float64) (SolarReturnMoment, error) {
	moment, err := c.Moment(profileID, birth, target.Year(), latitude, longitude)
	if err != nil {
		return SolarReturnMoment{}, err
	}
	if moment.Instant.After(target) {
		return c.Moment(profileID, birth, target.Year()-1, latitude, longitude)
	}
	return moment, nil
}

// HouseFocus buckets days since the solar return into twelve 30-day houses.
// A year is 5-6 days longer than 360, so the twelfth house absorbs the
// remainder; this is a documented approximation.
func HouseFocus(daysSinceReturn int) int {
	if daysSinceReturn < 0 {
		daysSinceReturn = 0
	}
	bucket := daysSinceReturn / 30
	if bucket > 11 {
		bucket = 11
	}
	return bucket + 1
}

// HouseTheme returns the theme of a house in [1,12].
func HouseTheme(house int) string {
	return houseThemes[house-1]
}

// SolarTransitForDay derives the day's sun sign, sun gate, and profection
// house from the active solar return.
func SolarTransitForDay(provider ephemeris.Provider, moment SolarReturnMoment, target time.Time) (SolarTransit, error) {
	jd := ephemeris.JulianDay(ephemeris.NoonUTC(target.Year(), target.Month(), target.Day()))
	sunLon, err := provider.Longitude(jd, ephemeris.BodySun)
	if err != nil {
		return SolarTransit{}, err
	}

	noon := ephemeris.NoonUTC(target.Year(), target.Month(), target.Day())
	days := int(noon.Sub(moment.Instant).Hours() / 24)
	house := HouseFocus(days)
	theme := HouseTheme(house)

	return SolarTransit{
		SunSign:        signForLongitude(sunLon),
		SunGate:        GateForLongitude(sunLon),
		HouseFocus:     house,
		HouseTheme:     theme,
		TransitMessage: fmt.Sprintf("Focus on %s matters today", strings.ToLower(theme)),
	}, nil
}

// signForLongitude duplicates the zodiac bucket locally to keep this package
// free of a dependency on the moon calculator.
func signForLongitude(longitude float64) string {
	signs := [12]string{
		"Aries", "Taurus", "Gemini", "Cancer",
		"Leo", "Virgo", "Libra", "Scorpio",
		"Sagittarius", "Capricorn", "Aquarius", "Pisces",
	}
	return signs[int(ephemeris.Normalize(longitude)/30)%12]
}
