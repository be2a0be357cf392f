package ephemeris

import (
	"math"
	"testing"
	"time"

	"github.com/starfield-labs/almanac/internal/platform/errors"
)

// TestJulianDayKnownEpoch verifies the J2000 reference instant.
func TestJulianDayKnownEpoch(t *testing.T) {
	jd := JulianDay(time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(jd-2451545.0) > 1e-6 {
		t.Fatalf("expected J2000 = 2451545.0, got %f", jd)
	}
}

// TestJulianDayRoundTrip verifies Instant inverts JulianDay to the millisecond.
func TestJulianDayRoundTrip(t *testing.T) {
	original := time.Date(1985, time.March, 15, 9, 30, 15, 0, time.UTC)
	restored := Instant(JulianDay(original))
	if !restored.Equal(original) {
		t.Fatalf("round trip mismatch: %v != %v", restored, original)
	}
}

// TestNormalize verifies true non-negative modulo behavior.
func TestNormalize(t *testing.T) {
	tcs := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{361.5, 1.5},
		{-1, 359},
		{-725, 355},
		{180, 180},
	}
	for _, tc := range tcs {
		if got := Normalize(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Normalize(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

// TestAngleDiffUnwrapsSeam verifies differences near 0/360 stay continuous.
func TestAngleDiffUnwrapsSeam(t *testing.T) {
	if d := AngleDiff(359, 1); math.Abs(d-(-2)) > 1e-9 {
		t.Fatalf("AngleDiff(359,1) = %f, want -2", d)
	}
	if d := AngleDiff(1, 359); math.Abs(d-2) > 1e-9 {
		t.Fatalf("AngleDiff(1,359) = %f, want 2", d)
	}
	if d := AngleDiff(180, 0); math.Abs(d-180) > 1e-9 {
		t.Fatalf("AngleDiff(180,0) = %f, want 180", d)
	}
}

// TestApproxSunAtEpoch verifies the Sun's mean longitude at J2000.
func TestApproxSunAtEpoch(t *testing.T) {
	provider := NewApprox()
	lon, err := provider.Longitude(j2000, BodySun)
	if err != nil {
		t.Fatalf("Longitude returned error: %v", err)
	}
	if math.Abs(lon-280.466) > 1e-6 {
		t.Fatalf("expected 280.466, got %f", lon)
	}
}

// TestApproxEarthOppositeSun verifies Earth is the Sun's antipode.
func TestApproxEarthOppositeSun(t *testing.T) {
	provider := NewApprox()
	jd := JulianDay(time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC))
	sun, err := provider.Longitude(jd, BodySun)
	if err != nil {
		t.Fatalf("sun longitude: %v", err)
	}
	earth, err := provider.Longitude(jd, BodyEarth)
	if err != nil {
		t.Fatalf("earth longitude: %v", err)
	}
	if math.Abs(math.Abs(AngleDiff(earth, sun))-180) > 1e-9 {
		t.Fatalf("expected Earth opposite Sun, got sun=%f earth=%f", sun, earth)
	}
}

// TestApproxAllChartBodies verifies every chart body resolves to a normalized
// longitude.
func TestApproxAllChartBodies(t *testing.T) {
	provider := NewApprox()
	jd := JulianDay(time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC))
	for _, body := range ChartBodies {
		lon, err := provider.Longitude(jd, body)
		if err != nil {
			t.Fatalf("Longitude(%s) returned error: %v", body, err)
		}
		if lon < 0 || lon >= 360 {
			t.Fatalf("Longitude(%s) = %f outside [0,360)", body, lon)
		}
	}
}

// TestApproxRejectsOutOfRangeInstant verifies the supported-year guard.
func TestApproxRejectsOutOfRangeInstant(t *testing.T) {
	provider := NewApprox()
	jd := JulianDay(time.Date(1500, time.January, 1, 0, 0, 0, 0, time.UTC))
	_, err := provider.Longitude(jd, BodySun)
	if !errors.IsCode(err, errors.CodeEphemerisUnavailable) {
		t.Fatalf("expected EPHEMERIS_UNAVAILABLE, got %v", err)
	}
}

// TestApproxHousesWholeSign verifies cusps are sign boundaries anchored at the
// ascendant's sign.
func TestApproxHousesWholeSign(t *testing.T) {
	provider := NewApprox()
	jd := JulianDay(time.Date(2026, time.March, 20, 18, 0, 0, 0, time.UTC))
	houses, err := provider.HousesAt(jd, 30.2672, -97.7431)
	if err != nil {
		t.Fatalf("HousesAt returned error: %v", err)
	}
	first := math.Floor(houses.Ascendant/30) * 30
	for i, cusp := range houses.Cusps {
		want := Normalize(first + float64(i)*30)
		if math.Abs(cusp-want) > 1e-9 {
			t.Fatalf("cusp %d = %f, want %f", i+1, cusp, want)
		}
	}
}

// TestApproxHousesRejectsBadLatitude verifies coordinate validation.
func TestApproxHousesRejectsBadLatitude(t *testing.T) {
	provider := NewApprox()
	_, err := provider.HousesAt(j2000, 91, 0)
	if !errors.IsCode(err, errors.CodeInvalidLatitude) {
		t.Fatalf("expected INVALID_LATITUDE, got %v", err)
	}
}

// countingProvider wraps Approx and counts longitude computations.
type countingProvider struct {
	inner Provider
	calls int
}

func (c *countingProvider) Longitude(jd float64, body Body) (float64, error) {
	c.calls++
	return c.inner.Longitude(jd, body)
}

func (c *countingProvider) HousesAt(jd float64, lat, lon float64) (Houses, error) {
	return c.inner.HousesAt(jd, lat, lon)
}

// TestCacheMemoizesLongitudes verifies repeated lookups hit the memo.
func TestCacheMemoizesLongitudes(t *testing.T) {
	counting := &countingProvider{inner: NewApprox()}
	cache := NewCache(counting)

	first, err := cache.Longitude(j2000, BodyMoon)
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	second, err := cache.Longitude(j2000, BodyMoon)
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if first != second {
		t.Fatalf("cache returned different values: %f != %f", first, second)
	}
	if counting.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", counting.calls)
	}
}
