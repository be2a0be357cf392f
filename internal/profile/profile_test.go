package profile

import (
	"testing"
	"time"

	"github.com/starfield-labs/almanac/internal/platform/errors"
)

func testProfile(t *testing.T) Profile {
	t.Helper()
	p, err := New("test", time.Date(1985, time.March, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return p
}

// TestNewAssignsIdentity ensures fresh profiles carry a unique ID.
func TestNewAssignsIdentity(t *testing.T) {
	a := testProfile(t)
	b := testProfile(t)
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct IDs, both %q", a.ID)
	}
}

// TestValidateRejectsEmptyName ensures the name is required.
func TestValidateRejectsEmptyName(t *testing.T) {
	_, err := New("", time.Date(1985, time.March, 15, 0, 0, 0, 0, time.UTC))
	if !errors.IsCode(err, errors.CodeProfileNameEmpty) {
		t.Fatalf("expected PROFILE_NAME_EMPTY, got %v", err)
	}
}

// TestValidateRejectsBirthYearOutOfRange ensures the supported-year guard.
func TestValidateRejectsBirthYearOutOfRange(t *testing.T) {
	_, err := New("early", time.Date(1750, time.January, 1, 0, 0, 0, 0, time.UTC))
	if !errors.IsCode(err, errors.CodeBirthDateOutOfRange) {
		t.Fatalf("expected BIRTH_DATE_OUT_OF_RANGE, got %v", err)
	}
}

// TestValidateRejectsBadCoordinates ensures location bounds are enforced.
func TestValidateRejectsBadCoordinates(t *testing.T) {
	p := testProfile(t)
	p.Location = &Location{Latitude: 95, Longitude: 0}
	if err := p.Validate(); !errors.IsCode(err, errors.CodeInvalidLatitude) {
		t.Fatalf("expected INVALID_LATITUDE, got %v", err)
	}
	p.Location = &Location{Latitude: 0, Longitude: 200}
	if err := p.Validate(); !errors.IsCode(err, errors.CodeInvalidLongitude) {
		t.Fatalf("expected INVALID_LONGITUDE, got %v", err)
	}
}

// TestTimeRangeMidpoints verifies the documented bracket midpoints.
func TestTimeRangeMidpoints(t *testing.T) {
	tcs := []struct {
		bracket TimeRange
		hour    int
	}{
		{TimeMorning, 9},
		{TimeAfternoon, 15},
		{TimeEvening, 20},
		{TimeNight, 2},
		{TimeUnknown, 12},
	}
	for _, tc := range tcs {
		hour, minute := tc.bracket.Midpoint()
		if hour != tc.hour || minute != 0 {
			t.Fatalf("%s midpoint = %02d:%02d, want %02d:00", tc.bracket, hour, minute, tc.hour)
		}
	}
}

// TestBirthInstantUsesExactTime verifies exact time wins over the bracket.
func TestBirthInstantUsesExactTime(t *testing.T) {
	p := testProfile(t)
	exact := time.Date(0, time.January, 1, 14, 32, 0, 0, time.UTC)
	p.BirthTime = &exact
	p.TimeRange = TimeMorning

	instant := p.BirthInstant()
	if instant.Hour() != 14 || instant.Minute() != 32 {
		t.Fatalf("expected 14:32, got %02d:%02d", instant.Hour(), instant.Minute())
	}
	if instant.Year() != 1985 || instant.Month() != time.March || instant.Day() != 15 {
		t.Fatalf("expected birth date preserved, got %v", instant)
	}
}

// TestBirthInstantDefaultsToNoon verifies the unknown-time default.
func TestBirthInstantDefaultsToNoon(t *testing.T) {
	p := testProfile(t)
	if instant := p.BirthInstant(); instant.Hour() != 12 {
		t.Fatalf("expected noon default, got %v", instant)
	}
}

// TestTimeConfidence verifies the confidence grading ladder.
func TestTimeConfidence(t *testing.T) {
	p := testProfile(t)
	if got := p.TimeConfidence(); got != "low" {
		t.Fatalf("unknown bracket confidence = %q, want low", got)
	}
	p.TimeRange = TimeEvening
	if got := p.TimeConfidence(); got != "medium" {
		t.Fatalf("bracket confidence = %q, want medium", got)
	}
	exact := time.Date(0, time.January, 1, 8, 15, 0, 0, time.UTC)
	p.BirthTime = &exact
	if got := p.TimeConfidence(); got != "high" {
		t.Fatalf("exact confidence = %q, want high", got)
	}
}
