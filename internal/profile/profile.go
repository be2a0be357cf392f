// Package profile defines birth profiles and their YAML file store.
//
// A Profile is immutable once created: derived caches elsewhere in the engine
// key on the profile ID, so any change to birth data must produce a new
// profile rather than mutating an existing one.
package profile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/starfield-labs/almanac/internal/platform/errors"
)

// TimeRange is an approximate birth time bracket used when the exact time is
// unknown. Each bracket maps to a fixed midpoint for calculations.
type TimeRange string

const (
	TimeExact     TimeRange = "exact"
	TimeMorning   TimeRange = "morning"   // 06:00-11:59, midpoint 09:00
	TimeAfternoon TimeRange = "afternoon" // 12:00-17:59, midpoint 15:00
	TimeEvening   TimeRange = "evening"   // 18:00-21:59, midpoint 20:00
	TimeNight     TimeRange = "night"     // 22:00-05:59, midpoint 02:00
	TimeUnknown   TimeRange = "unknown"   // noon default
)

// Midpoint returns the representative clock time for the bracket.
func (r TimeRange) Midpoint() (hour, minute int) {
	switch r {
	case TimeMorning:
		return 9, 0
	case TimeAfternoon:
		return 15, 0
	case TimeEvening:
		return 20, 0
	case TimeNight:
		return 2, 0
	default:
		return 12, 0
	}
}

func (r TimeRange) valid() bool {
	switch r {
	case TimeExact, TimeMorning, TimeAfternoon, TimeEvening, TimeNight, TimeUnknown, "":
		return true
	}
	return false
}

// Location is a geographic birth or residence location.
type Location struct {
	City      string  `yaml:"city,omitempty"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Timezone  string  `yaml:"timezone,omitempty"`
}

// Profile holds the fixed birth data a daily alignment is computed from.
type Profile struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	BirthDate time.Time `yaml:"birth_date"`
	// BirthTime holds the exact clock time when known; the date component is
	// ignored.
	BirthTime *time.Time `yaml:"birth_time,omitempty"`
	TimeRange TimeRange  `yaml:"time_range,omitempty"`
	Location  *Location  `yaml:"location,omitempty"`

	CreatedAt time.Time `yaml:"created_at"`
}

// New creates a validated profile with a fresh identity.
func New(name string, birthDate time.Time) (Profile, error) {
	p := Profile{
		ID:        uuid.NewString(),
		Name:      name,
		BirthDate: birthDate.UTC(),
		TimeRange: TimeUnknown,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile's birth data.
func (p Profile) Validate() error {
	if p.Name == "" {
		return errors.New(errors.CodeProfileNameEmpty, "profile name cannot be empty")
	}
	if p.BirthDate.IsZero() {
		return errors.New(errors.CodeBirthDateRequired, "birth date is required")
	}
	if year := p.BirthDate.Year(); year < 1800 || year > 2400 {
		return errors.New(errors.CodeBirthDateOutOfRange,
			fmt.Sprintf("birth year %d outside supported range 1800-2400", year))
	}
	if !p.TimeRange.valid() {
		return errors.New(errors.CodeInvalidTimeRange,
			fmt.Sprintf("unknown time range %q", p.TimeRange))
	}
	if p.Location != nil {
		if p.Location.Latitude < -90 || p.Location.Latitude > 90 {
			return errors.New(errors.CodeInvalidLatitude,
				fmt.Sprintf("latitude %.4f outside [-90,90]", p.Location.Latitude))
		}
		if p.Location.Longitude < -180 || p.Location.Longitude > 180 {
			return errors.New(errors.CodeInvalidLongitude,
				fmt.Sprintf("longitude %.4f outside [-180,180]", p.Location.Longitude))
		}
	}
	return nil
}

// HasExactTime reports whether the exact birth time is known.
func (p Profile) HasExactTime() bool {
	return p.BirthTime != nil || p.TimeRange == TimeExact
}

// EffectiveBirthTime returns the clock time used for calculations: the exact
// time when known, otherwise the midpoint of the declared bracket.
func (p Profile) EffectiveBirthTime() (hour, minute int) {
	if p.BirthTime != nil {
		return p.BirthTime.Hour(), p.BirthTime.Minute()
	}
	return p.TimeRange.Midpoint()
}

// BirthInstant returns the combined birth date and effective time in UTC.
func (p Profile) BirthInstant() time.Time {
	hour, minute := p.EffectiveBirthTime()
	d := p.BirthDate
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

// TimeConfidence grades how reliable time-sensitive results are for this
// profile: "high" with an exact time, "medium" with a bracket, "low" otherwise.
func (p Profile) TimeConfidence() string {
	if p.HasExactTime() {
		return "high"
	}
	switch p.TimeRange {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeNight:
		return "medium"
	}
	return "low"
}
