package ephemeris

import (
	"math"
	"time"
)

// jdUnixEpoch is the Julian Day of the Unix epoch (1970-01-01T00:00:00Z).
const jdUnixEpoch = 2440587.5

const secondsPerDay = 86400.0

// JulianDay converts an instant to its Julian Day number.
func JulianDay(t time.Time) float64 {
	return jdUnixEpoch + float64(t.UnixMilli())/1000.0/secondsPerDay
}

// Instant converts a Julian Day number back to a UTC instant, rounded to the
// nearest millisecond.
func Instant(jd float64) time.Time {
	millis := math.Round((jd - jdUnixEpoch) * secondsPerDay * 1000.0)
	return time.UnixMilli(int64(millis)).UTC()
}

// NoonUTC returns the instant at 12:00 UTC on the given calendar date.
// Daily snapshots are anchored at noon so a single sample represents the day.
func NoonUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
