package almanac

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starfield-labs/almanac/internal/platform/errors"
	"github.com/starfield-labs/almanac/internal/profile"
)

// GenerateRange computes every day in [start, end] inclusive, ascending.
// Days failing with an ephemeris error are reported as failed entries while
// the rest of the range completes; any other error aborts the range.
func (g *Generator) GenerateRange(ctx context.Context, p profile.Profile, start, end time.Time) ([]DayResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	start = midnightUTC(start)
	end = midnightUTC(end)
	if end.Before(start) {
		return nil, errors.New(errors.CodeDateRangeInverted, "range end precedes start")
	}

	if err := g.warmCaches(p, start, end); err != nil {
		return nil, err
	}

	days := int(end.Sub(start).Hours()/24) + 1
	results := make([]DayResult, days)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(g.workers)
	for i := 0; i < days; i++ {
		i := i
		date := start.AddDate(0, 0, i)
		group.Go(func() error {
			alignment, err := g.GenerateDay(ctx, p, date)
			if err != nil {
				if errors.IsCode(err, errors.CodeEphemerisUnavailable) {
					results[i] = DayResult{Date: date, Err: err}
					return nil
				}
				return err
			}
			results[i] = DayResult{Date: date, Alignment: alignment}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// warmCaches populates the natal chart and the solar returns covering the
// range before fan-out, so workers only read them. Warming is best effort
// for ephemeris-range failures: a return near the supported boundary may be
// unresolvable even though most dates in the range never consult it, so
// per-day generation surfaces the error only for the dates that do.
func (g *Generator) warmCaches(p profile.Profile, start, end time.Time) error {
	birthInstant := p.BirthInstant()
	if _, err := g.charts.Chart(p.ID, birthInstant); err != nil && !errors.IsCode(err, errors.CodeEphemerisUnavailable) {
		return err
	}

	var lat, lon *float64
	if p.Location != nil {
		lat, lon = &p.Location.Latitude, &p.Location.Longitude
	}
	// The active return for an early date can belong to the prior year.
	for year := start.Year() - 1; year <= end.Year(); year++ {
		if _, err := g.returns.Moment(p.ID, birthInstant, year, lat, lon); err != nil && !errors.IsCode(err, errors.CodeEphemerisUnavailable) {
			return err
		}
	}
	return nil
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
