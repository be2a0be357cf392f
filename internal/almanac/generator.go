package almanac

import (
	"context"
	"strconv"
	"time"

	"github.com/starfield-labs/almanac/internal/biorhythm"
	"github.com/starfield-labs/almanac/internal/ephemeris"
	"github.com/starfield-labs/almanac/internal/humandesign"
	"github.com/starfield-labs/almanac/internal/iching"
	"github.com/starfield-labs/almanac/internal/moon"
	"github.com/starfield-labs/almanac/internal/numerology"
	"github.com/starfield-labs/almanac/internal/platform/errors"
	"github.com/starfield-labs/almanac/internal/profile"
	"github.com/starfield-labs/almanac/internal/risk"
	"github.com/starfield-labs/almanac/internal/spiritual"
	"github.com/starfield-labs/almanac/internal/wellness"
)

const defaultWorkers = 4

// Generator runs the synthesis pipeline. Construct once and share; all
// methods are safe for concurrent use.
type Generator struct {
	provider  ephemeris.Provider
	charts    *humandesign.ChartCache
	returns   *humandesign.SolarReturnCache
	hexagrams *iching.Registry
	corpus    *spiritual.Corpus
	workers   int
}

// NewGenerator wires the pipeline around a position provider. Reference
// registries are loaded and validated here, once.
func NewGenerator(provider ephemeris.Provider, workers int) (*Generator, error) {
	hexagrams, err := iching.NewRegistry()
	if err != nil {
		return nil, err
	}
	corpus, err := spiritual.NewCorpus()
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Generator{
		provider:  provider,
		charts:    humandesign.NewChartCache(provider),
		returns:   humandesign.NewSolarReturnCache(provider),
		hexagrams: hexagrams,
		corpus:    corpus,
		workers:   workers,
	}, nil
}

// GenerateDay computes the full alignment for one date. Identical inputs
// always yield an identical result.
func (g *Generator) GenerateDay(ctx context.Context, p profile.Profile, date time.Time) (*DailyAlignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if date.Year() < ephemeris.MinYear || date.Year() > ephemeris.MaxYear {
		return nil, errors.WithMetadata(errors.CodeTargetDateOutOfRange,
			"target date outside supported range",
			map[string]string{"year": strconv.Itoa(date.Year())})
	}

	birthDate := p.BirthDate
	birthInstant := p.BirthInstant()

	moonReport, err := moon.ForDay(g.provider, date)
	if err != nil {
		return nil, err
	}
	numReading := numerology.ForDay(birthDate, date)
	bio := biorhythm.ForDay(birthDate, date)

	chart, err := g.charts.Chart(p.ID, birthInstant)
	if err != nil {
		return nil, err
	}
	transits, err := humandesign.TransitsForDay(g.provider, chart, date)
	if err != nil {
		return nil, err
	}

	var lat, lon *float64
	if p.Location != nil {
		lat, lon = &p.Location.Latitude, &p.Location.Longitude
	}
	moment, err := g.returns.ActiveReturn(p.ID, birthInstant, ephemeris.NoonUTC(date.Year(), date.Month(), date.Day()), lat, lon)
	if err != nil {
		return nil, err
	}
	solarTransit, err := humandesign.SolarTransitForDay(g.provider, moment, date)
	if err != nil {
		return nil, err
	}

	ichingReading, err := g.hexagrams.ForDay(transits)
	if err != nil {
		return nil, err
	}

	riskAnalysis := risk.Analyze(moonReport, bio, numReading)

	alignment := &DailyAlignment{
		Date:      date,
		DayOfWeek: date.Weekday().String(),
		DayOfYear: date.YearDay(),

		Moon:         moonReport,
		SolarTransit: solarTransit,
		Numerology:   numReading,
		HumanDesign: HumanDesignDay{
			Type:      chart.Type,
			Strategy:  chart.Strategy,
			Authority: chart.Authority,
			Signature: chart.Signature,
			NotSelf:   chart.NotSelf,

			ActiveGates:         transits.ActiveGates,
			ActiveChannels:      transits.ActiveChannels,
			DefinedCentersToday: transits.DefinedCentersToday,

			DecisionCue:      transits.DecisionCue,
			EnergyManagement: transits.EnergyManagement,
		},
		IChing:    ichingReading,
		Biorhythm: bio,
		Risk:      riskAnalysis,

		MorningRitual: wellness.MorningRitualForDay(moonReport, bio),
		Exercise:      wellness.ExerciseForDay(bio, moonReport),
		Nourishment:   wellness.NourishmentForDay(moonReport, bio),
		Meditation:    wellness.MeditationForDay(moonReport, bio),
		Journaling:    wellness.JournalingForDay(moonReport, bio),
		EveningRitual: wellness.EveningRitualForDay(bio),
	}

	alignment.DailyTheme = dailyTheme(moonReport, numReading)
	alignment.ThemeKeywords = themeKeywords(moonReport, numReading, chart)
	alignment.Spiritual = g.corpus.ForDay(date, moonReport.Element, moonReport.EnergyTheme, alignment.ThemeKeywords)
	alignment.PowerHours = powerHours(bio)
	alignment.CautionPeriods = cautionPeriods(moonReport, bio)
	alignment.Affirmation = affirmationForElement(moonReport.Element)
	alignment.DailyMantra = mantraForHexagram(ichingReading)
	alignment.ClosingReflection = closingReflection(moonReport)
	alignment.TomorrowPreview = "New energies await tomorrow - trust the unfolding"
	return alignment, nil
}
