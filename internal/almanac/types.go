package almanac

import (
	"time"

	"github.com/starfield-labs/almanac/internal/biorhythm"
	"github.com/starfield-labs/almanac/internal/humandesign"
	"github.com/starfield-labs/almanac/internal/iching"
	"github.com/starfield-labs/almanac/internal/moon"
	"github.com/starfield-labs/almanac/internal/numerology"
	"github.com/starfield-labs/almanac/internal/risk"
	"github.com/starfield-labs/almanac/internal/spiritual"
	"github.com/starfield-labs/almanac/internal/wellness"
)

// PowerHour is a window of elevated capability.
type PowerHour struct {
	TimeRange  string
	OptimalFor []string
	EnergyType string
}

// CautionPeriod is a window to approach carefully.
type CautionPeriod struct {
	TimeRange string
	Reason    string
	Avoid     []string
	InsteadDo []string
}

// HumanDesignDay bundles the natal chart with the day's transits.
type HumanDesignDay struct {
	Type      string
	Strategy  string
	Authority string
	Signature string
	NotSelf   string

	ActiveGates         []humandesign.GateActivation
	ActiveChannels      []humandesign.Channel
	DefinedCentersToday []string

	DecisionCue      string
	EnergyManagement string
}

// DailyAlignment is the aggregate record for one (profile, date) pair.
// Never mutated after construction.
type DailyAlignment struct {
	Date      time.Time
	DayOfWeek string
	DayOfYear int

	Moon         moon.Report
	SolarTransit humandesign.SolarTransit
	Numerology   numerology.Reading
	HumanDesign  HumanDesignDay
	IChing       iching.Reading
	Biorhythm    biorhythm.Reading
	Risk         risk.Analysis

	MorningRitual wellness.MorningRitual
	Exercise      wellness.Exercise
	Nourishment   wellness.Nourishment
	Meditation    wellness.Meditation
	Journaling    wellness.Journaling
	EveningRitual wellness.EveningRitual

	Spiritual spiritual.Reading

	DailyTheme        string
	ThemeKeywords     []string
	PowerHours        []PowerHour
	CautionPeriods    []CautionPeriod
	Affirmation       string
	DailyMantra       string
	ClosingReflection string
	TomorrowPreview   string
}

// DayResult is one entry of a generated range: either an alignment or the
// error that prevented it.
type DayResult struct {
	Date      time.Time
	Alignment *DailyAlignment
	Err       error
}
