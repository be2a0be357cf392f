// Package export serializes generated alignments for downstream use. CSV
// flattens each day into one tabular row; JSON preserves the full structure.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/starfield-labs/almanac/internal/almanac"
	"github.com/starfield-labs/almanac/internal/platform/errors"
)

// csvHeader lists the flattened columns, in output order.
var csvHeader = []string{
	"date", "day_of_week", "day_of_year", "daily_theme",
	"moon_phase", "moon_illumination", "moon_sign", "moon_element",
	"moon_modality", "moon_voc", "moon_energy_theme",
	"sun_sign", "sun_gate", "house_focus", "house_theme",
	"life_path", "personal_year", "personal_month", "personal_day",
	"universal_day", "num_day_theme", "energy_quality",
	"hd_type", "hd_strategy", "hd_authority", "hd_gates", "hd_signature",
	"hexagram_number", "hexagram_name",
	"bio_physical", "bio_emotional", "bio_intellectual", "bio_overall_energy",
	"risk_level",
	"affirmation", "mantra",
}

// WriteCSV writes one header row plus one row per alignment.
func WriteCSV(w io.Writer, alignments []almanac.DailyAlignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(errors.CodeExportFailed, "writing csv header", err)
	}
	for _, alignment := range alignments {
		if err := cw.Write(csvRow(alignment)); err != nil {
			return errors.Wrap(errors.CodeExportFailed, "writing csv row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.CodeExportFailed, "flushing csv", err)
	}
	return nil
}

func csvRow(a almanac.DailyAlignment) []string {
	gates := make([]string, 0, len(a.HumanDesign.ActiveGates))
	for _, g := range a.HumanDesign.ActiveGates {
		gates = append(gates, fmt.Sprintf("%s:G%dL%d", g.Body, g.Gate, g.Line))
	}
	return []string{
		a.Date.Format(time.DateOnly),
		a.DayOfWeek,
		strconv.Itoa(a.DayOfYear),
		a.DailyTheme,

		a.Moon.Phase,
		formatFloat(a.Moon.Illumination),
		a.Moon.Sign,
		a.Moon.Element,
		a.Moon.Modality,
		strconv.FormatBool(a.Moon.VoidOfCourse),
		a.Moon.EnergyTheme,

		a.SolarTransit.SunSign,
		strconv.Itoa(a.SolarTransit.SunGate),
		strconv.Itoa(a.SolarTransit.HouseFocus),
		a.SolarTransit.HouseTheme,

		strconv.Itoa(a.Numerology.LifePath),
		strconv.Itoa(a.Numerology.PersonalYear),
		strconv.Itoa(a.Numerology.PersonalMonth),
		strconv.Itoa(a.Numerology.PersonalDay),
		strconv.Itoa(a.Numerology.UniversalDay),
		a.Numerology.DayTheme,
		a.Numerology.EnergyQuality,

		a.HumanDesign.Type,
		a.HumanDesign.Strategy,
		a.HumanDesign.Authority,
		strings.Join(gates, "; "),
		a.HumanDesign.Signature,

		strconv.Itoa(a.IChing.HexagramNumber),
		a.IChing.HexagramName,

		formatFloat(a.Biorhythm.Physical),
		formatFloat(a.Biorhythm.Emotional),
		formatFloat(a.Biorhythm.Intellectual),
		a.Biorhythm.OverallEnergy,

		a.Risk.OverallLevel,

		a.Affirmation,
		a.DailyMantra,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// WriteJSON writes the alignments as an indented JSON array, dates first.
func WriteJSON(w io.Writer, alignments []almanac.DailyAlignment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(alignments); err != nil {
		return errors.Wrap(errors.CodeExportFailed, "encoding json", err)
	}
	return nil
}
