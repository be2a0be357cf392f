// Package wellness turns biorhythm and moon-element readings into exercise,
// nourishment, and daily practice recommendations.
package wellness

import (
	"fmt"
	"strings"

	"github.com/starfield-labs/almanac/internal/biorhythm"
	"github.com/starfield-labs/almanac/internal/moon"
)

// Exercise is the day's movement recommendation.
type Exercise struct {
	Type            string
	Intensity       string
	OptimalTime     string
	DurationMinutes int
	Activities      []string
	AvoidToday      []string
	Rationale       string
}

// elementExercises lists supplementary activities per moon element. An
// unrecognized element gets no supplement.
var elementExercises = map[string][]string{
	"Fire":  {"HIIT", "Running", "Power yoga", "Boxing", "Dancing"},
	"Earth": {"Weight training", "Hiking", "Pilates", "Gardening", "Walking"},
	"Air":   {"Dance", "Cycling", "Varied circuits", "Tennis", "Jump rope"},
	"Water": {"Swimming", "Flow yoga", "Tai chi", "Aqua aerobics", "Surfing"},
}

// ExerciseForDay selects the exercise recommendation. A physical critical
// day short-circuits to recovery regardless of the other inputs.
func ExerciseForDay(bio biorhythm.Reading, moonReport moon.Report) Exercise {
	if bio.PhysicalCritical {
		return Exercise{
			Type:            "Rest/Gentle Movement",
			Intensity:       "Recovery",
			OptimalTime:     "Listen to your body",
			DurationMinutes: 20,
			Activities:      []string{"Gentle stretching", "Short walk", "Restorative yoga"},
			AvoidToday:      []string{"High intensity", "Heavy lifting", "Competitive sports"},
			Rationale:       "Physical biorhythm at critical point - prioritize recovery",
		}
	}

	var rec Exercise
	switch {
	case bio.Physical > 70:
		rec = Exercise{Type: "High Intensity Training", Intensity: "High",
			DurationMinutes: 45, OptimalTime: "Morning (7-9 AM)"}
	case bio.Physical > 50:
		rec = Exercise{Type: "Strength Training", Intensity: "Moderate-High",
			DurationMinutes: 40, OptimalTime: "Morning (8-10 AM)"}
	default:
		rec = Exercise{Type: "Moderate Cardio", Intensity: "Moderate",
			DurationMinutes: 30, OptimalTime: "Mid-morning (9-11 AM)"}
	}

	if activities, ok := elementExercises[moonReport.Element]; ok {
		rec.Activities = activities[:3]
	}

	var avoid []string
	if bio.Physical < -30 {
		avoid = append(avoid, "High-intensity cardio", "Heavy weights")
	}
	if bio.Emotional < -30 {
		avoid = append(avoid, "Competitive sports")
	}
	if bio.Intellectual < -30 {
		avoid = append(avoid, "Complex new routines")
	}
	if len(avoid) == 0 {
		avoid = []string{"Overexertion beyond energy levels"}
	}
	if len(avoid) > 3 {
		avoid = avoid[:3]
	}
	rec.AvoidToday = avoid

	rec.Rationale = fmt.Sprintf("Physical biorhythm at %.0f%%, %s moon energy favors %s-aligned activities",
		bio.Physical, moonReport.Element, strings.ToLower(moonReport.Element))
	return rec
}

// Nourishment is the day's dietary guidance.
type Nourishment struct {
	ElementFocus string
	Emphasize    []string
	Minimize     []string
	Hydration    string
	MealTiming   string
	Breakfast    string
	Lunch        string
	Dinner       string
	Snacks       []string
}

type nourishmentTable struct {
	focus     string
	emphasize []string
	minimize  []string
	hydration string
	breakfast string
	lunch     string
	dinner    string
	snacks    []string
}

var elementNourishment = map[string]nourishmentTable{
	"Fire": {
		focus:     "Cooling and light",
		emphasize: []string{"Fresh salads", "Fruits", "Cucumber", "Mint", "Coconut water"},
		minimize:  []string{"Heavy meats", "Spicy foods", "Alcohol", "Excessive caffeine"},
		hydration: "Extra water and cooling beverages",
		breakfast: "Fresh fruit smoothie with greens",
		lunch:     "Large colorful salad with light protein",
		dinner:    "Grilled fish with steamed vegetables",
		snacks:    []string{"Fresh fruit", "Coconut", "Cooling herbal tea"},
	},
	"Earth": {
		focus:     "Grounding and nourishing",
		emphasize: []string{"Root vegetables", "Whole grains", "Legumes", "Nuts", "Mushrooms"},
		minimize:  []string{"Processed foods", "Excessive sugar", "Light/airy foods"},
		hydration: "Warm herbal teas, room temperature water",
		breakfast: "Warm oatmeal with nuts and seeds",
		lunch:     "Hearty grain bowl with roasted vegetables",
		dinner:    "Root vegetable stew with whole grain bread",
		snacks:    []string{"Trail mix", "Hummus with vegetables", "Whole grain crackers"},
	},
	"Air": {
		focus:     "Light and varied",
		emphasize: []string{"Leafy greens", "Light proteins", "Seeds", "Sprouts", "Berries"},
		minimize:  []string{"Heavy, dense foods", "Large portions", "Fried foods"},
		hydration: "Consistent hydration throughout day",
		breakfast: "Light yogurt parfait with granola",
		lunch:     "Variety of small dishes, tapas style",
		dinner:    "Light stir-fry with diverse vegetables",
		snacks:    []string{"Seeds", "Light crackers", "Fresh berries"},
	},
	"Water": {
		focus:     "Warming and comforting",
		emphasize: []string{"Soups", "Stews", "Ginger", "Cinnamon", "Warming spices"},
		minimize:  []string{"Cold foods", "Raw foods", "Excessive dairy", "Ice water"},
		hydration: "Warm water, ginger tea, herbal infusions",
		breakfast: "Warm porridge with cinnamon and honey",
		lunch:     "Nourishing soup with whole grain bread",
		dinner:    "Comforting stew or curry",
		snacks:    []string{"Warm spiced milk", "Baked apple", "Ginger cookies"},
	},
}

// NourishmentForDay selects the dietary guidance for the moon element,
// defaulting to Earth when the element is unrecognized. Meal timing follows
// the sign of the physical biorhythm.
func NourishmentForDay(moonReport moon.Report, bio biorhythm.Reading) Nourishment {
	table, ok := elementNourishment[moonReport.Element]
	if !ok {
		table = elementNourishment["Earth"]
	}

	var timing string
	switch {
	case bio.Physical < 0:
		timing = "Earlier, lighter dinner recommended (by 6:30 PM)"
	case bio.OverallEnergy == "High":
		timing = "Normal timing with adequate portions for activity"
	default:
		timing = "Standard timing, moderate portions"
	}

	return Nourishment{
		ElementFocus: table.focus,
		Emphasize:    table.emphasize,
		Minimize:     table.minimize,
		Hydration:    table.hydration,
		MealTiming:   timing,
		Breakfast:    table.breakfast,
		Lunch:        table.lunch,
		Dinner:       table.dinner,
		Snacks:       table.snacks,
	}
}
