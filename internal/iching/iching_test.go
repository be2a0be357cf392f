package iching

import (
	"testing"

	"github.com/starfield-labs/almanac/internal/ephemeris"
	"github.com/starfield-labs/almanac/internal/humandesign"
	"github.com/starfield-labs/almanac/internal/platform/errors"
)

// TestNewRegistryValidatesTable ensures the embedded table parses into 64
// complete entries.
func TestNewRegistryValidatesTable(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	for n := 1; n <= 64; n++ {
		h, err := registry.Hexagram(n)
		if err != nil {
			t.Fatalf("Hexagram(%d): %v", n, err)
		}
		if h.Number != n || h.Name == "" {
			t.Fatalf("bad entry for %d: %+v", n, h)
		}
	}
}

// TestHexagramTrigramsFollowFormula checks the trigram assignment against
// the eight-by-eight layout.
func TestHexagramTrigramsFollowFormula(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	trigrams := []string{"Heaven", "Earth", "Thunder", "Water", "Mountain", "Wind", "Fire", "Lake"}
	for n := 1; n <= 64; n++ {
		h, err := registry.Hexagram(n)
		if err != nil {
			t.Fatalf("Hexagram(%d): %v", n, err)
		}
		if h.TrigramAbove != trigrams[(n-1)/8] {
			t.Fatalf("hexagram %d trigram above = %q, want %q", n, h.TrigramAbove, trigrams[(n-1)/8])
		}
		if h.TrigramBelow != trigrams[(n-1)%8] {
			t.Fatalf("hexagram %d trigram below = %q, want %q", n, h.TrigramBelow, trigrams[(n-1)%8])
		}
	}
}

// TestHexagramUnknownNumber ensures out-of-table lookups fail with a data
// integrity code.
func TestHexagramUnknownNumber(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	_, err = registry.Hexagram(65)
	if !errors.IsCode(err, errors.CodeDataIntegrity) {
		t.Fatalf("expected DATA_INTEGRITY, got %v", err)
	}
}

// TestForDayUsesSunGate resolves the hexagram from the Sun activation.
func TestForDayUsesSunGate(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	transits := humandesign.Transits{
		ActiveGates: []humandesign.GateActivation{
			{Gate: 25, Line: 2, Body: ephemeris.BodyMoon},
			{Gate: 1, Line: 3, Body: ephemeris.BodySun},
		},
	}

	reading, err := registry.ForDay(transits)
	if err != nil {
		t.Fatalf("ForDay: %v", err)
	}
	if reading.HexagramNumber != 1 || reading.HexagramName != "The Creative" {
		t.Fatalf("unexpected hexagram: %+v", reading)
	}
	if len(reading.ChangingLines) != 1 || reading.ChangingLines[0] != 3 {
		t.Fatalf("changing lines = %v, want [3]", reading.ChangingLines)
	}
	if reading.DailyWisdom == "" || reading.ActionGuidance == "" || reading.Caution == "" {
		t.Fatalf("missing texts: %+v", reading)
	}
}

// TestForDayDeterministic ensures repeated resolution yields identical texts.
func TestForDayDeterministic(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	transits := humandesign.Transits{
		ActiveGates: []humandesign.GateActivation{
			{Gate: 40, Line: 5, Body: ephemeris.BodySun},
		},
	}

	first, err := registry.ForDay(transits)
	if err != nil {
		t.Fatalf("ForDay: %v", err)
	}
	second, err := registry.ForDay(transits)
	if err != nil {
		t.Fatalf("ForDay: %v", err)
	}
	if first.DailyWisdom != second.DailyWisdom ||
		first.ActionGuidance != second.ActionGuidance ||
		first.Caution != second.Caution {
		t.Fatalf("texts differ between runs: %+v vs %+v", first, second)
	}
}

// TestForDayMissingSunGate fails with a data integrity error rather than
// silently picking another body.
func TestForDayMissingSunGate(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	transits := humandesign.Transits{
		ActiveGates: []humandesign.GateActivation{
			{Gate: 25, Line: 2, Body: ephemeris.BodyMoon},
		},
	}

	_, err = registry.ForDay(transits)
	if !errors.IsCode(err, errors.CodeDataIntegrity) {
		t.Fatalf("expected DATA_INTEGRITY, got %v", err)
	}
}
