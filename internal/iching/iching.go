// Package iching resolves Human Design gates into I Ching hexagrams and
// selects the day's wisdom texts.
//
// The 64 gates map 1:1 onto the 64 hexagrams. The reference table ships as
// embedded YAML and is validated once at registry construction.
package iching

import (
	_ "embed"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/starfield-labs/almanac/internal/humandesign"
	"github.com/starfield-labs/almanac/internal/platform/errors"
)

//go:embed data/hexagrams.yaml
var hexagramData []byte

// Hexagram is one reference entry.
type Hexagram struct {
	Number       int    `yaml:"number"`
	Name         string `yaml:"name"`
	TrigramAbove string `yaml:"trigram_above"`
	TrigramBelow string `yaml:"trigram_below"`
}

// Registry holds the validated hexagram table. Immutable after construction
// and safe for concurrent use.
type Registry struct {
	byNumber map[int]Hexagram
}

type hexagramFile struct {
	Hexagrams []Hexagram `yaml:"hexagrams"`
}

// NewRegistry parses and validates the embedded reference table.
func NewRegistry() (*Registry, error) {
	var file hexagramFile
	if err := yaml.Unmarshal(hexagramData, &file); err != nil {
		return nil, errors.Wrap(errors.CodeDataIntegrity, "hexagram table unreadable", err)
	}
	if len(file.Hexagrams) != 64 {
		return nil, errors.New(errors.CodeDataIntegrity, "hexagram table must have 64 entries")
	}

	byNumber := make(map[int]Hexagram, 64)
	for _, h := range file.Hexagrams {
		if h.Number < 1 || h.Number > 64 {
			return nil, errors.New(errors.CodeDataIntegrity, "hexagram number out of range")
		}
		if h.Name == "" || h.TrigramAbove == "" || h.TrigramBelow == "" {
			return nil, errors.New(errors.CodeDataIntegrity, "incomplete hexagram entry")
		}
		if _, dup := byNumber[h.Number]; dup {
			return nil, errors.New(errors.CodeDataIntegrity, "duplicate hexagram number")
		}
		byNumber[h.Number] = h
	}
	return &Registry{byNumber: byNumber}, nil
}

// Hexagram returns the entry for a gate number.
func (r *Registry) Hexagram(number int) (Hexagram, error) {
	h, ok := r.byNumber[number]
	if !ok {
		return Hexagram{}, errors.WithMetadata(errors.CodeDataIntegrity,
			"unknown hexagram number", map[string]string{"number": strconv.Itoa(number)})
	}
	return h, nil
}

// Reading is the day's I Ching guidance.
type Reading struct {
	HexagramNumber int
	HexagramName   string
	TrigramAbove   string
	TrigramBelow   string
	ChangingLines  []int
	Judgment       string
	Image          string
	DailyWisdom    string
	ActionGuidance string
	Caution        string
}

// ForDay resolves the day's hexagram from the Sun gate among the active
// transits. The Sun must be present in the transit set.
func (r *Registry) ForDay(transits humandesign.Transits) (Reading, error) {
	sun, ok := transits.SunGate()
	if !ok {
		return Reading{}, errors.New(errors.CodeDataIntegrity,
			"sun gate absent from daily transits")
	}

	h, err := r.Hexagram(sun.Gate)
	if err != nil {
		return Reading{}, err
	}

	return Reading{
		HexagramNumber: h.Number,
		HexagramName:   h.Name,
		TrigramAbove:   h.TrigramAbove,
		TrigramBelow:   h.TrigramBelow,
		ChangingLines:  []int{sun.Line},
		Judgment:       "Contemplate the day's energy and act accordingly",
		Image:          "The wise one aligns with natural rhythms",
		DailyWisdom:    wisdomTexts[textIndex(h.Number, sun.Line, len(wisdomTexts))],
		ActionGuidance: actionTexts[textIndex(h.Number, sun.Line, len(actionTexts))],
		Caution:        cautionTexts[textIndex(h.Number, sun.Line, len(cautionTexts))],
	}, nil
}

// textIndex folds hexagram and line into a stable pool index.
func textIndex(hexagram, line, size int) int {
	return (hexagram*6 + line) % size
}
