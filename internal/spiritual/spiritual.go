// Package spiritual selects a daily passage from a curated corpus of
// traditional texts, keyed by the day's moon element.
//
// Selection is fully deterministic: the same date and keywords always yield
// the same passage. No randomness is involved.
package spiritual

import (
	_ "embed"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/starfield-labs/almanac/internal/platform/errors"
)

//go:embed data/corpus.yaml
var corpusData []byte

// elementTraditions maps moon elements to their primary tradition. Unmapped
// elements fall back to the universal collection.
var elementTraditions = map[string]string{
	"Earth": "Taoist",
	"Fire":  "Stoic",
	"Water": "Sufi",
	"Air":   "Buddhist",
}

const fallbackTradition = "Universal"

// Passage is one corpus entry.
type Passage struct {
	Reference string `yaml:"reference"`
	Text      string `yaml:"text"`
}

// Tradition is one corpus source with its passages.
type Tradition struct {
	Name         string    `yaml:"name"`
	SourceTitle  string    `yaml:"source_title"`
	SourceAuthor string    `yaml:"source_author"`
	SourceType   string    `yaml:"source_type"`
	Passages     []Passage `yaml:"passages"`
}

// Corpus holds the validated text collections. Immutable after construction.
type Corpus struct {
	traditions map[string]Tradition
}

type corpusFile struct {
	Traditions []Tradition `yaml:"traditions"`
}

// NewCorpus parses and validates the embedded corpus.
func NewCorpus() (*Corpus, error) {
	var file corpusFile
	if err := yaml.Unmarshal(corpusData, &file); err != nil {
		return nil, errors.Wrap(errors.CodeDataIntegrity, "spiritual corpus unreadable", err)
	}

	traditions := make(map[string]Tradition, len(file.Traditions))
	for _, tradition := range file.Traditions {
		if tradition.Name == "" || tradition.SourceTitle == "" || len(tradition.Passages) == 0 {
			return nil, errors.New(errors.CodeDataIntegrity, "incomplete corpus tradition")
		}
		for _, p := range tradition.Passages {
			if p.Text == "" || p.Reference == "" {
				return nil, errors.New(errors.CodeDataIntegrity, "incomplete corpus passage")
			}
		}
		traditions[tradition.Name] = tradition
	}
	for _, name := range elementTraditions {
		if _, ok := traditions[name]; !ok {
			return nil, errors.WithMetadata(errors.CodeDataIntegrity,
				"corpus missing mapped tradition", map[string]string{"tradition": name})
		}
	}
	if _, ok := traditions[fallbackTradition]; !ok {
		return nil, errors.New(errors.CodeDataIntegrity, "corpus missing universal tradition")
	}
	return &Corpus{traditions: traditions}, nil
}

// Reading is the day's selected passage with framing texts.
type Reading struct {
	Tradition      string
	SourceType     string
	SourceTitle    string
	SourceAuthor   string
	ChapterOrVerse string
	Text           string

	DailyRelevance string
	Contemplation  string
	Embodiment     string
}

// ForDay selects the day's passage. The moon element picks the tradition;
// day-of-year and the keyword hash pick the passage within it.
func (c *Corpus) ForDay(target time.Time, element, energyTheme string, keywords []string) Reading {
	name, ok := elementTraditions[element]
	if !ok {
		name = fallbackTradition
	}
	tradition := c.traditions[name]

	index := passageIndex(target.YearDay(), keywords, len(tradition.Passages))
	passage := tradition.Passages[index]

	return Reading{
		Tradition:      tradition.Name,
		SourceType:     tradition.SourceType,
		SourceTitle:    tradition.SourceTitle,
		SourceAuthor:   tradition.SourceAuthor,
		ChapterOrVerse: passage.Reference,
		Text:           passage.Text,

		DailyRelevance: fmt.Sprintf("This %s wisdom aligns with today's %s energy", tradition.Name, element),
		Contemplation:  fmt.Sprintf("How does this ancient wisdom apply to %s?", strings.ToLower(energyTheme)),
		Embodiment:     "Pause three times today to recall this wisdom",
	}
}

// passageIndex folds day-of-year and the keyword list into a stable index.
func passageIndex(dayOfYear int, keywords []string, size int) int {
	h := fnv.New32a()
	for _, k := range keywords {
		h.Write([]byte(k))
	}
	return (dayOfYear + int(h.Sum32()%uint32(size))) % size
}
