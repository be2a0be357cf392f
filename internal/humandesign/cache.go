package humandesign

import (
	"sync"
	"time"

	"github.com/starfield-labs/almanac/internal/ephemeris"
)

// ChartCache holds natal charts keyed by profile identity. Entries are
// invalidated when the birth instant changes, so a stale chart can never
// outlive edited birth data.
type ChartCache struct {
	provider ephemeris.Provider

	mu     sync.RWMutex
	charts map[string]chartEntry
}

type chartEntry struct {
	birth time.Time
	chart Chart
}

// NewChartCache builds an empty cache backed by the given provider.
func NewChartCache(provider ephemeris.Provider) *ChartCache {
	return &ChartCache{
		provider: provider,
		charts:   make(map[string]chartEntry),
	}
}

// Chart returns the natal chart for a profile, computing and caching it on
// first use.
func (c *ChartCache) Chart(profileID string, birth time.Time) (Chart, error) {
	c.mu.RLock()
	entry, ok := c.charts[profileID]
	c.mu.RUnlock()
	if ok && entry.birth.Equal(birth) {
		return entry.chart, nil
	}

	chart, err := NatalChart(c.provider, birth)
	if err != nil {
		return Chart{}, err
	}

	c.mu.Lock()
	c.charts[profileID] = chartEntry{birth: birth, chart: chart}
	c.mu.Unlock()
	return chart, nil
}

// Invalidate drops a profile's cached chart.
func (c *ChartCache) Invalidate(profileID string) {
	c.mu.Lock()
	delete(c.charts, profileID)
	c.mu.Unlock()
}
