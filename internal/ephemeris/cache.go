package ephemeris

import "sync"

// PositionStore persists computed longitudes across runs.
type PositionStore interface {
	// Longitude returns a stored longitude and whether it was present.
	Longitude(jd float64, body Body) (float64, bool, error)
	// SaveLongitude stores a computed longitude.
	SaveLongitude(jd float64, body Body, value float64) error
}

type posKey struct {
	jd   float64
	body Body
}

// Cache memoizes longitude lookups in front of a Provider.
//
// Because longitudes are pure functions of (Julian Day, body), entries never
// expire. An optional PositionStore persists entries across runs; store
// failures degrade to recomputation and are never surfaced to callers.
type Cache struct {
	inner Provider
	store PositionStore

	mu   sync.RWMutex
	memo map[posKey]float64
}

// NewCache wraps a provider with an in-memory longitude cache.
func NewCache(inner Provider) *Cache {
	return &Cache{inner: inner, memo: make(map[posKey]float64)}
}

// NewCacheWithStore wraps a provider with an in-memory cache backed by a
// persistent store.
func NewCacheWithStore(inner Provider, store PositionStore) *Cache {
	c := NewCache(inner)
	c.store = store
	return c
}

// Longitude returns the ecliptic longitude of body, consulting the memo and
// the persistent store before the wrapped provider.
func (c *Cache) Longitude(jd float64, body Body) (float64, error) {
	key := posKey{jd: jd, body: body}

	c.mu.RLock()
	value, ok := c.memo[key]
	c.mu.RUnlock()
	if ok {
		return value, nil
	}

	if c.store != nil {
		if stored, found, err := c.store.Longitude(jd, body); err == nil && found {
			c.remember(key, stored)
			return stored, nil
		}
	}

	value, err := c.inner.Longitude(jd, body)
	if err != nil {
		return 0, err
	}
	c.remember(key, value)
	if c.store != nil {
		_ = c.store.SaveLongitude(jd, body, value)
	}
	return value, nil
}

// HousesAt delegates to the wrapped provider. House cusps depend on location
// as well as time, so they are not memoized here.
func (c *Cache) HousesAt(jd float64, latitude, longitude float64) (Houses, error) {
	return c.inner.HousesAt(jd, latitude, longitude)
}

func (c *Cache) remember(key posKey, value float64) {
	c.mu.Lock()
	c.memo[key] = value
	c.mu.Unlock()
}
