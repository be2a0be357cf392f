package sqlitecache

import (
	"path/filepath"
	"testing"

	"github.com/starfield-labs/almanac/internal/ephemeris"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "positions.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// TestOpenRequiresPath ensures a blank path is rejected.
func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

// TestSaveAndLoadLongitude ensures stored positions round-trip.
func TestSaveAndLoadLongitude(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveLongitude(2451545.0, ephemeris.BodySun, 280.466); err != nil {
		t.Fatalf("save longitude: %v", err)
	}
	value, found, err := store.Longitude(2451545.0, ephemeris.BodySun)
	if err != nil {
		t.Fatalf("load longitude: %v", err)
	}
	if !found {
		t.Fatal("expected stored longitude to be found")
	}
	if value != 280.466 {
		t.Fatalf("expected 280.466, got %f", value)
	}
}

// TestMissingLongitudeNotFound ensures absent keys report found=false.
func TestMissingLongitudeNotFound(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.Longitude(2451545.0, ephemeris.BodyMoon)
	if err != nil {
		t.Fatalf("load longitude: %v", err)
	}
	if found {
		t.Fatal("expected missing key to report found=false")
	}
}

// TestSaveLongitudeReplacesExisting ensures re-saving a key overwrites it.
func TestSaveLongitudeReplacesExisting(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveLongitude(2451545.0, ephemeris.BodyMars, 10); err != nil {
		t.Fatalf("save longitude: %v", err)
	}
	if err := store.SaveLongitude(2451545.0, ephemeris.BodyMars, 20); err != nil {
		t.Fatalf("re-save longitude: %v", err)
	}
	value, found, err := store.Longitude(2451545.0, ephemeris.BodyMars)
	if err != nil || !found {
		t.Fatalf("load longitude: found=%v err=%v", found, err)
	}
	if value != 20 {
		t.Fatalf("expected 20, got %f", value)
	}
}
