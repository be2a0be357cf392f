// Package sqlitecache provides a SQLite-backed position store for the
// ephemeris cache.
package sqlitecache

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/starfield-labs/almanac/internal/ephemeris"
	"github.com/starfield-labs/almanac/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store persists computed longitudes in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite position store and creates the schema if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrationFS, "migrations"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Longitude returns a stored longitude and whether it was present.
func (s *Store) Longitude(jd float64, body ephemeris.Body) (float64, bool, error) {
	if s == nil || s.sqlDB == nil {
		return 0, false, fmt.Errorf("storage is not configured")
	}
	var value float64
	err := s.sqlDB.QueryRow(
		`SELECT longitude FROM positions WHERE julian_day = ? AND body = ?`,
		jd, int(body),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query position: %w", err)
	}
	return value, true, nil
}

// SaveLongitude stores a computed longitude, replacing any existing entry.
func (s *Store) SaveLongitude(jd float64, body ephemeris.Body, value float64) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	_, err := s.sqlDB.Exec(
		`INSERT OR REPLACE INTO positions (julian_day, body, longitude) VALUES (?, ?, ?)`,
		jd, int(body), value,
	)
	if err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	return nil
}
