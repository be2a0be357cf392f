package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starfield-labs/almanac/internal/almanac"
	"github.com/starfield-labs/almanac/internal/profile"
)

func newFlagSet(out *bytes.Buffer) *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func seedProfile(t *testing.T, dir string) profile.Profile {
	t.Helper()
	store, err := profile.NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	p, err := profile.New("ada", time.Date(1985, time.March, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	if err := store.Save(p); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	return p
}

func TestParseGenerateConfigDefaults(t *testing.T) {
	env := EnvConfig{ProfilesDir: "/tmp/profiles", Workers: 4}
	cfg, err := ParseGenerateConfig(env, newFlagSet(&bytes.Buffer{}), []string{"-profile", "ada"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Format != "json" || cfg.ProfilesDir != "/tmp/profiles" || cfg.Workers != 4 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseGenerateConfigRequiresProfile(t *testing.T) {
	if _, err := ParseGenerateConfig(EnvConfig{}, newFlagSet(&bytes.Buffer{}), nil); err == nil {
		t.Fatal("expected error without -profile")
	}
}

func TestParseGenerateConfigRejectsBadFormat(t *testing.T) {
	args := []string{"-profile", "ada", "-format", "xml"}
	if _, err := ParseGenerateConfig(EnvConfig{}, newFlagSet(&bytes.Buffer{}), args); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseGenerateConfigRejectsHalfRange(t *testing.T) {
	args := []string{"-profile", "ada", "-from", "2026-01-01"}
	if _, err := ParseGenerateConfig(EnvConfig{}, newFlagSet(&bytes.Buffer{}), args); err == nil {
		t.Fatal("expected error for -from without -to")
	}
}

func TestParseGenerateConfigRejectsDateAndRange(t *testing.T) {
	args := []string{"-profile", "ada", "-date", "2026-01-01", "-from", "2026-01-01", "-to", "2026-01-02"}
	if _, err := ParseGenerateConfig(EnvConfig{}, newFlagSet(&bytes.Buffer{}), args); err == nil {
		t.Fatal("expected error for -date combined with -from/-to")
	}
}

// TestRunGenerateSingleDayJSON drives the generate command end to end and
// decodes the JSON it writes.
func TestRunGenerateSingleDayJSON(t *testing.T) {
	dir := t.TempDir()
	seedProfile(t, dir)

	var out, errOut bytes.Buffer
	args := []string{"generate", "-profile", "ada", "-date", "2026-06-10", "-profiles-dir", dir}
	if err := Run(context.Background(), EnvConfig{Workers: 2}, args, &out, &errOut); err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, errOut.String())
	}

	var alignments []almanac.DailyAlignment
	if err := json.Unmarshal(out.Bytes(), &alignments); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(alignments) != 1 {
		t.Fatalf("len(alignments) = %d, want 1", len(alignments))
	}
	if got := alignments[0].Date.Format(time.DateOnly); got != "2026-06-10" {
		t.Fatalf("date = %s", got)
	}
	if alignments[0].DailyTheme == "" {
		t.Fatal("expected a daily theme")
	}
}

// TestRunGenerateRangeCSV checks the range path and the CSV row count.
func TestRunGenerateRangeCSV(t *testing.T) {
	dir := t.TempDir()
	seedProfile(t, dir)

	var out, errOut bytes.Buffer
	args := []string{"-profile", "ada", "-from", "2026-06-10", "-to", "2026-06-12",
		"-format", "csv", "-profiles-dir", dir}
	if err := Run(context.Background(), EnvConfig{Workers: 2}, args, &out, &errOut); err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, errOut.String())
	}

	records, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want header plus three rows", len(records))
	}
}

func TestRunGenerateUnknownProfile(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	args := []string{"generate", "-profile", "nobody", "-date", "2026-06-10", "-profiles-dir", dir}
	if err := Run(context.Background(), EnvConfig{Workers: 2}, args, &out, &errOut); err == nil {
		t.Fatal("expected error for missing profile")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := Run(context.Background(), EnvConfig{}, []string{"frobnicate"}, &out, &errOut); err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(errOut.String(), "Usage:") {
		t.Fatalf("expected usage on stderr, got %q", errOut.String())
	}
}

// TestProfileCreateAndList exercises the profile subcommands against a
// temporary store.
func TestProfileCreateAndList(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	args := []string{"profile", "create", "-name", "grace", "-birth", "1906-12-09",
		"-birth-time", "14:30", "-city", "New York", "-lat", "40.7128", "-lon", "-74.0060",
		"-profiles-dir", dir}
	if err := Run(context.Background(), EnvConfig{}, args, &out, &out); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out.String(), `created profile "grace"`) {
		t.Fatalf("unexpected create output: %q", out.String())
	}

	store, err := profile.NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	p, err := store.Load("grace")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !p.HasExactTime() {
		t.Fatal("expected exact birth time")
	}
	if p.Location == nil || p.Location.City != "New York" {
		t.Fatalf("location = %+v", p.Location)
	}

	out.Reset()
	args = []string{"profile", "list", "-profiles-dir", dir}
	if err := Run(context.Background(), EnvConfig{}, args, &out, &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out.String(), "grace") || !strings.Contains(out.String(), "1906-12-09") {
		t.Fatalf("unexpected list output: %q", out.String())
	}
}

func TestProfileCreateRejectsConflictingTimes(t *testing.T) {
	args := []string{"-name", "x", "-birth", "1990-01-01", "-birth-time", "08:00", "-time-range", "morning"}
	if _, err := ParseProfileCreateConfig(EnvConfig{}, newFlagSet(&bytes.Buffer{}), args); err == nil {
		t.Fatal("expected error for conflicting time flags")
	}
}

// TestGenerateWithSqliteCache checks that the cache flag produces a working
// provider and a cache file on disk.
func TestGenerateWithSqliteCache(t *testing.T) {
	dir := t.TempDir()
	seedProfile(t, dir)
	cachePath := filepath.Join(dir, "positions.db")

	var out, errOut bytes.Buffer
	args := []string{"generate", "-profile", "ada", "-date", "2026-06-10",
		"-profiles-dir", dir, "-cache", cachePath}
	if err := Run(context.Background(), EnvConfig{Workers: 2}, args, &out, &errOut); err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, errOut.String())
	}
	if _, err := os.Stat(cachePath); err != nil {
		t.Fatalf("expected cache file: %v", err)
	}
}
