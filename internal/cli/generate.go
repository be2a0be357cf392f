package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/starfield-labs/almanac/internal/almanac"
	"github.com/starfield-labs/almanac/internal/ephemeris"
	"github.com/starfield-labs/almanac/internal/ephemeris/sqlitecache"
	"github.com/starfield-labs/almanac/internal/export"
	"github.com/starfield-labs/almanac/internal/profile"
)

// GenerateConfig holds the generate command's settings.
type GenerateConfig struct {
	Profile     string
	Date        string
	From        string
	To          string
	Format      string
	ProfilesDir string
	CachePath   string
	Workers     int
}

// ParseGenerateConfig parses generate flags, with env values as defaults.
func ParseGenerateConfig(env EnvConfig, fs *flag.FlagSet, args []string) (GenerateConfig, error) {
	cfg := GenerateConfig{
		ProfilesDir: env.ProfilesDir,
		CachePath:   env.CachePath,
		Workers:     env.Workers,
	}
	fs.StringVar(&cfg.Profile, "profile", "", "profile name (required)")
	fs.StringVar(&cfg.Date, "date", "", "single date, YYYY-MM-DD (default: today)")
	fs.StringVar(&cfg.From, "from", "", "range start, YYYY-MM-DD")
	fs.StringVar(&cfg.To, "to", "", "range end, YYYY-MM-DD")
	fs.StringVar(&cfg.Format, "format", "json", "output format: json or csv")
	fs.StringVar(&cfg.ProfilesDir, "profiles-dir", cfg.ProfilesDir, "profile storage directory")
	fs.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "sqlite position cache path (empty: memory only)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent workers for ranges")
	if err := fs.Parse(args); err != nil {
		return GenerateConfig{}, err
	}
	if cfg.Profile == "" {
		return GenerateConfig{}, fmt.Errorf("-profile is required")
	}
	if cfg.Format != "json" && cfg.Format != "csv" {
		return GenerateConfig{}, fmt.Errorf("unknown format %q, want json or csv", cfg.Format)
	}
	if (cfg.From == "") != (cfg.To == "") {
		return GenerateConfig{}, fmt.Errorf("-from and -to must be given together")
	}
	if cfg.Date != "" && cfg.From != "" {
		return GenerateConfig{}, fmt.Errorf("use either -date or -from/-to, not both")
	}
	return cfg, nil
}

func runGenerate(ctx context.Context, env EnvConfig, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(errOut)
	cfg, err := ParseGenerateConfig(env, fs, args)
	if err != nil {
		return err
	}

	store, err := profile.NewStore(cfg.ProfilesDir)
	if err != nil {
		return err
	}
	p, err := store.Load(cfg.Profile)
	if err != nil {
		return err
	}

	provider, closeProvider, err := buildProvider(cfg.CachePath)
	if err != nil {
		return err
	}
	defer closeProvider()

	generator, err := almanac.NewGenerator(provider, cfg.Workers)
	if err != nil {
		return err
	}

	alignments, err := generateAlignments(ctx, generator, p, cfg, errOut)
	if err != nil {
		return err
	}
	switch cfg.Format {
	case "csv":
		return export.WriteCSV(out, alignments)
	default:
		return export.WriteJSON(out, alignments)
	}
}

func generateAlignments(ctx context.Context, generator *almanac.Generator, p profile.Profile, cfg GenerateConfig, errOut io.Writer) ([]almanac.DailyAlignment, error) {
	if cfg.From != "" {
		start, err := parseDate(cfg.From)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(cfg.To)
		if err != nil {
			return nil, err
		}
		results, err := generator.GenerateRange(ctx, p, start, end)
		if err != nil {
			return nil, err
		}
		alignments := make([]almanac.DailyAlignment, 0, len(results))
		for _, result := range results {
			if result.Err != nil {
				fmt.Fprintf(errOut, "skipping %s: %v\n", result.Date.Format(time.DateOnly), result.Err)
				continue
			}
			alignments = append(alignments, *result.Alignment)
		}
		return alignments, nil
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if cfg.Date != "" {
		var err error
		if date, err = parseDate(cfg.Date); err != nil {
			return nil, err
		}
	}
	alignment, err := generator.GenerateDay(ctx, p, date)
	if err != nil {
		return nil, err
	}
	return []almanac.DailyAlignment{*alignment}, nil
}

// buildProvider wraps the built-in provider in a position cache, backed by
// sqlite when a path is configured.
func buildProvider(cachePath string) (ephemeris.Provider, func(), error) {
	approx := ephemeris.NewApprox()
	if cachePath == "" {
		return ephemeris.NewCache(approx), func() {}, nil
	}
	store, err := sqlitecache.Open(cachePath)
	if err != nil {
		return nil, nil, err
	}
	return ephemeris.NewCacheWithStore(approx, store), func() { store.Close() }, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}
