package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/starfield-labs/almanac/internal/profile"
)

// ProfileCreateConfig holds the profile create command's settings.
type ProfileCreateConfig struct {
	Name        string
	Birth       string
	BirthTime   string
	TimeRange   string
	City        string
	Latitude    float64
	Longitude   float64
	Timezone    string
	ProfilesDir string

	hasLocation bool
}

// ParseProfileCreateConfig parses profile create flags.
func ParseProfileCreateConfig(env EnvConfig, fs *flag.FlagSet, args []string) (ProfileCreateConfig, error) {
	cfg := ProfileCreateConfig{ProfilesDir: env.ProfilesDir}
	fs.StringVar(&cfg.Name, "name", "", "profile name (required)")
	fs.StringVar(&cfg.Birth, "birth", "", "birth date, YYYY-MM-DD (required)")
	fs.StringVar(&cfg.BirthTime, "birth-time", "", "exact birth time, HH:MM")
	fs.StringVar(&cfg.TimeRange, "time-range", "", "approximate birth time: morning, afternoon, evening, night")
	fs.StringVar(&cfg.City, "city", "", "birth city")
	fs.Float64Var(&cfg.Latitude, "lat", 0, "birth latitude")
	fs.Float64Var(&cfg.Longitude, "lon", 0, "birth longitude")
	fs.StringVar(&cfg.Timezone, "timezone", "", "birth timezone, IANA name")
	fs.StringVar(&cfg.ProfilesDir, "profiles-dir", cfg.ProfilesDir, "profile storage directory")
	if err := fs.Parse(args); err != nil {
		return ProfileCreateConfig{}, err
	}
	if cfg.Name == "" {
		return ProfileCreateConfig{}, fmt.Errorf("-name is required")
	}
	if cfg.Birth == "" {
		return ProfileCreateConfig{}, fmt.Errorf("-birth is required")
	}
	if cfg.BirthTime != "" && cfg.TimeRange != "" {
		return ProfileCreateConfig{}, fmt.Errorf("use either -birth-time or -time-range, not both")
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "lat" || f.Name == "lon" || f.Name == "city" {
			cfg.hasLocation = true
		}
	})
	return cfg, nil
}

func runProfile(env EnvConfig, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("profile command requires create or list")
	}
	switch args[0] {
	case "create":
		fs := flag.NewFlagSet("profile create", flag.ContinueOnError)
		fs.SetOutput(out)
		cfg, err := ParseProfileCreateConfig(env, fs, args[1:])
		if err != nil {
			return err
		}
		return createProfile(cfg, out)
	case "list":
		fs := flag.NewFlagSet("profile list", flag.ContinueOnError)
		fs.SetOutput(out)
		dir := env.ProfilesDir
		fs.StringVar(&dir, "profiles-dir", dir, "profile storage directory")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return listProfiles(dir, out)
	default:
		return fmt.Errorf("unknown profile command %q", args[0])
	}
}

func createProfile(cfg ProfileCreateConfig, out io.Writer) error {
	birthDate, err := parseDate(cfg.Birth)
	if err != nil {
		return err
	}
	p, err := profile.New(cfg.Name, birthDate)
	if err != nil {
		return err
	}

	if cfg.BirthTime != "" {
		clock, err := time.Parse("15:04", cfg.BirthTime)
		if err != nil {
			return fmt.Errorf("invalid birth time %q, want HH:MM", cfg.BirthTime)
		}
		at := time.Date(birthDate.Year(), birthDate.Month(), birthDate.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.UTC)
		p.BirthTime = &at
		p.TimeRange = profile.TimeExact
	}
	if cfg.TimeRange != "" {
		p.TimeRange = profile.TimeRange(cfg.TimeRange)
	}
	if cfg.hasLocation {
		p.Location = &profile.Location{
			City:      cfg.City,
			Latitude:  cfg.Latitude,
			Longitude: cfg.Longitude,
			Timezone:  cfg.Timezone,
		}
	}
	if err := p.Validate(); err != nil {
		return err
	}

	store, err := profile.NewStore(cfg.ProfilesDir)
	if err != nil {
		return err
	}
	if err := store.Save(p); err != nil {
		return err
	}
	fmt.Fprintf(out, "created profile %q (%s)\n", p.Name, p.ID)
	return nil
}

func listProfiles(dir string, out io.Writer) error {
	store, err := profile.NewStore(dir)
	if err != nil {
		return err
	}
	names, err := store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(out, "no profiles")
		return nil
	}
	for _, name := range names {
		p, err := store.Load(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\tborn %s\t%s\n", p.Name, p.BirthDate.Format(time.DateOnly), p.ID)
	}
	return nil
}
