// Package cli implements the almanac command line. The entry point stays
// thin; parsing and execution live here so they can be tested directly.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/starfield-labs/almanac/internal/platform/config"
)

// EnvConfig holds settings read from the environment. Flags override these.
type EnvConfig struct {
	ProfilesDir string `env:"ALMANAC_PROFILES_DIR" envDefault:"./profiles"`
	CachePath   string `env:"ALMANAC_CACHE_PATH"`
	Workers     int    `env:"ALMANAC_WORKERS" envDefault:"4"`
}

// LoadEnv reads the environment configuration.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

const usage = `Usage: almanac <command> [flags]

Commands:
  generate   generate daily alignments for a profile (default)
  profile    create or list profiles

Run "almanac <command> -h" for command flags.`

// Run dispatches to a subcommand. A leading flag argument selects the
// default generate command.
func Run(ctx context.Context, env EnvConfig, args []string, out, errOut io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(errOut, usage)
		return fmt.Errorf("no command given")
	}
	switch args[0] {
	case "generate":
		return runGenerate(ctx, env, args[1:], out, errOut)
	case "profile":
		return runProfile(env, args[1:], out)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(out, usage)
		return nil
	default:
		if len(args[0]) > 0 && args[0][0] == '-' {
			return runGenerate(ctx, env, args, out, errOut)
		}
		fmt.Fprintln(errOut, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
