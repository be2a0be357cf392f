// Package config reads almanac runtime settings from the environment and
// provides the fatal-exit helper used by CLI entry points. All ALMANAC_*
// variables are optional; flags override them.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv populates target from environment variables declared with `env`
// struct tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
