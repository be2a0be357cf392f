// Package main provides the almanac CLI for generating daily alignments and
// managing birth profiles.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/starfield-labs/almanac/internal/cli"
	"github.com/starfield-labs/almanac/internal/platform/config"
)

func main() {
	env, err := cli.LoadEnv()
	if err != nil {
		config.Exitf("load env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, env, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("almanac: %v", err)
	}
}
