// Package main is the entry point for the office CLI.
package main

import (
	"fmt"
	"os"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
