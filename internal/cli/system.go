package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
)

// newPingCommand creates the ping command.
func newPingCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Gateway.Health(cmd.Context()); err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "OK (%s)\n", c.Config.API.URL)
			return nil
		},
	}
}

// newSeedCommand creates the seed command.
func newSeedCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:    "seed",
		Hidden: true,
		Short:  "Populate the server with demo data",
		Long: `Ask the server to create its demo accounts and tasks.

Intended for local development servers only. Does nothing if the demo
data already exists.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := c.Gateway.Seed(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
