package cli

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage the office configuration file.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging defaults, the
config file and environment overrides (OFFICE_API_URL, OFFICE_LOG_LEVEL).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "# %s\n\n", c.ConfigManager.Path())

			out := map[string]any{
				"api": map[string]any{"url": cfg.API.URL},
				"log": map[string]any{"level": cfg.Log.Level},
			}
			data, err := toml.Marshal(out)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = w.Write(data)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a template config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.ConfigManager.Init()
			if errors.Is(err, domain.ErrConfigExists) {
				return fmt.Errorf("config file already exists at %s", c.ConfigManager.Path())
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
