// Package cli provides the command-line interface for office.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/tui"
)

// Command group IDs.
const (
	groupAuth    = "auth"
	groupTask    = "task"
	groupAdmin   = "admin"
	groupInsight = "insight"
	groupSetup   = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for office.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "office",
		Short: "Team task management CLI",
		Long: `office is a terminal client for the team task manager.

Log in once with 'office login'; the session is persisted and reused
until it expires or the account is deactivated. What you can see and
change is decided by your role (admin, manager or employee).

Run without arguments to open the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupAuth, Title: "Session Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupAdmin, Title: "User Administration:"},
		&cobra.Group{ID: groupInsight, Title: "Insight Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	loginCmd := newLoginCommand(c)
	loginCmd.GroupID = groupAuth

	registerCmd := newRegisterCommand(c)
	registerCmd.GroupID = groupAuth

	logoutCmd := newLogoutCommand(c)
	logoutCmd.GroupID = groupAuth

	whoamiCmd := newWhoamiCommand(c)
	whoamiCmd.GroupID = groupAuth

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTask

	userCmd := newUserCommand(c)
	userCmd.GroupID = groupAdmin

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupInsight

	performanceCmd := newPerformanceCommand(c)
	performanceCmd.GroupID = groupInsight

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	pingCmd := newPingCommand(c)
	pingCmd.GroupID = groupSetup

	seedCmd := newSeedCommand(c)
	seedCmd.GroupID = groupSetup

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	root.AddCommand(
		loginCmd,
		registerCmd,
		logoutCmd,
		whoamiCmd,
		taskCmd,
		userCmd,
		statsCmd,
		performanceCmd,
		configCmd,
		pingCmd,
		seedCmd,
		tuiCmd,
	)

	return root
}

// authedRunE wraps a RunE so every command sees a settled session before it
// runs, and a rejected credential is cleaned up afterwards. This is the one
// place in the CLI that clears session state; the transport below only
// classifies errors.
func authedRunE(c *app.Container, run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out, err := c.RestoreSessionUseCase().Execute(cmd.Context())
		if err != nil {
			return err
		}
		if !out.State.LoggedIn() {
			return fmt.Errorf("not logged in (run 'office login')")
		}

		err = run(cmd, args)
		if domain.IsAuthInvalid(err) {
			c.Gateway.SetToken("")
			_ = c.Sessions.Clear()
			return fmt.Errorf("session is no longer valid (%s), please log in again", domain.APIMessage(err))
		}
		return err
	}
}

// launchTUI opens the interactive interface.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive TUI",
		Long:  `Open the interactive terminal interface (same as running office with no arguments).`,
		RunE: func(*cobra.Command, []string) error {
			return launchTUIFunc(c)
		},
	}
}
