package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/usecase"
)

// newUserCommand creates the user command group.
func newUserCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage users",
		Long:    `List and administer user accounts. Most subcommands are admin only.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newUserListCommand(c),
		newUserEditCommand(c),
		newUserRoleCommand(c),
		newUserToggleCommand(c),
		newUserRmCommand(c),
	)

	return cmd
}

// newUserListCommand creates the user list command.
func newUserListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ActiveOnly bool
		JSON       bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  `Display all user accounts. Admin and manager only.`,
		RunE: authedRunE(c, func(cmd *cobra.Command, _ []string) error {
			uc := c.ListUsersUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListUsersInput{ActiveOnly: opts.ActiveOnly})
			if err != nil {
				return err
			}

			if opts.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Users)
			}

			printUserList(cmd.OutOrStdout(), out.Users)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&opts.ActiveOnly, "active", false, "Only active accounts")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printUserList prints users in TSV format.
func printUserList(w io.Writer, users []*domain.User) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tACTIVE")

	for _, user := range users {
		activeStr := "yes"
		if !user.IsActive {
			activeStr = "no"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			user.ID,
			user.Name,
			user.Email,
			user.Role.Display(),
			activeStr,
		)
	}
}

// newUserEditCommand creates the user edit command.
func newUserEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name  string
		Email string
		Role  string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a user account",
		Long: `Edit a user account. Admin only. Only the flags you pass are changed.

Examples:
  office user edit abc123 --name "Amy R."
  office user edit abc123 --email amy@corp.example --role manager`,
		Args: cobra.ExactArgs(1),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			input := usecase.EditUserInput{UserID: args[0]}
			if cmd.Flags().Changed("name") {
				input.Name = &opts.Name
			}
			if cmd.Flags().Changed("email") {
				input.Email = &opts.Email
			}
			if cmd.Flags().Changed("role") {
				r := domain.Role(opts.Role)
				input.Role = &r
			}

			uc := c.EditUserUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", out.User.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New display name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "New email")
	cmd.Flags().StringVar(&opts.Role, "role", "", "New role (admin, manager, employee)")

	return cmd
}

// newUserRoleCommand creates the user role command.
func newUserRoleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "role <id> <role>",
		Short: "Change a user's role",
		Long:  `Change a user's role to admin, manager or employee. Admin only.`,
		Args:  cobra.ExactArgs(2),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			uc := c.SetUserRoleUseCase()
			if err := uc.Execute(cmd.Context(), usecase.SetUserRoleInput{
				UserID: args[0],
				Role:   domain.Role(args[1]),
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "User %s is now %s\n", args[0], domain.Role(args[1]).Display())
			return nil
		}),
	}
}

// newUserToggleCommand creates the user toggle command.
func newUserToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Activate or deactivate a user",
		Long: `Flip a user's active flag. Admin only.

A deactivated user keeps their tasks but can no longer log in; their
existing sessions are rejected on the next request. The server refuses
to deactivate the admin running the command.`,
		Args: cobra.ExactArgs(1),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			uc := c.ToggleUserActiveUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ToggleUserActiveInput{UserID: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		}),
	}
}

// newUserRmCommand creates the user rm command.
func newUserRmCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a user",
		Long:  `Delete a user and their assigned tasks. Admin only.`,
		Args:  cobra.ExactArgs(1),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Delete user %s and their tasks? [y/N]: ", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			uc := c.DeleteUserUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteUserInput{UserID: args[0]}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
