package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/usecase"
)

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Email    string
		Password string
	}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Long: `Exchange credentials for a session token.

The token and your identity are stored in the config directory and
reused by every later command until logout or expiry. Logging in while
already logged in simply replaces the stored session.

Examples:
  # Prompt for credentials
  office login

  # Non-interactive (password read from OFFICE_PASSWORD if set)
  office login --email amy@example.com --password secret`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, password, err := resolveCredentials(cmd, opts.Email, opts.Password)
			if err != nil {
				return err
			}

			uc := c.LoginUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.LoginInput{Email: email, Password: password})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", out.User.Name, out.User.Role.Display())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Account password (prefer the prompt or OFFICE_PASSWORD)")

	return cmd
}

// newRegisterCommand creates the register command.
func newRegisterCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Email    string
		Password string
	}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Long: `Create a new account on the server.

Self-registered accounts get the employee role; an admin can promote
them later with 'office user role'. On success the new session is
stored, exactly like a login.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := opts.Name
			if name == "" {
				var err error
				name, err = promptLine(cmd, "Name: ")
				if err != nil {
					return err
				}
			}
			email, password, err := resolveCredentials(cmd, opts.Email, opts.Password)
			if err != nil {
				return err
			}

			uc := c.RegisterUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RegisterInput{Name: name, Email: email, Password: password})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s, logged in as %s\n", out.User.Email, out.User.Role.Display())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Account password (prefer the prompt or OFFICE_PASSWORD)")

	return cmd
}

// newLogoutCommand creates the logout command.
func newLogoutCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		Long: `Discard the stored session.

Always succeeds, even when no session is stored or the session file
cannot be removed cleanly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.LogoutUseCase().Execute(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// newWhoamiCommand creates the whoami command.
func newWhoamiCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Verify bool
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored identity",
		Long: `Show the identity attached to the stored session.

By default only the persisted copy is shown, without any network call.
With --verify the credential is re-validated against the server and the
authoritative identity is adopted and re-stored.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.CurrentUserUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CurrentUserInput{Verify: opts.Verify})
			if err != nil {
				return err
			}

			if opts.JSON {
				type jsonIdentity struct {
					ID       string     `json:"id"`
					Name     string     `json:"name"`
					Email    string     `json:"email"`
					Role     string     `json:"role"`
					IsActive bool       `json:"isActive"`
					Expiry   *time.Time `json:"tokenExpiry,omitempty"`
				}
				ji := jsonIdentity{
					ID:       out.User.ID,
					Name:     out.User.Name,
					Email:    out.User.Email,
					Role:     string(out.User.Role),
					IsActive: out.User.IsActive,
				}
				if out.HasExpiry {
					ji.Expiry = &out.Expiry
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ji)
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s <%s>\n", out.User.Name, out.User.Email)
			_, _ = fmt.Fprintf(w, "Role: %s\n", out.User.Role.Display())
			if !out.User.IsActive {
				_, _ = fmt.Fprintln(w, "Account: deactivated")
			}
			if out.HasExpiry {
				_, _ = fmt.Fprintf(w, "Token expires: %s\n", out.Expiry.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Re-validate the session against the server")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// resolveCredentials fills in email and password from flags, environment
// and interactive prompts, in that order.
func resolveCredentials(cmd *cobra.Command, email, password string) (string, string, error) {
	if email == "" {
		var err error
		email, err = promptLine(cmd, "Email: ")
		if err != nil {
			return "", "", err
		}
	}
	if password == "" {
		password = os.Getenv("OFFICE_PASSWORD")
	}
	if password == "" {
		var err error
		password, err = promptPassword(cmd, "Password: ")
		if err != nil {
			return "", "", err
		}
	}
	return email, password, nil
}

// promptLine reads one line from the command's input stream. It reads
// byte by byte so consecutive prompts against the same stream do not
// swallow each other's input.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)
	in := cmd.InOrStdin()
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			b.WriteByte(buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				break
			}
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (tests, pipes).
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}
	return promptLine(cmd, prompt)
}
