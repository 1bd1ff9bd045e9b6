package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/usecase"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks",
		Long:    `Create, list and update tasks. What you can change depends on your role.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newTaskListCommand(c),
		newTaskShowCommand(c),
		newTaskNewCommand(c),
		newTaskEditCommand(c),
		newTaskStatusCommand(c),
		newTaskAdvanceCommand(c),
		newTaskRmCommand(c),
	)

	return cmd
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search   string
		Status   string
		Priority string
		Assignee string
		Mine     bool
		JSON     bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the tasks you are allowed to see.

Employees see their own tasks; managers and admins see everything.
--status, --priority and --assignee are resolved by the server.
--search matches title, description and assignee name locally,
ignoring case, and never triggers another fetch.

Examples:
  # All visible tasks
  office task list

  # Only pending high-priority work
  office task list --status pending --priority high

  # Quick text search
  office task list --search login

  # Tasks assigned to me
  office task list --mine`,
		RunE: authedRunE(c, func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListTasksInput{
				Query: domain.TaskQuery{
					Status:     domain.Status(opts.Status),
					Priority:   domain.Priority(opts.Priority),
					AssignedTo: opts.Assignee,
				},
				Filter: domain.TaskFilter{Search: opts.Search},
			}
			if opts.Mine {
				stored, err := c.Sessions.Load()
				if err != nil {
					return err
				}
				if stored != nil {
					input.Query.AssignedTo = stored.User.ID
				}
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if opts.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Tasks)
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks, c.Clock)
			if out.Fetched > len(out.Tasks) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d tasks match %q\n", len(out.Tasks), out.Fetched, opts.Search)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "Local text search over title, description and assignee")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status (pending, in_progress, review, completed)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Filter by priority (low, medium, high, critical)")
	cmd.Flags().StringVar(&opts.Assignee, "assignee", "", "Filter by assignee user ID")
	cmd.Flags().BoolVar(&opts.Mine, "mine", false, "Only tasks assigned to the logged-in user")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []*domain.Task, clock domain.Clock) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDEADLINE\tASSIGNEE\tTITLE")

	now := clock.Now()
	for _, task := range tasks {
		deadlineStr := "-"
		if task.Deadline != nil {
			deadlineStr = task.Deadline.Local().Format("2006-01-02")
			if task.IsOverdue(now) {
				deadlineStr += " !"
			}
		}

		assigneeStr := "-"
		if task.AssignedToName != "" {
			assigneeStr = task.AssignedToName
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status.Display(),
			task.Priority.Display(),
			deadlineStr,
			assigneeStr,
			task.Title,
		)
	}
}

// newTaskShowCommand creates the task show command.
func newTaskShowCommand(c *app.Container) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Args:  cobra.ExactArgs(1),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Task)
			}

			printTaskDetails(cmd.OutOrStdout(), out.Task, c.Clock)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	return cmd
}

// printTaskDetails prints one task in long form.
func printTaskDetails(w io.Writer, task *domain.Task, clock domain.Clock) {
	_, _ = fmt.Fprintf(w, "Task %s: %s\n", task.ID, task.Title)
	_, _ = fmt.Fprintf(w, "Status:   %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority.Display())
	if task.Deadline != nil {
		overdue := ""
		if task.IsOverdue(clock.Now()) {
			overdue = " (overdue)"
		}
		_, _ = fmt.Fprintf(w, "Deadline: %s%s\n", task.Deadline.Local().Format("2006-01-02 15:04"), overdue)
	}
	if task.AssignedToName != "" {
		_, _ = fmt.Fprintf(w, "Assignee: %s\n", task.AssignedToName)
	}
	if task.CreatedByName != "" {
		_, _ = fmt.Fprintf(w, "Creator:  %s\n", task.CreatedByName)
	}
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", task.Description)
	}
}

// newTaskNewCommand creates the task new command.
func newTaskNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Deadline    string
		Assign      string
		From        string
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task. Admin and manager only.

Examples:
  # Minimal task (priority defaults to medium)
  office task new --title "Fix login bug"

  # Everything at once
  office task new --title "Ship release" --priority critical \
    --deadline 2026-09-01 --assign <user-id> --body "Cut the 2.4 tag."

  # Create several tasks from a Markdown file
  office task new --from tasks.md

  # Preview the file without creating anything
  office task new --from tasks.md --dry-run

File format for --from:
  ---
  title: Task 1
  priority: high
  deadline: 2026-09-01
  assign: <user-id>
  ---
  Description here.

  ---
  title: Task 2
  ---`,
		RunE: authedRunE(c, func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				return createTasksFromFile(cmd, c, opts.From, opts.DryRun)
			}
			if opts.Title == "" {
				return fmt.Errorf("required flag(s) \"title\" not set")
			}

			input := usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    domain.Priority(opts.Priority),
				AssignedTo:  opts.Assign,
			}
			if opts.Deadline != "" {
				deadline, err := parseDeadlineFlag(opts.Deadline)
				if err != nil {
					return err
				}
				input.Deadline = &deadline
			}

			uc := c.CreateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		}),
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required unless --from is used)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority (low, medium, high, critical; default medium)")
	cmd.Flags().StringVar(&opts.Deadline, "deadline", "", "Deadline (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&opts.Assign, "assign", "", "Assignee user ID")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a Markdown file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview tasks without creating (requires --from)")

	return cmd
}

// createTasksFromFile creates tasks from a Markdown file.
func createTasksFromFile(cmd *cobra.Command, c *app.Container, filePath string, dryRun bool) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	uc := c.CreateTasksFromFileUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.CreateTasksFromFileInput{
		Content: string(content),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
		_, _ = fmt.Fprintln(w, "")
	}

	for i, task := range out.Tasks {
		if dryRun {
			_, _ = fmt.Fprintf(w, "Task %d:\n", i+1)
		} else {
			_, _ = fmt.Fprintf(w, "Created task %s:\n", task.ID)
		}
		_, _ = fmt.Fprintf(w, "  Title: %s\n", task.Title)
		_, _ = fmt.Fprintf(w, "  Priority: %s\n", task.Priority.Display())
		if task.Deadline != nil {
			_, _ = fmt.Fprintf(w, "  Deadline: %s\n", task.Deadline.Local().Format("2006-01-02"))
		}
		if task.Description != "" {
			lines := strings.Split(task.Description, "\n")
			preview := lines[0]
			if len(preview) > 50 {
				preview = preview[:50] + "..."
			}
			if len(lines) > 1 {
				preview += " ..."
			}
			_, _ = fmt.Fprintf(w, "  Description: %s\n", preview)
		}
		if i < len(out.Tasks)-1 {
			_, _ = fmt.Fprintln(w, "")
		}
	}

	if !dryRun {
		_, _ = fmt.Fprintf(w, "\nCreated %d task(s)\n", len(out.Tasks))
	}

	return nil
}

// parseDeadlineFlag parses the --deadline flag value. A bare date means
// end of that day.
func parseDeadlineFlag(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q (want YYYY-MM-DD or RFC3339)", s)
}

// newTaskEditCommand creates the task edit command.
func newTaskEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Deadline    string
		Assign      string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task. Only the flags you pass are changed.

Managers and admins can edit any task; employees only their own.

Examples:
  office task edit abc123 --title "New title"
  office task edit abc123 --priority high --deadline 2026-09-15`,
		Args: cobra.ExactArgs(1),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			input := usecase.EditTaskInput{TaskID: args[0]}
			if cmd.Flags().Changed("title") {
				input.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				input.Description = &opts.Description
			}
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(opts.Priority)
				input.Priority = &p
			}
			if cmd.Flags().Changed("assign") {
				input.AssignedTo = &opts.Assign
			}
			if cmd.Flags().Changed("deadline") {
				deadline, err := parseDeadlineFlag(opts.Deadline)
				if err != nil {
					return err
				}
				input.Deadline = &deadline
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", out.Task.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&opts.Deadline, "deadline", "", "New deadline (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&opts.Assign, "assign", "", "New assignee user ID")

	return cmd
}

// newTaskStatusCommand creates the task status command.
func newTaskStatusCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a task's status explicitly",
		Long: `Set a task to an explicit status.

Unlike 'office task advance', any of pending, in_progress, review and
completed can be set, including moving backwards.`,
		Args: cobra.ExactArgs(2),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			uc := c.SetTaskStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetTaskStatusInput{
				TaskID: args[0],
				Status: domain.Status(args[1]),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", out.Task.ID, out.Task.Status.Display())
			return nil
		}),
	}

	return cmd
}

// newTaskAdvanceCommand creates the task advance command.
func newTaskAdvanceCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id>",
		Short: "Advance a task to the next status",
		Long: `Move a task one step along pending, in_progress, review, completed.

A completed task cannot be advanced further.`,
		Args: cobra.ExactArgs(1),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			uc := c.AdvanceTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AdvanceTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s: %s -> %s\n", out.Task.ID, out.From.Display(), out.To.Display())
			return nil
		}),
	}
}

// newTaskRmCommand creates the task rm command.
func newTaskRmCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long:  `Delete a task. Admin and manager only.`,
		Args:  cobra.ExactArgs(1),
		RunE: authedRunE(c, func(cmd *cobra.Command, args []string) error {
			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Delete task %s? [y/N]: ", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			uc := c.DeleteTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: args[0]}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	answer, err := promptLine(cmd, prompt)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
