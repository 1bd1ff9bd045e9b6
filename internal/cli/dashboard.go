package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		Long: `Show the aggregate counters behind the dashboard.

Employees see counters over their own tasks only. Admins additionally
get user totals and the per-role distribution.`,
		RunE: authedRunE(c, func(cmd *cobra.Command, _ []string) error {
			uc := c.DashboardStatsUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Stats)
			}

			printStats(cmd.OutOrStdout(), out.Stats)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	return cmd
}

// printStats prints the dashboard counters.
func printStats(w io.Writer, stats *domain.DashboardStats) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "Tasks")
	_, _ = fmt.Fprintf(tw, "  Total\t%d\n", stats.TotalTasks)
	_, _ = fmt.Fprintf(tw, "  Pending\t%d\n", stats.Pending)
	_, _ = fmt.Fprintf(tw, "  In progress\t%d\n", stats.InProgress)
	_, _ = fmt.Fprintf(tw, "  Review\t%d\n", stats.Review)
	_, _ = fmt.Fprintf(tw, "  Completed\t%d\n", stats.Completed)
	_, _ = fmt.Fprintf(tw, "  Overdue\t%d\n", stats.Overdue)

	if stats.TotalUsers > 0 {
		_, _ = fmt.Fprintln(tw, "Users")
		_, _ = fmt.Fprintf(tw, "  Total\t%d\n", stats.TotalUsers)
		_, _ = fmt.Fprintf(tw, "  Active\t%d\n", stats.ActiveUsers)
		_, _ = fmt.Fprintf(tw, "  Inactive\t%d\n", stats.InactiveUsers)
		_, _ = fmt.Fprintf(tw, "  Admins\t%d\n", stats.RoleDistribution.Admin)
		_, _ = fmt.Fprintf(tw, "  Managers\t%d\n", stats.RoleDistribution.Manager)
		_, _ = fmt.Fprintf(tw, "  Employees\t%d\n", stats.RoleDistribution.Employee)
	}
}

// newPerformanceCommand creates the performance command.
func newPerformanceCommand(c *app.Container) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Show per-employee completion stats",
		Long:  `Show each employee's task completion rate, best first. Admin and manager only.`,
		RunE: authedRunE(c, func(cmd *cobra.Command, _ []string) error {
			uc := c.TeamPerformanceUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Entries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()

			_, _ = fmt.Fprintln(tw, "NAME\tEMAIL\tACTIVE\tTASKS\tDONE\tRATE")
			for _, e := range out.Entries {
				activeStr := "yes"
				if !e.IsActive {
					activeStr = "no"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.0f%%\n",
					e.Name, e.Email, activeStr, e.TotalTasks, e.CompletedTasks, e.CompletionRate)
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	return cmd
}
