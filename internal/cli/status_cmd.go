package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/overwatch/internal/advisory"
	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var week bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's protocol, KPIs, schedule, and logged sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			d, err := app.Dashboard.Snapshot(ctx, time.Now())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDashboard(d))

			if week {
				fmt.Println()
				fmt.Println(formatter.Header("Week trend"))
				fmt.Print(formatter.FormatWeekly(d.Weekly, weekLabels(d.Now, app.Loc)))
				fmt.Println()
				fmt.Println(formatter.Header("Subject split"))
				fmt.Print(formatter.FormatDistribution(d.Distribution))
			}

			// The rot threshold triggers an intervention only when the
			// profile opted in; otherwise the warning line is all it gets.
			if d.AutoAdvise {
				stop := func() {}
				if app.Interactive {
					stop = formatter.StartSpinner("consulting PRIME...")
				}
				reply := app.Advisor.Consult(ctx, advisory.ModeIntervention, "", d.AdvisoryContext())
				stop()

				fmt.Println()
				if reply.Offline {
					fmt.Println(formatter.Dim(reply.Text))
				} else {
					fmt.Println(formatter.Header("PRIME"))
					fmt.Println(formatter.StyleFg.Render(reply.Text))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&week, "week", false, "Include the 7-day trend and subject split")

	return cmd
}

// weekLabels returns weekday abbreviations for the 7-day window ending today,
// oldest first, matching the weekly KPI order.
func weekLabels(now time.Time, loc *time.Location) []string {
	labels := make([]string, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		labels = append(labels, now.In(loc).AddDate(0, 0, -offset).Format("Mon"))
	}
	return labels
}
