package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var (
		subject  string
		activity string
		duration int
		output   int
		rot      int
		focus    int
		notes    string
		date     string
		anomaly  bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a study session or an anomaly",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if anomaly {
				if notes == "" && app.Interactive {
					if err := anomalyForm(&notes).Run(); err != nil {
						return err
					}
				}
				if strings.TrimSpace(notes) == "" {
					return fmt.Errorf("an anomaly needs --notes")
				}
				stored, err := app.Logs.Append(ctx, domain.LogEntry{
					Kind:  domain.KindAnomaly,
					Notes: notes,
				})
				if err != nil {
					return err
				}
				fmt.Println(formatter.StyleRed.Render("anomaly recorded") + formatter.Dim("  "+stored.Time))
				return nil
			}

			// No flags on a terminal opens the form.
			if subject == "" && app.Interactive {
				if err := runLogForm(ctx, app, &subject, &activity, &duration, &output, &rot, &focus, &notes); err != nil {
					return err
				}
			}
			if subject == "" {
				return fmt.Errorf("--subject is required")
			}
			if duration <= 0 {
				return fmt.Errorf("--duration must be positive")
			}

			entry := domain.LogEntry{
				Subject:     subject,
				Activity:    activity,
				DurationMin: duration,
				Output:      output,
				RotMin:      rot,
				FocusPct:    focus,
				Notes:       notes,
			}
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				entry.Date = parsed
			}

			stored, err := app.Logs.Append(ctx, entry)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s, %dm at %d%% focus\n",
				formatter.StyleGreen.Render("logged"),
				formatter.StyleBold.Render(stored.Subject),
				stored.DurationMin, stored.FocusPct)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject studied")
	cmd.Flags().StringVar(&activity, "activity", "Deep Study", "Activity tag")
	cmd.Flags().IntVar(&duration, "duration", 0, "Session length in minutes")
	cmd.Flags().IntVar(&output, "output", 0, "Concrete output (questions, pages)")
	cmd.Flags().IntVar(&rot, "rot", 0, "Wasted minutes inside the session")
	cmd.Flags().IntVar(&focus, "focus", 80, "Focus percentage 0-100")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&date, "date", "", "Entry date YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&anomaly, "anomaly", false, "Record a disruption instead of a session")

	cmd.AddCommand(newLogListCmd(app))

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every recorded entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Logs.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatEntries(entries))
			return nil
		},
	}
}

// runLogForm collects entry fields interactively and copies them into the
// flag targets.
func runLogForm(ctx context.Context, app *App, subject, activity *string, duration, output, rot, focus *int, notes *string) error {
	set, err := app.Subjects.Set(ctx)
	if err != nil {
		return err
	}

	values := logFormValues{Focus: "80"}
	if err := logEntryForm(set.Names(), domain.Activities(), &values).Run(); err != nil {
		return err
	}

	*subject = values.Subject
	*activity = values.Activity
	*duration = atoiOr(values.Duration, 0)
	*output = atoiOr(values.Output, 0)
	*rot = atoiOr(values.Rot, 0)
	*focus = atoiOr(values.Focus, 80)
	*notes = values.Notes
	return nil
}
