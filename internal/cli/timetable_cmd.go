package cli

import (
	"fmt"

	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/spf13/cobra"
)

func newTimetableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timetable",
		Short: "Manage the planned schedule",
	}

	cmd.AddCommand(
		newTimetableAddCmd(app),
		newTimetableListCmd(app),
		newTimetableClearCmd(app),
	)

	return cmd
}

func newTimetableAddCmd(app *App) *cobra.Command {
	var (
		dayType string
		start   string
		end     string
		slot    string
		task    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a slot to the timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if task == "" {
				return fmt.Errorf("--task is required")
			}
			if dayType == "" {
				return fmt.Errorf("--day is required (e.g. MWS, TTS, Sunday)")
			}

			span := domain.SlotSpan{FreeText: slot}
			if start != "" || end != "" {
				if start == "" || end == "" {
					return fmt.Errorf("--start and --end go together")
				}
				span = domain.SlotSpan{Start: start, End: end}
			} else if slot == "" {
				return fmt.Errorf("give either --start/--end or --slot")
			}

			err := app.Timetable.AddSlot(cmd.Context(), domain.TimetableSlot{
				DayType: dayType,
				Span:    span,
				Task:    task,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s %s %s\n",
				formatter.StyleGreen.Render("added"),
				formatter.Dim(span.Display()),
				task)
			return nil
		},
	}

	cmd.Flags().StringVar(&dayType, "day", "", "Day type the slot belongs to")
	cmd.Flags().StringVar(&start, "start", "", "Start time, e.g. 06:00")
	cmd.Flags().StringVar(&end, "end", "", "End time, e.g. 08:00")
	cmd.Flags().StringVar(&slot, "slot", "", "Free-text time range, e.g. \"06:00 - 08:00\"")
	cmd.Flags().StringVar(&task, "task", "", "What the slot is for")

	return cmd
}

func newTimetableListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every timetable slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Timetable.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTimetable(slots))
			return nil
		},
	}
}

func newTimetableClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every timetable slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Timetable.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("timetable cleared"))
			return nil
		},
	}
}
