package cli

import (
	"time"

	"github.com/alexanderramin/overwatch/internal/advisory"
	"github.com/alexanderramin/overwatch/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Logs      service.LogService
	Timetable service.TimetableService
	Subjects  service.SubjectService
	Profiles  service.ProfileService
	Dashboard service.DashboardService
	Snapshots service.SnapshotService
	Advisor   advisory.Service

	// Loc is the calendar zone every "today" resolves through.
	Loc *time.Location

	// Interactive reports whether stdin/stdout are attached to a terminal.
	// Non-interactive runs never open forms or the TUI.
	Interactive bool
}

// NewRootCmd creates the top-level "overwatch" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "overwatch",
		Short: "Study tracking dashboard and advisory console",
	}

	root.AddCommand(
		newLogCmd(app),
		newStatusCmd(app),
		newDashCmd(app),
		newTimetableCmd(app),
		newSubjectCmd(app),
		newProfileCmd(app),
		newConsultCmd(app),
		newSnapshotCmd(app),
	)

	return root
}
