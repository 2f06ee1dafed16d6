package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/overwatch/internal/advisory"
	"github.com/alexanderramin/overwatch/internal/cli"
	"github.com/alexanderramin/overwatch/internal/db"
	"github.com/alexanderramin/overwatch/internal/llm"
	"github.com/alexanderramin/overwatch/internal/protocol"
	"github.com/alexanderramin/overwatch/internal/repository"
	"github.com/alexanderramin/overwatch/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.overwatch/overwatch.db
	dbPath := os.Getenv("OVERWATCH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".overwatch", "overwatch.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	logRepo := repository.NewSQLiteLogRepo(database)
	slotRepo := repository.NewSQLiteTimetableRepo(database)
	subjectRepo := repository.NewSQLiteSubjectRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional snapshot imports
	uow := db.NewSQLiteUnitOfWork(database)

	// Calendar zone: env override, then the stored profile, then fixed IST.
	// The dashboard re-resolves per pass so profile changes apply live.
	profiles := service.NewProfileService(profileRepo)
	loc := protocol.Zone()
	if prof, err := profiles.Get(context.Background()); err == nil {
		loc = protocol.ResolveZone(prof.Timezone, loc)
	}

	app := &cli.App{
		Logs:      service.NewLogService(logRepo, loc),
		Timetable: service.NewTimetableService(slotRepo),
		Subjects:  service.NewSubjectService(subjectRepo),
		Profiles:  profiles,
		Dashboard: service.NewDashboardService(logRepo, slotRepo, profileRepo, loc),
		Snapshots: service.NewSnapshotService(logRepo, slotRepo, subjectRepo, profileRepo, uow),
		Loc:       loc,
	}

	// Detect interactive terminal for forms and the TUI.
	app.Interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	// Wire the assistant (only when configured)
	llmCfg := llm.LoadConfig()
	var client llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewChatClient(llmCfg, observer)
	}
	app.Advisor = advisory.NewService(client)

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
