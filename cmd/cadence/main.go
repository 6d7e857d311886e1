package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mkellner/cadence/internal/cli"
	"github.com/mkellner/cadence/internal/db"
	"github.com/mkellner/cadence/internal/repository"
	"github.com/mkellner/cadence/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.cadence/cadence.db
	dbPath := os.Getenv("CADENCE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".cadence", "cadence.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	activityRepo := repository.NewSQLiteActivityRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)
	vacationRepo := repository.NewSQLiteVacationRepo(database)
	slotRepo := repository.NewSQLiteTimeSlotRepo(database)

	app := &cli.App{
		Activities: service.NewActivityService(activityRepo, slotRepo),
		Logs:       service.NewLogService(activityRepo, logRepo, vacationRepo, slotRepo),
		Vacations:  service.NewVacationService(vacationRepo),
		Stats:      service.NewStatsService(activityRepo, logRepo, vacationRepo, slotRepo),
	}

	// Detect interactive terminal for the today view and add wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
