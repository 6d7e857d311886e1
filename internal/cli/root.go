package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkellner/cadence/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Activities service.ActivityService
	Logs       service.LogService
	Vacations  service.VacationService
	Stats      service.StatsService

	// IsInteractive reports whether stdin is attached to a terminal.
	// The today command opens the interactive view only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Habit and activity tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation on a terminal opens the interactive today view.
			if app.IsInteractive != nil && app.IsInteractive() {
				model := newTodayView(app, time.Now())
				_, err := tea.NewProgram(model).Run()
				return err
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newTodayCmd(app),
		newDoneCmd(app),
		newSkipCmd(app),
		newUndoCmd(app),
		newStopCmd(app),
		newResumeCmd(app),
		newRemoveCmd(app),
		newSlotCmd(app),
		newStreakCmd(app),
		newStatsCmd(app),
		newHeatmapCmd(app),
		newVacationCmd(app),
	)

	return root
}
