package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkellner/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var date string
	var plain bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show what is due today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDayFlag(date)
			if err != nil {
				return err
			}

			interactive := app.IsInteractive != nil && app.IsInteractive()
			if interactive && !plain {
				model := newTodayView(app, day)
				_, err := tea.NewProgram(model).Run()
				return err
			}

			items, err := app.Stats.Today(ctx, day)
			if err != nil {
				return err
			}
			result, err := app.Stats.DayCompletion(ctx, day)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatToday(day, items, result))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print without the interactive view")

	return cmd
}
