package cli

import (
	"context"
	"fmt"

	"github.com/mkellner/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStreakCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "streak ACTIVITY",
		Short: "Show current and longest streak for an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := parseDayFlag(date)
			if err != nil {
				return err
			}

			current, longest, err := app.Stats.ActivityStreaks(ctx, a.ID, day)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatStreak(a.Name, current, longest))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "As-of day (YYYY-MM-DD, default today)")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streaks and completion rates for all activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayFlag(date)
			if err != nil {
				return err
			}

			stats, err := app.Stats.Stats(context.Background(), day)
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				fmt.Println("No activities yet. Try `cadence add`.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatStats(stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "As-of day (YYYY-MM-DD, default today)")

	return cmd
}

func newHeatmapCmd(app *App) *cobra.Command {
	var date string
	var days int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show a trailing completion heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayFlag(date)
			if err != nil {
				return err
			}
			if days < 1 {
				return fmt.Errorf("--days must be positive")
			}

			cells, err := app.Stats.Heatmap(context.Background(), day, days)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatHeatmap(cells))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "As-of day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 28, "Number of trailing days")

	return cmd
}
