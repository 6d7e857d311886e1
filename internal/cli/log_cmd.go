package cli

import (
	"context"
	"fmt"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newDoneCmd(app *App) *cobra.Command {
	var date, slot string
	var value float64

	cmd := &cobra.Command{
		Use:   "done ACTIVITY",
		Short: "Mark an activity done",
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

			var valuePtr *float64
			if cmd.Flags().Changed("value") {
				valuePtr = &value
			}
			var slotPtr *string
			if slot != "" {
				slotPtr = &slot
			}

			l, err := app.Logs.Complete(ctx, a.ID, day, valuePtr, slotPtr)
			if err != nil {
				return err
			}

			if !domain.SameDay(l.Date, day) {
				fmt.Printf("Done: %s (carried from %s)\n", a.Name, domain.DayKey(l.Date))
			} else {
				fmt.Printf("Done: %s\n", a.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to log against (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&value, "value", 0, "Logged value for value/cumulative activities")
	cmd.Flags().StringVar(&slot, "slot", "", "Time slot label (e.g. morning)")

	return cmd
}

func newSkipCmd(app *App) *cobra.Command {
	var date, slot, reason string

	cmd := &cobra.Command{
		Use:   "skip ACTIVITY",
		Short: "Skip an activity without breaking its streak",
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

			var reasonPtr *string
			if reason != "" {
				reasonPtr = &reason
			}
			var slotPtr *string
			if slot != "" {
				slotPtr = &slot
			}

			if _, err := app.Logs.Skip(ctx, a.ID, day, reasonPtr, slotPtr); err != nil {
				return err
			}
			fmt.Printf("Skipped %s\n", a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to log against (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the activity was skipped")
	cmd.Flags().StringVar(&slot, "slot", "", "Time slot label (e.g. morning)")

	return cmd
}

func newUndoCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "undo ACTIVITY",
		Short: "Remove the latest log for an activity on a day",
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

			logs, err := app.Logs.ListByActivityDay(ctx, a.ID, day)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				return fmt.Errorf("no log for %s on %s", a.Name, domain.DayKey(day))
			}

			latest := logs[len(logs)-1]
			if err := app.Logs.Delete(ctx, latest.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %s log for %s\n", latest.Status, a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to undo (YYYY-MM-DD, default today)")

	return cmd
}
