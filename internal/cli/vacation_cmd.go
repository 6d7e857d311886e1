package cli

import (
	"context"
	"fmt"

	"github.com/mkellner/cadence/internal/cli/formatter"
	"github.com/mkellner/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newVacationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Manage vacation days",
	}

	cmd.AddCommand(
		newVacationAddCmd(app),
		newVacationRemoveCmd(app),
		newVacationListCmd(app),
	)

	return cmd
}

func newVacationAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [DATE]",
		Short: "Mark a day as vacation (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) == 1 {
				value = args[0]
			}
			day, err := parseDayFlag(value)
			if err != nil {
				return err
			}
			if err := app.Vacations.Add(context.Background(), day); err != nil {
				return err
			}
			fmt.Printf("Vacation on %s\n", domain.DayKey(day))
			return nil
		},
	}
}

func newVacationRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [DATE]",
		Short: "Unmark a vacation day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) == 1 {
				value = args[0]
			}
			day, err := parseDayFlag(value)
			if err != nil {
				return err
			}
			if err := app.Vacations.Remove(context.Background(), day); err != nil {
				return err
			}
			fmt.Printf("Removed vacation on %s\n", domain.DayKey(day))
			return nil
		},
	}
}

func newVacationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vacation days",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := app.Vacations.List(context.Background())
			if err != nil {
				return err
			}
			if len(days) == 0 {
				fmt.Println("No vacation days.")
				return nil
			}
			for _, d := range days {
				fmt.Printf("%s  %s\n", domain.DayKey(d.Date), formatter.Dim(d.Date.Format("Monday")))
			}
			return nil
		},
	}
}
