package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkellner/cadence/internal/cli/formatter"
	"github.com/mkellner/cadence/internal/domain"
)

// cadenceHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func cadenceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects empty input.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDate requires a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := domain.ParseDay(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalNumber accepts empty or a positive number.
func validateOptionalNumber(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateWeekdays accepts a comma-separated weekday list.
func validateWeekdays(s string) error {
	if s == "" {
		return fmt.Errorf("pick at least one weekday")
	}
	days, err := parseWeekdays(s)
	if err != nil {
		return err
	}
	for _, d := range days {
		if d < 1 || d > 7 {
			return fmt.Errorf("weekday %d out of range 1..7", d)
		}
	}
	return nil
}

// runAddWizard collects a new activity through a huh form and creates it.
func runAddWizard(ctx context.Context, app *App) error {
	var (
		name     string
		kind     = string(domain.KindCheckbox)
		schedule = string(domain.ScheduleDaily)
		days     string
		monthDay string
		on       string
		target   string
		carry    bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Meditate").
				Value(&name).
				Validate(validateRequired("name")),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Checkbox", string(domain.KindCheckbox)),
					huh.NewOption("Value", string(domain.KindValue)),
					huh.NewOption("Cumulative", string(domain.KindCumulative)),
					huh.NewOption("Container", string(domain.KindContainer)),
					huh.NewOption("Metric", string(domain.KindMetric)),
				).
				Value(&kind),
			huh.NewSelect[string]().
				Title("Schedule").
				Options(
					huh.NewOption("Daily", string(domain.ScheduleDaily)),
					huh.NewOption("Weekly", string(domain.ScheduleWeekly)),
					huh.NewOption("Monthly", string(domain.ScheduleMonthly)),
					huh.NewOption("Until done", string(domain.ScheduleSticky)),
					huh.NewOption("One-off date", string(domain.ScheduleAdhoc)),
				).
				Value(&schedule),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Weekdays (e.g. mon,wed,fri)").
				Value(&days).
				Validate(validateWeekdays),
		).WithHideFunc(func() bool { return schedule != string(domain.ScheduleWeekly) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Days of month (e.g. 1,15)").
				Value(&monthDay).
				Validate(validateRequired("month days")),
		).WithHideFunc(func() bool { return schedule != string(domain.ScheduleMonthly) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder("2026-09-30").
				Value(&on).
				Validate(validateDate),
		).WithHideFunc(func() bool { return schedule != string(domain.ScheduleAdhoc) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Daily target (blank for none)").
				Placeholder("2000").
				Value(&target).
				Validate(validateOptionalNumber),
		).WithHideFunc(func() bool { return kind != string(domain.KindCumulative) }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Carry missed days forward?").
				Affirmative("Yes").
				Negative("No").
				Value(&carry),
		).WithHideFunc(func() bool { return kind == string(domain.KindContainer) }),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	sched, err := buildSchedule(schedule, days, monthDay, on)
	if err != nil {
		return err
	}

	a := &domain.Activity{
		Name:         name,
		Kind:         domain.ActivityKind(kind),
		Schedule:     sched,
		CarryForward: carry,
	}
	if target != "" {
		v, err := strconv.ParseFloat(target, 64)
		if err != nil {
			return fmt.Errorf("invalid target %q: %w", target, err)
		}
		a.TargetValue = &v
	}

	if err := app.Activities.Create(ctx, a); err != nil {
		return err
	}

	fmt.Printf("Created %s (%s, %s)\n", a.Name, a.Kind, formatter.DescribeSchedule(a.Schedule))
	return nil
}
