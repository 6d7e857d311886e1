package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mkellner/cadence/internal/cli/formatter"
	"github.com/mkellner/cadence/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addScheduleFlags registers the shared schedule flags on a command's flag set.
func addScheduleFlags(fs *pflag.FlagSet, schedule, days, monthDays, on *string) {
	fs.StringVar(schedule, "schedule", "daily", "Schedule (daily|weekly|monthly|sticky|adhoc)")
	fs.StringVar(days, "days", "", "Weekdays for weekly schedules (e.g. mon,wed,fri)")
	fs.StringVar(monthDays, "month-days", "", "Days of month for monthly schedules (e.g. 1,15)")
	fs.StringVar(on, "on", "", "Date for adhoc schedules (YYYY-MM-DD)")
}

var weekdayNames = map[string]int{
	"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 7,
}

// parseWeekdays accepts day names ("mon,wed,fri") or ISO numbers ("1,3,5").
func parseWeekdays(value string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if d, ok := weekdayNames[part]; ok {
			days = append(days, d)
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid weekday %q", part)
		}
		days = append(days, d)
	}
	return days, nil
}

func parseMonthDays(value string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid month day %q", part)
		}
		days = append(days, d)
	}
	return days, nil
}

func buildSchedule(kind, days, monthDays, on string) (domain.Schedule, error) {
	switch domain.ScheduleKind(kind) {
	case domain.ScheduleDaily:
		return domain.Daily(), nil
	case domain.ScheduleWeekly:
		wd, err := parseWeekdays(days)
		if err != nil {
			return domain.Schedule{}, err
		}
		return domain.Weekly(wd...), nil
	case domain.ScheduleMonthly:
		md, err := parseMonthDays(monthDays)
		if err != nil {
			return domain.Schedule{}, err
		}
		return domain.Monthly(md...), nil
	case domain.ScheduleSticky:
		return domain.Sticky(), nil
	case domain.ScheduleAdhoc:
		d, err := domain.ParseDay(on)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("adhoc schedule needs --on YYYY-MM-DD")
		}
		return domain.Adhoc(d), nil
	default:
		return domain.Schedule{}, fmt.Errorf("invalid schedule %q", kind)
	}
}

func newAddCmd(app *App) *cobra.Command {
	var kind, schedule, days, monthDays, on, parent, agg string
	var target float64
	var carry bool

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Create a new activity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("activity name is required")
				}
				return runAddWizard(ctx, app)
			}

			sched, err := buildSchedule(schedule, days, monthDays, on)
			if err != nil {
				return err
			}

			a := &domain.Activity{
				Name:         args[0],
				Kind:         domain.ActivityKind(kind),
				Schedule:     sched,
				CarryForward: carry,
				Aggregation:  domain.AggregationMode(agg),
			}
			if cmd.Flags().Changed("target") {
				a.TargetValue = &target
			}
			if parent != "" {
				p, err := resolveActivity(ctx, app, parent)
				if err != nil {
					return err
				}
				a.ParentID = &p.ID
			}

			if err := app.Activities.Create(ctx, a); err != nil {
				return err
			}

			fmt.Printf("Created %s (%s, %s)\n", a.Name, a.Kind, formatter.DescribeSchedule(a.Schedule))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "checkbox", "Activity kind (checkbox|value|cumulative|container|metric)")
	addScheduleFlags(cmd.Flags(), &schedule, &days, &monthDays, &on)
	cmd.Flags().Float64Var(&target, "target", 0, "Daily target value for cumulative activities")
	cmd.Flags().StringVar(&agg, "agg", "sum", "Aggregation for cumulative targets (sum|average)")
	cmd.Flags().BoolVar(&carry, "carry", false, "Carry missed occurrences forward")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent container (name or ID)")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Println("No activities yet. Try `cadence add`.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatActivityList(orderByParent(activities)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include stopped activities")

	return cmd
}

// orderByParent groups children directly under their container.
func orderByParent(activities []*domain.Activity) []*domain.Activity {
	children := make(map[string][]*domain.Activity)
	var roots []*domain.Activity
	for _, a := range activities {
		if a.ParentID != nil {
			children[*a.ParentID] = append(children[*a.ParentID], a)
		} else {
			roots = append(roots, a)
		}
	}

	ordered := make([]*domain.Activity, 0, len(activities))
	for _, r := range roots {
		ordered = append(ordered, r)
		ordered = append(ordered, children[r.ID]...)
	}
	// Orphaned children (parent stopped out of view) still show up.
	seen := make(map[string]bool, len(ordered))
	for _, a := range ordered {
		seen[a.ID] = true
	}
	for _, a := range activities {
		if !seen[a.ID] {
			ordered = append(ordered, a)
		}
	}
	return ordered
}

func newStopCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "stop ACTIVITY",
		Short: "Stop tracking an activity, keeping its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			at, err := parseDayFlag(date)
			if err != nil {
				return err
			}
			if err := app.Activities.Stop(ctx, a.ID, at); err != nil {
				return err
			}
			fmt.Printf("Stopped %s as of %s\n", a.Name, domain.DayKey(at))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Stop date (YYYY-MM-DD, default today)")

	return cmd
}

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume ACTIVITY",
		Short: "Resume a stopped activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Resume(ctx, a.ID); err != nil {
				return err
			}
			fmt.Printf("Resumed %s\n", a.Name)
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ACTIVITY",
		Short: "Remove an activity and its logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Delete(ctx, a.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", a.Name)
			return nil
		},
	}
}

func newSlotCmd(app *App) *cobra.Command {
	var days string

	cmd := &cobra.Command{
		Use:   "slot ACTIVITY LABEL",
		Short: "Add a time slot (e.g. morning) to an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}

			slot := &domain.TimeSlot{ActivityID: a.ID, Label: args[1]}
			if days != "" {
				wd, err := parseWeekdays(days)
				if err != nil {
					return err
				}
				slot.Weekdays = wd
			}
			if err := app.Activities.AddSlot(ctx, slot); err != nil {
				return err
			}
			fmt.Printf("Added slot %q to %s\n", slot.Label, a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&days, "days", "", "Restrict the slot to weekdays (e.g. mon,fri)")

	return cmd
}
