package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/engine"
)

// FormatToday renders the due list for a day with a completion summary line.
func FormatToday(day time.Time, items []engine.DueItem, result engine.DayResult) string {
	var b strings.Builder

	if len(items) == 0 {
		if !result.Applicable {
			b.WriteString(Dim("Nothing scheduled today.") + "\n")
		} else {
			b.WriteString(StyleGreen.Render("All done for today!") + "\n")
		}
	} else {
		for _, item := range items {
			b.WriteString(formatDueItem(item) + "\n")
		}
	}

	if result.Applicable {
		b.WriteString("\n")
		if result.AllSkipped {
			b.WriteString(Dim("All activities skipped today.") + "\n")
		} else {
			b.WriteString(RenderProgress(result.Rate, 20) + "\n")
		}
	}

	return RenderBox(day.Format("Monday, Jan 2"), b.String())
}

func formatDueItem(item engine.DueItem) string {
	a := item.Activity

	name := Bold(a.Name)
	if a.IsContainer() {
		name = StyleHeader.Render(a.Name)
	}

	var extras []string
	if item.Carried {
		extras = append(extras, StyleYellow.Render("carried from "+item.DueDate.Format("Jan 2")))
	}
	if item.Sessions > 1 {
		extras = append(extras, Dim(fmt.Sprintf("x%d", item.Sessions)))
	}
	if a.Kind == domain.KindCumulative && a.TargetValue != nil {
		extras = append(extras, Dim(fmt.Sprintf("target %s", trimFloat(*a.TargetValue))))
	}
	if a.IsReminder() {
		extras = append(extras, Dim("until done"))
	}

	line := fmt.Sprintf("%s %s", Dim("○"), name)
	if len(extras) > 0 {
		line += "  " + strings.Join(extras, "  ")
	}
	return line
}

// FormatActivityList renders the activity table for `cadence list`.
func FormatActivityList(activities []*domain.Activity) string {
	headers := []string{"ID", "NAME", "KIND", "SCHEDULE", "TARGET"}
	rows := make([][]string, 0, len(activities))

	for _, a := range activities {
		name := Bold(a.Name)
		if a.ParentID != nil {
			name = "  " + StyleFg.Render(a.Name)
		}
		if a.StoppedAt != nil {
			name += " " + Dim("(stopped)")
		}
		schedule := DescribeSchedule(a.Schedule)
		if a.CarryForward {
			schedule += Dim(" ↩")
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			name,
			KindBadge(a.Kind),
			schedule,
			FormatTarget(a),
		})
	}

	return RenderTable(headers, rows)
}
