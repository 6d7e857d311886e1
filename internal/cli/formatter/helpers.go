package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkellner/cadence/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

var weekdayShort = map[int]string{
	1: "Mon", 2: "Tue", 3: "Wed", 4: "Thu", 5: "Fri", 6: "Sat", 7: "Sun",
}

// DescribeSchedule returns a compact human description of a schedule,
// such as "daily", "weekly (Mon, Wed, Fri)", or "until done".
func DescribeSchedule(s domain.Schedule) string {
	switch s.Kind {
	case domain.ScheduleDaily:
		return "daily"
	case domain.ScheduleWeekly:
		names := make([]string, 0, len(s.Weekdays))
		for _, wd := range s.Weekdays {
			names = append(names, weekdayShort[wd])
		}
		return fmt.Sprintf("weekly (%s)", strings.Join(names, ", "))
	case domain.ScheduleMonthly:
		days := make([]string, 0, len(s.MonthDays))
		for _, md := range s.MonthDays {
			days = append(days, strconv.Itoa(md))
		}
		return fmt.Sprintf("monthly (%s)", strings.Join(days, ", "))
	case domain.ScheduleSticky:
		return "until done"
	case domain.ScheduleAdhoc:
		if s.Date != nil {
			return "on " + s.Date.Format("2006-01-02")
		}
		return "one-off"
	default:
		return string(s.Kind)
	}
}

// KindBadge returns a colored label for an activity kind.
func KindBadge(k domain.ActivityKind) string {
	switch k {
	case domain.KindCheckbox:
		return StyleBlue.Render("checkbox")
	case domain.KindValue:
		return StylePurple.Render("value")
	case domain.KindCumulative:
		return StylePurple.Render("cumulative")
	case domain.KindContainer:
		return StyleHeader.Render("container")
	case domain.KindMetric:
		return StyleDim.Render("metric")
	default:
		return StyleDim.Render(string(k))
	}
}

// FormatTarget renders a cumulative target like "2000 (sum)".
func FormatTarget(a *domain.Activity) string {
	if a.TargetValue == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%s (%s)", trimFloat(*a.TargetValue), a.Aggregation)
}

// trimFloat formats a float without trailing zeros.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StreakLabel renders a streak count with a flame for active streaks.
func StreakLabel(n int) string {
	if n <= 0 {
		return Dim("0")
	}
	return StyleYellow.Render(fmt.Sprintf("🔥 %d", n))
}
