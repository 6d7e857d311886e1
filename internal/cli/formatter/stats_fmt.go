package formatter

import (
	"fmt"
	"strings"

	"github.com/mkellner/cadence/internal/service"
)

const statsProgressBarWidth = 10

// FormatStats renders the per-activity stats table.
func FormatStats(stats []service.ActivityStats) string {
	headers := []string{"NAME", "SCHEDULE", "STREAK", "BEST", "7 DAYS", "30 DAYS"}
	rows := make([][]string, 0, len(stats))

	for _, st := range stats {
		rows = append(rows, []string{
			Bold(st.Activity.Name),
			DescribeSchedule(st.Activity.Schedule),
			StreakLabel(st.CurrentStreak),
			fmt.Sprintf("%d", st.LongestStreak),
			RenderProgress(st.Rate7, statsProgressBarWidth),
			RenderProgress(st.Rate30, statsProgressBarWidth),
		})
	}

	return RenderBox("Stats", RenderTable(headers, rows))
}

// FormatStreak renders the streak summary for a single activity.
func FormatStreak(name string, current, longest int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Current streak  %s\n", StreakLabel(current)))
	b.WriteString(fmt.Sprintf("Longest streak  %d days\n", longest))
	return RenderBox(name, b.String())
}
