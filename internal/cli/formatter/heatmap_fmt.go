package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkellner/cadence/internal/service"
)

const heatmapWeekWidth = 7

// heatmapCell maps a day to a colored block. Vacation and not-applicable
// days are dimmed so gaps read as rest, not failure.
func heatmapCell(d service.HeatmapDay) string {
	switch {
	case d.Vacation:
		return StyleBlue.Render("■")
	case !d.Applicable:
		return StyleDim.Render("·")
	case d.AllSkipped:
		return StyleDim.Render("■")
	case d.Rate >= 1:
		return StyleGreen.Render("■")
	case d.Rate > 0:
		return StyleYellow.Render("■")
	default:
		return StyleRed.Render("■")
	}
}

// FormatHeatmap renders trailing daily completion as rows of week-sized
// blocks, oldest first, with a month label on each row start.
func FormatHeatmap(days []service.HeatmapDay) string {
	if len(days) == 0 {
		return Dim("No history yet.")
	}

	var b strings.Builder
	for start := 0; start < len(days); start += heatmapWeekWidth {
		end := start + heatmapWeekWidth
		if end > len(days) {
			end = len(days)
		}
		week := days[start:end]

		label := week[0].Date.Format("Jan 02")
		b.WriteString(Dim(label) + "  ")
		cells := make([]string, 0, len(week))
		for _, d := range week {
			cells = append(cells, heatmapCell(d))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	legend := []string{
		StyleGreen.Render("■") + Dim(" done"),
		StyleYellow.Render("■") + Dim(" partial"),
		StyleRed.Render("■") + Dim(" missed"),
		StyleBlue.Render("■") + Dim(" vacation"),
		StyleDim.Render("·") + Dim(" free"),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(legend, "  ")))
	b.WriteString("\n")

	return RenderBox("Heatmap", b.String())
}
