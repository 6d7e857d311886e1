package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkellner/cadence/internal/cli/formatter"
	"github.com/mkellner/cadence/internal/domain"
	"github.com/mkellner/cadence/internal/engine"
)

// todayLoadedMsg signals that the due list and day summary were loaded.
type todayLoadedMsg struct {
	items  []engine.DueItem
	result engine.DayResult
	err    error
}

// todayActionMsg reports the outcome of a complete/skip action.
type todayActionMsg struct {
	err error
}

// todayView is the interactive due-list checklist.
type todayView struct {
	app    *App
	day    time.Time
	items  []engine.DueItem
	result engine.DayResult

	cursor  int
	loading bool
	err     error
	notice  string
}

func newTodayView(app *App, day time.Time) *todayView {
	return &todayView{app: app, day: domain.DayStart(day), loading: true}
}

func (v *todayView) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "done")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *todayView) Init() tea.Cmd {
	return v.load()
}

func (v *todayView) load() tea.Cmd {
	app, day := v.app, v.day
	return func() tea.Msg {
		ctx := context.Background()
		items, err := app.Stats.Today(ctx, day)
		if err != nil {
			return todayLoadedMsg{err: err}
		}
		result, err := app.Stats.DayCompletion(ctx, day)
		return todayLoadedMsg{items: items, result: result, err: err}
	}
}

func (v *todayView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todayLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.items = msg.items
		v.result = msg.result
		if v.cursor >= len(v.items) && v.cursor > 0 {
			v.cursor = len(v.items) - 1
		}
		return v, nil

	case todayActionMsg:
		if msg.err != nil {
			v.notice = msg.err.Error()
			return v, nil
		}
		v.notice = ""
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
		case " ", "enter":
			if v.cursor < len(v.items) {
				return v, v.complete(v.items[v.cursor])
			}
		case "s":
			if v.cursor < len(v.items) {
				return v, v.skip(v.items[v.cursor])
			}
		case "r":
			v.loading = true
			return v, v.load()
		}
	}
	return v, nil
}

func (v *todayView) complete(item engine.DueItem) tea.Cmd {
	if item.Activity.IsContainer() {
		v.notice = "complete the container's activities individually"
		return nil
	}
	app, day := v.app, v.day
	id := item.Activity.ID
	return func() tea.Msg {
		_, err := app.Logs.Complete(context.Background(), id, day, nil, nil)
		return todayActionMsg{err: err}
	}
}

func (v *todayView) skip(item engine.DueItem) tea.Cmd {
	if item.Activity.IsContainer() {
		v.notice = "skip the container's activities individually"
		return nil
	}
	app, day := v.app, v.day
	id := item.Activity.ID
	return func() tea.Msg {
		_, err := app.Logs.Skip(context.Background(), id, day, nil, nil)
		return todayActionMsg{err: err}
	}
}

func (v *todayView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(v.day.Format("Monday, Jan 2")) + "\n\n")

	if len(v.items) == 0 {
		if v.result.Applicable {
			b.WriteString("  " + formatter.StyleGreen.Render("All done for today!") + "\n")
		} else {
			b.WriteString("  " + formatter.Dim("Nothing scheduled today.") + "\n")
		}
	}

	for i, item := range v.items {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString("  " + cursor + v.renderItem(item) + "\n")
	}

	if v.result.Applicable && !v.result.AllSkipped {
		b.WriteString("\n  " + formatter.RenderProgress(v.result.Rate, 20) + "\n")
	}

	if v.notice != "" {
		b.WriteString("\n  " + formatter.StyleYellow.Render(v.notice) + "\n")
	}

	var help []string
	for _, bind := range v.shortHelp() {
		help = append(help, fmt.Sprintf("%s %s", bind.Help().Key, bind.Help().Desc))
	}
	b.WriteString("\n  " + formatter.Dim(strings.Join(help, " · ")) + "\n")

	return b.String()
}

func (v *todayView) renderItem(item engine.DueItem) string {
	a := item.Activity

	name := formatter.Bold(a.Name)
	if a.IsContainer() {
		name = formatter.StyleHeader.Render(a.Name)
	}

	line := formatter.Dim("○") + " " + name
	if item.Carried {
		line += "  " + formatter.StyleYellow.Render("carried from "+item.DueDate.Format("Jan 2"))
	}
	if item.Sessions > 1 {
		line += "  " + formatter.Dim(fmt.Sprintf("x%d", item.Sessions))
	}
	if a.Kind == domain.KindCumulative && a.TargetValue != nil {
		line += "  " + formatter.Dim(fmt.Sprintf("target %.0f", *a.TargetValue))
	}
	return line
}
