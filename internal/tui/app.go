// Package tui provides the interactive Bubble Tea trip planner.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/model"
	"github.com/theirongolddev/tripcost/internal/planner"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	planner  *planner.Planner
	currency string

	// Plan form (nil while results are shown)
	form    *huh.Form
	answers *planAnswers

	// Last evaluation
	result    model.TripResult
	hasResult bool
	evalErr   error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	maxFormWidth     = 90
	minContentHeight = 5
)

// NewApp returns an app that opens on the plan form, pre-filled with defaults.
func NewApp(p *planner.Planner, defaults model.TripRequest, currency string) App {
	ans := answersFrom(defaults)
	return App{
		planner:  p,
		currency: currency,
		answers:  ans,
		form:     newPlanForm(p, ans, currency),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.form != nil {
		return a.form.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = size.Width
		a.height = size.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(size.Width, maxFormWidth)).WithHeight(size.Height - 4)
		}
		return a, nil
	}

	if a.form != nil {
		return a.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if a.showHelp || msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "?":
			a.showHelp = true
		case "n":
			return a.openForm()
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(msg.Runes) == 1 {
				if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
	}
	return a, nil
}

// openForm reopens the plan form with the previous answers.
func (a App) openForm() (tea.Model, tea.Cmd) {
	a.form = newPlanForm(a.planner, a.answers, a.currency)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, maxFormWidth)).WithHeight(a.height - 4)
	}
	a.showHelp = false
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.form = nil
		a.evaluate()
		return a, nil
	case huh.StateAborted:
		a.form = nil
		if !a.hasResult && a.evalErr == nil {
			return a, tea.Quit
		}
		return a, nil
	}
	return a, cmd
}

// evaluate runs the planner on the current answers.
func (a *App) evaluate() {
	req, err := a.answers.request()
	if err == nil {
		var res model.TripResult
		res, err = a.planner.Evaluate(req)
		if err == nil {
			a.result = res
			a.hasResult = true
			a.evalErr = nil
			a.activeTab = 0
			return
		}
	}
	a.evalErr = err
	a.hasResult = false
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(5, a.height)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tripcost needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active

	title := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ tripcost") +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · plan a trip")

	body := title + "\n\n" + a.form.View()
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(body))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"s c r", "Summary / Cities / Routes"},
		{"← →", "Previous / Next tab"},
		{"n", "New plan (keeps answers)"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	// Header: tabs + trip pill
	pillDim := lipgloss.NewStyle().Foreground(t.TextDim)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	pill := " "
	if a.hasResult {
		r := a.result
		parts := []string{
			r.RouteName,
			r.TransportName,
			r.HotelLabel,
			fmt.Sprintf("%dd", r.Request.Days),
			fmt.Sprintf("%d pax", r.Request.Passengers),
		}
		for i, p := range parts {
			if i > 0 {
				pill += pillDim.Render(" │ ")
			}
			pill += pillAccent.Render(p)
		}
	}
	header := components.RenderTabBar(a.activeTab, w) + "\n" + pill

	info := a.currency
	if a.hasResult {
		if a.result.Sufficient {
			info = "within budget · " + info
		} else {
			info = "over budget · " + info
		}
	}
	statusBar := components.RenderStatusBar(w, info)

	contentH := max(minContentHeight, a.height-lipgloss.Height(header)-lipgloss.Height(statusBar))

	var content string
	switch {
	case a.evalErr != nil:
		content = components.AccentCard("Could not evaluate trip",
			a.evalErr.Error()+"\n\nPress n to edit the plan.", t.Red, min(cw, 70))
	case !a.hasResult:
		content = components.ContentCard("No plan yet", "Press n to plan a trip.", min(cw, 70))
	default:
		switch a.activeTab {
		case 0:
			content = a.renderSummaryTab(cw)
		case 1:
			content = a.renderCitiesTab(cw)
		case 2:
			content = a.renderRoutesTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}
