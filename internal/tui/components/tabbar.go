package components

import (
	"strings"

	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines the result views in display order.
var Tabs = []Tab{
	{Name: "Summary", Key: 's', KeyPos: 0},
	{Name: "Cities", Key: 'c', KeyPos: 0},
	{Name: "Routes", Key: 'r', KeyPos: 0},
}

// renderTab renders one tab with one column of padding on each side.
func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	inactive := lipgloss.NewStyle().Foreground(t.TextMuted)
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	var body string
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		body = inactive.Render(tab.Name[:tab.KeyPos]) +
			dim.Render("[") + key.Render(string(tab.Name[tab.KeyPos])) + dim.Render("]") +
			inactive.Render(tab.Name[tab.KeyPos+1:])
	} else {
		body = inactive.Render(tab.Name) +
			dim.Render("[") + key.Render(string(tab.Key)) + dim.Render("]")
	}
	return " " + body + " "
}

// TabVisualWidth returns the display width of a rendered tab.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tabs on one line separated by a single column.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	sep := lipgloss.NewStyle().Foreground(t.Border).Render("│")

	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, sep))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
