package components

import (
	"strings"

	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the
// left and info right-aligned.
func RenderStatusBar(width int, info string) string {
	t := theme.Active

	left := " [n]ew plan  [?]help  [q]uit"
	right := ""
	if info != "" {
		right = info + " "
	}

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))

	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width).
		MaxWidth(width).
		Render(left + strings.Repeat(" ", padding) + right)
}
