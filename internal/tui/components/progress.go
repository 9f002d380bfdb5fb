package components

import (
	"fmt"

	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red based on how much of the
// budget is used.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct > 1:
		return string(t.Red)
	case pct >= 0.9:
		return string(t.Orange)
	case pct >= 0.7:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled usage bar. The bar saturates at 100% while
// the percentage shows the real ratio, so an overrun reads e.g. "116%".
func BudgetBar(label string, used float64, labelW, barWidth int) string {
	t := theme.Active
	used = max(0, used)
	color := ColorForPct(used)

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(max(4, barWidth)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(min(1, used)) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", used*100))
}
