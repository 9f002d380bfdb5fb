package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one column of a BarChart.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart renders vertical bars with a labeled Y axis. Every line of the
// result has the same display width.
func BarChart(bars []Bar, width, height int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active
	height = max(3, height)

	maxVal := 0.0
	for _, b := range bars {
		maxVal = max(maxVal, b.Value)
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	// Y axis: nice tick step, doubled until the ticks fit.
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(2, height/2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(1, int(math.Round(ceiling/tickStep)))
	rowsPerTick := max(1, height/numIntervals)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(4, len(formatChartLabel(ceiling))+1)

	n := len(bars)
	gap := 2
	chartW := max(n*3+(n-1)*gap, width-yLabelW-1)
	barW := min(12, max(3, (chartW-(n-1)*gap)/n))
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	gapStr := strings.Repeat(" ", gap)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		label := ""
		if row%rowsPerTick == 0 {
			label = formatChartLabel(tickStep * float64(row/rowsPerTick))
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, bar := range bars {
			if i > 0 {
				b.WriteString(gapStr)
			}
			style := lipgloss.NewStyle().Foreground(bar.Color)
			switch {
			case bar.Value >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case bar.Value > rowBottom:
				idx := int((bar.Value - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(8, max(1, idx))
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Centered X labels under each bar.
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	for i, bar := range bars {
		if i > 0 {
			b.WriteString(gapStr)
		}
		b.WriteString(labelStyle.Render(centerText(bar.Label, barW)))
	}

	return b.String()
}

func centerText(s string, w int) string {
	runes := []rune(s)
	if len(runes) > w {
		runes = runes[:w]
	}
	s = string(runes)
	left := (w - lipgloss.Width(s)) / 2
	right := w - lipgloss.Width(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
