package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const chartHeight = 8

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	r := a.result
	money := func(v float64) string { return cli.FormatMoney(v, a.currency) }
	share := func(v float64) string {
		if r.GrandTotal == 0 {
			return ""
		}
		return cli.FormatPercent(v/r.GrandTotal) + " of total"
	}

	var b strings.Builder

	// Row 1: metric cards
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Grand total", Value: money(r.GrandTotal), Note: "budget " + money(r.Request.Budget)},
		{Label: "Transport", Value: money(r.TransportCost), Note: share(r.TransportCost), Color: t.Series("Transport")},
		{Label: "Food", Value: money(r.TotalFood), Note: share(r.TotalFood), Color: t.Series("Food")},
		{Label: "Hotel", Value: money(r.TotalHotel), Note: share(r.TotalHotel), Color: t.Series("Hotel")},
	}, cw))
	b.WriteString("\n")

	// Row 2: series chart + budget verdict
	var chartW, budgetW int
	if a.isCompactLayout() {
		chartW, budgetW = cw, cw
	} else {
		widths := components.LayoutRow(cw, 2)
		chartW, budgetW = widths[0], widths[1]
	}

	var bars []components.Bar
	for _, p := range r.Series() {
		bars = append(bars, components.Bar{Label: p.Label, Value: p.Value, Color: t.Series(p.Label)})
	}
	chartCard := components.ContentCard("Cost breakdown",
		components.BarChart(bars, components.CardInnerWidth(chartW), chartHeight), chartW)

	budgetCard := a.renderBudgetCard(budgetW)

	if a.isCompactLayout() {
		b.WriteString(chartCard)
		b.WriteString("\n")
		b.WriteString(budgetCard)
	} else {
		b.WriteString(components.CardRow([]string{chartCard, budgetCard}))
	}

	return b.String()
}

func (a App) renderBudgetCard(outerW int) string {
	t := theme.Active
	r := a.result
	money := func(v float64) string { return cli.FormatMoney(v, a.currency) }
	innerW := components.CardInnerWidth(outerW)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	body.WriteString(components.BudgetBar("Used", r.BudgetUsed(), 6, innerW-12))
	body.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Budget", money(r.Request.Budget)},
		{"Estimate", money(r.GrandTotal)},
		{"Remaining", money(r.Remaining())},
		{"Per person", money(r.GrandTotal / float64(max(1, r.Request.Passengers)))},
		{"Per day", money(r.GrandTotal / float64(max(1, r.Request.Days)))},
		{"Distance", fmt.Sprintf("%s (%d hops)", cli.FormatDistance(r.DistanceKm), r.HopCount)},
	}
	for _, row := range rows {
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", row.label)))
		body.WriteString(valueStyle.Render(row.value))
		body.WriteString("\n")
	}

	if r.Sufficient {
		return components.AccentCard("✓ Budget is sufficient", strings.TrimRight(body.String(), "\n"), t.Green, outerW)
	}
	title := "✗ Budget falls short by " + money(-r.Remaining())
	return components.AccentCard(title, strings.TrimRight(body.String(), "\n"), t.Red, outerW)
}
