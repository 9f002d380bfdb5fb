package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRoutesTab(cw int) string {
	t := theme.Active
	cat := a.planner.Catalog()
	r := a.result

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	activeStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	var b strings.Builder

	for _, route := range cat.Routes() {
		hops := route.HopCount()
		body := valueStyle.Render(cli.FormatRoute(route.Cities)) + "\n" +
			mutedStyle.Render(fmt.Sprintf("%s · %s",
				cli.Pluralize(hops, "hop"),
				cli.FormatDistance(cat.HopDistanceKm()*float64(hops))))
		title := fmt.Sprintf("%s (%s)", route.Name, route.Key)
		if route.Key == r.Request.Route {
			b.WriteString(components.AccentCard("● "+title, body, t.Accent, cw))
		} else {
			b.WriteString(components.ContentCard(title, body, cw))
		}
		b.WriteString("\n")
	}

	widths := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		widths = []int{cw, cw}
	}

	// Transport prices for the selected trip's distance and passengers.
	var tb strings.Builder
	for _, tr := range cat.Transports() {
		style := valueStyle
		if tr.Key == r.Request.Transport {
			style = activeStyle
		}
		tb.WriteString(style.Render(fmt.Sprintf("%-10s", tr.Name)))
		tb.WriteString(mutedStyle.Render(fmt.Sprintf(" %s/km  ", cli.FormatMoney(tr.Rate, ""))))
		tb.WriteString(style.Render(cli.FormatMoney(tr.Cost(r.DistanceKm, r.Request.Passengers), a.currency)))
		tb.WriteString("\n")
	}

	var hb strings.Builder
	for _, h := range cat.Hotels() {
		style := valueStyle
		if h.Key == r.Request.Hotel {
			style = activeStyle
		}
		hb.WriteString(style.Render(fmt.Sprintf("%-10s", h.Label)))
		hb.WriteString(mutedStyle.Render(fmt.Sprintf(" %s/night per person", cli.FormatMoney(h.Rate, a.currency))))
		hb.WriteString("\n")
	}

	transportCard := components.ContentCard(
		fmt.Sprintf("Transport · %s", cli.FormatDistance(r.DistanceKm)),
		strings.TrimRight(tb.String(), "\n"), widths[0])
	hotelCard := components.ContentCard("Hotel tiers", strings.TrimRight(hb.String(), "\n"), widths[1])

	if a.isCompactLayout() {
		b.WriteString(transportCard)
		b.WriteString("\n")
		b.WriteString(hotelCard)
	} else {
		b.WriteString(components.CardRow([]string{transportCard, hotelCard}))
	}
	return b.String()
}
