package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCitiesTab(cw int) string {
	t := theme.Active
	r := a.result
	money := func(v float64) string { return cli.FormatMoney(v, a.currency) }
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	const (
		cityW  = 14
		daysW  = 5
		moneyW = 16
	)
	sightW := max(10, innerW-cityW-daysW-3*moneyW-5)

	line := func(city, days, food, hotel, total, sight string) string {
		return fmt.Sprintf("%-*s %*s %*s %*s %*s %s",
			cityW, truncStr(city, cityW),
			daysW, days,
			moneyW, food,
			moneyW, hotel,
			moneyW, total,
			truncStr(sight, sightW))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(line("City", "Days", "Food", "Hotel", "Total", "Sight")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", min(innerW, cityW+daysW+3*moneyW+5+sightW))))
	b.WriteString("\n")

	for _, c := range r.Cities {
		b.WriteString(rowStyle.Render(line(
			c.City,
			fmt.Sprintf("%d", r.DaysPerCity),
			money(c.FoodCost),
			money(c.HotelCost),
			money(c.Total()),
			c.Sight,
		)))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(strings.Repeat("─", min(innerW, cityW+daysW+3*moneyW+5+sightW))))
	b.WriteString("\n")
	b.WriteString(totalStyle.Render(line(
		"Total",
		fmt.Sprintf("%d", r.DaysPerCity*len(r.Cities)),
		money(r.TotalFood),
		money(r.TotalHotel),
		money(r.TotalFood+r.TotalHotel),
		"",
	)))

	note := ""
	if dropped := r.Request.Days - r.DaysPerCity*len(r.Cities); dropped > 0 {
		note = "\n\n" + dimStyle.Render(fmt.Sprintf("%s not assigned to any city (%d days over %d cities).",
			cli.Pluralize(dropped, "day"), r.Request.Days, len(r.Cities)))
	}

	title := fmt.Sprintf("Stays · %s per city · %s", cli.Pluralize(r.DaysPerCity, "day"), cli.Pluralize(r.Request.Passengers, "passenger"))
	return components.ContentCard(title, b.String()+note, cw)
}
