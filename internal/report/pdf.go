// Package report renders printable trip reports.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/model"

	"github.com/phpdave11/gofpdf"
)

// Options controls report rendering.
type Options struct {
	Currency    string
	GeneratedAt time.Time
}

// WritePDF renders an A4 trip report for res to w.
func WritePDF(w io.Writer, res model.TripResult, opts Options) error {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	money := func(v float64) string { return cli.FormatMoney(v, opts.Currency) }

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip cost estimate", true)
	pdf.SetCreationDate(opts.GeneratedAt)
	// Core fonts are cp1252; translate names like "Schönbrunn".
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP COST ESTIMATE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated: "+opts.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr(asciiArrows(res.RouteName)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(strings.Join(res.CityNames(), " - ")), "", "", false)
	pdf.Ln(3)

	lines := []string{
		fmt.Sprintf("Transport   : %s (%s over %d hops)", res.TransportName, cli.FormatDistance(res.DistanceKm), res.HopCount),
		fmt.Sprintf("Hotel tier  : %s", res.HotelLabel),
		fmt.Sprintf("Days        : %d (%s per city)", res.Request.Days, cli.Pluralize(res.DaysPerCity, "day")),
		fmt.Sprintf("Passengers  : %d", res.Request.Passengers),
		fmt.Sprintf("Budget      : %s", money(res.Request.Budget)),
	}
	for _, s := range lines {
		pdf.Cell(0, 6, tr(s))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Per-city table
	widths := []float64{40, 35, 35, 80}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"City", "Food", "Hotel", "Sight"} {
		align := "R"
		if i == 0 || i == 3 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, c := range res.Cities {
		pdf.CellFormat(widths[0], 6, tr(c.City), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, money(c.FoodCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, money(c.HotelCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(c.Sight), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Costs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range res.Series() {
		pdf.CellFormat(50, 6, p.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, money(p.Value), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(50, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, money(res.GrandTotal), "T", 0, "R", false, 0, "")
	pdf.Ln(12)

	if res.Sufficient {
		pdf.SetTextColor(70, 120, 40)
		pdf.Cell(0, 8, "Budget is sufficient. Remaining: "+money(res.Remaining()))
	} else {
		pdf.SetTextColor(190, 50, 40)
		pdf.Cell(0, 8, "Budget falls short by "+money(-res.Remaining()))
	}
	pdf.SetTextColor(0, 0, 0)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func asciiArrows(s string) string {
	return strings.ReplaceAll(s, "→", "->")
}
