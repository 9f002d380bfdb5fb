package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/model"
	"github.com/theirongolddev/tripcost/internal/report"
	"github.com/theirongolddev/tripcost/internal/server"

	"github.com/spf13/cobra"
)

var (
	flagRoute      string
	flagTransport  string
	flagHotel      string
	flagDays       int
	flagPassengers int
	flagBudget     float64
	flagJSON       bool
	flagPDF        string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Estimate one trip and check it against the budget",
	Example: "  tripcost plan -r bg-de -t train --hotel standard -n 6 -p 2 -b 3000\n" +
		"  tripcost plan -r bg-it -t plane --json",
	RunE: runPlan,
}

func init() {
	addPlanFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

// addPlanFlags registers the trip flags on c. Root and plan share the
// same variables so `tripcost -r bg-it` works like `tripcost plan -r bg-it`.
func addPlanFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&flagRoute, "route", "r", "", "Route key (default from config)")
	f.StringVarP(&flagTransport, "transport", "t", "", "Transport key: car, train, plane, ...")
	f.StringVar(&flagHotel, "hotel", "", "Hotel tier key: budget, standard, luxury, ...")
	f.IntVarP(&flagDays, "days", "n", 0, "Trip length in days")
	f.IntVarP(&flagPassengers, "passengers", "p", 0, "Number of passengers")
	f.Float64VarP(&flagBudget, "budget", "b", 0, "Available budget")
	f.BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	f.StringVar(&flagPDF, "pdf", "", "Also write a PDF report to this file")
}

// requestFromFlags starts from the configured defaults and applies every
// flag the user set explicitly.
func requestFromFlags(c *cobra.Command, cfg config.Config) model.TripRequest {
	req := cfg.DefaultRequest()
	f := c.Flags()
	if f.Changed("route") {
		req.Route = flagRoute
	}
	if f.Changed("transport") {
		req.Transport = flagTransport
	}
	if f.Changed("hotel") {
		req.Hotel = flagHotel
	}
	if f.Changed("days") {
		req.Days = flagDays
	}
	if f.Changed("passengers") {
		req.Passengers = flagPassengers
	}
	if f.Changed("budget") {
		req.Budget = flagBudget
	}
	return req
}

func runPlan(c *cobra.Command, _ []string) error {
	cfg, p, err := loadPlanner()
	if err != nil {
		return err
	}
	currency := cfg.General.Currency

	res, err := p.Evaluate(requestFromFlags(c, cfg))
	if err != nil {
		return fmt.Errorf("invalid trip: %w", err)
	}

	if flagPDF != "" {
		if err := writePDF(flagPDF, res, currency); err != nil {
			return err
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(server.EstimateResponse{
			Currency:  currency,
			Result:    res,
			Series:    res.Series(),
			Remaining: res.Remaining(),
		})
	}

	printPlan(res, currency)
	if flagPDF != "" {
		fmt.Println(cli.RenderMuted("  PDF report written to " + flagPDF))
		fmt.Println()
	}
	return nil
}

func printPlan(res model.TripResult, currency string) {
	money := func(v float64) string { return cli.FormatMoney(v, currency) }
	req := res.Request

	fmt.Println()
	fmt.Println(cli.RenderTitle("TRIP  " + res.RouteName))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.FormatRoute(res.CityNames()))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Inputs",
		TextCols: []int{1},
		Rows: [][]string{
			{"Transport", res.TransportName},
			{"Hotel tier", res.HotelLabel},
			{"Days", fmt.Sprintf("%d (%s per city)", req.Days, cli.Pluralize(res.DaysPerCity, "day"))},
			{"Passengers", fmt.Sprintf("%d", req.Passengers)},
			{"Distance", fmt.Sprintf("%s over %s", cli.FormatDistance(res.DistanceKm), cli.Pluralize(res.HopCount, "hop"))},
			{"Budget", money(req.Budget)},
		},
	}))
	fmt.Println()

	cityRows := make([][]string, 0, len(res.Cities)+2)
	for _, c := range res.Cities {
		cityRows = append(cityRows, []string{c.City, money(c.FoodCost), money(c.HotelCost), money(c.Total()), c.Sight})
	}
	cityRows = append(cityRows,
		[]string{"---"},
		[]string{"Total", money(res.TotalFood), money(res.TotalHotel), money(res.TotalFood + res.TotalHotel), ""},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Cities",
		Headers:  []string{"City", "Food", "Hotel", "Total", "Sight"},
		Rows:     cityRows,
		TextCols: []int{4},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Costs",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{model.SeriesTransport, money(res.TransportCost)},
			{model.SeriesFood, money(res.TotalFood)},
			{model.SeriesHotel, money(res.TotalHotel)},
			{"---"},
			{"Grand total", money(res.GrandTotal)},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderSeriesChart(res.Series(), currency, 30))
	fmt.Println()
	fmt.Println(cli.RenderVerdict(res, currency))
	fmt.Println()
}

func writePDF(path string, res model.TripResult, currency string) error {
	f, err := os.Create(path) //nolint:gosec // output path chosen by the local user
	if err != nil {
		return fmt.Errorf("creating pdf: %w", err)
	}
	if err := report.WritePDF(f, res, report.Options{Currency: currency, GeneratedAt: time.Now()}); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
