package cmd

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/tripcost/internal/catalog"
	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/store"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List routes, cities, hotel tiers and transport",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write the active catalog to a SQLite snapshot",
	Long: "Write the active catalog (built-ins plus config overrides) to a SQLite\n" +
		"file that can be loaded later with --catalog-db.",
	Args: cobra.ExactArgs(1),
	RunE: runCatalogExport,
}

func init() {
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cfg, p, err := loadPlanner()
	if err != nil {
		return err
	}
	cat := p.Catalog()
	currency := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("TRIP CATALOG"))
	fmt.Println()

	routeRows := make([][]string, 0, len(cat.Routes()))
	for _, r := range cat.Routes() {
		routeRows = append(routeRows, []string{
			r.Key,
			r.Name,
			cli.FormatRoute(r.Cities),
			cli.FormatDistance(cat.HopDistanceKm() * float64(r.HopCount())),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Routes",
		Headers:  []string{"Key", "Name", "Cities", "Distance"},
		Rows:     routeRows,
		TextCols: []int{1, 2},
	}))
	fmt.Println()

	cities := cat.Cities()
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	cityRows := make([][]string, 0, len(cities))
	for _, c := range cities {
		cityRows = append(cityRows, []string{c.Name, cli.FormatMoney(c.FoodRate, currency), c.Sight})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Cities (food per person per day)",
		Headers:  []string{"City", "Food", "Sight"},
		Rows:     cityRows,
		TextCols: []int{2},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Hotel tiers (per person per night)",
		Headers: []string{"Key", "Label", "Rate"},
		Rows: rowsOf(cat.Hotels(), func(h catalog.HotelTier) []string {
			return []string{h.Key, h.Label, cli.FormatMoney(h.Rate, currency)}
		}),
		TextCols: []int{1},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Transport (per person per km)",
		Headers: []string{"Key", "Name", "Rate"},
		Rows: rowsOf(cat.Transports(), func(t catalog.Transport) []string {
			return []string{t.Key, t.Name, cli.FormatMoney(t.Rate, currency)}
		}),
		TextCols: []int{1},
	}))
	fmt.Println()

	fmt.Println(cli.RenderMuted(fmt.Sprintf("  Every hop between consecutive cities counts as %s.",
		cli.FormatDistance(cat.HopDistanceKm()))))
	fmt.Println()
	return nil
}

func runCatalogExport(_ *cobra.Command, args []string) error {
	_, p, err := loadPlanner()
	if err != nil {
		return err
	}
	path := args[0]

	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	spec := p.Catalog().Spec()
	if err := s.Save(spec); err != nil {
		return fmt.Errorf("exporting catalog: %w", err)
	}

	fmt.Printf("  Exported %d routes, %d cities, %d hotel tiers, %d transports to %s\n",
		len(spec.Routes), len(spec.Cities), len(spec.Hotels), len(spec.Transports), path)
	fmt.Printf("  Load it with: tripcost --catalog-db %s\n", path)
	return nil
}

func rowsOf[T any](items []T, row func(T) []string) [][]string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = row(it)
	}
	return rows
}
