package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := config.Path()
	if flagConfig != "" {
		path = flagConfig
	}
	fmt.Printf("  Config file: %s\n", path)
	if config.Exists() || flagConfig != "" {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	g := cfg.General
	fmt.Println("  [General]")
	fmt.Printf("    Currency:          %s\n", g.Currency)
	fmt.Printf("    Default route:     %s\n", g.DefaultRoute)
	fmt.Printf("    Default transport: %s\n", g.DefaultTransport)
	fmt.Printf("    Default hotel:     %s\n", g.DefaultHotel)
	fmt.Printf("    Default days:      %d\n", g.DefaultDays)
	fmt.Printf("    Passengers:        %d\n", g.DefaultPassengers)
	fmt.Printf("    Budget:            %s\n", cli.FormatMoney(g.DefaultBudget, g.Currency))
	fmt.Println()

	l := cfg.Limits
	fmt.Println("  [Limits]")
	fmt.Printf("    Days:       %d to %d\n", l.MinDays, l.MaxDays)
	fmt.Printf("    Passengers: %d to %d\n", l.MinPassengers, l.MaxPassengers)
	fmt.Printf("    Budget:     %s to %s\n", cli.FormatMoney(l.MinBudget, ""), cli.FormatMoney(l.MaxBudget, ""))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:    %s\n", cfg.Server.Addr)
	if len(cfg.Server.AllowedOrigins) > 0 {
		fmt.Printf("    Origins:    %s\n", strings.Join(cfg.Server.AllowedOrigins, ", "))
	} else {
		fmt.Println("    Origins:    any")
	}
	fmt.Printf("    Log format: %s\n", cfg.Server.LogFormat)
	fmt.Println()

	o := cfg.Catalog
	fmt.Println("  [Catalog]")
	if flagCatalogDB != "" {
		fmt.Printf("    Snapshot:       %s\n", flagCatalogDB)
	}
	if o.HopDistanceKm > 0 {
		fmt.Printf("    Hop distance:   %s\n", cli.FormatDistance(o.HopDistanceKm))
	}
	fmt.Printf("    Overrides:      %d cities, %d routes, %d hotels, %d transports\n",
		len(o.Cities), len(o.Routes), len(o.Hotels), len(o.Transport))
	fmt.Println()

	fmt.Println("  Run `tripcost setup` to reconfigure.")
	return nil
}
