// Package cmd implements the tripcost CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/tripcost/internal/catalog"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/planner"
	"github.com/theirongolddev/tripcost/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagCatalogDB string
)

var rootCmd = &cobra.Command{
	Use:   "tripcost",
	Short: "Multi-city trip cost planner",
	Long: "Estimate food, hotel and transport costs for a multi-city trip\n" +
		"and check the total against a budget.",
	RunE:          runPlan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagCatalogDB, "catalog-db", "", "Load the catalog from a SQLite snapshot")
	addPlanFlags(rootCmd)
}

// loadConfig reads --config when given, else the XDG config file.
func loadConfig() (config.Config, error) {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	return config.Load()
}

// loadCatalog builds the active catalog: the built-in tables, or a SQLite
// snapshot when --catalog-db is set, with config overrides merged on top.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	base := catalog.DefaultSpec()
	if flagCatalogDB != "" {
		spec, err := store.LoadSpec(flagCatalogDB)
		if err != nil {
			return nil, fmt.Errorf("loading catalog snapshot: %w", err)
		}
		base = spec
	}
	return cfg.BuildCatalog(base)
}

// loadPlanner is the shared startup path used by every command.
func loadPlanner() (config.Config, *planner.Planner, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, planner.New(cat, cfg.PlannerLimits()), nil
}
