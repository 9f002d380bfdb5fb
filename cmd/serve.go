package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/tripcost/internal/logging"
	"github.com/theirongolddev/tripcost/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var (
	flagServeAddr      string
	flagServeLogFormat string
	flagServeLogLevel  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planner as an HTTP API",
	Long: "Serve GET /healthz, GET /v1/catalog, POST /v1/estimate and GET /metrics\n" +
		"until interrupted.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.Flags().StringVar(&flagServeLogFormat, "log-format", "", "Log format: text or json (default from config)")
	serveCmd.Flags().StringVar(&flagServeLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, p, err := loadPlanner()
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}
	format := cfg.Server.LogFormat
	if flagServeLogFormat != "" {
		format = flagServeLogFormat
	}
	logger := logging.New(logging.Config{Level: flagServeLogLevel, Format: format}, os.Stderr)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := server.New(server.Config{
		Addr:           addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Currency:       cfg.General.Currency,
	}, p, reg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("  tripcost API listening on http://%s\n", addr)
	fmt.Printf("  Try: curl -s -X POST http://%s/v1/estimate -d '{\"route\":\"%s\",\"transport\":\"%s\",\"hotel\":\"%s\",\"days\":%d,\"passengers\":%d,\"budget\":%g}'\n",
		addr, cfg.General.DefaultRoute, cfg.General.DefaultTransport, cfg.General.DefaultHotel,
		cfg.General.DefaultDays, cfg.General.DefaultPassengers, cfg.General.DefaultBudget)
	fmt.Println("  Stop with Ctrl+C")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
