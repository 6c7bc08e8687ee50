package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/brandboost/brandboost/internal/analytics"
	"github.com/brandboost/brandboost/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation API over HTTP",
	Long: `Start the HTTP API for dashboard frontends.

Routes:
  GET  /health
  GET  /api/v1/products
  POST /api/v1/generate
  GET  /api/v1/analytics

Examples:
  brandboost serve
  brandboost serve --addr :9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from BRANDBOOST_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	s := server.New(server.Deps{
		Generator:  gen,
		Engine:     analytics.NewEngine(cfg.MinutesSaved, cfg.CostSaved),
		Products:   products,
		WriterRate: cfg.WriterRate,
		AICost:     cfg.AICost,
	})

	slog.Info("Serve: starting API", "addr", addr, "products", len(products), "remote", gen != nil)
	return s.Listen(addr)
}
