package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/darshoned/DfMA/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generator over HTTP",
	Long: `Start the HTTP API:
  POST /api/generate              one scenario (JSON; ?format=xlsx|pdf)
  POST /api/batch                 JSON array or multipart "file" workbook
  GET  /api/catalog/hollowcore    hollow-core catalog
  GET  /api/catalog/productivity  productivity rates
  GET  /api/profiles              active and built-in profiles
  GET  /healthz                   liveness

Requests under /api are rate limited per client (DFMA_RATE_LIMIT per second,
bursts of DFMA_RATE_BURST).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default DFMA_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	engine, err := openEngine()
	if err != nil {
		return fmt.Errorf("failed to load engine: %w", err)
	}

	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	router := server.NewRouter(engine, server.Options{
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Workers:   cfg.Workers,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.Serve(ctx, addr, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
