package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	homeymcp "github.com/aretw0/homey-mcp"
	"github.com/aretw0/homey-mcp/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON API",
	Long: `Serves the operation catalog as a JSON API:

  GET  /operations          catalog with input schemas
  POST /operations/{name}   invoke with a JSON argument object
  GET  /openapi.json        OpenAPI 3 document
  GET  /events              SSE feed of finished invocations
  GET  /healthz             200 when connected, 503 when degraded
  GET  /metrics             Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		bridge, logger, err := startBridge(ctx, cmd)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           bridge.HTTPHandler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			if tui.IsTerminal(cmd.ErrOrStderr()) {
				tui.PrintBanner(cmd.ErrOrStderr(), homeymcp.Version)
			}
			logger.Info("Starting homey-mcp HTTP API", "address", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Start shutdown...")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("HTTP API stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
