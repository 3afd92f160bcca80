package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/styleadvisor/styleadvisor/internal/analysis"
	"github.com/styleadvisor/styleadvisor/internal/handlers"
	"github.com/styleadvisor/styleadvisor/internal/metrics"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the analysis HTTP API",
		Long: `Starts the Styleadvisor HTTP API.

Photos are posted to /api/analyze/{domain} as a multipart "file" field or as a
JSON body {"image_url": "..."}; catalogs are listed under /api/catalogs/{domain}.
Prometheus metrics are exposed on /metrics.`,
		Example: `  # Start server on the port from PORT (default 8888)
  styleadvisor serve

  # Start server on custom port
  styleadvisor serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := metrics.NewManager()
			cfg, analyzer, err := newAnalyzer(
				analysis.WithReporter(analysis.LogReporter{}),
				analysis.WithRecorder(m),
			)
			if err != nil {
				return err
			}
			if port == "" {
				port = cfg.Port
			}

			handler := handlers.New(analyzer,
				handlers.WithMaxUpload(cfg.MaxUploadBytes),
				handlers.WithObserver(m),
			)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/analyze/", handler.Instrument("/api/analyze/", handler.HandleAnalyze))
			mux.HandleFunc("/api/catalogs/", handler.Instrument("/api/catalogs/", handler.HandleCatalog))
			mux.Handle("/metrics", m.Handler())
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Styleadvisor API available", "addr", addr, "provider", cfg.Provider, "timeout", cfg.Timeout)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// In-flight analyses may run up to the analysis timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (defaults to PORT, then 8888)")

	return cmd
}
