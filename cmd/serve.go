package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/circulation/internal/handlers"
	"github.com/lehigh-university-libraries/circulation/internal/storage"
	"github.com/spf13/cobra"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long: `Starts the circulation HTTP API on the specified port.

Each session gets its own copy of the seed catalog and its own loan set.
Sessions live in memory until they are deleted or the server stops.`,
		Example: `  # Start server on default port 8888
  circulation serve

  # Start server on custom port with Open Library suggestions
  circulation serve --port 3000 --source openlibrary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.config()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			books, err := catalog(cfg)
			if err != nil {
				return err
			}
			src, err := suggester(cmd, cfg)
			if err != nil {
				return err
			}

			handler := handlers.New(storage.New(), src, books, cfg.SuggestMaxResults)

			mux := http.NewServeMux()
			handler.Register(mux)

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Circulation API available", "addr", addr, "url", "http://localhost"+addr, "source", cfg.SuggestSource, "books", len(books))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
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

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on; overrides CIRCULATION_PORT")

	return cmd
}
