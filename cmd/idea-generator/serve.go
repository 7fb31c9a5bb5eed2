// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/idea-generator/internal/history"
	"github.com/pdiddy/idea-generator/internal/server"
	"github.com/pdiddy/idea-generator/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a generator session over a JSON HTTP API",
	Long: `Serve starts an HTTP server holding one generator session.

  GET  /api/state     current mode, difficulty and result
  PUT  /api/state     change mode and/or difficulty
  POST /api/generate  draw a new idea and store it as the result
  GET  /api/lists     catalog summary
  GET  /api/health    liveness check

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	recordFlag, _ := cmd.Flags().GetBool("record")

	logger := newLogger(os.Stdout, cfg.Log)
	slog.SetDefault(logger)

	gen, catalog, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	var recorder server.Recorder
	if recordFlag || cfg.History.Enabled {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
	}

	logger.Info("starting idea-generator server",
		"addr", cfg.Server.Addr,
		"locale", cfg.Locale,
		"record", recorder != nil,
	)

	srv := server.NewServer(cfg.Server, gen, catalog, recorder, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}

func newLogger(w io.Writer, cfg types.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config server.addr, 127.0.0.1:8080)")
	serveCmd.Flags().Bool("record", false, "record generated ideas to the history database")

	rootCmd.AddCommand(serveCmd)
}
