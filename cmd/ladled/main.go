// Command ladled serves the recipe extraction pipeline over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/use-agent/ladle/api"
	"github.com/use-agent/ladle/config"
	"github.com/use-agent/ladle/extract"
	"github.com/use-agent/ladle/fetch"
	"github.com/use-agent/ladle/pipeline"
	"github.com/use-agent/ladle/primary"
)

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	logger := initLogger(cfg.Log)
	logger.Info("ladled starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"primaryEnabled", cfg.Primary.Enabled,
	)

	// ── 3. Build the extraction pipeline ────────────────────────────
	var prim primary.Scraper
	if cfg.Primary.Enabled {
		prim = primary.GoRecipe{}
	}
	p := pipeline.New(
		prim,
		fetch.NewClient(cfg.Fetch.Timeout, cfg.Fetch.UserAgent),
		extract.New(logger),
		logger,
	)

	// ── 4. Setup router ─────────────────────────────────────────────
	startTime := time.Now()
	router := api.NewRouter(p, cfg, startTime)

	// ── 5. Start HTTP server ────────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// ── 6. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutdown signal received", "signal", sig.String())

	// Give in-flight requests 5 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server forced shutdown", "error", err)
	} else {
		logger.Info("HTTP server drained gracefully")
	}
	logger.Info("ladled stopped")
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
