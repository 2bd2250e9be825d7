// Command ladle extracts a recipe from a single URL.
//
// Usage: ladle <url>
//
// Exactly one line of JSON is written to stdout: either
// {"title":...,"ingredients":[...],"instructions":[...]} or {"error":...}.
// Callers treat the error shape as the signal to run their own fallback.
// All diagnostics go to stderr.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/use-agent/ladle/config"
	"github.com/use-agent/ladle/extract"
	"github.com/use-agent/ladle/fetch"
	"github.com/use-agent/ladle/models"
	"github.com/use-agent/ladle/pipeline"
	"github.com/use-agent/ladle/primary"
)

func main() {
	cfg := config.Load()

	// stdout is reserved for the result line; logs go to stderr.
	logger := newLogger(cfg.Log, os.Stderr)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: ladle <url>")
		os.Exit(2)
	}
	targetURL := os.Args[1]

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

	enc := json.NewEncoder(os.Stdout)

	recipe, err := p.Run(context.Background(), targetURL)
	if err != nil {
		logger.Error("extraction failed", "url", targetURL, "error", err)
		if encErr := enc.Encode(models.ErrorResult{Error: models.ErrorMessage(err)}); encErr != nil {
			fmt.Fprintln(os.Stderr, "encode error:", encErr)
		}
		os.Exit(1)
	}

	if err := enc.Encode(recipe); err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		os.Exit(1)
	}
}

// newLogger configures slog based on the LogConfig, writing to w.
func newLogger(cfg config.LogConfig, w *os.File) *slog.Logger {
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
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
