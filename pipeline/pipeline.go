// Package pipeline sequences the layered extraction attempts for one URL.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/use-agent/ladle/extract"
	"github.com/use-agent/ladle/models"
	"github.com/use-agent/ladle/primary"
)

// Fetcher retrieves the raw decoded HTML of a page. Implemented by
// fetch.Client; faked in tests.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Pipeline runs the ordered fallback strategy:
//
//	Init → PrimaryAttempted → {Success | FallbackAttempted → {Success | Failed}}
//
// Stateless; safe for concurrent use.
type Pipeline struct {
	primary   primary.Scraper // nil disables the primary attempt
	fetcher   Fetcher
	extractor *extract.Extractor
	log       *slog.Logger
}

// New creates a Pipeline. prim may be nil to skip the primary library.
// A nil logger means silent operation.
func New(prim primary.Scraper, fetcher Fetcher, ex *extract.Extractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if ex == nil {
		ex = extract.New(log)
	}
	return &Pipeline{primary: prim, fetcher: fetcher, extractor: ex, log: log}
}

// Result is the detailed outcome of a successful run.
type Result struct {
	Recipe *models.Recipe

	// RawHTML is the document fetched on the fallback path. Empty when
	// the primary attempt answered.
	RawHTML string

	// UsedFallback reports whether the selector cascade produced the
	// recipe rather than the primary library.
	UsedFallback bool
}

// Run extracts a recipe from rawURL. On failure the returned error is
// always a *models.ExtractError; no partial recipe is ever returned.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*models.Recipe, error) {
	res, err := p.RunDetailed(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return res.Recipe, nil
}

// RunDetailed is Run plus fallback-path details for callers that want page
// metadata.
func (p *Pipeline) RunDetailed(ctx context.Context, rawURL string) (*Result, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, models.NewExtractError(models.ErrCodeInvalidInput, err.Error(), nil)
	}

	// ── Layer 1: primary structured-recipe library ──────────────────
	if p.primary != nil {
		rec, err := p.primary.Scrape(ctx, rawURL)
		switch {
		case err != nil:
			p.log.Info("primary extraction failed, falling back",
				"url", rawURL, "error", err,
			)
		case !rec.Complete():
			p.log.Info("primary extraction incomplete, falling back",
				"url", rawURL,
				"code", models.ErrCodePrimaryIncomplete,
				"missing", strings.Join(rec.MissingFields(), ","),
			)
		default:
			// Complete primary data is returned unchanged; the fallback
			// path never runs.
			return &Result{Recipe: rec}, nil
		}
	}

	// ── Layer 2: fetch once, then the selector cascade ──────────────
	rawHTML, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, models.NewExtractError(models.ErrCodeFetchFailed,
			fmt.Sprintf("failed to fetch %s", rawURL), err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, models.NewExtractError(models.ErrCodeFetchFailed,
			fmt.Sprintf("failed to parse %s", rawURL), err)
	}

	rec := &models.Recipe{
		Title:        p.extractor.Title(doc),
		Ingredients:  p.extractor.Ingredients(doc),
		Instructions: p.extractor.Instructions(doc),
	}

	if !rec.Complete() {
		missing := rec.MissingFields()
		p.log.Info("fallback extraction incomplete",
			"url", rawURL, "missing", strings.Join(missing, ","),
		)
		return nil, models.NewExtractError(models.ErrCodeIncomplete,
			fmt.Sprintf("failed to extract recipe from %s: missing %s",
				rawURL, strings.Join(missing, ", ")), nil)
	}

	p.log.Info("fallback extraction complete",
		"url", rawURL,
		"ingredients", len(rec.Ingredients),
		"instructions", len(rec.Instructions),
	)
	return &Result{Recipe: rec, RawHTML: rawHTML, UsedFallback: true}, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", rawURL)
	}
	return nil
}
