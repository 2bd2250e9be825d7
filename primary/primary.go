// Package primary wraps the layer-1 structured-recipe library.
package primary

import (
	"context"

	"github.com/use-agent/ladle/models"
)

// Scraper is the primary extraction capability: given a URL it fetches and
// parses the page using site-specific or generic recipe microdata rules.
//
// The returned Recipe may be incomplete; the pipeline decides whether to
// accept it or fall back. An error means the library could not produce a
// recipe at all.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*models.Recipe, error)
}
