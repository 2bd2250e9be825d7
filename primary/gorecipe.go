package primary

import (
	"context"
	"fmt"
	"strings"

	gorecipe "github.com/kkyr/go-recipe/pkg/recipe"

	"github.com/use-agent/ladle/models"
)

// GoRecipe implements Scraper on top of the go-recipe library, which keeps
// its own per-site scrapers plus a generic schema.org fallback. Its network
// I/O is its own; the pipeline treats it as opaque.
type GoRecipe struct{}

// Scrape fetches and parses url. Fields the library could not determine are
// left empty rather than failing the attempt; the completeness check
// upstream turns that into a fallback.
func (GoRecipe) Scrape(ctx context.Context, url string) (*models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scraper, err := gorecipe.ScrapeURL(url)
	if err != nil {
		return nil, fmt.Errorf("go-recipe: %w", err)
	}

	rec := &models.Recipe{}
	if name, ok := scraper.Name(); ok {
		rec.Title = strings.TrimSpace(name)
	}
	if ingredients, ok := scraper.Ingredients(); ok {
		rec.Ingredients = ingredients
	}
	if instructions, ok := scraper.Instructions(); ok {
		rec.Instructions = instructions
	}
	return rec, nil
}
