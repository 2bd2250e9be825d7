package extract

import (
	"log/slog"
	nurl "net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/use-agent/ladle/models"
)

// PageMetadata extracts page-level metadata (title, author, description,
// site name) from the fetched HTML via the Readability algorithm.
//
// Best-effort only: any failure yields a Metadata carrying just the source
// URL. The recipe fields never depend on this.
func PageMetadata(rawHTML string, sourceURL string) models.Metadata {
	meta := models.Metadata{SourceURL: sourceURL}

	parsedURL, err := nurl.Parse(sourceURL)
	if err != nil {
		slog.Warn("metadata: invalid source URL", "url", sourceURL, "error", err)
		return meta
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		slog.Warn("metadata: readability failed", "url", sourceURL, "error", err)
		return meta
	}

	meta.Title = article.Title
	meta.Description = article.Excerpt
	meta.SiteName = article.SiteName
	meta.Author = article.Byline
	return meta
}
