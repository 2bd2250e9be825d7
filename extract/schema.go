package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metadataBlockSelector locates embedded machine-readable blocks. Most
// recipe sites emit schema.org JSON-LD; a few embed plain application/json
// state blobs carrying the same keys.
const metadataBlockSelector = `script[type="application/ld+json"], script[type="application/json"]`

// structuredValues scans every embedded JSON metadata block in the document
// and returns the first non-empty value found for key across blocks.
//
// A block may be a single object or a list of objects (one level of list
// flattening), and a recipe node may sit one level down under "@graph".
// Blocks that fail to decode are skipped individually.
func structuredValues(doc *goquery.Document, key string) []string {
	var out []string
	doc.Find(metadataBlockSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}
		var payload any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return true
		}
		if vals := valuesForKey(payload, key); len(vals) > 0 {
			out = vals
			return false
		}
		return true
	})
	return out
}

func valuesForKey(payload any, key string) []string {
	switch v := payload.(type) {
	case map[string]any:
		if vals := decodeValues(v[key]); len(vals) > 0 {
			return vals
		}
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				if m, ok := item.(map[string]any); ok {
					if vals := decodeValues(m[key]); len(vals) > 0 {
						return vals
					}
				}
			}
		}
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				if vals := valuesForKey(m, key); len(vals) > 0 {
					return vals
				}
			}
		}
	}
	return nil
}

// decodeValues normalizes a schema.org value. Strings pass through; lists
// may mix plain strings with objects carrying a "text" key (HowToStep).
func decodeValues(raw any) []string {
	switch v := raw.(type) {
	case string:
		if t := norm(v); t != "" {
			return []string{t}
		}
	case []any:
		var out []string
		for _, item := range v {
			switch entry := item.(type) {
			case string:
				if t := norm(entry); t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if text, ok := entry["text"].(string); ok {
					if t := norm(text); t != "" {
						out = append(out, t)
					}
				}
			}
		}
		return out
	}
	return nil
}
