package extract

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var spaceRe = regexp.MustCompile(`\s+`)

// boilerplatePrefixes disqualify a candidate title. Navigation links like
// "Skip to content" often sit in the first h1-ish node of a template.
var boilerplatePrefixes = []string{"skip to", "jump to"}

// Extractor walks the field catalogs over a parsed document.
// Stateless apart from the logger; safe for concurrent use.
type Extractor struct {
	log *slog.Logger
}

// New creates an Extractor. A nil logger means silent operation.
func New(log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{log: log}
}

// Title extracts the recipe title, or "" when no rule yields one.
func (e *Extractor) Title(doc *goquery.Document) string {
	if vals := e.walk(doc, titleRules, "title"); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Ingredients extracts the ingredient list, or nil when no rule yields one.
func (e *Extractor) Ingredients(doc *goquery.Document) []string {
	return e.walk(doc, ingredientRules, "ingredients")
}

// Instructions extracts the instruction steps, or nil when no rule yields one.
func (e *Extractor) Instructions(doc *goquery.Document) []string {
	return e.walk(doc, instructionRules, "instructions")
}

// walk evaluates rules in catalog order and stops at the first success.
// No rule after the first success is tried, even if a later rule would
// yield more data.
func (e *Extractor) walk(doc *goquery.Document, rules []Rule, field string) []string {
	for i, r := range rules {
		vals := e.evaluate(doc, r)
		if len(vals) > 0 {
			e.log.Debug("rule matched",
				"field", field, "rule", i, "pattern", r.Pattern, "entries", len(vals),
			)
			return vals
		}
	}
	return nil
}

// evaluate applies a single rule. Any per-rule fault (uncompiled selector,
// undecodable metadata block) counts as the rule failing; it never aborts
// the walk.
func (e *Extractor) evaluate(doc *goquery.Document, r Rule) []string {
	switch r.Kind {
	case KindCSSSingleText:
		if r.matcher == nil {
			return nil
		}
		sel := doc.FindMatcher(r.matcher).First()
		if sel.Length() == 0 {
			return nil
		}
		text := norm(sel.Text())
		if len(text) <= r.MinLen || isBoilerplate(text) {
			return nil
		}
		return []string{text}

	case KindCSSListText:
		if r.matcher == nil {
			return nil
		}
		var out []string
		doc.FindMatcher(r.matcher).Each(func(_ int, s *goquery.Selection) {
			if text := norm(s.Text()); len(text) > r.MinLen {
				out = append(out, text)
			}
		})
		return out

	case KindStructuredField:
		return structuredValues(doc, r.Pattern)
	}
	return nil
}

// norm trims and collapses internal whitespace runs to a single space.
func norm(s string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

func isBoilerplate(title string) bool {
	lower := strings.ToLower(title)
	for _, p := range boilerplatePrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
