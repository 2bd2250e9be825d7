// Package extract recovers recipe fields from heterogeneous HTML markup.
//
// Each field (title, ingredients, instructions) has an ordered catalog of
// rules. Rules are evaluated strictly in catalog order and the first rule
// producing policy-valid output wins; order encodes empirical confidence
// that earlier selectors are more specific for that field.
package extract

import (
	"github.com/andybalholm/cascadia"
)

// Kind discriminates the rule variants.
type Kind int

const (
	// KindCSSSingleText selects the first matching node and takes its
	// trimmed text.
	KindCSSSingleText Kind = iota

	// KindCSSListText selects all matching nodes and keeps each node's
	// normalized text when it exceeds the rule's minimum length.
	KindCSSListText

	// KindStructuredField reads a schema.org key from embedded JSON
	// metadata blocks.
	KindStructuredField
)

// Rule is one entry of a field catalog. Immutable after init.
type Rule struct {
	Kind Kind

	// Pattern is a CSS selector for the CSS kinds, or a schema.org key
	// for KindStructuredField.
	Pattern string

	// MinLen is the exclusive lower bound on entry length. Entries of
	// exactly MinLen characters are dropped.
	MinLen int

	// matcher is the pre-compiled selector. nil for structured rules and
	// for patterns that failed to compile; such rules never match.
	matcher cascadia.Selector
}

func cssSingle(pattern string, minLen int) Rule {
	m, err := cascadia.Compile(pattern)
	if err != nil {
		m = nil
	}
	return Rule{Kind: KindCSSSingleText, Pattern: pattern, MinLen: minLen, matcher: m}
}

func cssList(pattern string, minLen int) Rule {
	m, err := cascadia.Compile(pattern)
	if err != nil {
		m = nil
	}
	return Rule{Kind: KindCSSListText, Pattern: pattern, MinLen: minLen, matcher: m}
}

func structured(key string) Rule {
	return Rule{Kind: KindStructuredField, Pattern: key}
}

// The catalogs. Patterns cover the recipe templates seen in the wild:
// AllRecipes-style data-testid markup, the WP Recipe Maker plugin
// (wprm-*), older class-named templates, embedded schema.org metadata,
// and generic class-substring matches as the last resort.

var titleRules = []Rule{
	cssSingle(`h1[data-testid="recipe-title"]`, 3),
	cssSingle(`.recipe-title`, 3),
	cssSingle(`.wprm-recipe-name`, 3),
	structured("name"),
	cssSingle(`.recipe-header h1`, 3),
	cssSingle(`h1`, 3),
}

var ingredientRules = []Rule{
	cssList(`[data-testid="ingredient-item"]`, 2),
	cssList(`.wprm-recipe-ingredients-container li.wprm-recipe-ingredient`, 2),
	cssList(`.ingredients-item-name`, 2),
	cssList(`.ingredient-item`, 2),
	cssList(`.ingredients-list li`, 2),
	structured("recipeIngredient"),
	cssList(`li[class*="ingredient"]`, 2),
	cssList(`[class*="ingredient"]`, 2),
}

var instructionRules = []Rule{
	cssList(`[data-testid="instruction-step"]`, 10),
	cssList(`.wprm-recipe-instructions-container .wprm-recipe-instruction-text`, 10),
	cssList(`.instructions-section-item`, 10),
	cssList(`.instructions-list li`, 10),
	structured("recipeInstructions"),
	cssList(`.paragraph`, 10),
	cssList(`[class*="instruction"]`, 10),
}
