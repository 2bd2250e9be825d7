package extract

import (
	"reflect"
	"testing"
)

func TestStructured_RecipeBlock(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		{"@context":"https://schema.org","@type":"Recipe",
		 "name":"Tomato Soup",
		 "recipeIngredient":["1 cup tomato","2 tbsp oil"],
		 "recipeInstructions":["Heat oil.","Add tomato and simmer."]}
		</script>
	</head><body></body></html>`)

	e := New(nil)

	if got := e.Title(doc); got != "Tomato Soup" {
		t.Errorf("Title = %q, want %q", got, "Tomato Soup")
	}
	if got, want := e.Ingredients(doc), []string{"1 cup tomato", "2 tbsp oil"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Ingredients = %v, want %v", got, want)
	}
	if got, want := e.Instructions(doc), []string{"Heat oil.", "Add tomato and simmer."}; !reflect.DeepEqual(got, want) {
		t.Errorf("Instructions = %v, want %v", got, want)
	}
}

func TestStructured_MalformedBlockSkipped(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">{not valid json</script>
		<script type="application/ld+json">{"@type":"Recipe","recipeIngredient":["2 eggs","1 cup milk"]}</script>
	</head><body></body></html>`)

	got := New(nil).Ingredients(doc)
	want := []string{"2 eggs", "1 cup milk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ingredients = %v, want %v", got, want)
	}
}

func TestStructured_ListWrappedBlock(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		[{"@type":"WebSite","name":"ab"},
		 {"@type":"Recipe","name":"Minestrone","recipeIngredient":["1 onion, diced"]}]
		</script>
	</head><body></body></html>`)

	e := New(nil)
	if got := e.Ingredients(doc); !reflect.DeepEqual(got, []string{"1 onion, diced"}) {
		t.Errorf("Ingredients = %v", got)
	}
}

func TestStructured_GraphWrappedBlock(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		{"@context":"https://schema.org",
		 "@graph":[{"@type":"WebPage","url":"https://example.com"},
		           {"@type":"Recipe","recipeInstructions":["Simmer for twenty minutes."]}]}
		</script>
	</head><body></body></html>`)

	got := New(nil).Instructions(doc)
	want := []string{"Simmer for twenty minutes."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Instructions = %v, want %v", got, want)
	}
}

func TestStructured_HowToStepObjects(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		{"@type":"Recipe",
		 "recipeInstructions":[
		   {"@type":"HowToStep","text":"Whisk the eggs."},
		   "Pour into the pan.",
		   {"@type":"HowToStep","text":"Bake for 25 minutes."}]}
		</script>
	</head><body></body></html>`)

	got := New(nil).Instructions(doc)
	want := []string{"Whisk the eggs.", "Pour into the pan.", "Bake for 25 minutes."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Instructions = %v, want %v", got, want)
	}
}

func TestStructured_FirstNonEmptyValueAcrossBlocks(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">{"@type":"WebSite","url":"https://example.com"}</script>
		<script type="application/ld+json">{"@type":"Recipe","name":"Carrot Cake"}</script>
	</head><body></body></html>`)

	if got := New(nil).Title(doc); got != "Carrot Cake" {
		t.Errorf("Title = %q, want %q", got, "Carrot Cake")
	}
}

func TestStructured_ApplicationJSONBlock(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/json">{"name":"State Blob Recipe"}</script>
	</head><body></body></html>`)

	if got := New(nil).Title(doc); got != "State Blob Recipe" {
		t.Errorf("Title = %q, want %q", got, "State Blob Recipe")
	}
}

func TestStructured_CSSRuleStillWinsOverLaterStructuredRule(t *testing.T) {
	// The wprm title selector precedes the structured-metadata rule in the
	// title catalog, so its value wins even when a valid block is present.
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">{"@type":"Recipe","name":"Metadata Title"}</script>
	</head><body>
		<div class="wprm-recipe-name">Selector Title</div>
	</body></html>`)

	if got := New(nil).Title(doc); got != "Selector Title" {
		t.Errorf("Title = %q, want %q", got, "Selector Title")
	}
}
