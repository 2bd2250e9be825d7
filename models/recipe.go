package models

// Recipe is the extracted recipe. All three fields must be non-empty for a
// Recipe to count as complete; an incomplete Recipe is never returned to
// callers.
type Recipe struct {
	// Title is the recipe name.
	Title string `json:"title"`

	// Ingredients is the ordered ingredient list, one entry per ingredient.
	Ingredients []string `json:"ingredients"`

	// Instructions is the ordered list of instruction steps.
	Instructions []string `json:"instructions"`
}

// Complete reports whether all three fields carry data.
func (r *Recipe) Complete() bool {
	if r == nil {
		return false
	}
	return r.Title != "" && len(r.Ingredients) > 0 && len(r.Instructions) > 0
}

// MissingFields lists the names of empty fields, in a fixed order.
// Used to build EXTRACTION_INCOMPLETE error messages.
func (r *Recipe) MissingFields() []string {
	var missing []string
	if r == nil {
		return []string{"title", "ingredients", "instructions"}
	}
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if len(r.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(r.Instructions) == 0 {
		missing = append(missing, "instructions")
	}
	return missing
}

// ErrorResult is the failure payload written to callers. Mutually exclusive
// with Recipe: a response carries one or the other, never both.
type ErrorResult struct {
	Error string `json:"error"`
}
