package models

// RecipeRequest is the payload for POST /api/v1/recipe.
type RecipeRequest struct {
	// URL is the recipe page to extract from. Required.
	URL string `json:"url" binding:"required,url"`
}

// RecipeResponse is the response for POST /api/v1/recipe.
type RecipeResponse struct {
	// Success indicates whether extraction produced a complete recipe.
	Success bool `json:"success"`

	// Recipe is populated only when Success is true.
	Recipe *Recipe `json:"recipe,omitempty"`

	// Metadata contains page-level metadata extracted from the fetched
	// document. Best-effort; may be zero-valued when the primary layer
	// answered and no page fetch happened.
	Metadata Metadata `json:"metadata"`

	// Timing provides duration breakdowns for the operation.
	Timing TimingInfo `json:"timing"`

	// Error is populated only when Success is false.
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is the structured error in API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata holds page-level information extracted during the fallback fetch.
type Metadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
	Author      string `json:"author,omitempty"`
	SourceURL   string `json:"source_url"`
}

// TimingInfo breaks down the time spent in each phase.
type TimingInfo struct {
	// TotalMs is the end-to-end duration in milliseconds.
	TotalMs int64 `json:"total_ms"`

	// PrimaryMs is the time spent in the primary library attempt.
	PrimaryMs int64 `json:"primary_ms"`

	// FallbackMs is the time spent fetching and running the selector
	// cascade. Zero when the primary attempt was complete.
	FallbackMs int64 `json:"fallback_ms"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"` // "healthy"
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
