package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/ladle/extract"
	"github.com/use-agent/ladle/models"
	"github.com/use-agent/ladle/pipeline"
)

// Runner is the pipeline capability the handlers depend on.
// Satisfied by *pipeline.Pipeline; faked in tests.
type Runner interface {
	RunDetailed(ctx context.Context, url string) (*pipeline.Result, error)
}

// Recipe returns a handler for POST /api/v1/recipe.
//
// Orchestration flow:
//  1. Parse & validate request.
//  2. Pipeline.RunDetailed → recipe (primary or fallback path).
//  3. On the fallback path, derive page metadata from the fetched HTML.
//  4. Fill Timing, return 200 — or map the typed error to a status code.
func Recipe(p Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		var req models.RecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.RecipeResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		primaryStart := time.Now()
		res, err := p.RunDetailed(c.Request.Context(), req.URL)
		if err != nil {
			respondError(c, err, models.TimingInfo{
				TotalMs: time.Since(totalStart).Milliseconds(),
			})
			return
		}

		resp := models.RecipeResponse{
			Success:  true,
			Recipe:   res.Recipe,
			Metadata: models.Metadata{SourceURL: req.URL},
		}

		if res.UsedFallback {
			resp.Metadata = extract.PageMetadata(res.RawHTML, req.URL)
			resp.Timing.FallbackMs = time.Since(primaryStart).Milliseconds()
		} else {
			resp.Timing.PrimaryMs = time.Since(primaryStart).Milliseconds()
		}
		resp.Timing.TotalMs = time.Since(totalStart).Milliseconds()

		c.JSON(http.StatusOK, resp)
	}
}

// respondError maps an ExtractError to the correct HTTP status code and
// writes a structured JSON error response.
func respondError(c *gin.Context, err error, timing models.TimingInfo) {
	extractErr, ok := err.(*models.ExtractError)
	if !ok {
		extractErr = models.NewExtractError(models.ErrCodeInternal, err.Error(), nil)
	}

	status := http.StatusInternalServerError
	switch extractErr.Code {
	case models.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case models.ErrCodeFetchFailed:
		status = http.StatusBadGateway
	case models.ErrCodeIncomplete:
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, models.RecipeResponse{
		Success: false,
		Timing:  timing,
		Error: &models.ErrorDetail{
			Code:    extractErr.Code,
			Message: models.ErrorMessage(extractErr),
		},
	})
}
