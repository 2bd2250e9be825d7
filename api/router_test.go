package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/use-agent/ladle/config"
	"github.com/use-agent/ladle/models"
	"github.com/use-agent/ladle/pipeline"
)

type fakeRunner struct {
	res *pipeline.Result
	err error
}

func (f *fakeRunner) RunDetailed(ctx context.Context, url string) (*pipeline.Result, error) {
	return f.res, f.err
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Mode = "test"
	return cfg
}

func doRequest(t *testing.T, runner *fakeRunner, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(runner, testConfig(), time.Now())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecipeEndpoint_Success(t *testing.T) {
	runner := &fakeRunner{res: &pipeline.Result{
		Recipe: &models.Recipe{
			Title:        "Tomato Soup",
			Ingredients:  []string{"1 cup tomato"},
			Instructions: []string{"Simmer until done."},
		},
		RawHTML:      `<html><body><h1>Tomato Soup</h1></body></html>`,
		UsedFallback: true,
	}}

	w := doRequest(t, runner, `{"url":"https://example.com/soup"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var resp models.RecipeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Recipe == nil || resp.Recipe.Title != "Tomato Soup" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Error != nil {
		t.Errorf("success response must not carry an error: %+v", resp.Error)
	}
}

func TestRecipeEndpoint_MissingURL(t *testing.T) {
	w := doRequest(t, &fakeRunner{}, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRecipeEndpoint_IncompleteExtraction(t *testing.T) {
	runner := &fakeRunner{err: models.NewExtractError(models.ErrCodeIncomplete,
		"failed to extract recipe from https://example.com/cake: missing ingredients, instructions", nil)}

	w := doRequest(t, runner, `{"url":"https://example.com/cake"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var resp models.RecipeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Recipe != nil {
		t.Errorf("error response must not carry a recipe: %+v", resp)
	}
	if resp.Error == nil || resp.Error.Code != models.ErrCodeIncomplete {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestRecipeEndpoint_FetchFailure(t *testing.T) {
	runner := &fakeRunner{err: models.NewExtractError(models.ErrCodeFetchFailed,
		"failed to fetch https://example.com/gone", nil)}

	w := doRequest(t, runner, `{"url":"https://example.com/gone"}`)
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(&fakeRunner{}, testConfig(), time.Now())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
}
