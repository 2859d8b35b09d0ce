package handlers

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/internal/utils"
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecipeService struct {
	listReq   domain.ListRecipesRequest
	listErr   error
	detailErr error
	deleteErr error
	hitReq    domain.RecordHitRequest
	hitErr    error
	dailyErr  error
	recent    []domain.Recipe
}

func (s *stubRecipeService) ListRecipes(_ context.Context, req domain.ListRecipesRequest) (domain.ListRecipesResponse, error) {
	s.listReq = req
	return domain.ListRecipesResponse{Page: req.Page, Limit: req.Limit}, s.listErr
}

func (s *stubRecipeService) GetRecipeDetail(_ context.Context, _ string) (domain.Recipe, error) {
	return domain.Recipe{}, s.detailErr
}

func (s *stubRecipeService) DeleteRecipe(_ context.Context, _ string) error {
	return s.deleteErr
}

func (s *stubRecipeService) RecordHit(_ context.Context, req domain.RecordHitRequest) error {
	s.hitReq = req
	return s.hitErr
}

func (s *stubRecipeService) GetDailyByDate(_ context.Context, dateStr string) (domain.Recipe, error) {
	if s.dailyErr != nil {
		return domain.Recipe{}, s.dailyErr
	}
	if len(dateStr) != 10 {
		return domain.Recipe{}, domain.ErrInvalidDate
	}
	return domain.Recipe{}, nil
}

func (s *stubRecipeService) ListRecentRecipes(_ context.Context, _ int) ([]domain.Recipe, error) {
	return s.recent, nil
}

func newRecipeTestApp(stub *stubRecipeService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	handler := NewRecipeHandler(stub, utils.Validate)
	app.Get("/api/recipes", handler.GetRecipes)
	app.Get("/api/daily/:date", handler.GetDailyRecommendation)
	app.Get("/api/recipes/:id", handler.GetRecipeDetail)
	app.Post("/api/recipes/hit", handler.RecordHit)
	return app
}

func TestGetRecipesClampsLimit(t *testing.T) {
	stub := &stubRecipeService{}
	app := newRecipeTestApp(stub)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/recipes?limit=999&page=0", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 50, stub.listReq.Limit)
	assert.Equal(t, 1, stub.listReq.Page)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/recipes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, stub.listReq.Limit)
}

func TestGetRecipesRejectsUnknownSort(t *testing.T) {
	stub := &stubRecipeService{}
	app := newRecipeTestApp(stub)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/recipes?sort=trending", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/recipes?sort=weighted", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "weighted", stub.listReq.Sort)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	stub := &stubRecipeService{detailErr: domain.ErrRecipeNotFound}
	app := newRecipeTestApp(stub)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/recipes/2b1e2a52-0000-0000-0000-000000000000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRecordHitStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, fiber.StatusOK},
		{"empty target", domain.ErrHitTargetEmpty, fiber.StatusBadRequest},
		{"bad uuid", domain.ErrParseUUID, fiber.StatusBadRequest},
		{"unknown recipe", domain.ErrRecipeNotFound, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubRecipeService{hitErr: tt.err}
			app := newRecipeTestApp(stub)

			body := bytes.NewBufferString(`{"slug":"hongshaorou-abc"}`)
			req := httptest.NewRequest("POST", "/api/recipes/hit", body)
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRecordHitParsesCamelCaseBody(t *testing.T) {
	stub := &stubRecipeService{}
	app := newRecipeTestApp(stub)

	body := bytes.NewBufferString(`{"recipeName":"红烧肉","isAiGenerated":true}`)
	req := httptest.NewRequest("POST", "/api/recipes/hit", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "红烧肉", stub.hitReq.RecipeName)
	assert.True(t, stub.hitReq.IsAiGenerated)
}

func TestGetDailyRecommendationStatuses(t *testing.T) {
	stub := &stubRecipeService{}
	app := newRecipeTestApp(stub)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/daily/2026-01-15", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/daily/junk", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	stub.dailyErr = domain.ErrDailyNotFound
	resp, err = app.Test(httptest.NewRequest("GET", "/api/daily/2026-01-15", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
