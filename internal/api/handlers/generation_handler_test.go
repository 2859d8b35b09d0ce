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

type stubGenerationService struct {
	lastType   string
	optionsErr error
	detailsRes domain.GenerateDetailsResponse
	detailsErr error
}

func (s *stubGenerationService) GenerateOptions(_ context.Context, _ domain.GeneratePayload) (domain.RecipeOptions, error) {
	s.lastType = domain.GenerateOptions
	return domain.RecipeOptions{Recipes: []string{"a", "b", "c"}}, s.optionsErr
}

func (s *stubGenerationService) GenerateDetails(_ context.Context, _ domain.GeneratePayload) (domain.GenerateDetailsResponse, error) {
	s.lastType = domain.GenerateDetails
	return s.detailsRes, s.detailsErr
}

func (s *stubGenerationService) GenerateRotd(_ context.Context) (domain.Recipe, error) {
	s.lastType = domain.GenerateRotd
	return domain.Recipe{}, nil
}

func (s *stubGenerationService) GenerateImage(_ context.Context, _ domain.GeneratePayload) (domain.Recipe, error) {
	s.lastType = domain.GenerateImage
	return domain.Recipe{}, nil
}

func newGenerationTestApp(stub *stubGenerationService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	handler := NewGenerationHandler(stub, utils.Validate)
	app.Post("/api/generate", handler.Generate)
	return app
}

func postGenerate(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestGenerateDispatch(t *testing.T) {
	stub := &stubGenerationService{}
	app := newGenerationTestApp(stub)

	status := postGenerate(t, app, `{"type":"generateOptions","payload":{"ingredients":"土豆"}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.GenerateOptions, stub.lastType)

	status = postGenerate(t, app, `{"type":"generateDetails","payload":{"recipeName":"红烧肉"}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.GenerateDetails, stub.lastType)

	status = postGenerate(t, app, `{"type":"generateRotd"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.GenerateRotd, stub.lastType)

	status = postGenerate(t, app, `{"type":"generateImage","payload":{"slug":"hongshaorou-abc"}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.GenerateImage, stub.lastType)
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	stub := &stubGenerationService{}
	app := newGenerationTestApp(stub)

	status := postGenerate(t, app, `{"type":"generateVideo"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, stub.lastType)

	status = postGenerate(t, app, `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing name", domain.ErrNoRecipeName, fiber.StatusBadRequest},
		{"model failure", domain.ErrGeminiAPIFailed, fiber.StatusBadGateway},
		{"unknown recipe", domain.ErrRecipeNotFound, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubGenerationService{detailsErr: tt.err}
			app := newGenerationTestApp(stub)

			status := postGenerate(t, app, `{"type":"generateDetails","payload":{}}`)
			assert.Equal(t, tt.status, status)
		})
	}
}
