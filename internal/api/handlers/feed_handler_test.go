package handlers

import (
	"AI-Recipe-Backend/domain"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedTestApp(stub *stubRecipeService) *fiber.App {
	app := fiber.New()
	handler := NewFeedHandler(stub)
	app.Get("/rss.xml", handler.RSS)
	app.Get("/sitemap.xml", handler.Sitemap)
	app.Get("/robots.txt", handler.Robots)
	return app
}

func feedFixtures() []domain.Recipe {
	return []domain.Recipe{
		{
			Slug:        "hongshaorou-abc",
			RecipeName:  "红烧肉",
			Description: "经典家常菜",
			CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestRSSFeed(t *testing.T) {
	t.Setenv("APP_URL", "https://recipes.example.com")
	app := newFeedTestApp(&stubRecipeService{recent: feedFixtures()})

	resp, err := app.Test(httptest.NewRequest("GET", "/rss.xml", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/rss+xml")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<rss")
	assert.Contains(t, string(body), "红烧肉")
	assert.Contains(t, string(body), "https://recipes.example.com/recipe/hongshaorou-abc")
}

func TestSitemap(t *testing.T) {
	t.Setenv("APP_URL", "https://recipes.example.com")
	app := newFeedTestApp(&stubRecipeService{recent: feedFixtures()})

	resp, err := app.Test(httptest.NewRequest("GET", "/sitemap.xml", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<urlset")
	assert.Contains(t, string(body), "<loc>https://recipes.example.com</loc>")
	assert.Contains(t, string(body), "https://recipes.example.com/recipe/hongshaorou-abc")
	assert.Contains(t, string(body), "2026-08-01")
}

func TestRobots(t *testing.T) {
	t.Setenv("APP_URL", "https://recipes.example.com")
	app := newFeedTestApp(&stubRecipeService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/robots.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "User-agent: *")
	assert.Contains(t, string(body), "Sitemap: https://recipes.example.com/sitemap.xml")
}
