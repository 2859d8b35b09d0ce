package routes

import (
	"AI-Recipe-Backend/internal/api/handlers"
	"AI-Recipe-Backend/internal/middleware"
	"AI-Recipe-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	GenerationHandler handlers.GenerationHandler
	AdminHandler      handlers.AdminHandler
	FeedHandler       handlers.FeedHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Categories()
	c.Generation()
	c.Admin()
	c.Feeds()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("/hit", c.RecipeHandler.RecordHit)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Delete("/:id", c.Middleware.AdminMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
		recipes.Get("/:id/categories", c.CategoryHandler.GetRecipeCategories)
		recipes.Post("/:id/categories", c.Middleware.AdminMiddleware(c.JWTService), c.CategoryHandler.LinkRecipeCategories)
	}

	c.App.Get("/api/daily/:date", c.RecipeHandler.GetDailyRecommendation)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Post("/seed", c.Middleware.AdminMiddleware(c.JWTService), c.CategoryHandler.SeedCategories)
		categories.Get("/:slug", c.CategoryHandler.GetCategoryRecipes)
		categories.Put("/:id", c.Middleware.AdminMiddleware(c.JWTService), c.CategoryHandler.RenameCategory)
		categories.Delete("/:id", c.Middleware.AdminMiddleware(c.JWTService), c.CategoryHandler.DeleteCategory)
	}
}

func (c *Config) Generation() {
	c.App.Post("/api/generate", c.GenerationHandler.Generate)
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin")
	{
		admin.Post("/login", c.AdminHandler.Login)
	}
}

func (c *Config) Feeds() {
	c.App.Get("/rss.xml", c.FeedHandler.RSS)
	c.App.Get("/sitemap.xml", c.FeedHandler.Sitemap)
	c.App.Get("/robots.txt", c.FeedHandler.Robots)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
