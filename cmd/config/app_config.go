package config

import (
	"AI-Recipe-Backend/internal/api/handlers"
	"AI-Recipe-Backend/internal/api/routes"
	"AI-Recipe-Backend/internal/middleware"
	"AI-Recipe-Backend/internal/utils"
	"AI-Recipe-Backend/internal/utils/storage"
	"AI-Recipe-Backend/pkg/category"
	"AI-Recipe-Backend/pkg/generation"
	"AI-Recipe-Backend/pkg/jwt"
	"AI-Recipe-Backend/pkg/recipe"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Shanghai",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	gemini := generation.NewGeminiClient()

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	generationRepository := generation.NewGenerationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	categoryService := category.NewCategoryService(categoryRepository, recipeRepository)
	generationService := generation.NewGenerationService(
		gemini,
		generationRepository,
		recipeRepository,
		categoryService,
		s3,
	)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	generationHandler := handlers.NewGenerationHandler(generationService, validator)
	adminHandler := handlers.NewAdminHandler(jwtService, validator)
	feedHandler := handlers.NewFeedHandler(recipeService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		GenerationHandler: generationHandler,
		AdminHandler:      adminHandler,
		FeedHandler:       feedHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
