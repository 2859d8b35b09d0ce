package main

import (
	"AI-Recipe-Backend/cmd/config"
	migration "AI-Recipe-Backend/cmd/database/migrate"
	"AI-Recipe-Backend/internal/utils"
	"AI-Recipe-Backend/pkg/recipe"
	"context"

	"github.com/gofiber/fiber/v2/log"
)

// hitStatRetentionDays matches the longest ranking window, older buckets can
// never influence a score.
const hitStatRetentionDays = 180

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	recipeRepository := recipe.NewRecipeRepository(db)
	if pruned, err := recipeRepository.PruneHitStats(context.Background(), hitStatRetentionDays); err != nil {
		log.Errorf("failed to prune hit stats: %v", err)
	} else if pruned > 0 {
		log.Infof("pruned %d stale hit stat rows", pruned)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
