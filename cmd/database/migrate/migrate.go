package migration

import (
	"AI-Recipe-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeCategory{}); err != nil {
		log.Fatalf("Error migrating recipe category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeHitStat{}); err != nil {
		log.Fatalf("Error migrating hit stat database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DailyRecommendation{}); err != nil {
		log.Fatalf("Error migrating daily recommendation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Generation{}); err != nil {
		log.Fatalf("Error migrating generation database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
