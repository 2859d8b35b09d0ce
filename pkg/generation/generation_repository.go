package generation

import (
	"AI-Recipe-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	GenerationRepository interface {
		LogGeneration(ctx context.Context, ingredientsText string, recipeID uuid.UUID) error
		SetDailyRecommendation(ctx context.Context, date time.Time, recipeID uuid.UUID) error
	}

	generationRepository struct {
		db *gorm.DB
	}
)

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) LogGeneration(ctx context.Context, ingredientsText string, recipeID uuid.UUID) error {
	record := entities.Generation{
		ID:               uuid.New(),
		IngredientsText:  ingredientsText,
		SelectedRecipeID: recipeID,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *generationRepository) SetDailyRecommendation(ctx context.Context, date time.Time, recipeID uuid.UUID) error {
	record := entities.DailyRecommendation{
		ID:            uuid.New(),
		RecommendDate: date,
		RecipeID:      recipeID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recommend_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_id"}),
	}).Create(&record).Error
}
