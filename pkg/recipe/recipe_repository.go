package recipe

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		UpsertRecipe(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error)
		UpdateRecipeImage(ctx context.Context, slug, imageKey, imageURL string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error)
		DeleteRecipeByID(ctx context.Context, id string) (string, error)
		ListRecipes(ctx context.Context, page, limit int, q string) ([]*entities.Recipe, int64, error)
		ListRankedRecipes(ctx context.Context, sort string, page, limit int, q string) ([]RankedRecipe, int64, error)
		ListRecipesByCategorySlug(ctx context.Context, slug string, page, limit int, q string) ([]*entities.Recipe, int64, error)
		GetDailyByDate(ctx context.Context, date time.Time) (*entities.Recipe, error)

		IncrementHit(ctx context.Context, recipeID uuid.UUID) error
		RecordAiHit(ctx context.Context, recipeName string) error
		PruneHitStats(ctx context.Context, olderThanDays int) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// UpsertRecipe inserts a recipe or, when the recipe_name is already taken,
// updates the existing row in place. The returned row is re-read so callers
// always see the authoritative id and slug of the surviving row.
func (r *recipeRepository) UpsertRecipe(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "recipe_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"description", "prep_time", "cook_time", "ingredients",
			"instructions", "image_key", "image_url", "source", "updated_at",
		}),
	}).Create(recipe).Error; err != nil {
		return nil, err
	}

	var saved entities.Recipe
	if err := r.db.WithContext(ctx).Where("recipe_name = ?", recipe.RecipeName).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *recipeRepository) UpdateRecipeImage(ctx context.Context, slug, imageKey, imageURL string) error {
	res := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("slug = ?", slug).
		Updates(map[string]interface{}{"image_key": imageKey, "image_url": imageURL})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("recipe_name = ?", name).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipeByID removes the row and hands back its image_key so the caller
// can clean up object storage.
func (r *recipeRepository) DeleteRecipeByID(ctx context.Context, id string) (string, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error; err != nil {
		return "", err
	}
	return recipe.ImageKey, nil
}

func (r *recipeRepository) ListRecipes(ctx context.Context, page, limit int, q string) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx)
	if q != "" {
		pattern := "%" + q + "%"
		query = query.Where("recipe_name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// ListRankedRecipes runs one of the four ranking views. The text filter alone
// decides set membership and the total; the time window only shapes the score.
func (r *recipeRepository) ListRankedRecipes(ctx context.Context, sort string, page, limit int, q string) ([]RankedRecipe, int64, error) {
	variant, ok := resolveRankVariant(sort)
	if !ok {
		return nil, 0, domain.ErrInvalidSort
	}

	var count int64
	offset := (page - 1) * limit

	filter := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if q != "" {
		pattern := "%" + q + "%"
		filter = filter.Where("recipes.recipe_name ILIKE ? OR recipes.description ILIKE ?", pattern, pattern)
	}

	if err := filter.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	joinSQL, joinArgs := variant.joinSQL()
	scoreSQL, scoreArgs := variant.scoreSQL()

	var items []RankedRecipe
	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Select(rankedColumns+", "+scoreSQL+" AS score", scoreArgs...).
		Joins(joinSQL, joinArgs...)
	if q != "" {
		pattern := "%" + q + "%"
		query = query.Where("recipes.recipe_name ILIKE ? OR recipes.description ILIKE ?", pattern, pattern)
	}
	if err := query.
		Group("recipes.id").
		Order("score DESC, recipes.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *recipeRepository) ListRecipesByCategorySlug(ctx context.Context, slug string, page, limit int, q string) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Joins("JOIN recipe_categories rc ON rc.recipe_id = recipes.id").
		Joins("JOIN categories c ON c.id = rc.category_id").
		Where("c.slug = ?", slug)
	if q != "" {
		pattern := "%" + q + "%"
		query = query.Where("recipes.recipe_name ILIKE ? OR recipes.description ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetDailyByDate(ctx context.Context, date time.Time) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN daily_recommendations d ON d.recipe_id = recipes.id").
		Where("d.recommend_date = ?", date).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDailyNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// IncrementHit bumps the lifetime counter and today's bucket in one
// transaction so the two counters cannot diverge on partial failure.
func (r *recipeRepository) IncrementHit(ctx context.Context, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipeID).
			UpdateColumns(map[string]interface{}{
				"hit_count":        gorm.Expr("hit_count + 1"),
				"last_accessed_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}

		stat := entities.RecipeHitStat{
			ID:       uuid.New(),
			RecipeID: recipeID,
			HitDate:  Today(),
			HitCount: 1,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "recipe_id"}, {Name: "hit_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"hit_count": gorm.Expr("recipe_hit_stats.hit_count + 1"),
			}),
		}).Create(&stat).Error
	})
}

// RecordAiHit accumulates popularity for a recipe that only exists on the AI
// side, keyed by a synthetic id derived from the recipe name.
func (r *recipeRepository) RecordAiHit(ctx context.Context, recipeName string) error {
	stat := entities.RecipeHitStat{
		ID:            uuid.New(),
		RecipeID:      AiRecipeID(recipeName),
		HitDate:       Today(),
		HitCount:      1,
		RecipeName:    recipeName,
		IsAiGenerated: true,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "recipe_id"}, {Name: "hit_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"hit_count": gorm.Expr("recipe_hit_stats.hit_count + 1"),
		}),
	}).Create(&stat).Error
}

// PruneHitStats drops buckets older than the longest ranking window.
func (r *recipeRepository) PruneHitStats(ctx context.Context, olderThanDays int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("hit_date < CURRENT_DATE - ?", olderThanDays).
		Delete(&entities.RecipeHitStat{})
	return res.RowsAffected, res.Error
}

// Today returns the current calendar day as a date-typed value.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
