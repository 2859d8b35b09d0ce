package category

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/entities"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryWithCount is the typed projection for category listings; the recipe
// count is derived per query, never stored.
type CategoryWithCount struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	RecipeCount int64     `json:"recipe_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type (
	CategoryRepository interface {
		UpsertCategory(ctx context.Context, name string) (*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error)
		ListCategories(ctx context.Context, page, limit int, q string) ([]CategoryWithCount, int64, error)
		ListCategoriesByRecipeID(ctx context.Context, recipeID string) ([]entities.Category, error)
		RenameCategory(ctx context.Context, id, newName string) (*entities.Category, error)
		DeleteCategory(ctx context.Context, id string) error
		LinkRecipeToCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// UpsertCategory inserts the category or leaves an existing one untouched;
// the slug is kept identical to the name.
func (r *categoryRepository) UpsertCategory(ctx context.Context, name string) (*entities.Category, error) {
	category := entities.Category{
		ID:   uuid.New(),
		Name: name,
		Slug: name,
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&category).Error; err != nil {
		return nil, err
	}

	var saved entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, page, limit int, q string) ([]CategoryWithCount, int64, error) {
	var count int64
	offset := (page - 1) * limit

	filter := r.db.WithContext(ctx).Model(&entities.Category{})
	if q != "" {
		filter = filter.Where("categories.name ILIKE ?", "%"+q+"%")
	}
	if err := filter.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var items []CategoryWithCount
	query := r.db.WithContext(ctx).Model(&entities.Category{}).
		Select("categories.id, categories.name, categories.slug, categories.created_at, COUNT(rc.recipe_id) AS recipe_count").
		Joins("LEFT JOIN recipe_categories rc ON rc.category_id = categories.id")
	if q != "" {
		query = query.Where("categories.name ILIKE ?", "%"+q+"%")
	}
	if err := query.
		Group("categories.id").
		Order("categories.name asc").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *categoryRepository) ListCategoriesByRecipeID(ctx context.Context, recipeID string) ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_categories rc ON rc.category_id = categories.id").
		Where("rc.recipe_id = ?", recipeID).
		Order("categories.name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// RenameCategory updates name and slug together; a unique violation on the
// new name is reported as a conflict.
func (r *categoryRepository) RenameCategory(ctx context.Context, id, newName string) (*entities.Category, error) {
	res := r.db.WithContext(ctx).Model(&entities.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": newName, "slug": newName})
	if res.Error != nil {
		if strings.Contains(res.Error.Error(), "duplicate key value violates unique constraint") {
			return nil, domain.ErrCategoryConflict
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return r.GetCategoryByID(ctx, id)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entities.RecipeCategory{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Category{}).Error
	})
}

// LinkRecipeToCategory is idempotent: linking an already linked pair is a no-op.
func (r *categoryRepository) LinkRecipeToCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error {
	link := entities.RecipeCategory{
		ID:         uuid.New(),
		RecipeID:   recipeID,
		CategoryID: categoryID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "category_id"}},
		DoNothing: true,
	}).Create(&link).Error
}
