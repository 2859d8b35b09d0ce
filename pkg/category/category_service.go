package category

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/entities"
	"AI-Recipe-Backend/pkg/recipe"
	"context"
	"strings"
)

// DefaultCategories is the seed list used when a seed request carries no
// explicit names.
var DefaultCategories = []string{
	"家常菜", "快手菜", "下饭菜", "素菜", "清真",
	"汤羹", "凉菜", "热菜", "主食", "甜品",
	"早餐", "午餐", "晚餐",
	"低脂", "高蛋白", "儿童", "老人", "孕妇", "减脂", "增肌",
	"川菜", "粤菜", "湘菜", "鲁菜", "浙菜", "苏菜", "闽菜", "徽菜",
}

type (
	CategoryService interface {
		ListCategories(ctx context.Context, page, limit int, q string) (domain.ListCategoriesResponse, error)
		GetCategoryRecipes(ctx context.Context, slug string, page, limit int, q string) (domain.CategoryRecipesResponse, error)
		RenameCategory(ctx context.Context, id, name string) (domain.Category, error)
		DeleteCategory(ctx context.Context, id string) error
		LinkRecipeCategories(ctx context.Context, recipeID string, names []string) ([]domain.Category, error)
		ListRecipeCategories(ctx context.Context, recipeID string) ([]domain.Category, error)
		SeedCategories(ctx context.Context, names []string) ([]domain.Category, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository, recipeRepository recipe.RecipeRepository) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, page, limit int, q string) (domain.ListCategoriesResponse, error) {
	items, total, err := s.categoryRepository.ListCategories(ctx, page, limit, q)
	if err != nil {
		return domain.ListCategoriesResponse{}, err
	}

	res := domain.ListCategoriesResponse{
		Items: make([]domain.Category, 0, len(items)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for _, c := range items {
		res.Items = append(res.Items, domain.Category{
			ID:          c.ID.String(),
			Name:        c.Name,
			Slug:        c.Slug,
			RecipeCount: c.RecipeCount,
			CreatedAt:   c.CreatedAt,
		})
	}
	return res, nil
}

func (s *categoryService) GetCategoryRecipes(ctx context.Context, slug string, page, limit int, q string) (domain.CategoryRecipesResponse, error) {
	cat, err := s.categoryRepository.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return domain.CategoryRecipesResponse{}, err
	}

	recipes, total, err := s.recipeRepository.ListRecipesByCategorySlug(ctx, slug, page, limit, q)
	if err != nil {
		return domain.CategoryRecipesResponse{}, err
	}

	res := domain.CategoryRecipesResponse{
		Category: toDomainCategory(cat),
		Items:    make([]domain.Recipe, 0, len(recipes)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
	for _, r := range recipes {
		res.Items = append(res.Items, recipe.ToDomainRecipe(r))
	}
	return res, nil
}

func (s *categoryService) RenameCategory(ctx context.Context, id, name string) (domain.Category, error) {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		return domain.Category{}, err
	}
	updated, err := s.categoryRepository.RenameCategory(ctx, id, name)
	if err != nil {
		return domain.Category{}, err
	}
	return toDomainCategory(updated), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		return err
	}
	return s.categoryRepository.DeleteCategory(ctx, id)
}

func (s *categoryService) LinkRecipeCategories(ctx context.Context, recipeID string, names []string) ([]domain.Category, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	linked := make([]domain.Category, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		cat, err := s.categoryRepository.UpsertCategory(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := s.categoryRepository.LinkRecipeToCategory(ctx, rec.ID, cat.ID); err != nil {
			return nil, err
		}
		linked = append(linked, toDomainCategory(cat))
	}
	return linked, nil
}

func (s *categoryService) ListRecipeCategories(ctx context.Context, recipeID string) ([]domain.Category, error) {
	categories, err := s.categoryRepository.ListCategoriesByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.Category, 0, len(categories))
	for i := range categories {
		items = append(items, toDomainCategory(&categories[i]))
	}
	return items, nil
}

func (s *categoryService) SeedCategories(ctx context.Context, names []string) ([]domain.Category, error) {
	cleaned := make([]string, 0, len(names))
	for _, raw := range names {
		if name := strings.TrimSpace(raw); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	if len(cleaned) == 0 {
		cleaned = DefaultCategories
	}

	created := make([]domain.Category, 0, len(cleaned))
	for _, name := range cleaned {
		cat, err := s.categoryRepository.UpsertCategory(ctx, name)
		if err != nil {
			return nil, err
		}
		created = append(created, toDomainCategory(cat))
	}
	return created, nil
}

func toDomainCategory(c *entities.Category) domain.Category {
	return domain.Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
	}
}
