package recipe

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/entities"
	"AI-Recipe-Backend/internal/utils/storage"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, req domain.ListRecipesRequest) (domain.ListRecipesResponse, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		RecordHit(ctx context.Context, req domain.RecordHitRequest) error
		GetDailyByDate(ctx context.Context, dateStr string) (domain.Recipe, error)
		ListRecentRecipes(ctx context.Context, limit int) ([]domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context, req domain.ListRecipesRequest) (domain.ListRecipesResponse, error) {
	res := domain.ListRecipesResponse{
		Page:  req.Page,
		Limit: req.Limit,
		Q:     req.Q,
		Sort:  req.Sort,
	}

	if req.Sort == "" {
		recipes, total, err := s.recipeRepository.ListRecipes(ctx, req.Page, req.Limit, req.Q)
		if err != nil {
			return domain.ListRecipesResponse{}, err
		}
		res.Items = make([]domain.Recipe, 0, len(recipes))
		for _, r := range recipes {
			res.Items = append(res.Items, ToDomainRecipe(r))
		}
		res.Total = total
		return res, nil
	}

	ranked, total, err := s.recipeRepository.ListRankedRecipes(ctx, req.Sort, req.Page, req.Limit, req.Q)
	if err != nil {
		return domain.ListRecipesResponse{}, err
	}
	res.Items = make([]domain.Recipe, 0, len(ranked))
	for _, r := range ranked {
		res.Items = append(res.Items, domain.Recipe{
			ID:          r.ID.String(),
			Slug:        r.Slug,
			RecipeName:  r.RecipeName,
			Description: r.Description,
			ImageURL:    r.ImageURL,
			Source:      r.Source,
			HitCount:    r.HitCount,
			Score:       r.Score,
			CreatedAt:   r.CreatedAt,
		})
	}
	res.Total = total
	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.Recipe, error) {
	if _, err := ParseRecipeID(id); err != nil {
		return domain.Recipe{}, err
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return ToDomainRecipe(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := ParseRecipeID(id); err != nil {
		return err
	}
	imageKey, err := s.recipeRepository.DeleteRecipeByID(ctx, id)
	if err != nil {
		return err
	}
	// Orphaned images are tolerable; a failed delete never undoes the row removal.
	if imageKey != "" {
		if err := s.s3.DeleteObject(ctx, imageKey); err != nil {
			log.Errorf("failed to delete image %s from storage: %v", imageKey, err)
		}
	}
	return nil
}

// RecordHit is an analytics side-channel: once the target is resolved, a
// failed counter write is logged and swallowed so the caller's response
// still succeeds.
func (s *recipeService) RecordHit(ctx context.Context, req domain.RecordHitRequest) error {
	if req.RecipeID == "" && req.Slug == "" && req.RecipeName == "" {
		return domain.ErrHitTargetEmpty
	}

	if req.IsAiGenerated && req.RecipeName != "" {
		if err := s.recipeRepository.RecordAiHit(ctx, req.RecipeName); err != nil {
			log.Errorf("failed to record AI recipe hit for %q: %v", req.RecipeName, err)
		}
		return nil
	}

	recipeID := req.RecipeID
	if recipeID == "" && req.Slug != "" {
		recipe, err := s.recipeRepository.GetRecipeBySlug(ctx, req.Slug)
		if err != nil {
			return err
		}
		recipeID = recipe.ID.String()
	}
	if recipeID == "" {
		return domain.ErrHitTargetEmpty
	}

	id, err := ParseRecipeID(recipeID)
	if err != nil {
		return err
	}
	if err := s.recipeRepository.IncrementHit(ctx, id); err != nil {
		log.Errorf("failed to increment hit for recipe %s: %v", recipeID, err)
	}
	return nil
}

func (s *recipeService) GetDailyByDate(ctx context.Context, dateStr string) (domain.Recipe, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return domain.Recipe{}, domain.ErrInvalidDate
	}
	recipe, err := s.recipeRepository.GetDailyByDate(ctx, date)
	if err != nil {
		return domain.Recipe{}, err
	}
	return ToDomainRecipe(recipe), nil
}

func (s *recipeService) ListRecentRecipes(ctx context.Context, limit int) ([]domain.Recipe, error) {
	recipes, _, err := s.recipeRepository.ListRecipes(ctx, 1, limit, "")
	if err != nil {
		return nil, err
	}
	items := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, ToDomainRecipe(r))
	}
	return items, nil
}

func ToDomainRecipe(r *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:           r.ID.String(),
		Slug:         r.Slug,
		RecipeName:   r.RecipeName,
		Description:  r.Description,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		Source:       r.Source,
		HitCount:     r.HitCount,
		CreatedAt:    r.CreatedAt,
	}
}
