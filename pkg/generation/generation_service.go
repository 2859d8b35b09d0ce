package generation

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/entities"
	"AI-Recipe-Backend/internal/utils"
	"AI-Recipe-Backend/internal/utils/storage"
	"AI-Recipe-Backend/pkg/category"
	"AI-Recipe-Backend/pkg/recipe"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	GenerationService interface {
		GenerateOptions(ctx context.Context, payload domain.GeneratePayload) (domain.RecipeOptions, error)
		GenerateDetails(ctx context.Context, payload domain.GeneratePayload) (domain.GenerateDetailsResponse, error)
		GenerateRotd(ctx context.Context) (domain.Recipe, error)
		GenerateImage(ctx context.Context, payload domain.GeneratePayload) (domain.Recipe, error)
	}

	generationService struct {
		gemini               GeminiClient
		generationRepository GenerationRepository
		recipeRepository     recipe.RecipeRepository
		categoryService      category.CategoryService
		s3                   storage.AwsS3
	}
)

func NewGenerationService(
	gemini GeminiClient,
	generationRepository GenerationRepository,
	recipeRepository recipe.RecipeRepository,
	categoryService category.CategoryService,
	s3 storage.AwsS3,
) GenerationService {
	return &generationService{
		gemini:               gemini,
		generationRepository: generationRepository,
		recipeRepository:     recipeRepository,
		categoryService:      categoryService,
		s3:                   s3,
	}
}

func (s *generationService) GenerateOptions(ctx context.Context, payload domain.GeneratePayload) (domain.RecipeOptions, error) {
	ingredients := strings.TrimSpace(payload.Ingredients)
	if ingredients == "" {
		return domain.RecipeOptions{}, domain.ErrNoIngredients
	}
	return s.gemini.GenerateOptions(ctx, ingredients)
}

// GenerateDetails returns the stored recipe when the name is already known,
// bumping its hit counter instead of calling the model again. On a miss it
// generates the full recipe, persists the text fields first, then enriches
// the row with categories and an image on a best-effort basis.
func (s *generationService) GenerateDetails(ctx context.Context, payload domain.GeneratePayload) (domain.GenerateDetailsResponse, error) {
	name := strings.TrimSpace(payload.RecipeName)
	if name == "" {
		return domain.GenerateDetailsResponse{}, domain.ErrNoRecipeName
	}

	cached, err := s.recipeRepository.GetRecipeByName(ctx, name)
	if err == nil {
		if hitErr := s.recipeRepository.IncrementHit(ctx, cached.ID); hitErr != nil {
			log.Errorf("failed to record hit for cached recipe %s: %v", cached.Slug, hitErr)
		}
		return domain.GenerateDetailsResponse{Recipe: recipe.ToDomainRecipe(cached), Cached: true}, nil
	}
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		return domain.GenerateDetailsResponse{}, err
	}

	generated, err := s.gemini.GenerateRecipe(ctx, name, payload.Ingredients)
	if err != nil {
		return domain.GenerateDetailsResponse{}, err
	}

	saved, err := s.persistGenerated(ctx, generated, domain.SourceUser)
	if err != nil {
		return domain.GenerateDetailsResponse{}, err
	}

	if logErr := s.generationRepository.LogGeneration(ctx, payload.Ingredients, saved.ID); logErr != nil {
		log.Errorf("failed to log generation for %s: %v", saved.Slug, logErr)
	}

	s.classifyAndLink(ctx, saved)
	saved = s.attachImage(ctx, saved)

	return domain.GenerateDetailsResponse{Recipe: recipe.ToDomainRecipe(saved)}, nil
}

// GenerateRotd creates the recipe of the day and pins it to today's date.
func (s *generationService) GenerateRotd(ctx context.Context) (domain.Recipe, error) {
	generated, err := s.gemini.GenerateRotd(ctx)
	if err != nil {
		return domain.Recipe{}, err
	}

	saved, err := s.persistGenerated(ctx, generated, domain.SourceDaily)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := s.generationRepository.SetDailyRecommendation(ctx, recipe.Today(), saved.ID); err != nil {
		return domain.Recipe{}, err
	}

	s.classifyAndLink(ctx, saved)
	saved = s.attachImage(ctx, saved)

	return recipe.ToDomainRecipe(saved), nil
}

// GenerateImage regenerates the image for an existing recipe, looked up by
// slug when present, otherwise by name.
func (s *generationService) GenerateImage(ctx context.Context, payload domain.GeneratePayload) (domain.Recipe, error) {
	var rec *entities.Recipe
	var err error
	switch {
	case strings.TrimSpace(payload.Slug) != "":
		rec, err = s.recipeRepository.GetRecipeBySlug(ctx, strings.TrimSpace(payload.Slug))
	case strings.TrimSpace(payload.RecipeName) != "":
		rec, err = s.recipeRepository.GetRecipeByName(ctx, strings.TrimSpace(payload.RecipeName))
	default:
		return domain.Recipe{}, domain.ErrNoRecipeName
	}
	if err != nil {
		return domain.Recipe{}, err
	}

	data, err := s.gemini.GenerateImage(ctx, rec.RecipeName)
	if err != nil {
		return domain.Recipe{}, err
	}

	updated, err := s.uploadImage(ctx, rec, data)
	if err != nil {
		return domain.Recipe{}, err
	}
	return recipe.ToDomainRecipe(updated), nil
}

// persistGenerated writes the text fields of a freshly generated recipe.
// Names collide on purpose: regenerating a known dish refreshes the row.
func (s *generationService) persistGenerated(ctx context.Context, generated domain.GeneratedRecipe, source string) (*entities.Recipe, error) {
	row := &entities.Recipe{
		ID:           uuid.New(),
		Slug:         utils.ToSlug(generated.RecipeName),
		RecipeName:   generated.RecipeName,
		Description:  generated.Description,
		PrepTime:     generated.PrepTime,
		CookTime:     generated.CookTime,
		Ingredients:  entities.StringList(generated.Ingredients),
		Instructions: entities.StringList(generated.Instructions),
		Source:       source,
	}
	return s.recipeRepository.UpsertRecipe(ctx, row)
}

func (s *generationService) classifyAndLink(ctx context.Context, rec *entities.Recipe) {
	names, err := s.gemini.ClassifyCategories(ctx, rec.RecipeName, rec.Description, category.DefaultCategories)
	if err != nil {
		log.Errorf("failed to classify categories for %s: %v", rec.Slug, err)
		return
	}
	if len(names) == 0 {
		return
	}
	if _, err := s.categoryService.LinkRecipeCategories(ctx, rec.ID.String(), names); err != nil {
		log.Errorf("failed to link categories for %s: %v", rec.Slug, err)
	}
}

// attachImage tries to generate and store an image for the recipe. Failures
// leave the text-only row intact and are only logged.
func (s *generationService) attachImage(ctx context.Context, rec *entities.Recipe) *entities.Recipe {
	data, err := s.gemini.GenerateImage(ctx, rec.RecipeName)
	if err != nil {
		log.Errorf("failed to generate image for %s: %v", rec.Slug, err)
		return rec
	}

	updated, err := s.uploadImage(ctx, rec, data)
	if err != nil {
		log.Errorf("failed to store image for %s: %v", rec.Slug, err)
		return rec
	}
	return updated
}

func (s *generationService) uploadImage(ctx context.Context, rec *entities.Recipe, data []byte) (*entities.Recipe, error) {
	key := fmt.Sprintf("recipes/%s-%d.png", rec.Slug, time.Now().UnixMilli())
	if _, err := s.s3.UploadObject(ctx, key, data, "image/png"); err != nil {
		return nil, err
	}
	url := s.s3.GetPublicLinkKey(key)

	if err := s.recipeRepository.UpdateRecipeImage(ctx, rec.Slug, key, url); err != nil {
		return nil, err
	}

	if rec.ImageKey != "" && rec.ImageKey != key {
		if err := s.s3.DeleteObject(ctx, rec.ImageKey); err != nil {
			log.Errorf("failed to delete old image %s: %v", rec.ImageKey, err)
		}
	}

	updated := *rec
	updated.ImageKey = key
	updated.ImageURL = url
	return &updated, nil
}
