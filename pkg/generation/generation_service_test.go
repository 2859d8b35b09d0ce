package generation

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/entities"
	"AI-Recipe-Backend/pkg/recipe"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	recipe    domain.GeneratedRecipe
	recipeErr error
	imageErr  error
	calls     int
}

func (f *fakeGemini) Configured() bool { return true }

func (f *fakeGemini) GenerateOptions(_ context.Context, _ string) (domain.RecipeOptions, error) {
	return domain.RecipeOptions{}, nil
}

func (f *fakeGemini) GenerateRecipe(_ context.Context, _, _ string) (domain.GeneratedRecipe, error) {
	f.calls++
	return f.recipe, f.recipeErr
}

func (f *fakeGemini) GenerateRotd(_ context.Context) (domain.GeneratedRecipe, error) {
	f.calls++
	return f.recipe, f.recipeErr
}

func (f *fakeGemini) ClassifyCategories(_ context.Context, _, _ string, _ []string) ([]string, error) {
	return nil, domain.ErrGeminiAPIFailed
}

func (f *fakeGemini) GenerateImage(_ context.Context, _ string) ([]byte, error) {
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	return []byte("png"), nil
}

type fakeRecipeRepo struct {
	byName    map[string]*entities.Recipe
	upserted  *entities.Recipe
	hits      int
	imageSlug string
}

func (f *fakeRecipeRepo) UpsertRecipe(_ context.Context, r *entities.Recipe) (*entities.Recipe, error) {
	f.upserted = r
	return r, nil
}

func (f *fakeRecipeRepo) UpdateRecipeImage(_ context.Context, slug, _, _ string) error {
	f.imageSlug = slug
	return nil
}

func (f *fakeRecipeRepo) GetRecipeByID(_ context.Context, _ string) (*entities.Recipe, error) {
	return nil, domain.ErrRecipeNotFound
}

func (f *fakeRecipeRepo) GetRecipeBySlug(_ context.Context, _ string) (*entities.Recipe, error) {
	return nil, domain.ErrRecipeNotFound
}

func (f *fakeRecipeRepo) GetRecipeByName(_ context.Context, name string) (*entities.Recipe, error) {
	if r, ok := f.byName[name]; ok {
		return r, nil
	}
	return nil, domain.ErrRecipeNotFound
}

func (f *fakeRecipeRepo) DeleteRecipeByID(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (f *fakeRecipeRepo) ListRecipes(_ context.Context, _, _ int, _ string) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepo) ListRankedRecipes(_ context.Context, _ string, _, _ int, _ string) ([]recipe.RankedRecipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepo) ListRecipesByCategorySlug(_ context.Context, _ string, _, _ int, _ string) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepo) GetDailyByDate(_ context.Context, _ time.Time) (*entities.Recipe, error) {
	return nil, domain.ErrDailyNotFound
}

func (f *fakeRecipeRepo) IncrementHit(_ context.Context, _ uuid.UUID) error {
	f.hits++
	return nil
}

func (f *fakeRecipeRepo) RecordAiHit(_ context.Context, _ string) error { return nil }

func (f *fakeRecipeRepo) PruneHitStats(_ context.Context, _ int) (int64, error) { return 0, nil }

type fakeGenerationRepo struct {
	logged    int
	dailyDate time.Time
	dailyID   uuid.UUID
}

func (f *fakeGenerationRepo) LogGeneration(_ context.Context, _ string, _ uuid.UUID) error {
	f.logged++
	return nil
}

func (f *fakeGenerationRepo) SetDailyRecommendation(_ context.Context, date time.Time, recipeID uuid.UUID) error {
	f.dailyDate = date
	f.dailyID = recipeID
	return nil
}

type fakeS3 struct {
	uploads []string
}

func (f *fakeS3) UploadObject(_ context.Context, key string, _ []byte, _ string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, _ string) error { return nil }

func (f *fakeS3) GetPublicLinkKey(objectKey string) string { return objectKey }

func (f *fakeS3) GetObjectKeyFromLink(link string) string { return link }

type fakeCategoryService struct{}

func (f *fakeCategoryService) ListCategories(_ context.Context, page, limit int, _ string) (domain.ListCategoriesResponse, error) {
	return domain.ListCategoriesResponse{Page: page, Limit: limit}, nil
}

func (f *fakeCategoryService) GetCategoryRecipes(_ context.Context, _ string, _, _ int, _ string) (domain.CategoryRecipesResponse, error) {
	return domain.CategoryRecipesResponse{}, nil
}

func (f *fakeCategoryService) RenameCategory(_ context.Context, _, _ string) (domain.Category, error) {
	return domain.Category{}, nil
}

func (f *fakeCategoryService) DeleteCategory(_ context.Context, _ string) error { return nil }

func (f *fakeCategoryService) LinkRecipeCategories(_ context.Context, _ string, _ []string) ([]domain.Category, error) {
	return nil, nil
}

func (f *fakeCategoryService) ListRecipeCategories(_ context.Context, _ string) ([]domain.Category, error) {
	return nil, nil
}

func (f *fakeCategoryService) SeedCategories(_ context.Context, _ []string) ([]domain.Category, error) {
	return nil, nil
}

func newTestService(gemini *fakeGemini, recipeRepo *fakeRecipeRepo, genRepo *fakeGenerationRepo, s3 *fakeS3) GenerationService {
	return NewGenerationService(gemini, genRepo, recipeRepo, &fakeCategoryService{}, s3)
}

func TestGenerateDetailsCacheHit(t *testing.T) {
	known := &entities.Recipe{
		ID:         uuid.New(),
		Slug:       "hongshaorou-abc",
		RecipeName: "红烧肉",
	}
	gemini := &fakeGemini{}
	recipeRepo := &fakeRecipeRepo{byName: map[string]*entities.Recipe{"红烧肉": known}}
	genRepo := &fakeGenerationRepo{}

	service := newTestService(gemini, recipeRepo, genRepo, &fakeS3{})
	res, err := service.GenerateDetails(context.Background(), domain.GeneratePayload{RecipeName: "红烧肉"})
	require.NoError(t, err)

	assert.True(t, res.Cached)
	assert.Equal(t, "hongshaorou-abc", res.Recipe.Slug)
	assert.Equal(t, 0, gemini.calls)
	assert.Equal(t, 1, recipeRepo.hits)
	assert.Equal(t, 0, genRepo.logged)
}

func TestGenerateDetailsMissPersistsThenEnriches(t *testing.T) {
	gemini := &fakeGemini{recipe: domain.GeneratedRecipe{
		RecipeName:   "清蒸鱼",
		Description:  "鲜嫩可口",
		Ingredients:  []string{"鱼"},
		Instructions: []string{"蒸"},
	}}
	recipeRepo := &fakeRecipeRepo{byName: map[string]*entities.Recipe{}}
	genRepo := &fakeGenerationRepo{}
	s3 := &fakeS3{}

	service := newTestService(gemini, recipeRepo, genRepo, s3)
	res, err := service.GenerateDetails(context.Background(), domain.GeneratePayload{RecipeName: "清蒸鱼", Ingredients: "鱼"})
	require.NoError(t, err)

	assert.False(t, res.Cached)
	assert.Equal(t, "清蒸鱼", res.Recipe.RecipeName)
	require.NotNil(t, recipeRepo.upserted)
	assert.Equal(t, domain.SourceUser, recipeRepo.upserted.Source)
	assert.NotEmpty(t, recipeRepo.upserted.Slug)
	assert.Equal(t, 1, genRepo.logged)
	require.Len(t, s3.uploads, 1)
	assert.Equal(t, recipeRepo.upserted.Slug, recipeRepo.imageSlug)
}

func TestGenerateDetailsImageFailureKeepsText(t *testing.T) {
	gemini := &fakeGemini{
		recipe:   domain.GeneratedRecipe{RecipeName: "水煮肉片"},
		imageErr: domain.ErrGeminiAPIFailed,
	}
	recipeRepo := &fakeRecipeRepo{byName: map[string]*entities.Recipe{}}
	s3 := &fakeS3{}

	service := newTestService(gemini, recipeRepo, &fakeGenerationRepo{}, s3)
	res, err := service.GenerateDetails(context.Background(), domain.GeneratePayload{RecipeName: "水煮肉片"})
	require.NoError(t, err)

	assert.Equal(t, "水煮肉片", res.Recipe.RecipeName)
	assert.Empty(t, res.Recipe.ImageURL)
	assert.Empty(t, s3.uploads)
}

func TestGenerateRotdPinsToday(t *testing.T) {
	gemini := &fakeGemini{recipe: domain.GeneratedRecipe{RecipeName: "今日佳肴"}}
	recipeRepo := &fakeRecipeRepo{byName: map[string]*entities.Recipe{}}
	genRepo := &fakeGenerationRepo{}

	service := newTestService(gemini, recipeRepo, genRepo, &fakeS3{})
	res, err := service.GenerateRotd(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "今日佳肴", res.RecipeName)
	require.NotNil(t, recipeRepo.upserted)
	assert.Equal(t, domain.SourceDaily, recipeRepo.upserted.Source)
	assert.Equal(t, recipeRepo.upserted.ID, genRepo.dailyID)
	assert.False(t, genRepo.dailyDate.IsZero())
}

func TestGenerateOptionsRequiresIngredients(t *testing.T) {
	service := newTestService(&fakeGemini{}, &fakeRecipeRepo{}, &fakeGenerationRepo{}, &fakeS3{})

	_, err := service.GenerateOptions(context.Background(), domain.GeneratePayload{Ingredients: "   "})
	assert.ErrorIs(t, err, domain.ErrNoIngredients)
}

func TestGenerateImageRequiresTarget(t *testing.T) {
	service := newTestService(&fakeGemini{}, &fakeRecipeRepo{}, &fakeGenerationRepo{}, &fakeS3{})

	_, err := service.GenerateImage(context.Background(), domain.GeneratePayload{})
	assert.ErrorIs(t, err, domain.ErrNoRecipeName)
}
