package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessGetRecipe     = "success get recipe"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessRecordHit     = "hit recorded successfully"
	MessageSuccessGetDaily      = "success get daily recommendation"

	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedGetRecipe    = "failed to get recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedRecordHit    = "failed to record hit"
	MessageFailedGetDaily     = "failed to get daily recommendation"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDailyNotFound  = errors.New("no daily recommendation for this date")
	ErrHitTargetEmpty = errors.New("recipeId, slug or recipeName is required")
)

type (
	Recipe struct {
		ID           string     `json:"id"`
		Slug         string     `json:"slug"`
		RecipeName   string     `json:"recipe_name"`
		Description  string     `json:"description"`
		PrepTime     string     `json:"prep_time,omitempty"`
		CookTime     string     `json:"cook_time,omitempty"`
		Ingredients  []string   `json:"ingredients,omitempty"`
		Instructions []string   `json:"instructions,omitempty"`
		ImageURL     string     `json:"image_url,omitempty"`
		Source       string     `json:"source"`
		HitCount     int64      `json:"hit_count,omitempty"`
		Score        float64    `json:"score,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
	}

	ListRecipesRequest struct {
		Page  int    `json:"page"`
		Limit int    `json:"limit"`
		Q     string `json:"q,omitempty"`
		Sort  string `json:"sort,omitempty" validate:"omitempty,oneof=popular week recent weighted"`
	}

	ListRecipesResponse struct {
		Items []Recipe `json:"items"`
		Total int64    `json:"total"`
		Page  int      `json:"page"`
		Limit int      `json:"limit"`
		Q     string   `json:"q,omitempty"`
		Sort  string   `json:"sort,omitempty"`
	}

	RecordHitRequest struct {
		RecipeID      string `json:"recipeId,omitempty"`
		Slug          string `json:"slug,omitempty"`
		RecipeName    string `json:"recipeName,omitempty"`
		IsAiGenerated bool   `json:"isAiGenerated,omitempty"`
	}
)
