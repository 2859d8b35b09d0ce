package domain

import (
	"errors"
)

const (
	GenerateOptions = "generateOptions"
	GenerateDetails = "generateDetails"
	GenerateRotd    = "generateRotd"
	GenerateImage   = "generateImage"
)

var (
	MessageSuccessGenerate = "generation completed successfully"
	MessageFailedGenerate  = "generation failed"

	ErrGeminiAPIFailed    = errors.New("gemini API processing failed")
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrNoIngredients      = errors.New("ingredients text is required")
	ErrNoRecipeName       = errors.New("recipe name is required")
)

type (
	GenerateRequest struct {
		Type    string          `json:"type" validate:"required,oneof=generateOptions generateDetails generateRotd generateImage"`
		Payload GeneratePayload `json:"payload"`
	}

	GeneratePayload struct {
		Ingredients string `json:"ingredients,omitempty"`
		RecipeName  string `json:"recipeName,omitempty"`
		Slug        string `json:"slug,omitempty"`
	}

	RecipeOptions struct {
		Recipes []string `json:"recipes"`
	}

	GeneratedRecipe struct {
		RecipeName   string   `json:"recipeName"`
		Description  string   `json:"description"`
		PrepTime     string   `json:"prepTime"`
		CookTime     string   `json:"cookTime"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
	}

	GenerateDetailsResponse struct {
		Recipe Recipe `json:"recipe"`
		Cached bool   `json:"cached"`
	}
)
