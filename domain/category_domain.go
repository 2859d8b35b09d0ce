package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessRenameCategory  = "category renamed successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"
	MessageSuccessLinkCategories  = "categories linked successfully"
	MessageSuccessSeedCategories  = "categories seeded successfully"

	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedRenameCategory = "failed to rename category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedLinkCategories = "failed to link categories"
	MessageFailedSeedCategories = "failed to seed categories"

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryConflict = errors.New("category name already in use")
)

type (
	Category struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Slug        string    `json:"slug"`
		RecipeCount int64     `json:"recipe_count"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RenameCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	LinkCategoriesRequest struct {
		Names []string `json:"names" validate:"required,min=1"`
	}

	ListCategoriesResponse struct {
		Items []Category `json:"items"`
		Total int64      `json:"total"`
		Page  int        `json:"page"`
		Limit int        `json:"limit"`
	}

	CategoryRecipesResponse struct {
		Category Category `json:"category"`
		Items    []Recipe `json:"items"`
		Total    int64    `json:"total"`
		Page     int      `json:"page"`
		Limit    int      `json:"limit"`
	}
)
