package handlers

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/internal/api/presenters"
	"AI-Recipe-Backend/pkg/category"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetCategoryRecipes(c *fiber.Ctx) error
		RenameCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		SeedCategories(c *fiber.Ctx) error
		GetRecipeCategories(c *fiber.Ctx) error
		LinkRecipeCategories(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	res, err := h.categoryService.ListCategories(c.Context(), page, limit, c.Query("q", ""))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) GetCategoryRecipes(c *fiber.Ctx) error {
	slug := c.Params("slug")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	res, err := h.categoryService.GetCategoryRecipes(c.Context(), slug, page, limit, c.Query("q", ""))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCategories, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) RenameCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	req := new(domain.RenameCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameCategory, err)
	}

	res, err := h.categoryService.RenameCategory(c.Context(), categoryID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRenameCategory, err)
		}
		if errors.Is(err, domain.ErrCategoryConflict) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRenameCategory, err)
		}
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameCategory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRenameCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRenameCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if err := h.categoryService.DeleteCategory(c.Context(), categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteCategory, err)
		}
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCategory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

// SeedCategories loads the default category list, or the names supplied in
// the body when present.
func (h *categoryHandler) SeedCategories(c *fiber.Ctx) error {
	req := new(domain.LinkCategoriesRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	res, err := h.categoryService.SeedCategories(c.Context(), req.Names)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSeedCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSeedCategories)
}

func (h *categoryHandler) GetRecipeCategories(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.categoryService.ListRecipeCategories(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCategories, err)
		}
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) LinkRecipeCategories(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.LinkCategoriesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLinkCategories, err)
	}

	res, err := h.categoryService.LinkRecipeCategories(c.Context(), recipeID, req.Names)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedLinkCategories, err)
		}
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLinkCategories, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLinkCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLinkCategories)
}
