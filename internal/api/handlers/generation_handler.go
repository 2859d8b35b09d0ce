package handlers

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/internal/api/presenters"
	"AI-Recipe-Backend/pkg/generation"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GenerationHandler interface {
		Generate(c *fiber.Ctx) error
	}

	generationHandler struct {
		generationService generation.GenerationService
		validator         *validator.Validate
	}
)

func NewGenerationHandler(generationService generation.GenerationService, validator *validator.Validate) GenerationHandler {
	return &generationHandler{
		generationService: generationService,
		validator:         validator,
	}
}

// Generate dispatches on the request type: recipe name options, a full
// recipe, the recipe of the day, or a regenerated image.
func (h *generationHandler) Generate(c *fiber.Ctx) error {
	req := new(domain.GenerateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerate, domain.ErrInvalidRequestType)
	}

	var (
		res interface{}
		err error
	)
	switch req.Type {
	case domain.GenerateOptions:
		res, err = h.generationService.GenerateOptions(c.Context(), req.Payload)
	case domain.GenerateDetails:
		res, err = h.generationService.GenerateDetails(c.Context(), req.Payload)
	case domain.GenerateRotd:
		res, err = h.generationService.GenerateRotd(c.Context())
	case domain.GenerateImage:
		res, err = h.generationService.GenerateImage(c.Context(), req.Payload)
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerate, domain.ErrInvalidRequestType)
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoIngredients), errors.Is(err, domain.ErrNoRecipeName):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerate, err)
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGenerate, err)
		case errors.Is(err, domain.ErrGeminiAPIFailed):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGenerate, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerate, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerate)
}
