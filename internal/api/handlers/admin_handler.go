package handlers

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/internal/api/presenters"
	"AI-Recipe-Backend/internal/middleware"
	"AI-Recipe-Backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		Login(c *fiber.Ctx) error
	}

	adminHandler struct {
		jwtService jwt.JWTService
		validator  *validator.Validate
	}
)

func NewAdminHandler(jwtService jwt.JWTService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		jwtService: jwtService,
		validator:  validator,
	}
}

func (h *adminHandler) Login(c *fiber.Ctx) error {
	req := new(domain.AdminLoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	if !middleware.CheckAdminCredentials(req.Username, req.Password) {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrInvalidCredentials)
	}

	res := domain.AdminLoginResponse{
		Token: h.jwtService.GenerateTokenAdmin(req.Username),
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
