package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type (
	SuccessEnvelope struct {
		Status  bool        `json:"status"`
		Message string      `json:"message"`
		Data    interface{} `json:"data,omitempty"`
	}

	ErrorEnvelope struct {
		Error  string `json:"error"`
		Detail string `json:"detail,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(SuccessEnvelope{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := ErrorEnvelope{Error: message}
	if err != nil {
		res.Detail = err.Error()
	}
	return c.Status(code).JSON(res)
}
