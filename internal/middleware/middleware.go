package middleware

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/internal/api/presenters"
	"AI-Recipe-Backend/internal/utils"
	"AI-Recipe-Backend/pkg/jwt"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"golang.org/x/crypto/bcrypt"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AdminMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AdminMiddleware guards mutating routes. It accepts either a Bearer token
// issued by the login endpoint or HTTP Basic credentials matching the
// configured admin account.
func (m *middleware) AdminMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrTokenNotFound)
		}

		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			username, err := jwtService.GetAdminByToken(token)
			if err != nil {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
			}
			c.Locals("admin", username)
			return c.Next()
		}

		if strings.HasPrefix(authHeader, "Basic ") {
			username, password, ok := decodeBasicAuth(authHeader)
			if !ok || !CheckAdminCredentials(username, password) {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrInvalidCredentials)
			}
			c.Locals("admin", username)
			return c.Next()
		}

		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrTokenInvalid)
	}
}

// CheckAdminCredentials compares a username/password pair against the
// configured admin account. A bcrypt hash takes precedence over the plain
// password when both are set.
func CheckAdminCredentials(username, password string) bool {
	wantUser := utils.GetConfig("ADMIN_USERNAME")
	if wantUser == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) != 1 {
		return false
	}

	if hash := utils.GetConfig("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	wantPass := utils.GetConfig("ADMIN_PASSWORD")
	if wantPass == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
}

func decodeBasicAuth(header string) (string, string, bool) {
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(string(payload), ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
