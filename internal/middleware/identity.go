package middleware

import (
	"errors"
	"log/slog"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const userLocal = "current_user"

// LoadUser runs after JWTProtected: it reads the identity subject and email
// from the verified claims, resolves (or idempotently creates) the app user
// row, and stashes it in locals for handlers.
func LoadUser(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, email, err := identityClaims(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized",
			})
		}

		user, err := users.EnsureUser(sub, email)
		if err != nil {
			slog.Error("failed to resolve user from identity", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Internal server error",
			})
		}

		c.Locals(userLocal, user)
		return c.Next()
	}
}

// CurrentUser returns the user loaded by LoadUser, or nil outside protected
// routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(userLocal).(*models.User); ok {
		return user
	}
	return nil
}

func identityClaims(c *fiber.Ctx) (sub, email string, err error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", "", errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid claims")
	}
	sub, ok = claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("missing sub claim")
	}
	email, _ = claims["email"].(string)
	return sub, email, nil
}
