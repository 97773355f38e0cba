package handlers

import (
	"crypto/subtle"
	"log/slog"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type WebhookHandler struct {
	users  *services.UserService
	secret string
}

func NewWebhookHandler(users *services.UserService, secret string) *WebhookHandler {
	return &WebhookHandler{users: users, secret: secret}
}

// HandleIdentitySignup provisions the local user row when the identity
// provider confirms a signup. The JWT middleware creates users lazily too,
// so this is an optimization, not a correctness requirement.
func (h *WebhookHandler) HandleIdentitySignup(c *fiber.Ctx) error {
	if h.secret == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhooks not configured",
		})
	}

	auth := c.Get("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(auth), []byte(h.secret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var event dto.IdentitySignupEvent
	if err := c.BodyParser(&event); err != nil || event.User.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook payload",
		})
	}

	if _, err := h.users.EnsureUser(event.User.ID, event.User.Email); err != nil {
		slog.Error("signup webhook processing failed", "identity_id", event.User.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process signup",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
