package handlers

import (
	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/middleware"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContactHandler struct {
	contact *services.ContactService
}

func NewContactHandler(contact *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Send relays a message to a profile or team. The response never reveals the
// recipient's address, and a failed email send still returns 200 once the
// message is recorded.
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid recipient id")
	}

	if err := h.contact.Send(user, req.RecipientType, recipientID, req.Subject, req.Message); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
