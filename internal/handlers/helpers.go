package handlers

import (
	"errors"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// serviceError maps the service error taxonomy onto HTTP statuses:
// validation → 400 with field detail, ownership → 403, missing → 404,
// already-decided → 409, domain-state → 422, everything else → 500.
func serviceError(c *fiber.Ctx, err error) error {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Validation failed",
			Fields:  vErr.Fields,
		})
	case errors.Is(err, services.ErrForbidden):
		return jsonError(c, fiber.StatusForbidden, "Not authorized")
	case errors.Is(err, services.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrAlreadyDecided):
		return jsonError(c, fiber.StatusConflict, "Request already decided")
	case errors.Is(err, services.ErrNoProfile):
		return jsonError(c, fiber.StatusUnprocessableEntity, "Create a profile first")
	case errors.Is(err, services.ErrNoPrimaryContact):
		return jsonError(c, fiber.StatusUnprocessableEntity, "This team has no primary contact set")
	case errors.Is(err, services.ErrNoContactAddress):
		return jsonError(c, fiber.StatusUnprocessableEntity, "Recipient has no email address")
	case errors.Is(err, services.ErrTeamClaimed):
		return jsonError(c, fiber.StatusBadRequest, "Team is already claimed")
	case errors.Is(err, services.ErrSlugExhausted):
		return jsonError(c, fiber.StatusUnprocessableEntity, "Could not allocate a unique slug, try a different name")
	default:
		return fiber.ErrInternalServerError
	}
}
