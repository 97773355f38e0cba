package handlers

import (
	"errors"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/middleware"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApprovalHandler struct {
	teams    *services.TeamService
	profiles *services.ProfileService
}

func NewApprovalHandler(teams *services.TeamService, profiles *services.ProfileService) *ApprovalHandler {
	return &ApprovalHandler{teams: teams, profiles: profiles}
}

// Inbox lists every pending membership and coach-role row naming the
// caller's profile.
func (h *ApprovalHandler) Inbox(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.profiles.GetByUserID(user.ID)
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(fiber.Map{"approvals": []dto.PendingApproval{}})
	}
	if err != nil {
		return serviceError(c, err)
	}

	approvals, err := h.teams.PendingApprovals(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"approvals": approvals})
}

// Decide resolves one pending row. Only the person named on the row may
// decide, and a decided row is terminal.
func (h *ApprovalHandler) Decide(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.profiles.GetByUserID(user.ID)
	if errors.Is(err, services.ErrNotFound) {
		return serviceError(c, services.ErrForbidden)
	}
	if err != nil {
		return serviceError(c, err)
	}

	rowID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid approval id")
	}

	var req dto.ApprovalActionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Action != "approve" && req.Action != "reject" {
		return jsonError(c, fiber.StatusBadRequest, "Action must be approve or reject")
	}

	status, err := h.teams.Decide(rowID, c.Query("type", dto.ApprovalTypeMembership), profile.ID, req.Action == "approve")
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.ApprovalResponse{Success: true, ApprovalStatus: status})
}
