package handlers

import (
	"errors"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/middleware"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TeamHandler struct {
	teams    *services.TeamService
	profiles *services.ProfileService
}

func NewTeamHandler(teams *services.TeamService, profiles *services.ProfileService) *TeamHandler {
	return &TeamHandler{teams: teams, profiles: profiles}
}

// callerProfile loads the caller's profile if they have one; editing a team
// does not strictly require a profile (the creator check goes by user id).
func (h *TeamHandler) callerProfile(c *fiber.Ctx) (*models.PersonalProfile, error) {
	user := middleware.CurrentUser(c)
	profile, err := h.profiles.GetByUserID(user.ID)
	if errors.Is(err, services.ErrNotFound) {
		return nil, nil
	}
	return profile, err
}

// Get serves the public team page. Stubs are visible by direct slug; the
// discovery index is what filters them out.
func (h *TeamHandler) Get(c *fiber.Ctx) error {
	team, err := h.teams.GetBySlug(c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	members, err := h.teams.Members(team.ID, true)
	if err != nil {
		return serviceError(c, err)
	}
	coaches, err := h.teams.Coaches(team.ID, true)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"team": team, "members": members, "coaches": coaches})
}

func (h *TeamHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.callerProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	team, err := h.teams.Create(user.ID, profile, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

func (h *TeamHandler) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.callerProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	team, err := h.teams.Update(c.Params("slug"), user.ID, profile, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(team)
}

func (h *TeamHandler) Claim(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.callerProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	team, err := h.teams.Claim(c.Params("slug"), user.ID, profile, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(team)
}

func (h *TeamHandler) AddMember(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.callerProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.AffiliateRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	member, err := h.teams.AddMember(c.Params("slug"), user.ID, profile, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.callerProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	if err := h.teams.RemoveMember(c.Params("slug"), user.ID, profile, memberID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TeamHandler) AddCoach(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.callerProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.AffiliateRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	coach, err := h.teams.AddCoach(c.Params("slug"), user.ID, profile, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(coach)
}

func (h *TeamHandler) RemoveCoach(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.callerProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	coachID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid coach id")
	}

	if err := h.teams.RemoveCoach(c.Params("slug"), user.ID, profile, coachID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
