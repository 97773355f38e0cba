package handlers

import (
	"encoding/json"
	"errors"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/middleware"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profiles *services.ProfileService
	teams    *services.TeamService
}

func NewProfileHandler(profiles *services.ProfileService, teams *services.TeamService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, teams: teams}
}

// Me returns the caller's profile with both extensions, or 404 if they have
// not created one yet.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	profile, err := h.profiles.GetByUserID(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	resp := fiber.Map{"profile": profile, "performer": nil, "coach": nil}
	if performer, err := h.profiles.GetPerformerExtension(profile.ID); err == nil {
		resp["performer"] = performer
	} else if !errors.Is(err, services.ErrNotFound) {
		return serviceError(c, err)
	}
	if coach, err := h.profiles.GetCoachExtension(profile.ID); err == nil {
		resp["coach"] = coach
	} else if !errors.Is(err, services.ErrNotFound) {
		return serviceError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProfileHandler) UpsertPersonal(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.PersonalProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	profile, err := h.profiles.UpsertPersonal(user.ID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

// requireProfile loads the caller's profile, translating its absence into
// the create-a-profile-first error (extensions hang off the profile row).
func (h *ProfileHandler) requireProfile(c *fiber.Ctx) (*models.PersonalProfile, error) {
	user := middleware.CurrentUser(c)
	profile, err := h.profiles.GetByUserID(user.ID)
	if errors.Is(err, services.ErrNotFound) {
		return nil, services.ErrNoProfile
	}
	return profile, err
}

func (h *ProfileHandler) UpsertPerformer(c *fiber.Ctx) error {
	profile, err := h.requireProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.PerformerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	performer, err := h.profiles.UpsertPerformer(profile.ID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(performer)
}

func (h *ProfileHandler) RemovePerformer(c *fiber.Ctx) error {
	profile, err := h.requireProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	if err := h.profiles.RemovePerformer(profile.ID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) UpsertCoach(c *fiber.Ctx) error {
	profile, err := h.requireProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.CoachProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	coach, err := h.profiles.UpsertCoach(profile.ID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(coach)
}

func (h *ProfileHandler) RemoveCoach(c *fiber.Ctx) error {
	profile, err := h.requireProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	if err := h.profiles.RemoveCoach(profile.ID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MyTeams lists every approved team affiliation on the caller's profile.
func (h *ProfileHandler) MyTeams(c *fiber.Ctx) error {
	profile, err := h.requireProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	affiliations, err := h.teams.AffiliationsForProfile(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"teams": affiliations})
}

// JoinTeam lists the caller on a team by name; an unregistered name spawns
// a stub team.
func (h *ProfileHandler) JoinTeam(c *fiber.Ctx) error {
	profile, err := h.requireProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.SelfTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.teams.SelfAffiliate(profile, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ProfileHandler) LeaveTeam(c *fiber.Ctx) error {
	profile, err := h.requireProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	rowID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid affiliation id")
	}

	if err := h.teams.SelfRemove(profile.ID, rowID, c.Query("role", "member")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PublicPerformer serves the public performer page: 404 unless the profile
// exists and carries the performer extension.
func (h *ProfileHandler) PublicPerformer(c *fiber.Ctx) error {
	profile, err := h.profiles.GetBySlug(c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	performer, err := h.profiles.GetPerformerExtension(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	affiliations, err := h.teams.AffiliationsForProfile(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.PerformerPage{
		Profile: publicProfile(profile),
		Performer: dto.PerformerDetails{
			VideoHighlights:   json.RawMessage(performer.VideoHighlights),
			OpenToBookOpeners: performer.OpenToBookOpeners,
			LookingForTeam:    performer.LookingForTeam,
			LookingForCoach:   performer.LookingForCoach,
			LookingFor:        performer.LookingFor,
		},
		Teams: affiliations,
	})
}

func (h *ProfileHandler) PublicCoach(c *fiber.Ctx) error {
	profile, err := h.profiles.GetBySlug(c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	coach, err := h.profiles.GetCoachExtension(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	affiliations, err := h.teams.AffiliationsForProfile(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.CoachPage{
		Profile: publicProfile(profile),
		Coach: dto.CoachDetails{
			CoachingBio:           coach.CoachingBio,
			AvailableForPrivate:   coach.AvailableForPrivate,
			AvailableForTeams:     coach.AvailableForTeams,
			AvailableForWorkshops: coach.AvailableForWorkshops,
			Availability:          coach.Availability,
		},
		Teams: affiliations,
	})
}

// SearchProfiles is the combobox lookup used by the team edit pickers.
func (h *ProfileHandler) SearchProfiles(c *fiber.Ctx) error {
	hits, err := h.profiles.SearchByName(c.Query("q"), c.Query("type", "performer"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"results": hits})
}

func publicProfile(p *models.PersonalProfile) dto.PublicProfile {
	return dto.PublicProfile{
		ID:          p.ID.String(),
		Name:        p.Name,
		Slug:        p.Slug,
		PhotoURL:    p.PhotoURL,
		SocialLinks: json.RawMessage(p.SocialLinks),
		Bio:         p.Bio,
		Training:    p.Training,
		LookingFor:  p.LookingFor,
	}
}
