package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/comedyconnector/backend/internal/slugify"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// How many suffixed slugs to try before giving up. The probe loop makes a
// collision unlikely; the retry only fires when two identical names race
// past the probe and hit the unique index.
const maxSlugAttempts = 5

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) GetByUserID(userID uuid.UUID) (*models.PersonalProfile, error) {
	var profile models.PersonalProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) GetBySlug(slug string) (*models.PersonalProfile, error) {
	var profile models.PersonalProfile
	err := s.db.Where("slug = ?", slug).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// resolveProfileSlug probes for a free slug: the base, then -2, -3...
// A slug already held by excludeID (a self-rename) counts as free.
func (s *ProfileService) resolveProfileSlug(name string, excludeID *uuid.UUID) (string, error) {
	base, err := slugify.Generate(name)
	if err != nil {
		return "", &ValidationError{Fields: map[string]string{"name": "name must contain letters or digits"}}
	}
	for attempt := 1; ; attempt++ {
		candidate := slugify.Uniquify(base, attempt)
		var existing models.PersonalProfile
		err := s.db.Select("id").Where("slug = ?", candidate).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if excludeID != nil && existing.ID == *excludeID {
			return candidate, nil
		}
	}
}

// UpsertPersonal creates or updates the caller's personal profile. The slug
// is re-resolved from the (possibly new) name every time; the unique index
// backstops the probe loop and duplicate-key errors trigger a bounded retry
// with the next suffix.
func (s *ProfileService) UpsertPersonal(userID uuid.UUID, req *dto.PersonalProfileRequest) (*models.PersonalProfile, error) {
	if err := validatePersonalProfile(req); err != nil {
		return nil, err
	}

	var existing *models.PersonalProfile
	if p, err := s.GetByUserID(userID); err == nil {
		existing = p
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	links := cleanSocialLinks(req.SocialLinks)
	linksJSON, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("failed to encode social links: %w", err)
	}

	reminders := true
	if req.FreshnessRemindersEnabled != nil {
		reminders = *req.FreshnessRemindersEnabled
	}

	var excludeID *uuid.UUID
	if existing != nil {
		excludeID = &existing.ID
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		slug, err := s.resolveProfileSlug(req.Name, excludeID)
		if err != nil {
			return nil, err
		}

		profile := models.PersonalProfile{
			UserID:                    userID,
			Name:                      req.Name,
			Slug:                      slug,
			PhotoURL:                  optional(req.PhotoURL),
			SocialLinks:               datatypes.JSON(linksJSON),
			Bio:                       optional(req.Bio),
			Training:                  optional(req.Training),
			LookingFor:                optional(req.LookingFor),
			ContactEmail:              optional(req.ContactEmail),
			FreshnessRemindersEnabled: reminders,
		}

		if existing != nil {
			profile.ID = existing.ID
			err = s.db.Model(&models.PersonalProfile{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
				"name":                        profile.Name,
				"slug":                        profile.Slug,
				"photo_url":                   profile.PhotoURL,
				"social_links":                profile.SocialLinks,
				"bio":                         profile.Bio,
				"training":                    profile.Training,
				"looking_for":                 profile.LookingFor,
				"contact_email":               profile.ContactEmail,
				"freshness_reminders_enabled": profile.FreshnessRemindersEnabled,
			}).Error
		} else {
			err = s.db.Create(&profile).Error
		}

		if err == nil {
			if existing != nil {
				return s.GetByUserID(userID)
			}
			return &profile, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// Slug race: another profile grabbed the candidate between the
		// probe and the write. Re-resolve and try again.
	}
	return nil, ErrSlugExhausted
}

// UpsertPerformer attaches or updates the performer extension.
func (s *ProfileService) UpsertPerformer(profileID uuid.UUID, req *dto.PerformerProfileRequest) (*models.PerformerProfile, error) {
	if err := validatePerformerProfile(req); err != nil {
		return nil, err
	}

	highlights := req.VideoHighlights
	if highlights == nil {
		highlights = []string{}
	}
	highlightsJSON, err := json.Marshal(highlights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode video highlights: %w", err)
	}

	var existing models.PerformerProfile
	err = s.db.Where("profile_id = ?", profileID).First(&existing).Error
	if err == nil {
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"video_highlights":     datatypes.JSON(highlightsJSON),
			"open_to_book_openers": req.OpenToBookOpeners,
			"looking_for_team":     req.LookingForTeam,
			"looking_for_coach":    req.LookingForCoach,
			"looking_for":          optional(req.LookingFor),
		}).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	performer := models.PerformerProfile{
		ProfileID:         profileID,
		VideoHighlights:   datatypes.JSON(highlightsJSON),
		OpenToBookOpeners: req.OpenToBookOpeners,
		LookingForTeam:    req.LookingForTeam,
		LookingForCoach:   req.LookingForCoach,
		LookingFor:        optional(req.LookingFor),
	}
	if err := s.db.Create(&performer).Error; err != nil {
		return nil, err
	}
	return &performer, nil
}

func (s *ProfileService) RemovePerformer(profileID uuid.UUID) error {
	return s.db.Where("profile_id = ?", profileID).Delete(&models.PerformerProfile{}).Error
}

// UpsertCoach attaches or updates the coach extension.
func (s *ProfileService) UpsertCoach(profileID uuid.UUID, req *dto.CoachProfileRequest) (*models.CoachProfile, error) {
	if err := validateCoachProfile(req); err != nil {
		return nil, err
	}

	var existing models.CoachProfile
	err := s.db.Where("profile_id = ?", profileID).First(&existing).Error
	if err == nil {
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"coaching_bio":            optional(req.CoachingBio),
			"available_for_private":   req.AvailableForPrivate,
			"available_for_teams":     req.AvailableForTeams,
			"available_for_workshops": req.AvailableForWorkshops,
			"availability":            optional(req.Availability),
		}).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	coach := models.CoachProfile{
		ProfileID:             profileID,
		CoachingBio:           optional(req.CoachingBio),
		AvailableForPrivate:   req.AvailableForPrivate,
		AvailableForTeams:     req.AvailableForTeams,
		AvailableForWorkshops: req.AvailableForWorkshops,
		Availability:          optional(req.Availability),
	}
	if err := s.db.Create(&coach).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}

func (s *ProfileService) RemoveCoach(profileID uuid.UUID) error {
	return s.db.Where("profile_id = ?", profileID).Delete(&models.CoachProfile{}).Error
}

func (s *ProfileService) GetPerformerExtension(profileID uuid.UUID) (*models.PerformerProfile, error) {
	var performer models.PerformerProfile
	err := s.db.Where("profile_id = ?", profileID).First(&performer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &performer, nil
}

func (s *ProfileService) GetCoachExtension(profileID uuid.UUID) (*models.CoachProfile, error) {
	var coach models.CoachProfile
	err := s.db.Where("profile_id = ?", profileID).First(&coach).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// SearchByName is the combobox lookup (team edit pickers): ILIKE substring
// match on profiles that carry the requested extension.
func (s *ProfileService) SearchByName(q, kind string) ([]dto.ProfileHit, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return []dto.ProfileHit{}, nil
	}

	join := "INNER JOIN performer_profiles ON performer_profiles.profile_id = personal_profiles.id"
	if kind == "coach" {
		join = "INNER JOIN coach_profiles ON coach_profiles.profile_id = personal_profiles.id"
	}

	var hits []dto.ProfileHit
	err := s.db.Table("personal_profiles").
		Select("personal_profiles.id, personal_profiles.name, personal_profiles.slug").
		Joins(join).
		Where("personal_profiles.name ILIKE ?", "%"+q+"%").
		Limit(10).
		Scan(&hits).Error
	if err != nil {
		return nil, err
	}
	if hits == nil {
		hits = []dto.ProfileHit{}
	}
	return hits, nil
}

// --- validation ---

func validatePersonalProfile(req *dto.PersonalProfileRequest) error {
	v := newValidationError()
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		v.add("name", "name must be at least 2 characters")
	}
	if len(name) > 100 {
		v.add("name", "name must be under 100 characters")
	}
	req.Name = name
	if len(req.Bio) > 1000 {
		v.add("bio", "bio must be under 1000 characters")
	}
	if len(req.Training) > 2000 {
		v.add("training", "training must be under 2000 characters")
	}
	if len(req.LookingFor) > 500 {
		v.add("looking_for", "must be under 500 characters")
	}
	if req.ContactEmail != "" {
		if _, err := mail.ParseAddress(req.ContactEmail); err != nil {
			v.add("contact_email", "invalid email address")
		}
	}
	if req.PhotoURL != "" && !validURL(req.PhotoURL) {
		v.add("photo_url", "invalid URL")
	}
	for field, link := range map[string]string{
		"instagram": req.SocialLinks.Instagram,
		"tiktok":    req.SocialLinks.TikTok,
		"facebook":  req.SocialLinks.Facebook,
		"twitter":   req.SocialLinks.Twitter,
		"youtube":   req.SocialLinks.YouTube,
		"website":   req.SocialLinks.Website,
	} {
		if link != "" && !validURL(link) {
			v.add("social_links."+field, "invalid URL")
		}
	}
	return v.orNil()
}

func validatePerformerProfile(req *dto.PerformerProfileRequest) error {
	v := newValidationError()
	if len(req.VideoHighlights) > 5 {
		v.add("video_highlights", "at most 5 video links")
	}
	for _, link := range req.VideoHighlights {
		if !validURL(link) {
			v.add("video_highlights", "invalid URL")
		}
	}
	if len(req.LookingFor) > 500 {
		v.add("looking_for", "must be under 500 characters")
	}
	return v.orNil()
}

func validateCoachProfile(req *dto.CoachProfileRequest) error {
	v := newValidationError()
	if len(req.CoachingBio) > 2000 {
		v.add("coaching_bio", "must be under 2000 characters")
	}
	if len(req.Availability) > 500 {
		v.add("availability", "must be under 500 characters")
	}
	return v.orNil()
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// cleanSocialLinks drops empty values so "unset" is key absence.
func cleanSocialLinks(links dto.SocialLinks) map[string]string {
	out := make(map[string]string)
	for k, val := range map[string]string{
		"instagram": links.Instagram,
		"tiktok":    links.TikTok,
		"facebook":  links.Facebook,
		"twitter":   links.Twitter,
		"youtube":   links.YouTube,
		"website":   links.Website,
	} {
		if val != "" {
			out[k] = val
		}
	}
	return out
}

// optional maps an empty string to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
