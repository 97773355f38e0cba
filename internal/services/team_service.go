package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/comedyconnector/backend/internal/slugify"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

func (s *TeamService) GetBySlug(slug string) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("slug = ?", slug).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// findByName does a case-insensitive exact-name lookup, so casing variants
// of a team name cannot spawn duplicate stubs.
func (s *TeamService) findByName(name string) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("lower(name) = lower(?)", name).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// resolveTeamSlug probes for a free team slug, treating one held by
// excludeID as free.
func (s *TeamService) resolveTeamSlug(name string, excludeID *uuid.UUID) (string, error) {
	base, err := slugify.Generate(name)
	if err != nil {
		return "", &ValidationError{Fields: map[string]string{"name": "name must contain letters or digits"}}
	}
	for attempt := 1; ; attempt++ {
		candidate := slugify.Uniquify(base, attempt)
		var existing models.Team
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

// GetOrCreateStub is a lookup-or-create, not a create-stub guarantee: an
// existing team is returned verbatim even when already active. The unique
// indexes on slug and lower(name) close the concurrent-insert race; a
// duplicated-key error means someone else won, so re-lookup.
func (s *TeamService) GetOrCreateStub(name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "team name is required"}}
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		existing, err := s.findByName(name)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		slug, err := s.resolveTeamSlug(name, nil)
		if err != nil {
			return nil, err
		}
		team := models.Team{
			Name:   name,
			Slug:   slug,
			Status: models.TeamStatusStub,
		}
		err = s.db.Create(&team).Error
		if err == nil {
			return &team, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create stub team: %w", err)
		}
		// Name or slug conflict with a concurrent insert; loop re-looks up.
	}
	return nil, ErrSlugExhausted
}

// Create makes a new active team owned by userID. If a stub with the same
// name already exists it is claimed instead of duplicated. The creator's
// profile (when present) becomes the primary contact and an approved
// current member.
func (s *TeamService) Create(userID uuid.UUID, creatorProfile *models.PersonalProfile, req *dto.TeamRequest) (*models.Team, error) {
	if err := validateTeam(req, true); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)

	if existing, err := s.findByName(req.Name); err == nil {
		if existing.Status != models.TeamStatusStub {
			return nil, &ValidationError{Fields: map[string]string{"name": "a team with this name already exists"}}
		}
		if err := s.claim(existing, userID, creatorProfile, req); err != nil {
			return nil, err
		}
		return s.GetBySlug(existing.Slug)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	reminders := true
	if req.FreshnessRemindersEnabled != nil {
		reminders = *req.FreshnessRemindersEnabled
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		slug, err := s.resolveTeamSlug(req.Name, nil)
		if err != nil {
			return nil, err
		}

		team := models.Team{
			CreatedByUserID:           &userID,
			Name:                      req.Name,
			Slug:                      slug,
			Status:                    models.TeamStatusActive,
			Description:               optional(req.Description),
			VideoURL:                  optional(req.VideoURL),
			Form:                      optional(req.Form),
			IsPracticeGroup:           req.IsPracticeGroup,
			OpenToNewMembers:          req.OpenToNewMembers,
			OpenToBookOpeners:         req.OpenToBookOpeners,
			SeekingCoach:              req.SeekingCoach,
			LookingFor:                optional(req.LookingFor),
			FreshnessRemindersEnabled: reminders,
		}
		if creatorProfile != nil {
			team.PrimaryContactProfileID = &creatorProfile.ID
		}

		err = s.db.Create(&team).Error
		if err == nil {
			if creatorProfile != nil {
				member := models.TeamMember{
					TeamID:         team.ID,
					ProfileID:      &creatorProfile.ID,
					MemberName:     &creatorProfile.Name,
					IsCurrent:      true,
					ApprovalStatus: models.ApprovalApproved,
				}
				if err := s.db.Create(&member).Error; err != nil {
					return nil, fmt.Errorf("failed to add creator as member: %w", err)
				}
			}
			return &team, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
	}
	return nil, ErrSlugExhausted
}

// Claim transitions a stub to active for userID. The transition happens at
// most once: the status check is folded into the UPDATE's WHERE so two
// concurrent claims cannot both win.
func (s *TeamService) Claim(slug string, userID uuid.UUID, creatorProfile *models.PersonalProfile, req *dto.TeamRequest) (*models.Team, error) {
	team, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if team.Status != models.TeamStatusStub {
		return nil, ErrTeamClaimed
	}
	if err := validateTeam(req, false); err != nil {
		return nil, err
	}
	if err := s.claim(team, userID, creatorProfile, req); err != nil {
		return nil, err
	}
	return s.GetBySlug(slug)
}

func (s *TeamService) claim(team *models.Team, userID uuid.UUID, creatorProfile *models.PersonalProfile, req *dto.TeamRequest) error {
	reminders := true
	if req.FreshnessRemindersEnabled != nil {
		reminders = *req.FreshnessRemindersEnabled
	}

	updates := map[string]interface{}{
		"status":                      models.TeamStatusActive,
		"created_by_user_id":          userID,
		"description":                 optional(req.Description),
		"video_url":                   optional(req.VideoURL),
		"form":                        optional(req.Form),
		"is_practice_group":           req.IsPracticeGroup,
		"open_to_new_members":         req.OpenToNewMembers,
		"open_to_book_openers":        req.OpenToBookOpeners,
		"seeking_coach":               req.SeekingCoach,
		"looking_for":                 optional(req.LookingFor),
		"freshness_reminders_enabled": reminders,
		"updated_at":                  time.Now(),
	}
	if creatorProfile != nil {
		updates["primary_contact_profile_id"] = creatorProfile.ID
	}

	res := s.db.Model(&models.Team{}).
		Where("id = ? AND status = ?", team.ID, models.TeamStatusStub).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTeamClaimed
	}
	return nil
}

// Update edits team details. The name is locked after creation. Authority:
// the creator or any approved member.
func (s *TeamService) Update(slug string, userID uuid.UUID, callerProfile *models.PersonalProfile, req *dto.TeamRequest) (*models.Team, error) {
	team, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if err := s.requireTeamAuthority(team, userID, callerProfile); err != nil {
		return nil, err
	}
	if err := validateTeam(req, false); err != nil {
		return nil, err
	}

	reminders := team.FreshnessRemindersEnabled
	if req.FreshnessRemindersEnabled != nil {
		reminders = *req.FreshnessRemindersEnabled
	}

	updates := map[string]interface{}{
		"description":                 optional(req.Description),
		"video_url":                   optional(req.VideoURL),
		"form":                        optional(req.Form),
		"is_practice_group":           req.IsPracticeGroup,
		"open_to_new_members":         req.OpenToNewMembers,
		"open_to_book_openers":        req.OpenToBookOpeners,
		"seeking_coach":               req.SeekingCoach,
		"looking_for":                 optional(req.LookingFor),
		"freshness_reminders_enabled": reminders,
		"updated_at":                  time.Now(),
	}
	if req.PrimaryContactProfileID != "" {
		contactID, err := uuid.Parse(req.PrimaryContactProfileID)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{"primary_contact_profile_id": "invalid profile id"}}
		}
		updates["primary_contact_profile_id"] = contactID
	}

	if err := s.db.Model(&models.Team{}).Where("id = ?", team.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetBySlug(slug)
}

// requireTeamAuthority allows the creator or an approved member.
func (s *TeamService) requireTeamAuthority(team *models.Team, userID uuid.UUID, callerProfile *models.PersonalProfile) error {
	if team.CreatedByUserID != nil && *team.CreatedByUserID == userID {
		return nil
	}
	if callerProfile == nil {
		return ErrForbidden
	}
	var count int64
	err := s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND profile_id = ? AND approval_status = ?",
			team.ID, callerProfile.ID, models.ApprovalApproved).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrForbidden
	}
	return nil
}

// --- affiliates ---

// AddMember adds a member row. A registered profile starts pending (the
// person must consent); a free-text name starts approved.
func (s *TeamService) AddMember(slug string, userID uuid.UUID, callerProfile *models.PersonalProfile, req *dto.AffiliateRequest) (*models.TeamMember, error) {
	team, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if err := s.requireTeamAuthority(team, userID, callerProfile); err != nil {
		return nil, err
	}
	profileID, name, isCurrent, err := parseAffiliate(req)
	if err != nil {
		return nil, err
	}
	if err := s.ensureMentionedTeam(req.TeamName); err != nil {
		return nil, err
	}

	member := models.TeamMember{
		TeamID:         team.ID,
		ProfileID:      profileID,
		MemberName:     name,
		StartYear:      req.StartYear,
		StartMonth:     req.StartMonth,
		EndYear:        req.EndYear,
		EndMonth:       req.EndMonth,
		IsCurrent:      isCurrent,
		ApprovalStatus: affiliateDefaultStatus(profileID),
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *TeamService) RemoveMember(slug string, userID uuid.UUID, callerProfile *models.PersonalProfile, memberID uuid.UUID) error {
	team, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	if err := s.requireTeamAuthority(team, userID, callerProfile); err != nil {
		return err
	}
	res := s.db.Where("id = ? AND team_id = ?", memberID, team.ID).Delete(&models.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TeamService) AddCoach(slug string, userID uuid.UUID, callerProfile *models.PersonalProfile, req *dto.AffiliateRequest) (*models.TeamCoach, error) {
	team, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if err := s.requireTeamAuthority(team, userID, callerProfile); err != nil {
		return nil, err
	}
	profileID, name, isCurrent, err := parseAffiliate(req)
	if err != nil {
		return nil, err
	}
	if err := s.ensureMentionedTeam(req.TeamName); err != nil {
		return nil, err
	}

	coach := models.TeamCoach{
		TeamID:         team.ID,
		ProfileID:      profileID,
		CoachName:      name,
		StartYear:      req.StartYear,
		StartMonth:     req.StartMonth,
		EndYear:        req.EndYear,
		EndMonth:       req.EndMonth,
		IsCurrent:      isCurrent,
		ApprovalStatus: affiliateDefaultStatus(profileID),
	}
	if err := s.db.Create(&coach).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}

func (s *TeamService) RemoveCoach(slug string, userID uuid.UUID, callerProfile *models.PersonalProfile, coachID uuid.UUID) error {
	team, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	if err := s.requireTeamAuthority(team, userID, callerProfile); err != nil {
		return err
	}
	res := s.db.Where("id = ? AND team_id = ?", coachID, team.ID).Delete(&models.TeamCoach{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Members returns a team's member rows joined with profile info.
// approvedOnly is the public view; editors see every row.
func (s *TeamService) Members(teamID uuid.UUID, approvedOnly bool) ([]dto.AffiliateView, error) {
	return s.affiliates(teamID, "team_members", "member_name", approvedOnly)
}

func (s *TeamService) Coaches(teamID uuid.UUID, approvedOnly bool) ([]dto.AffiliateView, error) {
	return s.affiliates(teamID, "team_coaches", "coach_name", approvedOnly)
}

func (s *TeamService) affiliates(teamID uuid.UUID, table, nameCol string, approvedOnly bool) ([]dto.AffiliateView, error) {
	type row struct {
		ID             uuid.UUID
		ProfileID      *uuid.UUID
		FreeName       *string
		ProfileName    *string
		Slug           *string
		PhotoURL       *string
		StartYear      *int
		StartMonth     *int
		EndYear        *int
		EndMonth       *int
		IsCurrent      bool
		ApprovalStatus string
	}

	tx := s.db.Table(table).
		Select(fmt.Sprintf(`%[1]s.id, %[1]s.profile_id, %[1]s.%[2]s AS free_name,
			personal_profiles.name AS profile_name, personal_profiles.slug,
			personal_profiles.photo_url,
			%[1]s.start_year, %[1]s.start_month, %[1]s.end_year, %[1]s.end_month,
			%[1]s.is_current, %[1]s.approval_status`, table, nameCol)).
		Joins(fmt.Sprintf("LEFT JOIN personal_profiles ON %s.profile_id = personal_profiles.id", table)).
		Where(table+".team_id = ?", teamID)
	if approvedOnly {
		tx = tx.Where(table+".approval_status = ?", models.ApprovalApproved)
	}

	var rows []row
	if err := tx.Order(table + ".created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]dto.AffiliateView, 0, len(rows))
	for _, r := range rows {
		v := dto.AffiliateView{
			ID:             r.ID.String(),
			Slug:           r.Slug,
			PhotoURL:       r.PhotoURL,
			StartYear:      r.StartYear,
			StartMonth:     r.StartMonth,
			EndYear:        r.EndYear,
			EndMonth:       r.EndMonth,
			IsCurrent:      r.IsCurrent,
			ApprovalStatus: r.ApprovalStatus,
		}
		if r.ProfileID != nil {
			id := r.ProfileID.String()
			v.ProfileID = &id
		}
		switch {
		case r.ProfileName != nil:
			v.DisplayName = *r.ProfileName
		case r.FreeName != nil:
			v.DisplayName = *r.FreeName
		}
		views = append(views, v)
	}
	return views, nil
}

// ensureMentionedTeam registers a team named in passing on an affiliate
// row, spawning a stub when the name is unknown. Blank means no mention.
func (s *TeamService) ensureMentionedTeam(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	_, err := s.GetOrCreateStub(name)
	return err
}

// SelfAffiliate records the caller's own membership or coaching role on a
// team named by text, creating a stub first when the name is unregistered.
// Self-added rows start approved: the person on the row is its author.
func (s *TeamService) SelfAffiliate(profile *models.PersonalProfile, req *dto.SelfTeamRequest) (*dto.SelfTeamResponse, error) {
	role := req.Role
	if role == "" {
		role = "member"
	}
	if role != "member" && role != "coach" {
		return nil, &ValidationError{Fields: map[string]string{"role": "must be member or coach"}}
	}

	team, err := s.GetOrCreateStub(req.TeamName)
	if err != nil {
		return nil, err
	}

	isCurrent := true
	if req.IsCurrent != nil {
		isCurrent = *req.IsCurrent
	}

	var rowID uuid.UUID
	if role == "coach" {
		row := models.TeamCoach{
			TeamID:         team.ID,
			ProfileID:      &profile.ID,
			CoachName:      &profile.Name,
			StartYear:      req.StartYear,
			StartMonth:     req.StartMonth,
			EndYear:        req.EndYear,
			EndMonth:       req.EndMonth,
			IsCurrent:      isCurrent,
			ApprovalStatus: models.ApprovalApproved,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, err
		}
		rowID = row.ID
	} else {
		row := models.TeamMember{
			TeamID:         team.ID,
			ProfileID:      &profile.ID,
			MemberName:     &profile.Name,
			StartYear:      req.StartYear,
			StartMonth:     req.StartMonth,
			EndYear:        req.EndYear,
			EndMonth:       req.EndMonth,
			IsCurrent:      isCurrent,
			ApprovalStatus: models.ApprovalApproved,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, err
		}
		rowID = row.ID
	}

	return &dto.SelfTeamResponse{
		TeamID:        team.ID.String(),
		TeamName:      team.Name,
		TeamSlug:      team.Slug,
		TeamStatus:    team.Status,
		AffiliationID: rowID.String(),
		Role:          role,
	}, nil
}

// SelfRemove deletes the caller's own affiliation row. Scoping the delete to
// their profile id means nobody can remove someone else's row through here.
func (s *TeamService) SelfRemove(profileID, rowID uuid.UUID, role string) error {
	var res *gorm.DB
	switch role {
	case "coach":
		res = s.db.Where("id = ? AND profile_id = ?", rowID, profileID).Delete(&models.TeamCoach{})
	case "member", "":
		res = s.db.Where("id = ? AND profile_id = ?", rowID, profileID).Delete(&models.TeamMember{})
	default:
		return &ValidationError{Fields: map[string]string{"role": "must be member or coach"}}
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AffiliationsForProfile lists the teams a profile belongs to, as member or
// coach. Approved rows only; this backs the public profile pages.
func (s *TeamService) AffiliationsForProfile(profileID uuid.UUID) ([]dto.ProfileAffiliation, error) {
	type row struct {
		TeamID     uuid.UUID
		TeamName   string
		TeamSlug   string
		TeamStatus string
		StartYear  *int
		StartMonth *int
		EndYear    *int
		EndMonth   *int
		IsCurrent  bool
	}

	collect := func(table, role string, out *[]dto.ProfileAffiliation) error {
		var rows []row
		err := s.db.Table(table).
			Select(fmt.Sprintf(`teams.id AS team_id, teams.name AS team_name,
				teams.slug AS team_slug, teams.status AS team_status,
				%[1]s.start_year, %[1]s.start_month, %[1]s.end_year, %[1]s.end_month,
				%[1]s.is_current`, table)).
			Joins(fmt.Sprintf("INNER JOIN teams ON %s.team_id = teams.id", table)).
			Where(table+".profile_id = ? AND "+table+".approval_status = ?", profileID, models.ApprovalApproved).
			Order(table + ".is_current DESC, " + table + ".start_year DESC NULLS LAST").
			Scan(&rows).Error
		if err != nil {
			return err
		}
		for _, r := range rows {
			*out = append(*out, dto.ProfileAffiliation{
				TeamID:     r.TeamID.String(),
				TeamName:   r.TeamName,
				TeamSlug:   r.TeamSlug,
				TeamStatus: r.TeamStatus,
				Role:       role,
				StartYear:  r.StartYear,
				StartMonth: r.StartMonth,
				EndYear:    r.EndYear,
				EndMonth:   r.EndMonth,
				IsCurrent:  r.IsCurrent,
			})
		}
		return nil
	}

	out := []dto.ProfileAffiliation{}
	if err := collect("team_members", "member", &out); err != nil {
		return nil, err
	}
	if err := collect("team_coaches", "coach", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- approval state machine ---

// PendingApprovals is a user's approval inbox: every pending membership and
// coach-role row naming their profile.
func (s *TeamService) PendingApprovals(profileID uuid.UUID) ([]dto.PendingApproval, error) {
	type row struct {
		ID        uuid.UUID
		TeamID    uuid.UUID
		TeamName  string
		TeamSlug  string
		IsCurrent bool
		CreatedAt time.Time
	}

	collect := func(table, kind string, out *[]dto.PendingApproval) error {
		var rows []row
		err := s.db.Table(table).
			Select(fmt.Sprintf(`%[1]s.id, teams.id AS team_id, teams.name AS team_name,
				teams.slug AS team_slug, %[1]s.is_current, %[1]s.created_at`, table)).
			Joins(fmt.Sprintf("INNER JOIN teams ON %s.team_id = teams.id", table)).
			Where(table+".profile_id = ? AND "+table+".approval_status = ?", profileID, models.ApprovalPending).
			Order(table + ".created_at ASC").
			Scan(&rows).Error
		if err != nil {
			return err
		}
		for _, r := range rows {
			*out = append(*out, dto.PendingApproval{
				ID:        r.ID.String(),
				Type:      kind,
				TeamID:    r.TeamID.String(),
				TeamName:  r.TeamName,
				TeamSlug:  r.TeamSlug,
				IsCurrent: r.IsCurrent,
				CreatedAt: r.CreatedAt.Format(time.RFC3339),
			})
		}
		return nil
	}

	out := []dto.PendingApproval{}
	if err := collect("team_members", dto.ApprovalTypeMembership, &out); err != nil {
		return nil, err
	}
	if err := collect("team_coaches", dto.ApprovalTypeCoach, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Decide transitions one affiliation row pending → approved/rejected.
// Authority and the pending check are folded into the UPDATE's WHERE: only
// the person whose profile is on the row may decide, and decided rows are
// terminal. A zero-row update is disambiguated afterwards into 404 (no such
// row), 403 (someone else's row), or conflict (already decided).
func (s *TeamService) Decide(rowID uuid.UUID, rowType string, callerProfileID uuid.UUID, approve bool) (string, error) {
	status := models.ApprovalRejected
	if approve {
		status = models.ApprovalApproved
	}

	var model interface{}
	switch rowType {
	case dto.ApprovalTypeMembership:
		model = &models.TeamMember{}
	case dto.ApprovalTypeCoach:
		model = &models.TeamCoach{}
	default:
		return "", &ValidationError{Fields: map[string]string{"type": "must be membership or coach"}}
	}

	res := s.db.Model(model).
		Where("id = ? AND profile_id = ? AND approval_status = ?",
			rowID, callerProfileID, models.ApprovalPending).
		Updates(map[string]interface{}{"approval_status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected > 0 {
		return status, nil
	}

	// Nothing updated: figure out which failure to report.
	type probe struct {
		ProfileID      *uuid.UUID
		ApprovalStatus string
	}
	var p probe
	err := s.db.Model(model).Select("profile_id, approval_status").Where("id = ?", rowID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if p.ProfileID == nil || *p.ProfileID != callerProfileID {
		return "", ErrForbidden
	}
	return "", ErrAlreadyDecided
}

// --- helpers ---

func parseAffiliate(req *dto.AffiliateRequest) (*uuid.UUID, *string, bool, error) {
	isCurrent := true
	if req.IsCurrent != nil {
		isCurrent = *req.IsCurrent
	}

	name := strings.TrimSpace(req.Name)
	if req.ProfileID != "" && name != "" {
		return nil, nil, false, &ValidationError{Fields: map[string]string{"profile_id": "provide a profile or a name, not both"}}
	}
	if req.ProfileID != "" {
		id, err := uuid.Parse(req.ProfileID)
		if err != nil {
			return nil, nil, false, &ValidationError{Fields: map[string]string{"profile_id": "invalid profile id"}}
		}
		return &id, nil, isCurrent, nil
	}
	if name == "" {
		return nil, nil, false, &ValidationError{Fields: map[string]string{"name": "provide a profile or a name"}}
	}
	if len(name) > 100 {
		return nil, nil, false, &ValidationError{Fields: map[string]string{"name": "name must be under 100 characters"}}
	}
	return nil, &name, isCurrent, nil
}

// Registered affiliates need the person's consent; name-only rows have
// nobody to ask and start approved.
func affiliateDefaultStatus(profileID *uuid.UUID) string {
	if profileID != nil {
		return models.ApprovalPending
	}
	return models.ApprovalApproved
}

func validateTeam(req *dto.TeamRequest, nameRequired bool) error {
	v := newValidationError()
	name := strings.TrimSpace(req.Name)
	if nameRequired {
		if len(name) < 2 {
			v.add("name", "team name must be at least 2 characters")
		}
		if len(name) > 100 {
			v.add("name", "team name must be under 100 characters")
		}
	}
	if len(req.Description) > 2000 {
		v.add("description", "must be under 2000 characters")
	}
	if req.VideoURL != "" && !validURL(req.VideoURL) {
		v.add("video_url", "invalid URL")
	}
	if len(req.Form) > 100 {
		v.add("form", "must be under 100 characters")
	}
	if len(req.LookingFor) > 500 {
		v.add("looking_for", "must be under 500 characters")
	}
	return v.orNil()
}
