package dto

type TeamRequest struct {
	Name                      string `json:"name"`
	Description               string `json:"description"`
	VideoURL                  string `json:"video_url"`
	Form                      string `json:"form"`
	IsPracticeGroup           bool   `json:"is_practice_group"`
	OpenToNewMembers          bool   `json:"open_to_new_members"`
	OpenToBookOpeners         bool   `json:"open_to_book_openers"`
	SeekingCoach              bool   `json:"seeking_coach"`
	LookingFor                string `json:"looking_for"`
	PrimaryContactProfileID   string `json:"primary_contact_profile_id"`
	FreshnessRemindersEnabled *bool  `json:"freshness_reminders_enabled"`
}

// AffiliateRequest adds a member or coach to a team. Exactly one of
// ProfileID (registered, starts pending) or Name (free-text, starts
// approved) must be set. TeamName optionally records another team the
// person mentioned; an unregistered name spawns a stub.
type AffiliateRequest struct {
	ProfileID  string `json:"profile_id"`
	Name       string `json:"name"`
	TeamName   string `json:"team_name"`
	StartYear  *int   `json:"start_year"`
	StartMonth *int   `json:"start_month"`
	EndYear    *int   `json:"end_year"`
	EndMonth   *int   `json:"end_month"`
	IsCurrent  *bool  `json:"is_current"`
}

// SelfTeamRequest lists the caller on a team by name, from their own
// profile. Unregistered names spawn stub teams.
type SelfTeamRequest struct {
	TeamName   string `json:"team_name"`
	Role       string `json:"role"` // member (default) | coach
	StartYear  *int   `json:"start_year"`
	StartMonth *int   `json:"start_month"`
	EndYear    *int   `json:"end_year"`
	EndMonth   *int   `json:"end_month"`
	IsCurrent  *bool  `json:"is_current"`
}

// SelfTeamResponse pairs the (possibly just-created) team with the caller's
// new affiliation row.
type SelfTeamResponse struct {
	TeamID        string `json:"team_id"`
	TeamName      string `json:"team_name"`
	TeamSlug      string `json:"team_slug"`
	TeamStatus    string `json:"team_status"`
	AffiliationID string `json:"affiliation_id"`
	Role          string `json:"role"`
}

// ProfileAffiliation is a team a profile belongs to (as member or coach),
// shown on public profile pages. Approved rows only.
type ProfileAffiliation struct {
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	TeamSlug   string `json:"team_slug"`
	TeamStatus string `json:"team_status"`
	Role       string `json:"role"` // member | coach
	StartYear  *int   `json:"start_year"`
	StartMonth *int   `json:"start_month"`
	EndYear    *int   `json:"end_year"`
	EndMonth   *int   `json:"end_month"`
	IsCurrent  bool   `json:"is_current"`
}

// AffiliateView is a member/coach row joined with its profile, for team
// pages and the edit surface.
type AffiliateView struct {
	ID             string  `json:"id"`
	ProfileID      *string `json:"profile_id"`
	DisplayName    string  `json:"display_name"`
	Slug           *string `json:"slug"`
	PhotoURL       *string `json:"photo_url"`
	StartYear      *int    `json:"start_year"`
	StartMonth     *int    `json:"start_month"`
	EndYear        *int    `json:"end_year"`
	EndMonth       *int    `json:"end_month"`
	IsCurrent      bool    `json:"is_current"`
	ApprovalStatus string  `json:"approval_status"`
}
