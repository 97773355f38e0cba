package dto

// SocialLinks carries the enumerated platform keys. Empty strings are
// treated as unset and dropped before storage.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Website   string `json:"website,omitempty"`
}

type PersonalProfileRequest struct {
	Name                      string      `json:"name"`
	Bio                       string      `json:"bio"`
	Training                  string      `json:"training"`
	LookingFor                string      `json:"looking_for"`
	ContactEmail              string      `json:"contact_email"`
	PhotoURL                  string      `json:"photo_url"`
	SocialLinks               SocialLinks `json:"social_links"`
	FreshnessRemindersEnabled *bool       `json:"freshness_reminders_enabled"`
}

type PerformerProfileRequest struct {
	VideoHighlights   []string `json:"video_highlights"`
	OpenToBookOpeners bool     `json:"open_to_book_openers"`
	LookingForTeam    bool     `json:"looking_for_team"`
	LookingForCoach   bool     `json:"looking_for_coach"`
	LookingFor        string   `json:"looking_for"`
}

type CoachProfileRequest struct {
	CoachingBio           string `json:"coaching_bio"`
	AvailableForPrivate   bool   `json:"available_for_private"`
	AvailableForTeams     bool   `json:"available_for_teams"`
	AvailableForWorkshops bool   `json:"available_for_workshops"`
	Availability          string `json:"availability"`
}
