package dto

import "encoding/json"

// PublicProfile is the anonymous-safe projection of a personal profile. It
// deliberately omits the contact email (the relay never exposes addresses)
// and the reminder preference.
type PublicProfile struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	PhotoURL    *string         `json:"photo_url"`
	SocialLinks json.RawMessage `json:"social_links"`
	Bio         *string         `json:"bio"`
	Training    *string         `json:"training"`
	LookingFor  *string         `json:"looking_for"`
}

type PerformerDetails struct {
	VideoHighlights   json.RawMessage `json:"video_highlights"`
	OpenToBookOpeners bool            `json:"open_to_book_openers"`
	LookingForTeam    bool            `json:"looking_for_team"`
	LookingForCoach   bool            `json:"looking_for_coach"`
	LookingFor        *string         `json:"looking_for"`
}

type CoachDetails struct {
	CoachingBio           *string `json:"coaching_bio"`
	AvailableForPrivate   bool    `json:"available_for_private"`
	AvailableForTeams     bool    `json:"available_for_teams"`
	AvailableForWorkshops bool    `json:"available_for_workshops"`
	Availability          *string `json:"availability"`
}

// PerformerPage and CoachPage are the public profile pages: the shared
// profile, the relevant extension, and approved team affiliations.
type PerformerPage struct {
	Profile   PublicProfile        `json:"profile"`
	Performer PerformerDetails     `json:"performer"`
	Teams     []ProfileAffiliation `json:"teams"`
}

type CoachPage struct {
	Profile PublicProfile        `json:"profile"`
	Coach   CoachDetails         `json:"coach"`
	Teams   []ProfileAffiliation `json:"teams"`
}
