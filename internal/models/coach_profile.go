package models

import (
	"time"

	"github.com/google/uuid"
)

// CoachProfile is the optional coaching extension of a PersonalProfile.
type CoachProfile struct {
	ID                    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProfileID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"profile_id"`
	CoachingBio           *string   `gorm:"type:text" json:"coaching_bio"`
	AvailableForPrivate   bool      `gorm:"not null;default:false" json:"available_for_private"`
	AvailableForTeams     bool      `gorm:"not null;default:false" json:"available_for_teams"`
	AvailableForWorkshops bool      `gorm:"not null;default:false" json:"available_for_workshops"`
	Availability          *string   `gorm:"size:500" json:"availability"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`

	Profile *PersonalProfile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}
