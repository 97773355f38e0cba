package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PerformerProfile is the optional performer extension of a PersonalProfile.
// Its presence (not a type tag) is what makes someone a performer; a profile
// may carry both performer and coach extensions at once.
type PerformerProfile struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProfileID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"profile_id"`
	VideoHighlights   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"video_highlights"`
	OpenToBookOpeners bool           `gorm:"not null;default:false" json:"open_to_book_openers"`
	LookingForTeam    bool           `gorm:"not null;default:false" json:"looking_for_team"`
	LookingForCoach   bool           `gorm:"not null;default:false" json:"looking_for_coach"`
	LookingFor        *string        `gorm:"size:500" json:"looking_for"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`

	Profile *PersonalProfile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}
