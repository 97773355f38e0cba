package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PersonalProfile is the public identity of a community member. One per user.
// The slug is regenerated whenever the name changes and is unique across all
// profiles (enforced by the index; see services.ProfileService for the
// conflict-retry loop).
//
// SocialLinks holds the known platform keys only: instagram, tiktok,
// facebook, twitter, youtube, website. Empty values are dropped on write so
// "unset" is the absence of the key.
type PersonalProfile struct {
	ID                        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID                    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name                      string         `gorm:"size:100;not null" json:"name"`
	Slug                      string         `gorm:"size:120;not null;uniqueIndex" json:"slug"`
	PhotoURL                  *string        `gorm:"size:500" json:"photo_url"`
	SocialLinks               datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"social_links"`
	Bio                       *string        `gorm:"type:text" json:"bio"`
	Training                  *string        `gorm:"type:text" json:"training"`
	LookingFor                *string        `gorm:"size:500" json:"looking_for"`
	ContactEmail              *string        `gorm:"size:255" json:"contact_email,omitempty"`
	FreshnessRemindersEnabled bool           `gorm:"not null;default:true" json:"freshness_reminders_enabled"`
	CreatedAt                 time.Time      `json:"created_at"`
	UpdatedAt                 time.Time      `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
