package models

import (
	"time"

	"github.com/google/uuid"
)

// Team statuses. A stub is an unclaimed placeholder created implicitly when
// a performer lists a team that is not registered yet; it becomes active at
// most once, when someone claims it or creates a team with the same name.
const (
	TeamStatusStub   = "stub"
	TeamStatusActive = "active"
)

type Team struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
	Name            string     `gorm:"size:100;not null" json:"name"`
	Slug            string     `gorm:"size:120;not null;uniqueIndex" json:"slug"`
	Status          string     `gorm:"size:10;not null;default:'stub'" json:"status"`
	PhotoURL        *string    `gorm:"size:500" json:"photo_url"`
	Description     *string    `gorm:"type:text" json:"description"`
	VideoURL        *string    `gorm:"size:500" json:"video_url"`
	// e.g. "Harold", "Montage", "Longform", "Shortform"
	Form                      *string    `gorm:"size:100" json:"form"`
	IsPracticeGroup           bool       `gorm:"not null;default:false" json:"is_practice_group"`
	OpenToNewMembers          bool       `gorm:"not null;default:false" json:"open_to_new_members"`
	OpenToBookOpeners         bool       `gorm:"not null;default:false" json:"open_to_book_openers"`
	SeekingCoach              bool       `gorm:"not null;default:false" json:"seeking_coach"`
	LookingFor                *string    `gorm:"size:500" json:"looking_for"`
	PrimaryContactProfileID   *uuid.UUID `gorm:"type:uuid" json:"primary_contact_profile_id,omitempty"`
	FreshnessRemindersEnabled bool       `gorm:"not null;default:true" json:"freshness_reminders_enabled"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`

	CreatedBy      *User            `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:SET NULL" json:"-"`
	PrimaryContact *PersonalProfile `gorm:"foreignKey:PrimaryContactProfileID;constraint:OnDelete:SET NULL" json:"-"`
}
