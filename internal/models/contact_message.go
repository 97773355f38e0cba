package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipient kinds for contact messages.
const (
	RecipientPersonalProfile = "personal_profile"
	RecipientTeam            = "team"
)

// ContactMessage is the write-once audit record of a relayed message. It is
// inserted before the email is dispatched: delivery may degrade, history
// must not be lost.
type ContactMessage struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecipientType string    `gorm:"size:20;not null" json:"recipient_type"`
	RecipientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SenderUserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_user_id"`
	Subject       string    `gorm:"size:200;not null" json:"subject"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	CreatedAt     time.Time `json:"created_at"`

	Sender *User `gorm:"foreignKey:SenderUserID;constraint:OnDelete:CASCADE" json:"-"`
}
