package models

import (
	"time"

	"github.com/google/uuid"
)

// Approval lifecycle for affiliation rows (members and coaches alike).
// pending → approved | rejected; both outcomes are terminal.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// TeamMember links a team to a performer. Exactly one of ProfileID (a
// registered profile, row starts pending until that person consents) or
// MemberName (free-text, no consent needed, row starts approved) is set.
type TeamMember struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeamID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"team_id"`
	ProfileID      *uuid.UUID `gorm:"type:uuid;index" json:"profile_id,omitempty"`
	MemberName     *string    `gorm:"size:100" json:"member_name,omitempty"`
	StartYear      *int       `json:"start_year,omitempty"`
	StartMonth     *int       `json:"start_month,omitempty"`
	EndYear        *int       `json:"end_year,omitempty"`
	EndMonth       *int       `json:"end_month,omitempty"`
	IsCurrent      bool       `gorm:"not null;default:true" json:"is_current"`
	ApprovalStatus string     `gorm:"size:10;not null;default:'pending';index" json:"approval_status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Team    *Team            `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"-"`
	Profile *PersonalProfile `gorm:"foreignKey:ProfileID;constraint:OnDelete:SET NULL" json:"-"`
}
