package models

import (
	"time"

	"github.com/google/uuid"
)

// User links an external identity-provider subject to the app database.
// Created idempotently (keyed on IdentityID) by the signup webhook or on
// first authenticated request; only the email is ever updated afterwards.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	IdentityID string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
