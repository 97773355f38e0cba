package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/comedyconnector/backend/internal/mailer"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService relays messages between members. The audit row is written
// before the email goes out and the send is best-effort: delivery may
// degrade, message history must not be lost.
type ContactService struct {
	db   *gorm.DB
	mail mailer.Mailer
}

func NewContactService(db *gorm.DB, mail mailer.Mailer) *ContactService {
	return &ContactService{db: db, mail: mail}
}

// recipient is a resolved delivery target.
type recipient struct {
	email string
	name  string
}

// Send validates, resolves the recipient's address, persists the audit
// record, then dispatches the email.
func (s *ContactService) Send(sender *models.User, recipientType string, recipientID uuid.UUID, subject, message string) error {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if err := validateContact(recipientType, subject, message); err != nil {
		return err
	}

	var (
		rcpt recipient
		err  error
	)
	switch recipientType {
	case models.RecipientPersonalProfile:
		rcpt, err = s.resolveProfileRecipient(recipientID)
	case models.RecipientTeam:
		rcpt, err = s.resolveTeamRecipient(recipientID)
	}
	if err != nil {
		return err
	}

	audit := models.ContactMessage{
		RecipientType: recipientType,
		RecipientID:   recipientID,
		SenderUserID:  sender.ID,
		Subject:       subject,
		Message:       message,
	}
	if err := s.db.Create(&audit).Error; err != nil {
		return fmt.Errorf("failed to record contact message: %w", err)
	}

	// Best-effort from here: the audit row is the durable source of truth.
	if err := s.mail.SendContactMessage(mailer.ContactEmail{
		To:            rcpt.email,
		ReplyTo:       sender.Email,
		SenderName:    sender.Email,
		RecipientName: rcpt.name,
		Subject:       subject,
		Message:       message,
	}); err != nil {
		slog.Error("contact email delivery failed",
			"action", "contact_send",
			"recipient_type", recipientType,
			"message_id", audit.ID.String(),
			"error", err)
	}
	return nil
}

// resolveProfileRecipient prefers the profile's explicit contact email and
// falls back to the owning account's email.
func (s *ContactService) resolveProfileRecipient(profileID uuid.UUID) (recipient, error) {
	var row struct {
		Name         string
		ContactEmail *string
		UserEmail    string
	}
	err := s.db.Table("personal_profiles").
		Select("personal_profiles.name, personal_profiles.contact_email, users.email AS user_email").
		Joins("INNER JOIN users ON personal_profiles.user_id = users.id").
		Where("personal_profiles.id = ?", profileID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return recipient{}, ErrNotFound
	}
	if err != nil {
		return recipient{}, err
	}

	email := row.UserEmail
	if row.ContactEmail != nil && *row.ContactEmail != "" {
		email = *row.ContactEmail
	}
	if email == "" {
		return recipient{}, ErrNoContactAddress
	}
	return recipient{email: email, name: row.Name}, nil
}

// resolveTeamRecipient routes through the team's primary contact profile.
// A team with no primary contact cannot receive messages.
func (s *ContactService) resolveTeamRecipient(teamID uuid.UUID) (recipient, error) {
	var team models.Team
	err := s.db.Select("id, name, primary_contact_profile_id").Where("id = ?", teamID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return recipient{}, ErrNotFound
	}
	if err != nil {
		return recipient{}, err
	}
	if team.PrimaryContactProfileID == nil {
		return recipient{}, ErrNoPrimaryContact
	}

	rcpt, err := s.resolveProfileRecipient(*team.PrimaryContactProfileID)
	if err != nil {
		return recipient{}, err
	}
	rcpt.name = team.Name
	return rcpt, nil
}

func validateContact(recipientType, subject, message string) error {
	v := newValidationError()
	if recipientType != models.RecipientPersonalProfile && recipientType != models.RecipientTeam {
		v.add("recipientType", "must be personal_profile or team")
	}
	if subject == "" {
		v.add("subject", "subject is required")
	}
	if len(subject) > 200 {
		v.add("subject", "subject must be under 200 characters")
	}
	if len(message) < 10 {
		v.add("message", "message must be at least 10 characters")
	}
	if len(message) > 5000 {
		v.add("message", "message must be under 5000 characters")
	}
	return v.orNil()
}
