package services

import (
	"log/slog"
	"time"

	"github.com/comedyconnector/backend/internal/mailer"
	"github.com/comedyconnector/backend/internal/models"
	"gorm.io/gorm"
)

// ReminderService sends the monthly "keep your profile fresh" sweep to
// profiles and active-team primary contacts that have reminders enabled.
type ReminderService struct {
	db      *gorm.DB
	mail    mailer.Mailer
	siteURL string
}

func NewReminderService(db *gorm.DB, mail mailer.Mailer, siteURL string) *ReminderService {
	return &ReminderService{db: db, mail: mail, siteURL: siteURL}
}

// Start runs a daily ticker and fires the sweep on the first day of each
// month. Close done to stop.
func (s *ReminderService) Start(done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		var lastRun time.Time
		for {
			select {
			case <-ticker.C:
				now := time.Now().UTC()
				if now.Day() != 1 {
					continue
				}
				if lastRun.Year() == now.Year() && lastRun.Month() == now.Month() {
					continue
				}
				sent, failed := s.RunSweep()
				lastRun = now
				slog.Info("freshness reminders sent", "sent", sent, "failed", failed)
			case <-done:
				return
			}
		}
	}()
}

// RunSweep sends all due reminders once. Per-recipient failures are logged
// and counted, never fatal.
func (s *ReminderService) RunSweep() (sent, failed int) {
	type profileRow struct {
		Name         string
		Slug         string
		ContactEmail *string
		UserEmail    string
	}

	var performers []profileRow
	err := s.db.Table("personal_profiles").
		Select("personal_profiles.name, personal_profiles.slug, personal_profiles.contact_email, users.email AS user_email").
		Joins("INNER JOIN users ON personal_profiles.user_id = users.id").
		Where("personal_profiles.freshness_reminders_enabled = TRUE").
		Scan(&performers).Error
	if err != nil {
		slog.Error("reminder sweep: profile query failed", "error", err)
	}
	for _, p := range performers {
		to := p.UserEmail
		if p.ContactEmail != nil && *p.ContactEmail != "" {
			to = *p.ContactEmail
		}
		if to == "" {
			continue
		}
		if err := s.mail.SendFreshnessReminder(mailer.ReminderEmail{
			To:         to,
			Name:       p.Name,
			ProfileURL: s.siteURL + "/performers/" + p.Slug,
		}); err != nil {
			slog.Error("profile reminder failed", "slug", p.Slug, "error", err)
			failed++
			continue
		}
		sent++
	}

	type teamRow struct {
		TeamName     string
		TeamSlug     string
		Name         string
		ContactEmail *string
		UserEmail    string
	}

	var teams []teamRow
	err = s.db.Table("teams").
		Select(`teams.name AS team_name, teams.slug AS team_slug,
			personal_profiles.name, personal_profiles.contact_email, users.email AS user_email`).
		Joins("INNER JOIN personal_profiles ON teams.primary_contact_profile_id = personal_profiles.id").
		Joins("INNER JOIN users ON personal_profiles.user_id = users.id").
		Where("teams.freshness_reminders_enabled = TRUE AND teams.status = ?", models.TeamStatusActive).
		Scan(&teams).Error
	if err != nil {
		slog.Error("reminder sweep: team query failed", "error", err)
	}
	for _, t := range teams {
		to := t.UserEmail
		if t.ContactEmail != nil && *t.ContactEmail != "" {
			to = *t.ContactEmail
		}
		if to == "" {
			continue
		}
		if err := s.mail.SendFreshnessReminder(mailer.ReminderEmail{
			To:         to,
			Name:       t.Name,
			TeamName:   t.TeamName,
			ProfileURL: s.siteURL + "/teams/" + t.TeamSlug,
		}); err != nil {
			slog.Error("team reminder failed", "slug", t.TeamSlug, "error", err)
			failed++
			continue
		}
		sent++
	}

	return sent, failed
}
