package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRunSweep_SendsToProfilesAndTeamContacts(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	mail := &fakeMailer{}
	service := NewReminderService(db, mail, "https://comedyconnector.app")

	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "slug", "contact_email", "user_email"}).
			AddRow("Ana Keys", "ana-keys", "booking@example.com", "account@example.com").
			AddRow("Bo Diaz", "bo-diaz", nil, "bo@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_name", "team_slug", "name", "contact_email", "user_email"}).
			AddRow("Night Shift", "night-shift", "Ana Keys", nil, "account@example.com"))

	sent, failed := service.RunSweep()
	assert.Equal(t, 3, sent)
	assert.Equal(t, 0, failed)

	if assert.Len(t, mail.reminders, 3) {
		assert.Equal(t, "booking@example.com", mail.reminders[0].To)
		assert.Equal(t, "https://comedyconnector.app/performers/ana-keys", mail.reminders[0].ProfileURL)
		assert.Equal(t, "bo@example.com", mail.reminders[1].To)
		assert.Equal(t, "Night Shift", mail.reminders[2].TeamName)
		assert.Equal(t, "https://comedyconnector.app/teams/night-shift", mail.reminders[2].ProfileURL)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunSweep_CountsPerRecipientFailures(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	mail := &fakeMailer{fail: true}
	service := NewReminderService(db, mail, "https://comedyconnector.app")

	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "slug", "contact_email", "user_email"}).
			AddRow("Ana Keys", "ana-keys", nil, "account@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_name", "team_slug", "name", "contact_email", "user_email"}))

	sent, failed := service.RunSweep()
	assert.Equal(t, 0, sent)
	assert.Equal(t, 1, failed)
}
