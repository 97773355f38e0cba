package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comedyconnector/backend/internal/mailer"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records sends and optionally fails them.
type fakeMailer struct {
	contacts  []mailer.ContactEmail
	reminders []mailer.ReminderEmail
	fail      bool
}

func (f *fakeMailer) SendContactMessage(e mailer.ContactEmail) error {
	f.contacts = append(f.contacts, e)
	if f.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (f *fakeMailer) SendFreshnessReminder(e mailer.ReminderEmail) error {
	f.reminders = append(f.reminders, e)
	if f.fail {
		return errors.New("smtp down")
	}
	return nil
}

func testSender() *models.User {
	return &models.User{ID: uuid.New(), IdentityID: "idp_1", Email: "sender@example.com"}
}

func TestContactSend_ProfileRecipientPrefersContactEmail(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	mail := &fakeMailer{}
	service := NewContactService(db, mail)

	profileID := uuid.New()
	contactEmail := "booking@example.com"
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "contact_email", "user_email"}).
			AddRow("Ana Keys", contactEmail, "account@example.com"))
	mock.ExpectQuery(`INSERT INTO "contact_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	err := service.Send(testSender(), models.RecipientPersonalProfile, profileID,
		"Booking inquiry", "We would love to have you open our Friday show.")
	require.NoError(t, err)

	require.Len(t, mail.contacts, 1)
	assert.Equal(t, contactEmail, mail.contacts[0].To)
	assert.Equal(t, "sender@example.com", mail.contacts[0].ReplyTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactSend_FallsBackToAccountEmail(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	mail := &fakeMailer{}
	service := NewContactService(db, mail)

	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "contact_email", "user_email"}).
			AddRow("Bo Diaz", nil, "account@example.com"))
	mock.ExpectQuery(`INSERT INTO "contact_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	err := service.Send(testSender(), models.RecipientPersonalProfile, uuid.New(),
		"Hello", "Saw your set last week, want to grab coffee and talk teams?")
	require.NoError(t, err)
	require.Len(t, mail.contacts, 1)
	assert.Equal(t, "account@example.com", mail.contacts[0].To)
}

func TestContactSend_DeliveryFailureIsSwallowed(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	mail := &fakeMailer{fail: true}
	service := NewContactService(db, mail)

	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "contact_email", "user_email"}).
			AddRow("Ana Keys", nil, "account@example.com"))
	mock.ExpectQuery(`INSERT INTO "contact_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	// The audit row is the durable record; a failed send is still a 200.
	err := service.Send(testSender(), models.RecipientPersonalProfile, uuid.New(),
		"Hello", "This message will be recorded even though email is down.")
	assert.NoError(t, err)
	assert.Len(t, mail.contacts, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactSend_TeamWithoutPrimaryContact(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	mail := &fakeMailer{}
	service := NewContactService(db, mail)

	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "primary_contact_profile_id"}).
			AddRow(uuid.New().String(), "Night Shift", nil))

	err := service.Send(testSender(), models.RecipientTeam, uuid.New(),
		"Booking", "Would your team like to headline our showcase next month?")
	assert.ErrorIs(t, err, ErrNoPrimaryContact)

	// No audit row and no email for an undeliverable recipient.
	assert.Empty(t, mail.contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactSend_TeamRoutesThroughPrimaryContact(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	mail := &fakeMailer{}
	service := NewContactService(db, mail)

	contactProfileID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "primary_contact_profile_id"}).
			AddRow(uuid.New().String(), "Night Shift", contactProfileID.String()))
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "contact_email", "user_email"}).
			AddRow("Ana Keys", "ana@example.com", "account@example.com"))
	mock.ExpectQuery(`INSERT INTO "contact_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	err := service.Send(testSender(), models.RecipientTeam, uuid.New(),
		"Booking", "Would your team like to headline our showcase next month?")
	require.NoError(t, err)
	require.Len(t, mail.contacts, 1)
	assert.Equal(t, "ana@example.com", mail.contacts[0].To)
	// The email presents the team, not the person behind it.
	assert.Equal(t, "Night Shift", mail.contacts[0].RecipientName)
}

func TestContactSend_Validation(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewContactService(db, &fakeMailer{})

	tests := []struct {
		name          string
		recipientType string
		subject       string
		message       string
		field         string
	}{
		{"unknown recipient type", "venue", "Hi", "A perfectly reasonable message.", "recipientType"},
		{"blank subject", models.RecipientPersonalProfile, "   ", "A perfectly reasonable message.", "subject"},
		{"short message", models.RecipientPersonalProfile, "Hi", "too short", "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Send(testSender(), tt.recipientType, uuid.New(), tt.subject, tt.message)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}
}
