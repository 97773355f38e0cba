package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comedyconnector/backend/internal/mailer"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type nullMailer struct{}

func (nullMailer) SendContactMessage(mailer.ContactEmail) error { return nil }

func (nullMailer) SendFreshnessReminder(mailer.ReminderEmail) error { return nil }

func setupContactApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       db,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	handler := NewContactHandler(services.NewContactService(gormDB, nullMailer{}))
	app := fiber.New()
	app.Post("/api/contact", func(c *fiber.Ctx) error {
		c.Locals("current_user", &models.User{ID: uuid.New(), Email: "sender@example.com"})
		return c.Next()
	}, handler.Send)
	return app, mock
}

func TestContact_SuccessBodyIsOkTrue(t *testing.T) {
	app, mock := setupContactApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "contact_email", "user_email"}).
			AddRow("Ana Keys", nil, "ana@example.com"))
	mock.ExpectQuery(`INSERT INTO "contact_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	body := `{"recipientId":"` + uuid.New().String() + `","recipientType":"personal_profile",` +
		`"subject":"Booking","message":"We would love to have you open our Friday show."}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContact_TeamWithoutPrimaryContactIs422(t *testing.T) {
	app, mock := setupContactApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "primary_contact_profile_id"}).
			AddRow(uuid.New().String(), "Night Shift", nil))

	body := `{"recipientId":"` + uuid.New().String() + `","recipientType":"team",` +
		`"subject":"Booking","message":"Would your team like to headline our showcase?"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
