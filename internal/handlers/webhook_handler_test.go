package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupWebhookApp(t *testing.T, secret string) (*fiber.App, sqlmock.Sqlmock) {
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

	app := fiber.New()
	handler := NewWebhookHandler(services.NewUserService(gormDB), secret)
	app.Post("/api/webhooks/identity-signup", handler.HandleIdentitySignup)
	return app, mock
}

func TestIdentitySignup_WrongSecretIsRejected(t *testing.T) {
	app, mock := setupWebhookApp(t, "s3cret")

	req := httptest.NewRequest("POST", "/api/webhooks/identity-signup",
		strings.NewReader(`{"user":{"id":"idp_1","email":"ana@example.com"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", "wrong")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentitySignup_UnconfiguredSecretIs404(t *testing.T) {
	app, mock := setupWebhookApp(t, "")

	req := httptest.NewRequest("POST", "/api/webhooks/identity-signup",
		strings.NewReader(`{"user":{"id":"idp_1","email":"ana@example.com"}}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentitySignup_ProvisionsUser(t *testing.T) {
	app, mock := setupWebhookApp(t, "s3cret")

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	req := httptest.NewRequest("POST", "/api/webhooks/identity-signup",
		strings.NewReader(`{"user":{"id":"idp_1","email":"ana@example.com"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", "s3cret")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentitySignup_MissingSubjectIsBadRequest(t *testing.T) {
	app, mock := setupWebhookApp(t, "s3cret")

	req := httptest.NewRequest("POST", "/api/webhooks/identity-signup",
		strings.NewReader(`{"user":{"email":"ana@example.com"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", "s3cret")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
