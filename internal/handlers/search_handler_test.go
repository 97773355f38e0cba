package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupSearchApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
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
	handler := NewSearchHandler(services.NewSearchService(gormDB))
	app.Get("/api/search", handler.Search)
	return app, mock
}

func TestSearch_MalformedCursorIsRejectedBeforeQuerying(t *testing.T) {
	app, mock := setupSearchApp(t)

	// not base64; valid base64 but not JSON; JSON with no id; wrong rank type
	for _, cursor := range []string{"!!!", "bm90LWpzb24", "e30", "eyJyYW5rIjoiaGkifQ"} {
		req := httptest.NewRequest("GET", "/api/search?type=performers&cursor="+cursor, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "cursor %q", cursor)
	}

	// None of those requests may have reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_UnknownTypeIsRejected(t *testing.T) {
	app, mock := setupSearchApp(t)

	req := httptest.NewRequest("GET", "/api/search?type=venues", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_NextCursorRoundTrips(t *testing.T) {
	app, mock := setupSearchApp(t)

	// A full page plus one produces an opaque nextCursor.
	rows := sqlmock.NewRows([]string{
		"id", "name", "slug", "photo_url", "bio",
		"open_to_book_openers", "looking_for_team", "looking_for_coach", "rank",
	})
	var lastID string
	for i := 0; i <= services.PageSize; i++ {
		id := uuid.New().String()
		if i == services.PageSize-1 {
			lastID = id
		}
		rows.AddRow(id, "Performer", "performer", nil, nil, false, false, false, 0.0)
	}
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/search?type=performers", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var page struct {
		Results    []json.RawMessage `json:"results"`
		NextCursor *string           `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Len(t, page.Results, services.PageSize)
	require.NotNil(t, page.NextCursor)

	// The token decodes back to the (rank, id) of the last returned row.
	cursor, err := decodeCursor(*page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, lastID, cursor.ID)
	assert.Equal(t, 0.0, cursor.Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_ShortPageHasNullCursor(t *testing.T) {
	app, mock := setupSearchApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "slug", "photo_url", "bio",
			"open_to_book_openers", "looking_for_team", "looking_for_coach", "rank",
		}).AddRow(uuid.New().String(), "Ana Keys", "ana-keys", nil, nil, false, false, false, 0.0))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/search?type=performers", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var page struct {
		Results    []dto.SearchResult `json:"results"`
		NextCursor *string            `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(body, &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, "ana-keys", page.Results[0].Slug)
	assert.Nil(t, page.NextCursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}
