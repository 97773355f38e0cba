package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comedyconnector/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUpsertPersonal_Validation(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewProfileService(db)

	tests := []struct {
		name  string
		req   dto.PersonalProfileRequest
		field string
	}{
		{"short name", dto.PersonalProfileRequest{Name: "A"}, "name"},
		{"whitespace name", dto.PersonalProfileRequest{Name: "  x  "}, "name"},
		{"bad contact email", dto.PersonalProfileRequest{Name: "Ana Keys", ContactEmail: "not-an-email"}, "contact_email"},
		{"bad photo url", dto.PersonalProfileRequest{Name: "Ana Keys", PhotoURL: "ftp://nope"}, "photo_url"},
		{"bad social link", dto.PersonalProfileRequest{
			Name:        "Ana Keys",
			SocialLinks: dto.SocialLinks{Instagram: "instagram.com/ana"},
		}, "social_links.instagram"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpsertPersonal(uuid.New(), &tt.req)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}
}

func TestUpsertPerformer_Validation(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewProfileService(db)

	_, err := service.UpsertPerformer(uuid.New(), &dto.PerformerProfileRequest{
		VideoHighlights: []string{"https://a.example", "https://b.example", "https://c.example",
			"https://d.example", "https://e.example", "https://f.example"},
	})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "video_highlights")
}

func TestUpsertPersonal_SlugRaceRetriesWithNextSuffix(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewProfileService(db)

	userID := uuid.New()
	rivalID := uuid.New()
	profileID := uuid.New()

	// No existing profile for the caller, and the base slug looks free.
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WithArgs(userID).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WithArgs("ana-keys").
		WillReturnError(gorm.ErrRecordNotFound)

	// A rival grabs the slug between the lookup and the write.
	mock.ExpectQuery(`INSERT INTO "personal_profiles"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	// Second attempt: the base slug is now taken, the -2 candidate is free.
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WithArgs("ana-keys").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rivalID.String()))
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).
		WithArgs("ana-keys-2").
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`INSERT INTO "personal_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(profileID.String()))

	profile, err := service.UpsertPersonal(userID, &dto.PersonalProfileRequest{Name: "Ana Keys"})
	require.NoError(t, err)
	assert.Equal(t, "ana-keys-2", profile.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchByName_ShortQueryDoesNotHitTheDatabase(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewProfileService(db)

	hits, err := service.SearchByName(" a ", "performer")
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}
