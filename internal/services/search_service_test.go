package services

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comedyconnector/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "slug", "photo_url", "bio",
		"open_to_book_openers", "looking_for_team", "looking_for_coach", "rank",
	})
}

func TestPerformers_ShortPageHasNoCursor(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewSearchService(db)

	rows := performerRows().
		AddRow(uuid.New().String(), "Ana Keys", "ana-keys", nil, nil, true, false, false, 0.0).
		AddRow(uuid.New().String(), "Bo Diaz", "bo-diaz", nil, nil, false, true, false, 0.0)
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).WillReturnRows(rows)

	resp, err := service.Performers("", dto.SearchFilters{}, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Results, 2)
	assert.Nil(t, resp.NextCursor)
	assert.Equal(t, "Ana Keys", resp.Results[0].Name)
	require.NotNil(t, resp.Results[0].OpenToBookOpeners)
	assert.True(t, *resp.Results[0].OpenToBookOpeners)
	// coach and team fields stay absent on the performer view
	assert.Nil(t, resp.Results[0].AvailableForPrivate)
	assert.Nil(t, resp.Results[0].OpenToNewMembers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPerformers_OverfetchedPageYieldsCursorFromLastRow(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewSearchService(db)

	// PageSize+1 rows back means there is a next page; the cursor must be
	// the (rank, id) of the last row actually returned, not the extra one.
	rows := performerRows()
	ids := make([]string, PageSize+1)
	for i := range ids {
		ids[i] = uuid.New().String()
		rows.AddRow(ids[i], fmt.Sprintf("Performer %d", i), fmt.Sprintf("performer-%d", i),
			nil, nil, false, false, false, float64(PageSize+1-i))
	}
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).WillReturnRows(rows)

	resp, err := service.Performers("harold", dto.SearchFilters{}, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Results, PageSize)
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, ids[PageSize-1], resp.NextCursor.ID)
	assert.Equal(t, float64(2), resp.NextCursor.Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPerformers_ExactPageSizeHasNoCursor(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewSearchService(db)

	rows := performerRows()
	for i := 0; i < PageSize; i++ {
		rows.AddRow(uuid.New().String(), fmt.Sprintf("Performer %d", i), fmt.Sprintf("p-%d", i),
			nil, nil, false, false, false, 0.0)
	}
	mock.ExpectQuery(`SELECT (.+) FROM "personal_profiles"`).WillReturnRows(rows)

	resp, err := service.Performers("", dto.SearchFilters{}, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Results, PageSize)
	assert.Nil(t, resp.NextCursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeams_BlankQueryCursorKeepsEligibilityAndBound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewSearchService(db)

	cursorID := uuid.New().String()
	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WithArgs("active", "approved", 0.0, cursorID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "slug", "photo_url", "bio", "form", "status",
			"open_to_new_members", "seeking_coach", "rank",
		}).AddRow(uuid.New().String(), "Night Shift", "night-shift", nil, nil,
			"Harold", "active", true, false, 0.0))

	resp, err := service.Teams("", dto.SearchFilters{}, &dto.SearchCursor{Rank: 0, ID: cursorID})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Night Shift", resp.Results[0].Name)
	assert.Equal(t, "active", resp.Results[0].Status)
	require.NotNil(t, resp.Results[0].Form)
	assert.Equal(t, "Harold", *resp.Results[0].Form)
	assert.Nil(t, resp.NextCursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCoaches_RankedQueryPassesQueryText(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	service := NewSearchService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "coach_profiles"`).
		WithArgs("longform", "longform").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "slug", "photo_url", "bio",
			"available_for_private", "available_for_teams", "available_for_workshops", "rank",
		}).AddRow(uuid.New().String(), "Drew Ellis", "drew-ellis", nil, "Longform coach",
			true, true, false, 0.61))

	resp, err := service.Coaches("longform", dto.SearchFilters{}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 0.61, resp.Results[0].Rank)
	require.NotNil(t, resp.Results[0].AvailableForPrivate)
	assert.True(t, *resp.Results[0].AvailableForPrivate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
