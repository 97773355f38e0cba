package services

import (
	"fmt"
	"strings"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageSize is the fixed search page size. Each query fetches PageSize+1
// rows; the extra row's presence is what produces a nextCursor, so no
// count query is needed.
const PageSize = 20

// SearchService runs the three discovery views over Postgres full-text
// search. Ordering is (rank DESC, id DESC); the cursor is the (rank, id)
// tuple of the last row of the previous page and rows strictly below it in
// that total order are returned. With a blank query every row ranks 0 and
// the ordering degenerates to id DESC — deliberate, documented behavior,
// and the id tiebreaker keeps pagination exact either way.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

type searchRow struct {
	ID       uuid.UUID
	Name     string
	Slug     string
	PhotoURL *string
	Bio      *string
	Rank     float64

	OpenToBookOpeners bool
	LookingForTeam    bool
	LookingForCoach   bool

	AvailableForPrivate   bool
	AvailableForTeams     bool
	AvailableForWorkshops bool

	OpenToNewMembers bool
	SeekingCoach     bool
	Form             *string
	Status           string
}

func (s *SearchService) Performers(query string, filters dto.SearchFilters, cursor *dto.SearchCursor) (*dto.SearchResponse, error) {
	q := strings.TrimSpace(query)

	tx := s.db.Table("personal_profiles").
		Joins("INNER JOIN performer_profiles ON performer_profiles.profile_id = personal_profiles.id")

	sel := `personal_profiles.id, personal_profiles.name, personal_profiles.slug,
		personal_profiles.photo_url, personal_profiles.bio,
		performer_profiles.open_to_book_openers, performer_profiles.looking_for_team,
		performer_profiles.looking_for_coach, ` + rankExpr("personal_profiles", q) + ` AS rank`
	if q != "" {
		tx = tx.Select(sel, q).
			Where("personal_profiles.search_vector @@ websearch_to_tsquery('english', ?)", q)
	} else {
		tx = tx.Select(sel)
	}

	if filters.OpenToBookOpeners {
		tx = tx.Where("performer_profiles.open_to_book_openers = TRUE")
	}
	if filters.LookingForTeam {
		tx = tx.Where("performer_profiles.looking_for_team = TRUE")
	}
	if filters.LookingForCoach {
		tx = tx.Where("performer_profiles.looking_for_coach = TRUE")
	}

	tx = applyCursor(tx, "personal_profiles", q, cursor)

	var rows []searchRow
	if err := tx.Order("rank DESC, personal_profiles.id DESC").Limit(PageSize + 1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("performer search failed: %w", err)
	}

	return page(rows, func(r searchRow) dto.SearchResult {
		res := baseResult(r)
		res.OpenToBookOpeners = boolPtr(r.OpenToBookOpeners)
		res.LookingForTeam = boolPtr(r.LookingForTeam)
		res.LookingForCoach = boolPtr(r.LookingForCoach)
		return res
	}), nil
}

func (s *SearchService) Coaches(query string, filters dto.SearchFilters, cursor *dto.SearchCursor) (*dto.SearchResponse, error) {
	q := strings.TrimSpace(query)

	tx := s.db.Table("coach_profiles").
		Joins("INNER JOIN personal_profiles ON coach_profiles.profile_id = personal_profiles.id")

	// The coach view ranks against the coach profile's own vector, and its
	// bio column is the coaching bio.
	sel := `personal_profiles.id, personal_profiles.name, personal_profiles.slug,
		personal_profiles.photo_url, coach_profiles.coaching_bio AS bio,
		coach_profiles.available_for_private, coach_profiles.available_for_teams,
		coach_profiles.available_for_workshops, ` + rankExpr("coach_profiles", q) + ` AS rank`
	if q != "" {
		tx = tx.Select(sel, q).
			Where("coach_profiles.search_vector @@ websearch_to_tsquery('english', ?)", q)
	} else {
		tx = tx.Select(sel)
	}

	if filters.AvailableForPrivate {
		tx = tx.Where("coach_profiles.available_for_private = TRUE")
	}
	if filters.AvailableForTeams {
		tx = tx.Where("coach_profiles.available_for_teams = TRUE")
	}
	if filters.AvailableForWorkshops {
		tx = tx.Where("coach_profiles.available_for_workshops = TRUE")
	}

	tx = applyCursorRanked(tx, "coach_profiles", "personal_profiles.id", q, cursor)

	var rows []searchRow
	if err := tx.Order("rank DESC, personal_profiles.id DESC").Limit(PageSize + 1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("coach search failed: %w", err)
	}

	return page(rows, func(r searchRow) dto.SearchResult {
		res := baseResult(r)
		res.AvailableForPrivate = boolPtr(r.AvailableForPrivate)
		res.AvailableForTeams = boolPtr(r.AvailableForTeams)
		res.AvailableForWorkshops = boolPtr(r.AvailableForWorkshops)
		return res
	}), nil
}

func (s *SearchService) Teams(query string, filters dto.SearchFilters, cursor *dto.SearchCursor) (*dto.SearchResponse, error) {
	q := strings.TrimSpace(query)

	tx := s.db.Table("teams").
		// Active teams are always eligible; a stub becomes discoverable once
		// someone has attached themselves to it with an approved row.
		Where(`(teams.status = ? OR teams.id IN (
			SELECT team_id FROM team_members WHERE approval_status = ?))`,
			models.TeamStatusActive, models.ApprovalApproved)

	sel := `teams.id, teams.name, teams.slug, teams.photo_url,
		teams.description AS bio, teams.form, teams.status,
		teams.open_to_new_members, teams.seeking_coach, ` + rankExpr("teams", q) + ` AS rank`
	if q != "" {
		tx = tx.Select(sel, q).
			Where("teams.search_vector @@ websearch_to_tsquery('english', ?)", q)
	} else {
		tx = tx.Select(sel)
	}

	if filters.OpenToNewMembers {
		tx = tx.Where("teams.open_to_new_members = TRUE")
	}
	if filters.SeekingCoach {
		tx = tx.Where("teams.seeking_coach = TRUE")
	}

	tx = applyCursor(tx, "teams", q, cursor)

	var rows []searchRow
	if err := tx.Order("rank DESC, teams.id DESC").Limit(PageSize + 1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("team search failed: %w", err)
	}

	return page(rows, func(r searchRow) dto.SearchResult {
		res := baseResult(r)
		res.OpenToNewMembers = boolPtr(r.OpenToNewMembers)
		res.SeekingCoach = boolPtr(r.SeekingCoach)
		res.Form = r.Form
		res.Status = r.Status
		return res
	}), nil
}

// rankExpr is the rank column for a view: ts_rank against the view's
// vector, or the constant 0 when there is no query text.
func rankExpr(table, q string) string {
	if q == "" {
		return "0::float4"
	}
	return fmt.Sprintf("ts_rank(%s.search_vector, websearch_to_tsquery('english', ?))", table)
}

// applyCursor adds the strict tuple bound (rank, id::text) < (?, ?). The
// lexicographic comparison makes id a total tiebreaker, so ties on rank can
// never skip or repeat rows across pages.
func applyCursor(tx *gorm.DB, table, q string, cursor *dto.SearchCursor) *gorm.DB {
	return applyCursorRanked(tx, table, table+".id", q, cursor)
}

func applyCursorRanked(tx *gorm.DB, rankTable, idCol, q string, cursor *dto.SearchCursor) *gorm.DB {
	if cursor == nil {
		return tx
	}
	if q == "" {
		return tx.Where(fmt.Sprintf("(0::float4, %s::text) < (?, ?)", idCol), cursor.Rank, cursor.ID)
	}
	return tx.Where(
		fmt.Sprintf("(ts_rank(%s.search_vector, websearch_to_tsquery('english', ?)), %s::text) < (?, ?)", rankTable, idCol),
		q, cursor.Rank, cursor.ID)
}

// page trims the over-fetched row set to PageSize and derives the cursor
// for the next request from the last returned row.
func page(rows []searchRow, convert func(searchRow) dto.SearchResult) *dto.SearchResponse {
	hasMore := len(rows) > PageSize
	if hasMore {
		rows = rows[:PageSize]
	}

	results := make([]dto.SearchResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, convert(r))
	}

	resp := &dto.SearchResponse{Results: results}
	if hasMore && len(results) > 0 {
		last := results[len(results)-1]
		resp.NextCursor = &dto.SearchCursor{Rank: last.Rank, ID: last.ID}
	}
	return resp
}

func baseResult(r searchRow) dto.SearchResult {
	return dto.SearchResult{
		ID:       r.ID.String(),
		Name:     r.Name,
		Slug:     r.Slug,
		PhotoURL: r.PhotoURL,
		Bio:      r.Bio,
		Rank:     r.Rank,
	}
}

func boolPtr(b bool) *bool {
	return &b
}
