package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/comedyconnector/backend/internal/dto"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	search *services.SearchService
}

func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// searchPage is the wire shape of a directory page. The cursor crosses the
// wire as an opaque base64 token so clients cannot meaningfully edit it.
type searchPage struct {
	Results    []dto.SearchResult `json:"results"`
	NextCursor *string            `json:"nextCursor"`
}

func encodeCursor(c *dto.SearchCursor) *string {
	if c == nil {
		return nil
	}
	raw, _ := json.Marshal(c)
	token := base64.RawURLEncoding.EncodeToString(raw)
	return &token
}

func decodeCursor(token string) (*dto.SearchCursor, error) {
	if token == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var c dto.SearchCursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, errBadCursor
	}
	return &c, nil
}

var errBadCursor = errors.New("malformed cursor")

func parseFilters(c *fiber.Ctx) dto.SearchFilters {
	return dto.SearchFilters{
		OpenToBookOpeners:     c.QueryBool("open_to_book_openers"),
		LookingForTeam:        c.QueryBool("looking_for_team"),
		LookingForCoach:       c.QueryBool("looking_for_coach"),
		AvailableForPrivate:   c.QueryBool("available_for_private"),
		AvailableForTeams:     c.QueryBool("available_for_teams"),
		AvailableForWorkshops: c.QueryBool("available_for_workshops"),
		OpenToNewMembers:      c.QueryBool("open_to_new_members"),
		SeekingCoach:          c.QueryBool("seeking_coach"),
	}
}

// Search serves GET /api/search?type=performers|coaches|teams&q=...&cursor=...
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	kind := c.Query("type", "performers")
	query := c.Query("q")
	filters := parseFilters(c)

	cursor, err := decodeCursor(c.Query("cursor"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Malformed cursor")
	}

	var resp *dto.SearchResponse
	switch kind {
	case "performers":
		resp, err = h.search.Performers(query, filters, cursor)
	case "coaches":
		resp, err = h.search.Coaches(query, filters, cursor)
	case "teams":
		resp, err = h.search.Teams(query, filters, cursor)
	default:
		return jsonError(c, fiber.StatusBadRequest, "Unknown search type")
	}
	if err != nil {
		slog.Error("search query failed", "type", kind, "error", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(searchPage{
		Results:    resp.Results,
		NextCursor: encodeCursor(resp.NextCursor),
	})
}
