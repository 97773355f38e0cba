package dto

// SearchCursor is the client-held pagination boundary: the (rank, id) tuple
// of the last row of the previous page, compared descending. Stateless on
// the server.
type SearchCursor struct {
	Rank float64 `json:"rank"`
	ID   string  `json:"id"`
}

// SearchFilters are caller-chosen interest flags, AND-composed. A false/
// omitted flag does not filter.
type SearchFilters struct {
	// performer
	OpenToBookOpeners bool
	LookingForTeam    bool
	LookingForCoach   bool
	// coach
	AvailableForPrivate   bool
	AvailableForTeams     bool
	AvailableForWorkshops bool
	// team
	OpenToNewMembers bool
	SeekingCoach     bool
}

// SearchResult is one row of a discovery view. Fields belonging to the other
// two entity kinds are simply absent; the caller knows which view it asked
// for.
type SearchResult struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	PhotoURL *string `json:"photo_url"`
	Bio      *string `json:"bio"`
	Rank     float64 `json:"rank"`

	// performer flags
	OpenToBookOpeners *bool `json:"open_to_book_openers,omitempty"`
	LookingForTeam    *bool `json:"looking_for_team,omitempty"`
	LookingForCoach   *bool `json:"looking_for_coach,omitempty"`

	// coach flags
	AvailableForPrivate   *bool `json:"available_for_private,omitempty"`
	AvailableForTeams     *bool `json:"available_for_teams,omitempty"`
	AvailableForWorkshops *bool `json:"available_for_workshops,omitempty"`

	// team fields
	OpenToNewMembers *bool   `json:"open_to_new_members,omitempty"`
	SeekingCoach     *bool   `json:"seeking_coach,omitempty"`
	Form             *string `json:"form,omitempty"`
	Status           string  `json:"status,omitempty"`
}

type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	NextCursor *SearchCursor  `json:"nextCursor"`
}

// ProfileHit is a combobox lookup row (team edit pickers).
type ProfileHit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
