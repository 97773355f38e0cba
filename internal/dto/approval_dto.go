package dto

// Approval row types, matching the two affiliation tables.
const (
	ApprovalTypeMembership = "membership"
	ApprovalTypeCoach      = "coach"
)

type ApprovalActionRequest struct {
	Action string `json:"action"` // approve | reject
}

type ApprovalResponse struct {
	Success        bool   `json:"success"`
	ApprovalStatus string `json:"approvalStatus"`
}

// PendingApproval is one row of a user's approval inbox.
type PendingApproval struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // membership | coach
	TeamID    string `json:"team_id"`
	TeamName  string `json:"team_name"`
	TeamSlug  string `json:"team_slug"`
	IsCurrent bool   `json:"is_current"`
	CreatedAt string `json:"created_at"`
}
