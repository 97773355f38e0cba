package dto

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	// Field-level validation detail, present only for 400s that carry it.
	Fields map[string]string `json:"fields,omitempty"`
}
