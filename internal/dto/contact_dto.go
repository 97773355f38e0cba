package dto

type ContactRequest struct {
	RecipientID   string `json:"recipientId"`
	RecipientType string `json:"recipientType"` // personal_profile | team
	Subject       string `json:"subject"`
	Message       string `json:"message"`
}

// IdentitySignupEvent is the identity provider's post-confirmation webhook
// payload.
type IdentitySignupEvent struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}
