package request

// CredentialsRequest is the sign-up / sign-in payload for admin-panel accounts.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
