package reset_password

// ResetPasswordRequest HTTP request model
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPasswordResponse HTTP response model
type ResetPasswordResponse struct {
	Token string `json:"token"`
}
