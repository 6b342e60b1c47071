package forgot_password

// ForgotPasswordRequest HTTP request model
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse HTTP response model
type ForgotPasswordResponse struct {
	Message string `json:"message"`
}
