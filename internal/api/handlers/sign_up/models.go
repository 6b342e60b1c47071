package sign_up

// SignUpRequest HTTP request model
type SignUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SignUpResponse HTTP response model
type SignUpResponse struct {
	Token string `json:"token"`
}
