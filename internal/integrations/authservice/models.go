package authservice

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest запрос на регистрацию нового клиента
type RegisterRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest запрос на отправку ссылки восстановления пароля
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest запрос на установку нового пароля
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// AuthResponse ответ AuthService с выпущенным токеном
// Токен выпускается и проверяется внешним сервисом, шлюз его не интерпретирует
type AuthResponse struct {
	Token   string `json:"token"`
	Message string `json:"mensaje,omitempty"`
}

// MessageResponse ответ AuthService с информационным сообщением
type MessageResponse struct {
	Message string `json:"mensaje"`
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Message string `json:"message"`
}
