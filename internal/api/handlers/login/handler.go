package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "email и пароль обязательны"
	msgInvalidCredentials = "неверный email или пароль"
	msgAuthUnavailable    = "сервис аутентификации недоступен"
)

type Handler struct {
	authClient AuthServiceClient
	logger     Logger
}

func NewHandler(authClient AuthServiceClient, logger Logger) *Handler {
	return &Handler{
		authClient: authClient,
		logger:     logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	resp, err := h.authClient.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, authservice.ErrUnavailable):
			h.logger.Error("POST /auth/login - Auth service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgAuthUnavailable)

		default:
			h.logger.Error("POST /auth/login - Failed to login: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Login successful: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Token: resp.Token})
}
