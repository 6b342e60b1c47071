package forgot_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingEmail       = "email обязателен"
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

// Handle POST /api/v1/auth/forgot-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/forgot-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" {
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	resp, err := h.authClient.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUnavailable):
			h.logger.Error("POST /auth/forgot-password - Auth service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgAuthUnavailable)

		default:
			h.logger.Error("POST /auth/forgot-password - Failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/forgot-password - Reset link requested: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, ForgotPasswordResponse{Message: resp.Message})
}
