package reset_password

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPassword    = "новый пароль обязателен"
	msgResetRejected      = "ссылка восстановления недействительна или истекла"
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

// Handle PUT /api/v1/auth/reset-password/{resetToken}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resetToken := mux.Vars(r)["resetToken"]

	var req ResetPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /auth/reset-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingPassword)
		return
	}

	resp, err := h.authClient.ResetPassword(r.Context(), resetToken, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrRejected):
			h.logger.Warn("PUT /auth/reset-password - Reset rejected: %v", err)
			handlers.RespondBadRequest(w, msgResetRejected)

		case errors.Is(err, authservice.ErrUnavailable):
			h.logger.Error("PUT /auth/reset-password - Auth service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgAuthUnavailable)

		default:
			h.logger.Error("PUT /auth/reset-password - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /auth/reset-password - Password reset successful")
	handlers.RespondJSON(w, http.StatusOK, ResetPasswordResponse{Token: resp.Token})
}
