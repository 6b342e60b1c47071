package sign_up

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "имя, email и пароль обязательны"
	msgPasswordMismatch   = "пароли не совпадают"
	msgRegistrationFailed = "регистрация отклонена"
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

// Handle POST /api/v1/auth/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}
	if req.Password != req.ConfirmPassword {
		handlers.RespondBadRequest(w, msgPasswordMismatch)
		return
	}

	resp, err := h.authClient.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrRejected):
			h.logger.Warn("POST /auth/signup - Registration rejected: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgRegistrationFailed)

		case errors.Is(err, authservice.ErrUnavailable):
			h.logger.Error("POST /auth/signup - Auth service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgAuthUnavailable)

		default:
			h.logger.Error("POST /auth/signup - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signup - Registration successful: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusCreated, SignUpResponse{Token: resp.Token})
}
