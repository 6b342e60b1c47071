package step_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers/reservationview"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/service/reservation"
)

const (
	msgSessionNotFound  = "сессия оформления не найдена или истекла"
	msgWrongStep        = "возврат с первого шага невозможен"
	msgSubmitInProgress = "форма уже отправляется"
)

type Handler struct {
	reservations ReservationService
	logger       Logger
}

func NewHandler(reservations ReservationService, logger Logger) *Handler {
	return &Handler{
		reservations: reservations,
		logger:       logger,
	}
}

// Handle POST /api/v1/reservations/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	token := middleware.TokenFromContext(r.Context())

	state, err := h.reservations.Back(r.Context(), token, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrSessionNotFound):
			h.logger.Warn("POST /reservations/%s/back - Session not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, domain.ErrInvalidStep):
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, domain.ErrSubmitInProgress):
			handlers.RespondError(w, http.StatusConflict, msgSubmitInProgress)

		default:
			h.logger.Error("POST /reservations/%s/back - Failed: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/%s/back - Moved back to step=%s", sessionID, state.Step)
	handlers.RespondJSON(w, http.StatusOK, reservationview.FromState(state))
}
