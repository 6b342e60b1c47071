package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers/reservationview"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
	"github.com/m04kA/BRS-RentalGateway/internal/service/reservation"
)

const (
	msgSessionNotFound = "сессия оформления не найдена или истекла"
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

// Handle GET /api/v1/reservations/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	token := middleware.TokenFromContext(r.Context())

	state, err := h.reservations.Get(r.Context(), token, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrSessionNotFound):
			h.logger.Warn("GET /reservations/%s - Session not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /reservations/%s - Failed to get session: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reservationview.FromState(state))
}
