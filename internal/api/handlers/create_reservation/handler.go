package create_reservation

import (
	"net/http"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers/reservationview"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
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

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())

	state, err := h.reservations.Start(r.Context(), token)
	if err != nil {
		h.logger.Error("POST /reservations - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reservations - Session started: id=%s", state.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, reservationview.FromState(state))
}
