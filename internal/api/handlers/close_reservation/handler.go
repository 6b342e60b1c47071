package close_reservation

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
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

// Handle DELETE /api/v1/reservations/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	h.reservations.Close(sessionID)

	h.logger.Info("DELETE /reservations/%s - Session closed", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
