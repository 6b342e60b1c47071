package select_products

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия оформления не найдена или истекла"
	msgSelectionRequired  = "выберите хотя бы один товар"
	msgInvalidTurns       = "число турнов должно быть от 1 до 3"
	msgInvalidOccupants   = "число человек должно быть от 1 до 2"
	msgWrongStep          = "операция недоступна на текущем шаге"
	msgSubmitInProgress   = "форма уже отправляется"
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

// Handle POST /api/v1/reservations/{sessionId}/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	token := middleware.TokenFromContext(r.Context())

	var req SelectProductsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/%s/products - Invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.reservations.SelectProducts(r.Context(), token, sessionID, req.ProductIDs, req.Turns, req.Occupants)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrSessionNotFound):
			h.logger.Warn("POST /reservations/%s/products - Session not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, domain.ErrProductSelectionRequired):
			handlers.RespondBadRequest(w, msgSelectionRequired)

		case errors.Is(err, domain.ErrInvalidTurns):
			handlers.RespondBadRequest(w, msgInvalidTurns)

		case errors.Is(err, domain.ErrInvalidOccupants):
			handlers.RespondBadRequest(w, msgInvalidOccupants)

		case errors.Is(err, domain.ErrInvalidStep):
			h.logger.Warn("POST /reservations/%s/products - Wrong step", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, domain.ErrSubmitInProgress):
			handlers.RespondError(w, http.StatusConflict, msgSubmitInProgress)

		default:
			h.logger.Error("POST /reservations/%s/products - Failed: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/%s/products - Selection saved: products=%d, turns=%d",
		sessionID, len(req.ProductIDs), req.Turns)
	handlers.RespondJSON(w, http.StatusOK, reservationview.FromState(state))
}
