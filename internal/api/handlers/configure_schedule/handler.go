package configure_schedule

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
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSessionNotFound    = "сессия оформления не найдена или истекла"
	msgScheduleRequired   = "дата и время начала обязательны"
	msgInvalidPayment     = "неизвестный способ оплаты"
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

// Handle POST /api/v1/reservations/{sessionId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	token := middleware.TokenFromContext(r.Context())

	var req ConfigureScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/%s/schedule - Invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, startTime, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /reservations/%s/schedule - Failed to parse date/time: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	state, err := h.reservations.ConfigureSchedule(r.Context(), token, sessionID,
		date, startTime, domain.PaymentMethod(req.PaymentMethod), req.StormInsurance)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrSessionNotFound):
			h.logger.Warn("POST /reservations/%s/schedule - Session not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, domain.ErrScheduleRequired):
			handlers.RespondBadRequest(w, msgScheduleRequired)

		case errors.Is(err, domain.ErrInvalidPayment):
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, domain.ErrInvalidStep):
			h.logger.Warn("POST /reservations/%s/schedule - Wrong step", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, domain.ErrSubmitInProgress):
			handlers.RespondError(w, http.StatusConflict, msgSubmitInProgress)

		default:
			h.logger.Error("POST /reservations/%s/schedule - Failed: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/%s/schedule - Schedule saved: date=%s, time=%s",
		sessionID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, reservationview.FromState(state))
}
