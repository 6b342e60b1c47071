package submit_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/service/reservation"
	"github.com/m04kA/BRS-RentalGateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия оформления не найдена или истекла"
	msgWrongStep          = "отправка доступна только с шага подтверждения"
	msgSubmitInProgress   = "форма уже отправляется"
	msgMissingContactInfo = "имя, email и телефон обязательны"
	msgDateOutOfRange     = "дата бронирования в прошлом или дальше 48 часов"
	msgInvalidStartSlot   = "время начала вне сетки слотов"
	msgTokenInvalid       = "токен авторизации недействителен"
	msgBookingRejected    = "бронирование отклонено"
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

// Handle POST /api/v1/reservations/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	token := middleware.TokenFromContext(r.Context())

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/%s/submit - Invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.reservations.Submit(r.Context(), token, sessionID, req.Name, req.Email, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrSessionNotFound):
			h.logger.Warn("POST /reservations/%s/submit - Session not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, domain.ErrInvalidStep):
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, domain.ErrSubmitInProgress):
			h.logger.Warn("POST /reservations/%s/submit - Duplicate submit", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitInProgress)

		case errors.Is(err, create_booking.ErrMissingContactInfo):
			handlers.RespondBadRequest(w, msgMissingContactInfo)

		case errors.Is(err, create_booking.ErrDateOutOfRange):
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, create_booking.ErrInvalidStartSlot):
			handlers.RespondBadRequest(w, msgInvalidStartSlot)

		case errors.Is(err, create_booking.ErrTokenMissing),
			errors.Is(err, create_booking.ErrTokenInvalid),
			errors.Is(err, create_booking.ErrClientIDMissing):
			h.logger.Warn("POST /reservations/%s/submit - Invalid token: %v", sessionID, err)
			handlers.RespondUnauthorized(w, msgTokenInvalid)

		case errors.Is(err, create_booking.ErrRejected):
			// Сообщение сервера бронирований показывается клиенту как есть
			h.logger.Warn("POST /reservations/%s/submit - Booking rejected: %v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, rejectionMessage(err))

		default:
			h.logger.Error("POST /reservations/%s/submit - Failed: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/%s/submit - Booking confirmed: booking_id=%s", sessionID, result.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// rejectionMessage извлекает сообщение сервера из цепочки ошибок отклонения
func rejectionMessage(err error) string {
	msg := err.Error()

	// Последний сегмент после "request rejected: " это текст сервера
	const marker = "request rejected: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msgBookingRejected
}
