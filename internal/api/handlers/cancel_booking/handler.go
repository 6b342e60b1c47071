package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
	"github.com/m04kA/BRS-RentalGateway/internal/service/bookinglist"
)

const (
	msgTokenInvalid       = "токен авторизации недействителен"
	msgBookingNotFound    = "бронирование не найдено"
	msgWindowClosed       = "до начала менее 2 часов, онлайн-отмена недоступна, обратитесь в пункт проката"
	msgCancelInFlight     = "отмена этого бронирования уже выполняется"
	msgServiceUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	bookingList BookingListService
	logger      Logger
}

func NewHandler(bookingList BookingListService, logger Logger) *Handler {
	return &Handler{
		bookingList: bookingList,
		logger:      logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	token := middleware.TokenFromContext(r.Context())

	err := h.bookingList.Cancel(r.Context(), token, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookinglist.ErrTokenInvalid):
			h.logger.Warn("DELETE /bookings/%s - Invalid token: %v", bookingID, err)
			handlers.RespondUnauthorized(w, msgTokenInvalid)

		case errors.Is(err, bookinglist.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%s - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookinglist.ErrCancellationWindowClosed):
			h.logger.Warn("DELETE /bookings/%s - Cancellation window closed", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgWindowClosed)

		case errors.Is(err, bookinglist.ErrCancelInFlight):
			h.logger.Warn("DELETE /bookings/%s - Cancellation already in progress", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCancelInFlight)

		case errors.Is(err, bookinglist.ErrUnavailable):
			h.logger.Error("DELETE /bookings/%s - Booking service unavailable: %v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgServiceUnavailable)

		default:
			h.logger.Error("DELETE /bookings/%s - Failed to cancel: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%s - Booking cancelled", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
