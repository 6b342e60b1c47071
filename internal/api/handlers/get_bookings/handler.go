package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
	"github.com/m04kA/BRS-RentalGateway/internal/service/bookinglist"
)

const (
	msgTokenInvalid       = "токен авторизации недействителен"
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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())

	views, err := h.bookingList.List(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookinglist.ErrTokenInvalid):
			h.logger.Warn("GET /bookings - Invalid token: %v", err)
			handlers.RespondUnauthorized(w, msgTokenInvalid)

		case errors.Is(err, bookinglist.ErrUnavailable):
			h.logger.Error("GET /bookings - Booking service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgServiceUnavailable)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings", len(views))
	handlers.RespondJSON(w, http.StatusOK, FromBookingViews(views))
}
