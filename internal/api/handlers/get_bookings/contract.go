package get_bookings

import (
	"context"

	"github.com/m04kA/BRS-RentalGateway/internal/service/bookinglist/models"
)

type BookingListService interface {
	List(ctx context.Context, token string) ([]models.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
