package submit_reservation

import (
	"context"

	"github.com/m04kA/BRS-RentalGateway/internal/usecase/create_booking"
)

type ReservationService interface {
	Submit(ctx context.Context, token string, sessionID string, name, email, phone string) (*create_booking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
