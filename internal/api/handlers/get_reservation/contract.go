package get_reservation

import (
	"context"

	"github.com/m04kA/BRS-RentalGateway/internal/service/reservation/models"
)

type ReservationService interface {
	Get(ctx context.Context, token string, sessionID string) (models.ReservationState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
