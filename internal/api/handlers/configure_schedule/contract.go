package configure_schedule

import (
	"context"
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/service/reservation/models"
	"github.com/m04kA/BRS-RentalGateway/pkg/types"
)

type ReservationService interface {
	ConfigureSchedule(ctx context.Context, token string, sessionID string, date time.Time, startTime types.TimeString, payment domain.PaymentMethod, stormInsurance bool) (models.ReservationState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
