package bookinglist

import (
	"context"
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	GetBookings(ctx context.Context, token string) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, token string, bookingID string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
