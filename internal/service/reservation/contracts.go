package reservation

import (
	"context"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/usecase/create_booking"
)

// SessionStore интерфейс хранилища сессий оформления брони
type SessionStore interface {
	Create(flow *domain.ReservationFlow) string
	Get(id string) (domain.ReservationFlow, error)
	Update(id string, fn func(*domain.ReservationFlow) error) error
	Delete(id string)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetProducts(ctx context.Context, token string) ([]domain.Product, error)
}

// BookingCreator интерфейс use case создания бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
