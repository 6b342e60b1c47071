package bookingservice

import (
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

// BookingLineRequest позиция запроса на создание: идентификатор товара и количество
// Количество всегда 1: повторный выбор одного товара не поддерживается
type BookingLineRequest struct {
	ProductID string `json:"producto"`
	Quantity  int    `json:"cantidad"`
}

// CreateBookingRequest запрос на создание бронирования
// Поля соответствуют контракту внешнего BookingService
type CreateBookingRequest struct {
	ClientID       string               `json:"cliente"`
	Lines          []BookingLineRequest `json:"productos"`
	StartsAt       time.Time            `json:"fecha_inicio"`
	EndsAt         time.Time            `json:"fecha_fin"`
	SafetyIncluded bool                 `json:"seguridad_incluida"`
	// SafetyDevices объединение требуемых устройств без дубликатов;
	// поле опускается целиком, если устройства не требуются
	SafetyDevices []string `json:"dispositivos_seguridad_seleccionados,omitempty"`
}

// BookingListResponse конверт ответа со списком бронирований
type BookingListResponse struct {
	Data []domain.Booking `json:"data"`
}

// ErrorResponse модель ошибки от BookingService
type ErrorResponse struct {
	Message string `json:"message"`
}
