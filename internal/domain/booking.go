package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingLine позиция бронирования: товар и количество
type BookingLine struct {
	Product  Product `json:"producto"`
	Quantity int     `json:"cantidad"`
}

// Booking подтверждённое бронирование, полученное от BookingService
// Создается через CreateBooking, читается через GetBookings, логически
// удаляется через CancelBooking; путь обновления отсутствует
type Booking struct {
	ID             string          `json:"_id"`
	ClientID       string          `json:"cliente"`
	StartsAt       time.Time       `json:"fecha_inicio"`
	EndsAt         time.Time       `json:"fecha_fin"`
	SafetyIncluded bool            `json:"seguridad_incluida"`
	SafetyDevices  []string        `json:"dispositivos_seguridad_seleccionados"`
	Lines          []BookingLine   `json:"productos"`
	TotalPrice     decimal.Decimal `json:"precio_total"`
}

// CanCancelFree возвращает true, если бронирование отменяется бесплатно
// на момент now
func (b *Booking) CanCancelFree(now time.Time) bool {
	return CanCancelFree(b.StartsAt, now)
}
