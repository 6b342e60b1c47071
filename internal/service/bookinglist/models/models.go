package models

import (
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

// BookingView бронирование, дополненное вердиктом политики отмены
// для отображения в списке "мои бронирования"
type BookingView struct {
	Booking domain.Booking

	// CanCancelFree true, если на момент формирования списка до начала
	// оставалось не менее 2 часов; управляет доступностью кнопки отмены
	CanCancelFree bool
}

// FromDomainBookingList конвертирует бронирования в представления списка,
// вычисляя вердикт политики отмены на момент now
func FromDomainBookingList(bookings []domain.Booking, now time.Time) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			Booking:       b,
			CanCancelFree: b.CanCancelFree(now),
		})
	}
	return views
}
