package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

// MaxAdvanceBookingHours максимальный горизонт бронирования
const MaxAdvanceBookingHours = 48

// validateRequest валидирует входные данные запроса
// Проверки идут в порядке шагов формы: контакты, расписание, выбор товаров
func validateRequest(req *Request) error {
	if isBlank(req.Name) || isBlank(req.Email) || isBlank(req.Phone) {
		return ErrMissingContactInfo
	}

	if req.Date.IsZero() || req.StartTime.IsZero() {
		return ErrMissingSchedule
	}

	if !domain.IsValidStartSlot(req.StartTime) {
		return ErrInvalidStartSlot
	}

	if req.Turns < domain.MinTurns || req.Turns > domain.MaxTurns {
		return ErrInvalidTurns
	}

	if req.Occupants < domain.MinOccupants || req.Occupants > domain.MaxOccupants {
		return ErrInvalidOccupants
	}

	if !req.PaymentMethod.IsValid() {
		return ErrInvalidPaymentMethod
	}

	if len(req.SelectedProductIDs) == 0 {
		return ErrEmptyProductSelection
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше горизонта
// бронирования (48 часов от текущего момента)
func validateDate(date time.Time, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	todayOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(todayOnly) {
		return ErrDateOutOfRange
	}
	if dateOnly.After(now.Add(MaxAdvanceBookingHours * time.Hour)) {
		return ErrDateOutOfRange
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
