package bookinglist

import "errors"

var (
	// ErrTokenInvalid возвращается при отсутствующем или нечитаемом токене
	ErrTokenInvalid = errors.New("bookinglist: authentication token is invalid")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookinglist: booking not found")

	// ErrCancellationWindowClosed возвращается при попытке отменить
	// бронирование менее чем за 2 часа до начала: онлайн-отмена
	// недоступна, клиент должен отменить лично
	ErrCancellationWindowClosed = errors.New("bookinglist: cancellation window is closed, cancel in person")

	// ErrCancelInFlight возвращается при повторной отмене, пока
	// предыдущий запрос по тому же бронированию ещё выполняется
	ErrCancelInFlight = errors.New("bookinglist: cancellation already in progress")

	// ErrUnavailable возвращается, когда BookingService недоступен
	ErrUnavailable = errors.New("bookinglist: booking service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookinglist: internal error")
)
