package bookingservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrUnavailable возвращается, когда BookingService недоступен
	ErrUnavailable = errors.New("bookingservice client: service unavailable")

	// ErrUnauthorized возвращается при отклонённом bearer токене
	ErrUnauthorized = errors.New("bookingservice client: unauthorized")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingservice client: booking not found")

	// ErrRejected возвращается, когда сервис отклонил запрос
	// Текст содержит сообщение сервера, если оно было передано
	ErrRejected = errors.New("bookingservice client: request rejected")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
