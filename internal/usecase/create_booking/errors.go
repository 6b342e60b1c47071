package create_booking

import "errors"

var (
	// ErrMissingContactInfo возвращается, когда не заполнены персональные поля
	ErrMissingContactInfo = errors.New("create_booking: name, email and phone are required")

	// ErrMissingSchedule возвращается, когда не выбрана дата или время начала
	ErrMissingSchedule = errors.New("create_booking: date and start time are required")

	// ErrInvalidStartSlot возвращается, когда время начала вне сетки слотов
	ErrInvalidStartSlot = errors.New("create_booking: start time is not a valid slot")

	// ErrDateOutOfRange возвращается, когда дата в прошлом или дальше 48 часов
	ErrDateOutOfRange = errors.New("create_booking: date is out of the allowed range")

	// ErrInvalidTurns возвращается при числе турнов вне диапазона 1..3
	ErrInvalidTurns = errors.New("create_booking: turns must be between 1 and 3")

	// ErrInvalidOccupants возвращается при числе людей вне диапазона 1..2
	ErrInvalidOccupants = errors.New("create_booking: occupants must be between 1 and 2")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("create_booking: unknown payment method")

	// ErrEmptyProductSelection возвращается при пустом выборе товаров
	ErrEmptyProductSelection = errors.New("create_booking: at least one product must be selected")

	// ErrTokenMissing возвращается, когда токен аутентификации не передан
	ErrTokenMissing = errors.New("create_booking: authentication token is missing")

	// ErrTokenInvalid возвращается, когда токен не удалось разобрать
	ErrTokenInvalid = errors.New("create_booking: authentication token is invalid")

	// ErrClientIDMissing возвращается, когда из токена не извлекается id клиента
	ErrClientIDMissing = errors.New("create_booking: client id is missing from token")

	// ErrRejected возвращается, когда BookingService отклонил бронирование
	// Текст содержит сообщение сервера, если оно было передано
	ErrRejected = errors.New("create_booking: booking was rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
