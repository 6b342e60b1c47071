package catalogservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrUnavailable возвращается, когда CatalogService недоступен
	ErrUnavailable = errors.New("catalogservice client: service unavailable")

	// ErrUnauthorized возвращается при отклонённом bearer токене
	ErrUnauthorized = errors.New("catalogservice client: unauthorized")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
