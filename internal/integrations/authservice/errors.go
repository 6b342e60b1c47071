package authservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrUnavailable возвращается, когда AuthService недоступен
	ErrUnavailable = errors.New("authservice client: service unavailable")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("authservice client: invalid credentials")

	// ErrRejected возвращается, когда сервис отклонил запрос
	ErrRejected = errors.New("authservice client: request rejected")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
