package identity

import "errors"

var (
	// ErrTokenMissing возвращается, когда токен не передан
	ErrTokenMissing = errors.New("identity: token is missing")

	// ErrTokenMalformed возвращается, когда токен не удалось разобрать
	ErrTokenMalformed = errors.New("identity: token is malformed")

	// ErrClientIDMissing возвращается, когда в токене нет идентификатора клиента
	ErrClientIDMissing = errors.New("identity: token contains no client id")
)
