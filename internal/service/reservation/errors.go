package reservation

import "errors"

var (
	// ErrSessionNotFound сессия оформления не найдена или истекла
	ErrSessionNotFound = errors.New("reservation: session not found or expired")
)
