package sessions

import "errors"

var (
	// ErrSessionNotFound сессия не найдена или истек её срок жизни
	ErrSessionNotFound = errors.New("sessions: session not found")
)
