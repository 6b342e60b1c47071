package domain

import "time"

// Параметры аренды
const (
	// TurnDurationMinutes длительность одного турна аренды
	TurnDurationMinutes = 30

	MinTurns = 1
	MaxTurns = 3

	MinOccupants = 1
	MaxOccupants = 2
)

// FreeCancellationNotice минимальный запас времени до начала,
// при котором отмена бесплатна
const FreeCancellationNotice = 2 * time.Hour

// Границы сетки стартовых слотов (включительно)
const (
	FirstStartSlot = "09:00"
	LastStartSlot  = "17:00"
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
