package domain

import "github.com/m04kA/BRS-RentalGateway/pkg/types"

// StartSlots возвращает сетку допустимых стартовых слотов:
// каждые 30 минут с FirstStartSlot по LastStartSlot включительно
func StartSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, 17)

	slot := types.TimeString(FirstStartSlot)
	for {
		slots = append(slots, slot)
		if slot == types.TimeString(LastStartSlot) {
			break
		}
		next, err := slot.AddMinutes(TurnDurationMinutes)
		if err != nil {
			// Сетка строится из константных границ, ошибка здесь невозможна
			break
		}
		slot = next
	}

	return slots
}

// IsValidStartSlot проверяет, что время входит в сетку стартовых слотов
func IsValidStartSlot(t types.TimeString) bool {
	for _, slot := range StartSlots() {
		if slot == t {
			return true
		}
	}
	return false
}
