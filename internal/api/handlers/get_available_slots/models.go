package get_available_slots

import (
	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/pkg/types"
)

// SlotsResponse HTTP response model сетки стартовых слотов
type SlotsResponse struct {
	Slots           []string `json:"slots"`
	TurnDurationMin int      `json:"turnDurationMinutes"`
	MaxTurns        int      `json:"maxTurns"`
}

// FromSlots конвертирует сетку слотов в HTTP response
func FromSlots(slots []types.TimeString) *SlotsResponse {
	resp := &SlotsResponse{
		Slots:           make([]string, 0, len(slots)),
		TurnDurationMin: domain.TurnDurationMinutes,
		MaxTurns:        domain.MaxTurns,
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, s.String())
	}
	return resp
}
