package get_available_slots

import (
	"net/http"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/v1/slots
//
// Сетка стартовых слотов фиксирована правилами проката: каждые 30 минут
// с 09:00 до 17:00 включительно. Доступность конкретного слота проверяет
// BookingService при создании бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromSlots(domain.StartSlots()))
}
