package models

import (
	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/service/pricing"
)

// ReservationState снимок состояния сессии оформления для клиента
type ReservationState struct {
	SessionID  string
	Step       domain.ReservationStep
	Submitting bool
	Completed  bool
	Form       domain.ReservationForm

	// Quote расчёт стоимости по текущему состоянию формы;
	// nil, когда каталог недоступен и расчёт невозможен
	Quote *pricing.Quote
}

// FromFlow собирает снимок состояния из процесса бронирования
func FromFlow(sessionID string, flow domain.ReservationFlow, quote *pricing.Quote) ReservationState {
	return ReservationState{
		SessionID:  sessionID,
		Step:       flow.Step,
		Submitting: flow.Submitting,
		Completed:  flow.Completed,
		Form:       flow.Form,
		Quote:      quote,
	}
}
