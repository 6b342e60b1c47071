package reservationview

import (
	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/service/reservation/models"
)

// QuoteView расчёт стоимости в составе снимка сессии
type QuoteView struct {
	Total           string         `json:"total"`
	Base            string         `json:"base"`
	DiscountAmount  string         `json:"discountAmount"`
	InsuranceAmount string         `json:"insuranceAmount"`
	DeviceCounts    map[string]int `json:"deviceCounts"`
}

// FormView поля формы в составе снимка сессии
type FormView struct {
	ProductIDs     []string `json:"productIds"`
	Turns          int      `json:"turns"`
	Occupants      int      `json:"occupants"`
	Date           string   `json:"date,omitempty"`
	StartTime      string   `json:"startTime,omitempty"`
	PaymentMethod  string   `json:"paymentMethod"`
	StormInsurance bool     `json:"stormInsurance"`
}

// StateResponse HTTP model снимка сессии оформления
// Общий формат ответа всех операций над сессией
type StateResponse struct {
	SessionID  string     `json:"sessionId"`
	Step       string     `json:"step"`
	Submitting bool       `json:"submitting"`
	Completed  bool       `json:"completed"`
	Form       FormView   `json:"form"`
	Quote      *QuoteView `json:"quote,omitempty"`
}

// FromState конвертирует снимок сессии в HTTP response
func FromState(state models.ReservationState) *StateResponse {
	resp := &StateResponse{
		SessionID:  state.SessionID,
		Step:       string(state.Step),
		Submitting: state.Submitting,
		Completed:  state.Completed,
		Form: FormView{
			ProductIDs:     state.Form.SelectedProductIDs,
			Turns:          state.Form.Turns,
			Occupants:      state.Form.Occupants,
			PaymentMethod:  string(state.Form.PaymentMethod),
			StormInsurance: state.Form.StormInsurance,
		},
	}

	if !state.Form.Date.IsZero() {
		resp.Form.Date = state.Form.Date.Format(domain.DateFormat)
	}
	if !state.Form.StartTime.IsZero() {
		resp.Form.StartTime = state.Form.StartTime.String()
	}

	if state.Quote != nil {
		resp.Quote = &QuoteView{
			Total:           state.Quote.Total.StringFixed(2),
			Base:            state.Quote.Base.StringFixed(2),
			DiscountAmount:  state.Quote.DiscountAmount.StringFixed(2),
			InsuranceAmount: state.Quote.InsuranceAmount.StringFixed(2),
			DeviceCounts:    state.Quote.SafetyDeviceCounts,
		}
	}

	return resp
}
