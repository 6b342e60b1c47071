package get_quote

import "github.com/m04kA/BRS-RentalGateway/internal/service/pricing"

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ProductIDs     []string `json:"productIds"`
	Turns          int      `json:"turns"`
	Occupants      int      `json:"occupants"`
	StormInsurance bool     `json:"stormInsurance"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Total           string         `json:"total"`
	Base            string         `json:"base"`
	DiscountAmount  string         `json:"discountAmount"`
	InsuranceAmount string         `json:"insuranceAmount"`
	SafetyDevices   []string       `json:"safetyDevices"`
	DeviceCounts    map[string]int `json:"deviceCounts"`
}

// FromQuote конвертирует расчёт стоимости в HTTP response
func FromQuote(q pricing.Quote, devices []string) *QuoteResponse {
	return &QuoteResponse{
		Total:           q.Total.StringFixed(2),
		Base:            q.Base.StringFixed(2),
		DiscountAmount:  q.DiscountAmount.StringFixed(2),
		InsuranceAmount: q.InsuranceAmount.StringFixed(2),
		SafetyDevices:   devices,
		DeviceCounts:    q.SafetyDeviceCounts,
	}
}
