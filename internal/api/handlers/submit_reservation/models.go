package submit_reservation

import (
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/usecase/create_booking"
)

// SubmitRequest HTTP request model
type SubmitRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingResponse HTTP model подтверждённого бронирования
type BookingResponse struct {
	ID             string         `json:"id"`
	StartsAt       string         `json:"startsAt"`
	EndsAt         string         `json:"endsAt"`
	SafetyIncluded bool           `json:"safetyIncluded"`
	SafetyDevices  []string       `json:"safetyDevices,omitempty"`
	Total          string         `json:"total"`
	DeviceCounts   map[string]int `json:"deviceCounts"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP response
func FromUseCaseResponse(resp *create_booking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.Booking.ID,
		StartsAt:       resp.Booking.StartsAt.Format(time.RFC3339),
		EndsAt:         resp.Booking.EndsAt.Format(time.RFC3339),
		SafetyIncluded: resp.Booking.SafetyIncluded,
		SafetyDevices:  resp.Booking.SafetyDevices,
		Total:          resp.Quote.Total.StringFixed(2),
		DeviceCounts:   resp.Quote.SafetyDeviceCounts,
	}
}
