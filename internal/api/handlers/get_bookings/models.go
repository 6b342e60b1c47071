package get_bookings

import (
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/service/bookinglist/models"
)

// BookingLineResponse позиция бронирования в HTTP ответе
type BookingLineResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// BookingResponse HTTP model бронирования в списке
type BookingResponse struct {
	ID             string                `json:"id"`
	StartsAt       string                `json:"startsAt"`
	EndsAt         string                `json:"endsAt"`
	SafetyIncluded bool                  `json:"safetyIncluded"`
	SafetyDevices  []string              `json:"safetyDevices,omitempty"`
	Lines          []BookingLineResponse `json:"lines"`
	TotalPrice     string                `json:"totalPrice"`
	CanCancelFree  bool                  `json:"canCancelFree"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromBookingViews конвертирует представления списка в HTTP response
func FromBookingViews(views []models.BookingView) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(views)),
	}

	for _, v := range views {
		lines := make([]BookingLineResponse, 0, len(v.Booking.Lines))
		for _, l := range v.Booking.Lines {
			lines = append(lines, BookingLineResponse{
				ProductID:   l.Product.ID,
				ProductName: l.Product.Name,
				Quantity:    l.Quantity,
			})
		}

		resp.Bookings = append(resp.Bookings, BookingResponse{
			ID:             v.Booking.ID,
			StartsAt:       v.Booking.StartsAt.Format(time.RFC3339),
			EndsAt:         v.Booking.EndsAt.Format(time.RFC3339),
			SafetyIncluded: v.Booking.SafetyIncluded,
			SafetyDevices:  v.Booking.SafetyDevices,
			Lines:          lines,
			TotalPrice:     v.Booking.TotalPrice.StringFixed(2),
			CanCancelFree:  v.CanCancelFree,
		})
	}

	return resp
}
