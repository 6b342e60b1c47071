package cancel_booking

import "context"

type BookingListService interface {
	Cancel(ctx context.Context, token string, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
