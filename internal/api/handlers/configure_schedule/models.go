package configure_schedule

import (
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/pkg/types"
)

// ConfigureScheduleRequest HTTP request model
type ConfigureScheduleRequest struct {
	Date           string `json:"date"`      // "2025-07-15"
	StartTime      string `json:"startTime"` // "10:30"
	PaymentMethod  string `json:"paymentMethod"`
	StormInsurance bool   `json:"stormInsurance"`
}

// Parse разбирает дату и время запроса
func (r *ConfigureScheduleRequest) Parse() (time.Time, types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, "", err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return time.Time{}, "", err
	}

	return date, startTime, nil
}
