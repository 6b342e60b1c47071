package create_booking

import (
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/service/pricing"
	"github.com/m04kA/BRS-RentalGateway/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Token string // bearer токен клиента (только чтение, шлюз его не хранит)

	Name  string // Контактные данные клиента
	Email string
	Phone string

	SelectedProductIDs []string         // Выбранные товары, порядок = порядок выбора
	Date               time.Time        // Дата бронирования (без времени)
	StartTime          types.TimeString // Стартовый слот, например "10:30"
	Turns              int              // Число последовательных турнов (1..3)
	Occupants          int              // Число людей (1..2)

	// Способ оплаты и страховка фиксируются локально: оплата и страховые
	// выплаты выполняются вне системы
	PaymentMethod  domain.PaymentMethod
	StormInsurance bool
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	// Booking запись, подтверждённая BookingService
	Booking *domain.Booking

	// Quote расчёт стоимости для отображения клиенту
	Quote pricing.Quote
}
