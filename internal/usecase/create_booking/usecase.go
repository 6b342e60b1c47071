package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/identity"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/bookingservice"
	"github.com/m04kA/BRS-RentalGateway/internal/service/pricing"
)

// UseCase use case создания бронирования: валидирует состояние формы,
// собирает черновик запроса и отправляет его в BookingService
type UseCase struct {
	catalogClient CatalogServiceClient
	bookingClient BookingServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogClient CatalogServiceClient,
	bookingClient BookingServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		bookingClient: bookingClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: products=%d, date=%s, time=%s, turns=%d, occupants=%d",
		len(req.SelectedProductIDs), req.Date.Format(domain.DateFormat), req.StartTime, req.Turns, req.Occupants)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка даты относительно текущего момента
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Извлекаем идентификатор клиента из токена
	clientID, err := identity.ClientID(req.Token)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to resolve client id: %v", err)
		switch {
		case errors.Is(err, identity.ErrTokenMissing):
			return nil, ErrTokenMissing
		case errors.Is(err, identity.ErrClientIDMissing):
			return nil, ErrClientIDMissing
		default:
			return nil, ErrTokenInvalid
		}
	}

	// 4. Получаем каталог для агрегации устройств безопасности
	catalog, err := uc.catalogClient.GetProducts(ctx, req.Token)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch catalog: %v", ErrInternal, err)
	}

	// 5. Собираем черновик запроса
	draft, err := buildDraft(clientID, req, catalog)
	if err != nil {
		return nil, err
	}

	// 6. Отправляем бронирование в BookingService
	booking, err := uc.bookingClient.CreateBooking(ctx, req.Token, draft)
	if err != nil {
		if errors.Is(err, bookingservice.ErrUnauthorized) {
			uc.logger.Warn("CreateBooking: token rejected by booking service")
			return nil, ErrTokenInvalid
		}
		uc.logger.Error("CreateBooking: booking service rejected request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRejected, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for client=%s", booking.ID, clientID)

	// 7. Считаем стоимость для отображения клиенту
	quote := pricing.Calculate(req.SelectedProductIDs, catalog, req.Turns, req.Occupants, req.StormInsurance)

	return &Response{
		Booking: booking,
		Quote:   quote,
	}, nil
}

// buildDraft собирает запрос на создание бронирования из состояния формы
// Момент окончания = момент начала + 30 минут за каждый турн
func buildDraft(clientID string, req *Request, catalog []domain.Product) (*bookingservice.CreateBookingRequest, error) {
	startsAt, err := req.StartTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve start instant: %v", ErrInternal, err)
	}
	endsAt := startsAt.Add(time.Duration(req.Turns*domain.TurnDurationMinutes) * time.Minute)

	lines := make([]bookingservice.BookingLineRequest, 0, len(req.SelectedProductIDs))
	for _, productID := range req.SelectedProductIDs {
		lines = append(lines, bookingservice.BookingLineRequest{
			ProductID: productID,
			Quantity:  1,
		})
	}

	devices := pricing.SafetyDeviceUnion(req.SelectedProductIDs, catalog)

	return &bookingservice.CreateBookingRequest{
		ClientID:       clientID,
		Lines:          lines,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		SafetyIncluded: len(devices) > 0,
		SafetyDevices:  devices,
	}, nil
}
