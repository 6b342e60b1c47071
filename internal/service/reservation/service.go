package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/infra/sessions"
	"github.com/m04kA/BRS-RentalGateway/internal/service/pricing"
	"github.com/m04kA/BRS-RentalGateway/internal/service/reservation/models"
	"github.com/m04kA/BRS-RentalGateway/internal/usecase/create_booking"
	"github.com/m04kA/BRS-RentalGateway/pkg/types"
)

// Service управляет многошаговым оформлением бронирования
//
// Состояние каждой сессии живёт в хранилище; все переходы между шагами
// выполняются под блокировкой хранилища, поэтому параллельные запросы
// одной сессии применяются по одному. Отправка выполняется в два этапа:
// форма помечается отправляемой под блокировкой, сетевой вызов идёт вне
// блокировки, результат фиксируется снова под блокировкой
type Service struct {
	store         SessionStore
	catalogClient CatalogServiceClient
	bookingUC     BookingCreator
	logger        Logger
}

// NewService создает новый экземпляр сервиса оформления бронирования
func NewService(
	store SessionStore,
	catalogClient CatalogServiceClient,
	bookingUC BookingCreator,
	logger Logger,
) *Service {
	return &Service{
		store:         store,
		catalogClient: catalogClient,
		bookingUC:     bookingUC,
		logger:        logger,
	}
}

// Start открывает новую сессию оформления на первом шаге
func (s *Service) Start(ctx context.Context, token string) (models.ReservationState, error) {
	flow := domain.NewReservationFlow()
	id := s.store.Create(flow)

	s.logger.Info("Start: opened reservation session id=%s", id)

	return s.state(ctx, token, id)
}

// Get возвращает текущее состояние сессии с расчётом стоимости
func (s *Service) Get(ctx context.Context, token string, sessionID string) (models.ReservationState, error) {
	return s.state(ctx, token, sessionID)
}

// SelectProducts сохраняет выбор товаров и переводит сессию на шаг
// настройки расписания
func (s *Service) SelectProducts(
	ctx context.Context,
	token string,
	sessionID string,
	productIDs []string,
	turns int,
	occupants int,
) (models.ReservationState, error) {
	err := s.update(sessionID, func(f *domain.ReservationFlow) error {
		return f.ApplySelection(productIDs, turns, occupants)
	})
	if err != nil {
		return models.ReservationState{}, err
	}

	return s.state(ctx, token, sessionID)
}

// ConfigureSchedule сохраняет дату, время, способ оплаты и страховку
// и переводит сессию на шаг подтверждения
func (s *Service) ConfigureSchedule(
	ctx context.Context,
	token string,
	sessionID string,
	date time.Time,
	startTime types.TimeString,
	payment domain.PaymentMethod,
	stormInsurance bool,
) (models.ReservationState, error) {
	err := s.update(sessionID, func(f *domain.ReservationFlow) error {
		return f.ApplySchedule(date, startTime, payment, stormInsurance)
	})
	if err != nil {
		return models.ReservationState{}, err
	}

	return s.state(ctx, token, sessionID)
}

// Back возвращает сессию на предыдущий шаг
func (s *Service) Back(ctx context.Context, token string, sessionID string) (models.ReservationState, error) {
	err := s.update(sessionID, func(f *domain.ReservationFlow) error {
		return f.Back()
	})
	if err != nil {
		return models.ReservationState{}, err
	}

	return s.state(ctx, token, sessionID)
}

// Submit отправляет заполненную форму в BookingService
//
// Пока запрос в полёте, сессия помечена отправляемой и другие переходы
// по ней отклоняются. При успехе форма сбрасывается на первый шаг,
// при неудаче состояние формы сохраняется для повторной попытки
func (s *Service) Submit(
	ctx context.Context,
	token string,
	sessionID string,
	name, email, phone string,
) (*create_booking.Response, error) {
	var form domain.ReservationForm

	err := s.update(sessionID, func(f *domain.ReservationFlow) error {
		if err := f.BeginSubmit(name, email, phone); err != nil {
			return err
		}
		form = f.Snapshot().Form
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp, execErr := s.bookingUC.Execute(ctx, &create_booking.Request{
		Token:              token,
		Name:               form.Name,
		Email:              form.Email,
		Phone:              form.Phone,
		SelectedProductIDs: form.SelectedProductIDs,
		Date:               form.Date,
		StartTime:          form.StartTime,
		Turns:              form.Turns,
		Occupants:          form.Occupants,
		PaymentMethod:      form.PaymentMethod,
		StormInsurance:     form.StormInsurance,
	})

	finishErr := s.update(sessionID, func(f *domain.ReservationFlow) error {
		f.FinishSubmit(execErr == nil)
		return nil
	})
	if finishErr != nil {
		// Сессия могла истечь, пока запрос был в полёте;
		// результат отправки от этого не меняется
		s.logger.Warn("Submit: failed to finalize session id=%s: %v", sessionID, finishErr)
	}

	if execErr != nil {
		s.logger.Warn("Submit: booking failed for session id=%s: %v", sessionID, execErr)
		return nil, execErr
	}

	s.logger.Info("Submit: booking confirmed for session id=%s, booking id=%s", sessionID, resp.Booking.ID)
	return resp, nil
}

// Close закрывает сессию оформления
func (s *Service) Close(sessionID string) {
	s.store.Delete(sessionID)
}

func (s *Service) update(sessionID string, fn func(*domain.ReservationFlow) error) error {
	err := s.store.Update(sessionID, fn)
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return fmt.Errorf("%w: id=%s", ErrSessionNotFound, sessionID)
	}
	return err
}

// state возвращает снимок сессии, дополненный расчётом стоимости.
// Расчёт выполняется по актуальному каталогу; когда каталог недоступен,
// снимок возвращается без расчёта
func (s *Service) state(ctx context.Context, token string, sessionID string) (models.ReservationState, error) {
	flow, err := s.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return models.ReservationState{}, fmt.Errorf("%w: id=%s", ErrSessionNotFound, sessionID)
		}
		return models.ReservationState{}, err
	}

	return models.FromFlow(sessionID, flow, s.quote(ctx, token, flow.Form)), nil
}

func (s *Service) quote(ctx context.Context, token string, form domain.ReservationForm) *pricing.Quote {
	if len(form.SelectedProductIDs) == 0 {
		return nil
	}

	catalog, err := s.catalogClient.GetProducts(ctx, token)
	if err != nil {
		s.logger.Warn("quote: catalog unavailable, state returned without quote: %v", err)
		return nil
	}

	q := pricing.Calculate(form.SelectedProductIDs, catalog, form.Turns, form.Occupants, form.StormInsurance)
	return &q
}
