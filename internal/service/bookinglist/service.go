package bookinglist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/identity"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/bookingservice"
	"github.com/m04kA/BRS-RentalGateway/internal/service/bookinglist/models"
)

// Service менеджер списка бронирований клиента
//
// Держит последний полученный список по каждому клиенту и применяет
// к нему оптимистичное удаление при успешной отмене; при сетевой ошибке
// список не меняется и остаётся согласованным с сервером.
// Повторная отмена одного бронирования блокируется, пока запрос в полёте
type Service struct {
	bookingClient BookingServiceClient
	timeProvider  TimeProvider
	logger        Logger

	mu       sync.Mutex
	visible  map[string][]domain.Booking // последний список по id клиента
	inflight map[string]struct{}         // отмены в полёте по id бронирования
}

// NewService создает новый экземпляр менеджера списка бронирований
func NewService(bookingClient BookingServiceClient, logger Logger) *Service {
	return &Service{
		bookingClient: bookingClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
		visible:       make(map[string][]domain.Booking),
		inflight:      make(map[string]struct{}),
	}
}

// List получает все бронирования клиента и дополняет каждое вердиктом
// политики отмены на текущий момент
func (s *Service) List(ctx context.Context, token string) ([]models.BookingView, error) {
	clientID, err := identity.ClientID(token)
	if err != nil {
		s.logger.Warn("List: failed to resolve client id: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	bookings, err := s.bookingClient.GetBookings(ctx, token)
	if err != nil {
		s.logger.Error("List: failed to fetch bookings for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.mu.Lock()
	s.visible[clientID] = bookings
	s.mu.Unlock()

	s.logger.Info("List: fetched %d bookings for client=%s", len(bookings), clientID)
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// Cancel отменяет бронирование клиента
//
// Отказывает, если по этому бронированию уже выполняется отмена, и если
// окно бесплатной отмены закрыто (менее 2 часов до начала). При успехе
// бронирование убирается из видимого списка; при ошибке список не трогается
func (s *Service) Cancel(ctx context.Context, token string, bookingID string) error {
	clientID, err := identity.ClientID(token)
	if err != nil {
		s.logger.Warn("Cancel: failed to resolve client id: %v", err)
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	s.logger.Info("Cancel: cancelling booking id=%s for client=%s", bookingID, clientID)

	// Защита от повторного нажатия: вторая отмена того же бронирования
	// отклоняется, пока первая в полёте
	if err := s.acquire(bookingID); err != nil {
		s.logger.Warn("Cancel: duplicate cancel for booking id=%s", bookingID)
		return err
	}
	defer s.release(bookingID)

	booking, err := s.findBooking(ctx, token, clientID, bookingID)
	if err != nil {
		return err
	}

	if !booking.CanCancelFree(s.timeProvider.Now()) {
		s.logger.Warn("Cancel: window closed for booking id=%s (starts at %s)",
			bookingID, booking.StartsAt.Format(domain.DateFormat+" "+domain.TimeFormat))
		return ErrCancellationWindowClosed
	}

	if err := s.bookingClient.CancelBooking(ctx, token, bookingID); err != nil {
		if errors.Is(err, bookingservice.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: booking service error for id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Оптимистичное удаление из видимого списка; отката нет
	s.mu.Lock()
	s.visible[clientID] = removeBooking(s.visible[clientID], bookingID)
	s.mu.Unlock()

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// findBooking ищет бронирование в видимом списке клиента;
// при отсутствии кэша список запрашивается заново
func (s *Service) findBooking(ctx context.Context, token, clientID, bookingID string) (*domain.Booking, error) {
	s.mu.Lock()
	cached, ok := s.visible[clientID]
	s.mu.Unlock()

	if !ok {
		bookings, err := s.bookingClient.GetBookings(ctx, token)
		if err != nil {
			s.logger.Error("Cancel: failed to fetch bookings for client=%s: %v", clientID, err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		s.mu.Lock()
		s.visible[clientID] = bookings
		s.mu.Unlock()
		cached = bookings
	}

	for i := range cached {
		if cached[i].ID == bookingID {
			return &cached[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

func (s *Service) acquire(bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[bookingID]; busy {
		return ErrCancelInFlight
	}
	s.inflight[bookingID] = struct{}{}
	return nil
}

func (s *Service) release(bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, bookingID)
}

func removeBooking(bookings []domain.Booking, bookingID string) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != bookingID {
			out = append(out, b)
		}
	}
	return out
}
