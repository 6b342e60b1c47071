package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/bookingservice"
)

type fakeCatalogClient struct {
	products []domain.Product
	err      error
}

func (f *fakeCatalogClient) GetProducts(_ context.Context, _ string) ([]domain.Product, error) {
	return f.products, f.err
}

type fakeBookingClient struct {
	gotRequest *bookingservice.CreateBookingRequest
	booking    *domain.Booking
	err        error
}

func (f *fakeBookingClient) CreateBooking(_ context.Context, _ string, req *bookingservice.CreateBookingRequest) (*domain.Booking, error) {
	f.gotRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:             "kayak-1",
			Name:           "Kayak doble",
			PricePerTurn:   decimal.RequireFromString("10"),
			RequiresSafety: true,
			SafetyDevices:  []string{"chaleco"},
		},
		{
			ID:           "sombrilla-1",
			Name:         "Sombrilla",
			PricePerTurn: decimal.RequireFromString("15"),
		},
	}
}

func validRequest(t *testing.T) *Request {
	return &Request{
		Token:              testToken(t, jwt.MapClaims{"id": "client-7"}),
		Name:               "Ana Torres",
		Email:              "ana@example.com",
		Phone:              "+54 11 5555-0101",
		SelectedProductIDs: []string{"kayak-1", "sombrilla-1"},
		Date:               time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		StartTime:          "10:30",
		Turns:              2,
		Occupants:          2,
		PaymentMethod:      domain.PaymentCash,
		StormInsurance:     false,
	}
}

func newTestUseCase(catalog *fakeCatalogClient, booking *fakeBookingClient, now time.Time) *UseCase {
	uc := NewUseCase(catalog, booking, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecuteBuildsDraft(t *testing.T) {
	now := time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC)
	bookingClient := &fakeBookingClient{booking: &domain.Booking{ID: "b-1"}}
	uc := newTestUseCase(&fakeCatalogClient{products: testCatalog()}, bookingClient, now)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	draft := bookingClient.gotRequest
	require.NotNil(t, draft)

	assert.Equal(t, "client-7", draft.ClientID)
	assert.Equal(t, []bookingservice.BookingLineRequest{
		{ProductID: "kayak-1", Quantity: 1},
		{ProductID: "sombrilla-1", Quantity: 1},
	}, draft.Lines)

	// Конец = начало + 30 минут за каждый турн
	assert.Equal(t, time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC), draft.StartsAt)
	assert.Equal(t, time.Date(2025, 7, 14, 11, 30, 0, 0, time.UTC), draft.EndsAt)

	// Устройства требует только каяк
	assert.True(t, draft.SafetyIncluded)
	assert.Equal(t, []string{"chaleco"}, draft.SafetyDevices)

	assert.Equal(t, "b-1", resp.Booking.ID)
	// (10+15)*2 со скидкой 10% = 45.00
	assert.Equal(t, "45.00", resp.Quote.Total.StringFixed(2))
}

func TestExecuteEndInstantPerTurnCount(t *testing.T) {
	now := time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC)

	for turns := 1; turns <= 3; turns++ {
		bookingClient := &fakeBookingClient{booking: &domain.Booking{ID: "b-1"}}
		uc := newTestUseCase(&fakeCatalogClient{products: testCatalog()}, bookingClient, now)

		req := validRequest(t)
		req.Turns = turns

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		wantEnd := bookingClient.gotRequest.StartsAt.Add(time.Duration(turns*30) * time.Minute)
		assert.Equal(t, wantEnd, bookingClient.gotRequest.EndsAt, "turns=%d", turns)
	}
}

func TestExecuteNoSafetyDevicesOmitted(t *testing.T) {
	now := time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC)
	bookingClient := &fakeBookingClient{booking: &domain.Booking{ID: "b-2"}}
	uc := newTestUseCase(&fakeCatalogClient{products: testCatalog()}, bookingClient, now)

	req := validRequest(t)
	req.SelectedProductIDs = []string{"sombrilla-1"}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, bookingClient.gotRequest.SafetyIncluded)
	assert.Nil(t, bookingClient.gotRequest.SafetyDevices)
}

func TestExecuteValidationFailures(t *testing.T) {
	now := time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "пустое имя",
			mutate:  func(r *Request) { r.Name = "  " },
			wantErr: ErrMissingContactInfo,
		},
		{
			name:    "пустой email",
			mutate:  func(r *Request) { r.Email = "" },
			wantErr: ErrMissingContactInfo,
		},
		{
			name:    "пустой телефон",
			mutate:  func(r *Request) { r.Phone = "" },
			wantErr: ErrMissingContactInfo,
		},
		{
			name:    "не выбрана дата",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrMissingSchedule,
		},
		{
			name:    "не выбрано время",
			mutate:  func(r *Request) { r.StartTime = "" },
			wantErr: ErrMissingSchedule,
		},
		{
			name:    "время вне сетки слотов",
			mutate:  func(r *Request) { r.StartTime = "08:15" },
			wantErr: ErrInvalidStartSlot,
		},
		{
			name:    "слишком много турнов",
			mutate:  func(r *Request) { r.Turns = 4 },
			wantErr: ErrInvalidTurns,
		},
		{
			name:    "слишком много людей",
			mutate:  func(r *Request) { r.Occupants = 3 },
			wantErr: ErrInvalidOccupants,
		},
		{
			name:    "неизвестный способ оплаты",
			mutate:  func(r *Request) { r.PaymentMethod = "cheque" },
			wantErr: ErrInvalidPaymentMethod,
		},
		{
			name:    "пустой выбор товаров",
			mutate:  func(r *Request) { r.SelectedProductIDs = nil },
			wantErr: ErrEmptyProductSelection,
		},
		{
			name:    "дата в прошлом",
			mutate:  func(r *Request) { r.Date = now.AddDate(0, 0, -1) },
			wantErr: ErrDateOutOfRange,
		},
		{
			name:    "дата дальше 48 часов",
			mutate:  func(r *Request) { r.Date = now.AddDate(0, 0, 5) },
			wantErr: ErrDateOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingClient := &fakeBookingClient{booking: &domain.Booking{}}
			uc := newTestUseCase(&fakeCatalogClient{products: testCatalog()}, bookingClient, now)

			req := validRequest(t)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, bookingClient.gotRequest, "draft must not be submitted")
		})
	}
}

func TestExecuteTokenFailures(t *testing.T) {
	now := time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "токен отсутствует", token: "", wantErr: ErrTokenMissing},
		{name: "токен не разбирается", token: "garbage", wantErr: ErrTokenInvalid},
		{name: "нет id клиента", token: testToken(t, jwt.MapClaims{"role": "customer"}), wantErr: ErrClientIDMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeCatalogClient{products: testCatalog()}, &fakeBookingClient{}, now)

			req := validRequest(t)
			req.Token = tt.token

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecuteBookingRejected(t *testing.T) {
	now := time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC)
	rejection := errors.New("bookingservice client: request rejected: slot already taken")
	uc := newTestUseCase(
		&fakeCatalogClient{products: testCatalog()},
		&fakeBookingClient{err: rejection},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrRejected)
	// Сообщение сервера сохраняется для показа клиенту
	assert.Contains(t, err.Error(), "slot already taken")
}

func TestExecuteCatalogFetchFails(t *testing.T) {
	now := time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeCatalogClient{err: errors.New("catalog down")},
		&fakeBookingClient{},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}
