package bookingservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, 5*time.Second, nopLogger{})
}

func TestCreateBookingSendsWireFormat(t *testing.T) {
	var got map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"bk-1","cliente":"client-1"}`))
	})

	booking, err := client.CreateBooking(context.Background(), "tok-1", &CreateBookingRequest{
		ClientID: "client-1",
		Lines: []BookingLineRequest{
			{ProductID: "kayak-1", Quantity: 1},
		},
		StartsAt:       time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC),
		EndsAt:         time.Date(2025, 7, 15, 11, 30, 0, 0, time.UTC),
		SafetyIncluded: true,
		SafetyDevices:  []string{"chaleco salvavidas"},
	})
	require.NoError(t, err)
	assert.Equal(t, "bk-1", booking.ID)

	// Поля запроса соответствуют контракту внешнего API
	assert.Equal(t, "client-1", got["cliente"])
	assert.Contains(t, got, "productos")
	assert.Contains(t, got, "fecha_inicio")
	assert.Equal(t, true, got["seguridad_incluida"])
	assert.Equal(t, []interface{}{"chaleco salvavidas"}, got["dispositivos_seguridad_seleccionados"])
}

func TestCreateBookingOmitsEmptySafetyDevices(t *testing.T) {
	var got map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"bk-1"}`))
	})

	_, err := client.CreateBooking(context.Background(), "tok", &CreateBookingRequest{
		ClientID: "client-1",
	})
	require.NoError(t, err)

	assert.NotContains(t, got, "dispositivos_seguridad_seleccionados")
}

func TestCreateBookingRejectionCarriesServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"no hay disponibilidad para ese horario"}`))
	})

	_, err := client.CreateBooking(context.Background(), "tok", &CreateBookingRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "no hay disponibilidad para ese horario")
}

func TestCreateBookingUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.CreateBooking(context.Background(), "tok", &CreateBookingRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetBookingsUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)

		_, _ = w.Write([]byte(`{"data":[
			{"_id":"bk-1","cliente":"client-1","precio_total":"45.00"},
			{"_id":"bk-2","cliente":"client-1","precio_total":"16.50"}
		]}`))
	})

	bookings, err := client.GetBookings(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "bk-1", bookings[0].ID)
	assert.Equal(t, "45", bookings[0].TotalPrice.String())
}

func TestCancelBookingNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/bookings/bk-404", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.CancelBooking(context.Background(), "tok", "bk-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBookingNoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.CancelBooking(context.Background(), "tok", "bk-1")
	assert.NoError(t, err)
}

func TestClientUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, nopLogger{})

	_, err := client.GetBookings(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnavailable)
}
