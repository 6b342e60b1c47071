package catalogservice

import (
	"context"
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

func TestGetProductsUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"data":[
			{"_id":"kayak-1","nombre":"Kayak simple","precio_por_turno":"15.00",
			 "requiere_seguridad":true,"dispositivos_seguridad":["chaleco salvavidas"],"capacidad_maxima":1},
			{"_id":"sombrilla-1","nombre":"Sombrilla","precio_por_turno":"5.00",
			 "requiere_seguridad":false,"capacidad_maxima":4}
		]}`))
	})

	products, err := client.GetProducts(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "kayak-1", products[0].ID)
	assert.Equal(t, "15", products[0].PricePerTurn.String())
	assert.Equal(t, []string{"chaleco salvavidas"}, products[0].RequiredSafetyDevices())
	assert.Empty(t, products[1].RequiredSafetyDevices())
}

func TestGetProductsIsIdempotent(t *testing.T) {
	const payload = `{"data":[
		{"_id":"kayak-1","nombre":"Kayak simple","precio_por_turno":"15.00"},
		{"_id":"tabla-1","nombre":"Tabla de surf","precio_por_turno":"10.00"}
	]}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	first, err := client.GetProducts(context.Background(), "tok")
	require.NoError(t, err)
	second, err := client.GetProducts(context.Background(), "tok")
	require.NoError(t, err)

	// Повторный запрос возвращает тот же каталог в том же порядке
	assert.Equal(t, first, second)
}

func TestGetProductsUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetProducts(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetProductsUnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	})

	_, err := client.GetProducts(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetProductsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, nopLogger{})

	_, err := client.GetProducts(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetProductsInvalidBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.GetProducts(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
