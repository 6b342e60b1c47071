package sign_up

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
)

type fakeAuthClient struct {
	resp   *authservice.AuthResponse
	err    error
	called bool
}

func (f *fakeAuthClient) Register(_ context.Context, _, _, _ string) (*authservice.AuthResponse, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, client *fakeAuthClient, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(client, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestSignUpSuccess(t *testing.T) {
	client := &fakeAuthClient{resp: &authservice.AuthResponse{Token: "jwt-1"}}

	rec := doRequest(t, client,
		`{"name":"Ana","email":"ana@example.com","password":"secret","confirmPassword":"secret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "jwt-1")
	assert.True(t, client.called)
}

func TestSignUpPasswordMismatch(t *testing.T) {
	client := &fakeAuthClient{}

	rec := doRequest(t, client,
		`{"name":"Ana","email":"ana@example.com","password":"secret","confirmPassword":"other"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, client.called, "регистрация не вызывается при несовпадении паролей")
}

func TestSignUpMissingFields(t *testing.T) {
	client := &fakeAuthClient{}

	rec := doRequest(t, client, `{"email":"ana@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, client.called)
}

func TestSignUpRejected(t *testing.T) {
	client := &fakeAuthClient{err: authservice.ErrRejected}

	rec := doRequest(t, client,
		`{"name":"Ana","email":"ana@example.com","password":"secret","confirmPassword":"secret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
