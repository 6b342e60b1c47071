package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с AuthService
// Шлюз не выпускает и не проверяет токены: все операции проксируются
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// Option опция конфигурации клиента
type Option func(*Client)

// WithTransport задает транспорт HTTP клиента (например, для сбора метрик)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// NewClient создает новый экземпляр клиента AuthService
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login выполняет вход по email и паролю
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.post(ctx, "/login", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.log.Info("AuthService: login succeeded for email=%s", email)
	return &out, nil
}

// Register регистрирует нового клиента
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.post(ctx, "/signup", RegisterRequest{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.log.Info("AuthService: registered new client email=%s", email)
	return &out, nil
}

// ForgotPassword запрашивает отправку ссылки восстановления пароля
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.post(ctx, "/forgot-password", ForgotPasswordRequest{Email: email}, &out)
	if err != nil {
		return nil, err
	}
	c.log.Info("AuthService: password reset link requested for email=%s", email)
	return &out, nil
}

// ResetPassword устанавливает новый пароль по токену восстановления
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPut, "/reset-password/"+resetToken, ResetPasswordRequest{Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.log.Info("AuthService: password reset completed")
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var serverErr ErrorResponse
	_ = json.Unmarshal(body, &serverErr)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}

	if serverErr.Message != "" {
		return fmt.Errorf("%w: %s", ErrRejected, serverErr.Message)
	}
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrRejected, resp.StatusCode, string(body))
}
