package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
)

type contextKey string

const tokenContextKey contextKey = "auth_token"

const msgTokenRequired = "требуется авторизация"

// Auth извлекает bearer токен из заголовка Authorization и кладет его
// в контекст запроса. Запросы без токена отклоняются с кодом 401.
// Токен не проверяется: ключа подписи у шлюза нет, проверку выполняют
// внешние сервисы
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearer(r)
		if token == "" {
			handlers.RespondUnauthorized(w, msgTokenRequired)
			return
		}

		ctx := context.WithValue(r.Context(), tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext возвращает bearer токен, сохранённый Auth middleware
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
