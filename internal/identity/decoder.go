package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims типизированный контракт клеймов токена аутентификации
// Канонический клейм идентификатора клиента - "id"; "userId" и "sub"
// поддерживаются как миграционные синонимы старых версий AuthService
type Claims struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// ClientID извлекает идентификатор клиента из bearer токена
// Токен только декодируется: проверка подписи - зона ответственности
// AuthService, ключа подписи у шлюза нет
func ClientID(token string) (string, error) {
	if token == "" {
		return "", ErrTokenMissing
	}

	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	// Порядок совпадает с порядком проверки полей в старом клиенте
	if claims.ID != "" {
		return claims.ID, nil
	}
	if claims.UserID != "" {
		return claims.UserID, nil
	}
	if claims.Subject != "" {
		return claims.Subject, nil
	}

	return "", ErrClientIDMissing
}
