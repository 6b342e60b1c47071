package identity

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestClientID(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{
			name:   "канонический клейм id",
			claims: jwt.MapClaims{"id": "client-1"},
			want:   "client-1",
		},
		{
			name:   "миграционный клейм userId",
			claims: jwt.MapClaims{"userId": "client-2"},
			want:   "client-2",
		},
		{
			name:   "миграционный клейм sub",
			claims: jwt.MapClaims{"sub": "client-3"},
			want:   "client-3",
		},
		{
			name:   "id имеет приоритет над синонимами",
			claims: jwt.MapClaims{"id": "primary", "userId": "legacy", "sub": "older"},
			want:   "primary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClientID(signToken(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientIDErrors(t *testing.T) {
	_, err := ClientID("")
	assert.ErrorIs(t, err, ErrTokenMissing)

	_, err = ClientID("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = ClientID(signToken(t, jwt.MapClaims{"role": "customer"}))
	assert.ErrorIs(t, err, ErrClientIDMissing)
}
