//go:build unit

package jwt

import (
	"testing"
	"time"

	"padel-club/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps user id and role", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateToken(42, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "42", claims.Subject)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := svc.GenerateToken(7, user.RolePlayer)
		require.NoError(t, err)

		_, err = NewService("secret", time.Minute).ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateToken(7, user.RolePlayer)
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
