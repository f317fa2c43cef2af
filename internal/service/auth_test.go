package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fam-nudger/backend/internal/service"
	"github.com/fam-nudger/backend/internal/testdb"
)

func TestAuthService(t *testing.T) {
	db := testdb.Open(t)
	auth := service.NewAuthService(db, "test-secret")
	ctx := context.Background()

	t.Run("register and validate", func(t *testing.T) {
		token, err := auth.Register(ctx, "Dana", "dana@example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "dana@example.com", claims.Email)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", claims.UserID.String())
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := auth.Register(ctx, "Dana Again", "dana@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, service.ErrUserExists)
	})

	t.Run("login with correct password", func(t *testing.T) {
		token, err := auth.Login(ctx, "dana@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "dana@example.com", "wrong-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		token, err := auth.Login(ctx, "dana@example.com", "hunter2hunter2")
		require.NoError(t, err)

		_, err = auth.ValidateToken(token + "x")
		assert.Error(t, err)

		other := service.NewAuthService(db, "different-secret")
		_, err = other.ValidateToken(token)
		assert.Error(t, err)
	})
}
