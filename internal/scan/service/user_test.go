package service

import (
	"context"
	"testing"

	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/internal/scan/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUserServiceRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates account and hashes password", func(t *testing.T) {
		user, err := svc.Register(ctx, "alice", "Alice A", "secret123")
		require.NoError(t, err)
		require.Equal(t, "alice", user.Username)
		require.Equal(t, "Alice A", user.Name)
		require.NotEqual(t, "secret123", user.PasswordHash)

		stored, err := svc.GetUser(ctx, "alice")
		require.NoError(t, err)
		require.NotContains(t, stored.PasswordHash, "secret123")
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "Imposter", "hunter2")
		require.ErrorIs(t, err, ErrUsernameAlreadyTaken)

		// The original account is untouched.
		stored, err := svc.GetUser(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "Alice A", stored.Name)
		require.True(t, svc.VerifyPassword(ctx, "alice", "secret123"))
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "Nameless", "pw")
		require.ErrorIs(t, err, ErrInvalidRegistration)

		_, err = svc.Register(ctx, "bob", "Bob", "")
		require.ErrorIs(t, err, ErrInvalidRegistration)
	})
}

func TestUserServiceVerifyPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	_, err := svc.Register(ctx, "alice", "Alice A", "secret123")
	require.NoError(t, err)

	require.True(t, svc.VerifyPassword(ctx, "alice", "secret123"))
	require.False(t, svc.VerifyPassword(ctx, "alice", "wrong"))
	require.False(t, svc.VerifyPassword(ctx, "nobody", "secret123"))
}

func TestUserServiceAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	_, err := svc.Register(ctx, "alice", "Alice A", "secret123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "alice", "secret123")
		require.NoError(t, err)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user indistinguishable from wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody", "secret123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
