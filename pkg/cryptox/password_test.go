package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// bcrypt modular crypt format, e.g. $2a$10$...
			require.True(t, strings.HasPrefix(hash, "$2"),
				"hash should be in bcrypt format")

			require.True(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 100))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("secret123")
	require.NoError(t, err)
	b, err := HashPassword("secret123")
	require.NoError(t, err)

	// Same input must hash differently thanks to per-hash salts
	require.NotEqual(t, a, b)
	require.True(t, VerifyPassword("secret123", a))
	require.True(t, VerifyPassword("secret123", b))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		require.True(t, VerifyPassword("secret123", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		require.False(t, VerifyPassword("wrong", hash))
	})

	t.Run("garbage hash", func(t *testing.T) {
		require.False(t, VerifyPassword("secret123", "not-a-hash"))
	})

	t.Run("empty hash", func(t *testing.T) {
		require.False(t, VerifyPassword("secret123", ""))
	})
}
