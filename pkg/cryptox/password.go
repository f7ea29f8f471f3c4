// Package cryptox implements password hashing for stored credentials.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong reports a password exceeding bcrypt's 72-byte input limit.
var ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")

// HashPassword hashes a plaintext password with bcrypt at the library's
// default cost. The returned string embeds the salt and cost parameters.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Comparison is delegated to the bcrypt library; never compare hashes
// manually, the library's verify routine resists timing side channels.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
