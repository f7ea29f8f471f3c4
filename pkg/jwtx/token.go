// Package jwtx mints and verifies the HS256 session tokens handed out at
// login. The token subject is the username; the core stores stay keyed by
// explicit username and never see the token.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a login token stays valid.
const DefaultSessionTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("jwtx: invalid token")

// Signer mints signed session tokens.
type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Sign returns a signed token whose subject is username.
func (s *Signer) Sign(username string) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    s.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verifier validates session tokens minted by Signer.
type Verifier struct {
	Secret []byte
	Issuer string
}

// Verify checks the signature, issuer and expiry of raw and returns the
// subject (username) on success.
func (v *Verifier) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return v.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
