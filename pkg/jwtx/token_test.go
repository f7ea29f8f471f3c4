package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	secret := []byte("test-secret")
	signer := &Signer{Secret: secret, Issuer: "platescan", TTL: time.Hour}
	verifier := &Verifier{Secret: secret, Issuer: "platescan"}

	raw, err := signer.Sign("alice")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	subject, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := &Signer{Secret: []byte("secret-a"), Issuer: "platescan"}
	verifier := &Verifier{Secret: []byte("secret-b"), Issuer: "platescan"}

	raw, err := signer.Sign("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	secret := []byte("test-secret")
	signer := &Signer{Secret: secret, Issuer: "someone-else"}
	verifier := &Verifier{Secret: secret, Issuer: "platescan"}

	raw, err := signer.Sign("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	signer := &Signer{Secret: secret, Issuer: "platescan", TTL: -time.Minute}
	verifier := &Verifier{Secret: secret, Issuer: "platescan"}

	raw, err := signer.Sign("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := &Verifier{Secret: []byte("test-secret"), Issuer: "platescan"}
	_, err := verifier.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
