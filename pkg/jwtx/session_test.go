package jwtx

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *EdDSASigner {
	t.Helper()

	pemKey, err := LoadOrGenerateKey("")
	require.NoError(t, err)

	signer, err := NewSignerEdDSA(pemKey)
	require.NoError(t, err)
	return signer
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer := newTestSigner(t)
	verifier := NewVerifierEdDSA(signer.PublicKey(), "taskhub-test")

	claims := NewSessionClaims("user-123", "ada@example.com", "Ada", "taskhub-test", DefaultSessionTTL, time.Now().UTC())

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "ada@example.com", got.Email)
	require.Equal(t, "Ada", got.Name)
	require.Equal(t, "taskhub-test", got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be populated")
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := newTestSigner(t)
	verifier := NewVerifierEdDSA(signer.PublicKey(), "expected-issuer")

	claims := NewSessionClaims("user-123", "a@b.c", "A", "other-issuer", DefaultSessionTTL, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer := newTestSigner(t)
	verifier := NewVerifierEdDSA(signer.PublicKey(), "taskhub-test")

	issued := time.Now().UTC().Add(-2 * time.Hour)
	claims := NewSessionClaims("user-123", "a@b.c", "A", "taskhub-test", time.Hour, issued)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	signer := newTestSigner(t)
	other := newTestSigner(t)
	verifier := NewVerifierEdDSA(other.PublicKey(), "taskhub-test")

	claims := NewSessionClaims("user-123", "a@b.c", "A", "taskhub-test", DefaultSessionTTL, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := newTestSigner(t)
	verifier := NewVerifierEdDSA(signer.PublicKey(), "taskhub-test")

	for _, input := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := verifier.Verify(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestLoadOrGenerateKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "session.key")

	first, err := LoadOrGenerateKey(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := LoadOrGenerateKey(path)
	require.NoError(t, err)
	require.Equal(t, first, second, "second load should return the persisted key")

	// Both halves of the pair must parse back into a usable signer.
	signer, err := NewSignerEdDSA(second)
	require.NoError(t, err)
	require.NotNil(t, signer.PublicKey())
}

func TestNewSignerEdDSARejectsBadPEM(t *testing.T) {
	_, err := NewSignerEdDSA([]byte("not pem at all"))
	require.Error(t, err)

	_, err = NewSignerEdDSA([]byte("-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"))
	require.Error(t, err)
}
