package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSessionToken(t *testing.T) (string, jwtx.Verifier) {
	t.Helper()

	pemKey, err := jwtx.LoadOrGenerateKey("")
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(pemKey)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("user-1", "ada@example.com", "Ada", "test", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	return token, jwtx.NewVerifierEdDSA(signer.PublicKey(), "test")
}

func TestSessionMiddleware(t *testing.T) {
	token, verifier := newSessionToken(t)

	var gotActor httpx.Actor
	var gotOK bool
	handler := httpx.SessionMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotActor, gotOK = httpx.ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("accepts session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, gotOK)
		require.Equal(t, "user-1", gotActor.ID)
		require.Equal(t, "ada@example.com", gotActor.Email)
		require.Equal(t, "Ada", gotActor.Name)
	})

	t.Run("accepts bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: "garbage"})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects token from foreign key", func(t *testing.T) {
		foreignToken, _ := newSessionToken(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: foreignToken})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
