package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/opencrew/taskhub/pkg/jwtx"
	"github.com/opencrew/taskhub/pkg/slogx"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "taskhub_session"

// SessionMiddleware verifies the session token (cookie first, then a Bearer
// header for non-browser clients) and injects the actor into the request
// context. Requests without a valid session get a 401.
func SessionMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := sessionToken(r)
			if raw == "" {
				writeSessionError(w, "missing session token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				writeSessionError(w, "session verification failed")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeSessionError(w, "session expired")
				return
			}

			ctx = contextWithActor(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}

	return ""
}

func contextWithActor(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyActor, Actor{
		ID:    c.Subject,
		Email: c.Email,
		Name:  c.Name,
	})
	return ctx
}

func writeSessionError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": desc,
	})
}
