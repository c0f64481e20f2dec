package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/jwtx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type SignInHandler struct {
	AccountService *service.AccountService
	Signer         jwtx.Signer
	Issuer         string
	SessionTTL     time.Duration
	SecureCookies  bool
}

// ServeHTTP godoc
//
//	@Summary		Sign In
//	@Description	Verify email and password, then set a signed session cookie valid for one hour.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.SignInRequest	true	"Credentials"
//	@Success		200		{object}	tasksdk.SignInResponse
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Router			/v1/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req tasksdk.SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AccountService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Email or password is incorrect")
			return
		}
		writeServiceError(w, r, err)
		return
	}

	ttl := h.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID.String(), user.Email, user.Name, h.Issuer, ttl, time.Now().UTC())
	token, err := h.Signer.Sign(claims)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.WriteJSON(w, http.StatusOK, tasksdk.SignInResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
	})
}

type SignOutHandler struct {
	SecureCookies bool
}

// ServeHTTP godoc
//
//	@Summary		Sign Out
//	@Description	Clear the session cookie. The token itself simply ages out.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"No Content"
//	@Router			/v1/signout [post].
func (h *SignOutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
