package tasksdk

import (
	"context"
	"net/http"
)

// Session represents an authenticated session. The server issues a signed
// HttpOnly cookie on sign-in; the Session replays it on every call and
// carries no client-side state beyond the cached sign-in profile.
type Session struct {
	client  *SDKClient
	cookie  *http.Cookie
	profile SignInResponse
}

// UserID returns the signed-in account's id as reported at sign-in.
// Empty for sessions rebuilt from a raw cookie value.
func (s *Session) UserID() string { return s.profile.UserID }

// Email returns the signed-in account's email as reported at sign-in.
func (s *Session) Email() string { return s.profile.Email }

// CookieValue returns the raw session cookie value for persistence.
func (s *Session) CookieValue() string { return s.cookie.Value }

// Me fetches the signed-in account's profile.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/users", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignOut asks the server to clear the session cookie. The Session must
// not be used afterwards.
func (s *Session) SignOut(ctx context.Context) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/signout", nil, nil, http.StatusNoContent)
}
