package tasksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SessionCookieName is the cookie the server issues on sign-in. It must
// match the server's httpx package.
const SessionCookieName = "taskhub_session"

// SDKClient is a client for the TaskHub service. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new TaskHub client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignIn exchanges credentials for an authenticated Session. The session
// cookie from the Set-Cookie header is captured and replayed on every
// subsequent Session call.
func (c *SDKClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body, err := jsonBody(SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/signin", body, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var profile SignInResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	cookie := sessionCookie(resp)
	if cookie == nil {
		return nil, &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: "server did not set a session cookie",
		}
	}

	return &Session{client: c, cookie: cookie, profile: profile}, nil
}

// NewSessionFromCookie rebuilds a Session from a previously captured
// session cookie value, e.g. one persisted across process restarts.
func (c *SDKClient) NewSessionFromCookie(value string) *Session {
	return &Session{
		client: c,
		cookie: &http.Cookie{Name: SessionCookieName, Value: value},
	}
}

// Register starts an email-verified signup and returns the process id the
// caller must echo together with the emailed 6-digit code.
func (c *SDKClient) Register(ctx context.Context, email, name, password string) (*RegisterResponse, error) {
	body, err := jsonBody(RegisterRequest{Email: email, Name: name, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/users/register", body, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusAccepted); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyEmail completes a signup with the emailed code and returns the
// newly created account.
func (c *SDKClient) VerifyEmail(ctx context.Context, processID, code string) (*UserResponse, error) {
	body, err := jsonBody(VerifyEmailRequest{ProcessID: processID, Code: code})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/users/email/verify", body, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// sessionCookie extracts the session cookie from a sign-in response.
func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}
