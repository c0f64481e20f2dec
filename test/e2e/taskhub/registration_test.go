package taskhub_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/opencrew/taskhub/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFlow(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	user := registerUser(t, env, "alice@example.com", "Alice")
	require.NotEmpty(t, user.ID)
	require.Equal(t, "Alice", user.Name)

	session, err := env.client.SignIn(ctx, "alice@example.com", defaultPassword)
	require.NoError(t, err)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
	require.Equal(t, "alice@example.com", me.Email)
}

func TestRegistrationRejectsTakenEmail(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	registerUser(t, env, "alice@example.com", "Alice")

	_, err := env.client.Register(ctx, "alice@example.com", "Impostor", defaultPassword)
	require.Error(t, err)

	var apiErr *tasksdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, tasksdk.ErrorCodeEmailTaken, apiErr.Code)
}

func TestVerifyEmailRejectsWrongCode(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	reg, err := env.client.Register(ctx, "alice@example.com", "Alice", defaultPassword)
	require.NoError(t, err)

	_, err = env.client.VerifyEmail(ctx, reg.ProcessID, "000000")
	require.Error(t, err)

	// The right code still works after a failed attempt.
	code := latestVerificationCode(t, env, "alice@example.com")
	user, err := env.client.VerifyEmail(ctx, reg.ProcessID, code)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	registerUser(t, env, "alice@example.com", "Alice")

	_, err := env.client.SignIn(ctx, "alice@example.com", "WrongPassword!")
	require.Error(t, err)

	_, err = env.client.SignIn(ctx, "nobody@example.com", defaultPassword)
	require.Error(t, err)
}

func TestSignOutInvalidatesNothingButCookieStillRequired(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	session := signUp(t, env, "alice@example.com", "Alice")

	_, err := session.Me(ctx)
	require.NoError(t, err)

	require.NoError(t, session.SignOut(ctx))

	// Requests without any cookie are rejected.
	bare := env.client.NewSessionFromCookie("")
	_, err = bare.Me(ctx)
	require.Error(t, err)
}

func TestSessionCookieIsPortable(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	session := signUp(t, env, "alice@example.com", "Alice")

	// A session rebuilt from just the cookie value works, mirroring a
	// browser reload.
	restored := env.client.NewSessionFromCookie(session.CookieValue())
	me, err := restored.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, session.UserID(), me.ID)
}
