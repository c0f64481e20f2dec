package service

import (
	"context"
	"testing"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/cryptox"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndVerifyEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := &RegistrationService{Store: st, Mailer: mailer}

	processID, err := svc.Register(ctx, "ada@example.com", "Ada", testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, processID)
	require.Equal(t, "ada@example.com", mailer.lastTo)
	require.Len(t, mailer.lastCode, 6)

	user, err := svc.VerifyEmail(ctx, processID, mailer.lastCode)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", user.Email)
	require.Equal(t, "Ada", user.Name)
	require.False(t, user.ID.IsZero())

	// The freshly verified account can sign in.
	accounts := &AccountService{Store: st}
	got, err := accounts.SignIn(ctx, "ada@example.com", testPassword)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := &RegistrationService{Store: newTestStore(t), Mailer: &captureMailer{}}

	_, err := svc.Register(context.Background(), "a@b.c", "A", "short")
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "taken@example.com", "Original")

	svc := &RegistrationService{Store: st, Mailer: &captureMailer{}}
	_, err := svc.Register(ctx, "taken@example.com", "Copy", testPassword)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerifyEmailRejectsWrongCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := &RegistrationService{Store: st, Mailer: mailer}

	processID, err := svc.Register(ctx, "ada@example.com", "Ada", testPassword)
	require.NoError(t, err)

	wrong := "000000"
	if mailer.lastCode == wrong {
		wrong = "000001"
	}

	_, err = svc.VerifyEmail(ctx, processID, wrong)
	require.ErrorIs(t, err, ErrVerificationInvalid)

	// The right code still works after a failed attempt.
	_, err = svc.VerifyEmail(ctx, processID, mailer.lastCode)
	require.NoError(t, err)
}

func TestVerifyEmailCodeIsSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := &RegistrationService{Store: st, Mailer: mailer}

	processID, err := svc.Register(ctx, "ada@example.com", "Ada", testPassword)
	require.NoError(t, err)

	_, err = svc.VerifyEmail(ctx, processID, mailer.lastCode)
	require.NoError(t, err)

	_, err = svc.VerifyEmail(ctx, processID, mailer.lastCode)
	require.ErrorIs(t, err, ErrVerificationInvalid)
}

func TestVerifyEmailRejectsExpiredCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RegistrationService{Store: st, Mailer: &captureMailer{}}

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	// Seed a verification whose window has already closed.
	v := domain.Verification{
		ID:           idx.New(),
		ProcessID:    "stale-process",
		Email:        "late@example.com",
		Name:         "Latecomer",
		PasswordHash: hash,
		Code:         "123456",
		ExpiresAt:    nowUTC().Add(-time.Minute),
		CreatedAt:    nowUTC().Add(-VerificationTTL - time.Minute),
	}
	require.NoError(t, st.Verifications().CreateVerification(ctx, v))

	// The digits match, but the window has closed.
	_, err = svc.VerifyEmail(ctx, "stale-process", "123456")
	require.ErrorIs(t, err, ErrVerificationInvalid)
}

func TestReRegisterReplacesPendingCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := &RegistrationService{Store: st, Mailer: mailer}

	first, err := svc.Register(ctx, "ada@example.com", "Ada", testPassword)
	require.NoError(t, err)
	firstCode := mailer.lastCode

	second, err := svc.Register(ctx, "ada@example.com", "Ada", testPassword)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// The first attempt was invalidated by the second.
	_, err = svc.VerifyEmail(ctx, first, firstCode)
	require.ErrorIs(t, err, ErrVerificationInvalid)

	_, err = svc.VerifyEmail(ctx, second, mailer.lastCode)
	require.NoError(t, err)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "ada@example.com", "Ada")

	svc := &AccountService{Store: st}

	_, err := svc.SignIn(ctx, "ada@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown address yields the same error as a wrong password.
	_, err = svc.SignIn(ctx, "nobody@example.com", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
