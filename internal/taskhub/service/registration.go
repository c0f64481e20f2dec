package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/mail"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/pkg/cryptox"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/slogx"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrVerificationInvalid = errors.New("verification code invalid or expired")
	ErrWeakPassword        = errors.New("password too short")
)

// VerificationTTL is how long a registration code stays redeemable.
const VerificationTTL = 10 * time.Minute

const minPasswordLength = 8

type RegistrationService struct {
	Store  store.Store
	Mailer mail.Mailer
}

// Register starts an email-verified signup. The password is hashed up
// front and parked on the verification record so it is never stored in
// the clear, then a 6-digit code is emailed to the address. The returned
// process id pairs the later code submission with this attempt.
func (s *RegistrationService) Register(ctx context.Context, email, name, password string) (string, error) {
	log := slogx.FromContext(ctx)

	if email == "" || name == "" {
		return "", ErrInvalidRequest
	}
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}

	taken, err := s.Store.Users().EmailTaken(ctx, email)
	if err != nil {
		log.Error("failed to check email availability", slog.Any("error", err))
		return "", err
	}
	if taken {
		log.Warn("registration attempt for taken email")
		return "", ErrEmailTaken
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return "", err
	}

	code, err := cryptox.GenerateNumericCode(6)
	if err != nil {
		log.Error("failed to generate verification code", slog.Any("error", err))
		return "", err
	}

	v := domain.Verification{
		ID:           idx.New(),
		ProcessID:    uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Code:         code,
		ExpiresAt:    nowUTC().Add(VerificationTTL),
		CreatedAt:    nowUTC(),
	}

	// A fresh attempt invalidates earlier codes for the same address.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Verifications().DeleteVerificationsByEmail(ctx, email); err != nil {
			return err
		}
		return tx.Verifications().CreateVerification(ctx, v)
	})
	if err != nil {
		log.Error("failed to store verification", slog.Any("error", err))
		return "", err
	}

	if err := s.Mailer.SendVerificationCode(ctx, email, name, code); err != nil {
		return "", err
	}

	log.Info("registration started", slog.String("process_id", v.ProcessID))
	return v.ProcessID, nil
}

// VerifyEmail redeems a code and creates the account. The consume is a
// single atomic delete, so a code can only ever mint one user even under
// concurrent submissions.
func (s *RegistrationService) VerifyEmail(ctx context.Context, processID, code string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if processID == "" || code == "" {
		return domain.User{}, ErrVerificationInvalid
	}

	v, err := s.Store.Verifications().ConsumeVerification(ctx, processID, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("verification attempt with invalid code", slog.String("process_id", processID))
			return domain.User{}, ErrVerificationInvalid
		}
		log.Error("failed to consume verification", slog.Any("error", err))
		return domain.User{}, err
	}

	if v.Expired(nowUTC()) {
		log.Warn("verification attempt with expired code", slog.String("process_id", processID))
		return domain.User{}, ErrVerificationInvalid
	}

	user := domain.User{
		ID:           idx.New(),
		Email:        v.Email,
		Name:         v.Name,
		PasswordHash: v.PasswordHash,
		Status:       domain.StatusActive,
		CreatedAt:    nowUTC(),
		UpdatedAt:    nowUTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Someone registered the address between Register and now.
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}
