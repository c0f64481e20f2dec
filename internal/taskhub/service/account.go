package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/pkg/cryptox"
	"github.com/opencrew/taskhub/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRequest     = errors.New("invalid request")
)

type AccountService struct {
	Store store.Store
}

// SignIn verifies the email/password pair against the stored argon2id
// hash. Unknown address and wrong password collapse into the same error
// so the endpoint does not leak which addresses have accounts.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetActiveUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("sign-in attempt for unknown email")
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("sign-in attempt with wrong password", slog.String("user_id", user.ID.String()))
		return domain.User{}, ErrInvalidCredentials
	}

	log.Info("user signed in", slog.String("user_id", user.ID.String()))
	return user, nil
}

// GetUser returns the account behind a session.
func (s *AccountService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	id, err := parseID(userID)
	if err != nil {
		return domain.User{}, ErrInvalidRequest
	}
	return s.Store.Users().GetUserByID(ctx, id)
}
