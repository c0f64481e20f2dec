package domain

import (
	"time"

	"github.com/opencrew/taskhub/pkg/idx"
)

// User is an account holder. PasswordHash is a PHC-format argon2id string
// and never leaves the store layer.
type User struct {
	ID           idx.ID
	Email        string
	Name         string
	PasswordHash string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Verification tracks a pending email registration. The record holds the
// argon2id hash of the submitted password so the User row can be created
// without re-prompting once the code checks out. Codes expire after ten
// minutes.
type Verification struct {
	ID           idx.ID
	ProcessID    string // uuid handed back to the client
	Email        string
	Name         string
	PasswordHash string
	Code         string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired reports whether the verification window has closed.
func (v Verification) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
