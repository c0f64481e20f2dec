package sqlite

import (
	"context"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
)

type verificationsRepo struct {
	db dbtx
}

func (r *verificationsRepo) CreateVerification(ctx context.Context, v domain.Verification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO verifications (id, process_id, email, name, password_hash, code, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.ProcessID, v.Email, v.Name, v.PasswordHash, v.Code, v.ExpiresAt, v.CreatedAt)
	return mapConflict(err)
}

// ConsumeVerification deletes and returns in a single statement so two
// concurrent submissions of the same code cannot both succeed.
func (r *verificationsRepo) ConsumeVerification(ctx context.Context, processID, code string) (domain.Verification, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM verifications
		WHERE process_id = ? AND code = ?
		RETURNING id, process_id, email, name, password_hash, code, expires_at, created_at`,
		processID, code)

	var v domain.Verification
	err := row.Scan(&v.ID, &v.ProcessID, &v.Email, &v.Name, &v.PasswordHash, &v.Code, &v.ExpiresAt, &v.CreatedAt)
	if err != nil {
		return domain.Verification{}, mapNotFound(err)
	}
	return v, nil
}

func (r *verificationsRepo) DeleteVerificationsByEmail(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM verifications WHERE email = ?`, email)
	return err
}

func (r *verificationsRepo) DeleteExpiredVerifications(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM verifications WHERE expires_at < ?`, now)
	return err
}
