package sqlite

import (
	"context"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, org_id, email, role, token_hash, status, expires_at, created_at, updated_at`

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var inv domain.Invitation
	err := row.Scan(&inv.ID, &inv.OrgID, &inv.Email, &inv.Role, &inv.TokenHash,
		&inv.Status, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

// UpsertInvitation re-invites by refreshing the pending row rather than
// stacking a second token for the same address. The INSERT source is a
// one-row SELECT so the admin guard rides along in the same statement.
func (r *invitationsRepo) UpsertInvitation(ctx context.Context, inv domain.Invitation, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		INSERT INTO organization_invitations
			(id, org_id, email, role, token_hash, status, expires_at, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, 'Pending', ?, ?, ?
		WHERE `+adminGuard+`
		ON CONFLICT (org_id, email) WHERE status = 'Pending' DO UPDATE SET
			role = excluded.role,
			token_hash = excluded.token_hash,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at`,
		inv.ID, inv.OrgID, inv.Email, inv.Role, inv.TokenHash,
		inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt,
		inv.OrgID, actorID)
}

func (r *invitationsRepo) GetPendingInvitationByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM organization_invitations
		WHERE token_hash = ? AND status = 'Pending' AND expires_at > ?`,
		hash, now)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ListInvitations(ctx context.Context, orgID, actorID idx.ID) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+invitationColumns+`
		FROM organization_invitations
		WHERE org_id = ? AND `+adminGuard+`
		ORDER BY created_at DESC`,
		orgID, orgID, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE organization_invitations
		SET status = 'Accepted', updated_at = ?
		WHERE id = ? AND status = 'Pending'`,
		now(), id)
}

func (r *invitationsRepo) MarkInvitationDeclined(ctx context.Context, id idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE organization_invitations
		SET status = 'Declined', updated_at = ?
		WHERE id = ? AND status = 'Pending'`,
		now(), id)
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM organization_invitations
		WHERE status = 'Pending' AND expires_at < ?`, now)
	return err
}
