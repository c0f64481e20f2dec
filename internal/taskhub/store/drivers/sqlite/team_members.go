package sqlite

import (
	"context"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type teamMembersRepo struct {
	db dbtx
}

// AddTeamMember inserts or revives a membership. The SELECT source checks
// three things at once: the actor is an Admin of the team's org, the
// target user is an active member of that org, and the team itself is
// active.
func (r *teamMembersRepo) AddTeamMember(ctx context.Context, tm domain.TeamMember, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		INSERT INTO team_members (id, team_id, user_id, status, created_at, updated_at)
		SELECT ?, t.id, ?, 'Active', ?, ?
		FROM teams t
		WHERE t.id = ? AND t.status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM organization_members oa
			WHERE oa.org_id = t.org_id AND oa.user_id = ? AND oa.role = 'Admin' AND oa.status = 'Active'
		  )
		  AND EXISTS (
			SELECT 1 FROM organization_members ot
			WHERE ot.org_id = t.org_id AND ot.user_id = ? AND ot.status = 'Active'
		  )
		ON CONFLICT (team_id, user_id) DO UPDATE SET
			status = 'Active',
			updated_at = excluded.updated_at`,
		tm.ID, tm.UserID, tm.CreatedAt, tm.UpdatedAt,
		tm.TeamID, actorID, tm.UserID)
}

func (r *teamMembersRepo) ListTeamMembers(ctx context.Context, teamID, actorID idx.ID) ([]domain.MemberProfile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT om.id, om.org_id, om.user_id, om.role, om.status, tm.created_at, tm.updated_at,
		       u.email, u.name
		FROM team_members tm
		JOIN teams t ON t.id = tm.team_id
		JOIN users u ON u.id = tm.user_id
		JOIN organization_members om ON om.org_id = t.org_id AND om.user_id = tm.user_id
		WHERE tm.team_id = ? AND tm.status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM organization_members ov
			WHERE ov.org_id = t.org_id AND ov.user_id = ? AND ov.status = 'Active'
		  )
		ORDER BY tm.created_at ASC`,
		teamID, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MemberProfile
	for rows.Next() {
		var p domain.MemberProfile
		err := rows.Scan(&p.ID, &p.OrgID, &p.UserID, &p.Role, &p.Status,
			&p.CreatedAt, &p.UpdatedAt, &p.Email, &p.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *teamMembersRepo) RemoveTeamMember(ctx context.Context, teamID, userID, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE team_members
		SET status = 'Inactive', updated_at = ?
		WHERE team_id = ? AND user_id = ? AND status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM teams t
			JOIN organization_members om ON om.org_id = t.org_id
			WHERE t.id = team_members.team_id
			  AND om.user_id = ? AND om.role = 'Admin' AND om.status = 'Active'
		  )`,
		now(), teamID, userID, actorID)
}
