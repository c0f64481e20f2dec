package service

import (
	"context"
	"testing"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/stretchr/testify/require"
)

func newTeamFixture(t *testing.T) (*TeamService, domain.Organization, domain.User, domain.User) {
	t.Helper()

	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com", "Owner")
	org := seedOrg(t, st, "Acme", owner)
	member := seedUser(t, st, "member@example.com", "Member")
	seedMember(t, st, org, member, domain.RoleMember)

	return &TeamService{Store: st}, org, owner, member
}

func TestCreateTeam(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newTeamFixture(t)

	team, err := svc.CreateTeam(ctx, org.ID, owner.ID, "Backend", "Services and storage")
	require.NoError(t, err)
	require.Equal(t, org.ID, team.OrgID)
	require.Equal(t, "Services and storage", team.Description)
	require.Equal(t, domain.StatusActive, team.Status)

	// Plain members see the team but cannot create one.
	got, err := svc.GetTeam(ctx, team.ID, member.ID)
	require.NoError(t, err)
	require.Equal(t, "Backend", got.Name)

	_, err = svc.CreateTeam(ctx, org.ID, member.ID, "Rogue", "")
	require.ErrorIs(t, err, ErrNotAllowed)
}

func TestCreateTeamRejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, _ := newTeamFixture(t)

	_, err := svc.CreateTeam(ctx, org.ID, owner.ID, "", "")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetTeamHiddenFromOutsiders(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, _ := newTeamFixture(t)
	outsider := seedUser(t, svc.Store, "outsider@example.com", "Outsider")

	team, err := svc.CreateTeam(ctx, org.ID, owner.ID, "Backend", "")
	require.NoError(t, err)

	_, err = svc.GetTeam(ctx, team.ID, outsider.ID)
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestUpdateTeamAdminOnly(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newTeamFixture(t)

	team, err := svc.CreateTeam(ctx, org.ID, owner.ID, "Backend", "")
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdateTeam(ctx, team.ID, member.ID, "Hijacked", ""), ErrNotAllowed)
	require.NoError(t, svc.UpdateTeam(ctx, team.ID, owner.ID, "Platform", "Infra and tooling"))

	got, err := svc.GetTeam(ctx, team.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "Platform", got.Name)
	require.Equal(t, "Infra and tooling", got.Description)
}

func TestToggleTeamHidesFromListing(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, _ := newTeamFixture(t)

	team, err := svc.CreateTeam(ctx, org.ID, owner.ID, "Backend", "")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleTeam(ctx, team.ID, owner.ID))

	teams, err := svc.ListTeams(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Empty(t, teams)

	require.NoError(t, svc.ToggleTeam(ctx, team.ID, owner.ID))

	teams, err = svc.ListTeams(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
}

func TestTeamMembership(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newTeamFixture(t)

	team, err := svc.CreateTeam(ctx, org.ID, owner.ID, "Backend", "")
	require.NoError(t, err)

	require.NoError(t, svc.AddMember(ctx, team.ID, member.ID, owner.ID))

	profiles, err := svc.ListMembers(ctx, team.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Equal(t, member.ID, profiles[0].UserID)
	require.Equal(t, member.Email, profiles[0].Email)

	require.NoError(t, svc.RemoveMember(ctx, team.ID, member.ID, owner.ID))

	profiles, err = svc.ListMembers(ctx, team.ID, owner.ID)
	require.NoError(t, err)
	require.Empty(t, profiles)
}

func TestAddTeamMemberRequiresOrgMembership(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newTeamFixture(t)
	outsider := seedUser(t, svc.Store, "outsider@example.com", "Outsider")

	team, err := svc.CreateTeam(ctx, org.ID, owner.ID, "Backend", "")
	require.NoError(t, err)

	// Adding a non-member of the org is refused, as is adding by a
	// non-admin actor.
	require.ErrorIs(t, svc.AddMember(ctx, team.ID, outsider.ID, owner.ID), ErrNotAllowed)
	require.ErrorIs(t, svc.AddMember(ctx, team.ID, member.ID, member.ID), ErrNotAllowed)
}
