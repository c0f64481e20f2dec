package service

import (
	"context"
	"testing"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/stretchr/testify/require"
)

func newProjectFixture(t *testing.T) (*ProjectService, domain.Organization, domain.User, domain.User) {
	t.Helper()

	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com", "Owner")
	org := seedOrg(t, st, "Acme", owner)
	member := seedUser(t, st, "member@example.com", "Member")
	seedMember(t, st, org, member, domain.RoleMember)

	return &ProjectService{Store: st}, org, owner, member
}

func TestCreateProjectAdminOnly(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newProjectFixture(t)

	project, err := svc.CreateProject(ctx, org.ID, owner.ID, "Website", "Public site relaunch")
	require.NoError(t, err)
	require.Equal(t, org.ID, project.OrgID)
	require.Equal(t, domain.StatusActive, project.Status)

	_, err = svc.CreateProject(ctx, org.ID, member.ID, "Side project", "")
	require.ErrorIs(t, err, ErrNotAllowed)

	_, err = svc.CreateProject(ctx, org.ID, owner.ID, "", "missing name")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetProjectVisibleToMembers(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newProjectFixture(t)
	outsider := seedUser(t, svc.Store, "outsider@example.com", "Outsider")

	project, err := svc.CreateProject(ctx, org.ID, owner.ID, "Website", "")
	require.NoError(t, err)

	got, err := svc.GetProject(ctx, project.ID, member.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, got.ID)

	_, err = svc.GetProject(ctx, project.ID, outsider.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestUpdateProjectByProjectAdmin(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newProjectFixture(t)

	project, err := svc.CreateProject(ctx, org.ID, owner.ID, "Website", "")
	require.NoError(t, err)

	// Plain members cannot touch the project until granted.
	require.ErrorIs(t, svc.UpdateProject(ctx, project.ID, member.ID, "Renamed", ""), ErrNotAllowed)

	require.NoError(t, svc.AddAdmin(ctx, project.ID, member.ID, owner.ID))
	require.NoError(t, svc.UpdateProject(ctx, project.ID, member.ID, "Website v2", "Relaunch"))

	got, err := svc.GetProject(ctx, project.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "Website v2", got.Name)
	require.Equal(t, "Relaunch", got.Description)
}

func TestAddProjectAdminRequiresOrgAdmin(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newProjectFixture(t)

	project, err := svc.CreateProject(ctx, org.ID, owner.ID, "Website", "")
	require.NoError(t, err)

	require.ErrorIs(t, svc.AddAdmin(ctx, project.ID, member.ID, member.ID), ErrNotAllowed)
}

func TestProjectAdminGrantLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, member := newProjectFixture(t)

	project, err := svc.CreateProject(ctx, org.ID, owner.ID, "Website", "")
	require.NoError(t, err)

	require.NoError(t, svc.AddAdmin(ctx, project.ID, member.ID, owner.ID))

	admins, err := svc.ListAdmins(ctx, project.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, member.ID, admins[0].UserID)

	require.NoError(t, svc.RemoveAdmin(ctx, project.ID, member.ID, owner.ID))

	admins, err = svc.ListAdmins(ctx, project.ID, owner.ID)
	require.NoError(t, err)
	require.Empty(t, admins)

	// The revoked grant no longer authorizes updates.
	require.ErrorIs(t, svc.UpdateProject(ctx, project.ID, member.ID, "Again", ""), ErrNotAllowed)
}

func TestToggleProjectHidesFromListing(t *testing.T) {
	ctx := context.Background()
	svc, org, owner, _ := newProjectFixture(t)

	project, err := svc.CreateProject(ctx, org.ID, owner.ID, "Website", "")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleProject(ctx, project.ID, owner.ID))

	projects, err := svc.ListProjects(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Empty(t, projects)

	require.NoError(t, svc.ToggleProject(ctx, project.ID, owner.ID))

	projects, err = svc.ListProjects(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
}
