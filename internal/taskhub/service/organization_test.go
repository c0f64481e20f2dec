package service

import (
	"context"
	"testing"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganizationMakesCreatorAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com", "Owner")

	svc := &OrganizationService{Store: st}
	org, err := svc.CreateOrganization(ctx, owner.ID, "Acme", "Widgets and sprockets")
	require.NoError(t, err)
	require.Equal(t, "Acme", org.Name)
	require.Equal(t, "Widgets and sprockets", org.Description)
	require.Equal(t, domain.StatusActive, org.Status)

	member, err := st.Members().GetMember(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, member.Role)
	require.Equal(t, domain.StatusActive, member.Status)
}

func TestCreateOrganizationRejectsEmptyName(t *testing.T) {
	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com", "Owner")

	svc := &OrganizationService{Store: st}
	_, err := svc.CreateOrganization(context.Background(), owner.ID, "", "")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetOrganizationRequiresMembership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com", "Owner")
	outsider := seedUser(t, st, "outsider@example.com", "Outsider")
	org := seedOrg(t, st, "Acme", owner)

	svc := &OrganizationService{Store: st}

	got, err := svc.GetOrganization(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, org.ID, got.ID)

	// Outsiders can't tell the org exists at all.
	_, err = svc.GetOrganization(ctx, org.ID, outsider.ID)
	require.ErrorIs(t, err, ErrOrgNotFound)
}

func TestUpdateOrganizationAdminOnly(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com", "Owner")
	member := seedUser(t, st, "member@example.com", "Member")
	org := seedOrg(t, st, "Acme", owner)
	seedMember(t, st, org, member, domain.RoleMember)

	svc := &OrganizationService{Store: st}

	require.ErrorIs(t, svc.UpdateOrganization(ctx, org.ID, member.ID, "Evil Corp", ""), ErrNotAllowed)
	require.NoError(t, svc.UpdateOrganization(ctx, org.ID, owner.ID, "Acme Ltd", "Now with sprockets"))

	got, err := svc.GetOrganization(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Ltd", got.Name)
	require.Equal(t, "Now with sprockets", got.Description)
}

func TestToggleOrganizationFlipsStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com", "Owner")
	org := seedOrg(t, st, "Acme", owner)

	svc := &OrganizationService{Store: st}

	require.NoError(t, svc.ToggleOrganization(ctx, org.ID, owner.ID))
	got, err := svc.GetOrganization(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInactive, got.Status)

	require.NoError(t, svc.ToggleOrganization(ctx, org.ID, owner.ID))
	got, err = svc.GetOrganization(ctx, org.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, got.Status)
}

func TestListMineAnnotatesRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := seedUser(t, st, "owner@example.com", "Owner")
	member := seedUser(t, st, "member@example.com", "Member")
	org := seedOrg(t, st, "Acme", owner)
	seedMember(t, st, org, member, domain.RoleMember)
	seedOrg(t, st, "Beta", member)

	svc := &OrganizationService{Store: st}

	mine, err := svc.ListMine(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	roles := map[string]string{}
	for _, o := range mine {
		roles[o.Name] = o.Role
	}
	require.Equal(t, domain.RoleMember, roles["Acme"])
	require.Equal(t, domain.RoleAdmin, roles["Beta"])
}
