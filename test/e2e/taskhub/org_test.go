package taskhub_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/opencrew/taskhub/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestOrganizationLifecycle(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice := signUp(t, env, "alice@example.com", "Alice")

	org, err := alice.CreateOrg(ctx, "Acme", "Widgets and sprockets")
	require.NoError(t, err)
	require.Equal(t, "Acme", org.Name)
	require.Equal(t, "Widgets and sprockets", org.Description)
	require.Equal(t, "Active", org.Status)

	mine, err := alice.MyOrgs(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Admin", mine[0].Role)

	require.NoError(t, alice.UpdateOrg(ctx, org.ID, "Acme Corp", "Now with sprockets"))

	got, err := alice.GetOrg(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", got.Name)
	require.Equal(t, "Now with sprockets", got.Description)
}

func TestInvitationFlow(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice := signUp(t, env, "alice@example.com", "Alice")
	bob := signUp(t, env, "bob@example.com", "Bob")

	org, err := alice.CreateOrg(ctx, "Acme", "")
	require.NoError(t, err)

	require.NoError(t, alice.Invite(ctx, org.ID, "bob@example.com", "Member"))

	invs, err := alice.ListInvitations(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	require.Equal(t, "Pending", invs[0].Status)

	token := latestInvitationToken(t, env, "bob@example.com")

	accepted, err := bob.AcceptInvitation(ctx, token)
	require.NoError(t, err)
	require.Equal(t, org.ID, accepted.OrgID)
	require.Equal(t, "Member", accepted.Role)

	// Bob now sees the org; the admin roster still holds only Alice.
	bobOrgs, err := bob.MyOrgs(ctx)
	require.NoError(t, err)
	require.Len(t, bobOrgs, 1)
	require.Equal(t, "Member", bobOrgs[0].Role)

	admins, err := bob.ListAdmins(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, alice.UserID(), admins[0].UserID)

	// The settled token cannot be replayed.
	_, err = bob.AcceptInvitation(ctx, token)
	require.Error(t, err)
}

func TestInvitationForSomeoneElseIsInvisible(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice := signUp(t, env, "alice@example.com", "Alice")
	carol := signUp(t, env, "carol@example.com", "Carol")

	org, err := alice.CreateOrg(ctx, "Acme", "")
	require.NoError(t, err)

	require.NoError(t, alice.Invite(ctx, org.ID, "bob@example.com", "Member"))
	token := latestInvitationToken(t, env, "bob@example.com")

	// Carol holds the token but it was not addressed to her.
	_, err = carol.AcceptInvitation(ctx, token)
	require.Error(t, err)
	require.True(t, tasksdk.IsNotFound(err), "expected not found, got: %v", err)
}

func TestMemberRosterIsAdminOnly(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice := signUp(t, env, "alice@example.com", "Alice")
	bob := signUp(t, env, "bob@example.com", "Bob")

	org, err := alice.CreateOrg(ctx, "Acme", "")
	require.NoError(t, err)

	require.NoError(t, alice.Invite(ctx, org.ID, "bob@example.com", "Member"))
	token := latestInvitationToken(t, env, "bob@example.com")
	_, err = bob.AcceptInvitation(ctx, token)
	require.NoError(t, err)

	members, err := alice.ListMembers(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	_, err = bob.ListMembers(ctx, org.ID)
	assertForbidden(t, err, "member listing the roster")
}

func TestPromoteDemoteAndLastAdminGuard(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice := signUp(t, env, "alice@example.com", "Alice")
	bob := signUp(t, env, "bob@example.com", "Bob")

	org, err := alice.CreateOrg(ctx, "Acme", "")
	require.NoError(t, err)

	// The sole admin cannot demote or remove herself.
	err = alice.DemoteAdmin(ctx, org.ID, alice.UserID())
	require.Error(t, err)
	var apiErr *tasksdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, tasksdk.ErrorCodeLastAdmin, apiErr.Code)

	err = alice.RemoveMember(ctx, org.ID, alice.UserID())
	require.Error(t, err)

	require.NoError(t, alice.Invite(ctx, org.ID, "bob@example.com", "Member"))
	token := latestInvitationToken(t, env, "bob@example.com")
	_, err = bob.AcceptInvitation(ctx, token)
	require.NoError(t, err)

	require.NoError(t, alice.PromoteMember(ctx, org.ID, bob.UserID()))

	admins, err := alice.ListAdmins(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, admins, 2)

	// With a second admin in place Alice may step down.
	require.NoError(t, bob.DemoteAdmin(ctx, org.ID, alice.UserID()))

	admins, err = alice.ListAdmins(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, bob.UserID(), admins[0].UserID)
}

func TestRemovedMemberLosesAccess(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice := signUp(t, env, "alice@example.com", "Alice")
	bob := signUp(t, env, "bob@example.com", "Bob")

	org, err := alice.CreateOrg(ctx, "Acme", "")
	require.NoError(t, err)

	require.NoError(t, alice.Invite(ctx, org.ID, "bob@example.com", "Member"))
	token := latestInvitationToken(t, env, "bob@example.com")
	_, err = bob.AcceptInvitation(ctx, token)
	require.NoError(t, err)

	require.NoError(t, alice.RemoveMember(ctx, org.ID, bob.UserID()))

	_, err = bob.GetOrg(ctx, org.ID)
	require.Error(t, err)

	// Re-inviting revives the membership, this time as Admin.
	require.NoError(t, alice.Invite(ctx, org.ID, "bob@example.com", "Admin"))
	token = latestInvitationToken(t, env, "bob@example.com")

	accepted, err := bob.AcceptInvitation(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "Admin", accepted.Role)
}
