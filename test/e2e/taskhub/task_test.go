package taskhub_test

import (
	"context"
	"testing"
	"time"

	"github.com/opencrew/taskhub/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// orgWithMember sets up Alice as admin of a fresh org with Bob as a
// plain member, the common starting point for project and task tests.
func orgWithMember(t *testing.T, env testEnv) (alice, bob *tasksdk.Session, orgID string) {
	t.Helper()
	ctx := context.Background()

	alice = signUp(t, env, "alice@example.com", "Alice")
	bob = signUp(t, env, "bob@example.com", "Bob")

	org, err := alice.CreateOrg(ctx, "Acme", "")
	require.NoError(t, err)

	require.NoError(t, alice.Invite(ctx, org.ID, "bob@example.com", "Member"))
	token := latestInvitationToken(t, env, "bob@example.com")
	_, err = bob.AcceptInvitation(ctx, token)
	require.NoError(t, err)

	return alice, bob, org.ID
}

func TestProjectAndTaskFlow(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice, bob, orgID := orgWithMember(t, env)

	project, err := alice.CreateProject(ctx, orgID, "Website", "Public site relaunch")
	require.NoError(t, err)

	// Members see the project but cannot create tasks in it.
	got, err := bob.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, "Website", got.Name)

	_, err = bob.CreateTask(ctx, project.ID, "Sneaky task", "", nil)
	assertForbidden(t, err, "member creating a task")

	deadline := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
	task, err := alice.CreateTask(ctx, project.ID, "Ship homepage", "Hero plus footer", &deadline)
	require.NoError(t, err)
	require.Equal(t, "Pending", task.Status)

	sub, err := alice.CreateSubtask(ctx, project.ID, task.ID, "Draft hero copy", "", nil)
	require.NoError(t, err)
	require.Equal(t, task.ID, sub.ParentTaskID)

	tasks, err := bob.ListProjectTasks(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
}

func TestAssignmentAndToggleFlow(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice, bob, orgID := orgWithMember(t, env)

	project, err := alice.CreateProject(ctx, orgID, "Website", "")
	require.NoError(t, err)
	task, err := alice.CreateTask(ctx, project.ID, "Ship homepage", "", nil)
	require.NoError(t, err)

	// Unassigned, Bob cannot flip the status.
	err = bob.ToggleTaskDone(ctx, task.ID)
	assertForbidden(t, err, "unassigned member toggling")

	assignment, err := alice.Assign(ctx, task.ID, "User", bob.UserID())
	require.NoError(t, err)
	require.Equal(t, "User", assignment.Type)

	mine, err := bob.MyTasks(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, task.ID, mine[0].ID)

	require.NoError(t, bob.ToggleTaskDone(ctx, task.ID))

	got, err := alice.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Done", got.Status)
	require.Equal(t, alice.UserID(), got.CreatedBy)
	require.Equal(t, bob.UserID(), got.UpdatedBy)

	// Unassigning takes the permission away again.
	require.NoError(t, alice.Unassign(ctx, task.ID, assignment.ID))

	err = bob.ToggleTaskDone(ctx, task.ID)
	assertForbidden(t, err, "unassigned member toggling after removal")
}

func TestTeamAssignmentFlow(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice, bob, orgID := orgWithMember(t, env)

	team, err := alice.CreateTeam(ctx, orgID, "Backend", "")
	require.NoError(t, err)
	require.NoError(t, alice.AddTeamMember(ctx, team.ID, bob.UserID()))

	project, err := alice.CreateProject(ctx, orgID, "Website", "")
	require.NoError(t, err)
	task, err := alice.CreateTask(ctx, project.ID, "Ship homepage", "", nil)
	require.NoError(t, err)

	_, err = alice.Assign(ctx, task.ID, "Team", team.ID)
	require.NoError(t, err)

	// Team membership carries the assignment through to Bob.
	mine, err := bob.MyTasks(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, bob.ToggleTaskDone(ctx, task.ID))

	require.NoError(t, alice.RemoveTeamMember(ctx, team.ID, bob.UserID()))

	mine, err = bob.MyTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, mine)
}

func TestProjectAdminDelegation(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice, bob, orgID := orgWithMember(t, env)

	project, err := alice.CreateProject(ctx, orgID, "Website", "")
	require.NoError(t, err)

	require.NoError(t, alice.AddProjectAdmin(ctx, project.ID, bob.UserID()))

	// A project admin manages tasks without being an org admin.
	task, err := bob.CreateTask(ctx, project.ID, "Write docs", "", nil)
	require.NoError(t, err)
	require.NoError(t, bob.UpdateTask(ctx, task.ID, "Write docs", "For the new API", nil))
	require.NoError(t, bob.DeleteTask(ctx, task.ID))

	require.NoError(t, alice.RemoveProjectAdmin(ctx, project.ID, bob.UserID()))

	_, err = bob.CreateTask(ctx, project.ID, "One more", "", nil)
	assertForbidden(t, err, "revoked project admin creating a task")
}

func TestCommentFlow(t *testing.T) {
	env, cleanup := setupTaskhubContainer(t)
	defer cleanup()
	ctx := context.Background()

	alice, bob, orgID := orgWithMember(t, env)

	project, err := alice.CreateProject(ctx, orgID, "Website", "")
	require.NoError(t, err)
	task, err := alice.CreateTask(ctx, project.ID, "Ship homepage", "", nil)
	require.NoError(t, err)

	comment, err := bob.Comment(ctx, task.ID, "Looks good so far")
	require.NoError(t, err)
	require.Equal(t, bob.UserID(), comment.AuthorID)

	comments, err := alice.ListComments(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "Bob", comments[0].AuthorName)

	// Only the author may edit or delete, admin or not.
	err = alice.UpdateComment(ctx, comment.ID, "Edited by admin")
	assertForbidden(t, err, "admin editing someone else's comment")

	require.NoError(t, bob.UpdateComment(ctx, comment.ID, "Second thoughts"))
	require.NoError(t, bob.DeleteComment(ctx, comment.ID))

	comments, err = alice.ListComments(ctx, task.ID)
	require.NoError(t, err)
	require.Empty(t, comments)
}
