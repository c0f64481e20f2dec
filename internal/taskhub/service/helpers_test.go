package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/internal/taskhub/store/drivers/sqlite"
	"github.com/opencrew/taskhub/pkg/cryptox"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

const testPassword = "Sup3rSecret!"

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "taskhub-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedUser writes an active account directly, skipping the email
// verification flow. All seeded accounts share testPassword.
func seedUser(t *testing.T, st store.Store, email, name string) domain.User {
	t.Helper()
	ctx := context.Background()

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	u := domain.User{
		ID:           idx.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Status:       domain.StatusActive,
		CreatedAt:    nowUTC(),
		UpdatedAt:    nowUTC(),
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))
	return u
}

// seedOrg creates an organization with owner as its first Admin.
func seedOrg(t *testing.T, st store.Store, name string, owner domain.User) domain.Organization {
	t.Helper()

	svc := &OrganizationService{Store: st}
	org, err := svc.CreateOrganization(context.Background(), owner.ID, name, "")
	require.NoError(t, err)
	return org
}

// seedMember adds user as an active Member of org directly.
func seedMember(t *testing.T, st store.Store, org domain.Organization, user domain.User, role string) {
	t.Helper()

	m := domain.Member{
		ID:        idx.New(),
		OrgID:     org.ID,
		UserID:    user.ID,
		Role:      role,
		Status:    domain.StatusActive,
		CreatedAt: nowUTC(),
		UpdatedAt: nowUTC(),
	}
	require.NoError(t, st.Members().CreateMember(context.Background(), m))
}

// captureMailer records the last code and invitation token it was asked
// to deliver, so flows that normally depend on email stay testable.
type captureMailer struct {
	lastCode  string
	lastToken string
	lastTo    string
}

func (m *captureMailer) SendVerificationCode(_ context.Context, to, _, code string) error {
	m.lastTo = to
	m.lastCode = code
	return nil
}

func (m *captureMailer) SendInvitation(_ context.Context, to, _, token string) error {
	m.lastTo = to
	m.lastToken = token
	return nil
}
