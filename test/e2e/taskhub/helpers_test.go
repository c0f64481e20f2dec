package taskhub_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/opencrew/taskhub/pkg/tasksdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for TaskHub end-to-end tests.
 * This includes container setup, user onboarding, and log scraping for
 * the codes and tokens the service mails out.
 */

const (
	testImageName = "taskhub-test:latest"

	defaultPassword = "Sup3rSecret!"
)

// testEnv bundles the running container with the SDK client pointed at it.
type testEnv struct {
	baseURL   string
	client    *tasksdk.SDKClient
	container testcontainers.Container
}

// TestMain builds the Docker image once before all tests and removes it
// after the run.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building TaskHub Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up TaskHub Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/taskhub/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Image might not exist
}

// setupTaskhubContainer starts the service with relaxed rate limits so
// rapid test requests do not trip the production limits, and with mail
// delivery going to the log so codes and tokens can be scraped back out.
func setupTaskhubContainer(t *testing.T) (testEnv, func()) {
	return startContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupTaskhubContainerWithDefaultRateLimits starts the service with the
// production limits, for the tests that verify rate limiting itself.
func setupTaskhubContainerWithDefaultRateLimits(t *testing.T) (testEnv, func()) {
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (testEnv, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"TASKHUB_ISSUER":           "taskhub",
		"TASKHUB_DATABASE_FILE":    "/taskhub.db",
		"TASKHUB_PEPPER_FILE":      "/pepper",
		"TASKHUB_SESSION_KEY_FILE": "/session.key",
		// Tests talk plain HTTP, so the cookie must not be Secure.
		"TASKHUB_SECURE_COOKIES": "false",
		"ENV":                    "test",
		"LOG_LEVEL":              "info",
		"LOG_FORMAT":             "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return testEnv{
		baseURL:   baseURL,
		client:    tasksdk.NewSDKClient(baseURL),
		container: container,
	}, cleanup
}

var (
	codePattern  = regexp.MustCompile(`"code":"(\d{6})"`)
	tokenPattern = regexp.MustCompile(`"token":"([A-Za-z0-9_-]+)"`)
)

// scrapeMailLog polls the container log for the most recent line that was
// addressed to the given email and matches the pattern. Mail lines are
// emitted by the log mailer, which is active because no SMTP relay is
// configured in the test environment.
func scrapeMailLog(t *testing.T, env testEnv, email string, pattern *regexp.Regexp) string {
	t.Helper()
	ctx := context.Background()

	var found string
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		reader, err := env.container.Logs(ctx)
		require.NoError(t, err)
		data, err := io.ReadAll(reader)
		reader.Close()
		require.NoError(t, err)

		for _, line := range strings.Split(string(data), "\n") {
			if !strings.Contains(line, `"to":"`+email+`"`) {
				continue
			}
			if m := pattern.FindStringSubmatch(line); m != nil {
				found = m[1] // Keep scanning: the last match wins.
			}
		}
		if found != "" {
			return found
		}
		time.Sleep(250 * time.Millisecond)
	}

	t.Fatalf("no mail log line for %s matching %s", email, pattern)
	return ""
}

func latestVerificationCode(t *testing.T, env testEnv, email string) string {
	return scrapeMailLog(t, env, email, codePattern)
}

func latestInvitationToken(t *testing.T, env testEnv, email string) string {
	return scrapeMailLog(t, env, email, tokenPattern)
}

// registerUser runs the full signup flow: register, scrape the emailed
// code, verify. Returns the created account.
func registerUser(t *testing.T, env testEnv, email, name string) *tasksdk.UserResponse {
	t.Helper()
	ctx := context.Background()

	reg, err := env.client.Register(ctx, email, name, defaultPassword)
	require.NoError(t, err)
	require.NotEmpty(t, reg.ProcessID)

	code := latestVerificationCode(t, env, email)

	user, err := env.client.VerifyEmail(ctx, reg.ProcessID, code)
	require.NoError(t, err)
	require.Equal(t, email, user.Email)

	return user
}

// signUp registers, verifies and signs in a fresh account in one step.
func signUp(t *testing.T, env testEnv, email, name string) *tasksdk.Session {
	t.Helper()

	registerUser(t, env, email, name)

	session, err := env.client.SignIn(context.Background(), email, defaultPassword)
	require.NoError(t, err)
	require.NotNil(t, session)

	return session
}

// assertForbidden checks that an API call was refused with 403.
func assertForbidden(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.True(t, tasksdk.IsForbidden(err), "%s: expected forbidden, got: %v", context, err)
}
