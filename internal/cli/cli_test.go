package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"projectman/internal/testutil"
)

// runCommand executes the root command with args against isolated
// config/session dirs pointed at the fake backend.
func runCommand(t *testing.T, backend *testutil.Server, args ...string) (string, error) {
	t.Helper()

	args = append(args, "--server", backend.URL)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) *testutil.Server {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("PROJECTMAN_SERVER", "")
	return testutil.NewServer(t)
}

func login(t *testing.T, backend *testutil.Server) {
	t.Helper()
	backend.AddUser("alice", "secret1")
	if _, err := runCommand(t, backend, "login", "-u", "alice", "-p", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestLoginStoresSessionForLaterCommands(t *testing.T) {
	backend := setupEnv(t)
	login(t, backend)
	backend.SeedProject("Website", "Launch plan")

	out, err := runCommand(t, backend, "projects", "list")
	if err != nil {
		t.Fatalf("projects list: %v", err)
	}
	if !strings.Contains(out, "Website") {
		t.Errorf("output missing project title:\n%s", out)
	}

	want := "Bearer " + testutil.TestToken
	if got := backend.LastAuthHeader(); got != want {
		t.Errorf("Authorization header = %q, want %q", got, want)
	}
}

func TestProjectsListWithoutSession(t *testing.T) {
	backend := setupEnv(t)

	_, err := runCommand(t, backend, "projects", "list")
	if err == nil {
		t.Fatal("expected error without a session")
	}
}

func TestProjectsCreateShowDelete(t *testing.T) {
	backend := setupEnv(t)
	login(t, backend)

	out, err := runCommand(t, backend, "projects", "create", "-t", "Website", "-d", "Launch plan")
	if err != nil {
		t.Fatalf("projects create: %v", err)
	}
	if !strings.Contains(out, "Created project") {
		t.Errorf("unexpected create output: %s", out)
	}

	out, err = runCommand(t, backend, "projects", "show", "1")
	if err != nil {
		t.Fatalf("projects show: %v", err)
	}
	if !strings.Contains(out, "Website") || !strings.Contains(out, "Launch plan") {
		t.Errorf("unexpected show output:\n%s", out)
	}

	if _, err := runCommand(t, backend, "projects", "delete", "1", "--yes"); err != nil {
		t.Fatalf("projects delete: %v", err)
	}

	out, err = runCommand(t, backend, "projects", "list")
	if err != nil {
		t.Fatalf("projects list: %v", err)
	}
	if strings.Contains(out, "Website") {
		t.Errorf("deleted project still listed:\n%s", out)
	}
}

func TestProjectsShowNotFound(t *testing.T) {
	backend := setupEnv(t)
	login(t, backend)

	_, err := runCommand(t, backend, "projects", "show", "999")
	if err == nil || !strings.Contains(err.Error(), "project not found") {
		t.Errorf("expected distinct not-found message, got %v", err)
	}
}

func TestTasksAddToggleDelete(t *testing.T) {
	backend := setupEnv(t)
	login(t, backend)
	project := backend.SeedProject("Website", "")

	out, err := runCommand(t, backend, "tasks", "add", "-P", "1", "-t", "Write copy", "--due", "2030-01-15")
	if err != nil {
		t.Fatalf("tasks add: %v", err)
	}
	if !strings.Contains(out, "Created task") {
		t.Errorf("unexpected add output: %s", out)
	}

	out, err = runCommand(t, backend, "projects", "show", "1")
	if err != nil {
		t.Fatalf("projects show: %v", err)
	}
	if !strings.Contains(out, "Write copy") || !strings.Contains(out, "Pending") {
		t.Errorf("expected pending task in show output:\n%s", out)
	}

	// Find the created task's ID via seeding order: project=1, task=2.
	out, err = runCommand(t, backend, "tasks", "toggle", "2", "-P", "1")
	if err != nil {
		t.Fatalf("tasks toggle: %v", err)
	}
	if !strings.Contains(out, "completed") {
		t.Errorf("unexpected toggle output: %s", out)
	}

	if _, err := runCommand(t, backend, "tasks", "delete", "2", "--yes"); err != nil {
		t.Fatalf("tasks delete: %v", err)
	}

	out, err = runCommand(t, backend, "projects", "show", "1")
	if err != nil {
		t.Fatalf("projects show after delete: %v", err)
	}
	if strings.Contains(out, "Write copy") {
		t.Errorf("deleted task still shown:\n%s", out)
	}

	_ = project
}

func TestTasksUpdateSourcesUnchangedFields(t *testing.T) {
	backend := setupEnv(t)
	login(t, backend)
	project := backend.SeedProject("Website", "")
	due := time.Date(2030, 1, 15, 0, 0, 0, 0, time.Local)
	task := backend.SeedTask(project.ID, "Write copy", due, false)

	// Only the completion flag changes; title and due date ride along
	// from the fetched snapshot.
	out, err := runCommand(t, backend, "tasks", "update", "2", "-P", "1", "--completed")
	if err != nil {
		t.Fatalf("tasks update: %v", err)
	}
	if !strings.Contains(out, "Write copy") || !strings.Contains(out, "completed") {
		t.Errorf("unexpected update output: %s", out)
	}

	_ = task
}

func TestRegisterValidationFailsBeforeNetwork(t *testing.T) {
	backend := setupEnv(t)

	_, err := runCommand(t, backend, "register", "-u", "bob", "-p", "abc")
	if err == nil || !strings.Contains(err.Error(), "at least 6 characters") {
		t.Errorf("expected short-password validation error, got %v", err)
	}
}
