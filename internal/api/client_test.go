package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"projectman/internal/testutil"
)

func newTestClient(t *testing.T) (*Client, *testutil.Server) {
	t.Helper()
	backend := testutil.NewServer(t)
	client := New(backend.URL, testutil.StaticTokens(testutil.TestToken))
	return client, backend
}

func TestListProjects(t *testing.T) {
	client, backend := newTestClient(t)
	backend.SeedProject("Website", "Launch plan")
	backend.SeedProject("Mobile app", "")

	projects, err := client.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].Title != "Website" || projects[1].Title != "Mobile app" {
		t.Errorf("unexpected project order: %+v", projects)
	}
}

func TestListProjectsSendsBearerToken(t *testing.T) {
	client, backend := newTestClient(t)

	if _, err := client.ListProjects(context.Background()); err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	want := "Bearer " + testutil.TestToken
	if got := backend.LastAuthHeader(); got != want {
		t.Errorf("Authorization header = %q, want %q", got, want)
	}
}

func TestListProjectsWithoutSession(t *testing.T) {
	backend := testutil.NewServer(t)
	client := New(backend.URL, testutil.NoTokens)

	_, err := client.ListProjects(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestCreateProject(t *testing.T) {
	client, _ := newTestClient(t)

	project, err := client.CreateProject(context.Background(), "Website", "Launch plan")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if project.ID == 0 {
		t.Error("expected server-assigned ID")
	}
	if project.Title != "Website" || project.Description != "Launch plan" {
		t.Errorf("unexpected project: %+v", project)
	}

	// The created project shows up in a subsequent full list fetch.
	projects, err := client.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != project.ID {
		t.Errorf("created project missing from list: %+v", projects)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetProject(context.Background(), 999)
	if !IsNotFound(err) {
		t.Fatalf("expected 404 classification, got %v", err)
	}
}

func TestDeleteProjectRemovedFromList(t *testing.T) {
	client, backend := newTestClient(t)
	keep := backend.SeedProject("Keep", "")
	drop := backend.SeedProject("Drop", "")

	if err := client.DeleteProject(context.Background(), drop.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	projects, err := client.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	for _, p := range projects {
		if p.ID == drop.ID {
			t.Errorf("deleted project %d still listed", drop.ID)
		}
	}
	if len(projects) != 1 || projects[0].ID != keep.ID {
		t.Errorf("unexpected remaining projects: %+v", projects)
	}
}

func TestUpdateTaskFullReplacement(t *testing.T) {
	client, backend := newTestClient(t)
	project := backend.SeedProject("Website", "")
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	task := backend.SeedTask(project.ID, "Write copy", due, false)

	updated, err := client.UpdateTask(context.Background(), task.ID, "Write copy", due, true)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !updated.IsCompleted {
		t.Error("expected task to be completed after update")
	}
	if updated.Title != "Write copy" || !updated.DueDate.Equal(due) {
		t.Errorf("title/dueDate changed unexpectedly: %+v", updated)
	}
}

func TestDeleteTaskRemovedFromDetail(t *testing.T) {
	client, backend := newTestClient(t)
	project := backend.SeedProject("Website", "")
	task := backend.SeedTask(project.ID, "Write copy", time.Now(), false)

	if err := client.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	detail, err := client.GetProject(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if detail.FindTask(task.ID) != nil {
		t.Errorf("deleted task %d still present in detail", task.ID)
	}
}

func TestLogin(t *testing.T) {
	client, backend := newTestClient(t)
	backend.AddUser("alice", "secret1")

	token, err := client.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != testutil.TestToken {
		t.Errorf("token = %q, want %q", token, testutil.TestToken)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	client, backend := newTestClient(t)
	backend.AddUser("alice", "secret1")

	_, err := client.Login(context.Background(), "alice", "wrong")
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if MessageFor(err) != "invalid username or password" {
		t.Errorf("message = %q, want server-supplied message", MessageFor(err))
	}
}

func TestServerMessagePropagated(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.CreateProject(context.Background(), "", "")
	if !IsClientError(err) {
		t.Fatalf("expected client error, got %v", err)
	}
	if MessageFor(err) != "title is required" {
		t.Errorf("message = %q, want %q", MessageFor(err), "title is required")
	}
}

func TestGenericMessageFallback(t *testing.T) {
	// A backend that fails without the {Message} body shape.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, testutil.NoTokens)
	_, err := client.ListProjects(context.Background())
	if !IsServerError(err) {
		t.Fatalf("expected server error, got %v", err)
	}
	if MessageFor(err) == "" {
		t.Error("expected a generic fallback message")
	}
}

func TestMalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := New(srv.URL, testutil.NoTokens)
	_, err := client.ListProjects(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message == "" {
		t.Error("expected a message for malformed body")
	}
}

func TestNetworkFailure(t *testing.T) {
	// Point at a closed server to force a transport error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, testutil.NoTokens)
	_, err := client.ListProjects(context.Background())
	if !IsNetworkFailure(err) {
		t.Fatalf("expected network failure classification, got %v", err)
	}
}
