package project

import (
	"context"
	"errors"
	"testing"

	"projectman/internal/api"
	"projectman/internal/session"
	"projectman/internal/testutil"
)

func newTestService(t *testing.T) (Service, *session.Store, *testutil.Server) {
	t.Helper()
	backend := testutil.NewServer(t)
	sessions := session.NewStoreAt(t.TempDir())
	if err := sessions.Set(testutil.TestToken); err != nil {
		t.Fatal(err)
	}
	client := api.New(backend.URL, sessions)
	return NewService(client, sessions), sessions, backend
}

func TestCreateThenListIncludesProject(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, CreateProjectRequest{Title: "Website", Description: "Launch plan"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	projects, err := svc.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}

	found := false
	for _, p := range projects {
		if p.ID == created.ID && p.Title == "Website" && p.Description == "Launch plan" {
			found = true
		}
	}
	if !found {
		t.Errorf("created project not in list snapshot: %+v", projects)
	}
}

func TestCreateProjectEmptyTitle(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateProject(context.Background(), CreateProjectRequest{Title: "   "})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("CreateProject = %v, want ErrEmptyTitle", err)
	}
}

func TestCreateProjectTrimsTitle(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.CreateProject(context.Background(), CreateProjectRequest{Title: "  Website  "})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if created.Title != "Website" {
		t.Errorf("Title = %q, want trimmed", created.Title)
	}
}

func TestDeleteProjectExcludedFromList(t *testing.T) {
	svc, _, backend := newTestService(t)
	ctx := context.Background()

	keep := backend.SeedProject("Keep", "")
	drop := backend.SeedProject("Drop", "")

	if err := svc.DeleteProject(ctx, drop.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	projects, err := svc.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	for _, p := range projects {
		if p.ID == drop.ID {
			t.Errorf("deleted project %d still listed", drop.ID)
		}
	}
	if len(projects) != 1 || projects[0].ID != keep.ID {
		t.Errorf("unexpected snapshot after delete: %+v", projects)
	}
}

func TestGetProjectDetailNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetProjectDetail(context.Background(), 999)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("GetProjectDetail = %v, want ErrProjectNotFound", err)
	}
}

func TestGetProjectDetailIncludesTasks(t *testing.T) {
	svc, _, backend := newTestService(t)
	project := backend.SeedProject("Website", "Launch plan")
	backend.SeedTask(project.ID, "Write copy", project.CreatedAt, false)

	detail, err := svc.GetProjectDetail(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("GetProjectDetail: %v", err)
	}
	if detail.Title != "Website" {
		t.Errorf("Title = %q", detail.Title)
	}
	if len(detail.Tasks) != 1 || detail.Tasks[0].Title != "Write copy" {
		t.Errorf("unexpected tasks: %+v", detail.Tasks)
	}
}

func TestInvalidID(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.GetProjectDetail(context.Background(), 0); !errors.Is(err, ErrInvalidProjectID) {
		t.Errorf("GetProjectDetail(0) = %v", err)
	}
	if err := svc.DeleteProject(context.Background(), -1); !errors.Is(err, ErrInvalidProjectID) {
		t.Errorf("DeleteProject(-1) = %v", err)
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	svc, sessions, _ := newTestService(t)

	// Invalidate the token out from under the client.
	if err := sessions.Set("stale-token"); err != nil {
		t.Fatal(err)
	}

	_, err := svc.ListProjects(context.Background())
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, ok := sessions.Get(); ok {
		t.Error("session not cleared after 401")
	}
}
