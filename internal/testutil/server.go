// Package testutil provides test doubles shared across packages,
// most importantly an in-memory stand-in for the backend REST API.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"projectman/internal/models"
)

// TestToken is the session token the fake backend hands out on login.
const TestToken = "test-session-token"

// Server is an in-memory project manager backend backed by
// httptest.Server. It implements the full REST surface the client
// consumes, including bearer token checks and the {Message} error
// body shape.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]string
	projects []*projectRecord
	nextID   int

	// lastAuthHeader records the Authorization header of the most
	// recent authenticated-surface request, for assertions.
	lastAuthHeader string
}

type projectRecord struct {
	models.Project
	Tasks []models.Task
}

// NewServer starts a fake backend and registers cleanup with t.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		users:  map[string]string{},
		nextID: 1,
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/auth/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/projects", s.authed(s.handleListProjects)).Methods("GET")
	r.HandleFunc("/projects", s.authed(s.handleCreateProject)).Methods("POST")
	r.HandleFunc("/projects/{id}", s.authed(s.handleGetProject)).Methods("GET")
	r.HandleFunc("/projects/{id}", s.authed(s.handleDeleteProject)).Methods("DELETE")
	r.HandleFunc("/projects/{id}/tasks", s.authed(s.handleCreateTask)).Methods("POST")
	r.HandleFunc("/tasks/{id}", s.authed(s.handleUpdateTask)).Methods("PUT")
	r.HandleFunc("/tasks/{id}", s.authed(s.handleDeleteTask)).Methods("DELETE")

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Server.Close)
	return s
}

// AddUser registers a username/password pair accepted by login.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// SeedProject inserts a project directly into the fake store.
func (s *Server) SeedProject(title, description string) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := &projectRecord{
		Project: models.Project{
			ID:          s.nextID,
			Title:       title,
			Description: description,
			CreatedAt:   time.Now().UTC(),
		},
	}
	s.nextID++
	s.projects = append(s.projects, rec)
	return rec.Project
}

// SeedTask inserts a task under an existing project.
func (s *Server) SeedTask(projectID int, title string, dueDate time.Time, completed bool) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.findProject(projectID)
	if rec == nil {
		panic("testutil: SeedTask on unknown project")
	}
	task := models.Task{ID: s.nextID, Title: title, DueDate: dueDate, IsCompleted: completed}
	s.nextID++
	rec.Tasks = append(rec.Tasks, task)
	return task
}

// LastAuthHeader returns the Authorization header seen on the most
// recent request to an authenticated endpoint.
func (s *Server) LastAuthHeader() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuthHeader
}

func (s *Server) findProject(id int) *projectRecord {
	for _, rec := range s.projects {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		s.mu.Lock()
		s.lastAuthHeader = auth
		s.mu.Unlock()

		if auth != "Bearer "+TestToken {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	s.mu.Lock()
	password, ok := s.users[creds.Username]
	s.mu.Unlock()

	if !ok || password != creds.Password {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": TestToken})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[creds.Username]; exists {
		writeError(w, http.StatusConflict, "username is already taken")
		return
	}
	s.users[creds.Username] = creds.Password
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := make([]models.Project, 0, len(s.projects))
	for _, rec := range s.projects {
		projects = append(projects, rec.Project)
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	s.mu.Lock()
	rec := &projectRecord{
		Project: models.Project{
			ID:          s.nextID,
			Title:       req.Title,
			Description: req.Description,
			CreatedAt:   time.Now().UTC(),
		},
	}
	s.nextID++
	s.projects = append(s.projects, rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, rec.Project)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.findProject(id)
	if rec == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	detail := models.ProjectDetail{Project: rec.Project, Tasks: rec.Tasks}
	if detail.Tasks == nil {
		detail.Tasks = []models.Task{}
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.projects {
		if rec.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "project not found")
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	var req struct {
		Title       string    `json:"title"`
		DueDate     time.Time `json:"dueDate"`
		IsCompleted bool      `json:"isCompleted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.findProject(id)
	if rec == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	task := models.Task{ID: s.nextID, Title: req.Title, DueDate: req.DueDate, IsCompleted: req.IsCompleted}
	s.nextID++
	rec.Tasks = append(rec.Tasks, task)
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	var req struct {
		Title       string    `json:"title"`
		DueDate     time.Time `json:"dueDate"`
		IsCompleted bool      `json:"isCompleted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.projects {
		for i := range rec.Tasks {
			if rec.Tasks[i].ID == id {
				rec.Tasks[i].Title = req.Title
				rec.Tasks[i].DueDate = req.DueDate
				rec.Tasks[i].IsCompleted = req.IsCompleted
				writeJSON(w, http.StatusOK, rec.Tasks[i])
				return
			}
		}
	}
	writeError(w, http.StatusNotFound, "task not found")
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.projects {
		for i := range rec.Tasks {
			if rec.Tasks[i].ID == id {
				rec.Tasks = append(rec.Tasks[:i], rec.Tasks[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
	}
	writeError(w, http.StatusNotFound, "task not found")
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"Message": message})
}
