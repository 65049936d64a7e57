package app

import (
	"log/slog"

	"projectman/internal/api"
	"projectman/internal/config"
	"projectman/internal/session"
	authservice "projectman/internal/services/auth"
	projectservice "projectman/internal/services/project"
	taskservice "projectman/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container: one API client and one
// session store shared by every service, wired once at startup.
type App struct {
	// Client is the shared backend API client
	Client *api.Client

	// Sessions is the persistent token store
	Sessions *session.Store

	// Service layer
	AuthService    authservice.Service
	ProjectService projectservice.Service
	TaskService    taskservice.Service

	logger *slog.Logger
}

// New creates a new App with all services initialized. The session
// store is injected into the API client explicitly; no service reads
// auth state from anywhere ambient.
func New(cfg *config.Config, sessions *session.Store, opts ...Option) *App {
	appCfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(appCfg)
	}

	client := api.New(cfg.Server.BaseURL, sessions, api.WithTimeout(cfg.Server.Timeout()))

	return &App{
		Client:         client,
		Sessions:       sessions,
		AuthService:    authservice.NewService(client, sessions),
		ProjectService: projectservice.NewService(client, sessions),
		TaskService:    taskservice.NewService(client, sessions),
		logger:         appCfg.logger,
	}
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
