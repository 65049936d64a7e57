package auth

import (
	"context"
	"fmt"
	"strings"
)

// minPasswordLength is enforced client-side on registration.
const minPasswordLength = 6

// API is the slice of the backend client this service uses.
type API interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
}

// SessionStore is the slice of the session store this service uses.
type SessionStore interface {
	Set(token string) error
	Get() (string, bool)
	Clear() error
}

// Service defines all authentication operations
type Service interface {
	// Login authenticates and persists the returned session token.
	Login(ctx context.Context, username, password string) error

	// Register validates the request client-side, then creates the
	// account. It does not log the user in.
	Register(ctx context.Context, req RegisterRequest) error

	// Logout destroys the stored session.
	Logout() error

	// LoggedIn reports whether a session token is present.
	LoggedIn() bool
}

// RegisterRequest encapsulates all data needed to register an account
type RegisterRequest struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// service implements Service interface
type service struct {
	client   API
	sessions SessionStore
}

// NewService creates a new auth service
func NewService(client API, sessions SessionStore) Service {
	return &service{
		client:   client,
		sessions: sessions,
	}
}

// Login authenticates against the backend and stores the token
func (s *service) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if password == "" {
		return ErrEmptyPassword
	}

	token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := s.sessions.Set(token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

// Register validates client-side before any network call
func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return ErrEmptyUsername
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return s.client.Register(ctx, req.Username, req.Password)
}

// Logout clears the stored session
func (s *service) Logout() error {
	return s.sessions.Clear()
}

// LoggedIn reports whether a session token exists
func (s *service) LoggedIn() bool {
	_, ok := s.sessions.Get()
	return ok
}
