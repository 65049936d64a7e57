// Package session persists the authentication token between runs.
//
// A single opaque bearer token is stored in a file under the user's
// state directory. No expiry tracking happens client-side: an invalid
// token is only discovered when the backend rejects a request.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

const tokenFileName = "token"

// Store holds the session token on disk. It satisfies api.TokenSource.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the default state directory
// ($XDG_STATE_HOME/projectman, falling back to ~/.local/state).
func NewStore() (*Store, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(dir), nil
}

// NewStoreAt creates a store rooted at an explicit directory.
// Used by tests and anything that needs an isolated session.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Set writes the token, creating the state directory if needed.
// The file is user-readable only.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.tokenPath(), []byte(token+"\n"), 0o600)
}

// Get returns the stored token. The second return value is false when
// no session exists.
func (s *Store) Get() (string, bool) {
	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the stored token. Clearing an absent session is not
// an error.
func (s *Store) Clear() error {
	err := os.Remove(s.tokenPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Token implements api.TokenSource.
func (s *Store) Token() (string, bool) {
	return s.Get()
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.dir, tokenFileName)
}

func stateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "projectman"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", "projectman"), nil
}
