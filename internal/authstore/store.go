// Package authstore persists the session token and user between runs,
// the terminal analogue of the web client's local-storage auth cache.
package authstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"lexterm/internal/api"
)

const (
	// BaseDirEnv is the env var override for ~/.lexterm (for testing).
	BaseDirEnv = "LEXTERM_DIR"
	// DefaultBase is the default directory under the user's home.
	DefaultBase = ".lexterm"

	sessionFile = "session.json"
)

// Store reads and writes the cached session file.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at the user's home + DefaultBase,
// or at the path in LEXTERM_DIR if set.
func NewStore() (*Store, error) {
	base := os.Getenv(BaseDirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultBase)
	}
	return &Store{baseDir: base}, nil
}

// Path returns the session file location.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, sessionFile)
}

// Load reads the cached session. A missing file is not an error; it returns
// an empty session with ok=false.
func (s *Store) Load() (api.Session, bool, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return api.Session{}, false, nil
	}
	if err != nil {
		return api.Session{}, false, err
	}
	var sess api.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return api.Session{}, false, fmt.Errorf("parse %s: %w", s.Path(), err)
	}
	if sess.Token == "" {
		return api.Session{}, false, nil
	}
	return sess, true, nil
}

// Save writes the session with owner-only permissions.
func (s *Store) Save(sess api.Session) error {
	if err := os.MkdirAll(s.baseDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(), data, 0o600)
}

// Clear removes the cached session. Missing file is fine.
func (s *Store) Clear() error {
	err := os.Remove(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
