// Package session persists the CLI's login state. It is the only place in
// the program that touches the underlying session file.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taskflow/core/internal/ports"
)

// ErrNotLoggedIn is returned when no valid session is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// Session is the persisted login state: the bearer credential plus the user
// info displayed by the CLI.
type Session struct {
	Token string         `json:"token"`
	User  ports.UserInfo `json:"user"`
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a store on the given file path. An empty path falls back
// to taskflow/session.json under the user config dir.
func NewStore(path string) (*Store, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(configDir, "taskflow", "session.json")
	}
	return &Store{path: path}, nil
}

// Load reads the persisted session. A missing or unparseable file clears the
// stored state and reports ErrNotLoggedIn.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		// Corrupt state is torn down rather than reused.
		_ = s.Clear()
		return nil, ErrNotLoggedIn
	}

	return &sess, nil
}

// Set persists the session, replacing any previous one.
func (s *Store) Set(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
