package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/ivedit/internal/model"
	"gopkg.in/yaml.v3"
)

// StateStore persists the editor state between runs.
type StateStore interface {
	// Load reads the state at path. A missing file yields the zero state.
	Load(path m.Path) (m.EditorState, error)
	// Save writes state to path, creating parent directories as needed.
	Save(path m.Path, state m.EditorState) error
	// Remove deletes the state at path. A missing file is not an error.
	Remove(path m.Path) error
}

// LocalStateStore keeps the state as a YAML document on disk.
type LocalStateStore struct{}

// NewStateStore constructs a StateStore implementation.
func NewStateStore() StateStore {
	return &LocalStateStore{}
}

// Load decodes the YAML state at path. Unknown keys are ignored and missing
// keys keep their zero value so older and newer files both load.
func (s *LocalStateStore) Load(path m.Path) (m.EditorState, error) {
	// #nosec G304 - state path comes from config
	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.EditorState{}, nil
		}

		return m.EditorState{}, fmt.Errorf("failed to read state %s: %w", path, err)
	}

	var state m.EditorState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return m.EditorState{}, fmt.Errorf("failed to decode state %s: %w", path, err)
	}

	return state, nil
}

// Save writes the state through a temporary file and a rename so a crash
// never leaves a half-written record behind.
func (s *LocalStateStore) Save(path m.Path, state m.EditorState) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write state: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		return fmt.Errorf("failed to replace state %s: %w", path, err)
	}

	return nil
}

// Remove deletes the state file.
func (s *LocalStateStore) Remove(path m.Path) error {
	if err := os.Remove(string(path)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state %s: %w", path, err)
	}

	return nil
}
