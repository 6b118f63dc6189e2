// Package adapter contains the infrastructure adapters used by the editor:
// filesystem access, the compiler process runner, save dialogs, state storage
// and the console mirror.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/ivedit/internal/model"
)

// FSAdapter abstracts the filesystem operations the domain layer relies on
// when persisting the editor buffer. It hides direct `os` access so the
// compile workflow can be tested without touching the disk.
type FSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions,
	// replacing anything already there.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Abs resolves path against the current working directory. A leading
	// "~" is expanded to the user's home directory.
	Abs(path m.Path) (m.Path, error)
}

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter instance ready to be wired
// into the orchestrator.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - the path is chosen by the user on purpose
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Abs returns the absolute, cleaned form of path.
func (a *LocalFSAdapter) Abs(path m.Path) (m.Path, error) {
	p, err := expandHome(string(path))
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return m.Path(abs), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}

	return filepath.Join(home, path[2:]), nil
}
