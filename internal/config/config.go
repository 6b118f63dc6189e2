// Package config loads the ivedit configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// AppName names the per-user config and state directory.
const AppName = "ivedit"

// Selection policies for choosing which compiler stream is displayed.
const (
	SelectStdout     = "stdout"
	SelectExitStatus = "exit-status"
)

// Dialog kinds.
const (
	DialogPrompt = "prompt"
	DialogZenity = "zenity"
)

// Config represents the ivedit configuration.
type Config struct {
	Compiler CompilerConfig `toml:"compiler"`
	Dialog   DialogConfig   `toml:"dialog"`
	Editor   EditorConfig   `toml:"editor"`
	State    StateConfig    `toml:"state"`
	Log      LogConfig      `toml:"log"`
}

// CompilerConfig describes the external compiler.
type CompilerConfig struct {
	Executable string `toml:"executable"`
	Suffix     string `toml:"suffix"`    // source file suffix, stripped then reapplied
	Selection  string `toml:"selection"` // "stdout" or "exit-status"
	Timeout    string `toml:"timeout"`   // Go duration; empty means no limit
}

// DialogConfig picks how the output path is asked for.
type DialogConfig struct {
	Kind    string `toml:"kind"`    // "prompt" or "zenity"
	Command string `toml:"command"` // program run for kind = "zenity"
}

// EditorConfig tunes the editor pane.
type EditorConfig struct {
	LineNumbers bool `toml:"line_numbers"`
}

// StateConfig controls persistence of the editor state.
type StateConfig struct {
	Persist bool   `toml:"persist"`
	File    string `toml:"file"`
}

// LogConfig controls the debug log. An empty file disables logging.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Compiler: CompilerConfig{
			Executable: "intuitive",
			Suffix:     ".iv",
			Selection:  SelectStdout,
		},
		Dialog: DialogConfig{
			Kind:    DialogPrompt,
			Command: "zenity",
		},
		Editor: EditorConfig{LineNumbers: true},
		State:  StateConfig{Persist: true},
		Log:    LogConfig{Level: "info"},
	}
}

// DefaultPath returns <user config dir>/ivedit/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}

	return filepath.Join(dir, AppName, "config.toml"), nil
}

// Load reads the config at path on top of Default. When path is empty the
// default location is used and a missing file is not an error; an explicitly
// named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil //nolint:nilerr // no config dir means defaults
		}

		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Compiler.Executable) == "" {
		errs = append(errs, errors.New("[compiler].executable must not be empty"))
	}

	if c.Compiler.Suffix == "" {
		errs = append(errs, errors.New("[compiler].suffix must not be empty"))
	}

	switch c.Compiler.Selection {
	case SelectStdout, SelectExitStatus:
	default:
		errs = append(errs, fmt.Errorf("[compiler].selection must be one of {%s,%s}; got %q",
			SelectStdout, SelectExitStatus, c.Compiler.Selection))
	}

	if c.Compiler.Timeout != "" {
		if d, err := time.ParseDuration(c.Compiler.Timeout); err != nil || d < 0 {
			errs = append(errs, fmt.Errorf("[compiler].timeout must be a non-negative duration; got %q", c.Compiler.Timeout))
		}
	}

	switch c.Dialog.Kind {
	case DialogPrompt, DialogZenity:
	default:
		errs = append(errs, fmt.Errorf("[dialog].kind must be one of {%s,%s}; got %q",
			DialogPrompt, DialogZenity, c.Dialog.Kind))
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("[log].level: %w", err))
	}

	return errors.Join(errs...)
}

// CompileTimeout returns the parsed compiler timeout; zero means no limit.
func (c Config) CompileTimeout() time.Duration {
	if c.Compiler.Timeout == "" {
		return 0
	}

	d, err := time.ParseDuration(c.Compiler.Timeout)
	if err != nil || d < 0 {
		return 0
	}

	return d
}

// StatePath returns the configured state file, defaulting to
// <user config dir>/ivedit/state.yaml.
func (c Config) StatePath() (string, error) {
	if c.State.File != "" {
		return c.State.File, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate state directory: %w", err)
	}

	return filepath.Join(dir, AppName, "state.yaml"), nil
}
