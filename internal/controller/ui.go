// Package controller provides the user interfaces for editing and compiling.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mouse-blink/ivedit/internal/adapter"
	m "github.com/mouse-blink/ivedit/internal/model"
	"github.com/spf13/cobra"
)

// Compiler is the part of the compile orchestrator the editor drives.
type Compiler interface {
	ChooseOutputPath(ctx context.Context, state m.EditorState, dialog adapter.SaveDialog) (m.EditorState, error)
	Compile(ctx context.Context, state m.EditorState, dialog adapter.SaveDialog) (m.EditorState, m.CompileResult, error)
}

// UI defines the interface for editing a document and reporting compile results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Edit runs the interactive editor until the user quits and returns the
	// final state. A nil dialog means the UI asks for paths itself.
	Edit(ctx context.Context, state m.EditorState, compiler Compiler, dialog adapter.SaveDialog) (m.EditorState, error)
	DisplayCompileResult(result m.CompileResult) error
	DisplayCompileError(err error) error
	DisplayState(path m.Path, state m.EditorState) error
}

// Option is a functional option for NewUI.
type Option func(*Options)

// Options holds settings shared by the UI implementations.
type Options struct {
	lineNumbers bool
}

// WithLineNumbers toggles line numbers in the editor pane.
func WithLineNumbers(enabled bool) Option {
	return func(o *Options) {
		o.lineNumbers = enabled
	}
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool, options ...Option) UI {
	opts := Options{lineNumbers: true}
	for _, option := range options {
		option(&opts)
	}

	if useTTY {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
