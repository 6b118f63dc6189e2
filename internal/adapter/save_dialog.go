package adapter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	m "github.com/mouse-blink/ivedit/internal/model"
)

// SaveDialog asks the user where the compiled artifact should go. Given an
// optional default path it returns the chosen path or reports that nothing
// was chosen. Errors are reserved for dialogs that could not be shown.
type SaveDialog interface {
	Open(ctx context.Context, defaultPath m.Path) (m.DialogResponse, error)
}

// dialogRunFunc runs the dialog program and returns its stdout and exit code.
type dialogRunFunc func(ctx context.Context, name string, args ...string) ([]byte, int, error)

// NativeSaveDialog shows the desktop's save dialog through zenity (or a
// compatible program such as qarma).
type NativeSaveDialog struct {
	command string
	title   string
	run     dialogRunFunc
}

// NewNativeSaveDialog constructs a NativeSaveDialog that runs command.
func NewNativeSaveDialog(command string) *NativeSaveDialog {
	if command == "" {
		command = "zenity"
	}

	return &NativeSaveDialog{
		command: command,
		title:   "Select Output File",
		run:     runDialogCommand,
	}
}

// Open shows the dialog and blocks until the user closes it.
func (d *NativeSaveDialog) Open(ctx context.Context, defaultPath m.Path) (m.DialogResponse, error) {
	args := []string{
		"--file-selection",
		"--save",
		"--confirm-overwrite",
		"--title=" + d.title,
	}
	if !defaultPath.IsZero() {
		args = append(args, "--filename="+string(defaultPath))
	}

	out, code, err := d.run(ctx, d.command, args...)
	if err != nil {
		return m.DialogResponse{}, fmt.Errorf("failed to run save dialog %s: %w", d.command, err)
	}

	return parseDialogOutput(out, code)
}

// parseDialogOutput maps zenity's conventions onto a DialogResponse: exit 0
// prints the selection ("|"-separated when several), exit 1 is a cancel.
func parseDialogOutput(out []byte, code int) (m.DialogResponse, error) {
	switch code {
	case 0:
		text := strings.TrimRight(string(out), "\r\n")
		if text == "" {
			return m.Cancelled(), nil
		}

		parts := strings.Split(text, "|")
		if len(parts) > 1 {
			paths := make([]m.Path, 0, len(parts))
			for _, p := range parts {
				paths = append(paths, m.Path(p))
			}

			return m.MultipleChosen(paths...), nil
		}

		return m.Chosen(m.Path(text)), nil
	case 1:
		return m.Cancelled(), nil
	default:
		return m.DialogResponse{}, fmt.Errorf("save dialog exited with status %d", code)
	}
}

func runDialogCommand(ctx context.Context, name string, args ...string) ([]byte, int, error) {
	// #nosec G204 - the dialog program comes from the user's config
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return out, exitErr.ExitCode(), nil
		}

		return nil, -1, err
	}

	return out, 0, nil
}
