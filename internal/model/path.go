// Package model defines the data structures shared by the editor, the compile
// orchestrator and their adapters.
package model

import "errors"

// ErrDialogCancelled is returned when the save dialog closes without a single
// chosen path.
var ErrDialogCancelled = errors.New("no output path chosen")

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// IsZero reports whether no path has been set.
func (p Path) IsZero() bool {
	return p == ""
}

// DialogOutcome describes how a save dialog was closed.
type DialogOutcome int

const (
	// DialogCancelled means the user dismissed the dialog without a choice.
	DialogCancelled DialogOutcome = iota
	// DialogChosen means exactly one path was chosen.
	DialogChosen
	// DialogMultipleChosen means the dialog returned several paths. It resolves
	// nothing and is handled like a cancellation.
	DialogMultipleChosen
)

func (o DialogOutcome) String() string {
	switch o {
	case DialogChosen:
		return "chosen"
	case DialogMultipleChosen:
		return "multiple"
	default:
		return "cancelled"
	}
}

// DialogResponse is what a save dialog returns.
type DialogResponse struct {
	Outcome DialogOutcome
	Path    Path   // set when Outcome is DialogChosen
	Paths   []Path // set when Outcome is DialogMultipleChosen
}

// Chosen builds a response for a single chosen path.
func Chosen(path Path) DialogResponse {
	return DialogResponse{Outcome: DialogChosen, Path: path}
}

// Cancelled builds a response for a dismissed dialog.
func Cancelled() DialogResponse {
	return DialogResponse{Outcome: DialogCancelled}
}

// MultipleChosen builds a response for a dialog that returned several paths.
func MultipleChosen(paths ...Path) DialogResponse {
	return DialogResponse{Outcome: DialogMultipleChosen, Paths: paths}
}

// Target is the pair of files handed to the compiler for one output path.
type Target struct {
	Input  Path // <save><suffix>, rewritten with the editor buffer
	Output Path // <save>, the build destination
	Dir    Path // working directory for the compiler process
}
