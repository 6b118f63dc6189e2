package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/ivedit/internal/model"
)

// ErrDialogCancelled aborts a compile attempt before anything is written.
var ErrDialogCancelled = m.ErrDialogCancelled

// Stage names the step of a compile attempt that failed.
type Stage string

// Compile stages, in the order they run.
const (
	StageResolve Stage = "resolve"
	StageWrite   Stage = "write"
	StageSpawn   Stage = "spawn"
	StageDecode  Stage = "decode"
	StageMirror  Stage = "mirror"
)

// CompileError wraps a failure with the stage it happened in. None of them
// are retried.
type CompileError struct {
	Stage Stage
	Path  m.Path
	Err   error
}

func (e *CompileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("compile %s failed for %s: %v", e.Stage, e.Path, e.Err)
	}

	return fmt.Sprintf("compile %s failed: %v", e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// DecodeError reports compiler output that is not valid UTF-8.
type DecodeError struct {
	Stream m.Stream
	Offset int // byte offset of the first invalid sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("compiler %s is not valid UTF-8 (invalid byte at offset %d)", e.Stream, e.Offset)
}

// StageOf returns the stage of a CompileError anywhere in err's chain.
func StageOf(err error) (Stage, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Stage, true
	}

	return "", false
}
