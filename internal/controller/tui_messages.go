package controller

import (
	m "github.com/mouse-blink/ivedit/internal/model"
)

// Message types.
type compileDoneMsg struct {
	state  m.EditorState
	result m.CompileResult
	err    error
}

type pathChosenMsg struct {
	state m.EditorState
	err   error
}

// openPromptMsg asks the editor to show the save-path prompt. The answer is
// sent on reply exactly once.
type openPromptMsg struct {
	defaultPath m.Path
	reply       chan<- m.DialogResponse
}
