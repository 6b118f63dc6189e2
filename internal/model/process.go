package model

import "time"

// Stream identifies one of the compiler's output streams.
type Stream string

const (
	// Stdout is the compiler's standard output.
	Stdout Stream = "stdout"
	// Stderr is the compiler's standard error.
	Stderr Stream = "stderr"
)

// Invocation describes one run of the external compiler.
type Invocation struct {
	Executable string
	Args       []string
	Dir        Path
}

// ProcessResult holds both captured streams and the exit status of a finished
// process.
type ProcessResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// CompileResult is the outcome of a completed compile attempt after the two
// streams were reduced to the one that is displayed.
type CompileResult struct {
	Target   Target
	Stream   Stream
	Text     string
	ExitCode int
	Duration time.Duration
}
