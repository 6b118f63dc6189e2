package domain

import (
	"fmt"
	"unicode/utf8"

	m "github.com/mouse-blink/ivedit/internal/model"
)

// SelectionPolicy decides which compiler stream is displayed.
type SelectionPolicy string

const (
	// SelectStdout shows stdout unless it is empty, in which case stderr is
	// shown even when it is empty too. The exit status is never consulted.
	SelectStdout SelectionPolicy = "stdout"
	// SelectExitStatus behaves like SelectStdout for a zero exit status. A
	// failing compiler shows stderr, falling back to stdout, and finally to a
	// synthesized message so a failure never displays as empty output.
	SelectExitStatus SelectionPolicy = "exit-status"
)

// Reduce picks the stream to display from a finished compiler run. Both
// streams must be valid UTF-8, whichever one is chosen.
func Reduce(policy SelectionPolicy, executable string, proc m.ProcessResult) (m.Stream, string, error) {
	if err := validUTF8(m.Stdout, proc.Stdout); err != nil {
		return "", "", err
	}

	if err := validUTF8(m.Stderr, proc.Stderr); err != nil {
		return "", "", err
	}

	stdout := string(proc.Stdout)
	stderr := string(proc.Stderr)

	if policy == SelectExitStatus && proc.ExitCode != 0 {
		switch {
		case stderr != "":
			return m.Stderr, stderr, nil
		case stdout != "":
			return m.Stdout, stdout, nil
		default:
			return m.Stderr, fmt.Sprintf("%s exited with status %d\n", executable, proc.ExitCode), nil
		}
	}

	if stdout == "" {
		return m.Stderr, stderr, nil
	}

	return m.Stdout, stdout, nil
}

func validUTF8(stream m.Stream, data []byte) error {
	if utf8.Valid(data) {
		return nil
	}

	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}

		offset += size
	}

	return &DecodeError{Stream: stream, Offset: offset}
}
