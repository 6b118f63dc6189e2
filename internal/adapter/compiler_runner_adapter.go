package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	m "github.com/mouse-blink/ivedit/internal/model"
	"golang.org/x/sync/errgroup"
)

// CompilerRunnerAdapter runs the external compiler and captures everything it
// writes. A non-zero exit status is reported in the result, not as an error;
// errors are reserved for processes that could not be started or were
// interrupted.
type CompilerRunnerAdapter interface {
	Run(ctx context.Context, inv m.Invocation) (m.ProcessResult, error)
}

// defaultWaitDelay bounds how long Run waits for the compiler's output pipes
// to close once the compiler has exited or been killed. A helper process that
// inherited the pipes would otherwise keep Run blocked.
const defaultWaitDelay = 2 * time.Second

// LocalCompilerRunnerAdapter runs the compiler with os/exec.
type LocalCompilerRunnerAdapter struct {
	waitDelay time.Duration
}

// NewLocalCompilerRunnerAdapter constructs a LocalCompilerRunnerAdapter.
func NewLocalCompilerRunnerAdapter() *LocalCompilerRunnerAdapter {
	return &LocalCompilerRunnerAdapter{waitDelay: defaultWaitDelay}
}

// Run starts inv and blocks until it exits and both of its output streams are
// drained, or until the wait delay runs out after it exited or was killed.
func (a *LocalCompilerRunnerAdapter) Run(ctx context.Context, inv m.Invocation) (m.ProcessResult, error) {
	if inv.Executable == "" {
		return m.ProcessResult{}, errors.New("no compiler executable configured")
	}

	outR, outW := io.Pipe()
	errR, errW := io.Pipe()

	// #nosec G204 - running the configured compiler is the whole point
	cmd := exec.CommandContext(ctx, inv.Executable, inv.Args...)
	cmd.Dir = string(inv.Dir)
	cmd.Stdout = outW
	cmd.Stderr = errW
	cmd.WaitDelay = a.waitDelay

	started := time.Now()

	if err := cmd.Start(); err != nil {
		return m.ProcessResult{}, fmt.Errorf("failed to start %s: %w", inv.Executable, err)
	}

	var outBuf, errBuf bytes.Buffer

	// Both streams must be read concurrently or a chatty compiler can fill one
	// of them and block forever.
	var g errgroup.Group

	g.Go(func() error {
		_, err := io.Copy(&outBuf, outR)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(&errBuf, errR)
		return err
	})

	waitErr := cmd.Wait()

	// Wait has stopped writing to both pipes; closing them ends the readers.
	_ = outW.Close()
	_ = errW.Close()

	readErr := g.Wait()

	result := m.ProcessResult{
		Stdout:   outBuf.Bytes(),
		Stderr:   errBuf.Bytes(),
		Duration: time.Since(started),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("compiler run interrupted: %w", ctxErr)
	}

	if waitErr != nil && !errors.Is(waitErr, exec.ErrWaitDelay) {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return result, fmt.Errorf("failed to wait for %s: %w", inv.Executable, waitErr)
		}

		result.ExitCode = exitErr.ExitCode()
	}

	if readErr != nil {
		return result, fmt.Errorf("failed to read compiler output: %w", readErr)
	}

	return result, nil
}
