package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mouse-blink/ivedit/internal/adapter"
	m "github.com/mouse-blink/ivedit/internal/model"
)

// Orchestrator runs the persist-invoke-capture sequence: it resolves the
// output path, writes the buffer next to it, runs the external compiler and
// reduces the compiler's output to the one string that is displayed.
//
// Both operations take the state by value and return the next state, so the
// caller decides when to apply it.
type Orchestrator interface {
	ChooseOutputPath(ctx context.Context, state m.EditorState, dialog adapter.SaveDialog) (m.EditorState, error)
	Compile(ctx context.Context, state m.EditorState, dialog adapter.SaveDialog) (m.EditorState, m.CompileResult, error)
}

// OrchestratorConfig holds the compiler settings the orchestrator needs.
type OrchestratorConfig struct {
	Executable string
	Suffix     string
	Selection  SelectionPolicy
	Timeout    time.Duration // zero means no limit
}

type orchestrator struct {
	fsAdapter adapter.FSAdapter
	runner    adapter.CompilerRunnerAdapter
	console   adapter.ConsoleAdapter
	cfg       OrchestratorConfig
	logger    *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem, compiler runner and console adapters.
func NewOrchestrator(
	fsAdapter adapter.FSAdapter,
	runner adapter.CompilerRunnerAdapter,
	console adapter.ConsoleAdapter,
	cfg OrchestratorConfig,
	logger *slog.Logger,
) Orchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.Selection == "" {
		cfg.Selection = SelectStdout
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		runner:    runner,
		console:   console,
		cfg:       cfg,
		logger:    logger,
	}
}

// ChooseOutputPath asks the dialog for a new output path, offering the current
// one as the default. On cancellation the state comes back unchanged together
// with ErrDialogCancelled.
func (o *orchestrator) ChooseOutputPath(ctx context.Context, state m.EditorState, dialog adapter.SaveDialog) (m.EditorState, error) {
	path, err := o.askForPath(ctx, state.OutputPath, dialog)
	if err != nil {
		return state, err
	}

	state.SetOutputPath(path)
	o.logger.Debug("output path chosen", "path", path)

	return state, nil
}

// Compile resolves the output path (asking the dialog once when none is set),
// overwrites <save>.iv with the buffer, runs the compiler in the directory of
// the output, reduces its two streams to one and mirrors that stream to the
// host. The returned state carries the chosen output path even when a later
// stage fails; LastOutput only changes on success.
func (o *orchestrator) Compile(ctx context.Context, state m.EditorState, dialog adapter.SaveDialog) (m.EditorState, m.CompileResult, error) {
	save, err := o.resolveOutputPath(ctx, state, dialog)
	if err != nil {
		return state, m.CompileResult{}, err
	}

	state.SetOutputPath(save)

	target, err := TargetFor(save, o.cfg.Suffix)
	if err != nil {
		return state, m.CompileResult{}, &CompileError{Stage: StageResolve, Path: save, Err: err}
	}

	if err := o.writeSource(target.Input, state.SourceText); err != nil {
		return state, m.CompileResult{}, err
	}

	proc, err := o.runCompiler(ctx, target)
	if err != nil {
		return state, m.CompileResult{}, err
	}

	stream, text, err := Reduce(o.cfg.Selection, o.cfg.Executable, proc)
	if err != nil {
		return state, m.CompileResult{}, &CompileError{Stage: StageDecode, Path: target.Input, Err: err}
	}

	o.logger.Debug("compiler output reduced", "stream", stream, "bytes", len(text))

	if err := o.mirror(stream, text); err != nil {
		return state, m.CompileResult{}, err
	}

	state.LastOutput = text

	return state, m.CompileResult{
		Target:   target,
		Stream:   stream,
		Text:     text,
		ExitCode: proc.ExitCode,
		Duration: proc.Duration,
	}, nil
}

func (o *orchestrator) resolveOutputPath(ctx context.Context, state m.EditorState, dialog adapter.SaveDialog) (m.Path, error) {
	if state.HasOutputPath() {
		return state.OutputPath, nil
	}

	o.logger.Debug("no output path yet, asking")

	return o.askForPath(ctx, "", dialog)
}

// askForPath opens the dialog exactly once. Anything other than a single
// chosen path is a cancellation.
func (o *orchestrator) askForPath(ctx context.Context, defaultPath m.Path, dialog adapter.SaveDialog) (m.Path, error) {
	if dialog == nil {
		return "", ErrDialogCancelled
	}

	resp, err := dialog.Open(ctx, defaultPath)
	if err != nil {
		return "", &CompileError{Stage: StageResolve, Err: fmt.Errorf("failed to open save dialog: %w", err)}
	}

	if resp.Outcome != m.DialogChosen || resp.Path.IsZero() {
		o.logger.Debug("save dialog closed without a path", "outcome", resp.Outcome)
		return "", ErrDialogCancelled
	}

	abs, err := o.fsAdapter.Abs(resp.Path)
	if err != nil {
		return "", &CompileError{Stage: StageResolve, Path: resp.Path, Err: err}
	}

	return abs, nil
}

func (o *orchestrator) writeSource(path m.Path, source string) error {
	if err := o.fsAdapter.WriteFile(path, []byte(source), 0o644); err != nil {
		return &CompileError{Stage: StageWrite, Path: path, Err: fmt.Errorf("failed to write source: %w", err)}
	}

	o.logger.Debug("source written", "path", path, "bytes", len(source))

	return nil
}

func (o *orchestrator) runCompiler(ctx context.Context, target m.Target) (m.ProcessResult, error) {
	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	// the compiler runs in target.Dir, so it only sees file names
	inv := m.Invocation{
		Executable: o.cfg.Executable,
		Args:       []string{filepath.Base(string(target.Input)), filepath.Base(string(target.Output))},
		Dir:        target.Dir,
	}

	o.logger.Debug("running compiler", "executable", inv.Executable, "args", inv.Args, "dir", inv.Dir)

	proc, err := o.runner.Run(ctx, inv)
	if err != nil {
		return m.ProcessResult{}, &CompileError{Stage: StageSpawn, Path: target.Input, Err: err}
	}

	o.logger.Debug("compiler exited", "exit_code", proc.ExitCode, "duration", proc.Duration)

	return proc, nil
}

// mirror copies the displayed stream to the matching stream of the host
// process.
func (o *orchestrator) mirror(stream m.Stream, text string) error {
	if o.console == nil || text == "" {
		return nil
	}

	w := o.console.Stdout()
	if stream == m.Stderr {
		w = o.console.Stderr()
	}

	if _, err := io.WriteString(w, text); err != nil {
		return &CompileError{Stage: StageMirror, Err: fmt.Errorf("failed to mirror %s: %w", stream, err)}
	}

	return nil
}
