package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mouse-blink/ivedit/internal/adapter"
	"github.com/mouse-blink/ivedit/internal/controller"
	m "github.com/mouse-blink/ivedit/internal/model"
)

// StdinSource names standard input as the source of a headless compile.
const StdinSource m.Path = "-"

// ErrStateDisabled is returned by state operations when persistence is off.
var ErrStateDisabled = errors.New("state persistence is disabled")

// EditArgs holds the parameters of an interactive editing session.
type EditArgs struct {
	SourceFile m.Path // optional initial buffer; a missing file starts empty
	OutputPath m.Path // overrides the persisted output path
	StateFile  m.Path // empty disables persistence
}

// CompileArgs holds the parameters of a headless compile.
type CompileArgs struct {
	Source     m.Path // file to compile, StdinSource, or empty for the persisted buffer
	OutputPath m.Path
	StateFile  m.Path
	SaveState  bool
	Summary    bool
}

// StateArgs names the persisted state file.
type StateArgs struct {
	StateFile m.Path
}

// Workflow defines the user-facing flows of the editor.
type Workflow interface {
	Edit(ctx context.Context, args EditArgs) error
	Compile(ctx context.Context, args CompileArgs) error
	ShowState(args StateArgs) error
	ClearState(args StateArgs) error
}

type workflow struct {
	fsAdapter  adapter.FSAdapter
	stateStore adapter.StateStore
	console    adapter.ConsoleAdapter
	ui         controller.UI
	orch       Orchestrator
	dialog     adapter.SaveDialog
	stdin      io.Reader
	logger     *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// A nil dialog lets the editor ask for paths itself; headless compiles then
// need an output path from the flags or the persisted state.
func NewWorkflow(
	fsAdapter adapter.FSAdapter,
	stateStore adapter.StateStore,
	console adapter.ConsoleAdapter,
	ui controller.UI,
	orch Orchestrator,
	dialog adapter.SaveDialog,
	stdin io.Reader,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &workflow{
		fsAdapter:  fsAdapter,
		stateStore: stateStore,
		console:    console,
		ui:         ui,
		orch:       orch,
		dialog:     dialog,
		stdin:      stdin,
		logger:     logger,
	}
}

// Edit loads the state, runs the editor and saves whatever the user left
// behind. Compiler output mirrored while the editor owns the terminal is
// flushed after it exits.
func (w *workflow) Edit(ctx context.Context, args EditArgs) error {
	state, err := w.loadState(args.StateFile)
	if err != nil {
		return err
	}

	if args.SourceFile != "" {
		if state, err = w.openSourceFile(state, args.SourceFile); err != nil {
			return err
		}
	}

	if args.OutputPath != "" {
		if state, err = w.withOutputPath(state, args.OutputPath); err != nil {
			return err
		}
	}

	w.console.Hold()

	final, editErr := w.ui.Edit(ctx, state, w.orch, w.dialog)

	if err := w.console.Release(); err != nil && editErr == nil {
		editErr = fmt.Errorf("failed to flush compiler output: %w", err)
	}

	if editErr != nil {
		return editErr
	}

	return w.saveState(args.StateFile, final)
}

// Compile runs one compile without the editor. Failures are reported
// through the UI and returned.
func (w *workflow) Compile(ctx context.Context, args CompileArgs) error {
	state, err := w.loadState(args.StateFile)
	if err != nil {
		return err
	}

	if args.Source != "" {
		source, err := w.readSource(args.Source)
		if err != nil {
			return err
		}

		state.SetSourceText(source)
	}

	outputPath := args.OutputPath
	if outputPath == "" && args.Source != "" && args.Source != StdinSource {
		outputPath = args.Source
	}

	if outputPath != "" {
		if state, err = w.withOutputPath(state, outputPath); err != nil {
			return err
		}
	}

	next, result, err := w.orch.Compile(ctx, state, w.dialog)
	if err != nil {
		_ = w.ui.DisplayCompileError(err)

		if args.SaveState {
			if saveErr := w.saveState(args.StateFile, next); saveErr != nil {
				w.logger.Warn("state not saved after failed compile", "error", saveErr)
			}
		}

		return err
	}

	if args.Summary {
		if err := w.ui.DisplayCompileResult(result); err != nil {
			return err
		}
	}

	if args.SaveState {
		return w.saveState(args.StateFile, next)
	}

	return nil
}

func (w *workflow) ShowState(args StateArgs) error {
	if args.StateFile == "" {
		return ErrStateDisabled
	}

	state, err := w.stateStore.Load(args.StateFile)
	if err != nil {
		return err
	}

	return w.ui.DisplayState(args.StateFile, state)
}

func (w *workflow) ClearState(args StateArgs) error {
	if args.StateFile == "" {
		return ErrStateDisabled
	}

	if err := w.stateStore.Remove(args.StateFile); err != nil {
		return err
	}

	w.logger.Info("state cleared", "path", args.StateFile)

	return nil
}

// loadState reads the persisted state. Output paths written by older
// versions may be relative; they are resolved once, here.
func (w *workflow) loadState(path m.Path) (m.EditorState, error) {
	if path == "" {
		return m.EditorState{}, nil
	}

	state, err := w.stateStore.Load(path)
	if err != nil {
		return m.EditorState{}, err
	}

	if state.HasOutputPath() {
		abs, err := w.fsAdapter.Abs(state.OutputPath)
		if err != nil {
			return m.EditorState{}, fmt.Errorf("failed to resolve persisted output path: %w", err)
		}

		state.SetOutputPath(abs)
	}

	w.logger.Debug("state loaded", "path", path, "output_path", state.OutputPath, "bytes", len(state.SourceText))

	return state, nil
}

func (w *workflow) saveState(path m.Path, state m.EditorState) error {
	if path == "" {
		return nil
	}

	if err := w.stateStore.Save(path, state); err != nil {
		return err
	}

	w.logger.Debug("state saved", "path", path)

	return nil
}

// openSourceFile loads an initial buffer. The file also becomes the output
// path, so compiling writes back to it; a missing file starts an empty
// buffer.
func (w *workflow) openSourceFile(state m.EditorState, path m.Path) (m.EditorState, error) {
	data, err := w.fsAdapter.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return state, fmt.Errorf("failed to read %s: %w", path, err)
	}

	state.SetSourceText(string(data))
	state.LastOutput = ""

	return w.withOutputPath(state, path)
}

func (w *workflow) withOutputPath(state m.EditorState, path m.Path) (m.EditorState, error) {
	abs, err := w.fsAdapter.Abs(path)
	if err != nil {
		return state, fmt.Errorf("failed to resolve output path: %w", err)
	}

	state.SetOutputPath(abs)

	return state, nil
}

func (w *workflow) readSource(source m.Path) (string, error) {
	if source == StdinSource {
		data, err := io.ReadAll(w.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read source from stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := w.fsAdapter.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}

	return string(data), nil
}
