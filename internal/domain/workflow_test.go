package domain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/mouse-blink/ivedit/internal/adapter"
	adaptermocks "github.com/mouse-blink/ivedit/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/ivedit/internal/controller/mocks"
	m "github.com/mouse-blink/ivedit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testStateFile = m.Path("/cfg/state.yaml")

type workflowFixture struct {
	fs      *adaptermocks.MockFSAdapter
	store   *adaptermocks.MockStateStore
	console *adaptermocks.MockConsoleAdapter
	runner  *adaptermocks.MockCompilerRunnerAdapter
	ui      *controllermocks.MockUI
	stdout  *bytes.Buffer
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	return &workflowFixture{
		fs:      adaptermocks.NewMockFSAdapter(t),
		store:   adaptermocks.NewMockStateStore(t),
		console: adaptermocks.NewMockConsoleAdapter(t),
		runner:  adaptermocks.NewMockCompilerRunnerAdapter(t),
		ui:      controllermocks.NewMockUI(t),
		stdout:  &bytes.Buffer{},
	}
}

func (f *workflowFixture) workflow(dialog adapter.SaveDialog, stdin string) Workflow {
	// the orchestrator mirrors through a real console so compile tests can
	// check what reached the host streams
	mirror := adapter.NewLocalConsoleAdapter(f.stdout, &bytes.Buffer{})
	orch := NewOrchestrator(f.fs, f.runner, mirror, OrchestratorConfig{Executable: "intuitive", Suffix: ".iv"}, nil)

	return NewWorkflow(f.fs, f.store, f.console, f.ui, orch, dialog, strings.NewReader(stdin), nil)
}

func TestWorkflow_Edit_LoadsAndSavesState(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "")

	persisted := m.EditorState{SourceText: "x", OutputPath: "rel/prog", LastOutput: "old"}
	loaded := m.EditorState{SourceText: "x", OutputPath: "/work/rel/prog", LastOutput: "old"}
	final := m.EditorState{SourceText: "xy", OutputPath: "/work/rel/prog", LastOutput: "new"}

	f.store.EXPECT().Load(testStateFile).Return(persisted, nil)
	f.fs.EXPECT().Abs(m.Path("rel/prog")).Return(m.Path("/work/rel/prog"), nil)
	f.console.EXPECT().Hold().Once()
	f.ui.EXPECT().Edit(mock.Anything, loaded, mock.Anything, mock.Anything).Return(final, nil)
	f.console.EXPECT().Release().Return(nil).Once()
	f.store.EXPECT().Save(testStateFile, final).Return(nil)

	err := wf.Edit(context.Background(), EditArgs{StateFile: testStateFile})
	require.NoError(t, err)
}

func TestWorkflow_Edit_SourceFileAndOutputOverride(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "")

	f.fs.EXPECT().ReadFile(m.Path("prog.iv")).Return([]byte("print 1\n"), nil)
	f.fs.EXPECT().Abs(m.Path("prog.iv")).Return(m.Path("/work/prog.iv"), nil)
	f.fs.EXPECT().Abs(m.Path("out/bin")).Return(m.Path("/work/out/bin"), nil)
	f.console.EXPECT().Hold()
	f.ui.EXPECT().Edit(mock.Anything, m.EditorState{SourceText: "print 1\n", OutputPath: "/work/out/bin"}, mock.Anything, mock.Anything).
		Return(m.EditorState{}, nil)
	f.console.EXPECT().Release().Return(nil)

	err := wf.Edit(context.Background(), EditArgs{SourceFile: "prog.iv", OutputPath: "out/bin"})
	require.NoError(t, err)

	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWorkflow_Edit_MissingSourceFileStartsEmpty(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "")

	f.store.EXPECT().Load(testStateFile).Return(m.EditorState{SourceText: "persisted", LastOutput: "old"}, nil)
	f.fs.EXPECT().ReadFile(m.Path("new.iv")).Return(nil, os.ErrNotExist)
	f.fs.EXPECT().Abs(m.Path("new.iv")).Return(m.Path("/work/new.iv"), nil)
	f.console.EXPECT().Hold()
	f.ui.EXPECT().Edit(mock.Anything, m.EditorState{OutputPath: "/work/new.iv"}, mock.Anything, mock.Anything).
		Return(m.EditorState{OutputPath: "/work/new.iv"}, nil)
	f.console.EXPECT().Release().Return(nil)
	f.store.EXPECT().Save(testStateFile, m.EditorState{OutputPath: "/work/new.iv"}).Return(nil)

	err := wf.Edit(context.Background(), EditArgs{SourceFile: "new.iv", StateFile: testStateFile})
	require.NoError(t, err)
}

func TestWorkflow_Edit_UnreadableSourceFile(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "")

	f.fs.EXPECT().ReadFile(m.Path("prog.iv")).Return(nil, os.ErrPermission)

	err := wf.Edit(context.Background(), EditArgs{SourceFile: "prog.iv"})
	require.ErrorIs(t, err, os.ErrPermission)

	f.ui.AssertNotCalled(t, "Edit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Edit_UIErrorSkipsSave(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "")

	uiErr := errors.New("no terminal")

	f.store.EXPECT().Load(testStateFile).Return(m.EditorState{}, nil)
	f.console.EXPECT().Hold()
	f.ui.EXPECT().Edit(mock.Anything, m.EditorState{}, mock.Anything, mock.Anything).Return(m.EditorState{}, uiErr)
	f.console.EXPECT().Release().Return(nil).Once()

	err := wf.Edit(context.Background(), EditArgs{StateFile: testStateFile})
	require.ErrorIs(t, err, uiErr)

	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWorkflow_Edit_ReleaseError(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "")

	f.console.EXPECT().Hold()
	f.ui.EXPECT().Edit(mock.Anything, m.EditorState{}, mock.Anything, mock.Anything).Return(m.EditorState{}, nil)
	f.console.EXPECT().Release().Return(errors.New("broken pipe"))

	err := wf.Edit(context.Background(), EditArgs{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to flush compiler output")
}

func TestWorkflow_Compile_FromStdin(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "print 1\n")

	f.fs.EXPECT().Abs(m.Path("out.iv")).Return(m.Path("/work/out.iv"), nil)
	f.fs.EXPECT().WriteFile(m.Path("/work/out.iv"), []byte("print 1\n"), os.FileMode(0o644)).Return(nil)
	f.runner.EXPECT().Run(mock.Anything, m.Invocation{
		Executable: "intuitive",
		Args:       []string{"out.iv", "out"},
		Dir:        "/work",
	}).Return(m.ProcessResult{Stdout: []byte("ok\n")}, nil)
	f.ui.EXPECT().DisplayCompileResult(mock.MatchedBy(func(result m.CompileResult) bool {
		return result.Text == "ok\n" && result.Stream == m.Stdout
	})).Return(nil)

	err := wf.Compile(context.Background(), CompileArgs{Source: StdinSource, OutputPath: "out.iv", Summary: true})
	require.NoError(t, err)

	assert.Equal(t, "ok\n", f.stdout.String())
	f.store.AssertNotCalled(t, "Load", mock.Anything)
}

func TestWorkflow_Compile_SourceFileIsTheOutputPath(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "")

	f.store.EXPECT().Load(testStateFile).Return(m.EditorState{OutputPath: "/elsewhere/prog"}, nil)
	f.fs.EXPECT().Abs(m.Path("/elsewhere/prog")).Return(m.Path("/elsewhere/prog"), nil)
	f.fs.EXPECT().ReadFile(m.Path("prog.iv")).Return([]byte("src"), nil)
	f.fs.EXPECT().Abs(m.Path("prog.iv")).Return(m.Path("/work/prog.iv"), nil)
	f.fs.EXPECT().WriteFile(m.Path("/work/prog.iv"), []byte("src"), os.FileMode(0o644)).Return(nil)
	f.runner.EXPECT().Run(mock.Anything, mock.MatchedBy(func(inv m.Invocation) bool {
		return inv.Dir == "/work" && inv.Args[1] == "prog"
	})).Return(m.ProcessResult{Stderr: []byte("warning\n")}, nil)
	f.store.EXPECT().Save(testStateFile, m.EditorState{
		SourceText: "src",
		OutputPath: "/work/prog.iv",
		LastOutput: "warning\n",
	}).Return(nil)

	err := wf.Compile(context.Background(), CompileArgs{Source: "prog.iv", StateFile: testStateFile, SaveState: true})
	require.NoError(t, err)
}

func TestWorkflow_Compile_UsesPersistedBuffer(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "")

	f.store.EXPECT().Load(testStateFile).Return(m.EditorState{SourceText: "saved", OutputPath: "/work/prog"}, nil)
	f.fs.EXPECT().Abs(m.Path("/work/prog")).Return(m.Path("/work/prog"), nil)
	f.fs.EXPECT().WriteFile(m.Path("/work/prog.iv"), []byte("saved"), os.FileMode(0o644)).Return(nil)
	f.runner.EXPECT().Run(mock.Anything, mock.Anything).Return(m.ProcessResult{}, nil)

	err := wf.Compile(context.Background(), CompileArgs{StateFile: testStateFile})
	require.NoError(t, err)

	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWorkflow_Compile_NoOutputPath(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "x")

	f.ui.EXPECT().DisplayCompileError(ErrDialogCancelled).Return(nil)

	err := wf.Compile(context.Background(), CompileArgs{Source: StdinSource})
	require.ErrorIs(t, err, ErrDialogCancelled)

	f.runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestWorkflow_Compile_DialogChoosesPath(t *testing.T) {
	f := newWorkflowFixture(t)
	dialog := adaptermocks.NewMockSaveDialog(t)
	wf := f.workflow(dialog, "x")

	dialog.EXPECT().Open(mock.Anything, m.Path("")).Return(m.Chosen("/work/prog.iv"), nil).Once()
	f.fs.EXPECT().Abs(m.Path("/work/prog.iv")).Return(m.Path("/work/prog.iv"), nil)
	f.fs.EXPECT().WriteFile(m.Path("/work/prog.iv"), []byte("x"), os.FileMode(0o644)).Return(nil)
	f.runner.EXPECT().Run(mock.Anything, mock.Anything).Return(m.ProcessResult{Stdout: []byte("ok")}, nil)

	err := wf.Compile(context.Background(), CompileArgs{Source: StdinSource})
	require.NoError(t, err)
}

func TestWorkflow_Compile_FailureSavesChosenPath(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := f.workflow(nil, "x")

	f.store.EXPECT().Load(testStateFile).Return(m.EditorState{}, nil)
	f.fs.EXPECT().Abs(m.Path("/work/prog")).Return(m.Path("/work/prog"), nil)
	f.fs.EXPECT().WriteFile(m.Path("/work/prog.iv"), []byte("x"), os.FileMode(0o644)).Return(os.ErrPermission)
	f.ui.EXPECT().DisplayCompileError(mock.Anything).Return(nil)
	f.store.EXPECT().Save(testStateFile, m.EditorState{SourceText: "x", OutputPath: "/work/prog"}).Return(nil)

	err := wf.Compile(context.Background(), CompileArgs{
		Source:     StdinSource,
		OutputPath: "/work/prog",
		StateFile:  testStateFile,
		SaveState:  true,
	})
	require.ErrorIs(t, err, os.ErrPermission)
}

func TestWorkflow_State(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		f := newWorkflowFixture(t)
		wf := f.workflow(nil, "")

		state := m.EditorState{SourceText: "x"}
		f.store.EXPECT().Load(testStateFile).Return(state, nil)
		f.ui.EXPECT().DisplayState(testStateFile, state).Return(nil)

		require.NoError(t, wf.ShowState(StateArgs{StateFile: testStateFile}))
	})

	t.Run("clear", func(t *testing.T) {
		f := newWorkflowFixture(t)
		wf := f.workflow(nil, "")

		f.store.EXPECT().Remove(testStateFile).Return(nil)

		require.NoError(t, wf.ClearState(StateArgs{StateFile: testStateFile}))
	})

	t.Run("disabled", func(t *testing.T) {
		f := newWorkflowFixture(t)
		wf := f.workflow(nil, "")

		require.ErrorIs(t, wf.ShowState(StateArgs{}), ErrStateDisabled)
		require.ErrorIs(t, wf.ClearState(StateArgs{}), ErrStateDisabled)
	})

	t.Run("load error", func(t *testing.T) {
		f := newWorkflowFixture(t)
		wf := f.workflow(nil, "")

		f.store.EXPECT().Load(testStateFile).Return(m.EditorState{}, errors.New("corrupt"))

		require.Error(t, wf.ShowState(StateArgs{StateFile: testStateFile}))
	})
}
