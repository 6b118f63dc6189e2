package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	m "github.com/mouse-blink/ivedit/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_Edit(t *testing.T) {
	cmd, _, _ := newTestCmd()
	ui := NewSimpleUI(cmd)

	state := m.EditorState{SourceText: "x"}

	got, err := ui.Edit(context.Background(), state, nil, nil)
	require.ErrorIs(t, err, ErrNoTerminal)
	assert.Equal(t, state, got)
}

func TestSimpleUI_DisplayCompileResult(t *testing.T) {
	cmd, out, errOut := newTestCmd()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayCompileResult(m.CompileResult{
		Target:   m.Target{Input: "/work/prog.iv", Output: "/work/prog", Dir: "/work"},
		Stream:   m.Stderr,
		Text:     "boom\n",
		ExitCode: 2,
		Duration: 1500 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Empty(t, out.String(), "stdout is reserved for compiler output")
	assert.Contains(t, errOut.String(), "/work/prog.iv")
	assert.Contains(t, errOut.String(), "stderr")
	assert.Contains(t, errOut.String(), "1.5s")
}

func TestSimpleUI_DisplayCompileError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "dialog cancelled", err: m.ErrDialogCancelled, want: "compile cancelled: no output path chosen"},
		{name: "interrupted", err: fmt.Errorf("run: %w", context.Canceled), want: "compile interrupted"},
		{name: "timed out", err: fmt.Errorf("run: %w", context.DeadlineExceeded), want: "compile timed out"},
		{name: "other", err: errors.New("disk full"), want: "error: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, errOut := newTestCmd()
			ui := NewSimpleUI(cmd)

			require.NoError(t, ui.DisplayCompileError(tt.err))
			assert.Equal(t, tt.want+"\n", errOut.String())
		})
	}
}

func TestSimpleUI_DisplayState(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayState("/cfg/state.yaml", m.EditorState{
		SourceText: "a\nb\n",
		OutputPath: "/work/prog",
		LastOutput: "first line\nsecond line\n",
	}))

	text := out.String()
	assert.Contains(t, text, "/cfg/state.yaml")
	assert.Contains(t, text, "/work/prog")
	assert.Contains(t, text, "2 lines, 4 bytes")
	assert.Contains(t, text, "first line …")
	assert.NotContains(t, text, "second line")
}

func TestSimpleUI_DisplayState_Empty(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayState("/cfg/state.yaml", m.EditorState{}))

	assert.Contains(t, out.String(), "(none)")
	assert.Contains(t, out.String(), "(not compiled)")
	assert.Contains(t, out.String(), "0 lines, 0 bytes")
}

func TestTruncateHelpers(t *testing.T) {
	assert.Equal(t, "abc", truncateToWidth("abc", 5))
	assert.Equal(t, "ab…", truncateToWidth("abcdef", 3))
	assert.Equal(t, "…", truncateToWidth("abcdef", 1))
	assert.Equal(t, "", truncateToWidth("abcdef", 0))

	assert.Equal(t, "/a/b", truncatePath("/a/b", 10))
	assert.Equal(t, "…prog.iv", truncatePath("/very/long/prog.iv", 8))
}
