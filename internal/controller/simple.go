package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mouse-blink/ivedit/internal/adapter"
	m "github.com/mouse-blink/ivedit/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// ErrNoTerminal is returned by SimpleUI.Edit.
var ErrNoTerminal = errors.New("interactive editing needs a terminal; use `ivedit compile` instead")

// SimpleUI implements UI using cobra Command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Edit always fails: the plain-text UI has no editor.
func (s *SimpleUI) Edit(_ context.Context, state m.EditorState, _ Compiler, _ adapter.SaveDialog) (m.EditorState, error) {
	return state, ErrNoTerminal
}

// DisplayCompileResult prints a summary table of a finished compile to
// stderr, keeping stdout for the mirrored compiler output.
func (s *SimpleUI) DisplayCompileResult(result m.CompileResult) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Input", "Output", "Stream", "Exit", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.Append([]string{
		string(result.Target.Input),
		string(result.Target.Output),
		string(result.Stream),
		fmt.Sprintf("%d", result.ExitCode),
		formatDuration(result.Duration),
	})
	table.Render()

	s.errorf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCompileError prints a failed or cancelled compile attempt to stderr.
func (s *SimpleUI) DisplayCompileError(err error) error {
	if err == nil {
		return nil
	}

	s.errorf("%s\n", describeCompileError(err))

	return nil
}

// DisplayState prints the persisted state as a table.
func (s *SimpleUI) DisplayState(path m.Path, state m.EditorState) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range stateRows(path, state) {
		table.Append(row)
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func stateRows(path m.Path, state m.EditorState) [][]string {
	outputPath := "(none)"
	if state.HasOutputPath() {
		outputPath = string(state.OutputPath)
	}

	lastOutput := "(not compiled)"
	if state.HasOutput() {
		lastOutput = firstLine(state.LastOutput, 60)
	}

	return [][]string{
		{"State file", string(path)},
		{"Output path", outputPath},
		{"Source", fmt.Sprintf("%d lines, %d bytes", countLines(state.SourceText), len(state.SourceText))},
		{"Last output", lastOutput},
	}
}

func countLines(text string) int {
	if text == "" {
		return 0
	}

	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}

	return n
}

func firstLine(text string, width int) string {
	line, _, more := strings.Cut(strings.TrimRight(text, "\n"), "\n")
	if more {
		line += " …"
	}

	return truncateToWidth(line, width)
}
