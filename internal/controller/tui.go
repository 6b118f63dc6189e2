package controller

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mouse-blink/ivedit/internal/adapter"
	m "github.com/mouse-blink/ivedit/internal/model"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input   io.Reader
	output  io.Writer
	errOut  io.Writer
	options Options
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output, errOut io.Writer, options Options) *TUI {
	return &TUI{input: input, output: output, errOut: errOut, options: options}
}

// Edit runs the editor in the alternate screen until the user quits.
func (t *TUI) Edit(ctx context.Context, state m.EditorState, compiler Compiler, dialog adapter.SaveDialog) (m.EditorState, error) {
	prompt := &promptDialog{}
	if dialog == nil {
		dialog = prompt
	}

	model := newEditorModel(ctx, state, compiler, dialog, t.options)
	if width, height, ok := terminalSize(t.output); ok {
		model = model.resize(width, height)
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)
	prompt.send = program.Send

	final, err := program.Run()
	if err != nil {
		return state, fmt.Errorf("failed to run editor: %w", err)
	}

	em, ok := final.(editorModel)
	if !ok {
		return state, fmt.Errorf("unexpected editor model %T", final)
	}

	return em.currentState(), nil
}

// DisplayCompileResult renders a short styled summary to stderr.
func (t *TUI) DisplayCompileResult(result m.CompileResult) error {
	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	summary := fmt.Sprintf("%s %s  •  stream %s  •  exit %s  •  %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).Render("✓ compiled"),
		pathStyle.Render(string(result.Target.Output)),
		accentStyle.Render(string(result.Stream)),
		accentStyle.Render(fmt.Sprintf("%d", result.ExitCode)),
		formatDuration(result.Duration),
	)

	_, _ = fmt.Fprintln(t.errOut, summary)

	return nil
}

// DisplayCompileError renders a failed or cancelled attempt to stderr.
func (t *TUI) DisplayCompileError(err error) error {
	if err == nil {
		return nil
	}

	style := errorStyle.Padding(0)
	if isCancellation(err) {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	}

	_, _ = fmt.Fprintln(t.errOut, style.Render(describeCompileError(err)))

	return nil
}

// DisplayState renders the persisted state as a bordered box.
func (t *TUI) DisplayState(path m.Path, state m.EditorState) error {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Width(12)

	rows := stateRows(path, state)
	lines := make([]string, 0, len(rows))

	for _, row := range rows {
		lines = append(lines, keyStyle.Render(row[0])+pathStyle.Render(row[1]))
	}

	box := outputBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	_, _ = fmt.Fprintln(t.output, box)

	return nil
}

func terminalSize(w io.Writer) (int, int, bool) {
	file, ok := w.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

// promptDialog asks for a path inside the running editor. Open is called
// from a command goroutine; it hands the request to the event loop and
// waits for the answer.
type promptDialog struct {
	send func(tea.Msg)
}

func (d *promptDialog) Open(ctx context.Context, defaultPath m.Path) (m.DialogResponse, error) {
	if d.send == nil {
		return m.Cancelled(), nil
	}

	reply := make(chan m.DialogResponse, 1)
	d.send(openPromptMsg{defaultPath: defaultPath, reply: reply})

	select {
	case resp := <-reply:
		return resp, nil
	case <-ctx.Done():
		return m.Cancelled(), ctx.Err()
	}
}
