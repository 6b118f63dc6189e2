package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mouse-blink/ivedit/internal/adapter"
	m "github.com/mouse-blink/ivedit/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	accentColor = lipgloss.Color("6") // Cyan

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(0, 0, 0, 2)

	outputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 0, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true).
			Padding(0, 0, 0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 0, 0, 2)
)

// editorModel is the single-document editor. Compile and output selection
// run as commands against a snapshot of the state; their results come back
// as messages and are applied here, on the event loop.
type editorModel struct {
	ctx      context.Context
	compiler Compiler
	dialog   adapter.SaveDialog

	// state.SourceText stays the loaded text, byte for byte, until a key
	// changes the editor; the textarea rewrites tabs and drops invalid bytes.
	state  m.EditorState
	edited bool
	editor textarea.Model
	output viewport.Model
	prompt textinput.Model
	keys   editorKeyMap
	help   help.Model

	width  int
	height int

	busy   bool
	cancel context.CancelFunc

	prompting   bool
	promptReply chan<- m.DialogResponse

	status      string
	statusError bool
}

func newEditorModel(ctx context.Context, state m.EditorState, compiler Compiler, dialog adapter.SaveDialog, opts Options) editorModel {
	editor := textarea.New()
	editor.Placeholder = "Type your program here…"
	editor.ShowLineNumbers = opts.lineNumbers
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.MaxWidth = 0
	editor.SetValue(strings.ReplaceAll(state.SourceText, "\r\n", "\n"))
	editor.Focus()

	prompt := textinput.New()
	prompt.Prompt = "Save as: "
	prompt.Placeholder = "path/to/program.iv"

	output := viewport.New(defaultWidth, 1)
	output.SetContent(state.LastOutput)

	model := editorModel{
		ctx:      ctx,
		compiler: compiler,
		dialog:   dialog,
		state:    state,
		editor:   editor,
		output:   output,
		prompt:   prompt,
		keys:     newEditorKeyMap(),
		help:     help.New(),
	}

	return model.resize(defaultWidth, defaultHeight)
}

func (em editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (em editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return em.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if em.prompting {
			return em.handlePromptKey(msg)
		}

		return em.handleKey(msg)

	case openPromptMsg:
		return em.openPrompt(msg)

	case compileDoneMsg:
		return em.handleCompileDone(msg), nil

	case pathChosenMsg:
		return em.handlePathChosen(msg), nil
	}

	var cmd tea.Cmd

	em.editor, cmd = em.editor.Update(msg)

	return em, cmd
}

func (em editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, em.keys.Quit):
		if em.cancel != nil {
			em.cancel()
		}

		return em, tea.Quit

	case key.Matches(msg, em.keys.Compile):
		return em.startCompile()

	case key.Matches(msg, em.keys.ChooseOutput):
		return em.startChooseOutput()

	case key.Matches(msg, em.keys.Cancel):
		if em.busy && em.cancel != nil {
			em.cancel()
			em.setStatus("cancelling…", false)
		}

		return em, nil
	}

	var cmd tea.Cmd

	before := em.editor.Value()
	em.editor, cmd = em.editor.Update(msg)

	if value := em.editor.Value(); value != before {
		em.edited = true
		em.state.SetSourceText(value)
	}

	return em, cmd
}

func (em editorModel) startCompile() (tea.Model, tea.Cmd) {
	if em.busy {
		em.setStatus("a compile is already running", false)
		return em, nil
	}

	ctx, cancel := context.WithCancel(em.ctx)
	em.busy = true
	em.cancel = cancel

	snapshot := em.currentState()
	compiler := em.compiler
	dialog := em.dialog

	em.setStatus("compiling…", false)

	return em, func() tea.Msg {
		defer cancel()

		state, result, err := compiler.Compile(ctx, snapshot, dialog)

		return compileDoneMsg{state: state, result: result, err: err}
	}
}

func (em editorModel) startChooseOutput() (tea.Model, tea.Cmd) {
	if em.busy {
		em.setStatus("a compile is already running", false)
		return em, nil
	}

	ctx, cancel := context.WithCancel(em.ctx)
	em.busy = true
	em.cancel = cancel

	snapshot := em.currentState()
	compiler := em.compiler
	dialog := em.dialog

	return em, func() tea.Msg {
		defer cancel()

		state, err := compiler.ChooseOutputPath(ctx, snapshot, dialog)

		return pathChosenMsg{state: state, err: err}
	}
}

// handleCompileDone applies the result of a compile. The buffer is not taken
// from the message: the user may have kept typing while it ran.
func (em editorModel) handleCompileDone(msg compileDoneMsg) editorModel {
	em = em.finishOperation()
	em.state.SetOutputPath(msg.state.OutputPath)

	if msg.err != nil {
		em.setStatus(describeCompileError(msg.err), !isCancellation(msg.err))
		return em
	}

	em.state.LastOutput = msg.state.LastOutput
	em.output.SetContent(em.state.LastOutput)
	em.output.GotoTop()
	em.setStatus(fmt.Sprintf("compiled %s (%s, exit %d, %s)",
		msg.result.Target.Output, msg.result.Stream, msg.result.ExitCode, formatDuration(msg.result.Duration)), false)

	return em
}

func (em editorModel) handlePathChosen(msg pathChosenMsg) editorModel {
	em = em.finishOperation()

	if msg.err != nil {
		if isCancellation(msg.err) {
			em.setStatus("output path unchanged", false)
		} else {
			em.setStatus(describeCompileError(msg.err), true)
		}

		return em
	}

	em.state.SetOutputPath(msg.state.OutputPath)
	em.setStatus("output path set", false)

	return em
}

func (em editorModel) finishOperation() editorModel {
	em.busy = false
	em.cancel = nil

	if em.prompting {
		em = em.closePrompt(m.Cancelled())
	}

	return em
}

func (em editorModel) openPrompt(msg openPromptMsg) (tea.Model, tea.Cmd) {
	if em.prompting {
		msg.reply <- m.Cancelled()
		return em, nil
	}

	em.prompting = true
	em.promptReply = msg.reply
	em.prompt.SetValue(string(msg.defaultPath))
	em.prompt.CursorEnd()
	em.editor.Blur()
	cmd := em.prompt.Focus()
	em = em.resize(em.width, em.height)

	return em, cmd
}

func (em editorModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, em.keys.Confirm):
		value := em.prompt.Value()
		if value == "" {
			return em.closePrompt(m.Cancelled()), textarea.Blink
		}

		return em.closePrompt(m.Chosen(m.Path(value))), textarea.Blink

	case key.Matches(msg, em.keys.Cancel):
		return em.closePrompt(m.Cancelled()), textarea.Blink

	case key.Matches(msg, em.keys.Quit):
		em = em.closePrompt(m.Cancelled())
		if em.cancel != nil {
			em.cancel()
		}

		return em, tea.Quit
	}

	var cmd tea.Cmd

	em.prompt, cmd = em.prompt.Update(msg)

	return em, cmd
}

// closePrompt answers the pending dialog request. The reply channel is
// buffered, so this never blocks even when the requester already gave up.
func (em editorModel) closePrompt(resp m.DialogResponse) editorModel {
	if em.promptReply != nil {
		em.promptReply <- resp
	}

	em.prompting = false
	em.promptReply = nil
	em.prompt.Blur()
	em.prompt.SetValue("")
	em.editor.Focus()

	return em.resize(em.width, em.height)
}

func (em editorModel) currentState() m.EditorState {
	state := em.state
	if em.edited {
		state.SetSourceText(em.editor.Value())
	}

	return state
}

func (em *editorModel) setStatus(text string, isError bool) {
	em.status = text
	em.statusError = isError
}

func (em editorModel) resize(width, height int) editorModel {
	if width <= 0 {
		width = defaultWidth
	}

	if height <= 0 {
		height = defaultHeight
	}

	em.width = width
	em.height = height
	em.help.Width = width

	// title(2) + label(1) + output border(2) + status(1) + help(1)
	chrome := 7
	if em.prompting {
		chrome++
	}

	available := height - chrome
	editorHeight := max(available*2/3, 3)
	outputHeight := max(available-editorHeight, 1)

	em.editor.SetWidth(width)
	em.editor.SetHeight(editorHeight)
	em.output.Width = max(width-4, 1)
	em.output.Height = outputHeight
	em.prompt.Width = max(width-len(em.prompt.Prompt)-4, 1)

	return em
}

func (em editorModel) View() string {
	outputPath := "(no output path)"
	if em.state.HasOutputPath() {
		outputPath = string(em.state.OutputPath)
	}

	title := titleStyle.Render("ivedit  ") +
		pathStyle.Render(truncatePath(outputPath, em.width-12))

	sections := []string{
		title,
		em.editor.View(),
		labelStyle.Render("Output:"),
		outputBoxStyle.Width(em.width - 2).Render(em.output.View()),
	}

	if em.prompting {
		sections = append(sections, statusStyle.Render(em.prompt.View()))
	}

	if em.statusError {
		sections = append(sections, errorStyle.Render(truncateToWidth(em.status, em.width-2)))
	} else {
		sections = append(sections, statusStyle.Render(truncateToWidth(em.status, em.width-2)))
	}

	var keys help.KeyMap = em.keys
	if em.prompting {
		keys = promptKeyMap{em.keys}
	}

	sections = append(sections, footerStyle.Render(em.help.View(keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func isCancellation(err error) bool {
	return errors.Is(err, m.ErrDialogCancelled) || errors.Is(err, context.Canceled)
}
