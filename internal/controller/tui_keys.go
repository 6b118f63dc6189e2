package controller

import "github.com/charmbracelet/bubbles/key"

type editorKeyMap struct {
	Compile      key.Binding
	ChooseOutput key.Binding
	Cancel       key.Binding
	Quit         key.Binding
	Confirm      key.Binding
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Compile: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "compile"),
		),
		ChooseOutput: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "output path"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compile, k.ChooseOutput, k.Cancel, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// promptKeyMap is shown while the save-path prompt is open.
type promptKeyMap struct {
	editorKeyMap
}

func (k promptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k promptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
