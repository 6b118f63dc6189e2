package model

// EditorState is everything the editor keeps between user actions.
//
// The struct tags describe the persisted record; missing fields load as their
// zero value.
type EditorState struct {
	SourceText string `yaml:"source_text"`
	OutputPath Path   `yaml:"output_path,omitempty"`
	LastOutput string `yaml:"last_output"`
}

// SetSourceText replaces the buffer verbatim.
func (s *EditorState) SetSourceText(text string) {
	s.SourceText = text
}

// SetOutputPath records the path chosen for the compiled artifact.
func (s *EditorState) SetOutputPath(path Path) {
	s.OutputPath = path
}

// ClearOutputPath forgets the chosen output path.
func (s *EditorState) ClearOutputPath() {
	s.OutputPath = ""
}

// HasOutputPath reports whether an output path has been chosen.
func (s EditorState) HasOutputPath() bool {
	return !s.OutputPath.IsZero()
}

// HasOutput reports whether a compile attempt has produced output.
func (s EditorState) HasOutput() bool {
	return s.LastOutput != ""
}
