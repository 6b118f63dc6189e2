package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditorState_SetSourceText(t *testing.T) {
	inputs := []string{
		"",
		"print 1\n",
		"  leading and trailing  \n\n",
		"tabs\tand\r\ncrlf",
		"unicode: λ → ✓",
	}

	for _, in := range inputs {
		var state EditorState
		state.SetSourceText(in)
		assert.Equal(t, in, state.SourceText)
	}
}

func TestEditorState_Transitions(t *testing.T) {
	var state EditorState
	assert.False(t, state.HasOutputPath())
	assert.False(t, state.HasOutput())

	state.SetOutputPath("/tmp/prog")
	assert.True(t, state.HasOutputPath())
	assert.Equal(t, Path("/tmp/prog"), state.OutputPath)

	state.LastOutput = "ok"
	assert.True(t, state.HasOutput())

	state.ClearOutputPath()
	assert.False(t, state.HasOutputPath())
	assert.True(t, state.HasOutput())
}

func TestDialogResponses(t *testing.T) {
	chosen := Chosen("a.iv")
	assert.Equal(t, DialogChosen, chosen.Outcome)
	assert.Equal(t, Path("a.iv"), chosen.Path)

	assert.Equal(t, DialogCancelled, Cancelled().Outcome)

	multi := MultipleChosen("a", "b")
	assert.Equal(t, DialogMultipleChosen, multi.Outcome)
	assert.Len(t, multi.Paths, 2)
	assert.True(t, multi.Path.IsZero())

	assert.Equal(t, "chosen", DialogChosen.String())
	assert.Equal(t, "cancelled", DialogCancelled.String())
	assert.Equal(t, "multiple", DialogMultipleChosen.String())
}
