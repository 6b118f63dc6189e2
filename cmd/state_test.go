package cmd

import (
	"testing"

	"github.com/mouse-blink/ivedit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateCmd(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		mockWorkflow, _ := useMockWorkflow(t)

		mockWorkflow.EXPECT().ShowState(domain.StateArgs{StateFile: "/tmp/ivedit.yaml"}).Return(nil)

		cmd, _ := newTestRootCmd("state", "show", "--state", "/tmp/ivedit.yaml")
		require.NoError(t, cmd.Execute())
	})

	t.Run("clear", func(t *testing.T) {
		mockWorkflow, _ := useMockWorkflow(t)

		mockWorkflow.EXPECT().ClearState(domain.StateArgs{StateFile: "/tmp/ivedit.yaml"}).Return(nil)

		cmd, out := newTestRootCmd("state", "clear", "--state", "/tmp/ivedit.yaml")
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "removed /tmp/ivedit.yaml\n", out.String())
	})

	t.Run("clear with persistence off", func(t *testing.T) {
		mockWorkflow, _ := useMockWorkflow(t)

		mockWorkflow.EXPECT().ClearState(domain.StateArgs{}).Return(domain.ErrStateDisabled)

		cmd, out := newTestRootCmd("state", "clear", "--no-persist")
		err := cmd.Execute()
		require.ErrorIs(t, err, domain.ErrStateDisabled)
		assert.NotContains(t, out.String(), "removed")
	})

	t.Run("unknown subcommand args", func(t *testing.T) {
		_, _ = useMockWorkflow(t)

		cmd, _ := newTestRootCmd("state", "show", "extra")
		require.Error(t, cmd.Execute())
	})
}
