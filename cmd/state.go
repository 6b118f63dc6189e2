package cmd

import (
	"fmt"

	"github.com/mouse-blink/ivedit/internal/domain"
	"github.com/spf13/cobra"
)

// stateCmd represents the state command.
var stateCmd = newStateCmd()

func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or clear the saved editor state",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newStateShowCmd(), newStateClearCmd())

	return cmd
}

func newStateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved editor state",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.ShowState(domain.StateArgs{StateFile: statePath})
		},
	}
}

func newStateClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved editor state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := workflow.ClearState(domain.StateArgs{StateFile: statePath}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", statePath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
