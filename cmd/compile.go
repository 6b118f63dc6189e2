package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/ivedit/internal/domain"
	m "github.com/mouse-blink/ivedit/internal/model"
)

var compileSummaryFlag bool
var compileSaveStateFlag bool

// compileCmd represents the compile command.
var compileCmd = newCompileCmd()

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [file|-]",
		Short: "Compile without opening the editor",
		Long: `Compile a program without opening the editor.

The source is read from file, from stdin when file is "-", or taken from the
saved editor state when no argument is given. The output path comes from
--output, then the source file itself, then the saved state, then the save
dialog when [dialog].kind is "zenity".

The compiler's output is written to the matching stream. Its exit status does
not change the exit status of ivedit; failures to save or run it do.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			compileArgs := domain.CompileArgs{
				OutputPath: m.Path(outputFlag),
				StateFile:  statePath,
				SaveState:  compileSaveStateFlag,
				Summary:    compileSummaryFlag,
			}
			if len(args) == 1 {
				compileArgs.Source = m.Path(args[0])
			}

			return workflow.Compile(cmd.Context(), compileArgs)
		},
	}
	cmd.Flags().BoolVar(&compileSummaryFlag, "summary", false, "print a summary of the compile to stderr")
	cmd.Flags().BoolVar(&compileSaveStateFlag, "save-state", false, "write the buffer, output path and output back to the state file")

	return cmd
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
