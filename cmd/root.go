// Package cmd provides the root command and CLI setup for ivedit.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mouse-blink/ivedit/internal/adapter"
	"github.com/mouse-blink/ivedit/internal/config"
	"github.com/mouse-blink/ivedit/internal/controller"
	"github.com/mouse-blink/ivedit/internal/domain"
	m "github.com/mouse-blink/ivedit/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.FSAdapter
var stateStore adapter.StateStore
var runnerAdapter adapter.CompilerRunnerAdapter
var consoleAdapter adapter.ConsoleAdapter
var workflow domain.Workflow

var cfg config.Config
var statePath m.Path
var logCloser io.Closer

func init() {
	fsAdapter = adapter.NewLocalFSAdapter()
	stateStore = adapter.NewStateStore()
	runnerAdapter = adapter.NewLocalCompilerRunnerAdapter()
	consoleAdapter = adapter.NewLocalConsoleAdapter(os.Stdout, os.Stderr)
}

var configFlag string
var outputFlag string
var compilerFlag string
var stateFlag string
var noPersistFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ivedit [file]",
		Short: "Terminal editor for .iv programs",
		Long: `ivedit is a single-document editor for .iv programs. Type the program,
press ctrl+s and the buffer is saved next to the chosen output path and
handed to the compiler:

  intuitive <save>.iv <save>

The compiler's output is shown below the editor and copied to the
terminal's matching stream when the editor exits.

The buffer, the output path and the last output are kept between runs
unless --no-persist is given.`,
		Args:               cobra.MaximumNArgs(1),
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			editArgs := domain.EditArgs{
				OutputPath: m.Path(outputFlag),
				StateFile:  statePath,
			}
			if len(args) == 1 {
				editArgs.SourceFile = m.Path(args[0])
			}

			return workflow.Edit(cmd.Context(), editArgs)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default <user config dir>/ivedit/config.toml)")
	cmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output path for the compiled program")
	cmd.PersistentFlags().StringVar(&compilerFlag, "compiler", "", "compiler executable (overrides [compiler].executable)")
	cmd.PersistentFlags().StringVar(&stateFlag, "state", "", "state file (overrides [state].file)")
	cmd.PersistentFlags().BoolVar(&noPersistFlag, "no-persist", false, "do not load or save the editor state")

	return cmd
}

// setup loads the configuration and wires the workflow. A workflow that is
// already set is kept.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if compilerFlag != "" {
		loaded.Compiler.Executable = compilerFlag
	}

	if stateFlag != "" {
		loaded.State.File = stateFlag
	}

	cfg = loaded

	statePath = ""
	if cfg.State.Persist && !noPersistFlag {
		p, err := cfg.StatePath()
		if err != nil {
			return err
		}

		statePath = m.Path(p)
	}

	if workflow != nil {
		return nil
	}

	logger, closer, err := config.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}

	logCloser = closer

	orchestrator := domain.NewOrchestrator(fsAdapter, runnerAdapter, consoleAdapter, domain.OrchestratorConfig{
		Executable: cfg.Compiler.Executable,
		Suffix:     cfg.Compiler.Suffix,
		Selection:  domain.SelectionPolicy(cfg.Compiler.Selection),
		Timeout:    cfg.CompileTimeout(),
	}, logger)

	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout), controller.WithLineNumbers(cfg.Editor.LineNumbers))

	workflow = domain.NewWorkflow(
		fsAdapter,
		stateStore,
		consoleAdapter,
		ui,
		orchestrator,
		newSaveDialog(cfg.Dialog),
		cmd.InOrStdin(),
		logger,
	)

	logger.Debug("configured", "compiler", cfg.Compiler.Executable, "selection", cfg.Compiler.Selection, "state", statePath)

	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}

	err := logCloser.Close()
	logCloser = nil

	return err
}

// newSaveDialog returns nil for the in-editor prompt.
func newSaveDialog(dc config.DialogConfig) adapter.SaveDialog {
	if dc.Kind == config.DialogZenity {
		return adapter.NewNativeSaveDialog(dc.Command)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
