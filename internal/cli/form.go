package cli

import (
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"qboard/internal/logger"
	"qboard/internal/ui/form"
)

// runProgram is a test seam for running the Bubble Tea program.
var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// runForm builds the handler for the form command.
func runForm(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: discover .qboard.yml)")
		service := fs.String("service", "", "Question service base URL override")
		noColor := fs.Bool("no-color", false, "Disable styled output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Unexpected arguments")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "The form needs a terminal; use \"qboard add\" or \"qboard list\" in scripts.")
			return ExitUsage
		}

		cfg, err := resolveConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		applyServiceOverride(&cfg, *service)

		log, err := logger.ForConfig(cfg.Log)
		if err != nil {
			fmt.Fprintf(stderr, "Logger error: %v\n", err)
			return ExitError
		}
		defer func() { _ = log.Sync() }()

		model := form.New(newServiceClient(cfg), form.Options{
			NoColor: *noColor || cfg.UI.NoColor || colorDisabledByEnv(),
			Log:     log,
		})
		log.Info("form started", zap.String("service", cfg.Service.BaseURL))
		if err := runProgram(model); err != nil {
			fmt.Fprintf(stderr, "Form error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
