package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"qboard/internal/question"
	"qboard/pkg/board"
)

// answerList collects repeated --answer flags in order.
type answerList []string

func (a *answerList) String() string {
	return strings.Join(*a, ", ")
}

func (a *answerList) Set(value string) error {
	*a = append(*a, value)
	return nil
}

// runAdd builds the handler for the add command.
func runAdd(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: discover .qboard.yml)")
		service := fs.String("service", "", "Question service base URL override")
		prompt := fs.String("question", "", "Question text")
		var answers answerList
		fs.Var(&answers, "answer", "Candidate answer (repeatable)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Unexpected arguments")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		// Same emptiness rules as the form; nothing is sent when they fail.
		cleanPrompt, cleanAnswers, err := question.CleanSubmission(*prompt, answers)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid question: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := resolveConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		applyServiceOverride(&cfg, *service)

		ctx, cancel := commandContext(cfg.Service.Timeout())
		defer cancel()
		created, err := newServiceClient(cfg).CreateQuestion(ctx, board.CreateRequest{
			Prompt:  cleanPrompt,
			Answers: cleanAnswers,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Add failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Added question %s\n", created.ID)
		return ExitOK
	}
}
