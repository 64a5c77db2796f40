package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"
)

// commandContext bounds a non-interactive service call. The client carries
// its own HTTP timeout; this guards a zero-timeout config.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout+time.Second)
}

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: discover .qboard.yml)")
		service := fs.String("service", "", "Question service base URL override")
		asJSON := fs.Bool("json", false, "Print the list as JSON")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Unexpected arguments")
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
		questions, err := newServiceClient(cfg).ListQuestions(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitError
		}

		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(questions); err != nil {
				fmt.Fprintf(stderr, "Encode failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		if len(questions) == 0 {
			fmt.Fprintln(stdout, "No questions yet.")
			return ExitOK
		}
		for i, q := range questions {
			if q.ID != "" {
				fmt.Fprintf(stdout, "%d. %s [%s]\n", i+1, q.Prompt, q.ID)
			} else {
				fmt.Fprintf(stdout, "%d. %s\n", i+1, q.Prompt)
			}
			for _, answer := range q.Answers {
				fmt.Fprintf(stdout, "   - %s\n", answer)
			}
		}
		return ExitOK
	}
}
