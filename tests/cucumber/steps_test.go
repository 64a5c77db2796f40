package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/cucumber/godog"

	"qboard/internal/api"
	"qboard/internal/cli"
	"qboard/pkg/board/local"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	server      *httptest.Server
	store       *local.Service
	previousEnv map[string]*string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a running question service$`, state.aRunningQuestionService)
	ctx.Step(`^the question service is unreachable$`, state.theServiceIsUnreachable)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the service stores (\d+) questions$`, state.theServiceStoresQuestions)
}

// reset clears buffers and state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.previousEnv = map[string]*string{}
	s.server = nil
	s.store = nil
}

// cleanup restores the environment and stops the scenario's service.
func (s *featureState) cleanup() {
	if s.server != nil {
		s.server.Close()
	}
	for key, value := range s.previousEnv {
		if value == nil {
			_ = os.Unsetenv(key)
			continue
		}
		_ = os.Setenv(key, *value)
	}
}

// setEnv records and sets an environment variable for the scenario.
func (s *featureState) setEnv(key, value string) error {
	if _, exists := s.previousEnv[key]; !exists {
		if current, ok := os.LookupEnv(key); ok {
			saved := current
			s.previousEnv[key] = &saved
		} else {
			s.previousEnv[key] = nil
		}
	}
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}

// aRunningQuestionService starts an in-memory question service and points
// the CLI at it.
func (s *featureState) aRunningQuestionService() error {
	s.store = local.New()
	s.server = httptest.NewServer(api.NewHandler(api.Config{Store: s.store}))
	return s.setEnv("QBOARD_SERVICE_URL", s.server.URL)
}

// theServiceIsUnreachable points the CLI at a port nothing listens on.
func (s *featureState) theServiceIsUnreachable() error {
	return s.setEnv("QBOARD_SERVICE_URL", "http://127.0.0.1:1")
}

// iRunCommand executes a CLI command in process.
func (s *featureState) iRunCommand(command string) error {
	args, err := splitArgs(command)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "qboard" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

// theExitCodeIs asserts an exact exit code.
func (s *featureState) theExitCodeIs(expected int) error {
	if s.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", expected, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputContains asserts stdout contains the given text.
func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

// theErrorOutputContains asserts stderr contains the given text.
func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

// theOutputListsCommands asserts the output contains each command name.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theServiceStoresQuestions asserts how many questions the scenario's
// service holds.
func (s *featureState) theServiceStoresQuestions(expected int) error {
	if s.store == nil {
		return fmt.Errorf("no question service is running")
	}
	if s.store.Len() != expected {
		return fmt.Errorf("expected %d stored questions, got %d", expected, s.store.Len())
	}
	return nil
}

// splitArgs splits a command line, honoring single-quoted arguments so
// scenarios can pass question text containing spaces.
func splitArgs(command string) ([]string, error) {
	var args []string
	var current strings.Builder
	inQuote := false
	hasToken := false
	for _, r := range command {
		switch {
		case r == '\'':
			inQuote = !inQuote
			hasToken = true
		case r == ' ' && !inQuote:
			if hasToken {
				args = append(args, current.String())
				current.Reset()
				hasToken = false
			}
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", command)
	}
	if hasToken {
		args = append(args, current.String())
	}
	return args, nil
}
