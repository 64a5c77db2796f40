package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// withTerminal forces the TTY detection result for one test.
func withTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return isTTY }
	t.Cleanup(func() { isTerminal = original })
}

// TestFormRequiresTerminal verifies the form refuses non-TTY stdout and
// points at the non-interactive commands.
func TestFormRequiresTerminal(t *testing.T) {
	withTerminal(t, false)
	var out, errOut bytes.Buffer
	code := Run([]string{"form"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "qboard add") {
		t.Fatalf("expected guidance toward non-interactive commands, got %q", errOut.String())
	}
}

// TestFormRunsProgramOnTerminal verifies a TTY reaches the Bubble Tea
// program with the form model.
func TestFormRunsProgramOnTerminal(t *testing.T) {
	withTerminal(t, true)
	originalRun := runProgram
	var started bool
	runProgram = func(model tea.Model) error {
		started = model != nil
		return nil
	}
	t.Cleanup(func() { runProgram = originalRun })

	var out, errOut bytes.Buffer
	code := Run([]string{"form", "--service", "http://questions.test:9000"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if !started {
		t.Fatalf("expected the program to start")
	}
}

// TestFormRejectsPositionalArgs verifies stray arguments are a usage error.
func TestFormRejectsPositionalArgs(t *testing.T) {
	withTerminal(t, true)
	var out, errOut bytes.Buffer
	code := Run([]string{"form", "extra"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
