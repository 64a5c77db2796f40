package cli

import "testing"

// TestColorDisabledByEnv verifies the standard color-suppression variables
// are honored.
func TestColorDisabledByEnv(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		want  bool
	}{
		{name: "no suppression", key: "NO_COLOR", value: "", want: false},
		{name: "NO_COLOR", key: "NO_COLOR", value: "1", want: true},
		{name: "dumb terminal", key: "TERM", value: "dumb", want: true},
		{name: "CLICOLOR off", key: "CLICOLOR", value: "0", want: true},
		{name: "CLICOLOR on", key: "CLICOLOR", value: "1", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("TERM", "xterm-256color")
			t.Setenv("CLICOLOR", "")
			t.Setenv(tc.key, tc.value)
			if got := colorDisabledByEnv(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

// TestDefaultIsTerminalNilWriter verifies a nil writer is never a TTY.
func TestDefaultIsTerminalNilWriter(t *testing.T) {
	if defaultIsTerminal(nil) {
		t.Fatalf("expected nil writer to not be a terminal")
	}
}
