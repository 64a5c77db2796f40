package config

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const scaffoldTemplate = `version: 1

service:
  base_url: %q
  timeout_seconds: 10

ui:
  no_color: false

log:
  path: %q
  debug: false
`

// ScaffoldConfig builds the starter config document for qboard init. An
// empty logPath disables the diagnostic log file.
func ScaffoldConfig(baseURL, logPath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, scaffoldTemplate, baseURL, logPath)
		return err
	})
}

// renderScaffoldConfig builds the scaffold YAML via the component.
func renderScaffoldConfig(baseURL, logPath string) (string, error) {
	var builder strings.Builder
	if err := ScaffoldConfig(baseURL, logPath).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
