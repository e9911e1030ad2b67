// Package output renders executed responses for the terminal and provides
// body post-processing (JSON path extraction, schema validation) for the
// CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"

	"github.com/abdul-hamid-achik/requests/packages/requests"
)

type ConsoleFormatter struct {
	writer      io.Writer
	showHeaders bool
	noColor     bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithHeaders(show bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.showHeaders = show
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatResponse writes the status line, optionally the headers, and the
// body. The status is colored by class: green 2xx, yellow 3xx, red 4xx/5xx.
func (f *ConsoleFormatter) FormatResponse(resp *requests.Response) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	statusColor := color.New(color.FgGreen).SprintFunc()
	switch {
	case resp.StatusCode >= 400:
		statusColor = color.New(color.FgRed).SprintFunc()
	case resp.StatusCode >= 300:
		statusColor = color.New(color.FgYellow).SprintFunc()
	}

	fmt.Fprintf(f.writer, "%s %s\n", bold(statusColor(resp.Status)),
		cyan(fmt.Sprintf("(%dms)", resp.Duration.Milliseconds())))

	if f.showHeaders {
		for name, value := range resp.Headers {
			fmt.Fprintf(f.writer, "%s: %s\n", cyan(name), value)
		}
	}

	if len(resp.Body) > 0 {
		fmt.Fprintf(f.writer, "\n%s\n", resp.BodyString())
	}
}

// FormatError writes an error in red.
func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("error:"), err)
}

// Extract evaluates a gjson path against a JSON response body and returns
// the matched value's string form.
func Extract(body []byte, path string) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("response body is not valid JSON")
	}
	result := gjson.GetBytes(body, path)
	if !result.Exists() {
		return "", fmt.Errorf("path %q not found in response body", path)
	}
	return result.String(), nil
}
