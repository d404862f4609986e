package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/coldtco/internal/report"
)

// enhanceError wraps an error with context and suggestions for common mistakes.
func enhanceError(action string, err error) error {
	msg := err.Error()

	var hint string
	switch {
	case strings.Contains(msg, "unknown provider"):
		hint = "Run 'coldtco providers' to list available provider IDs, or define one under custom_providers in .coldtco.yaml"
	case strings.Contains(msg, "custom provider"):
		hint = "Check custom_providers in .coldtco.yaml: costs must be non-negative numbers"
	case strings.Contains(msg, "invalid input"):
		hint = "Volumes and durations must be whole numbers within the documented flag ranges"
	}

	if hint != "" {
		return fmt.Errorf("%s: %w\n  hint: %s", action, err, hint)
	}
	return fmt.Errorf("%s: %w", action, err)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openOutput returns the report destination: the named file, or the
// command's stdout when path is empty.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return f, nil
}

func selectReporter(format string, w io.Writer) (report.Reporter, error) {
	switch format {
	case "json":
		return &report.JSONReporter{Writer: w}, nil
	case "text":
		return &report.TextReporter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text or json)", format)
	}
}
