package check

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter renders a finished run summary.
type Formatter interface {
	Format(w io.Writer, summary *RunSummary) error
}

// NewFormatter returns the formatter for the given format name ("text" or "json").
func NewFormatter(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter renders a human-readable console report.
type TextFormatter struct{}

// Format prints counts, one section per failing block, and a visually
// distinct infrastructure section. Infrastructure errors mean the harness is
// broken and need different remediation than snippet failures.
func (f *TextFormatter) Format(w io.Writer, summary *RunSummary) error {
	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintf(w, "Results:\n")
	fmt.Fprintf(w, "  %d block%s found\n", summary.TotalBlocksFound, pluralize(summary.TotalBlocksFound))
	fmt.Fprintf(w, "  %d skipped\n", summary.Skipped)
	fmt.Fprintf(w, "  %d checked\n", summary.Checked)
	fmt.Fprintf(w, "  %d passed\n", summary.Passed)
	fmt.Fprintf(w, "  %d failed\n", summary.Failed)

	failing := summary.FailingResults()
	if len(failing) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failing blocks:")
		for _, r := range failing {
			fmt.Fprintf(w, "\n  %s:%d [%s]\n", r.Block.SourceFile, r.Block.StartLine, r.Status)
			for _, d := range r.Diagnostics {
				msg := strings.ReplaceAll(d.Message, "\n", "\n      ")
				fmt.Fprintf(w, "    %s:%d:%d: %s\n", d.SourceFile, d.Line, d.Col, msg)
			}
			if r.Status == StatusUnknownFailure || r.Status == StatusTimeoutFailure {
				if out := strings.TrimSpace(r.RawOutput); out != "" {
					fmt.Fprintf(w, "    compiler output:\n      %s\n", strings.ReplaceAll(out, "\n", "\n      "))
				}
			}
		}
	}

	if len(summary.InfrastructureErrors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Repeat("!", 60))
		fmt.Fprintln(w, "INFRASTRUCTURE ERRORS (the harness is broken, not the docs):")
		for _, msg := range summary.InfrastructureErrors {
			fmt.Fprintf(w, "  %s\n", msg)
		}
		fmt.Fprintln(w, strings.Repeat("!", 60))
	}

	fmt.Fprintln(w, strings.Repeat("━", 60))
	if _, err := fmt.Fprintf(w, "Exit code: %d\n", summary.ExitCode()); err != nil {
		return err
	}
	return nil
}

// JSONFormatter renders the summary as machine-readable JSON.
type JSONFormatter struct{}

// Format writes the full summary, including per-block results, as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, summary *RunSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
