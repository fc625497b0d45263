// Package diag parses external compiler output and remaps unit-local line
// numbers back to original documentation positions.
package diag

import (
	"regexp"
	"strconv"
	"strings"
)

// Diagnostic is one parsed compiler message against a synthetic unit.
// RawLine and RawCol are unit-local, 1-based.
type Diagnostic struct {
	RawLine int
	RawCol  int
	Message string
}

// diagnosticLine matches the compiler's `path:line:col: message` grammar.
var diagnosticLine = regexp.MustCompile(`^(.+):(\d+):(\d+): (.*)$`)

// Parse extracts diagnostics from captured compiler output. Lines that do not
// match the grammar are continuation lines: they are appended to the
// preceding diagnostic's message rather than discarded. Text before the first
// diagnostic line carries no position and is dropped; callers that need it
// verbatim keep the raw output (the unknown-failure path does exactly that).
func Parse(output string) []Diagnostic {
	var diags []Diagnostic

	for _, line := range strings.Split(output, "\n") {
		m := diagnosticLine.FindStringSubmatch(line)
		if m == nil {
			if len(diags) > 0 && strings.TrimSpace(line) != "" {
				diags[len(diags)-1].Message += "\n" + line
			}
			continue
		}
		rawLine, _ := strconv.Atoi(m[2])
		rawCol, _ := strconv.Atoi(m[3])
		diags = append(diags, Diagnostic{
			RawLine: rawLine,
			RawCol:  rawCol,
			Message: m[4],
		})
	}
	return diags
}
