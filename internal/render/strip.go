// Package render holds the display-side transform of code blocks: hidden
// regions are removed so readers only see the lines the author intended.
// It is deliberately independent from directive validation, which keeps
// markers intact for compilation; the two transforms share no state.
package render

import (
	"strings"

	"git.home.luguber.info/inful/doccheck/internal/directive"
)

// StripHidden returns the block text with marker lines and everything between
// matched start/end pairs removed. Unbalanced markers are tolerated here
// (trailing hidden regions extend to the end of the block); rejecting them is
// the validator's job, not the renderer's.
func StripHidden(rawText string, markers directive.Markers) string {
	if rawText == "" {
		return ""
	}

	var sb strings.Builder
	depth := 0
	for _, line := range strings.SplitAfter(rawText, "\n") {
		switch markers.Classify(line) {
		case directive.MarkerStart:
			depth++
		case directive.MarkerEnd:
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				sb.WriteString(line)
			}
		}
	}
	return sb.String()
}
