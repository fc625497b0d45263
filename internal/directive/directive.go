// Package directive validates hidden-region marker balance inside checked
// code blocks. Markers are legal comments in the checked language, so they
// are validated but never removed here; stripping them is a display concern
// owned by the renderer.
package directive

import (
	"fmt"
	"strings"
)

// Markers describes the hidden-region grammar for the checked language.
type Markers struct {
	Start        string // e.g. "hide-start"
	End          string // e.g. "hide-end"
	CommentToken string // single-line comment token, e.g. "//"
}

// Violation reports unbalanced markers. Line is 1-based and block-local.
type Violation struct {
	Line    int
	Message string
}

// Validator checks that hidden-region markers nest to exactly zero depth.
type Validator struct {
	markers Markers
}

// NewValidator creates a validator for the given marker grammar.
func NewValidator(markers Markers) *Validator {
	return &Validator{markers: markers}
}

// Validate walks the block's lines maintaining a depth counter: a start
// marker increments, an end marker decrements. Depth going negative or
// ending non-zero is a violation pointing at the offending marker line.
// Returns nil for balanced blocks.
func (v *Validator) Validate(rawText string) *Violation {
	depth := 0
	var openLines []int

	for i, line := range strings.Split(rawText, "\n") {
		switch v.markers.Classify(line) {
		case MarkerStart:
			depth++
			openLines = append(openLines, i+1)
		case MarkerEnd:
			depth--
			if depth < 0 {
				return &Violation{
					Line:    i + 1,
					Message: fmt.Sprintf("unexpected %q without a preceding %q", v.markers.End, v.markers.Start),
				}
			}
			openLines = openLines[:len(openLines)-1]
		}
	}

	if depth != 0 {
		// Point at the innermost start marker left unclosed.
		return &Violation{
			Line:    openLines[len(openLines)-1],
			Message: fmt.Sprintf("%q without a matching %q", v.markers.Start, v.markers.End),
		}
	}
	return nil
}

// MarkerKind classifies a single line against the marker grammar.
type MarkerKind int

const (
	MarkerNone MarkerKind = iota
	MarkerStart
	MarkerEnd
)

// Classify reports whether a line consists solely of a start or end marker,
// optionally prefixed by the single-line comment token.
func (m Markers) Classify(line string) MarkerKind {
	trimmed := strings.TrimSpace(line)
	if m.CommentToken != "" && strings.HasPrefix(trimmed, m.CommentToken) {
		trimmed = strings.TrimSpace(trimmed[len(m.CommentToken):])
	}
	switch trimmed {
	case m.Start:
		return MarkerStart
	case m.End:
		return MarkerEnd
	default:
		return MarkerNone
	}
}
