package extract

import "strings"

// CodeBlock represents one fenced code sample found in a documentation file.
// Created once per scan and never mutated afterwards.
type CodeBlock struct {
	SourceFile  string // path of the documentation file
	StartLine   int    // 1-based line of the first code line, right after the opening fence
	LanguageTag string // full info string as written on the fence
	RawText     string // verbatim text between the fences
	Checked     bool   // true only for the bare recognized tag, no modifier
}

// LineCount returns the number of lines in the block's raw text.
func (b CodeBlock) LineCount() int {
	if b.RawText == "" {
		return 0
	}
	n := strings.Count(b.RawText, "\n")
	if !strings.HasSuffix(b.RawText, "\n") {
		n++
	}
	return n
}
