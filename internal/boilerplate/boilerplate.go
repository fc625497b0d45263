// Package boilerplate loads the shared prelude prepended to every checked
// snippet. The Unit is read once per run and passed explicitly to workers;
// it is immutable afterwards, so no locking is ever needed around it.
package boilerplate

import (
	"os"
	"strings"

	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
	"git.home.luguber.info/inful/doccheck/internal/extract"
)

// Unit is the memoized prelude text and its line count. LineCount is the K in
// the remapping arithmetic: any diagnostic at raw line <= K lies inside the
// prelude, not in a snippet.
type Unit struct {
	Text      string
	LineCount int
}

// Load reads the prelude file once. The text is normalized to end with a
// newline so concatenation arithmetic stays exact. An unreadable prelude is
// fatal to the run.
func Load(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dcerrors.FatalBoilerplate(path, err)
	}

	text := string(data)
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return &Unit{
		Text:      text,
		LineCount: strings.Count(text, "\n"),
	}, nil
}

// Injector builds compiler-ready synthetic units from checked blocks.
type Injector struct {
	unit      *Unit
	separator string
}

// NewInjector creates an injector. The separator is a single comment line in
// the checked language marking the prelude/snippet boundary.
func NewInjector(unit *Unit, commentToken string) *Injector {
	return &Injector{
		unit:      unit,
		separator: commentToken + " snippet below\n",
	}
}

// Build concatenates prelude, the one-line separator, and the block's raw
// text. Pure and deterministic: same unit and block always yield the same
// synthetic text.
func (i *Injector) Build(block extract.CodeBlock) string {
	return i.unit.Text + i.separator + block.RawText
}

// Unit returns the memoized prelude.
func (i *Injector) Unit() *Unit { return i.unit }
