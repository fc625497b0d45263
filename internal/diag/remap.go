package diag

import (
	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
	"git.home.luguber.info/inful/doccheck/internal/extract"
)

// RemappedDiagnostic is a Diagnostic translated back to documentation
// coordinates: the block's source file and the original line number.
type RemappedDiagnostic struct {
	SourceFile string `json:"source_file"`
	Line       int    `json:"line"`
	Col        int    `json:"col"`
	Message    string `json:"message"`
}

// Remapper translates unit-local positions using the prelude's line count.
type Remapper struct {
	boilerplateLines int
}

// NewRemapper creates a remapper for a run whose prelude has the given line count.
func NewRemapper(boilerplateLines int) *Remapper {
	return &Remapper{boilerplateLines: boilerplateLines}
}

// Remap converts one diagnostic. With prelude line count K and the one-line
// separator, raw line K+1+j belongs to block-local line j, which is file line
// block.StartLine + j - 1.
//
// A raw line at or before K+1 resolves inside the prelude or separator: that
// means the harness's own prelude is broken, never the documentation, and is
// escalated as an infrastructure error.
func (r *Remapper) Remap(d Diagnostic, block extract.CodeBlock) (RemappedDiagnostic, error) {
	blockLocal := d.RawLine - r.boilerplateLines - 1
	if blockLocal < 1 {
		return RemappedDiagnostic{}, dcerrors.Infrastructure("compiler diagnostic resolves inside the shared boilerplate").
			WithContext("raw_line", d.RawLine).
			WithContext("message", d.Message)
	}
	return RemappedDiagnostic{
		SourceFile: block.SourceFile,
		Line:       block.StartLine + blockLocal - 1,
		Col:        d.RawCol,
		Message:    d.Message,
	}, nil
}
