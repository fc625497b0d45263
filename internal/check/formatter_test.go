package check

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doccheck/internal/diag"
	"git.home.luguber.info/inful/doccheck/internal/extract"
)

func sampleSummary() *RunSummary {
	var s RunSummary
	s.RunID = "test-run"
	s.Add(BlockResult{
		Block:  extract.CodeBlock{SourceFile: "docs/ok.md", StartLine: 5, Checked: true},
		Status: StatusPassed,
	})
	s.Add(BlockResult{
		Block:  extract.CodeBlock{SourceFile: "docs/bad.md", StartLine: 12, Checked: true},
		Status: StatusCompileFailure,
		Diagnostics: []diag.RemappedDiagnostic{
			{SourceFile: "docs/bad.md", Line: 13, Col: 4, Message: "type mismatch"},
		},
	})
	return &s
}

func TestTextFormatterCountsAndFailures(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&buf, sampleSummary()))

	out := buf.String()
	assert.Contains(t, out, "2 blocks found")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "docs/bad.md:12 [compile_failure]")
	assert.Contains(t, out, "docs/bad.md:13:4: type mismatch")
	assert.NotContains(t, out, "INFRASTRUCTURE")
}

func TestTextFormatterInfrastructureSection(t *testing.T) {
	s := sampleSummary()
	s.AddInfrastructureError("compiler diagnostic resolves inside the shared boilerplate")

	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&buf, s))
	assert.Contains(t, buf.String(), "INFRASTRUCTURE ERRORS")
	assert.Contains(t, buf.String(), "Exit code: 1")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter("json").Format(&buf, sampleSummary()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(2), decoded["total_blocks_found"])
	assert.Equal(t, "test-run", decoded["run_id"])
}

func TestUnknownFailureOutputShownVerbatim(t *testing.T) {
	var s RunSummary
	s.Add(BlockResult{
		Block:     extract.CodeBlock{SourceFile: "docs/bad.md", StartLine: 3, Checked: true},
		Status:    StatusUnknownFailure,
		RawOutput: "linker exploded\nno diagnostics\n",
	})

	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&buf, &s))
	assert.Contains(t, buf.String(), "linker exploded")
	assert.Contains(t, buf.String(), "no diagnostics")
}
