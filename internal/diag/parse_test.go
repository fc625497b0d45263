package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleDiagnostic(t *testing.T) {
	diags := Parse("/tmp/unit.mylang:7:3: type mismatch\n")
	require.Len(t, diags, 1)
	assert.Equal(t, 7, diags[0].RawLine)
	assert.Equal(t, 3, diags[0].RawCol)
	assert.Equal(t, "type mismatch", diags[0].Message)
}

func TestParseContinuationLines(t *testing.T) {
	out := "/tmp/unit.mylang:7:3: type mismatch\n" +
		"  expected Int\n" +
		"  found String\n" +
		"/tmp/unit.mylang:9:1: unknown name\n"
	diags := Parse(out)
	require.Len(t, diags, 2)
	assert.Equal(t, "type mismatch\n  expected Int\n  found String", diags[0].Message)
	assert.Equal(t, "unknown name", diags[1].Message)
}

func TestParseUnparseableOutput(t *testing.T) {
	assert.Empty(t, Parse("segmentation fault\ncore dumped\n"))
	assert.Empty(t, Parse(""))
}

func TestParsePathsWithColons(t *testing.T) {
	diags := Parse("C:/tmp/unit.mylang:12:1: syntax error\n")
	require.Len(t, diags, 1)
	assert.Equal(t, 12, diags[0].RawLine)
}

func TestParseIgnoresPreamble(t *testing.T) {
	out := "compiling...\n/tmp/u.mylang:6:2: bad\n"
	diags := Parse(out)
	require.Len(t, diags, 1)
	assert.Equal(t, "bad", diags[0].Message)
}
