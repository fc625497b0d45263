package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# Guide

Some prose.

` + "```mylang" + `
let x = 1
let y = x + 2
` + "```" + `

Illustrative only:

` + "```mylang nocheck" + `
pseudo code here
` + "```" + `

Other language, ignored:

` + "```python" + `
print("hi")
` + "```" + `
`

func TestExtractClassification(t *testing.T) {
	blocks := NewExtractor("mylang", "nocheck").Extract([]byte(sampleDoc), "guide.md")
	require.Len(t, blocks, 2)

	assert.True(t, blocks[0].Checked)
	assert.Equal(t, "mylang", blocks[0].LanguageTag)
	assert.Equal(t, "let x = 1\nlet y = x + 2\n", blocks[0].RawText)
	assert.Equal(t, 6, blocks[0].StartLine)

	assert.False(t, blocks[1].Checked)
	assert.Equal(t, "mylang nocheck", blocks[1].LanguageTag)
	assert.Equal(t, "pseudo code here\n", blocks[1].RawText)
}

// Slicing the source at StartLine for the raw text's length must reproduce
// the raw text byte-for-byte.
func TestStartLineSliceInvariant(t *testing.T) {
	blocks := NewExtractor("mylang", "nocheck").Extract([]byte(sampleDoc), "guide.md")
	require.NotEmpty(t, blocks)

	for _, b := range blocks {
		assert.Equal(t, b.RawText, sliceAtStartLine(sampleDoc, b))
	}
}

// sliceAtStartLine cuts len(b.RawText) bytes out of doc starting at b.StartLine.
func sliceAtStartLine(doc string, b CodeBlock) string {
	lines := strings.SplitAfter(doc, "\n")
	offset := 0
	for i := 0; i < b.StartLine-1; i++ {
		offset += len(lines[i])
	}
	return doc[offset : offset+len(b.RawText)]
}

// Fences may sit behind indentation (up to three spaces at top level, more
// inside list items). The extracted text must keep those leading bytes so the
// slice at StartLine reproduces it exactly.
func TestExtractIndentedFence(t *testing.T) {
	doc := "intro\n\n   ```mylang\n   let x = 1\n   ```\n"
	blocks := NewExtractor("mylang", "nocheck").Extract([]byte(doc), "indent.md")
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 4, b.StartLine)
	assert.Equal(t, "   let x = 1\n", b.RawText)
	assert.Equal(t, b.RawText, sliceAtStartLine(doc, b))
}

func TestExtractFenceInsideListItem(t *testing.T) {
	doc := "- step one:\n\n  ```mylang\n  let y = 2\n  let z = y\n  ```\n"
	blocks := NewExtractor("mylang", "nocheck").Extract([]byte(doc), "list.md")
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 4, b.StartLine)
	assert.Equal(t, "  let y = 2\n  let z = y\n", b.RawText)
	assert.Equal(t, b.RawText, sliceAtStartLine(doc, b))
}

func TestExtractEmptyBlock(t *testing.T) {
	doc := "intro\n\n```mylang\n```\n"
	blocks := NewExtractor("mylang", "nocheck").Extract([]byte(doc), "empty.md")
	require.Len(t, blocks, 1)
	assert.Equal(t, "", blocks[0].RawText)
	assert.Equal(t, 4, blocks[0].StartLine)
	assert.Equal(t, 0, blocks[0].LineCount())
}

func TestExtractIgnoresUnrelatedInfoStrings(t *testing.T) {
	doc := "```mylang extra words here\nbody\n```\n\n```\nanon\n```\n"
	blocks := NewExtractor("mylang", "nocheck").Extract([]byte(doc), "x.md")
	assert.Empty(t, blocks)
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, 2, CodeBlock{RawText: "a\nb\n"}.LineCount())
	assert.Equal(t, 2, CodeBlock{RawText: "a\nb"}.LineCount())
	assert.Equal(t, 1, CodeBlock{RawText: "a\n"}.LineCount())
}
