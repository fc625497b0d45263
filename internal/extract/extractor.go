// Package extract finds fenced code samples tagged for the checked language
// inside markdown documentation, recording their exact source position.
package extract

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Extractor classifies fence info strings against the configured language tag.
type Extractor struct {
	tag          string
	skipModifier string
	md           goldmark.Markdown
}

// NewExtractor creates an extractor recognizing the given fence tag and skip modifier.
func NewExtractor(tag, skipModifier string) *Extractor {
	return &Extractor{
		tag:          tag,
		skipModifier: skipModifier,
		md:           goldmark.New(),
	}
}

// ExtractFile reads a documentation file and extracts its candidate blocks.
func (e *Extractor) ExtractFile(path string) ([]CodeBlock, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return e.Extract(source, path), nil
}

// Extract walks the markdown AST collecting fenced code blocks whose info
// string names the checked language. Blocks appear in document order.
//
// Classification of the info string:
//   - bare tag            -> candidate, checked
//   - tag + skip modifier -> candidate, skipped (never compiled)
//   - anything else       -> not a candidate, not even counted
//
// Hidden-region markers inside the block are passed through verbatim; their
// balance is the directive validator's concern.
func (e *Extractor) Extract(source []byte, sourceFile string) []CodeBlock {
	root := e.md.Parser().Parse(gmtext.NewReader(source))

	var blocks []CodeBlock
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		fence, ok := n.(*gmast.FencedCodeBlock)
		if !ok || fence.Info == nil {
			return gmast.WalkContinue, nil
		}

		info := strings.TrimSpace(string(fence.Info.Segment.Value(source)))
		checked, candidate := e.classify(info)
		if !candidate {
			return gmast.WalkContinue, nil
		}

		blocks = append(blocks, CodeBlock{
			SourceFile:  sourceFile,
			StartLine:   blockStartLine(source, fence),
			LanguageTag: info,
			RawText:     blockRawText(source, fence),
			Checked:     checked,
		})
		return gmast.WalkContinue, nil
	})
	return blocks
}

// classify returns (checked, isCandidate) for a fence info string.
func (e *Extractor) classify(info string) (bool, bool) {
	fields := strings.Fields(info)
	switch {
	case len(fields) == 1 && fields[0] == e.tag:
		return true, true
	case len(fields) == 2 && fields[0] == e.tag && fields[1] == e.skipModifier:
		return false, true
	default:
		return false, false
	}
}

// blockStartLine computes the 1-based line number of the first code line.
// For an empty block there is no content segment, so the opening fence's
// info segment anchors the position instead.
func blockStartLine(source []byte, fence *gmast.FencedCodeBlock) int {
	if lines := fence.Lines(); lines.Len() > 0 {
		return lineOfOffset(source, lines.At(0).Start)
	}
	return lineOfOffset(source, fence.Info.Segment.Start) + 1
}

// blockRawText reproduces the exact bytes between the fences. Goldmark's line
// segments start after any stripped fence indentation, so each line is sliced
// from its physical start in the source instead; slicing the file at StartLine
// for the text's length then reproduces it byte-for-byte, indented or not.
func blockRawText(source []byte, fence *gmast.FencedCodeBlock) string {
	lines := fence.Lines()
	if lines.Len() == 0 {
		return ""
	}
	start := lineStartOffset(source, lines.At(0).Start)
	stop := lines.At(lines.Len() - 1).Stop
	for stop < len(source) && source[stop-1] != '\n' {
		stop++
	}
	return string(source[start:stop])
}

// lineStartOffset rewinds a byte offset to the start of its line.
func lineStartOffset(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.LastIndexByte(source[:offset], '\n') + 1
}

// lineOfOffset converts a byte offset into a 1-based line number.
func lineOfOffset(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return 1 + bytes.Count(source[:offset], []byte{'\n'})
}
