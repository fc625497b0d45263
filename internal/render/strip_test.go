package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/doccheck/internal/directive"
)

var markers = directive.Markers{Start: "hide-start", End: "hide-end", CommentToken: "//"}

func TestStripHiddenRemovesRegion(t *testing.T) {
	block := "// hide-start\nimport stubs\n// hide-end\nlet x = 1\n"
	assert.Equal(t, "let x = 1\n", StripHidden(block, markers))
}

func TestStripHiddenKeepsVisibleLines(t *testing.T) {
	block := "let a = 1\nlet b = 2\n"
	assert.Equal(t, block, StripHidden(block, markers))
}

func TestStripHiddenNested(t *testing.T) {
	block := "visible\n// hide-start\nouter\n// hide-start\ninner\n// hide-end\nouter\n// hide-end\ntail\n"
	assert.Equal(t, "visible\ntail\n", StripHidden(block, markers))
}

func TestStripHiddenUnbalancedTolerated(t *testing.T) {
	block := "shown\n// hide-start\nnever closed\n"
	assert.Equal(t, "shown\n", StripHidden(block, markers))
}

func TestStripHiddenEmpty(t *testing.T) {
	assert.Equal(t, "", StripHidden("", markers))
}

// The strip transform must not alter raw text that validation sees: the two
// transforms consume the same input independently.
func TestStripDoesNotMutateInput(t *testing.T) {
	block := "// hide-start\nsetup\n// hide-end\nbody\n"
	_ = StripHidden(block, markers)
	assert.Nil(t, directive.NewValidator(markers).Validate(block))
}
