package diag_test

import (
	"strings"
	"testing"

	"github.com/loyston500/micron/internal/diag"
	"github.com/stretchr/testify/assert"
)

func Test_Source_Position(t *testing.T) {
	src := diag.NewSource("prog.mc", "s:0 10\np:g:0\n")

	pos := src.Position(0)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 1, pos.Col)

	pos = src.Position(7) // start of second line
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 1, pos.Col)

	pos = src.Position(9) // "g" in "p:g:0"
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 3, pos.Col)
}

func Test_Source_Render(t *testing.T) {
	src := diag.NewSource("prog.mc", "s:0 x\n")
	out := src.Render(4, "unknown token")
	assert.Contains(t, out, "prog.mc:1:5: unknown token")
	assert.Contains(t, out, "s:0 x")

	lines := strings.Split(out, "\n")
	excerpt, caret := lines[1], lines[2]
	assert.Equal(t, "  1 | s:0 x", excerpt)
	col := strings.IndexByte(excerpt, 'x')
	assert.Equal(t, col, strings.IndexByte(caret, '^'), "caret must line up under the offending column")
}
