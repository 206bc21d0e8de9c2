// Package diag renders source positions and one-line-plus-excerpt
// diagnostics for a Micron source file loaded once into memory.
package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// Position names a byte offset in a source buffer along with its 1-based
// line and column.
type Position struct {
	Name   string
	Offset int
	Line   int
	Col    int
}

func (pos Position) String() string {
	return fmt.Sprintf("%v:%v:%v", pos.Name, pos.Line, pos.Col)
}

// Source wraps a loaded file's bytes to resolve byte offsets into
// Positions and render caret-annotated excerpts.
type Source struct {
	Name string
	Text string

	lineStarts []int // byte offset of the start of each line
}

// NewSource builds a Source, indexing line-start offsets once up front.
func NewSource(name, text string) *Source {
	src := &Source{Name: name, Text: text, lineStarts: []int{0}}
	for i, r := range text {
		if r == '\n' {
			src.lineStarts = append(src.lineStarts, i+1)
		}
	}
	return src
}

// Position resolves a byte offset into the source into line/column form.
// Offsets past the end of the text clamp to the last position.
func (src *Source) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src.Text) {
		offset = len(src.Text)
	}

	// binary search for the line containing offset
	lo, hi := 0, len(src.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if src.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	line := lo + 1
	col := offset - src.lineStarts[lo] + 1
	return Position{Name: src.Name, Offset: offset, Line: line, Col: col}
}

// lineText returns the text of the given 1-based line, without its
// trailing newline.
func (src *Source) lineText(line int) string {
	if line < 1 || line > len(src.lineStarts) {
		return ""
	}
	start := src.lineStarts[line-1]
	end := len(src.Text)
	if line < len(src.lineStarts) {
		end = src.lineStarts[line] - 1
	}
	if end < start {
		end = start
	}
	return strings.TrimRight(src.Text[start:end], "\r")
}

// Render produces a "name:line:col: message" header followed by the
// offending source line and a caret pointing at the column.
func (src *Source) Render(offset int, message string) string {
	pos := src.Position(offset)
	line := src.lineText(pos.Line)

	var b strings.Builder
	fmt.Fprintf(&b, "%v: %v\n", pos, message)
	fmt.Fprintf(&b, "  %v | %v\n", pos.Line, line)
	pad := strings.Repeat(" ", 2+len(strconv.Itoa(pos.Line))+3+pos.Col-1)
	b.WriteString(pad)
	b.WriteString("^\n")
	return b.String()
}
