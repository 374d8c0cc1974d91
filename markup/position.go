package markup

import (
	"math"
	"sort"
)

// MaxLineCol is the clamp applied to line and column numbers so that
// pathological inputs cannot overflow an int. It mirrors the clamping
// LinePosition does in the Java original.
const MaxLineCol = math.MaxInt32

// PositionMap records the offset of the first character following every
// recognized line break, in the order the tokenizer discovers them, and
// answers (line, column) queries for any earlier offset.
//
// Line numbers are 1-based; column numbers are 1-based. Lines are
// delimited by the single LF the tokenizer normalizes CR and CRLF into,
// so PositionMap never sees a bare CR.
type PositionMap struct {
	starts []int
}

// NewPositionMap returns an empty PositionMap.
func NewPositionMap() *PositionMap {
	return &PositionMap{}
}

// NoteLineStart records offset as the start of a new line. Callers must
// call this exactly once per recognized line break, with strictly
// increasing offsets.
func (m *PositionMap) NoteLineStart(offset int) {
	if offset < 0 {
		panic("markup: negative line-start offset")
	}
	if n := len(m.starts); n > 0 && m.starts[n-1] >= offset {
		panic("markup: line-start offsets must be strictly increasing")
	}
	m.starts = append(m.starts, offset)
}

// Locate returns the 1-based (line, column) of offset.
func (m *PositionMap) Locate(offset int) (line, column int) {
	if offset < 0 {
		panic("markup: negative offset")
	}
	i := sort.Search(len(m.starts), func(i int) bool {
		return m.starts[i] > offset
	})
	if i == 0 {
		return clampLineCol(1), clampLineCol(offset + 1)
	}
	lineStart := m.starts[i-1]
	return clampLineCol(i + 1), clampLineCol(offset - lineStart + 1)
}

func clampLineCol(n int) int {
	if n > MaxLineCol {
		return MaxLineCol
	}
	return n
}
