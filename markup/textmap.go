package markup

// TextMap records, for one element's text buffer (or one attribute's
// value), the points where the number of source code units consumed
// diverges from the number of text code units produced. In this
// implementation that happens only through character-reference
// expansion and line-ending normalization, both of which the tokenizer
// reports uniformly through dataChar's srcLen: a plain data character
// has srcLen 1; anything wider (a named or numeric reference, or a
// collapsed CR/LF pair) has srcLen > 1 for the one rune it produces.
//
// The Java original additionally distinguishes a surrogate-pair case
// (one character reference producing two UTF-16 code units) and a
// markup-skip case (a discarded comment, accounted for as zero output
// characters over N source characters). Neither applies to this
// implementation: a Go rune already holds a full code point, so no
// reference ever needs two output units, and comments never reach the
// builder at all -- the abstract-token contract has no token for them,
// so there is no hook through which a skipped comment's length could
// reach an element's text map (see DESIGN.md).
type TextMap struct {
	entries []textMapEntry
}

type textMapEntry struct {
	textIndex int
	extra     int
}

// noteExpansion records that the rune placed at offset textIndex in the
// owning buffer came from sourceLen source code units rather than one.
func (m *TextMap) noteExpansion(textIndex, sourceLen int) {
	if sourceLen == 1 {
		return
	}
	m.entries = append(m.entries, textMapEntry{textIndex: textIndex, extra: sourceLen - 1})
}

// findLocation maps the text range [startIndex, endIndex) -- both
// absolute offsets into the owning buffer -- back to a source Range,
// given that textIndex baseIndex corresponds to source offset
// sourceOffset directly (the anchor before any map entries apply).
// Ported from the Java TreeBuilder.TextMap.findLocation algorithm.
func (m *TextMap) findLocation(startIndex, endIndex, baseIndex, sourceOffset int) Range {
	startOffset := sourceOffset + (startIndex - baseIndex)
	endOffset := sourceOffset + (endIndex - baseIndex)
	if m == nil {
		return Range{startOffset, endOffset}
	}
	for _, ent := range m.entries {
		if ent.textIndex >= endIndex {
			break
		}
		if ent.textIndex < baseIndex {
			continue
		}
		endOffset += ent.extra
		if ent.textIndex < startIndex {
			startOffset += ent.extra
		}
	}
	return Range{startOffset, endOffset}
}
