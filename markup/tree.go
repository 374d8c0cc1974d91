package markup

// Attribute is one name/value pair on an Element. Names are unique
// within an Element; the builder rejects a second attribute of the same
// name (DUPLICATE_ATTRIBUTE) before one ever reaches the tree.
type Attribute struct {
	Name  string
	Value string

	NameRange  Range
	ValueRange Range
	// ValueMap maps offsets in Value back to source offsets, covering the
	// character-reference expansions inside a quoted attribute value. Nil
	// means a direct 1:1 correspondence.
	ValueMap *TextMap
}

// NameLocation returns the (line, column) of the start of the attribute
// name, using m to resolve the offset.
func (a Attribute) NameLocation(m *PositionMap) (line, column int) {
	return m.Locate(a.NameRange.Start)
}

// ValueLocation returns the source Range covering value characters
// [start,end), resolving through the attribute's text map if present.
func (a Attribute) ValueLocation(start, end int) Range {
	if a.ValueMap == nil {
		return Range{a.ValueRange.Start + start, a.ValueRange.Start + end}
	}
	return a.ValueMap.findLocation(start, end, 0, a.ValueRange.Start)
}

// Element is a node in the parsed tree: a name, an ordered attribute
// set, and content interleaved as text chunks and child elements.
//
// Per the tree model, the interleaving is implemented as a single
// character buffer (Text) shared by every chunk, plus ChildOffset, which
// records for each child the offset in Text where it sits. For n
// children there are n+1 chunks: chunk 0 is Text[:ChildOffset[0]], chunk
// i (0<i<n) is Text[ChildOffset[i-1]:ChildOffset[i]], and chunk n is
// Text[ChildOffset[n-1]:].
type Element struct {
	Name       string
	Attributes []Attribute
	Children   []*Element
	Text       string
	ChildOffset []int

	// TextMap records how offsets into Text correspond back to source
	// offsets, covering character-reference expansion and CR/LF
	// collapsing. Skipped comments are not recorded. Nil means a direct
	// 1:1 correspondence.
	TextMap *TextMap

	Parent *Element
	Index  int

	StartTagOpenOffset  int
	StartTagCloseOffset int
	EndTagOpenOffset    int
	EndTagCloseOffset   int
}

// NewElement returns an empty element named name with a single empty
// text chunk and no children.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// StartTagLocation returns the (line, column) of the start of e's
// start tag ("<name"), using m to resolve the offset.
func (e *Element) StartTagLocation(m *PositionMap) (line, column int) {
	return m.Locate(e.StartTagOpenOffset)
}

// EndTagLocation returns the (line, column) of the start of e's end
// tag -- "</name" for an explicit end tag, or the "/>" of an
// empty-element tag -- using m to resolve the offset.
func (e *Element) EndTagLocation(m *PositionMap) (line, column int) {
	return m.Locate(e.EndTagOpenOffset)
}

// HasAttribute reports whether name is already present.
func (e *Element) HasAttribute(name string) bool {
	for _, a := range e.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// GetAttribute returns the value of the named attribute and whether it
// was present.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// appendChild appends child to e's content at the buffer's current end,
// recording the chunk boundary, and sets child's Parent/Index.
func (e *Element) appendChild(child *Element) {
	child.Parent = e
	child.Index = len(e.Children)
	e.ChildOffset = append(e.ChildOffset, len(e.Text))
	e.Children = append(e.Children, child)
}

// appendText appends s to the trailing (currently open) text chunk.
func (e *Element) appendText(s string) {
	e.Text += s
}

// TextChunk returns chunk i (0 <= i <= len(Children)).
func (e *Element) TextChunk(i int) string {
	start := 0
	if i > 0 {
		start = e.ChildOffset[i-1]
	}
	end := len(e.Text)
	if i < len(e.Children) {
		end = e.ChildOffset[i]
	}
	return e.Text[start:end]
}

// TextChunkLocation returns the source Range of chunk i's characters
// [start, end), resolved through the element's text map.
func (e *Element) TextChunkLocation(i, start, end int) Range {
	chunkStart := 0
	if i > 0 {
		chunkStart = e.ChildOffset[i-1]
	}
	var sourceOffset int
	if i == 0 {
		sourceOffset = e.StartTagCloseOffset
	} else {
		sourceOffset = e.Children[i-1].EndTagCloseOffset
	}
	if e.TextMap == nil {
		return Range{sourceOffset + start, sourceOffset + end}
	}
	return e.TextMap.findLocation(chunkStart+start, chunkStart+end, chunkStart, sourceOffset)
}

// Leaf reports whether e has no children.
func (e *Element) Leaf() bool {
	return len(e.Children) == 0
}

// Empty reports whether e has no children and no text: the condition
// under which the writer may use the <name/> form.
func (e *Element) Empty() bool {
	return len(e.Children) == 0 && e.Text == ""
}

// Root walks up to the ancestor with no parent.
func (e *Element) Root() *Element {
	for e.Parent != nil {
		e = e.Parent
	}
	return e
}

// isAncestorOf reports whether e is an ancestor of (or equal to) other,
// the check a public tree-mutating API must run before reparenting to
// avoid creating a cycle.
func (e *Element) isAncestorOf(other *Element) bool {
	for other != nil {
		if other == e {
			return true
		}
		other = other.Parent
	}
	return false
}

// Append adds child as the new last child of e, refusing to create a
// cycle. Intended for callers mutating a tree after parse return; the
// parser itself never calls this (it uses appendChild, which cannot
// introduce a cycle because the token-stream invariant already rules
// that out).
func (e *Element) Append(child *Element) bool {
	if child.isAncestorOf(e) {
		return false
	}
	e.appendChild(child)
	return true
}

// Document wraps a single root element, or none for the degenerate
// EMPTY_DOCUMENT case before the builder synthesizes one.
type Document struct {
	Root        *Element
	Diagnostics []Diagnostic
}
