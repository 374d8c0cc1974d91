package markup

import (
	"hash/fnv"
	"sort"
)

// CmpMode selects how Equal treats child order.
type CmpMode int

const (
	CmpOrdered CmpMode = iota
	CmpUnordered
)

// Canonicalize returns a copy of e with attributes sorted by name at
// every level: Canonicalize(Canonicalize(t)) must equal Canonicalize(t).
func Canonicalize(e *Element) *Element {
	if e == nil {
		return nil
	}
	c := &Element{
		Name:        e.Name,
		Text:        e.Text,
		ChildOffset: append([]int(nil), e.ChildOffset...),
	}
	c.Attributes = append([]Attribute(nil), e.Attributes...)
	sort.Slice(c.Attributes, func(i, j int) bool { return c.Attributes[i].Name < c.Attributes[j].Name })
	c.Children = make([]*Element, len(e.Children))
	for i, child := range e.Children {
		cc := Canonicalize(child)
		cc.Parent = c
		cc.Index = i
		c.Children[i] = cc
	}
	return c
}

// Equal reports whether a and b are structurally identical: same name,
// same attributes (as a set), same text chunks, and, depending on mode,
// the same child order or merely the same multiset of children.
func Equal(a, b *Element, mode CmpMode) bool {
	if a == nil || b == nil {
		return a == b
	}
	return hashElement(a, mode) == hashElement(b, mode)
}

func hashElement(e *Element, mode CmpMode) uint64 {
	h := fnv.New64a()
	writeHashString(h, e.Name)
	attrs := append([]Attribute(nil), e.Attributes...)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	for _, a := range attrs {
		writeHashString(h, a.Name)
		writeHashString(h, a.Value)
	}
	for i := 0; i <= len(e.Children); i++ {
		writeHashString(h, e.TextChunk(i))
	}
	childHashes := make([]uint64, len(e.Children))
	for i, c := range e.Children {
		childHashes[i] = hashElement(c, mode)
	}
	if mode == CmpUnordered {
		sort.Slice(childHashes, func(i, j int) bool { return childHashes[i] < childHashes[j] })
	}
	for _, ch := range childHashes {
		writeHashUint(h, ch)
	}
	return h.Sum64()
}

func writeHashString(h interface{ Write([]byte) (int, error) }, s string) {
	h.Write([]byte(s))
	h.Write([]byte{0})
}

func writeHashUint(h interface{ Write([]byte) (int, error) }, n uint64) {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(n >> (8 * i))
	}
	h.Write(b[:])
}
