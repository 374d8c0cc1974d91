package markup

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/midbel/mxml/casing"
)

// WriterOptions controls Write's output, the same bitflag shape as the
// teacher's xml.WriterOptions, trimmed of its namespace-specific bits
// (the tree this package builds has no namespaces).
type WriterOptions uint64

const (
	OptionCompact WriterOptions = 1 << iota
	OptionCanonical
	OptionNameSnakeCase
	OptionNameKebabCase
	OptionNameLowerCase
)

func (w WriterOptions) compact() bool   { return w&OptionCompact != 0 }
func (w WriterOptions) canonical() bool { return w&OptionCanonical != 0 }

func (w WriterOptions) rewriteName(name string) string {
	switch {
	case w&OptionNameKebabCase != 0:
		return casing.To(casing.KebabCase, name)
	case w&OptionNameSnakeCase != 0:
		return casing.To(casing.SnakeCase, name)
	case w&OptionNameLowerCase != 0:
		return strings.ToLower(name)
	default:
		return name
	}
}

// Writer serializes a Document back to the minimal angle-bracket form:
// `&lt; &gt; &amp; &quot;` escapes, a single `<n/>` form for empty
// elements, and, in canonical mode, attributes sorted by name.
type Writer struct {
	w    *bufio.Writer
	opts WriterOptions
}

// NewWriter returns a Writer with the given options, writing to w.
func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	return &Writer{w: bufio.NewWriter(w), opts: opts}
}

// Write serializes doc's root element, or nothing if the document has
// no root.
func (w *Writer) Write(doc *Document) error {
	if doc == nil || doc.Root == nil {
		return nil
	}
	if err := w.writeElement(doc.Root); err != nil {
		return err
	}
	return w.w.Flush()
}

// WriteElement renders a single element (and its subtree) to a string,
// a convenience for tests and the query helper.
func WriteElement(e *Element, opts WriterOptions) string {
	var buf bytes.Buffer
	w := NewWriter(&buf, opts)
	w.writeElement(e)
	w.w.Flush()
	return buf.String()
}

func (w *Writer) writeElement(e *Element) error {
	name := w.opts.rewriteName(e.Name)
	w.w.WriteByte('<')
	w.w.WriteString(name)
	if err := w.writeAttributes(e); err != nil {
		return err
	}
	if e.Empty() {
		w.w.WriteString("/>")
		return nil
	}
	w.w.WriteByte('>')
	for i, child := range e.Children {
		w.w.WriteString(escapeText(e.TextChunk(i)))
		if err := w.writeElement(child); err != nil {
			return err
		}
	}
	w.w.WriteString(escapeText(e.TextChunk(len(e.Children))))
	w.w.WriteString("</")
	w.w.WriteString(name)
	w.w.WriteByte('>')
	return nil
}

func (w *Writer) writeAttributes(e *Element) error {
	attrs := e.Attributes
	if w.opts.canonical() {
		sorted := make([]Attribute, len(attrs))
		copy(sorted, attrs)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
		attrs = sorted
	}
	for _, a := range attrs {
		w.w.WriteByte(' ')
		w.w.WriteString(w.opts.rewriteName(a.Name))
		w.w.WriteString(`="`)
		w.w.WriteString(escapeText(a.Value))
		w.w.WriteByte('"')
	}
	return nil
}

func escapeText(str string) string {
	var buf strings.Builder
	for i := 0; i < len(str); {
		r, size := utf8.DecodeRuneInString(str[i:])
		i += size
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
