package markup

// abortParse is the panic payload a fatal ErrorSink uses to unwind out
// of a parse in progress. Run (and the token handler methods it calls)
// never return an error themselves -- the abstract-token contract's
// methods don't -- so a promoted diagnostic has to escape some other
// way; panic/recover is that way, caught once at the top in ParseRunes.
type abortParse struct {
	err error
}

// Builder implements TokenHandler, consuming the abstract-token stream
// and producing a Document: an open-element stack, end-tag matching,
// duplicate-attribute detection, and the final tree.
type Builder struct {
	stack []*Element
	root  *Element

	posMap *PositionMap
	sink   ErrorSink

	sawRoot    bool
	rootClosed bool

	// attribute-in-progress state; there is no separate "attribute
	// close" token, so the builder tracks whichever attribute is
	// currently receiving DataChars until the next AttributeName,
	// StartTagClose, or EmptyElementTagClose arrives.
	attrActive   bool
	attrRejected bool
	attrName     string
	attrNamePos  int
	attrValue    []rune
	attrValueMap *TextMap
	attrValueSet bool
	attrValueAt  int
}

// NewBuilder returns a Builder that reports positions through posMap
// and diagnostics through sink.
func NewBuilder(posMap *PositionMap, sink ErrorSink) *Builder {
	return &Builder{posMap: posMap, sink: sink}
}

func (b *Builder) top() *Element {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) report(start, end int, kind ErrorKind, args ...any) {
	d := Diagnostic{Range: Range{start, end}, Kind: kind, Args: args}
	if err := b.sink.Handle(d); err != nil {
		panic(abortParse{err})
	}
}

func (b *Builder) StartTagOpen(pos int, name string) {
	b.closeAttribute()
	e := NewElement(name)
	e.StartTagOpenOffset = pos
	if top := b.top(); top != nil {
		top.appendChild(e)
	} else if !b.sawRoot {
		b.root = e
	} else {
		b.report(pos, pos+len(name)+1, ContentAfterRoot)
	}
	b.sawRoot = true
	b.stack = append(b.stack, e)
}

func (b *Builder) AttributeName(pos int, name string) {
	b.closeAttribute()
	top := b.top()
	if top == nil {
		return
	}
	if top.HasAttribute(name) {
		b.report(pos, pos+len(name), DuplicateAttribute, name)
		b.attrRejected = true
	} else if name == "xmlns" {
		b.report(pos, pos+len(name), XMLNSAttribute)
		b.attrRejected = true
	} else {
		b.attrRejected = false
	}
	b.attrActive = true
	b.attrName = name
	b.attrNamePos = pos
	b.attrValue = nil
	b.attrValueMap = nil
	b.attrValueSet = false
}

func (b *Builder) DataChar(pos, srcLen int, r rune) {
	if b.attrActive {
		if !b.attrRejected {
			if !b.attrValueSet {
				b.attrValueAt = pos
				b.attrValueSet = true
			}
			if b.attrValueMap == nil {
				b.attrValueMap = &TextMap{}
			}
			b.attrValueMap.noteExpansion(len(b.attrValue), srcLen)
			b.attrValue = append(b.attrValue, r)
		}
		return
	}
	top := b.top()
	if top == nil {
		if !b.sawRoot {
			if !isWhitespace(r) {
				b.report(pos, pos+srcLen, TextBeforeRoot)
			}
			return
		}
		b.report(pos, pos+srcLen, ContentAfterRoot)
		return
	}
	if top.TextMap == nil {
		top.TextMap = &TextMap{}
	}
	top.TextMap.noteExpansion(len(top.Text), srcLen)
	top.appendText(string(r))
}

// closeAttribute commits the attribute currently being collected, if
// any, onto the top element.
func (b *Builder) closeAttribute() {
	if !b.attrActive {
		return
	}
	top := b.top()
	if top != nil && !b.attrRejected {
		valueStart := b.attrValueAt
		if !b.attrValueSet {
			valueStart = b.attrNamePos + len(b.attrName)
		}
		top.Attributes = append(top.Attributes, Attribute{
			Name:       b.attrName,
			Value:      string(b.attrValue),
			NameRange:  Range{b.attrNamePos, b.attrNamePos + len(b.attrName)},
			ValueRange: Range{valueStart, valueStart + len(b.attrValue)},
			ValueMap:   b.attrValueMap,
		})
	}
	b.attrActive = false
	b.attrRejected = false
}

func (b *Builder) StartTagClose(pos int) {
	b.closeAttribute()
	if top := b.top(); top != nil {
		top.StartTagCloseOffset = pos + 1
	}
}

func (b *Builder) EmptyElementTagClose(pos int) {
	b.closeAttribute()
	if top := b.top(); top != nil {
		top.StartTagCloseOffset = pos + 2
		top.EndTagOpenOffset = pos
		top.EndTagCloseOffset = pos + 2
	}
	b.popOne()
}

func (b *Builder) popOne() {
	n := len(b.stack)
	if n == 0 {
		return
	}
	b.stack = b.stack[:n-1]
	if n == 1 {
		b.rootClosed = true
	}
}

func (b *Builder) EndTag(startPos, endPos int, name string) {
	b.closeAttribute()
	depth := -1
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].Name == name {
			depth = len(b.stack) - 1 - i
			break
		}
	}
	if depth < 0 {
		b.report(startPos, endPos, MismatchedEndTag, name)
		return
	}
	for depth > 0 {
		e := b.top()
		b.report(e.StartTagOpenOffset, e.StartTagCloseOffset, MissingEndTag, e.Name)
		b.popOne()
		depth--
	}
	matched := b.top()
	matched.EndTagOpenOffset = startPos
	matched.EndTagCloseOffset = endPos
	b.popOne()
}

func (b *Builder) End(pos int) {
	b.closeAttribute()
	for len(b.stack) > 0 {
		e := b.top()
		b.report(e.StartTagOpenOffset, e.StartTagCloseOffset, MissingEndTag, e.Name)
		b.popOne()
	}
	if b.root == nil {
		b.report(0, pos, EmptyDocument)
		b.root = NewElement("")
	}
}

func (b *Builder) Error(startPos, endPos int, kind ErrorKind, args ...any) {
	b.report(startPos, endPos, kind, args...)
}

// Document returns the tree built so far, with every diagnostic the
// sink recorded (when the sink is a *CollectingSink; a custom sink that
// doesn't collect diagnostics itself will see an empty Diagnostics
// field here, which is expected).
func (b *Builder) Document() *Document {
	doc := &Document{Root: b.root}
	if cs, ok := b.sink.(*CollectingSink); ok {
		doc.Diagnostics = cs.Diagnostics
	}
	return doc
}
