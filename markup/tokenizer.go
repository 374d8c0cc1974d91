package markup

import "github.com/midbel/mxml/environ"

// TokenHandler is the abstract-token contract: the set of methods the
// tree builder exposes and the tokenizer calls, in source order, each
// with the positions documented on the method. The tokenizer never
// retracts a call once made.
type TokenHandler interface {
	StartTagOpen(pos int, name string)
	AttributeName(pos int, name string)
	DataChar(pos, srcLen int, codePoint rune)
	StartTagClose(pos int)
	EmptyElementTagClose(pos int)
	EndTag(startPos, endPos int, name string)
	End(pos int)
	Error(startPos, endPos int, kind ErrorKind, args ...any)
}

// mode is the tokenizer's tokenization-mode state variable.
type mode int

const (
	modeMain mode = iota
	modeComment
	modeTag
	modeStartAttributeValue
	modeUnquotedAttributeValue
	modeSingleQuoteAttributeValue
	modeDoubleQuoteAttributeValue
)

// namedRefs is the table of the five recognized character-reference
// names, backed by environ.Environ -- elsewhere used for namespace-URI
// lookups, repurposed here for a much smaller, fixed vocabulary.
var namedRefs = func() environ.Environ[rune] {
	e := environ.Empty[rune]()
	e.Define("lt", '<')
	e.Define("amp", '&')
	e.Define("gt", '>')
	e.Define("quot", '"')
	e.Define("apos", '\'')
	return e
}()

// Tokenizer turns a buffered code-point sequence into a stream of
// abstract tokens delivered to a TokenHandler, recovering from
// malformed markup by re-interpreting it as literal data (give up /
// reparse as text).
//
// The whole input is held in memory as a []rune; this matches the Java
// original, whose refill path is permanently stubbed out.
type Tokenizer struct {
	src []rune
	pos int

	mode mode

	posMap  *PositionMap
	handler TokenHandler

	// inStartTag is set once StartTagOpen has been emitted for the tag
	// currently being scanned, and cleared on StartTagClose or
	// EmptyElementTagClose; it lets Run report EOF_IN_START_TAG and
	// synthesize a close if the input ends mid-tag.
	inStartTag   bool
	tagStartPos  int
	haveAttrName bool
	// afterWhitespace tracks whether whitespace was just consumed in
	// Tag mode, so the next attribute name can be checked for
	// SPACE_REQUIRED_BEFORE_ATTRIBUTE_NAME.
	afterWhitespace bool
	// attrValueStart is the offset of the character following the
	// opening quote (or the start of an unquoted value), used to report
	// MISSING_QUOTE with an accurate range if the input ends first.
	attrValueStart int
}

// NewTokenizer returns a Tokenizer over src that reports positions
// through posMap and delivers tokens to handler.
func NewTokenizer(src []rune, posMap *PositionMap, handler TokenHandler) *Tokenizer {
	return &Tokenizer{src: src, posMap: posMap, handler: handler}
}

func (t *Tokenizer) error(start, end int, kind ErrorKind, args ...any) {
	t.handler.Error(start, end, kind, args...)
}

func (t *Tokenizer) peekAt(offset int) (rune, bool) {
	i := t.pos + offset
	if i < 0 || i >= len(t.src) {
		return 0, false
	}
	return t.src[i], true
}

// Run drives the tokenizer to completion, delivering every abstract
// token (including the final End) to the handler.
func (t *Tokenizer) Run() {
	for t.pos < len(t.src) {
		switch t.mode {
		case modeMain:
			t.stepMain()
		case modeComment:
			t.stepComment()
		case modeTag:
			t.stepTag()
		case modeStartAttributeValue:
			t.stepStartAttributeValue()
		case modeUnquotedAttributeValue:
			t.stepUnquotedAttributeValue()
		case modeSingleQuoteAttributeValue:
			t.stepQuotedAttributeValue('\'')
		case modeDoubleQuoteAttributeValue:
			t.stepQuotedAttributeValue('"')
		}
	}
	switch t.mode {
	case modeSingleQuoteAttributeValue, modeDoubleQuoteAttributeValue, modeUnquotedAttributeValue, modeStartAttributeValue:
		t.error(t.attrValueStart, t.pos, MissingQuote)
	case modeComment:
		t.error(t.pos, t.pos, UnterminatedComment)
	}
	if t.inStartTag {
		t.error(t.tagStartPos, t.pos, EOFInStartTag)
		t.handler.StartTagClose(t.pos)
		t.inStartTag = false
	}
	t.handler.End(t.pos)
}

// emitDataChar reports a single output rune r, produced by sourceLen
// source code units starting at pos, and advances past them.
func (t *Tokenizer) emitDataChar(pos, sourceLen int, r rune) {
	t.handler.DataChar(pos, sourceLen, r)
	t.pos = pos + sourceLen
}

func (t *Tokenizer) stepMain() {
	pos := t.pos
	c := t.src[pos]
	switch {
	case c == '\r':
		t.normalizeNewline(pos)
	case c == '\n':
		t.posMap.NoteLineStart(pos + 1)
		t.emitDataChar(pos, 1, '\n')
	case c == '<':
		t.tryMarkup(pos)
	case c == '&':
		t.tryCharRef(pos)
	case c == '>':
		t.error(pos, pos+1, UnescapedGT)
		t.emitDataChar(pos, 1, '>')
	case isSurrogate(c):
		t.error(pos, pos+1, IsolatedSurrogate)
		t.emitDataChar(pos, 1, replacementChar)
	case isForbidden(c):
		t.error(pos, pos+1, InvalidCodePoint)
		t.emitDataChar(pos, 1, replacementChar)
	default:
		t.emitDataChar(pos, 1, c)
	}
}

// normalizeNewline collapses CR or CR/LF at pos into one '\n' DataChar
// and registers the resulting line start.
func (t *Tokenizer) normalizeNewline(pos int) {
	n, ok := t.peekAt(1)
	width := 1
	if ok && n == '\n' {
		width = 2
	}
	t.posMap.NoteLineStart(pos + width)
	t.emitDataChar(pos, width, '\n')
}

// tryMarkup is called at a '<'. It speculatively classifies what
// follows and either commits to a start-tag / end-tag / comment, or
// gives up and reparses the '<' as literal data.
func (t *Tokenizer) tryMarkup(pos int) {
	next, ok := t.peekAt(1)
	switch {
	case ok && next == '!' && t.hasPrefixAt(pos, "<!--"):
		t.pos = pos + 4
		t.mode = modeComment
	case ok && next == '/':
		t.tryEndTag(pos)
	case ok && isNameStart(next):
		t.startStartTag(pos)
	default:
		t.error(pos, pos+1, UnescapedLT)
		t.emitDataChar(pos, 1, '<')
	}
}

func (t *Tokenizer) hasPrefixAt(pos int, s string) bool {
	for i, r := range []rune(s) {
		c, ok := t.peekAt((pos - t.pos) + i)
		if !ok || c != r {
			return false
		}
	}
	return true
}

func (t *Tokenizer) tryEndTag(ltPos int) {
	namePos := ltPos + 2
	nameEnd, ok := t.scanName(namePos)
	if !ok {
		t.error(ltPos, ltPos+1, UnescapedLT)
		t.emitDataChar(ltPos, 1, '<')
		return
	}
	i := t.skipWhitespaceFrom(nameEnd)
	gt, ok := t.runeAt(i)
	if !ok || gt != '>' {
		t.error(ltPos, ltPos+1, UnescapedLT)
		t.emitDataChar(ltPos, 1, '<')
		return
	}
	name := string(t.src[namePos:nameEnd])
	t.handler.EndTag(ltPos, i+1, name)
	t.pos = i + 1
}

func (t *Tokenizer) startStartTag(ltPos int) {
	namePos := ltPos + 1
	nameEnd, _ := t.scanName(namePos)
	name := string(t.src[namePos:nameEnd])
	t.handler.StartTagOpen(ltPos, name)
	t.inStartTag = true
	t.tagStartPos = ltPos
	t.haveAttrName = false
	t.afterWhitespace = false
	t.pos = nameEnd
	t.mode = modeTag
}

// scanName scans a NameStart NameContinue* run starting at from,
// returning the end offset. The bool result is false when from does not
// satisfy NameStart; tryEndTag relies on that, the other callers check
// NameStart before calling.
func (t *Tokenizer) scanName(from int) (int, bool) {
	c, ok := t.runeAt(from)
	if !ok || !isNameStart(c) {
		return from, false
	}
	i := from + 1
	for {
		c, ok := t.runeAt(i)
		if !ok || !isNameContinue(c) {
			break
		}
		i++
	}
	return i, true
}

func (t *Tokenizer) runeAt(i int) (rune, bool) {
	if i < 0 || i >= len(t.src) {
		return 0, false
	}
	return t.src[i], true
}

func (t *Tokenizer) skipWhitespaceFrom(i int) int {
	for {
		c, ok := t.runeAt(i)
		if !ok || !isWhitespace(c) {
			return i
		}
		i++
	}
}

// tryCharRef is called at a '&' in data context (Main mode, or inside
// an attribute value). It speculatively parses a named or numeric
// reference and either emits the resolved DataChar or gives up.
func (t *Tokenizer) tryCharRef(ampPos int) {
	i := ampPos + 1
	if c, ok := t.runeAt(i); ok && c == '#' {
		t.tryNumericCharRef(ampPos)
		return
	}
	start := i
	for {
		c, ok := t.runeAt(i)
		if !ok || !isNameContinue(c) {
			break
		}
		i++
	}
	if i == start {
		t.giveUpAmp(ampPos)
		return
	}
	name := string(t.src[start:i])
	c, ok := t.runeAt(i)
	if !ok || c != ';' {
		t.giveUpAmp(ampPos)
		return
	}
	r, err := namedRefs.Resolve(name)
	if err != nil {
		t.error(ampPos, i+1, UnknownCharName, name)
		t.emitDataChar(ampPos, i+1-ampPos, replacementChar)
		return
	}
	t.emitDataChar(ampPos, i+1-ampPos, r)
}

func (t *Tokenizer) tryNumericCharRef(ampPos int) {
	i := ampPos + 2
	if c, ok := t.runeAt(i); !ok || c != 'x' && c != 'X' {
		t.giveUpAmp(ampPos)
		return
	}
	i++
	start := i
	var value int64
	for {
		c, ok := t.runeAt(i)
		if !ok {
			break
		}
		w := hexWeight(c)
		if w < 0 {
			break
		}
		value = value*16 + int64(w)
		i++
	}
	if i == start {
		t.giveUpAmp(ampPos)
		return
	}
	c, ok := t.runeAt(i)
	if !ok || c != ';' {
		t.giveUpAmp(ampPos)
		return
	}
	end := i + 1
	srcLen := end - ampPos
	switch {
	case value > 0x10FFFF:
		t.error(ampPos, end, RefCodePointTooBig)
		t.emitDataChar(ampPos, srcLen, replacementChar)
	case isForbidden(rune(value)) || isSurrogate(rune(value)):
		t.error(ampPos, end, ForbiddenCodePointRef)
		t.emitDataChar(ampPos, srcLen, replacementChar)
	default:
		t.emitDataChar(ampPos, srcLen, rune(value))
	}
}

func hexWeight(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// giveUpAmp reparses a '&' that did not begin a recognized reference as
// literal data, per the 'Missing terminating ";"' / giveUp rule.
func (t *Tokenizer) giveUpAmp(ampPos int) {
	t.error(ampPos, ampPos+1, UnescapedAmp)
	t.emitDataChar(ampPos, 1, '&')
}

// stepTag scans inside a start-tag, between the name and the close,
// looking for whitespace-separated attributes or the tag's close.
func (t *Tokenizer) stepTag() {
	pos := t.pos
	c := t.src[pos]
	switch {
	case c == '>':
		t.inStartTag = false
		t.handler.StartTagClose(pos)
		t.pos = pos + 1
		t.mode = modeMain
	case c == '/' && t.peekIs(1, '>'):
		t.inStartTag = false
		t.handler.EmptyElementTagClose(pos)
		t.pos = pos + 2
		t.mode = modeMain
	case isWhitespace(c):
		t.afterWhitespace = true
		t.pos = pos + 1
	case isNameStart(c):
		t.scanAttributeName(pos)
	default:
		// Not whitespace, not a name, not a close: the start-tag's
		// grammar is broken here. StartTagOpen was already emitted
		// (give-up inside an opened tag, in the Java original's terms),
		// so this closes the tag where it stands and reparses the
		// offending character onward as text, same as a give-up on a
		// malformed attribute.
		t.error(pos, pos+1, MissingQuote)
		t.handler.StartTagClose(pos)
		t.inStartTag = false
		t.mode = modeMain
	}
}

func (t *Tokenizer) peekIs(offset int, r rune) bool {
	c, ok := t.peekAt(offset)
	return ok && c == r
}

func (t *Tokenizer) scanAttributeName(namePos int) {
	if t.haveAttrName && !t.afterWhitespace {
		t.error(namePos, namePos, SpaceRequiredBeforeAttributeName)
	}
	end, _ := t.scanName(namePos)
	name := string(t.src[namePos:end])
	t.handler.AttributeName(namePos, name)
	t.haveAttrName = true
	t.afterWhitespace = false
	i := t.skipWhitespaceFrom(end)
	if c, ok := t.runeAt(i); ok && c == '=' {
		t.pos = i + 1
		t.mode = modeStartAttributeValue
		return
	}
	// No '=': a valueless attribute. Per the abstract-token contract
	// there is no separate attribute-close token, so simply returning
	// to Tag mode with no intervening DataChar leaves its value empty.
	t.pos = end
	t.mode = modeTag
}

func (t *Tokenizer) stepStartAttributeValue() {
	pos := t.pos
	c := t.src[pos]
	switch {
	case isWhitespace(c):
		t.pos = pos + 1
	case c == '\'':
		t.pos = pos + 1
		t.attrValueStart = t.pos
		t.mode = modeSingleQuoteAttributeValue
	case c == '"':
		t.pos = pos + 1
		t.attrValueStart = t.pos
		t.mode = modeDoubleQuoteAttributeValue
	default:
		t.attrValueStart = pos
		t.mode = modeUnquotedAttributeValue
	}
}

func (t *Tokenizer) stepUnquotedAttributeValue() {
	pos := t.pos
	c := t.src[pos]
	if isWhitespace(c) {
		t.mode = modeTag
		t.pos = pos + 1
		return
	}
	if c == '>' || (c == '/' && t.peekIs(1, '>')) {
		t.mode = modeTag
		return
	}
	t.dataCharInAttributeValue(pos, c)
}

func (t *Tokenizer) stepQuotedAttributeValue(quote rune) {
	pos := t.pos
	c := t.src[pos]
	if c == quote {
		t.pos = pos + 1
		t.afterWhitespace = false
		t.mode = modeTag
		return
	}
	t.dataCharInAttributeValue(pos, c)
}

// dataCharInAttributeValue handles one character of attribute-value
// content: references, CR/LF normalization, forbidden/surrogate
// replacement, or a plain DataChar, exactly as in Main mode -- CR/LF
// normalization applies inside quoted attribute values too.
func (t *Tokenizer) dataCharInAttributeValue(pos int, c rune) {
	switch {
	case c == '\r':
		t.normalizeNewline(pos)
	case c == '\n':
		t.posMap.NoteLineStart(pos + 1)
		t.emitDataChar(pos, 1, '\n')
	case c == '&':
		t.tryCharRef(pos)
	case c == '<':
		t.error(pos, pos+1, UnescapedLT)
		t.emitDataChar(pos, 1, '<')
	case isSurrogate(c):
		t.error(pos, pos+1, IsolatedSurrogate)
		t.emitDataChar(pos, 1, replacementChar)
	case isForbidden(c):
		t.error(pos, pos+1, InvalidCodePoint)
		t.emitDataChar(pos, 1, replacementChar)
	default:
		t.emitDataChar(pos, 1, c)
	}
}

func (t *Tokenizer) stepComment() {
	pos := t.pos
	if t.hasPrefixAt(pos, "-->") {
		t.pos = pos + 3
		t.mode = modeMain
		return
	}
	c := t.src[pos]
	if c == '\n' {
		t.posMap.NoteLineStart(pos + 1)
	} else if t.hasPrefixAt(pos, "--") {
		t.error(pos, pos+2, DoubleMinusInComment)
	}
	t.pos = pos + 1
}
