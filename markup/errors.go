package markup

import "fmt"

// Range is a half-open [Start, End) span of source offsets, counted in
// code units of the original input.
type Range struct {
	Start int
	End   int
}

// ErrorKind enumerates every diagnostic the tokenizer and tree builder
// can raise. The taxonomy is closed: every recovery path in this package
// raises one of these kinds.
type ErrorKind int

const (
	IsolatedSurrogate ErrorKind = iota
	InvalidCodePoint
	UnescapedLT
	UnescapedGT
	UnescapedAmp
	RefCodePointTooBig
	ForbiddenCodePointRef
	UnknownCharName
	MissingQuote
	UnterminatedComment
	DoubleMinusInComment
	TextBeforeRoot
	ContentAfterRoot
	MissingEndTag
	MismatchedEndTag
	DuplicateAttribute
	XMLNSAttribute
	SpaceRequiredBeforeAttributeName
	EOFInStartTag
	EmptyDocument
)

var errorKindNames = map[ErrorKind]string{
	IsolatedSurrogate:                 "ISOLATED_SURROGATE",
	InvalidCodePoint:                  "INVALID_CODE_POINT",
	UnescapedLT:                       "UNESCAPED_LT",
	UnescapedGT:                       "UNESCAPED_GT",
	UnescapedAmp:                      "UNESCAPED_AMP",
	RefCodePointTooBig:                "REF_CODE_POINT_TOO_BIG",
	ForbiddenCodePointRef:             "FORBIDDEN_CODE_POINT_REF",
	UnknownCharName:                   "UNKNOWN_CHAR_NAME",
	MissingQuote:                      "MISSING_QUOTE",
	UnterminatedComment:               "UNTERMINATED_COMMENT",
	DoubleMinusInComment:              "DOUBLE_MINUS_IN_COMMENT",
	TextBeforeRoot:                    "TEXT_BEFORE_ROOT",
	ContentAfterRoot:                  "CONTENT_AFTER_ROOT",
	MissingEndTag:                     "MISSING_END_TAG",
	MismatchedEndTag:                  "MISMATCHED_END_TAG",
	DuplicateAttribute:                "DUPLICATE_ATTRIBUTE",
	XMLNSAttribute:                    "XMLNS_ATTRIBUTE",
	SpaceRequiredBeforeAttributeName:  "SPACE_REQUIRED_BEFORE_ATTRIBUTE_NAME",
	EOFInStartTag:                     "EOF_IN_START_TAG",
	EmptyDocument:                     "EMPTY_DOCUMENT",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "UNKNOWN_ERROR_KIND"
}

// messageArg formats the one string argument most diagnostics carry: the
// offending character. UNESCAPED_LT and UNESCAPED_GT are the pair the
// original Java ParseError enum had swapped; this mapping is the fixed
// one (see DESIGN.md).
func (k ErrorKind) messageArg() string {
	switch k {
	case UnescapedLT:
		return "<"
	case UnescapedGT:
		return ">"
	case UnescapedAmp:
		return "&"
	default:
		return ""
	}
}

// Diagnostic is one reported violation, with the source range it covers
// and whatever arguments give the message its specifics (an offending
// name, a code point, ...).
type Diagnostic struct {
	Range Range
	Kind  ErrorKind
	Args  []any
}

func (d Diagnostic) Error() string {
	if arg := d.Kind.messageArg(); arg != "" {
		return fmt.Sprintf("%s: unescaped %q at %d-%d", d.Kind, arg, d.Range.Start, d.Range.End)
	}
	if len(d.Args) == 0 {
		return fmt.Sprintf("%s at %d-%d", d.Kind, d.Range.Start, d.Range.End)
	}
	return fmt.Sprintf("%s: %v at %d-%d", d.Kind, d.Args, d.Range.Start, d.Range.End)
}

// ErrorSink receives every diagnostic as it is raised. The default sink
// (see Options) just appends to a slice; a sink may return a non-nil
// error from Handle to promote a diagnostic to a fatal escape, aborting
// the parse (the tree returned in that case carries no invariants).
type ErrorSink interface {
	Handle(Diagnostic) error
}

// CollectingSink is the default ErrorSink: it never aborts and records
// every diagnostic it is given, in the order received.
type CollectingSink struct {
	Diagnostics []Diagnostic
	Suppressed  map[ErrorKind]bool
}

func NewCollectingSink(suppressed map[ErrorKind]bool) *CollectingSink {
	return &CollectingSink{Suppressed: suppressed}
}

func (s *CollectingSink) Handle(d Diagnostic) error {
	if s.Suppressed != nil && s.Suppressed[d.Kind] {
		return nil
	}
	s.Diagnostics = append(s.Diagnostics, d)
	return nil
}

// FatalSink promotes the first unsuppressed diagnostic it sees to a Go
// error, matching ParseOptions' default error handler in the Java
// original (which throws on the first error).
type FatalSink struct {
	Suppressed map[ErrorKind]bool
}

func (s *FatalSink) Handle(d Diagnostic) error {
	if s.Suppressed != nil && s.Suppressed[d.Kind] {
		return nil
	}
	return d
}
