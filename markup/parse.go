package markup

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Options configures a parse. The zero value is a reasonable default:
// diagnostics are collected rather than raised as fatal errors, and no
// error kind is suppressed.
type Options struct {
	// SourceURL is not read by the parse and is not attached to
	// diagnostics: this package's own Diagnostic does not carry it, callers
	// that need it can stash Options.SourceURL alongside the Document.
	SourceURL string
	// Sink receives every diagnostic. If nil, a *CollectingSink is used
	// and the resulting Document.Diagnostics is populated from it.
	Sink ErrorSink
	// SuppressedErrors silences the named kinds when Sink is nil (a
	// caller supplying its own Sink is responsible for its own
	// suppression).
	SuppressedErrors map[ErrorKind]bool
}

// ParseRunes runs the tokenizer and tree builder over src directly,
// the core entry point byte-stream decoding is deliberately kept out
// of. Parse wraps this for the common io.Reader case.
func ParseRunes(src []rune, opts Options) (doc *Document, posMap *PositionMap, err error) {
	sink := opts.Sink
	if sink == nil {
		sink = NewCollectingSink(opts.SuppressedErrors)
	}
	posMap = NewPositionMap()
	builder := NewBuilder(posMap, sink)

	defer func() {
		if r := recover(); r != nil {
			ap, ok := r.(abortParse)
			if !ok {
				panic(r)
			}
			err = ap.err
			doc = builder.Document()
		}
	}()

	tok := NewTokenizer(src, posMap, builder)
	tok.Run()
	return builder.Document(), posMap, nil
}

// Parse decodes r as UTF-8 (consuming a leading byte-order mark, if
// present, silently) and parses the result.
func Parse(r io.Reader, opts Options) (*Document, *PositionMap, error) {
	src, err := decodeRunes(r)
	if err != nil {
		return nil, nil, err
	}
	return ParseRunes(src, opts)
}

// ParseString is a convenience for parsing a string already in memory.
func ParseString(s string, opts Options) (*Document, *PositionMap, error) {
	return ParseRunes([]rune(s), opts)
}

func decodeRunes(r io.Reader) ([]rune, error) {
	br := bufio.NewReader(r)
	bom, err := br.Peek(3)
	if err == nil && len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}
	data, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	runes := make([]rune, 0, len(data))
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			runes = append(runes, replacementChar)
			i++
			continue
		}
		runes = append(runes, r)
		i += size
	}
	return runes, nil
}
