package main

import (
	"errors"
	"os"

	"github.com/midbel/mxml/markup"
)

var errFail = errors.New("fail")

// ParserOptions holds the flags common to every subcommand that needs
// to parse a document: which errors to suppress and whether to treat
// the first unsuppressed one as fatal.
type ParserOptions struct {
	Strict   bool
	Suppress []string
}

func (p ParserOptions) options() markup.Options {
	var opts markup.Options
	if len(p.Suppress) > 0 {
		opts.SuppressedErrors = make(map[markup.ErrorKind]bool)
		for _, name := range p.Suppress {
			if k, ok := kindByName(name); ok {
				opts.SuppressedErrors[k] = true
			}
		}
	}
	if p.Strict {
		opts.Sink = &markup.FatalSink{Suppressed: opts.SuppressedErrors}
	}
	return opts
}

func kindByName(name string) (markup.ErrorKind, bool) {
	for k := markup.IsolatedSurrogate; k <= markup.EmptyDocument; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func parseFile(file string, popts ParserOptions) (*markup.Document, *markup.PositionMap, error) {
	r, err := openFile(file)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()
	return markup.Parse(r, popts.options())
}

func openFile(file string) (*os.File, error) {
	if file == "" || file == "-" {
		return os.Stdin, nil
	}
	return os.Open(file)
}
