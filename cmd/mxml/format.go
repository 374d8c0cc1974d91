package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/midbel/mxml/markup"
)

type FormatCmd struct {
	OutFile  string
	Compact  bool
	Canon    bool
	CaseType string
	ParserOptions
}

func (f *FormatCmd) Run(args []string) error {
	set := flag.NewFlagSet("format", flag.ContinueOnError)
	set.BoolVar(&f.Compact, "compact", false, "write compact output")
	set.BoolVar(&f.Canon, "canonical", false, "sort attributes and rewrite in canonical form")
	set.StringVar(&f.CaseType, "case-type", "", "rewrite element/attribute names: snake, kebab, lower")
	set.BoolVar(&f.Strict, "strict", false, "abort on the first diagnostic instead of collecting it")
	set.StringVar(&f.OutFile, "f", "", "path of the file to write the output to (default stdout)")
	if err := set.Parse(args); err != nil {
		return err
	}

	doc, _, err := parseFile(set.Arg(0), f.ParserOptions)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if f.OutFile != "" {
		file, err := os.Create(f.OutFile)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	var opts markup.WriterOptions
	if f.Compact {
		opts |= markup.OptionCompact
	}
	if f.Canon {
		opts |= markup.OptionCanonical
	}
	switch f.CaseType {
	case "snake":
		opts |= markup.OptionNameSnakeCase
	case "kebab":
		opts |= markup.OptionNameKebabCase
	case "lower":
		opts |= markup.OptionNameLowerCase
	}

	root := doc.Root
	if f.Canon {
		root = markup.Canonicalize(root)
	}
	wr := markup.NewWriter(w, opts)
	if err := wr.Write(&markup.Document{Root: root}); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}
