package main

import (
	"flag"
	"os"

	"github.com/midbel/mxml/internal/report"
)

type LintCmd struct {
	NoColor bool
	ParserOptions
}

func (l *LintCmd) Run(args []string) error {
	set := flag.NewFlagSet("lint", flag.ContinueOnError)
	set.BoolVar(&l.NoColor, "no-color", false, "disable colorized output")
	if err := set.Parse(args); err != nil {
		return err
	}

	file := set.Arg(0)
	doc, posMap, err := parseFile(file, l.ParserOptions)
	if err != nil {
		return err
	}

	ropts := report.Options{SourceURL: file, Color: !l.NoColor}
	if err := report.Write(os.Stdout, posMap, doc.Diagnostics, ropts); err != nil {
		return err
	}
	if len(doc.Diagnostics) > 0 {
		return errFail
	}
	return nil
}
