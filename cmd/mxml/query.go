package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/mxml/markup"
)

type QueryCmd struct {
	Noout bool
	ParserOptions
}

func (q *QueryCmd) Run(args []string) error {
	set := flag.NewFlagSet("query", flag.ContinueOnError)
	set.BoolVar(&q.Noout, "quiet", false, "suppress output, only report the match count")
	if err := set.Parse(args); err != nil {
		return err
	}

	doc, _, err := parseFile(set.Arg(1), q.ParserOptions)
	if err != nil {
		return err
	}

	path := set.Arg(0)
	results := markup.Compile(path).Find(doc.Root)
	if !q.Noout {
		for _, e := range results {
			fmt.Fprintln(os.Stdout, markup.WriteElement(e, 0))
		}
	}
	fmt.Fprintf(os.Stderr, "%d node(s) matching %q\n", len(results), path)
	if len(results) == 0 {
		return errFail
	}
	return nil
}
