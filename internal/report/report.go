// Package report renders the diagnostics a parse collects into a
// human-readable listing, the one place in this repository lipgloss
// earns its keep: a handful of styled columns in a terminal report,
// rather than a full TUI.
package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/midbel/mxml/markup"
)

var (
	kindStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	posStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	srcStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	countStyle = lipgloss.NewStyle().Bold(true)
)

// Options controls how a report is rendered.
type Options struct {
	// SourceURL is prefixed to every line, e.g. a file path.
	SourceURL string
	// Color disables style codes when false, for output piped to a file
	// or a terminal lipgloss detects as not supporting color.
	Color bool
}

// Write renders every diagnostic in diags, one per line, in the form
// "source:line:col: KIND message-args", to w.
func Write(w io.Writer, posMap *markup.PositionMap, diags []markup.Diagnostic, opts Options) error {
	for _, d := range diags {
		if err := writeOne(w, posMap, d, opts); err != nil {
			return err
		}
	}
	if len(diags) > 0 {
		summary := fmt.Sprintf("%d diagnostic(s)", len(diags))
		if opts.Color {
			summary = countStyle.Render(summary)
		}
		fmt.Fprintln(w, summary)
	}
	return nil
}

func writeOne(w io.Writer, posMap *markup.PositionMap, d markup.Diagnostic, opts Options) error {
	line, col := posMap.Locate(d.Range.Start)
	source := opts.SourceURL
	if source == "" {
		source = "<input>"
	}
	pos := fmt.Sprintf("%s:%d:%d:", source, line, col)
	kind := d.Kind.String()
	msg := message(d)
	if opts.Color {
		pos = posStyle.Render(pos)
		kind = kindStyle.Render(kind)
		msg = srcStyle.Render(msg)
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", pos, kind, msg)
	return err
}

func message(d markup.Diagnostic) string {
	if len(d.Args) == 0 {
		return ""
	}
	parts := make([]string, len(d.Args))
	for i, a := range d.Args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return strings.Join(parts, " ")
}
