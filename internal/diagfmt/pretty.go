package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"wirec/internal/diag"
	"wirec/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	markerColor  = color.New(color.FgRed, color.Bold)
)

// Pretty renders diagnostics one per block:
//
//	<path>:<line>:<col>: <SEV>[<CODE>]: <message>
//	    <source line>
//	    ^~~~
//
// followed by notes when enabled. The bag is expected to be sorted.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiag(w, d, fs, opts)
	}
}

func writeDiag(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	pos := fs.Position(d.Primary)
	path := displayPath(fs, d.Primary.File, opts.PathMode)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s[%s]: %s\n", path, pos.Line, pos.Col, sev, d.Code, d.Message)

	writeContext(w, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			npos := fs.Position(n.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				label, displayPath(fs, n.Span.File, opts.PathMode), npos.Line, npos.Col, n.Msg)
		}
	}
}

// writeContext prints the offending source line with a ^~~~ underline sized
// by display width, so wide runes stay aligned.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if sp.Empty() && sp.Start == 0 {
		return
	}
	line := fs.Line(sp.File, sp.Start)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	file := fs.Get(sp.File)
	lineStart := sp.Start
	for lineStart > 0 && file.Content[lineStart-1] != '\n' {
		lineStart--
	}
	prefix := string(file.Content[lineStart:sp.Start])

	end := sp.End
	if lineEnd := lineStart + uint32(len(line)); end > lineEnd {
		end = lineEnd
	}
	width := runewidth.StringWidth(string(file.Content[sp.Start:end]))
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = markerColor.Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", runewidth.StringWidth(prefix)), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	path := fs.Get(id).Path
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}
