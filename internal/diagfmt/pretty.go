package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsxwrap/internal/diag"
	"jsxwrap/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	codeColor = color.New(color.Faint)
	markColor = color.New(color.FgGreen, color.Bold)
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order
// (callers sort the bag first) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline over the span, optional
// surrounding context lines, then notes and fix titles in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(file, fs, opts.PathMode),
		start.Line, start.Col,
		severityLabel(d.Severity, opts.Color),
		colorize(codeColor, d.Code.ID(), opts.Color),
		d.Message,
	)

	printSnippet(w, file, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nStart, _ := fs.Resolve(note.Span)
			nFile := fs.Get(note.Span.File)
			fmt.Fprintf(w, "  %s:%d:%d: note: %s\n",
				formatPath(nFile, fs, opts.PathMode), nStart.Line, nStart.Col, note.Msg)
		}
	}

	if opts.ShowFixes {
		for _, f := range d.Fixes {
			label := f.Title
			if f.ID != "" {
				label += " [" + f.ID + "]"
			}
			if f.IsPreferred {
				label += " (preferred)"
			}
			fmt.Fprintf(w, "  %s %s\n", colorize(markColor, "fix:", opts.Color), label)
		}
	}
}

// printSnippet renders the primary line with a caret underline, plus up to
// opts.Context lines of leading and trailing context.
func printSnippet(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}

	first := start.Line
	if first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	for ln := first; ln < start.Line; ln++ {
		fmt.Fprintf(w, "  %4d | %s\n", ln, file.GetLine(ln))
	}

	lineText := file.GetLine(start.Line)
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, lineText)

	// underline from start.Col; extend to end.Col on the same line, or to
	// the end of the line when the span continues past it
	underlineEnd := uint32(len(lineText)) + 1
	if end.Line == start.Line && end.Col < underlineEnd {
		underlineEnd = end.Col
	}
	if underlineEnd <= start.Col {
		underlineEnd = start.Col + 1
	}

	prefix := ""
	if int(start.Col-1) <= len(lineText) {
		prefix = lineText[:start.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	marker := "^" + strings.Repeat("~", int(underlineEnd-start.Col-1))
	fmt.Fprintf(w, "       | %s%s\n", pad, colorize(markColor, marker, opts.Color))

	for ln := start.Line + 1; ln <= start.Line+ctx; ln++ {
		text := file.GetLine(ln)
		if text == "" && ln > end.Line {
			break
		}
		fmt.Fprintf(w, "  %4d | %s\n", ln, text)
	}
}

func severityLabel(sev diag.Severity, colored bool) string {
	switch sev {
	case diag.SevError:
		return colorize(errColor, "error", colored)
	case diag.SevWarning:
		return colorize(warnColor, "warning", colored)
	default:
		return colorize(infoColor, "info", colored)
	}
}

func colorize(c *color.Color, s string, enabled bool) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", fs.BaseDir())
	}
}
