package diagfmt

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"toxc/internal/diag"
	"toxc/internal/source"
)

// visualWidthUpTo computes the display column of byteCol within s,
// expanding tabs and accounting for wide runes (teacher's
// internal/diagfmt/pretty.go visualWidthUpTo).
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
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
		return f.FormatPath("auto", "")
	}
}

// Pretty renders bag.Items() (call bag.Sort() first for deterministic
// ordering) as `path:line:col: SEVERITY CODE: message`, followed by a
// source-context line with a caret underline and any attached note.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)
	noteColor := color.New(color.FgCyan)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	context := opts.Context
	if context == 0 {
		context = 2
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}

		start, _ := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		path := formatPath(f, fs, opts.PathMode)

		sevStr := d.Severity.String()
		var sevColored string
		switch d.Severity {
		case diag.SevError:
			sevColored = errorColor.Sprint(sevStr)
		case diag.SevWarning:
			sevColored = warningColor.Sprint(sevStr)
		default:
			sevColored = sevStr
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pathColor.Sprint(path), start.Line, start.Col, sevColored, codeColor.Sprint(d.Code.String()), d.Message)

		printContextLine(w, f, start.Line, start.Col, lineNumColor, underlineColor, d.Primary, context)

		if d.Note != nil {
			noteLine, _ := fs.Resolve(d.Note.Span)
			noteFile := fs.Get(d.Note.Span.File)
			notePath := formatPath(noteFile, fs, opts.PathMode)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", noteColor.Sprint("note:"), notePath, noteLine.Line, noteLine.Col, d.Note.Msg)
		}
	}
}

func printContextLine(w io.Writer, f *source.File, line, col uint32, lineNumColor, underlineColor *color.Color, span source.Span, context uint32) {
	lo := line
	if lo > context {
		lo -= context
	} else {
		lo = 1
	}
	hi := line + context

	width, err := safecast.Conv[int](len(fmt.Sprintf("%d", hi)))
	if err != nil {
		width = 4
	}

	for ln := lo; ln <= hi; ln++ {
		text := f.GetLine(ln)
		if text == "" && ln != line {
			continue
		}
		fmt.Fprintf(w, " %s | %s\n", lineNumColor.Sprintf("%*d", width, ln), text)
		if ln == line {
			pad := visualWidthUpTo(text, col, 8)
			length := int(span.End - span.Start)
			if length < 1 {
				length = 1
			}
			fmt.Fprintf(w, " %s | %s%s\n", lineNumColor.Sprintf("%*s", width, ""), spaces(pad), underlineColor.Sprint(carets(length)))
		}
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func carets(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '^'
	}
	return string(b)
}
