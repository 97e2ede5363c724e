package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
)

// ansi is an escape sequence applied to a span of terminal output.
type ansi string

const (
	styleHeader ansi = "\033[1;31m" // bold red
	styleCode   ansi = "\033[1;37m" // bold white
	styleText   ansi = "\033[37m"
	styleHint   ansi = "\033[36m"
	styleDim    ansi = "\033[90m"
)

var colorEnabled = true

// DisableColors turns off ANSI styling, for tests and non-tty output.
func DisableColors() { colorEnabled = false }

// EnableColors turns ANSI styling back on.
func EnableColors() { colorEnabled = true }

func (a ansi) apply(s string) string {
	if !colorEnabled {
		return s
	}
	return string(a) + s + "\033[0m"
}

// detailWidth is the wrap width for the indented detail block.
const detailWidth = 70

// Format renders the error as a multi-line terminal message: a header
// carrying the code, the wrapped detail, the cause, then hint and docs
// lines.
func (e *HueError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styleHeader.apply("ERROR "))
	if e.Code != "" {
		b.WriteString(styleCode.apply(e.Code + ": "))
	}
	b.WriteString(styleText.apply(e.Message))
	b.WriteString("\n\n")

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, detailWidth) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", styleDim.apply("Caused by: "), e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n", styleHint.apply("Hint: "), e.Suggestion)
	}
	if e.DocURL != "" {
		fmt.Fprintf(&b, "  %s%s\n", styleDim.apply("Docs: "), e.DocURL)
	}

	return b.String()
}

// FormatCompact renders the error on a single line, for log output.
func (e *HueError) FormatCompact() string {
	s := e.Message
	if e.Code != "" {
		s = e.Code + ": " + s
	}
	if e.Wrapped != nil {
		s += ": " + e.Wrapped.Error()
	}
	return s
}

// wrapText greedily wraps text into lines of at most width characters.
// Returns nil for empty input.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// PrintError writes a formatted error to stderr. HueErrors anywhere in the
// chain get the full multi-line format, anything else a bare header line.
func PrintError(err error) {
	var he *HueError
	if stderrors.As(err, &he) {
		fmt.Fprint(os.Stderr, he.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "\n%s %s\n\n", styleHeader.apply("ERROR:"), err.Error())
}
