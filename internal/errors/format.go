package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

// ANSI escape sequences.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiRed   = "\033[31m"
	ansiBlue  = "\033[34m"
	ansiCyan  = "\033[36m"
	ansiGray  = "\033[90m"
)

var noColor atomic.Bool

func init() {
	noColor.Store(os.Getenv("NO_COLOR") != "")
}

// SetColor turns ANSI colors in formatted errors on or off. Colors are on
// unless NO_COLOR is set.
func SetColor(on bool) {
	noColor.Store(!on)
}

func paint(seq, s string) string {
	if noColor.Load() {
		return s
	}
	return seq + s + ansiReset
}

// Format renders the error for terminal display: a header, the source
// snippet around Location, then detail, hint, cause and documentation link.
func (e *Error) Format() string {
	var b strings.Builder
	b.WriteByte('\n')
	e.writeHeader(&b)
	e.writeLocation(&b)

	for _, line := range wrapText(e.Detail, 70) {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	if e.Detail != "" {
		b.WriteByte('\n')
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(ansiCyan, "Hint: "), e.Suggestion)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(ansiGray, "Cause: "), e.Wrapped.Error())
	}
	if e.DocURL != "" {
		fmt.Fprintf(&b, "  %s%s\n", paint(ansiGray, "Learn more: "), paint(ansiBlue, e.DocURL))
	}
	return b.String()
}

func (e *Error) writeHeader(b *strings.Builder) {
	label := "ERROR: "
	if e.Code != "" {
		label = "ERROR " + e.Code + ": "
	}
	b.WriteString(paint(ansiBold+ansiRed, label))
	b.WriteString(e.Message)
	b.WriteString("\n\n")
}

// writeLocation prints the position and, when loaded, the surrounding
// lines with the failing one marked.
func (e *Error) writeLocation(b *strings.Builder) {
	loc := e.Location
	if loc == nil {
		return
	}
	fmt.Fprintf(b, "  %s\n\n", paint(ansiCyan, loc.String()))
	if len(e.Context) == 0 {
		return
	}

	bar := paint(ansiGray, " │ ")
	first := loc.Line - len(e.Context)/2
	for i, text := range e.Context {
		n := first + i
		if n != loc.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, bar, text)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", paint(ansiRed, "→ "), n, bar, text)
		if loc.Column > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", paint(ansiGray, "│ "), strings.Repeat(" ", loc.Column-1), paint(ansiRed, "^"))
		}
	}
	b.WriteByte('\n')
}

// FormatCompact returns the error on one line: location, code, message.
func (e *Error) FormatCompact() string {
	parts := make([]string, 0, 3)
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	var cause string
	if e.Wrapped != nil {
		cause = e.Wrapped.Error()
	}
	return json.Marshal(struct {
		Code       string    `json:"code,omitempty"`
		Category   Category  `json:"category"`
		Message    string    `json:"message"`
		Detail     string    `json:"detail,omitempty"`
		Location   *Location `json:"location,omitempty"`
		Suggestion string    `json:"suggestion,omitempty"`
		DocURL     string    `json:"docUrl,omitempty"`
		Cause      string    `json:"cause,omitempty"`
	}{e.Code, e.Category, e.Message, e.Detail, e.Location, e.Suggestion, e.DocURL, cause})
}

// wrapText breaks text into lines of at most width columns at word
// boundaries. A single word longer than width gets its own line.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Fprint writes err to w, formatted when it is an *Error.
func Fprint(w io.Writer, err error) {
	var e *Error
	if stderrors.As(err, &e) {
		io.WriteString(w, e.Format())
		return
	}
	fmt.Fprintf(w, "\n%s%s\n\n", paint(ansiBold+ansiRed, "ERROR: "), err.Error())
}
