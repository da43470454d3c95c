// Package ux formats user-facing output. Styling is applied only when the
// destination is a terminal; piped output is plain text.
package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	ColorTealBright = lipgloss.Color("#2CD7C7")
	ColorWarning    = lipgloss.Color("#F4D03F")
	ColorSlate      = lipgloss.Color("#2C4A54")
)

// Styles used by Printer.
var Styles = struct {
	Muted     lipgloss.Style
	Warning   lipgloss.Style
	Highlight lipgloss.Style
}{
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealBright).Bold(true),
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes lines to w, styled when Styled is true.
type Printer struct {
	w      io.Writer
	Styled bool
}

// NewPrinter returns a Printer that styles output only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, Styled: IsTerminal(w)}
}

// Progress prints a status line such as "Reading nodes from file...".
func (p *Printer) Progress(format string, args ...any) {
	p.line(Styles.Muted, fmt.Sprintf(format, args...))
}

// Result prints a successful query answer.
func (p *Printer) Result(msg string) {
	p.line(Styles.Highlight, msg)
}

// Notice prints a query outcome that is not a path.
func (p *Printer) Notice(msg string) {
	p.line(Styles.Warning, msg)
}

// Raw writes s unchanged.
func (p *Printer) Raw(s string) {
	fmt.Fprint(p.w, s)
}

func (p *Printer) line(style lipgloss.Style, msg string) {
	if p.Styled {
		msg = style.Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}
