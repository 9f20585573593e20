// Package ui prints styled messages for the command line.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors.
var (
	Blue   = lipgloss.Color("#3B82F6")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Printer writes messages to stdout, warnings and errors to stderr.
type Printer struct {
	out io.Writer
	err io.Writer

	arrow   lipgloss.Style
	success lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	changed lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter creates a printer writing to out and err.
func NewPrinter(out, err io.Writer) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(err)
	return &Printer{
		out:     out,
		err:     err,
		arrow:   outR.NewStyle().Foreground(Blue),
		success: outR.NewStyle().Foreground(Green),
		added:   outR.NewStyle().Foreground(Green),
		removed: outR.NewStyle().Foreground(Red),
		changed: outR.NewStyle().Foreground(Yellow),
		warning: errR.NewStyle().Bold(true).Foreground(Yellow),
		failure: errR.NewStyle().Bold(true).Foreground(Red),
	}
}

// Info1 prints a top level step.
func (p *Printer) Info1(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.arrow.Render("::"), msg)
}

// Info2 prints a sub step.
func (p *Printer) Info2(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.arrow.Render("->"), msg)
}

// Success prints the final ok.
func (p *Printer) Success() {
	fmt.Fprintln(p.out, p.success.Render("ok!"))
}

// Added prints a line appended to the lock.
func (p *Printer) Added(line string) {
	fmt.Fprintln(p.out, p.added.Render("+ "+line))
}

// Removed prints a line dropped from the lock.
func (p *Printer) Removed(line string) {
	fmt.Fprintln(p.out, p.removed.Render("- "+line))
}

// Changed prints a dependency whose pinned value moved.
func (p *Printer) Changed(name, from, to string) {
	fmt.Fprintf(p.out, "%s: %s -> %s\n", name, from, p.changed.Render(to))
}

// Warning prints a warning to stderr.
func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.err, "%s: %s\n", p.warning.Render("Warning"), msg)
}

// Error prints an error to stderr.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.err, "%s: %s\n", p.failure.Render("Error"), err)
}
