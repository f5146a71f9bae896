package ui

import (
	"fmt"
	"os"
)

// Printer writes user-facing messages. Quiet suppresses informational
// output only: warnings and errors are always printed. A Printer is
// constructed once at command setup and passed explicitly into the
// workflows that need it.
type Printer struct {
	Quiet bool
}

// NewPrinter creates a Printer with the given quiet setting
func NewPrinter(quiet bool) *Printer {
	return &Printer{Quiet: quiet}
}

// Info prints an informational message unless quiet mode is enabled
func (p *Printer) Info(msg string) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(os.Stdout, InfoStyle.Render(msg))
}

// Infof prints a formatted informational message unless quiet mode is enabled
func (p *Printer) Infof(format string, args ...interface{}) {
	p.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message with a checkmark icon unless quiet mode is enabled
func (p *Printer) Success(msg string) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(os.Stdout, SuccessStyle.Render("✓ "+msg))
}

// Successf prints a formatted success message with a checkmark icon
func (p *Printer) Successf(format string, args ...interface{}) {
	p.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a warning icon. Not suppressed by quiet mode.
func (p *Printer) Warning(msg string) {
	fmt.Fprintln(os.Stdout, WarningStyle.Render("⚠ "+msg))
}

// Warningf prints a formatted warning message with a warning icon
func (p *Printer) Warningf(format string, args ...interface{}) {
	p.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message with an X icon. Not suppressed by quiet mode.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ "+msg))
}

// Errorf prints a formatted error message with an X icon
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.Error(fmt.Sprintf(format, args...))
}

// Print prints a plain message (no styling) unless quiet mode is enabled
func (p *Printer) Print(msg string) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(os.Stdout, msg)
}

// Printf prints a formatted plain message unless quiet mode is enabled
func (p *Printer) Printf(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(os.Stdout, format, args...)
}
