// Package carpio holds the terminal plumbing programs need around carp:
// output writers, colour decisions, terminal width for usage text and a
// levelled logger.
package carpio

import (
	stdio "io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DefaultWidth is returned by Width when nothing better is known.
const DefaultWidth = 80

type colorMode int

const (
	colorAuto colorMode = iota
	colorForced
	colorDisabled
)

// IOManager centralizes IO and terminal capabilities
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	mode  colorMode
	width int // fixed width override, 0 = detect
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// WithWidth fixes the width reported by Width. A non-positive value restores detection.
func (m *IOManager) WithWidth(cols int) *IOManager { m.width = max(cols, 0); return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.mode = colorForced; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.mode = colorDisabled; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.mode = colorAuto; return m }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal.
func (m *IOManager) IsTTY() bool { return isTerminal(m.out) }

// Width returns the column count to render usage text for: the fixed
// override, the terminal width of the output writer, $COLUMNS, or DefaultWidth.
func (m *IOManager) Width() int {
	if m.width > 0 {
		return m.width
	}
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// SupportsColor reports whether ANSI colours should be written to the
// output writer. NO_COLOR and FORCE_COLOR are honoured in auto mode.
func (m *IOManager) SupportsColor() bool {
	switch m.mode {
	case colorForced:
		return true
	case colorDisabled:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// Style returns a colour bound to the manager's colour decision.
func (m *IOManager) Style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if m.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Style(color.Bold).Sprint(s) }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Style(color.Faint).Sprint(s) }

func isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
