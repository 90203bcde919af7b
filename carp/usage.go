package carp

import (
	"bytes"
	"io"
	"strings"

	"github.com/huandu/xstrings"

	"github.com/dzonerzy/go-carp/internal/pool"
)

// DefaultColumns is the usage width used when maxCols is not positive.
const DefaultColumns = 80

const (
	usageIndent = "        "
	namePadding = 3
)

var usageBuffers = pool.NewWithReset(
	func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 1024)) },
	func(b *bytes.Buffer) { b.Reset() },
)

// Usage renders help text for the table. program may be a path; only its
// last element is shown. Descriptions are word-wrapped so that no line is
// wider than maxCols runes, unless a single word does not fit.
func (s *Spec) Usage(program string, maxCols int) string {
	buf := usageBuffers.Get()
	defer usageBuffers.Put(buf)
	s.renderUsage(buf, program, maxCols)
	return buf.String()
}

// WriteUsage writes the text produced by Usage to w.
func (s *Spec) WriteUsage(w io.Writer, program string, maxCols int) error {
	buf := usageBuffers.Get()
	defer usageBuffers.Put(buf)
	s.renderUsage(buf, program, maxCols)
	_, err := buf.WriteTo(w)
	return err
}

func (s *Spec) renderUsage(buf *bytes.Buffer, program string, maxCols int) {
	if maxCols <= 0 {
		maxCols = DefaultColumns
	}

	buf.WriteString("Usage: ")
	buf.WriteString(baseName(program))
	if s.nSwitches > 0 {
		buf.WriteString(" [options]")
	}
	for _, d := range s.decls[:s.nPositionals] {
		buf.WriteByte(' ')
		buf.WriteString(d.Name)
	}
	buf.WriteByte('\n')

	column := s.longest + namePadding
	width := max(maxCols-column-len(usageIndent)-1, 1)
	continuation := usageIndent + strings.Repeat(" ", column)

	for i, d := range s.decls {
		switch {
		case i == 0 && s.nPositionals > 0:
			buf.WriteString("\nArguments:\n")
		case i == s.nPositionals:
			buf.WriteString("\nOptions:\n")
		}

		lines := wrap(d.Desc, width)
		if len(lines) == 0 {
			lines = []string{""}
		}
		prefix := usageIndent + xstrings.LeftJustify(d.Name, column, " ")
		for _, line := range lines {
			buf.WriteString(strings.TrimRight(prefix+line, " "))
			buf.WriteByte('\n')
			prefix = continuation
		}
	}
}

// wrap splits desc into lines of at most width runes, breaking after the
// last space in each window and at every embedded newline. A word longer
// than width is split.
func wrap(desc string, width int) []string {
	var lines []string
	rest := []rune(desc)
	for len(rest) > 0 {
		n := min(len(rest), width)
		line, next := rest[:n], n

		if nl := indexRune(line, '\n'); nl >= 0 {
			line, next = line[:nl], nl+1
		} else if n < len(rest) {
			switch {
			case rest[n] == ' ' || rest[n] == '\n':
				next = n + 1
			case lastIndexRune(line, ' ') > 0:
				sp := lastIndexRune(line, ' ')
				line, next = line[:sp], sp+1
			}
		}

		lines = append(lines, strings.TrimRight(string(line), " "))
		rest = rest[next:]
	}
	return lines
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

func lastIndexRune(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}

// baseName strips any directory, with either separator, from program.
func baseName(program string) string {
	if i := strings.LastIndexAny(program, `/\`); i >= 0 {
		return program[i+1:]
	}
	return program
}

func runeLen(s string) int {
	return xstrings.Len(s)
}
