package carp

import (
	"fmt"
	"strings"
	"unicode"
)

// SwitchPrefix marks a declaration or input token as a switch.
const SwitchPrefix = '-'

// Decl declares one argument. Extra is the number of value tokens a switch
// takes after its own name; positionals always take exactly one token.
type Decl struct {
	Name  string
	Desc  string
	Extra int
}

// Arg is shorthand for building a Decl.
func Arg(name, desc string, extra ...int) Decl {
	d := Decl{Name: name, Desc: desc}
	if len(extra) > 0 {
		d.Extra = extra[0]
	}
	return d
}

// Arity returns the number of input tokens the declaration consumes,
// including the switch name itself.
func (d Decl) Arity() int {
	return 1 + d.Extra
}

// IsSwitch reports whether the declaration is a switch.
func (d Decl) IsSwitch() bool {
	return isSwitch(d.Name)
}

// Spec is an immutable, validated argument table. Positionals come first,
// in declaration order, followed by switches in declaration order.
// A Spec may be shared by any number of concurrent Parse calls.
type Spec struct {
	decls        []Decl
	nPositionals int
	nSwitches    int
	switches     map[string]int // switch name -> index into decls
	longest      int            // widest name in runes, for usage alignment
}

// New validates decls and builds a Spec. The returned error is a *DeclError
// listing every duplicate or malformed declaration.
func New(decls ...Decl) (*Spec, error) {
	s := &Spec{
		decls:    make([]Decl, 0, len(decls)),
		switches: make(map[string]int),
	}

	var problems []*ParseError
	seen := make(map[string]bool, len(decls))
	for _, d := range decls {
		if err := validate(d); err != nil {
			problems = append(problems, err)
			continue
		}
		if seen[d.Name] {
			problems = append(problems,
				NewParseError(ErrorTypeDuplicateName, fmt.Sprintf("duplicate argument name %q", d.Name)).withName(d.Name))
			continue
		}
		seen[d.Name] = true
	}
	if len(problems) > 0 {
		return nil, &DeclError{Problems: problems}
	}

	for _, d := range decls {
		if !d.IsSwitch() {
			s.decls = append(s.decls, d)
			s.nPositionals++
		}
	}
	for _, d := range decls {
		if d.IsSwitch() {
			s.switches[d.Name] = len(s.decls)
			s.decls = append(s.decls, d)
			s.nSwitches++
		}
	}
	for _, d := range s.decls {
		s.longest = max(s.longest, runeLen(d.Name))
	}
	return s, nil
}

// MustNew is like New but panics if the declarations are invalid. It is
// intended for package-level tables so mistakes surface at program start.
func MustNew(decls ...Decl) *Spec {
	s, err := New(decls...)
	if err != nil {
		panic(err)
	}
	return s
}

func validate(d Decl) *ParseError {
	invalid := func(reason string) *ParseError {
		return NewParseError(ErrorTypeInvalidDeclaration,
			fmt.Sprintf("invalid argument %q: %s", d.Name, reason)).withName(d.Name)
	}
	switch {
	case d.Name == "":
		return invalid("name is empty")
	case isDigit(d.Name[0]):
		return invalid("name starts with a digit")
	case strings.IndexFunc(d.Name, unicode.IsSpace) >= 0:
		return invalid("name contains whitespace")
	case d.Extra < 0:
		return invalid("negative extra arity")
	case d.Extra > 0 && !isSwitch(d.Name):
		return invalid("positional arguments take exactly one token")
	}
	return nil
}

// NumPositionals returns the number of declared positionals.
func (s *Spec) NumPositionals() int { return s.nPositionals }

// NumSwitches returns the number of declared switches.
func (s *Spec) NumSwitches() int { return s.nSwitches }

// Len returns the total number of declarations.
func (s *Spec) Len() int { return len(s.decls) }

// Decls returns a copy of the table in partitioned order.
func (s *Spec) Decls() []Decl {
	return append([]Decl(nil), s.decls...)
}

// index returns the table position of name, or -1.
func (s *Spec) index(name string) int {
	if i, ok := s.switches[name]; ok {
		return i
	}
	for i := 0; i < s.nPositionals; i++ {
		if s.decls[i].Name == name {
			return i
		}
	}
	return -1
}

func (s *Spec) switchNames() []string {
	names := make([]string, 0, s.nSwitches)
	for _, d := range s.decls[s.nPositionals:] {
		names = append(names, d.Name)
	}
	return names
}

// isSwitch reports whether word starts with the switch prefix and is not a
// negative number.
func isSwitch(word string) bool {
	if word == "" || word[0] != SwitchPrefix {
		return false
	}
	return len(word) == 1 || !isDigit(word[1])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
