package carp

import (
	"fmt"
	"os"

	"github.com/dzonerzy/go-carp/internal/fuzzy"
)

// suggestDistance bounds the edit distance for unrecognized-switch suggestions.
const suggestDistance = 2

// Parse matches a full argument vector against the table. argv[0] is the
// program name and is skipped.
func (s *Spec) Parse(argv []string) *Result {
	if len(argv) == 0 {
		return s.ParseArgs(nil)
	}
	return s.ParseArgs(argv[1:])
}

// ParseMain parses os.Args.
func (s *Spec) ParseMain() *Result {
	return s.Parse(os.Args)
}

// ParseArgs matches args, which must not include the program name.
//
// The scan never stops early: every unrecognized switch and every excess
// positional clears the success flag and is recorded, and the remaining
// tokens are still classified.
func (s *Spec) ParseArgs(args []string) *Result {
	r := newResult(s)

	pos := 0
	for i := 0; i < len(args); {
		word := args[i]

		if !isSwitch(word) {
			if pos < s.nPositionals {
				r.bind(pos, args[i:i+1:i+1])
				pos++
			} else {
				r.fail(NewParseError(ErrorTypeTooManyPositionals,
					fmt.Sprintf("unexpected positional argument %q", word)).withToken(word, i))
			}
			i++
			continue
		}

		ai, ok := s.switches[word]
		if !ok {
			perr := NewParseError(ErrorTypeUnrecognizedSwitch,
				fmt.Sprintf("unrecognized switch %q", word)).withToken(word, i)
			perr.Suggestion = fuzzy.Closest(word, s.switchNames(), suggestDistance)
			r.fail(perr)
			i++
			continue
		}

		// The switch consumes its whole arity, even tokens that look like
		// other switches. A short tail yields a short slice.
		end := min(i+s.decls[ai].Arity(), len(args))
		r.bind(ai, args[i+1:end:end])
		i = end
	}
	return r
}
