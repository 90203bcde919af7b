package carp

import "errors"

// Slice is the run of raw input tokens attributed to one argument. For a
// switch, Tokens excludes the switch name itself.
type Slice struct {
	Name   string
	Tokens []string
	bound  bool
}

// Present reports whether the argument appeared in the input.
func (s Slice) Present() bool {
	return s.bound
}

// Len returns the number of value tokens.
func (s Slice) Len() int {
	return len(s.Tokens)
}

// Result holds the outcome of one parse: a slice per declaration, in table
// order, and a success flag that only ever moves from true to false.
//
// Accessors record failures on the Result, so a Result must not be used by
// concurrent accessor calls.
type Result struct {
	spec     *Spec
	slices   []Slice
	ok       bool
	problems []*ParseError
}

func newResult(s *Spec) *Result {
	r := &Result{
		spec:   s,
		slices: make([]Slice, len(s.decls)),
		ok:     true,
	}
	for i, d := range s.decls {
		r.slices[i].Name = d.Name
	}
	return r
}

// bind overwrites slot i, so the last occurrence of a switch wins.
func (r *Result) bind(i int, tokens []string) {
	r.slices[i].Tokens = tokens
	r.slices[i].bound = true
}

// fail clears the success flag and records perr unless an identical
// problem was already recorded.
func (r *Result) fail(perr *ParseError) {
	r.ok = false
	for _, p := range r.problems {
		if p.Type == perr.Type && p.Name == perr.Name && p.Token == perr.Token && p.Index == perr.Index {
			return
		}
	}
	r.problems = append(r.problems, perr)
}

// OK reports whether matching and every accessor call so far succeeded.
func (r *Result) OK() bool {
	return r.ok
}

// Problems returns the recorded failures in the order they occurred.
func (r *Result) Problems() []*ParseError {
	return append([]*ParseError(nil), r.problems...)
}

// Err returns nil if OK, otherwise all recorded problems joined.
func (r *Result) Err() error {
	if r.ok {
		return nil
	}
	errs := make([]error, len(r.problems))
	for i, p := range r.problems {
		errs[i] = p
	}
	return errors.Join(errs...)
}

// Has reports whether the named argument appeared in the input.
func (r *Result) Has(name string) bool {
	s, _ := r.Slice(name)
	return s.bound
}

// Slice returns the raw slice for name. The boolean is false if name is
// not declared.
func (r *Result) Slice(name string) (Slice, bool) {
	i := r.spec.index(name)
	if i < 0 {
		return Slice{Name: name}, false
	}
	return r.slices[i], true
}

// Slices returns every slot in table order.
func (r *Result) Slices() []Slice {
	return append([]Slice(nil), r.slices...)
}

// Spec returns the table the result was matched against.
func (r *Result) Spec() *Spec {
	return r.spec
}
