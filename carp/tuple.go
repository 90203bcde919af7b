package carp

import "fmt"

// Pair is a two-token heterogeneous value, e.g. Pair[string, int] for
// "-w name 4".
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair, mostly for use as a default.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple is a three-token heterogeneous value.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple builds a Triple.
func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
