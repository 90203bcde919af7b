package carp

import (
	"fmt"
	"reflect"
)

// Fallback is the value an accessor returns when an argument is absent.
// The zero Fallback defaults to T's zero value; Required makes absence an
// error instead.
type Fallback[T any] struct {
	value    T
	required bool
}

// Default returns a Fallback that substitutes v for an absent argument.
func Default[T any](v T) Fallback[T] {
	return Fallback[T]{value: v}
}

// Required returns the sentinel Fallback: an absent argument clears the
// result's success flag.
func Required[T any]() Fallback[T] {
	return Fallback[T]{required: true}
}

// IsRequired reports whether fb is the required sentinel.
func (fb Fallback[T]) IsRequired() bool {
	return fb.required
}

// Lookup extracts the named argument as a T.
//
// If the argument is absent, Lookup returns the fallback value and true,
// unless fb is Required, in which case it returns the zero value and false.
// If the argument is present, Lookup returns the extracted value and true,
// or the zero value and false when extraction fails; a malformed argument
// is never replaced by the fallback. Every false return clears r's success
// flag. Undeclared names behave as absent arguments.
func Lookup[T any](r *Result, name string, fb Fallback[T]) (T, bool) {
	var zero T

	s, _ := r.Slice(name)
	if !s.bound {
		if fb.required {
			r.fail(NewParseError(ErrorTypeMissingRequired,
				fmt.Sprintf("missing required argument %s", name)).withName(name))
			return zero, false
		}
		return fb.value, true
	}

	var v T
	if perr := extractInto(reflect.ValueOf(&v).Elem(), s.Tokens); perr != nil {
		perr.Name = name
		perr.Message = name + ": " + perr.Message
		r.fail(perr)
		return zero, false
	}
	return v, true
}

// Get is Lookup with a plain default value.
func Get[T any](r *Result, name string, def T) (T, bool) {
	return Lookup(r, name, Default(def))
}

// Require is Lookup with the Required sentinel.
func Require[T any](r *Result, name string) (T, bool) {
	return Lookup(r, name, Required[T]())
}

// Value is like Get but discards the success report; failures are still
// recorded on r.
func Value[T any](r *Result, name string, def T) T {
	v, _ := Get(r, name, def)
	return v
}
