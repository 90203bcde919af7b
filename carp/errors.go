package carp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents error categories for declaration, matching and extraction.
type ErrorType string

const (
	ErrorTypeDuplicateName      ErrorType = "duplicate_name"
	ErrorTypeInvalidDeclaration ErrorType = "invalid_declaration"
	ErrorTypeUnrecognizedSwitch ErrorType = "unrecognized_switch"
	ErrorTypeTooManyPositionals ErrorType = "too_many_positionals"
	ErrorTypeMissingRequired    ErrorType = "missing_required"
	ErrorTypeConversion         ErrorType = "conversion"
	ErrorTypeOverflow           ErrorType = "overflow"
)

// Sentinel errors matched by errors.Is against a *ParseError of the same type.
var (
	ErrDuplicateName      = errors.New("duplicate argument name")
	ErrInvalidDeclaration = errors.New("invalid argument declaration")
	ErrUnrecognizedSwitch = errors.New("unrecognized switch")
	ErrTooManyPositionals = errors.New("too many positional arguments")
	ErrMissingRequired    = errors.New("missing required argument")
	ErrConversion         = errors.New("conversion failure")
	ErrOverflow           = errors.New("value out of range")
)

var sentinels = map[ErrorType]error{
	ErrorTypeDuplicateName:      ErrDuplicateName,
	ErrorTypeInvalidDeclaration: ErrInvalidDeclaration,
	ErrorTypeUnrecognizedSwitch: ErrUnrecognizedSwitch,
	ErrorTypeTooManyPositionals: ErrTooManyPositionals,
	ErrorTypeMissingRequired:    ErrMissingRequired,
	ErrorTypeConversion:         ErrConversion,
	ErrorTypeOverflow:           ErrOverflow,
}

// ParseError describes a single declaration, matching or extraction problem.
type ParseError struct {
	Type       ErrorType
	Message    string
	Name       string // Declared argument name, if known
	Token      string // Offending input token, if any
	Index      int    // Position of Token in the matched input, -1 if not applicable
	Suggestion string // Closest declared switch for unrecognized switches
	Cause      error
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (did you mean " + e.Suggestion + "?)"
	}
	return e.Message
}

// Unwrap returns the underlying cause, e.g. a *strconv.NumError.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for e's type. Overflow is
// also a conversion failure.
func (e *ParseError) Is(target error) bool {
	if target == sentinels[e.Type] {
		return true
	}
	return e.Type == ErrorTypeOverflow && target == ErrConversion
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
		Index:   -1,
	}
}

func (e *ParseError) withName(name string) *ParseError {
	e.Name = name
	return e
}

func (e *ParseError) withToken(token string, index int) *ParseError {
	e.Token = token
	e.Index = index
	return e
}

func (e *ParseError) withCause(cause error) *ParseError {
	e.Cause = cause
	return e
}

// DeclError collects every invalid declaration found while building a Spec.
type DeclError struct {
	Problems []*ParseError
}

func (e *DeclError) Error() string {
	if len(e.Problems) == 1 {
		return "carp: " + e.Problems[0].Error()
	}
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("carp: %d invalid declarations: %s", len(e.Problems), strings.Join(msgs, "; "))
}

func (e *DeclError) Unwrap() []error {
	errs := make([]error, len(e.Problems))
	for i, p := range e.Problems {
		errs[i] = p
	}
	return errs
}
