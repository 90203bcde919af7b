package carp

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Extract converts tokens into a T. Supported types are strings, bools,
// integers and floats of every width, time.Duration, types whose pointer
// implements encoding.TextUnmarshaler, arrays of those (exactly N tokens)
// and structs, whose exported fields are filled in order from exactly as
// many tokens as there are fields.
//
// Scalars need exactly one token. Numbers must consume the whole token, are
// never accepted in hexadecimal, and fail with ErrOverflow when outside the
// range of T.
func Extract[T any](tokens []string) (T, error) {
	var out T
	if err := extractInto(reflect.ValueOf(&out).Elem(), tokens); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func extractInto(v reflect.Value, tokens []string) *ParseError {
	t := v.Type()

	if t == durationType {
		tok, err := single(t, tokens)
		if err != nil {
			return err
		}
		d, perr := time.ParseDuration(tok)
		if perr != nil {
			return conversionError(t, tok, perr)
		}
		v.SetInt(int64(d))
		return nil
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		tok, err := single(t, tokens)
		if err != nil {
			return err
		}
		u := v.Addr().Interface().(encoding.TextUnmarshaler)
		if uerr := u.UnmarshalText([]byte(tok)); uerr != nil {
			return conversionError(t, tok, uerr)
		}
		return nil
	}

	switch t.Kind() {
	case reflect.String:
		tok, err := single(t, tokens)
		if err != nil {
			return err
		}
		v.SetString(tok)
	case reflect.Bool:
		tok, err := single(t, tokens)
		if err != nil {
			return err
		}
		b, perr := strconv.ParseBool(tok)
		if perr != nil {
			return conversionError(t, tok, perr)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		tok, err := number(t, tokens)
		if err != nil {
			return err
		}
		n, perr := strconv.ParseInt(tok, 10, t.Bits())
		if perr != nil {
			return numberError(t, tok, perr)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		tok, err := number(t, tokens)
		if err != nil {
			return err
		}
		n, perr := strconv.ParseUint(tok, 10, t.Bits())
		if perr != nil {
			if negative(tok) {
				return numberError(t, tok, &strconv.NumError{Func: "ParseUint", Num: tok, Err: strconv.ErrRange})
			}
			return numberError(t, tok, perr)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		tok, err := number(t, tokens)
		if err != nil {
			return err
		}
		f, perr := strconv.ParseFloat(tok, t.Bits())
		if perr != nil {
			return numberError(t, tok, perr)
		}
		v.SetFloat(f)
	case reflect.Array:
		if len(tokens) != t.Len() {
			return arityError(t, t.Len(), tokens)
		}
		for i := 0; i < t.Len(); i++ {
			if err := extractInto(v.Index(i), tokens[i:i+1]); err != nil {
				return err
			}
		}
	case reflect.Struct:
		fields := exportedFields(t)
		if len(tokens) != len(fields) {
			return arityError(t, len(fields), tokens)
		}
		for i, fi := range fields {
			if err := extractInto(v.Field(fi), tokens[i:i+1]); err != nil {
				return err
			}
		}
	default:
		return NewParseError(ErrorTypeConversion, fmt.Sprintf("unsupported value type %v", t))
	}
	return nil
}

func exportedFields(t reflect.Type) []int {
	var idx []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			idx = append(idx, i)
		}
	}
	return idx
}

func single(t reflect.Type, tokens []string) (string, *ParseError) {
	if len(tokens) != 1 {
		return "", arityError(t, 1, tokens)
	}
	return tokens[0], nil
}

// number returns the single token, rejecting hexadecimal literals and
// digit separators which some strconv routines would otherwise accept.
func number(t reflect.Type, tokens []string) (string, *ParseError) {
	tok, err := single(t, tokens)
	if err != nil {
		return "", err
	}
	if isHexLiteral(tok) {
		return "", NewParseError(ErrorTypeConversion,
			fmt.Sprintf("cannot parse %q as %v: hexadecimal literals are not accepted", tok, t)).withToken(tok, -1)
	}
	if strings.IndexByte(tok, '_') >= 0 {
		return "", NewParseError(ErrorTypeConversion,
			fmt.Sprintf("cannot parse %q as %v: digit separators are not accepted", tok, t)).withToken(tok, -1)
	}
	return tok, nil
}

// negative reports whether tok is a well-formed negative integer, which is
// out of range for every unsigned type.
func negative(tok string) bool {
	n, err := strconv.ParseInt(tok, 10, 64)
	return n < 0 || (errors.Is(err, strconv.ErrRange) && strings.HasPrefix(tok, "-"))
}

func isHexLiteral(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")
	return len(tok) >= 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X')
}

func arityError(t reflect.Type, want int, tokens []string) *ParseError {
	return NewParseError(ErrorTypeConversion,
		fmt.Sprintf("%v needs exactly %d token(s), got %d", t, want, len(tokens)))
}

func conversionError(t reflect.Type, tok string, cause error) *ParseError {
	return NewParseError(ErrorTypeConversion,
		fmt.Sprintf("cannot parse %q as %v", tok, t)).withToken(tok, -1).withCause(cause)
}

func numberError(t reflect.Type, tok string, cause error) *ParseError {
	if errors.Is(cause, strconv.ErrRange) {
		return NewParseError(ErrorTypeOverflow,
			fmt.Sprintf("%q is out of range for %v", tok, t)).withToken(tok, -1).withCause(cause)
	}
	return conversionError(t, tok, cause)
}
