//nolint:testpackage // using package name 'carp' to access unexported fields for testing
package carp

import (
	"errors"
	"math"
	"net/netip"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func one(tok string) []string { return []string{tok} }

func TestExtractOverflow(t *testing.T) {
	if _, err := Extract[int8](one("300")); !errors.Is(err, ErrOverflow) {
		t.Errorf("int8 300: expected ErrOverflow, got %v", err)
	}
	v, err := Extract[int32](one("300"))
	if err != nil || v != 300 {
		t.Errorf("int32 300 = %d, %v", v, err)
	}
}

func TestExtractOverflowIsConversion(t *testing.T) {
	_, err := Extract[uint8](one("256"))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Type != ErrorTypeOverflow {
		t.Fatalf("expected overflow *ParseError, got %v", err)
	}
	if !errors.Is(err, ErrConversion) {
		t.Error("overflow should also match ErrConversion")
	}
	var nerr *strconv.NumError
	if !errors.As(err, &nerr) || nerr.Num != "256" {
		t.Errorf("expected *strconv.NumError cause, got %v", perr.Cause)
	}
}

func TestExtractIntegerBounds(t *testing.T) {
	tests := []struct {
		name    string
		extract func(string) error
		ok      []string
		bad     []string
	}{
		{
			name:    "int8",
			extract: func(s string) error { _, err := Extract[int8](one(s)); return err },
			ok:      []string{"-128", "127", "0", "+5"},
			bad:     []string{"-129", "128"},
		},
		{
			name:    "uint16",
			extract: func(s string) error { _, err := Extract[uint16](one(s)); return err },
			ok:      []string{"0", "65535"},
			bad:     []string{"65536", "-1", "-99999999999999999999"},
		},
		{
			name:    "int64",
			extract: func(s string) error { _, err := Extract[int64](one(s)); return err },
			ok:      []string{"9223372036854775807", "-9223372036854775808"},
			bad:     []string{"9223372036854775808"},
		},
		{
			name:    "float32",
			extract: func(s string) error { _, err := Extract[float32](one(s)); return err },
			ok:      []string{"3.4e38", "-1.5", "1e-3"},
			bad:     []string{"3.5e38", "-1e39"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.ok {
				if err := tt.extract(s); err != nil {
					t.Errorf("%q: unexpected error %v", s, err)
				}
			}
			for _, s := range tt.bad {
				if err := tt.extract(s); !errors.Is(err, ErrOverflow) {
					t.Errorf("%q: expected overflow, got %v", s, err)
				}
			}
		})
	}
}

func TestExtractRoundTrip(t *testing.T) {
	if v, err := Extract[int16](one(strconv.Itoa(math.MinInt16))); err != nil || v != math.MinInt16 {
		t.Errorf("int16 min = %d, %v", v, err)
	}
	if v, err := Extract[uint64](one(strconv.FormatUint(math.MaxUint64, 10))); err != nil || v != math.MaxUint64 {
		t.Errorf("uint64 max = %d, %v", v, err)
	}
	if v, err := Extract[float64](one("2.5")); err != nil || v != 2.5 {
		t.Errorf("float64 = %v, %v", v, err)
	}
	if v, err := Extract[float32](one("0.1")); err != nil || v != float32(0.1) {
		t.Errorf("float32 = %v, %v", v, err)
	}
}

func TestExtractRejectsMalformedNumbers(t *testing.T) {
	bad := []string{"12abc", "1 ", " 1", "", "1.5", "1e3", "1_000", "--1", "abc"}
	for _, s := range bad {
		if _, err := Extract[int](one(s)); !errors.Is(err, ErrConversion) || errors.Is(err, ErrOverflow) {
			t.Errorf("int %q: expected plain conversion failure, got %v", s, err)
		}
	}
	if _, err := Extract[uint](one("-0")); !errors.Is(err, ErrConversion) || errors.Is(err, ErrOverflow) {
		t.Errorf("uint -0: expected plain conversion failure, got %v", err)
	}
	for _, s := range []string{"2.5x", "1.0.0", "", "1,5", "1_000", "1e1_0", "1_0.5", "-2_5"} {
		if _, err := Extract[float64](one(s)); !errors.Is(err, ErrConversion) {
			t.Errorf("float64 %q: expected failure, got %v", s, err)
		}
	}
}

func TestExtractRejectsHex(t *testing.T) {
	for _, s := range []string{"0x1", "0X1F", "-0x1", "+0x10"} {
		if _, err := Extract[uint](one(s)); !errors.Is(err, ErrConversion) {
			t.Errorf("uint %q: expected rejection, got %v", s, err)
		}
		if _, err := Extract[int64](one(s)); !errors.Is(err, ErrConversion) {
			t.Errorf("int64 %q: expected rejection, got %v", s, err)
		}
	}
	if _, err := Extract[float64](one("0x1p-2")); !errors.Is(err, ErrConversion) {
		t.Errorf("hex float accepted: %v", err)
	}
	if v, err := Extract[int](one("0")); err != nil || v != 0 {
		t.Errorf("plain zero rejected: %v", err)
	}
}

func TestExtractScalarArity(t *testing.T) {
	for _, toks := range [][]string{nil, {}, {"a", "b"}} {
		if _, err := Extract[string](toks); !errors.Is(err, ErrConversion) {
			t.Errorf("string from %v: expected failure", toks)
		}
		if _, err := Extract[int](toks); !errors.Is(err, ErrConversion) {
			t.Errorf("int from %v: expected failure", toks)
		}
	}
	if v, err := Extract[string](one("-s")); err != nil || v != "-s" {
		t.Errorf("string kept verbatim: %q, %v", v, err)
	}
}

func TestExtractArrays(t *testing.T) {
	v, err := Extract[[2]int]([]string{"3", "-4"})
	if err != nil || v != [2]int{3, -4} {
		t.Errorf("[2]int = %v, %v", v, err)
	}
	s, err := Extract[[2]string]([]string{"tiger", "auroch"})
	if err != nil || s != [2]string{"tiger", "auroch"} {
		t.Errorf("[2]string = %v, %v", s, err)
	}

	for _, toks := range [][]string{{"1"}, {"1", "2", "3"}, {"1", "x"}, {"1", "0x2"}} {
		if _, err := Extract[[2]int](toks); !errors.Is(err, ErrConversion) {
			t.Errorf("[2]int from %v: expected failure, got %v", toks, err)
		}
	}
	if _, err := Extract[[2]int8]([]string{"1", "200"}); !errors.Is(err, ErrOverflow) {
		t.Errorf("element overflow should surface as overflow, got %v", err)
	}
}

func TestExtractTuples(t *testing.T) {
	got, err := Extract[Triple[string, int, float64]]([]string{"gasket", "4", "1.3"})
	if err != nil {
		t.Fatalf("Triple: %v", err)
	}
	if diff := cmp.Diff(MakeTriple("gasket", 4, 1.3), got); diff != "" {
		t.Errorf("Triple (-want +got):\n%s", diff)
	}

	if _, err := Extract[Pair[string, int]]([]string{"a", "b"}); !errors.Is(err, ErrConversion) {
		t.Errorf("Pair with bad int: %v", err)
	}
	if _, err := Extract[Pair[string, int]]([]string{"a"}); !errors.Is(err, ErrConversion) {
		t.Errorf("Pair with one token: %v", err)
	}

	type window struct {
		Width  uint
		Height uint
		title  string //nolint:unused // unexported fields are skipped
	}
	w, err := Extract[window]([]string{"640", "480"})
	if err != nil || w.Width != 640 || w.Height != 480 {
		t.Errorf("struct tuple = %+v, %v", w, err)
	}
}

func TestExtractExtraTypes(t *testing.T) {
	if d, err := Extract[time.Duration](one("1h30m")); err != nil || d != 90*time.Minute {
		t.Errorf("duration = %v, %v", d, err)
	}
	if _, err := Extract[time.Duration](one("90")); !errors.Is(err, ErrConversion) {
		t.Errorf("duration without unit: %v", err)
	}
	if b, err := Extract[bool](one("true")); err != nil || !b {
		t.Errorf("bool = %v, %v", b, err)
	}
	addr, err := Extract[netip.Addr](one("192.0.2.1"))
	if err != nil || addr != netip.MustParseAddr("192.0.2.1") {
		t.Errorf("netip.Addr = %v, %v", addr, err)
	}
	if _, err := Extract[netip.Addr](one("not-an-ip")); !errors.Is(err, ErrConversion) {
		t.Errorf("bad addr: %v", err)
	}

	type level string
	if l, err := Extract[level](one("debug")); err != nil || l != "debug" {
		t.Errorf("named string = %q, %v", l, err)
	}
}

func TestExtractUnsupported(t *testing.T) {
	if _, err := Extract[[]int](one("1")); !errors.Is(err, ErrConversion) {
		t.Errorf("slices are not supported, got %v", err)
	}
	if _, err := Extract[map[string]int](one("1")); !errors.Is(err, ErrConversion) {
		t.Errorf("maps are not supported, got %v", err)
	}
}
