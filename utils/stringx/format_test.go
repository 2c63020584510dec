// File: format_test.go
// Title: Template Formatting Tests
// Description: Tests replacement field resolution, conversions, the format
//              spec language for strings, integers and floats, nested specs
//              and the error kind reported for each failure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package stringx

import (
	"errors"
	"math"
	"testing"

	mterror "github.com/msto63/mtext/core/error"
)

type point struct {
	X, Y int
}

func (p point) Norm() int { return p.X*p.X + p.Y*p.Y }

type labelled string

func (l labelled) String() string { return "<" + string(l) + ">" }

func TestFormatFields(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		kwargs   Kwargs
		want     string
	}{
		{"plain", "no fields", nil, nil, "no fields"},
		{"auto", "{} + {} = {}", []any{1, 2, 3}, nil, "1 + 2 = 3"},
		{"manual", "{1}{0}{1}", []any{"a", "b"}, nil, "bab"},
		{"keyword", "{greeting}, {name}!", nil, Kwargs{"greeting": "Hello", "name": "World"}, "Hello, World!"},
		{"mixed", "{0} {who}", []any{"hi"}, Kwargs{"who": "there"}, "hi there"},
		{"escaped braces", "{{}} {{{}}}", []any{7}, nil, "{} {7}"},
		{"index", "{0[1]}", []any{[]int{10, 20, 30}}, nil, "20"},
		{"map key", "{m[k]}", nil, Kwargs{"m": map[string]int{"k": 5}}, "5"},
		{"int map key", "{m[2]}", nil, Kwargs{"m": map[int]string{2: "two"}}, "two"},
		{"string index", "{0[1]}", []any{"héllo"}, nil, "é"},
		{"attribute field", "{p.X},{p.Y}", nil, Kwargs{"p": point{3, 4}}, "3,4"},
		{"attribute method", "{0.Norm}", []any{point{3, 4}}, nil, "25"},
		{"chained", "{0[0].X}", []any{[]point{{1, 2}}}, nil, "1"},
		{"none", "{}", []any{nil}, nil, "None"},
		{"bool", "{} {}", []any{true, false}, nil, "True False"},
		{"float", "{} {} {}", []any{1.0, 0.1, 1e16}, nil, "1.0 0.1 1e+16"},
		{"small float", "{}", []any{0.00001}, nil, "1e-05"},
		{"stringer", "{}", []any{labelled("x")}, nil, "<x>"},
		{"list", "{}", []any{[]any{"a", 1, nil}}, nil, "['a', 1, None]"},
		{"conversion r", "{!r}", []any{"hi"}, nil, "'hi'"},
		{"conversion r quote", "{!r}", []any{"it's"}, nil, `"it's"`},
		{"conversion r escapes", "{!r}", []any{"a\nb"}, nil, `'a\nb'`},
		{"conversion s", "{!s:>4}", []any{1}, nil, "   1"},
		{"conversion a", "{!a}", []any{"é"}, nil, `'\xe9'`},
		{"nested width", "{:{}}", []any{"x", 3}, nil, "x  "},
		{"nested keyword", "{:{fill}^{width}}", []any{"ab"}, Kwargs{"fill": "*", "width": 6}, "**ab**"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.args, tt.kwargs)
			if err != nil {
				t.Fatalf("Format(%q) error = %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		spec  string
		want  string
	}{
		// strings
		{"pi", ">8", "      pi"},
		{"pi", "<5", "pi   "},
		{"ab", "*^7", "**ab***"},
		{"hello", ".2", "he"},
		{"hello", "s", "hello"},

		// integers
		{42, "d", "42"},
		{-42, "05d", "-0042"},
		{5, "+d", "+5"},
		{5, " d", " 5"},
		{1234567, ",", "1,234,567"},
		{1234, "010,", "00,001,234"},
		{0xdeadbeef, "_x", "dead_beef"},
		{255, "#x", "0xff"},
		{255, "X", "FF"},
		{5, "#010b", "0b00000101"},
		{8, "o", "10"},
		{65, "c", "A"},
		{-7, "x", "-7"},
		{math.MinInt64, "d", "-9223372036854775808"},
		{uint8(200), "4", " 200"},
		{true, "d", "1"},
		{3, ".1f", "3.0"},

		// floats
		{3.14159, "08.3f", "0003.142"},
		{-3.14159, "08.2f", "-0003.14"},
		{1234567.0, "g", "1.23457e+06"},
		{123.0, ".3", "1.23e+02"},
		{1.0, ".3", "1.0"},
		{12345.678, "e", "1.234568e+04"},
		{0.25, ".1%", "25.0%"},
		{1234567.891, ",.2f", "1,234,567.89"},
		{-0.01, "z.1f", "0.0"},
		{-0.01, ".1f", "-0.0"},
		{2.0, "#.0f", "2."},
		{1.5, "G", "1.5"},
		{math.Inf(1), "f", "inf"},
		{math.Inf(-1), "F", "-INF"},
		{math.NaN(), ">5", "  nan"},
		{float32(0.1), "", "0.1"},
	}
	for _, tt := range tests {
		got, err := FormatValue(tt.value, tt.spec)
		if err != nil {
			t.Errorf("FormatValue(%v, %q) error = %v", tt.value, tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.value, tt.spec, got, tt.want)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		kwargs   Kwargs
		kind     string
		message  string
	}{
		{"single open", "abc {", nil, nil, mterror.KindValueError, "Single '{' encountered in format string"},
		{"single close", "abc }", nil, nil, mterror.KindValueError, "Single '}' encountered in format string"},
		{"unterminated", "{0", []any{1}, nil, mterror.KindValueError, "expected '}' before end of string"},
		{"missing positional", "{} {}", []any{1}, nil, mterror.KindIndexError,
			"Replacement index 1 out of range for positional args tuple"},
		{"missing keyword", "{name}", nil, nil, mterror.KindKeyError, "'name'"},
		{"manual after auto", "{} {0}", []any{1}, nil, mterror.KindValueError,
			"cannot switch from automatic field numbering to manual field specification"},
		{"auto after manual", "{0} {}", []any{1}, nil, mterror.KindValueError,
			"cannot switch from manual field specification to automatic field numbering"},
		{"unknown conversion", "{!x}", []any{1}, nil, mterror.KindValueError, "Unknown conversion specifier x"},
		{"recursion", "{:{:{}}}", []any{1, 2, 3}, nil, mterror.KindValueError, "Max string recursion exceeded"},
		{"bad code for str", "{:d}", []any{"s"}, nil, mterror.KindValueError,
			"Unknown format code 'd' for object of type 'str'"},
		{"bad code for float", "{:x}", []any{1.5}, nil, mterror.KindValueError,
			"Unknown format code 'x' for object of type 'float'"},
		{"both separators", "{:,_}", []any{1}, nil, mterror.KindValueError, "Cannot specify both ',' and '_'."},
		{"missing precision", "{:.}", []any{1.0}, nil, mterror.KindValueError, "Format specifier missing precision"},
		{"int precision", "{:.2d}", []any{1}, nil, mterror.KindValueError,
			"Precision not allowed in integer format specifier"},
		{"string sign", "{:+}", []any{"s"}, nil, mterror.KindValueError,
			"Sign not allowed in string format specifier"},
		{"invalid spec", "{:abc}", []any{1}, nil, mterror.KindValueError,
			"Invalid format specifier 'abc' for object of type 'int'"},
		{"unsupported type", "{:>3}", []any{struct{}{}}, nil, mterror.KindTypeError,
			"unsupported format string passed to struct {}.__format__"},
		{"missing attribute", "{0.Z}", []any{point{}}, nil, mterror.KindKeyError,
			"'stringx.point' object has no attribute 'Z'"},
		{"list index", "{0[5]}", []any{[]int{1}}, nil, mterror.KindIndexError, "list index out of range"},
		{"list key", "{0[a]}", []any{[]int{1}}, nil, mterror.KindTypeError,
			"list indices must be integers or slices, not str"},
		{"not subscriptable", "{0[0]}", []any{1}, nil, mterror.KindTypeError, "'int' object is not subscriptable"},
		{"char range", "{:c}", []any{-1}, nil, mterror.KindValueError, "%c arg not in range(0x110000)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(tt.template, tt.args, tt.kwargs)
			if err == nil {
				t.Fatalf("Format(%q) expected error", tt.template)
			}
			if kind := mterror.GetKind(err); kind != tt.kind {
				t.Errorf("kind = %s, want %s", kind, tt.kind)
			}
			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestFormatErrorsCarryModule(t *testing.T) {
	_, err := Format("{missing}", nil, nil)
	var mtErr *mterror.Error
	if !errors.As(err, &mtErr) {
		t.Fatalf("expected *mterror.Error, got %T", err)
	}
	if module, _ := mtErr.Detail("module"); module != "stringx" {
		t.Errorf("module = %v, want stringx", module)
	}
	if mtErr.Operation() != "format" {
		t.Errorf("operation = %q, want format", mtErr.Operation())
	}
}

func TestRepr(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"abc", "'abc'"},
		{`a'b"c`, `'a\'b"c'`},
		{"tab\there", `'tab\there'`},
		{"\x00", `'\x00'`},
		{"\u200b", `'\u200b'`},
		{nil, "None"},
		{map[string]int{"b": 2, "a": 1}, "{'a': 1, 'b': 2}"},
		{[]string(nil), "[]"},
		{2.5, "2.5"},
		{7, "7"},
	}
	for _, tt := range tests {
		if got := Repr(tt.value); got != tt.want {
			t.Errorf("Repr(%#v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFloatRepr(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{123456789012345.0, "123456789012345.0"},
		{1234567890123456.0, "1234567890123456.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{math.Inf(1), "inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		if got := FloatRepr(tt.f, 64); got != tt.want {
			t.Errorf("FloatRepr(%v) = %q, want %q", tt.f, got, tt.want)
		}
	}
}
