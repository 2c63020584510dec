// File: transform_test.go
// Title: Text Transformation and Predicate Tests
// Description: Tests case mapping, padding, stripping, replacement, joining
//              and formatting in place, chaining, the predicates in both
//              alphanumeric modes and that rejected calls leave the text
//              unchanged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package mutable

import (
	"slices"
	"testing"
)

func TestCaseOperations(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Text) *Text
		in   string
		want string
	}{
		{"title", (*Text).Title, "hello wORLD", "Hello World"},
		{"title apostrophe", (*Text).Title, "they're here", "They'Re Here"},
		{"capitalize", (*Text).Capitalize, "hELLO World", "Hello world"},
		{"upper", (*Text).Upper, "straße", "STRASSE"},
		{"lower", (*Text).Lower, "HeLLo", "hello"},
		{"swapcase", (*Text).SwapCase, "Hello", "hELLO"},
		{"empty", (*Text).Upper, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := New(tt.in)
			result := tt.op(text)
			if result != text {
				t.Error("operation did not return its receiver")
			}
			if text.String() != tt.want {
				t.Errorf("got %q, want %q", text.String(), tt.want)
			}
		})
	}

	if n := New("ß").Upper().Len(); n != 2 {
		t.Errorf("Upper(ß).Len() = %d, want 2", n)
	}
}

func TestChaining(t *testing.T) {
	text := New("  hello, WORLD  ")
	stripped := Must(text.Strip())
	replaced := Must(stripped.Lower().Title().Replace(",", ""))
	centered := Must(replaced.Center(15, "*"))

	if centered != text {
		t.Error("chain did not return the receiver")
	}
	if text.String() != "**Hello World**" {
		t.Errorf("got %q", text.String())
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name  string
		op    func(*Text, int, ...any) (*Text, error)
		in    string
		width int
		fill  []any
		want  string
	}{
		{"center", (*Text).Center, "hi", 6, []any{"*"}, "**hi**"},
		{"center odd", (*Text).Center, "hi", 5, []any{"*"}, "**hi*"},
		{"center odd width", (*Text).Center, "abc", 6, []any{"*"}, "*abc**"},
		{"center default fill", (*Text).Center, "hi", 6, nil, "  hi  "},
		{"center narrow", (*Text).Center, "hello", 3, nil, "hello"},
		{"center negative width", (*Text).Center, "hi", -1, nil, "hi"},
		{"center tiled fill", (*Text).Center, "hi", 8, []any{"ab"}, "abahiaba"},
		{"center text fill", (*Text).Center, "hi", 4, []any{New("-")}, "-hi-"},
		{"ljust", (*Text).LJust, "hi", 5, []any{"."}, "hi..."},
		{"ljust default", (*Text).LJust, "hi", 4, nil, "hi  "},
		{"rjust", (*Text).RJust, "42", 5, []any{"0"}, "00042"},
		{"rjust tiled", (*Text).RJust, "hi", 5, []any{"xy"}, "xyxhi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := New(tt.in)
			result, err := tt.op(text, tt.width, tt.fill...)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if result != text || text.String() != tt.want {
				t.Errorf("got %q, want %q", text.String(), tt.want)
			}
		})
	}
}

func TestPaddingErrors(t *testing.T) {
	text := New("hi")

	tests := []struct {
		name    string
		call    func() error
		message string
	}{
		{"int fill", func() error { _, err := text.Center(6, 0); return err }, "center fill must be string or Text, not int"},
		{"rune fill", func() error { _, err := text.LJust(6, '*'); return err }, "ljust fill must be string or Text, not int32"},
		{"empty fill", func() error { _, err := text.RJust(6, ""); return err }, "rjust fill cannot be empty"},
		{"arity", func() error { _, err := text.Center(6, "*", "-"); return err }, "center expected at most 2 arguments, got 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !IsTypeError(err) {
				t.Fatalf("error = %v, want TypeError", err)
			}
			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
		})
	}
	if text.String() != "hi" {
		t.Errorf("rejected padding changed text to %q", text.String())
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		op    func(*Text, ...any) (*Text, error)
		in    string
		chars []any
		want  string
	}{
		{"strip whitespace", (*Text).Strip, " \t hi there \n", nil, "hi there"},
		{"strip nil", (*Text).Strip, "  hi  ", []any{nil}, "hi"},
		{"strip set", (*Text).Strip, "xyhixyx", []any{"xy"}, "hi"},
		{"strip text set", (*Text).Strip, "--hi--", []any{New("-")}, "hi"},
		{"strip empty set", (*Text).Strip, "  hi  ", []any{""}, "  hi  "},
		{"strip all", (*Text).Strip, "aaa", []any{"a"}, ""},
		{"lstrip", (*Text).LStrip, "  hi  ", nil, "hi  "},
		{"lstrip set", (*Text).LStrip, "www.example.com", []any{"w."}, "example.com"},
		{"rstrip", (*Text).RStrip, "  hi  ", nil, "  hi"},
		{"rstrip set", (*Text).RStrip, "mississippi", []any{"ipz"}, "mississ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := New(tt.in)
			result, err := tt.op(text, tt.chars...)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if result != text || text.String() != tt.want {
				t.Errorf("got %q, want %q", text.String(), tt.want)
			}
		})
	}
}

func TestStripIdempotent(t *testing.T) {
	for _, s := range []string{"", "   ", "  a b  ", "　x　", "abc"} {
		once := Must(New(s).Strip()).String()
		twice := Must(New(once).Strip()).String()
		if once != twice {
			t.Errorf("Strip(%q): %q then %q", s, once, twice)
		}
	}
}

func TestStripErrors(t *testing.T) {
	text := New(" hi ")
	if _, err := text.Strip(1); !IsTypeError(err) || err.Error() != "strip chars must be string or Text, not int" {
		t.Errorf("Strip(1) error = %v", err)
	}
	if _, err := text.LStrip(" ", " "); !IsTypeError(err) || err.Error() != "lstrip expected at most 1 argument, got 2" {
		t.Errorf("LStrip arity error = %v", err)
	}
	if text.String() != " hi " {
		t.Errorf("rejected strip changed text to %q", text.String())
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		old, new any
		count    []int
		want     string
	}{
		{"all", "banana", "a", "o", nil, "bonono"},
		{"limited", "banana", "a", "o", []int{2}, "bonona"},
		{"zero", "banana", "a", "o", []int{0}, "banana"},
		{"negative", "banana", "a", "o", []int{-3}, "bonono"},
		{"texts", "banana", New("an"), New("AN"), nil, "bANANa"},
		{"delete", "banana", "na", "", nil, "ba"},
		{"non-overlapping", "aaaa", "aa", "b", nil, "bb"},
		{"empty old", "abc", "", "-", nil, "-a-b-c-"},
		{"empty old limited", "abc", "", "-", []int{2}, "-a-bc"},
		{"absent", "abc", "x", "y", nil, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := New(tt.in)
			if _, err := text.Replace(tt.old, tt.new, tt.count...); err != nil {
				t.Fatalf("error = %v", err)
			}
			if text.String() != tt.want {
				t.Errorf("got %q, want %q", text.String(), tt.want)
			}
		})
	}
}

func TestReplaceCountProperty(t *testing.T) {
	cases := []struct{ s, old, new string }{
		{"banana", "a", "o"},
		{"the cat sat on the mat", "at", "og"},
		{"aaaa", "a", "bb"},
	}
	for _, c := range cases {
		before := Must(New(c.s).Count(c.old))
		after := Must(Must(New(c.s).Replace(c.old, c.new)).Count(c.new))
		if after < before {
			t.Errorf("Replace(%q, %q, %q): %d occurrences became %d", c.s, c.old, c.new, before, after)
		}
	}
}

func TestReplaceErrors(t *testing.T) {
	text := New("abc")

	tests := []struct {
		name    string
		call    func() error
		message string
	}{
		{"old", func() error { _, err := text.Replace(1, "x"); return err }, "replace old must be string or Text, not int"},
		{"new", func() error { _, err := text.Replace("a", 2.0); return err }, "replace new must be string or Text, not float64"},
		{"arity", func() error { _, err := text.Replace("a", "b", 1, 2); return err }, "replace expected at most 3 arguments, got 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !IsTypeError(err) || err.Error() != tt.message {
				t.Errorf("error = %v, want TypeError %q", err, tt.message)
			}
		})
	}
	if text.String() != "abc" {
		t.Errorf("rejected replace changed text to %q", text.String())
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		sep   string
		items any
		want  string
	}{
		{"strings", ", ", []string{"a", "b", "c"}, "a, b, c"},
		{"texts", "-", []*Text{New("x"), New("y")}, "x-y"},
		{"mixed", "+", []any{"1", New("2"), "3"}, "1+2+3"},
		{"seq of strings", "/", slices.Values([]string{"usr", "local", "bin"}), "usr/local/bin"},
		{"seq of any", ".", slices.Values([]any{"a", New("b")}), "a.b"},
		{"string", "-", "abc", "a-b-c"},
		{"text", "|", New("xyz"), "x|y|z"},
		{"single", ", ", []string{"only"}, "only"},
		{"empty", ", ", []string{}, ""},
		{"empty separator", "", []string{"a", "b"}, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := New(tt.sep)
			result, err := text.Join(tt.items)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if result != text || text.String() != tt.want {
				t.Errorf("got %q, want %q", text.String(), tt.want)
			}
		})
	}
}

func TestJoinSelf(t *testing.T) {
	text := New("ab")
	if _, err := text.Join([]*Text{text, text}); err != nil {
		t.Fatalf("error = %v", err)
	}
	if text.String() != "ababab" {
		t.Errorf("got %q, want ababab", text.String())
	}
}

func TestJoinErrors(t *testing.T) {
	text := New(", ")

	tests := []struct {
		name    string
		items   any
		message string
	}{
		{"not iterable", 5, "join argument must be iterable"},
		{"nil", nil, "join argument must be iterable"},
		{"bad element", []any{"a", 1}, "join argument must be string or Text, not int"},
		{"nil element", []*Text{New("a"), nil}, "join argument must be string or Text, not *mutable.Text"},
		{"bad seq element", slices.Values([]any{"a", 2.5}), "join argument must be string or Text, not float64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := text.Join(tt.items)
			if !IsTypeError(err) || err.Error() != tt.message {
				t.Errorf("error = %v, want TypeError %q", err, tt.message)
			}
			if text.String() != ", " {
				t.Errorf("rejected join changed text to %q", text.String())
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"positional", "{} + {} = {}", []any{1, 2, 3}, "1 + 2 = 3"},
		{"keywords", "{name} is {age}", []any{Kwargs{"name": "Ada", "age": 36}}, "Ada is 36"},
		{"mixed", "{0}, {who}!", []any{"Hello", Kwargs{"who": "World"}}, "Hello, World!"},
		{"text argument", "[{:>5}]", []any{New("ab")}, "[   ab]"},
		{"text keyword", "{t!r}", []any{Kwargs{"t": New("x")}}, "'x'"},
		{"text indexing", "{0[1]}", []any{New("héllo")}, "é"},
		{"spec", "{:08.3f}|{:,}", []any{3.14159, 1234567}, "0003.142|1,234,567"},
		{"no fields", "plain", nil, "plain"},
		{"escapes", "{{{}}}", []any{"x"}, "{x}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := New(tt.template)
			result, err := text.Format(tt.args...)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if result != text || text.String() != tt.want {
				t.Errorf("got %q, want %q", text.String(), tt.want)
			}
		})
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		check    func(error) bool
	}{
		{"missing positional", "{} {}", []any{1}, IsIndexError},
		{"missing keyword", "{name}", nil, IsKeyError},
		{"bad template", "{", nil, IsValueError},
		{"bad spec", "{:d}", []any{"s"}, IsValueError},
		{"unformattable", "{:>4}", []any{struct{}{}}, IsTypeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := New(tt.template)
			_, err := text.Format(tt.args...)
			if !tt.check(err) {
				t.Errorf("error = %v has the wrong kind", err)
			}
			if text.String() != tt.template {
				t.Errorf("rejected format changed text to %q", text.String())
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*Text) bool
		in   string
		want bool
	}{
		{"digit", (*Text).IsDigit, "0123", true},
		{"digit superscript", (*Text).IsDigit, "²", true},
		{"digit mixed", (*Text).IsDigit, "12a", false},
		{"decimal", (*Text).IsDecimal, "42", true},
		{"decimal superscript", (*Text).IsDecimal, "²", false},
		{"numeric", (*Text).IsNumeric, "½", true},
		{"alpha", (*Text).IsAlpha, "héllo", true},
		{"alpha digits", (*Text).IsAlpha, "abc123", false},
		{"alnum", (*Text).IsAlnum, "abc123", true},
		{"alnum punctuation", (*Text).IsAlnum, "abc!", false},
		{"lower", (*Text).IsLower, "hello 1", true},
		{"lower mixed", (*Text).IsLower, "Hello", false},
		{"upper", (*Text).IsUpper, "HELLO 1", true},
		{"upper uncased", (*Text).IsUpper, "123", false},
		{"space", (*Text).IsSpace, " \t\n", true},
		{"space mixed", (*Text).IsSpace, " x ", false},
		{"title", (*Text).IsTitle, "Hello World", true},
		{"title lower word", (*Text).IsTitle, "Hello world", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(New(tt.in)); got != tt.want {
				t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	empty := New("")
	for name, fn := range map[string]func(*Text) bool{
		"IsDigit": (*Text).IsDigit, "IsDecimal": (*Text).IsDecimal, "IsNumeric": (*Text).IsNumeric,
		"IsAlpha": (*Text).IsAlpha, "IsAlnum": (*Text).IsAlnum, "IsLower": (*Text).IsLower,
		"IsUpper": (*Text).IsUpper, "IsSpace": (*Text).IsSpace, "IsTitle": (*Text).IsTitle,
	} {
		if fn(empty) {
			t.Errorf("%s(\"\") = true", name)
		}
	}
}

func TestAlnumModes(t *testing.T) {
	tests := []struct {
		in             string
		strict, compat bool
	}{
		{"abc", true, true},
		{"abc123", true, false},
		{"123", true, false},
		{"", false, false},
		{"a b", false, false},
	}
	for _, tt := range tests {
		if got := New(tt.in).IsAlnum(); got != tt.strict {
			t.Errorf("strict IsAlnum(%q) = %v, want %v", tt.in, got, tt.strict)
		}
		if got := New(tt.in, WithAlnumMode(AlnumStrict)).IsAlnum(); got != tt.strict {
			t.Errorf("explicit strict IsAlnum(%q) = %v, want %v", tt.in, got, tt.strict)
		}
		if got := New(tt.in, WithAlnumMode(AlnumCompat)).IsAlnum(); got != tt.compat {
			t.Errorf("compat IsAlnum(%q) = %v, want %v", tt.in, got, tt.compat)
		}
	}
}
