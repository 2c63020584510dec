// File: text.go
// Title: Mutable Text Container
// Description: Implements Text, a mutable sequence of characters with
//              Python-style element and slice access, in-place assignment,
//              deletion and insertion, concatenation, iteration and text
//              codecs. Every call validates its arguments before the
//              character store is touched.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of the sequence protocol

package mutable

import (
	"iter"
	"math"

	mterror "github.com/msto63/mtext/core/error"
	mterrors "github.com/msto63/mtext/core/errors"
	mtlog "github.com/msto63/mtext/core/log"
	"github.com/msto63/mtext/utils/slicex"
	"github.com/msto63/mtext/utils/stringx"
)

// Text is a mutable string. Each element is exactly one code point, so
// lengths and indices count characters, not bytes.
//
// The zero value is an empty Text using the default logger. A Text is not
// safe for concurrent use.
type Text struct {
	data   []rune
	logger *mtlog.Logger
	alnum  AlnumMode
}

// TextLike is the set of types accepted wherever an operation takes text
type TextLike interface {
	string | *Text
}

// New creates a Text from the string form of value. Strings, Texts, rune and
// byte slices and single runes contribute their characters; nil becomes
// "None", booleans "True" or "False", floats their shortest form and other
// values their String method or default format.
func New(value any, opts ...Option) *Text {
	t := &Text{data: runesOf(value), alnum: AlnumStrict}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// From creates a Text from a string or another Text
func From[T TextLike](value T, opts ...Option) *Text {
	return New(value, opts...)
}

func runesOf(value any) []rune {
	switch v := value.(type) {
	case string:
		return []rune(v)
	case *Text:
		return v.Runes()
	case []rune:
		return append([]rune(nil), v...)
	case []byte:
		return []rune(string(v))
	case rune:
		return []rune{v}
	}
	return []rune(stringx.Str(value))
}

// derive creates a Text sharing t's configuration. data is owned by the
// result.
func (t *Text) derive(data []rune) *Text {
	return &Text{data: data, logger: t.logger, alnum: t.alnum}
}

func (t *Text) log() *mtlog.Logger {
	if t.logger == nil {
		return mtlog.GetDefault()
	}
	return t.logger
}

// reject logs a refused call and returns its error
func (t *Text) reject(op string, err error) error {
	fields := mtlog.Fields{"operation": op}
	if mtErr, ok := mterror.As(err); ok {
		fields["code"] = mtErr.Code().String()
		if parameter, ok := mtErr.Detail("parameter"); ok {
			fields["parameter"] = parameter
		}
	}
	t.log().DebugWithErr("operation rejected", err, fields)
	return err
}

// commit replaces the characters of t. Every mutation ends here.
func (t *Text) commit(op string, data []rune) *Text {
	t.data = data
	t.log().Trace("text mutated", mtlog.Fields{"operation": op, "length": len(data)})
	return t
}

// textArg returns the characters of a string or *Text argument. The result
// may alias the argument's store and must only be read.
func textArg(op, param string, value any) ([]rune, error) {
	switch v := value.(type) {
	case string:
		return []rune(v), nil
	case *Text:
		if v != nil {
			return v.data, nil
		}
	}
	return nil, typeError(op, param, value)
}

// intKey accepts any integer type as an index
func intKey(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return clampUint(uint64(k)), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return clampUint(k), true
	}
	return 0, false
}

func clampUint(u uint64) int {
	if u > math.MaxInt {
		return math.MaxInt
	}
	return int(u)
}

// Len returns the number of characters
func (t *Text) Len() int {
	return len(t.data)
}

// String returns the characters joined in order
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(t.data)
}

// Runes returns a copy of the characters
func (t *Text) Runes() []rune {
	if t == nil {
		return []rune{}
	}
	result := make([]rune, len(t.data))
	copy(result, t.data)
	return result
}

// Iter yields the characters one at a time. Each range over the sequence
// starts from the current content.
func (t *Text) Iter() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range t.data {
			if !yield(string(r)) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same configuration
func (t *Text) Clone() *Text {
	return t.derive(t.Runes())
}

// Equal reports whether other is a string or Text with the same characters.
// Values of any other type are never equal.
func (t *Text) Equal(other any) bool {
	switch o := other.(type) {
	case string:
		return t.String() == o
	case *Text:
		if o == nil {
			return false
		}
		return slicex.Equal(t.data, o.data)
	}
	return false
}

// Get returns the character at an integer index or the characters selected
// by a slicex.Slice, as a new Text
func (t *Text) Get(key any) (*Text, error) {
	if s, ok := key.(slicex.Slice); ok {
		return t.Slice(s)
	}
	if i, ok := intKey(key); ok {
		return t.At(i)
	}
	return nil, t.reject("get", indexTypeError("get", key))
}

// At returns the character at index as a new Text. Negative indices count
// from the end.
func (t *Text) At(index int) (*Text, error) {
	pos, ok := slicex.NormalizeIndex(index, len(t.data))
	if !ok {
		return nil, t.reject("get", indexError("get", index, len(t.data)))
	}
	return t.derive([]rune{t.data[pos]}), nil
}

// Slice returns a copy of the selected characters. Bounds are clamped; only
// a zero step is rejected.
func (t *Text) Slice(s slicex.Slice) (*Text, error) {
	selected, err := slicex.Get(t.data, s)
	if err != nil {
		return nil, t.reject("get", err)
	}
	return t.derive(selected), nil
}

// Set assigns value at an integer index or over a slicex.Slice
func (t *Text) Set(key any, value any) error {
	if s, ok := key.(slicex.Slice); ok {
		return t.SetSlice(s, value)
	}
	if i, ok := intKey(key); ok {
		return t.SetAt(i, value)
	}
	return t.reject("set", indexTypeError("set", key))
}

// SetAt replaces the character at index with the characters of value. A
// longer value grows the text; an empty one removes the character.
func (t *Text) SetAt(index int, value any) error {
	pos, ok := slicex.NormalizeIndex(index, len(t.data))
	if !ok {
		return t.reject("set", indexError("set", index, len(t.data)))
	}
	runes, err := textArg("set", "value", value)
	if err != nil {
		return t.reject("set", err)
	}

	data := make([]rune, 0, len(t.data)-1+len(runes))
	data = append(data, t.data[:pos]...)
	data = append(data, runes...)
	data = append(data, t.data[pos+1:]...)
	t.commit("set", data)
	return nil
}

// SetSlice replaces the selected characters with those of value. A
// contiguous slice may change the length; an extended slice needs a value of
// exactly its size.
func (t *Text) SetSlice(s slicex.Slice, value any) error {
	runes, err := textArg("set", "value", value)
	if err != nil {
		return t.reject("set", err)
	}
	data, err := slicex.Assign(t.data, s, runes)
	if err != nil {
		return t.reject("set", err)
	}
	t.commit("set", data)
	return nil
}

// Delete removes the character at an integer index or those selected by a
// slicex.Slice
func (t *Text) Delete(key any) error {
	if s, ok := key.(slicex.Slice); ok {
		return t.DeleteSlice(s)
	}
	if i, ok := intKey(key); ok {
		return t.DeleteAt(i)
	}
	return t.reject("delete", indexTypeError("delete", key))
}

// DeleteAt removes the character at index
func (t *Text) DeleteAt(index int) error {
	pos, ok := slicex.NormalizeIndex(index, len(t.data))
	if !ok {
		return t.reject("delete", indexError("delete", index, len(t.data)))
	}
	data, _ := slicex.Delete(t.data, slicex.Span(pos, pos+1))
	t.commit("delete", data)
	return nil
}

// DeleteSlice removes the selected characters
func (t *Text) DeleteSlice(s slicex.Slice) error {
	data, err := slicex.Delete(t.data, s)
	if err != nil {
		return t.reject("delete", err)
	}
	t.commit("delete", data)
	return nil
}

// Insert inserts the characters of value before index. Indices past either
// end clamp to it, so Insert never fails on the index.
func (t *Text) Insert(index int, value any) error {
	runes, err := textArg("insert", "value", value)
	if err != nil {
		return t.reject("insert", err)
	}
	t.commit("insert", slicex.Insert(t.data, index, runes...))
	return nil
}

// Concat returns a new Text holding t's characters followed by other's
func (t *Text) Concat(other any) (*Text, error) {
	runes, err := textArg("concat", "other", other)
	if err != nil {
		return nil, t.reject("concat", err)
	}
	data := make([]rune, 0, len(t.data)+len(runes))
	data = append(data, t.data...)
	return t.derive(append(data, runes...)), nil
}

// MarshalText encodes the characters as UTF-8
func (t *Text) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText replaces the characters with the decoded UTF-8 text
func (t *Text) UnmarshalText(text []byte) error {
	t.commit("unmarshal", []rune(string(text)))
	return nil
}

// Ord returns the code point of a one-character string or Text
func Ord(symbol any) (int, error) {
	runes, err := textArg("ord", "symbol", symbol)
	if err != nil {
		return 0, rejectGlobal("ord", err)
	}
	if len(runes) != 1 {
		return 0, rejectGlobal("ord", mterrors.TypeMismatchf(mterrors.ModuleMutable, "ord",
			"ord argument must be one character, got %d", len(runes)).
			WithDetail("parameter", "symbol").
			WithDetail("length", len(runes)))
	}
	return int(runes[0]), nil
}

// Chr returns a new Text holding the character with the given code point
func Chr(code int, opts ...Option) (*Text, error) {
	if code < 0 || code > 0x10FFFF {
		return nil, rejectGlobal("chr", mterrors.InvalidValue(mterrors.ModuleMutable, "chr", code,
			"chr() arg not in range(0x110000)").
			WithDetail("parameter", "code"))
	}
	return New([]rune{rune(code)}, opts...), nil
}

func rejectGlobal(op string, err error) error {
	return (&Text{}).reject(op, err)
}

// Must returns v or panics with err. Use it where arguments are known to be
// valid, such as constants in tests and examples.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
