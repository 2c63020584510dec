// File: transform.go
// Title: Text Transformations and Predicates
// Description: In-place case mapping, padding, stripping, replacement,
//              joining and template formatting, plus the character class
//              predicates. Mutating operations return the receiver so calls
//              can be chained.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package mutable

import (
	"iter"

	mterror "github.com/msto63/mtext/core/error"
	mterrors "github.com/msto63/mtext/core/errors"
	"github.com/msto63/mtext/utils/stringx"
)

// Kwargs holds keyword arguments for Format. Pass it as the last argument.
type Kwargs = stringx.Kwargs

// Title uppercases the first cased character of every word and lowercases
// the rest
func (t *Text) Title() *Text {
	return t.commit("title", stringx.Title(t.data))
}

// Capitalize uppercases the first character and lowercases the rest
func (t *Text) Capitalize() *Text {
	return t.commit("capitalize", stringx.Capitalize(t.data))
}

// Upper maps every character to uppercase
func (t *Text) Upper() *Text {
	return t.commit("upper", stringx.Upper(t.data))
}

// Lower maps every character to lowercase
func (t *Text) Lower() *Text {
	return t.commit("lower", stringx.Lower(t.data))
}

// SwapCase inverts the case of every cased character
func (t *Text) SwapCase() *Text {
	return t.commit("swapcase", stringx.SwapCase(t.data))
}

func (t *Text) pad(op string, width int, fill []any, align func(s []rune, width int, fill []rune) []rune) (*Text, error) {
	pattern := []rune{' '}
	switch len(fill) {
	case 0:
	case 1:
		runes, err := textArg(op, "fill", fill[0])
		if err != nil {
			return nil, t.reject(op, err)
		}
		if len(runes) == 0 {
			return nil, t.reject(op, mterrors.TypeMismatchf(mterrors.ModuleMutable, op,
				"%s fill cannot be empty", op).WithDetail("parameter", "fill"))
		}
		pattern = runes
	default:
		return nil, t.reject(op, arityError(op, 2, 1+len(fill)))
	}
	return t.commit(op, align(t.data, width, pattern)), nil
}

// Center centers the text in width characters. fill defaults to a space; a
// longer fill is repeated on each side.
func (t *Text) Center(width int, fill ...any) (*Text, error) {
	return t.pad("center", width, fill, stringx.Center)
}

// LJust left-justifies the text in width characters
func (t *Text) LJust(width int, fill ...any) (*Text, error) {
	return t.pad("ljust", width, fill, stringx.LJust)
}

// RJust right-justifies the text in width characters
func (t *Text) RJust(width int, fill ...any) (*Text, error) {
	return t.pad("rjust", width, fill, stringx.RJust)
}

func (t *Text) strip(op string, chars []any, set func(s, chars []rune) []rune, space func([]rune) []rune) (*Text, error) {
	var stripped []rune
	switch {
	case len(chars) > 1:
		return nil, t.reject(op, arityError(op, 1, len(chars)))
	case len(chars) == 0 || chars[0] == nil:
		stripped = space(t.data)
	default:
		runes, err := textArg(op, "chars", chars[0])
		if err != nil {
			return nil, t.reject(op, err)
		}
		stripped = set(t.data, runes)
	}
	return t.commit(op, append([]rune{}, stripped...)), nil
}

// Strip removes leading and trailing characters found in chars, or
// whitespace when chars is absent or nil
func (t *Text) Strip(chars ...any) (*Text, error) {
	return t.strip("strip", chars, stringx.Strip, stringx.StripSpace)
}

// LStrip removes leading characters found in chars, or whitespace
func (t *Text) LStrip(chars ...any) (*Text, error) {
	return t.strip("lstrip", chars, stringx.LStrip, stringx.LStripSpace)
}

// RStrip removes trailing characters found in chars, or whitespace
func (t *Text) RStrip(chars ...any) (*Text, error) {
	return t.strip("rstrip", chars, stringx.RStrip, stringx.RStripSpace)
}

// Replace replaces the first count non-overlapping occurrences of old with
// repl, or all of them when count is absent or negative
func (t *Text) Replace(old, repl any, count ...int) (*Text, error) {
	limit := -1
	switch len(count) {
	case 0:
	case 1:
		limit = count[0]
	default:
		return nil, t.reject("replace", arityError("replace", 3, 2+len(count)))
	}

	oldRunes, err := textArg("replace", "old", old)
	if err != nil {
		return nil, t.reject("replace", err)
	}
	newRunes, err := textArg("replace", "new", repl)
	if err != nil {
		return nil, t.reject("replace", err)
	}
	return t.commit("replace", stringx.Replace(t.data, oldRunes, newRunes, limit)), nil
}

// Join replaces the text with the items joined by its current content.
// items may be a string or Text (joined character by character), a []string,
// []*Text or []any, or an iter.Seq[string] or iter.Seq[any].
func (t *Text) Join(items any) (*Text, error) {
	parts, err := joinParts(items)
	if err != nil {
		return nil, t.reject("join", err)
	}

	size := len(t.data) * max(len(parts)-1, 0)
	for _, part := range parts {
		size += len(part)
	}
	data := make([]rune, 0, size)
	for i, part := range parts {
		if i > 0 {
			data = append(data, t.data...)
		}
		data = append(data, part...)
	}
	return t.commit("join", data), nil
}

func joinParts(items any) ([][]rune, error) {
	var parts [][]rune
	add := func(item any) error {
		runes, err := textArg("join", "argument", item)
		if err != nil {
			return err
		}
		parts = append(parts, runes)
		return nil
	}

	switch v := items.(type) {
	case string:
		for _, r := range v {
			parts = append(parts, []rune{r})
		}
	case *Text:
		if v == nil {
			return nil, notIterable(items)
		}
		for _, r := range v.data {
			parts = append(parts, []rune{r})
		}
	case []string:
		for _, s := range v {
			parts = append(parts, []rune(s))
		}
	case []*Text:
		for _, item := range v {
			if err := add(item); err != nil {
				return nil, err
			}
		}
	case []any:
		for _, item := range v {
			if err := add(item); err != nil {
				return nil, err
			}
		}
	case iter.Seq[string]:
		for s := range v {
			parts = append(parts, []rune(s))
		}
	case iter.Seq[any]:
		for item := range v {
			if err := add(item); err != nil {
				return nil, err
			}
		}
	default:
		return nil, notIterable(items)
	}
	return parts, nil
}

func notIterable(items any) *mterror.Error {
	return mterrors.NewErrorBuilder(mterrors.ModuleMutable).
		Operation("join").
		Message("join argument must be iterable").
		Code(mterror.CodeTypeMismatch).
		Detail("parameter", "items").
		Detail("type", mterrors.TypeName(items)).
		Build()
}

// Format treats the text as a template and replaces it with the result. A
// trailing Kwargs argument supplies keyword fields. Text arguments take part
// as plain strings.
//
//	mutable.New("{} is {age} years").Format("Ada", mutable.Kwargs{"age": 36})
func (t *Text) Format(args ...any) (*Text, error) {
	var kwargs Kwargs
	if n := len(args); n > 0 {
		if kw, ok := args[n-1].(Kwargs); ok {
			kwargs = make(Kwargs, len(kw))
			for key, value := range kw {
				kwargs[key] = plain(value)
			}
			args = args[:n-1]
		}
	}

	positional := make([]any, len(args))
	for i, arg := range args {
		positional[i] = plain(arg)
	}

	out, err := stringx.Format(string(t.data), positional, kwargs)
	if err != nil {
		return nil, t.reject("format", err)
	}
	return t.commit("format", []rune(out)), nil
}

func plain(value any) any {
	if text, ok := value.(*Text); ok && text != nil {
		return text.String()
	}
	return value
}

// IsDigit reports a non-empty text of digits, superscripts included
func (t *Text) IsDigit() bool { return stringx.IsDigit(t.data) }

// IsDecimal reports a non-empty text of decimal digits
func (t *Text) IsDecimal() bool { return stringx.IsDecimal(t.data) }

// IsNumeric reports a non-empty text of numeric characters
func (t *Text) IsNumeric() bool { return stringx.IsNumeric(t.data) }

// IsAlpha reports a non-empty text of letters
func (t *Text) IsAlpha() bool { return stringx.IsAlpha(t.data) }

// IsAlnum reports a non-empty text of letters and numeric characters. In
// AlnumCompat mode it reports letters only.
func (t *Text) IsAlnum() bool {
	if t.alnum == AlnumCompat {
		return stringx.IsAlpha(t.data)
	}
	return stringx.IsAlnum(t.data)
}

// IsLower reports cased characters that are all lowercase
func (t *Text) IsLower() bool { return stringx.IsLower(t.data) }

// IsUpper reports cased characters that are all uppercase
func (t *Text) IsUpper() bool { return stringx.IsUpper(t.data) }

// IsSpace reports a non-empty text of whitespace
func (t *Text) IsSpace() bool { return stringx.IsSpaceOnly(t.data) }

// IsTitle reports title-cased words and at least one cased character
func (t *Text) IsTitle() bool { return stringx.IsTitle(t.data) }
