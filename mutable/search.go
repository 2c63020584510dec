// File: search.go
// Title: Text Search and Split Operations
// Description: Prefix and suffix tests, forward and backward search,
//              occurrence counting and splitting on a separator or on runs of
//              whitespace. Optional range bounds are passed explicitly, so a
//              supplied zero is always honoured.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package mutable

import (
	mterrors "github.com/msto63/mtext/core/errors"
	"github.com/msto63/mtext/utils/stringx"
)

// rangeArgs resolves the optional start and end bounds of a search.
// required is the number of leading arguments op takes.
func (t *Text) rangeArgs(op string, required int, bounds []int) (int, int, error) {
	switch len(bounds) {
	case 0:
		return 0, len(t.data), nil
	case 1:
		return bounds[0], len(t.data), nil
	case 2:
		return bounds[0], bounds[1], nil
	}
	return 0, 0, arityError(op, required+2, required+len(bounds))
}

func (t *Text) searchArgs(op string, sub any, bounds []int) ([]rune, int, int, error) {
	start, end, err := t.rangeArgs(op, 1, bounds)
	if err != nil {
		return nil, 0, 0, t.reject(op, err)
	}
	runes, err := textArg(op, "sub", sub)
	if err != nil {
		return nil, 0, 0, t.reject(op, err)
	}
	return runes, start, end, nil
}

// affixArgs accepts a string, a Text or a tuple of them given as []string,
// []*Text or []any
func affixArgs(op, param string, value any) ([][]rune, error) {
	fail := func(v any) error {
		return mterrors.TypeMismatch(mterrors.ModuleMutable, op, param, v, "string, Text or a tuple of them")
	}

	switch v := value.(type) {
	case string:
		return [][]rune{[]rune(v)}, nil
	case *Text:
		if v == nil {
			return nil, fail(v)
		}
		return [][]rune{v.data}, nil
	case []string:
		affixes := make([][]rune, len(v))
		for i, s := range v {
			affixes[i] = []rune(s)
		}
		return affixes, nil
	case []*Text:
		affixes := make([][]rune, len(v))
		for i, s := range v {
			if s == nil {
				return nil, fail(s)
			}
			affixes[i] = s.data
		}
		return affixes, nil
	case []any:
		affixes := make([][]rune, len(v))
		for i, item := range v {
			runes, err := textArg(op, param, item)
			if err != nil {
				return nil, fail(item)
			}
			affixes[i] = runes
		}
		return affixes, nil
	}
	return nil, fail(value)
}

func (t *Text) matchAffix(op, param string, value any, bounds []int,
	match func(s, affix []rune, start, end int) bool) (bool, error) {
	start, end, err := t.rangeArgs(op, 1, bounds)
	if err != nil {
		return false, t.reject(op, err)
	}
	affixes, err := affixArgs(op, param, value)
	if err != nil {
		return false, t.reject(op, err)
	}

	for _, affix := range affixes {
		if match(t.data, affix, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// StartsWith reports whether t[start:end] begins with prefix, or with any
// element when prefix is a tuple
func (t *Text) StartsWith(prefix any, bounds ...int) (bool, error) {
	return t.matchAffix("startswith", "prefix", prefix, bounds, stringx.StartsWith)
}

// EndsWith reports whether t[start:end] ends with suffix, or with any element
// when suffix is a tuple
func (t *Text) EndsWith(suffix any, bounds ...int) (bool, error) {
	return t.matchAffix("endswith", "suffix", suffix, bounds, stringx.EndsWith)
}

// Find returns the lowest index of sub within t[start:end], or -1
func (t *Text) Find(sub any, bounds ...int) (int, error) {
	runes, start, end, err := t.searchArgs("find", sub, bounds)
	if err != nil {
		return -1, err
	}
	return stringx.Find(t.data, runes, start, end), nil
}

// RFind returns the highest index of sub within t[start:end], or -1
func (t *Text) RFind(sub any, bounds ...int) (int, error) {
	runes, start, end, err := t.searchArgs("rfind", sub, bounds)
	if err != nil {
		return -1, err
	}
	return stringx.RFind(t.data, runes, start, end), nil
}

// Index is Find with a ValueError instead of -1
func (t *Text) Index(sub any, bounds ...int) (int, error) {
	runes, start, end, err := t.searchArgs("index", sub, bounds)
	if err != nil {
		return -1, err
	}
	if i := stringx.Find(t.data, runes, start, end); i >= 0 {
		return i, nil
	}
	return -1, t.reject("index", notFound("index", runes, start, end))
}

// RIndex is RFind with a ValueError instead of -1
func (t *Text) RIndex(sub any, bounds ...int) (int, error) {
	runes, start, end, err := t.searchArgs("rindex", sub, bounds)
	if err != nil {
		return -1, err
	}
	if i := stringx.RFind(t.data, runes, start, end); i >= 0 {
		return i, nil
	}
	return -1, t.reject("rindex", notFound("rindex", runes, start, end))
}

func notFound(op string, sub []rune, start, end int) error {
	return mterrors.ValueNotFound(mterrors.ModuleMutable, op, string(sub), "substring not found").
		WithDetail("start", start).
		WithDetail("end", end)
}

// Count returns the number of non-overlapping occurrences of sub in
// t[start:end]
func (t *Text) Count(sub any, bounds ...int) (int, error) {
	runes, start, end, err := t.searchArgs("count", sub, bounds)
	if err != nil {
		return 0, err
	}
	return stringx.Count(t.data, runes, start, end), nil
}

// split breaks the text into pieces that do not alias t.
// A nil sep splits on runs of whitespace.
func (t *Text) split(op string, sep any, maxSplit []int, fromRight bool) ([][]rune, error) {
	limit := -1
	switch len(maxSplit) {
	case 0:
	case 1:
		limit = maxSplit[0]
	default:
		return nil, t.reject(op, arityError(op, 2, 1+len(maxSplit)))
	}

	var parts [][]rune
	if sep == nil {
		if fromRight {
			parts = stringx.RSplitWhitespace(t.data, limit)
		} else {
			parts = stringx.SplitWhitespace(t.data, limit)
		}
	} else {
		runes, err := textArg(op, "sep", sep)
		if err != nil {
			return nil, t.reject(op, err)
		}
		if len(runes) == 0 {
			return nil, t.reject(op, mterrors.InvalidValue(mterrors.ModuleMutable, op, "", "empty separator").
				WithDetail("parameter", "sep"))
		}
		if fromRight {
			parts, err = stringx.RSplit(t.data, runes, limit)
		} else {
			parts, err = stringx.Split(t.data, runes, limit)
		}
		if err != nil {
			return nil, t.reject(op, err)
		}
	}

	for i, part := range parts {
		parts[i] = append([]rune{}, part...)
	}
	return parts, nil
}

func (t *Text) texts(parts [][]rune) []*Text {
	result := make([]*Text, len(parts))
	for i, part := range parts {
		result[i] = t.derive(part)
	}
	return result
}

func strs(parts [][]rune) []string {
	result := make([]string, len(parts))
	for i, part := range parts {
		result[i] = string(part)
	}
	return result
}

// Split breaks the text around sep from the left, at most maxSplit times
// when given and non-negative. A nil sep splits on runs of whitespace and
// drops empty pieces. The pieces are new Texts.
func (t *Text) Split(sep any, maxSplit ...int) ([]*Text, error) {
	parts, err := t.split("split", sep, maxSplit, false)
	if err != nil {
		return nil, err
	}
	return t.texts(parts), nil
}

// SplitStrings is Split returning plain strings
func (t *Text) SplitStrings(sep any, maxSplit ...int) ([]string, error) {
	parts, err := t.split("split", sep, maxSplit, false)
	if err != nil {
		return nil, err
	}
	return strs(parts), nil
}

// RSplit is Split working from the right
func (t *Text) RSplit(sep any, maxSplit ...int) ([]*Text, error) {
	parts, err := t.split("rsplit", sep, maxSplit, true)
	if err != nil {
		return nil, err
	}
	return t.texts(parts), nil
}

// RSplitStrings is RSplit returning plain strings
func (t *Text) RSplitStrings(sep any, maxSplit ...int) ([]string, error) {
	parts, err := t.split("rsplit", sep, maxSplit, true)
	if err != nil {
		return nil, err
	}
	return strs(parts), nil
}
