// File: stringx.go
// Title: Rune Sequence Text Algorithms
// Description: Implements search, split, strip, replace and padding over rune
//              slices with the semantics of Python's str type: range bounds
//              adjusted like slice indices, non-overlapping matches, whitespace
//              splitting that drops empty runs and tiling pad strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with search, split and padding

package stringx

import (
	"unicode"

	mterrors "github.com/msto63/mtext/core/errors"
)

// AdjustIndices clamps a [start, end) search range to a sequence of the given
// length. Negative bounds count from the end. start is not clamped upward, so
// callers can detect a range that begins past the end.
func AdjustIndices(start, end, length int) (int, int) {
	if end > length {
		end = length
	} else if end < 0 {
		end += length
		if end < 0 {
			end = 0
		}
	}
	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// IsSpace reports whether r counts as whitespace for splitting and stripping.
// This is the Unicode White_Space set plus the ASCII information separators.
func IsSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

// indexAt returns the first position >= from where sub occurs fully inside
// s[:limit], or -1
func indexAt(s, sub []rune, from, limit int) int {
	n := len(sub)
	for i := from; i+n <= limit; i++ {
		if matchAt(s, sub, i) {
			return i
		}
	}
	return -1
}

// lastIndexAt returns the last position >= floor where sub occurs fully
// inside s[:limit], or -1
func lastIndexAt(s, sub []rune, floor, limit int) int {
	for i := limit - len(sub); i >= floor; i-- {
		if matchAt(s, sub, i) {
			return i
		}
	}
	return -1
}

func matchAt(s, sub []rune, pos int) bool {
	for j, r := range sub {
		if s[pos+j] != r {
			return false
		}
	}
	return true
}

// Find returns the lowest index of sub within s[start:end], or -1
func Find(s, sub []rune, start, end int) int {
	start, end = AdjustIndices(start, end, len(s))
	if end-start < len(sub) {
		return -1
	}
	if len(sub) == 0 {
		return start
	}
	return indexAt(s, sub, start, end)
}

// RFind returns the highest index of sub within s[start:end], or -1
func RFind(s, sub []rune, start, end int) int {
	start, end = AdjustIndices(start, end, len(s))
	if end-start < len(sub) {
		return -1
	}
	if len(sub) == 0 {
		return end
	}
	return lastIndexAt(s, sub, start, end)
}

// Count returns the number of non-overlapping occurrences of sub in
// s[start:end]. An empty sub matches between every pair of runes and at both
// ends of the range.
func Count(s, sub []rune, start, end int) int {
	start, end = AdjustIndices(start, end, len(s))
	if end-start < len(sub) {
		return 0
	}
	if len(sub) == 0 {
		return end - start + 1
	}

	count := 0
	for i := indexAt(s, sub, start, end); i >= 0; i = indexAt(s, sub, i+len(sub), end) {
		count++
	}
	return count
}

// StartsWith reports whether s[start:end] begins with prefix
func StartsWith(s, prefix []rune, start, end int) bool {
	start, end = AdjustIndices(start, end, len(s))
	if end-len(prefix) < start {
		return false
	}
	return matchAt(s, prefix, start)
}

// EndsWith reports whether s[start:end] ends with suffix
func EndsWith(s, suffix []rune, start, end int) bool {
	start, end = AdjustIndices(start, end, len(s))
	if end-len(suffix) < start {
		return false
	}
	return matchAt(s, suffix, end-len(suffix))
}

// Split breaks s around each occurrence of sep, left to right, performing at
// most maxSplit splits when maxSplit >= 0. The pieces share memory with s.
func Split(s, sep []rune, maxSplit int) ([][]rune, error) {
	if len(sep) == 0 {
		return nil, mterrors.InvalidValue(mterrors.ModuleStringx, "split", "", "empty separator")
	}
	if maxSplit < 0 {
		maxSplit = len(s) + 1
	}

	var parts [][]rune
	i := 0
	for ; maxSplit > 0; maxSplit-- {
		pos := indexAt(s, sep, i, len(s))
		if pos < 0 {
			break
		}
		parts = append(parts, s[i:pos])
		i = pos + len(sep)
	}
	return append(parts, s[i:]), nil
}

// RSplit breaks s around each occurrence of sep, right to left, performing at
// most maxSplit splits when maxSplit >= 0. Pieces are returned in order.
func RSplit(s, sep []rune, maxSplit int) ([][]rune, error) {
	if len(sep) == 0 {
		return nil, mterrors.InvalidValue(mterrors.ModuleStringx, "rsplit", "", "empty separator")
	}
	if maxSplit < 0 {
		maxSplit = len(s) + 1
	}

	var parts [][]rune
	j := len(s)
	for ; maxSplit > 0; maxSplit-- {
		pos := lastIndexAt(s, sep, 0, j)
		if pos < 0 {
			break
		}
		parts = append(parts, s[pos+len(sep):j])
		j = pos
	}
	parts = append(parts, s[:j])
	reverse(parts)
	return parts, nil
}

// SplitWhitespace splits s on runs of whitespace, dropping empty pieces at
// either end. With maxSplit >= 0 the remainder after the last split is kept
// whole, minus its leading whitespace.
func SplitWhitespace(s []rune, maxSplit int) [][]rune {
	if maxSplit < 0 {
		maxSplit = len(s) + 1
	}

	var parts [][]rune
	i, n := 0, len(s)
	for ; maxSplit > 0; maxSplit-- {
		for i < n && IsSpace(s[i]) {
			i++
		}
		if i == n {
			break
		}
		j := i
		i++
		for i < n && !IsSpace(s[i]) {
			i++
		}
		parts = append(parts, s[j:i])
	}

	if i < n {
		for i < n && IsSpace(s[i]) {
			i++
		}
		if i != n {
			parts = append(parts, s[i:])
		}
	}
	return parts
}

// RSplitWhitespace is SplitWhitespace working from the right
func RSplitWhitespace(s []rune, maxSplit int) [][]rune {
	if maxSplit < 0 {
		maxSplit = len(s) + 1
	}

	var parts [][]rune
	i := len(s) - 1
	for ; maxSplit > 0; maxSplit-- {
		for i >= 0 && IsSpace(s[i]) {
			i--
		}
		if i < 0 {
			break
		}
		j := i
		i--
		for i >= 0 && !IsSpace(s[i]) {
			i--
		}
		parts = append(parts, s[i+1:j+1])
	}

	if i >= 0 {
		for i >= 0 && IsSpace(s[i]) {
			i--
		}
		if i >= 0 {
			parts = append(parts, s[:i+1])
		}
	}
	reverse(parts)
	return parts
}

func reverse(parts [][]rune) {
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
}

// Replace returns a copy of s with the first count non-overlapping
// occurrences of old replaced by repl, or all of them when count < 0. An empty
// old matches before every rune and at the end.
func Replace(s, old, repl []rune, count int) []rune {
	if count == 0 {
		return clone(s)
	}

	if len(old) == 0 {
		if count < 0 || count > len(s)+1 {
			count = len(s) + 1
		}
		result := make([]rune, 0, len(s)+count*len(repl))
		for i := 0; i < len(s); i++ {
			if count > 0 {
				result = append(result, repl...)
				count--
			}
			result = append(result, s[i])
		}
		if count > 0 {
			result = append(result, repl...)
		}
		return result
	}

	result := make([]rune, 0, len(s))
	i := 0
	for count != 0 {
		pos := indexAt(s, old, i, len(s))
		if pos < 0 {
			break
		}
		result = append(result, s[i:pos]...)
		result = append(result, repl...)
		i = pos + len(old)
		count--
	}
	return append(result, s[i:]...)
}

// Strip removes leading and trailing runes contained in chars
func Strip(s, chars []rune) []rune {
	return RStrip(LStrip(s, chars), chars)
}

// LStrip removes leading runes contained in chars
func LStrip(s, chars []rune) []rune {
	return lstripFunc(s, inSet(chars))
}

// RStrip removes trailing runes contained in chars
func RStrip(s, chars []rune) []rune {
	return rstripFunc(s, inSet(chars))
}

// StripSpace removes leading and trailing whitespace
func StripSpace(s []rune) []rune {
	return rstripFunc(lstripFunc(s, IsSpace), IsSpace)
}

// LStripSpace removes leading whitespace
func LStripSpace(s []rune) []rune {
	return lstripFunc(s, IsSpace)
}

// RStripSpace removes trailing whitespace
func RStripSpace(s []rune) []rune {
	return rstripFunc(s, IsSpace)
}

func inSet(chars []rune) func(rune) bool {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return func(r rune) bool {
		_, ok := set[r]
		return ok
	}
}

func lstripFunc(s []rune, strip func(rune) bool) []rune {
	i := 0
	for i < len(s) && strip(s[i]) {
		i++
	}
	return s[i:]
}

func rstripFunc(s []rune, strip func(rune) bool) []rune {
	j := len(s)
	for j > 0 && strip(s[j-1]) {
		j--
	}
	return s[:j]
}

// Center returns s centered in width runes. When the padding is odd the
// extra rune goes left if width is odd, and right otherwise. fill is tiled
// on each side; an empty fill means a space.
func Center(s []rune, width int, fill []rune) []rune {
	if len(s) >= width {
		return clone(s)
	}
	marg := width - len(s)
	left := marg/2 + (marg & width & 1)
	return pad(s, left, marg-left, fill)
}

// LJust returns s left-justified in width runes
func LJust(s []rune, width int, fill []rune) []rune {
	if len(s) >= width {
		return clone(s)
	}
	return pad(s, 0, width-len(s), fill)
}

// RJust returns s right-justified in width runes
func RJust(s []rune, width int, fill []rune) []rune {
	if len(s) >= width {
		return clone(s)
	}
	return pad(s, width-len(s), 0, fill)
}

func pad(s []rune, left, right int, fill []rune) []rune {
	if len(fill) == 0 {
		fill = []rune{' '}
	}
	result := make([]rune, 0, left+len(s)+right)
	result = appendTiled(result, fill, left)
	result = append(result, s...)
	return appendTiled(result, fill, right)
}

func appendTiled(dst, fill []rune, n int) []rune {
	for i := 0; i < n; i++ {
		dst = append(dst, fill[i%len(fill)])
	}
	return dst
}

func clone(s []rune) []rune {
	result := make([]rune, len(s))
	copy(result, s)
	return result
}
