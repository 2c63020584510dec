// File: case.go
// Title: Case Mapping and Character Classification
// Description: Implements full Unicode case mapping (one rune may map to
//              several, as in ß to SS) through golang.org/x/text/cases, word
//              title casing where a letter after a cased letter is lowered, and
//              the str-style predicates isdigit, isalpha, islower, istitle and
//              friends over rune slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with x/text case mapping

package stringx

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper maps every rune to its full uppercase form
func Upper(s []rune) []rune {
	return []rune(cases.Upper(language.Und).String(string(s)))
}

// Lower maps every rune to its full lowercase form
func Lower(s []rune) []rune {
	return []rune(cases.Lower(language.Und).String(string(s)))
}

// Title uppercases (titlecases) every cased rune that follows an uncased
// one and lowercases every cased rune that follows a cased one. Words are
// maximal runs of cased runes, so "they're" becomes "They'Re".
func Title(s []rune) []rune {
	m := newMapper()
	result := make([]rune, 0, len(s))
	previousIsCased := false
	for _, r := range s {
		if previousIsCased {
			result = m.lower(result, r)
		} else {
			result = m.title(result, r)
		}
		previousIsCased = isCased(r)
	}
	return result
}

// Capitalize titlecases the first rune and lowercases the rest
func Capitalize(s []rune) []rune {
	if len(s) == 0 {
		return []rune{}
	}
	m := newMapper()
	result := make([]rune, 0, len(s))
	result = m.title(result, s[0])
	for _, r := range s[1:] {
		result = m.lower(result, r)
	}
	return result
}

// SwapCase lowercases uppercase runes and uppercases lowercase runes
func SwapCase(s []rune) []rune {
	m := newMapper()
	result := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case isUpperRune(r):
			result = m.lower(result, r)
		case isLowerRune(r):
			result = m.upper(result, r)
		default:
			result = append(result, r)
		}
	}
	return result
}

// mapper applies single-rune full case mappings. Casers keep state, so each
// call that needs one builds its own.
type mapper struct {
	upperCaser, lowerCaser, titleCaser cases.Caser
}

func newMapper() *mapper {
	return &mapper{
		upperCaser: cases.Upper(language.Und),
		lowerCaser: cases.Lower(language.Und),
		titleCaser: cases.Title(language.Und, cases.NoLower),
	}
}

func (m *mapper) upper(dst []rune, r rune) []rune {
	if r < utf8.RuneSelf {
		return append(dst, unicode.ToUpper(r))
	}
	return append(dst, []rune(m.upperCaser.String(string(r)))...)
}

func (m *mapper) lower(dst []rune, r rune) []rune {
	if r < utf8.RuneSelf {
		return append(dst, unicode.ToLower(r))
	}
	return append(dst, []rune(m.lowerCaser.String(string(r)))...)
}

func (m *mapper) title(dst []rune, r rune) []rune {
	if r < utf8.RuneSelf {
		return append(dst, unicode.ToUpper(r))
	}
	return append(dst, []rune(m.titleCaser.String(string(r)))...)
}

// isUpperRune reports the Uppercase property (Lu plus Other_Uppercase)
func isUpperRune(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

// isLowerRune reports the Lowercase property (Ll plus Other_Lowercase)
func isLowerRune(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

func isCased(r rune) bool {
	return isUpperRune(r) || isLowerRune(r) || unicode.IsTitle(r)
}

// digitExtras lists runes with a digit value outside category Nd:
// superscripts, subscripts and circled or parenthesized digits
var digitExtras = &unicode.RangeTable{
	LatinOffset: 2,
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
}

// hanNumerals lists CJK ideographs that carry a numeric value
var hanNumerals = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3007, Hi: 0x3007, Stride: 1},
		{Lo: 0x4e00, Hi: 0x4e00, Stride: 1},
		{Lo: 0x4e03, Hi: 0x4e03, Stride: 1},
		{Lo: 0x4e07, Hi: 0x4e07, Stride: 1},
		{Lo: 0x4e09, Hi: 0x4e09, Stride: 1},
		{Lo: 0x4e5d, Hi: 0x4e5d, Stride: 1},
		{Lo: 0x4e8c, Hi: 0x4e8c, Stride: 1},
		{Lo: 0x4e94, Hi: 0x4e94, Stride: 1},
		{Lo: 0x516b, Hi: 0x516b, Stride: 1},
		{Lo: 0x516d, Hi: 0x516d, Stride: 1},
		{Lo: 0x5341, Hi: 0x5341, Stride: 1},
		{Lo: 0x5343, Hi: 0x5343, Stride: 1},
		{Lo: 0x56db, Hi: 0x56db, Stride: 1},
		{Lo: 0x767e, Hi: 0x767e, Stride: 1},
		{Lo: 0x842c, Hi: 0x842c, Stride: 1},
		{Lo: 0x96f6, Hi: 0x96f6, Stride: 1},
	},
}

// IsDecimalRune reports a decimal digit (category Nd)
func IsDecimalRune(r rune) bool {
	return unicode.IsDigit(r)
}

// IsDigitRune reports a rune with a digit value, including superscripts
func IsDigitRune(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(digitExtras, r)
}

// IsNumericRune reports a rune with any numeric value
func IsNumericRune(r rune) bool {
	return unicode.IsNumber(r) || unicode.Is(hanNumerals, r)
}

// IsAlphaRune reports a letter (category L)
func IsAlphaRune(r rune) bool {
	return unicode.IsLetter(r)
}

// IsAlnumRune reports a letter or a rune with a numeric value
func IsAlnumRune(r rune) bool {
	return IsAlphaRune(r) || IsDecimalRune(r) || IsDigitRune(r) || IsNumericRune(r)
}

func all(s []rune, pred func(rune) bool) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// IsDigit reports a non-empty sequence of digit runes
func IsDigit(s []rune) bool { return all(s, IsDigitRune) }

// IsDecimal reports a non-empty sequence of decimal digits
func IsDecimal(s []rune) bool { return all(s, IsDecimalRune) }

// IsNumeric reports a non-empty sequence of numeric runes
func IsNumeric(s []rune) bool { return all(s, IsNumericRune) }

// IsAlpha reports a non-empty sequence of letters
func IsAlpha(s []rune) bool { return all(s, IsAlphaRune) }

// IsAlnum reports a non-empty sequence of letters and numeric runes
func IsAlnum(s []rune) bool { return all(s, IsAlnumRune) }

// IsSpaceOnly reports a non-empty sequence of whitespace
func IsSpaceOnly(s []rune) bool { return all(s, IsSpace) }

// IsLower reports at least one cased rune and no uppercase or titlecase runes
func IsLower(s []rune) bool {
	cased := false
	for _, r := range s {
		if isUpperRune(r) || unicode.IsTitle(r) {
			return false
		}
		if isLowerRune(r) {
			cased = true
		}
	}
	return cased
}

// IsUpper reports at least one cased rune and no lowercase or titlecase runes
func IsUpper(s []rune) bool {
	cased := false
	for _, r := range s {
		if isLowerRune(r) || unicode.IsTitle(r) {
			return false
		}
		if isUpperRune(r) {
			cased = true
		}
	}
	return cased
}

// IsTitle reports whether uppercase and titlecase runes only follow uncased
// runes and lowercase runes only follow cased ones, with at least one cased
// rune present
func IsTitle(s []rune) bool {
	cased := false
	previousIsCased := false
	for _, r := range s {
		switch {
		case isUpperRune(r) || unicode.IsTitle(r):
			if previousIsCased {
				return false
			}
			previousIsCased = true
			cased = true
		case isLowerRune(r):
			if !previousIsCased {
				return false
			}
			previousIsCased = true
			cased = true
		default:
			previousIsCased = false
		}
	}
	return cased
}
