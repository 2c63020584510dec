// Package stringx implements Python str algorithms over rune slices.
//
// Package: stringx
// Title: Rune Sequence Text Algorithms
// Description: This package provides the text algorithms behind the mutable
//              text container: range-bounded search and counting, separator
//              and whitespace splitting from either end, character-set
//              stripping, counted replacement, centring with tiled pad
//              strings, full Unicode case mapping, character classification
//              and brace-field template formatting. Every function follows the
//              behaviour of the corresponding method of Python's str type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Package Overview:
//
// # Search
//
// Find, RFind, Count, StartsWith and EndsWith take explicit start and end
// bounds that AdjustIndices resolves like slice indices. Pass 0 and len(s)
// to search the whole sequence.
//
//	stringx.Find([]rune("hello world"), []rune("o"), 0, 11)   // 4
//	stringx.RFind([]rune("hello world"), []rune("o"), 0, 11)  // 7
//
// # Split, Strip and Replace
//
// Split and RSplit break on a non-empty separator; SplitWhitespace and
// RSplitWhitespace break on whitespace runs and drop empty pieces. Strip,
// LStrip and RStrip remove a set of runes; the *Space variants remove
// whitespace as IsSpace defines it. Replace performs counted,
// non-overlapping replacement.
//
// # Padding and Case
//
// Center, LJust and RJust tile a pad string on each side. Upper, Lower,
// Title, Capitalize and SwapCase use full case mappings from
// golang.org/x/text/cases, so a single rune may expand into several.
//
// # Classification
//
// IsDigit, IsDecimal, IsNumeric, IsAlpha, IsAlnum, IsSpaceOnly, IsLower,
// IsUpper and IsTitle report false for an empty sequence.
//
// # Template Formatting
//
// Format substitutes {} fields from positional arguments and a Kwargs map
// and supports the full format spec language:
//
//	out, err := stringx.Format("{name:>8}|{0:08.3f}|{1:#x}", []any{3.14159, 255},
//		stringx.Kwargs{"name": "pi"})
//	// "      pi|0003.142|0xff"
//
// # Error Handling
//
// Errors are *error.Error values from core/errors with module "stringx".
// Their codes classify them as ValueError, IndexError, KeyError or
// TypeError.
package stringx
