// Package mutable provides Text, a mutable and indexable string.
//
// Package: mutable
// Title: Mutable Text Container
// Description: This package provides Text, a resizable sequence of
//              characters with list-like element and slice access and the
//              full set of Python str operations. Case mapping, padding,
//              stripping, replacement, joining and formatting rewrite the
//              text in place and return it for chaining; searching,
//              splitting and classification leave it unchanged.
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
// # Creating Text
//
//	t := mutable.New("hello world")
//	n := mutable.New(42)           // "42"
//	c := mutable.Must(mutable.Chr(97)) // "a"
//
// New accepts any value and stores its string form. From accepts only a
// string or a *Text and is checked by the compiler.
//
// # Indexing and Slicing
//
// Integer indices must lie in [-Len(), Len()); negative ones count from the
// end. Slices come from the slicex package and are clamped like Python
// slices:
//
//	first, _ := t.At(0)                          // "h"
//	last, _ := t.At(-1)                          // "d"
//	word, _ := t.Slice(slicex.Span(0, 5))        // "hello"
//	_ = t.SetSlice(slicex.Span(0, 5), "HOWDY")   // "HOWDY world"
//	_ = t.Delete(slicex.From(5))                 // "HOWDY"
//	_ = t.Insert(100, "!")                       // "HOWDY!"
//
// Get, Set and Delete take the index as any so both forms share one entry
// point; At, SetAt, DeleteAt, Slice, SetSlice and DeleteSlice are the typed
// equivalents.
//
// # Text-like Arguments
//
// Parameters taking text accept exactly a string or a *Text. Anything else
// is rejected with a TypeError naming the parameter and the runtime type,
// before the text is modified:
//
//	_, err := t.Find(42)
//	// find sub must be string or Text, not int
//
// Optional start and end bounds of searches are trailing int arguments.
//
//	t.Find("o")        // whole text
//	t.Find("o", 5)     // from 5
//	t.Find("o", 0, 4)  // [0, 4)
//
// # Chaining
//
//	out, err := mutable.New("  hello  ").Strip()
//	out.Title().Center(11, "*")  // "***Hello***"
//
// # Error Handling
//
// All errors are *error.Error values with module "mutable" (or "stringx" and
// "slicex" for errors raised inside those packages). IsTypeError,
// IsIndexError, IsValueError and IsKeyError classify them. A call that
// returns an error has not modified the text.
//
// # Configuration and Logging
//
// WithLogger attaches a logger that records rejected calls at debug level
// and mutations at trace level. WithAlnumMode(AlnumCompat) makes IsAlnum
// accept letters only. FromProfile builds both options from a profile
// loaded by core/config.
//
// # Encoding
//
// Text implements encoding.TextMarshaler and encoding.TextUnmarshaler, so a
// *Text field reads and writes as a plain string in JSON, TOML and YAML.
package mutable
