// Package slicex implements Python-style sequence addressing for Go slices.
//
// Package: slicex
// Title: Sequence Index and Slice Utilities
// Description: This package resolves negative indices and slice ranges with
//              optional start, stop and step the way Python sequences do, and
//              applies them to any Go slice through generic helpers. The
//              mutable text container builds its indexing protocol on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with slice and index semantics
//
// Package Overview:
//
// # Slice Values
//
// A Slice records which bounds were supplied, so an omitted bound and an
// explicit zero stay distinguishable:
//   - Span(start, stop): [start:stop]
//   - From(start): [start:]
//   - To(stop): [:stop]
//   - Full(): [:]
//   - s.Step(n): the same range with step n
//
// # Resolution
//
// Indices resolves a Slice against a length. Bounds clamp to the sequence and
// never fail; a zero step is the only error. Positions and Len derive from the
// resolved triple. NormalizeIndex handles single negative indices.
//
// # Generic Operations
//
// Get, Assign, Delete and Insert never modify their input:
//
//	items := []rune("abcdef")
//	evens, _ := slicex.Get(items, slicex.Full().Step(2))   // "ace"
//	items, _ = slicex.Assign(items, slicex.Span(1, 3), []rune("XYZ"))
//	items = slicex.Insert(items, -1, '!')
//
// Assigning to an extended slice (step other than 1) requires exactly as many
// values as the slice selects.
//
// # Error Handling
//
// Failures are *error.Error values from core/errors with module "slicex" and
// code INVALID_VALUE, which classify as ValueError.
package slicex
