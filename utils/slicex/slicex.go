// File: slicex.go
// Title: Sequence Index and Slice Utilities
// Description: Implements Python-style sequence addressing for Go slices:
//              negative indices, clamped slice ranges with optional bounds and
//              step, extended slice assignment and deletion, and clamped
//              insertion. All operations return fresh slices and never modify
//              their input, so callers can validate before committing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with slice and index semantics

package slicex

import (
	"fmt"
	"strconv"
	"strings"

	mterrors "github.com/msto63/mtext/core/errors"
)

// Slice describes a range of positions with optional start, stop and step,
// like a Python slice object. The zero value selects the whole sequence.
type Slice struct {
	start, stop, step          int
	hasStart, hasStop, hasStep bool
}

// Span selects [start:stop]
func Span(start, stop int) Slice {
	return Slice{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From selects [start:]
func From(start int) Slice {
	return Slice{start: start, hasStart: true}
}

// To selects [:stop]
func To(stop int) Slice {
	return Slice{stop: stop, hasStop: true}
}

// Full selects [:]
func Full() Slice {
	return Slice{}
}

// Step returns a copy of the slice with the given step
func (s Slice) Step(step int) Slice {
	s.step = step
	s.hasStep = true
	return s
}

// Bounds returns the raw bounds and whether each was supplied
func (s Slice) Bounds() (start int, hasStart bool, stop int, hasStop bool, step int, hasStep bool) {
	return s.start, s.hasStart, s.stop, s.hasStop, s.step, s.hasStep
}

// String renders the slice in Python notation, e.g. "[1:-1:2]"
func (s Slice) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if s.hasStart {
		b.WriteString(strconv.Itoa(s.start))
	}
	b.WriteByte(':')
	if s.hasStop {
		b.WriteString(strconv.Itoa(s.stop))
	}
	if s.hasStep {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(s.step))
	}
	b.WriteByte(']')
	return b.String()
}

// Indices resolves the slice against a sequence length. Out-of-range bounds
// clamp; only a zero step is an error.
func (s Slice) Indices(length int) (start, stop, step int, err error) {
	step = 1
	if s.hasStep {
		step = s.step
	}
	if step == 0 {
		return 0, 0, 0, mterrors.InvalidValue(mterrors.ModuleSlicex, "indices", s.String(), "slice step cannot be zero")
	}

	if step > 0 {
		start, stop = 0, length
	} else {
		start, stop = length-1, -1
	}

	if s.hasStart {
		start = clampBound(s.start, length, step)
	}
	if s.hasStop {
		stop = clampBound(s.stop, length, step)
	}
	return start, stop, step, nil
}

func clampBound(bound, length, step int) int {
	if bound < 0 {
		bound += length
		if bound < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return bound
	}
	if bound >= length {
		if step < 0 {
			return length - 1
		}
		return length
	}
	return bound
}

// Len returns the number of positions the slice selects
func (s Slice) Len(length int) (int, error) {
	start, stop, step, err := s.Indices(length)
	if err != nil {
		return 0, err
	}
	return sliceLength(start, stop, step), nil
}

func sliceLength(start, stop, step int) int {
	if step < 0 {
		if stop < start {
			return (start-stop-1)/(-step) + 1
		}
		return 0
	}
	if start < stop {
		return (stop-start-1)/step + 1
	}
	return 0
}

// Positions lists the positions the slice selects, in selection order
func (s Slice) Positions(length int) ([]int, error) {
	start, stop, step, err := s.Indices(length)
	if err != nil {
		return nil, err
	}
	n := sliceLength(start, stop, step)
	positions := make([]int, n)
	for i, p := 0, start; i < n; i, p = i+1, p+step {
		positions[i] = p
	}
	return positions, nil
}

// NormalizeIndex maps a possibly negative index into [0, length). The second
// result is false when the index lies outside [-length, length).
func NormalizeIndex(index, length int) (int, bool) {
	if index < -length || index >= length {
		return index, false
	}
	if index < 0 {
		index += length
	}
	return index, true
}

// Get returns a copy of the selected elements
func Get[T any](items []T, s Slice) ([]T, error) {
	positions, err := s.Positions(len(items))
	if err != nil {
		return nil, err
	}
	result := make([]T, len(positions))
	for i, p := range positions {
		result[i] = items[p]
	}
	return result, nil
}

// Assign returns a new slice with the selected range replaced by values. A
// contiguous range (step 1) may change the length; an extended range needs
// exactly as many values as it selects.
func Assign[T any](items []T, s Slice, values []T) ([]T, error) {
	start, stop, step, err := s.Indices(len(items))
	if err != nil {
		return nil, err
	}

	if step == 1 {
		if stop < start {
			stop = start
		}
		result := make([]T, 0, len(items)-(stop-start)+len(values))
		result = append(result, items[:start]...)
		result = append(result, values...)
		result = append(result, items[stop:]...)
		return result, nil
	}

	n := sliceLength(start, stop, step)
	if len(values) != n {
		return nil, mterrors.InvalidValue(mterrors.ModuleSlicex, "assign", s.String(),
			fmt.Sprintf("attempt to assign sequence of size %d to extended slice of size %d", len(values), n))
	}

	result := make([]T, len(items))
	copy(result, items)
	for i, p := 0, start; i < n; i, p = i+1, p+step {
		result[p] = values[i]
	}
	return result, nil
}

// Delete returns a new slice without the selected elements
func Delete[T any](items []T, s Slice) ([]T, error) {
	positions, err := s.Positions(len(items))
	if err != nil {
		return nil, err
	}

	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		drop[p] = struct{}{}
	}

	result := make([]T, 0, len(items)-len(drop))
	for i, item := range items {
		if _, ok := drop[i]; !ok {
			result = append(result, item)
		}
	}
	return result, nil
}

// Insert returns a new slice with values inserted before index. Like list
// insertion, the index never fails: negative values count from the end and
// anything outside the sequence clamps to its nearest end.
func Insert[T any](items []T, index int, values ...T) []T {
	length := len(items)
	if index < 0 {
		index += length
		if index < 0 {
			index = 0
		}
	}
	if index > length {
		index = length
	}

	result := make([]T, 0, length+len(values))
	result = append(result, items[:index]...)
	result = append(result, values...)
	result = append(result, items[index:]...)
	return result
}

// Equal reports whether two slices hold the same elements in the same order
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
