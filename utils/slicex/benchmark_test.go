// File: benchmark_test.go
// Title: Performance Benchmarks for SliceX
// Description: Benchmarks for slice selection, assignment and deletion over
//              rune sequences.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial benchmark implementation

package slicex

import (
	"strings"
	"testing"
)

var benchRunes = []rune(strings.Repeat("abcdefghij", 100))

func BenchmarkGetContiguous(b *testing.B) {
	s := Span(100, 900)
	for i := 0; i < b.N; i++ {
		_, _ = Get(benchRunes, s)
	}
}

func BenchmarkGetReversed(b *testing.B) {
	s := Full().Step(-1)
	for i := 0; i < b.N; i++ {
		_, _ = Get(benchRunes, s)
	}
}

func BenchmarkAssignExtended(b *testing.B) {
	s := Full().Step(2)
	values := make([]rune, len(benchRunes)/2)
	for i := 0; i < b.N; i++ {
		_, _ = Assign(benchRunes, s, values)
	}
}

func BenchmarkDeleteExtended(b *testing.B) {
	s := Full().Step(3)
	for i := 0; i < b.N; i++ {
		_, _ = Delete(benchRunes, s)
	}
}

func BenchmarkInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Insert(benchRunes, 500, 'x', 'y')
	}
}
