// File: benchmark_test.go
// Title: Performance Benchmarks for Mutable Text
// Description: Benchmarks for construction, element access, in-place
//              assignment, searching and the rewriting operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial benchmark implementation

package mutable

import (
	"strings"
	"testing"

	mtlog "github.com/msto63/mtext/core/log"
)

var benchSource = strings.Repeat("the quick brown fox jumps over the lazy dog ", 64)

func benchText() *Text {
	return New(benchSource, WithLogger(mtlog.Discard()))
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New(benchSource)
	}
}

func BenchmarkGet(b *testing.B) {
	text := benchText()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = text.Get(i % text.Len())
	}
}

func BenchmarkSetAt(b *testing.B) {
	text := benchText()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = text.SetAt(i%text.Len(), "x")
	}
}

func BenchmarkFind(b *testing.B) {
	text := benchText()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = text.Find("lazy cat")
	}
}

func BenchmarkSplit(b *testing.B) {
	text := benchText()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = text.SplitStrings(nil)
	}
}

func BenchmarkReplace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = benchText().Replace("fox", "wolf")
	}
}

func BenchmarkUpper(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchText().Upper()
	}
}

func BenchmarkJoin(b *testing.B) {
	words := strings.Fields(benchSource)
	for i := 0; i < b.N; i++ {
		_, _ = New(" ", WithLogger(mtlog.Discard())).Join(words)
	}
}

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = New("{0} has {n:>8,} items", WithLogger(mtlog.Discard())).Format("inventory", Kwargs{"n": 1234567})
	}
}
