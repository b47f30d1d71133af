package engine

import (
	"strings"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	e := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Insert("x")
	}
}

func BenchmarkInsertLargeDocument(b *testing.B) {
	e := New(WithContent(strings.Repeat("some line of text\n", 10000)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Insert("x")
	}
}

func BenchmarkUndoRedo(b *testing.B) {
	e := New(WithContent(strings.Repeat("some line of text\n", 1000)))
	_ = e.Insert("hello")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Undo()
		_ = e.Redo()
	}
}
