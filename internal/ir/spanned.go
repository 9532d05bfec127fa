package ir

import "toxc/internal/source"

// Spanned pairs any IR value with the source span it was lowered from,
// i.e. spec §3's `Spanned<T>`.
type Spanned[T any] struct {
	Item  T
	Start uint32
	End   uint32
}

// Span reconstructs the full source.Span, given the file it belongs to.
func (s Spanned[T]) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: s.Start, End: s.End}
}

// NewSpanned builds a Spanned value from a source.Span, discarding the file
// (the file is implicit from context — a Function, SourceFile, etc. always
// belongs to exactly one FileID).
func NewSpanned[T any](item T, span source.Span) Spanned[T] {
	return Spanned[T]{Item: item, Start: span.Start, End: span.End}
}
