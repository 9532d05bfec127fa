package source

import "fmt"

// Span is a half-open byte range `[Start, End)` into a single file's source.
// It is the `Span` / `Spanned<T>` carrier of spec §3: every IR node that can
// participate in a diagnostic carries one.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Len returns the span's length in bytes.
func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span enclosing both s and other.
// If the spans belong to different files, s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
