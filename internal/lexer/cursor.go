package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"toxc/internal/source"
)

// Cursor tracks a byte offset within a single file's content.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32
}

// NewCursor creates a cursor positioned at the start of f.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("lexer: file content length overflow: %w", err))
	}
	return Cursor{File: f, Off: 0, Limit: limit}
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Mark is a saved cursor position for computing a Span over a scanned run.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}
