package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic typed arena for allocating parser-produced nodes.
// Indices are 1-based so the zero value of an id type reads as "absent".
type Arena[T any] struct {
	data []*T
}

// NewArena creates an *Arena[T] whose backing slice starts at capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return a.Len()
}

// Get returns a pointer to the element at index, or nil if index is 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return a.data[index-1]
}

// Len returns the number of elements in the arena.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("ast: arena length overflow: %w", err))
	}
	return n
}
