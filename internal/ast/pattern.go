package ast

import "toxc/internal/source"

// PatSynKind discriminates the concrete pattern-syntax sum, mirroring
// ir.PatternKind one level before interning.
type PatSynKind uint8

const (
	PatSynBind PatSynKind = iota
	PatSynTuple
	PatSynLiteral
	PatSynPlaceholder
)

// PatSyn is a parsed (not yet lowered) pattern.
type PatSyn struct {
	Kind    PatSynKind
	Name    source.StringID // PatSynBind
	Elems   []PatID         // PatSynTuple
	Literal ExprID          // PatSynLiteral, an ExprSynLiteral node
	Span    source.Span
}

type Patterns struct {
	Arena *Arena[PatSyn]
}

func NewPatterns(capHint uint) *Patterns {
	return &Patterns{Arena: NewArena[PatSyn](capHint)}
}

func (p *Patterns) New(pat PatSyn) PatID {
	return PatID(p.Arena.Allocate(pat))
}

func (p *Patterns) Get(id PatID) *PatSyn {
	return p.Arena.Get(uint32(id))
}
