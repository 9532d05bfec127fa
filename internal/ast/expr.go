package ast

import (
	"toxc/internal/ir"
	"toxc/internal/source"
)

// ExprSynKind discriminates the concrete expression-syntax sum, mirroring
// ir.ExprKind one level before lowering.
type ExprSynKind uint8

const (
	ExprSynArray ExprSynKind = iota
	ExprSynTuple
	ExprSynBinary
	ExprSynUnary
	ExprSynBlock
	ExprSynBreak
	ExprSynContinue
	ExprSynCall
	ExprSynCast
	ExprSynIf
	ExprSynIdent
	ExprSynIndex
	ExprSynWhile
	ExprSynLiteral
	ExprSynParen
	ExprSynReturn
	ExprSynMatch
)

// MatchArmSyn is one `pattern(s) => expr` arm, parsed before lowering.
type MatchArmSyn struct {
	Pats []PatID
	Expr ExprID
}

// ExprSyn is a parsed (not yet lowered) expression. As with ir.Expr, only
// the fields relevant to Kind are populated.
type ExprSyn struct {
	Kind ExprSynKind

	Elems []ExprID // ExprSynArray, ExprSynTuple

	Lhs ExprID
	Rhs ExprID
	Bin ir.BinOp

	UnOp ir.UnaryOp
	Sub  ExprID

	Block BlockID

	Callee   ExprID
	Args     []ExprID
	TypeArgs []TypeID

	CastTy TypeID

	Cond ExprID
	Then ExprID
	Else ExprID // NoExprID when absent

	Name     source.StringID // ExprSynIdent
	NameSpan source.Span

	Base  ExprID
	Index ExprID

	LitKind ir.LiteralKind // ExprSynLiteral
	LitText string

	Return ExprID // NoExprID when bare `return;`

	Match ExprID
	Arms  []MatchArmSyn

	Span source.Span
}

type Exprs struct {
	Arena *Arena[ExprSyn]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{Arena: NewArena[ExprSyn](capHint)}
}

func (e *Exprs) New(expr ExprSyn) ExprID {
	return ExprID(e.Arena.Allocate(expr))
}

func (e *Exprs) Get(id ExprID) *ExprSyn {
	return e.Arena.Get(uint32(id))
}
