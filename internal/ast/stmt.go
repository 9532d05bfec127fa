package ast

import "toxc/internal/source"

// StmtSynKind discriminates the concrete statement-syntax sum.
type StmtSynKind uint8

const (
	StmtSynLet StmtSynKind = iota
	StmtSynExpr
)

// StmtSyn is a parsed (not yet lowered) statement.
type StmtSyn struct {
	Kind        StmtSynKind
	Pat         PatID  // StmtSynLet
	Initializer ExprID // StmtSynLet
	Expr        ExprID // StmtSynExpr
	Span        source.Span
}

// BlockSyn is a parsed `{ ... }` sequence of statements.
type BlockSyn struct {
	Stmts []StmtID
	Span  source.Span
}

type Stmts struct {
	Arena  *Arena[StmtSyn]
	Blocks *Arena[BlockSyn]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{Arena: NewArena[StmtSyn](capHint), Blocks: NewArena[BlockSyn](capHint)}
}

func (s *Stmts) New(stmt StmtSyn) StmtID {
	return StmtID(s.Arena.Allocate(stmt))
}

func (s *Stmts) Get(id StmtID) *StmtSyn {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(b BlockSyn) BlockID {
	return BlockID(s.Blocks.Allocate(b))
}

func (s *Stmts) GetBlock(id BlockID) *BlockSyn {
	return s.Blocks.Get(uint32(id))
}
