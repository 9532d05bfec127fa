package ir

import "toxc/internal/source"

// Param is one function parameter: a pattern (usually a bare bind) and its
// declared type.
type Param struct {
	Pat  PatId
	Ty   TypeId
	Span source.Span
}

// TypeParam is one generic parameter introduced by a function, class, or
// enum (spec §4.5 "generic arity").
type TypeParam struct {
	Name NameId
	Span source.Span
}

// FunctionAstMap is the per-function side table mapping each local id kind
// to its node and span, in first-lowered order. Keeping insertion order
// (rather than a plain map) gives deterministic traversal for diagnostics
// and for any downstream consumer that walks a function body (spec §3,
// SPEC_FULL §3 "FunctionAstMap is keyed per-kind preserving insertion
// order").
type FunctionAstMap struct {
	Exprs  []Spanned[Expr]
	Stmts  []Spanned[Stmt]
	Pats   []Spanned[Pattern]
	Blocks []Block
	Params []Param
	TypeParams []TypeParam
}

func NewFunctionAstMap() *FunctionAstMap {
	return &FunctionAstMap{}
}

func (m *FunctionAstMap) AddExpr(e Expr, span source.Span) ExprId {
	id := ExprId(len(m.Exprs))
	m.Exprs = append(m.Exprs, NewSpanned(e, span))
	return id
}

func (m *FunctionAstMap) AddStmt(s Stmt, span source.Span) StmtId {
	id := StmtId(len(m.Stmts))
	m.Stmts = append(m.Stmts, NewSpanned(s, span))
	return id
}

func (m *FunctionAstMap) AddPattern(p Pattern, span source.Span) PatId {
	id := PatId(len(m.Pats))
	m.Pats = append(m.Pats, NewSpanned(p, span))
	return id
}

func (m *FunctionAstMap) AddBlock(b Block) BlockId {
	id := BlockId(len(m.Blocks))
	m.Blocks = append(m.Blocks, b)
	return id
}

func (m *FunctionAstMap) Expr(id ExprId) Expr       { return m.Exprs[id].Item }
func (m *FunctionAstMap) Stmt(id StmtId) Stmt       { return m.Stmts[id].Item }
func (m *FunctionAstMap) Pattern(id PatId) Pattern  { return m.Pats[id].Item }
func (m *FunctionAstMap) BlockOf(id BlockId) Block  { return m.Blocks[id] }

// Function is a lowered top-level function (spec §3).
type Function struct {
	ID         FunctionId
	Name       NameId
	Exported   bool
	TypeParams []TypeParam
	Params     []Param
	Returns    TypeId
	Body       BlockId
	AstMap     *FunctionAstMap
	Span       source.Span
}
