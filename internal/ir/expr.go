package ir

// BinOp enumerates the binary operators recognized by the lowerer's closed
// operator table (spec §4.5). An operator token outside this table is a
// lowering error, not a panic.
type BinOp uint8

const (
	OpPlus BinOp = iota
	OpMinus
	OpMult
	OpDiv
	OpAnd
	OpOr
	OpLessThan
	OpGreaterThan
	OpExcl
	OpEqual
	OpEqualEqual
	OpNotEqual
	OpLessThanEqual
	OpGreaterThanEqual
	OpPlusEqual
	OpMinusEqual
	OpMultEqual
	OpDivEqual
)

// UnaryOp enumerates the unary operators.
type UnaryOp uint8

const (
	UnaryMinus UnaryOp = iota
	UnaryExcl
)

// ExprKind discriminates the Expr sum (spec §3).
type ExprKind uint8

const (
	ExprArray ExprKind = iota
	ExprTuple
	ExprBinary
	ExprUnary
	ExprBlock
	ExprBreak
	ExprContinue
	ExprCall
	ExprCast
	ExprIf
	ExprIdent
	ExprIndex
	ExprWhile
	ExprLiteral
	ExprParen
	ExprReturn
	ExprMatch
)

// MatchArm is one `pattern(s) => expr` arm of a Match expression.
type MatchArm struct {
	Pats []PatId
	Expr ExprId
}

// Expr is a lowered expression node. Only the fields relevant to Kind are
// populated. Expr values live in a Function's FunctionAstMap, addressed by
// ExprId — there are no pointers between expressions, only ids (spec §9).
type Expr struct {
	Kind ExprKind

	Elems []ExprId // ExprArray, ExprTuple

	Lhs ExprId // ExprBinary
	Rhs ExprId // ExprBinary
	Bin BinOp  // ExprBinary

	UnOp UnaryOp // ExprUnary
	Sub  ExprId  // ExprUnary, ExprCast, ExprParen

	Block BlockId // ExprBlock, ExprWhile (body)

	Callee   ExprId  // ExprCall
	Args     []ExprId // ExprCall
	TypeArgs []Spanned[TypeId] // ExprCall generic instantiation, if any

	CastTy TypeId // ExprCast

	Cond   ExprId          // ExprIf, ExprWhile
	Then   ExprId          // ExprIf
	Else   *ExprId         // ExprIf

	Ident Spanned[NameId] // ExprIdent

	Base  ExprId // ExprIndex
	Index ExprId // ExprIndex

	Literal LiteralId // ExprLiteral

	Return *ExprId // ExprReturn

	Match ExprId     // ExprMatch
	Arms  []MatchArm // ExprMatch
}
