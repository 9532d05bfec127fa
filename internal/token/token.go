package token

import "toxc/internal/source"

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, IntLit, FloatLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwLet, KwMod, KwUse, KwAs, KwPub, KwType, KwClass, KwEnum, KwSelf, KwSelfType,
		KwMatch, KwIf, KwElse, KwWhile, KwBreak, KwContinue, KwReturn, KwTrue, KwFalse, KwNil:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
