package lexer

import (
	"toxc/internal/diag"
	"toxc/internal/token"
)

// scanNumber scans a decimal integer or float literal: digits, an optional
// fractional part, and an optional exponent. tox has no base prefixes or
// numeric suffixes (spec §4.5: literal text is preserved verbatim and
// parsed downstream, but the grammar itself is decimal-only).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		kind = token.FloatLit
		return lx.finishNumber(start, kind)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			// ".." is never part of this grammar, but guard anyway so a
			// trailing dot isn't swallowed into the number.
		} else {
			lx.cursor.Bump()
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	return lx.finishNumber(start, kind)
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
