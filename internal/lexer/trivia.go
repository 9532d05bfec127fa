package lexer

import "toxc/internal/diag"

// skipTrivia consumes whitespace and comments preceding the next token.
// tox has no trivia-preserving token stream (spec §9 non-goal: "no
// formatter/pretty-printer"), so unlike the teacher it simply discards
// what it skips rather than attaching it to the following token.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			lx.cursor.Bump()
		case b == '/':
			if !lx.skipComment() {
				return
			}
		default:
			return
		}
	}
}

// skipComment consumes a "//" line comment or "/* */" block comment
// starting at the cursor. Returns false if the next bytes aren't a
// comment, leaving the cursor untouched.
func (lx *Lexer) skipComment() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true
	case '*':
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true
			}
			lx.cursor.Bump()
		}
		lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated block comment")
		return true
	default:
		lx.cursor.Reset(start)
		return false
	}
}
