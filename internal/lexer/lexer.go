// Package lexer implements the hand-written scanner feeding the parser
// (C11): source bytes in, a token.Token stream out. It has no trivia
// channel — comments and whitespace are discarded, not attached to
// tokens, since nothing downstream needs them (spec §9 non-goal:
// formatting/pretty-printing is out of scope).
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"toxc/internal/diag"
	"toxc/internal/source"
	"toxc/internal/token"
)

const maxTokenLength = 64 * 1024

// Lexer converts a source.File's content into a stream of tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
}

// New creates a Lexer for file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Next returns the next significant token. Once EOF is reached it keeps
// returning an EOF token forever.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	lx.enforceTokenLength(&tok)
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Push injects a token back into the one-token lookahead buffer.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// State is an opaque snapshot of lexer position, for the parser's
// speculative lookahead past a single token (e.g. disambiguating a
// generic call's `<...>` from a less-than comparison).
type State struct {
	off  uint32
	look *token.Token
}

// Snapshot captures the current position.
func (lx *Lexer) Snapshot() State {
	return State{off: lx.cursor.Off, look: lx.look}
}

// Restore rewinds to a previously captured position.
func (lx *Lexer) Restore(s State) {
	lx.cursor.Off = s.off
	lx.look = s.look
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) enforceTokenLength(tok *token.Token) {
	length := tok.Span.End - tok.Span.Start
	if length <= maxTokenLength {
		return
	}
	msg := fmt.Sprintf("token length %d exceeds limit %d", length, maxTokenLength)
	lx.errLex(diag.LexTokenTooLong, tok.Span, msg)
	tok.Kind = token.Invalid
	if off, err := safecast.Conv[uint32](len(lx.file.Content)); err == nil {
		lx.cursor.Off = off
	}
}
