// Package parser implements C11, the recursive-descent parser turning a
// token.Token stream into an ast.Tree. Error recovery is resync-based: a
// malformed construct reports a diagnostic, then the parser fast-forwards
// to a token that can plausibly start the next one, so a single typo
// never aborts the rest of the file (spec §9 "diagnostics accumulate").
package parser

import (
	"toxc/internal/ast"
	"toxc/internal/diag"
	"toxc/internal/lexer"
	"toxc/internal/source"
	"toxc/internal/token"
)

// Result is the outcome of parsing one file.
type Result struct {
	File *ast.File
	Tree *ast.Tree
}

// Parser holds the state for parsing a single file.
type Parser struct {
	lx       *lexer.Lexer
	tree     *ast.Tree
	interner *source.Interner
	fileID   source.FileID
	reporter diag.Reporter
	lastSpan source.Span
	quiet    int // >0 suppresses diagnostics during speculative parses
}

// snapshot captures enough state to undo a speculative parse attempt.
type snapshot struct {
	lex      lexer.State
	lastSpan source.Span
}

func (p *Parser) snapshot() snapshot {
	return snapshot{lex: p.lx.Snapshot(), lastSpan: p.lastSpan}
}

func (p *Parser) restore(s snapshot) {
	p.lx.Restore(s.lex)
	p.lastSpan = s.lastSpan
}

// ParseFile is the entry point: parse one file's full token stream into
// an ast.File plus the ast.Tree of arenas it references.
func ParseFile(fileID source.FileID, lx *lexer.Lexer, interner *source.Interner, reporter diag.Reporter) Result {
	p := &Parser{
		lx:       lx,
		tree:     ast.NewTree(),
		interner: interner,
		fileID:   fileID,
		reporter: reporter,
	}
	file := p.parseFile()
	return Result{File: file, Tree: p.tree}
}

func (p *Parser) parseFile() *ast.File {
	start := p.peek().Span
	var items []ast.ItemID
	for !p.at(token.EOF) {
		before := p.peek()
		id, ok := p.parseItem()
		if ok {
			items = append(items, id)
		} else {
			p.resyncTop()
		}
		if !p.at(token.EOF) {
			after := p.peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}
	end := p.lastSpan
	span := start
	if end.End > span.Start {
		span = span.Cover(end)
	}
	return &ast.File{Items: items, Span: span}
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	cur := p.peek().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

// expect consumes the current token if it matches k, reporting a parse
// error otherwise. Returns the token and whether it matched.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errUnexpected(what)
	return token.Token{}, false
}

func (p *Parser) errUnexpected(what string) {
	tok := p.peek()
	p.report(diag.ParseUnexpectedToken, tok.Span, "expected "+what+", found '"+tok.Kind.String()+"'")
}

func (p *Parser) report(code diag.Code, span source.Span, msg string) {
	if p.quiet > 0 {
		return
	}
	if p.reporter != nil {
		p.reporter.Error(code, span, msg)
	}
}

func (p *Parser) span(start token.Token) source.Span {
	return source.Span{File: p.fileID, Start: start.Span.Start, End: p.lastSpan.End}
}

// parseIdent consumes an identifier and interns its text.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if !p.at(token.Ident) {
		p.errUnexpected("identifier")
		return source.NoStringID, p.peek().Span, false
	}
	tok := p.advance()
	return p.interner.Intern(tok.Text), tok.Span, true
}

// resyncTop skips tokens until one that can plausibly start the next
// top-level item, or EOF.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) && !isTopLevelStarter(p.peek().Kind) {
		p.advance()
	}
}

func isTopLevelStarter(k token.Kind) bool {
	switch k {
	case token.KwFn, token.KwLet, token.KwMod, token.KwUse, token.KwPub, token.KwType, token.KwClass, token.KwEnum:
		return true
	default:
		return false
	}
}
