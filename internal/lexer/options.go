package lexer

import (
	"toxc/internal/diag"
	"toxc/internal/source"
)

// Options configures a Lexer. Reporter is optional; a nil Reporter simply
// drops lex errors instead of reporting them (still emitting Invalid
// tokens so the parser can attempt recovery).
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) reportLex(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	if sev == diag.SevWarning {
		lx.opts.Reporter.Warn(code, sp, msg)
		return
	}
	lx.opts.Reporter.Error(code, sp, msg)
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.reportLex(code, diag.SevError, sp, msg)
}
