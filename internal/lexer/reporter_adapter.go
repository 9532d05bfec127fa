package lexer

import "toxc/internal/diag"

// ReporterAdapter adapts a diag.Bag into the diag.Reporter the lexer and
// parser expect, so callers can pass one bag down the whole front-end
// pipeline without constructing a BagReporter at every call site.
type ReporterAdapter struct {
	Bag *diag.Bag
}

func (r *ReporterAdapter) Reporter() diag.Reporter {
	return &diag.BagReporter{Bag: r.Bag}
}
