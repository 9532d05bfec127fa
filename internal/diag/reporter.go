package diag

import "toxc/internal/source"

// Reporter is the minimal contract a resolver phase uses to emit
// diagnostics without depending on a concrete Bag, mirroring the teacher's
// fan-out-capable reporter seam.
type Reporter interface {
	Error(code Code, primary source.Span, msg string)
	Warn(code Code, primary source.Span, msg string)
}

// BagReporter reports straight into a Bag.
type BagReporter struct{ Bag *Bag }

func (r *BagReporter) Error(code Code, primary source.Span, msg string) {
	r.Bag.Add(NewError(code, primary, msg))
}

func (r *BagReporter) Warn(code Code, primary source.Span, msg string) {
	r.Bag.Add(NewWarning(code, primary, msg))
}
