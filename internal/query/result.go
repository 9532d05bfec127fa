package query

import "toxc/internal/diag"

// WithError is the contract every query returns (spec §4.4): a value plus
// whatever diagnostics its computation produced. Warnings never flip Err
// to true; only an error-severity diagnostic does (spec §4.4, §7).
type WithError[T any] struct {
	Value T
	Diags []diag.Diagnostic
}

// Ok builds a successful WithError carrying no diagnostics.
func Ok[T any](v T) WithError[T] {
	return WithError[T]{Value: v}
}

// WithDiags builds a WithError carrying the given diagnostics alongside v
// — v is still populated even when diags contains errors, since C5-C9
// never abort on error, only accumulate (spec §7).
func WithDiags[T any](v T, diags []diag.Diagnostic) WithError[T] {
	return WithError[T]{Value: v, Diags: diags}
}

// Err reports whether any accumulated diagnostic is error-severity.
func (r WithError[T]) Err() bool {
	for _, d := range r.Diags {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}
