package symbols

import "toxc/internal/ir"

// builtinTypeArity lists the primitive and standard-library type names
// every `resolve_type` call treats as already in scope, independent of
// what any file declares — grounded in
// original_source/semant/src/infer/ctx.rs's `Ctx::new`, which seeds the
// same names (plus `Result`, a two-type-parameter enum) into the type
// context consulted by the original resolver's own `resolve_type`
// (original_source/semant/src/resolver/data.rs). Without this seed, any
// program using `i32`/`bool`/etc. as a type annotation would spuriously
// fail with "use of undefined type" — including spec.md's own §8 scenario
// 4 example (`fn id<T>(x:T) -> T { x }`, called as `id<i32, i32>`).
var builtinTypeArity = map[ir.Name]int{
	"i32":    0,
	"f32":    0,
	"bool":   0,
	"void":   0,
	"string": 0,
	"Result": 2,
}

// internBuiltinTypes interns every builtin type name into irs (so the
// names are allocated whether or not any file mentions them) and returns
// the NameId -> arity map a resolver consults before falling back to
// "undefined type".
func internBuiltinTypes(irs *ir.Interners) map[ir.NameId]int {
	out := make(map[ir.NameId]int, len(builtinTypeArity))
	for name, arity := range builtinTypeArity {
		out[irs.InternName(name)] = arity
	}
	return out
}
