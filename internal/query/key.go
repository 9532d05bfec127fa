package query

// Kind identifies which of the pipeline's query functions a Key addresses
// (spec §4.4's named query list: parse, lower, lower_function, ...).
type Kind uint8

const (
	Parse Kind = iota
	Lower
	LowerFunction
	LowerModule
	LowerImport
	LowerTypeAlias
	ModuleGraph
	ResolveModules
	ResolveExports
	ResolveImport
	ResolveSourceFile
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse"
	case Lower:
		return "lower"
	case LowerFunction:
		return "lower_function"
	case LowerModule:
		return "lower_module"
	case LowerImport:
		return "lower_import"
	case LowerTypeAlias:
		return "lower_type_alias"
	case ModuleGraph:
		return "module_graph"
	case ResolveModules:
		return "resolve_modules"
	case ResolveExports:
		return "resolve_exports"
	case ResolveImport:
		return "resolve_import"
	case ResolveSourceFile:
		return "resolve_source_file"
	default:
		return "unknown"
	}
}

// Key identifies one memoized query call: a Kind plus up to two id-sized
// arguments (e.g. (Lower, FileID) or (LowerFunction, FileID, FunctionId) —
// spec §4.4 "key is any comparable tuple of ids"). Key is a plain
// comparable struct so it can be used directly as a map key.
type Key struct {
	Kind Kind
	A    uint64
	B    uint64
}

// Of1 builds a Key from one id-like value.
func Of1[A ~uint32](kind Kind, a A) Key {
	return Key{Kind: kind, A: uint64(a)}
}

// Of2 builds a Key from two id-like values.
func Of2[A, B ~uint32](kind Kind, a A, b B) Key {
	return Key{Kind: kind, A: uint64(a), B: uint64(b)}
}
