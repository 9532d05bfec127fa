package diag

// Code is a stable, greppable identifier for a diagnostic kind, grouped by
// the component that raises it (spec §7 error taxonomy). Numbering leaves
// room between groups for growth, matching the teacher's banded scheme.
type Code uint16

const (
	UnknownCode Code = 0

	// IO — C3 file store failures.
	IOReadFailed Code = 1000

	// Lex — C11 lexer failures.
	LexUnterminatedString Code = 1100
	LexUnknownChar        Code = 1101
	LexBadNumber          Code = 1102
	LexTokenTooLong       Code = 1103

	// Parse — C11 parser failures.
	ParseUnexpectedToken Code = 1200

	// Lower — C5 AST->IR lowering failures.
	LowerUnsupportedToken Code = 2000

	// Resolve — class/enum declaration failures (SPEC_FULL §3).
	ResolveDuplicateVariant     Code = 5100
	ResolveDuplicateClassMethod Code = 5101

	// Module — C6 module graph resolution failures.
	ModuleUnresolved    Code = 3000
	ModuleMissingSubdir Code = 3001

	// Export — C7 export-table failures.
	ExportDuplicateName Code = 4000

	// Resolve — C8 name/type/pattern resolution diagnostics.
	ResolveDuplicateField      Code = 5000
	ResolveUndefinedType       Code = 5001
	ResolveTypeArityMismatch   Code = 5002
	ResolveUndefinedVariable   Code = 5003
	ResolveSelfReferentialInit Code = 5004
	ResolveShadowedBinding     Code = 5005 // warning
	ResolveUnusedVariable      Code = 5006 // warning
	ResolveCallArityMismatch   Code = 5007

	// Import — C9 import resolution failures.
	ImportUnresolvedPath Code = 6000
	ImportUnresolvedLeaf Code = 6001

	// Query — C4 engine-internal failures.
	QueryCycle Code = 7000
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "UNKNOWN"
	case IOReadFailed:
		return "IO1000"
	case LexUnterminatedString:
		return "LEX1100"
	case LexUnknownChar:
		return "LEX1101"
	case LexBadNumber:
		return "LEX1102"
	case LexTokenTooLong:
		return "LEX1103"
	case ParseUnexpectedToken:
		return "PARSE1200"
	case LowerUnsupportedToken:
		return "LOWER2000"
	case ResolveDuplicateVariant:
		return "RES5100"
	case ResolveDuplicateClassMethod:
		return "RES5101"
	case ModuleUnresolved:
		return "MOD3000"
	case ModuleMissingSubdir:
		return "MOD3001"
	case ExportDuplicateName:
		return "EXPORT4000"
	case ResolveDuplicateField:
		return "RES5000"
	case ResolveUndefinedType:
		return "RES5001"
	case ResolveTypeArityMismatch:
		return "RES5002"
	case ResolveUndefinedVariable:
		return "RES5003"
	case ResolveSelfReferentialInit:
		return "RES5004"
	case ResolveShadowedBinding:
		return "RES5005"
	case ResolveUnusedVariable:
		return "RES5006"
	case ResolveCallArityMismatch:
		return "RES5007"
	case ImportUnresolvedPath:
		return "IMPORT6000"
	case ImportUnresolvedLeaf:
		return "IMPORT6001"
	case QueryCycle:
		return "QUERY7000"
	default:
		return "UNKNOWN"
	}
}
