package lower_test

import (
	"testing"

	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/lexer"
	"toxc/internal/lower"
	"toxc/internal/parser"
	"toxc/internal/source"
)

func lowerSource(t *testing.T, src string) (*ir.SourceFile, []diag.Diagnostic, *ir.Interners) {
	t.Helper()
	fset := source.NewFileSet()
	fileID := fset.AddVirtual("test.tox", []byte(src))
	strs := source.NewInterner()
	irs := ir.NewInterners()
	bag := diag.NewBag()
	reporter := &diag.BagReporter{Bag: bag}

	file := fset.Get(fileID)
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.ParseFile(fileID, lx, strs, reporter)
	sf := lower.File(res.Tree, res.File, fileID, strs, irs, reporter)
	return sf, bag.Items(), irs
}

// Quantified invariant (spec §8): every ExprId/StmtId reachable from a
// function's body block is present as a key in its own AstMap.
func TestEveryReferencedExprIsInTheAstMap(t *testing.T) {
	sf, _, _ := lowerSource(t, "fn main() { let a = 1 + 2; while a { a; } }\n")
	if len(sf.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(sf.Functions))
	}
	fn := sf.Functions[0]
	if fn.AstMap == nil {
		t.Fatalf("expected a non-nil AstMap")
	}

	var walkExpr func(id ir.ExprId)
	var walkStmt func(id ir.StmtId)

	walkExpr = func(id ir.ExprId) {
		if int(id) >= len(fn.AstMap.Exprs) {
			t.Fatalf("expr id %d referenced but missing from AstMap (len=%d)", id, len(fn.AstMap.Exprs))
		}
		e := fn.AstMap.Expr(id)
		switch e.Kind {
		case ir.ExprBinary:
			walkExpr(e.Lhs)
			walkExpr(e.Rhs)
		case ir.ExprWhile:
			walkExpr(e.Cond)
			blk := fn.AstMap.BlockOf(e.Block)
			for _, sid := range blk.Stmts {
				walkStmt(sid)
			}
		case ir.ExprIdent:
			// leaf
		}
	}
	walkStmt = func(id ir.StmtId) {
		if int(id) >= len(fn.AstMap.Stmts) {
			t.Fatalf("stmt id %d referenced but missing from AstMap (len=%d)", id, len(fn.AstMap.Stmts))
		}
		s := fn.AstMap.Stmt(id)
		if s.Kind == ir.StmtLet {
			walkExpr(s.Initializer)
		} else {
			walkExpr(s.Expr)
		}
	}

	if len(fn.AstMap.Blocks) == 0 {
		t.Fatalf("expected at least one block")
	}
	body := fn.AstMap.BlockOf(fn.Body)
	for _, sid := range body.Stmts {
		walkStmt(sid)
	}
}

func TestEmptyFileLowersToEmptySourceFile(t *testing.T) {
	sf, diags, _ := lowerSource(t, "")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
	if len(sf.Functions) != 0 || len(sf.Classes) != 0 || len(sf.Enums) != 0 || len(sf.Imports) != 0 || len(sf.Modules) != 0 {
		t.Fatalf("expected an entirely empty IR, got %+v", sf)
	}
}

func TestFunctionWithoutBodyIsADeclaration(t *testing.T) {
	sf, diags, _ := lowerSource(t, "fn extern_thing() -> i32;\n")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
	if len(sf.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(sf.Functions))
	}
	fn := sf.Functions[0]
	if fn.AstMap != nil && len(fn.AstMap.Blocks) != 0 {
		t.Fatalf("expected a bodyless function to have no blocks, got %d", len(fn.AstMap.Blocks))
	}
}

func TestArrayTypeWithoutSizeIsDynamic(t *testing.T) {
	sf, diags, irs := lowerSource(t, "type Alias = [i32];\n")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
	if len(sf.TypeAlias) != 1 {
		t.Fatalf("expected one type alias, got %d", len(sf.TypeAlias))
	}
	ty := irs.LookupType(sf.TypeAlias[0].Ty)
	if ty.Kind != ir.TypeArray || ty.HasSize {
		t.Fatalf("expected a dynamically sized array type, got %+v", ty)
	}
}
