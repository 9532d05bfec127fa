package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"toxc/internal/diag"
	"toxc/internal/driver"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func checkSource(t *testing.T, src string) []diag.Diagnostic {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tox")
	writeFile(t, path, src)

	d := driver.New()
	fileID, err := d.Files.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	results := d.ResolveTree(fileID)
	var diags []diag.Diagnostic
	for _, r := range results {
		diags = append(diags, r.Diags...)
	}
	return diags
}

func errorsOf(diags []diag.Diagnostic) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range diags {
		if d.Severity == diag.SevError {
			out = append(out, d)
		}
	}
	return out
}

func warningsOf(diags []diag.Diagnostic) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range diags {
		if d.Severity == diag.SevWarning {
			out = append(out, d)
		}
	}
	return out
}

func TestEmptyFileIsOk(t *testing.T) {
	diags := checkSource(t, "")
	if len(errorsOf(diags)) != 0 {
		t.Fatalf("expected no errors for an empty file, got %+v", diags)
	}
}

// Scenario 1: duplicate fn.
func TestDuplicateFunctionIsOneError(t *testing.T) {
	diags := checkSource(t, "fn foo() {}\nfn foo() {}\n")
	errs := errorsOf(diags)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(errs), errs)
	}
}

// Scenario 2: self-reference in initializer.
func TestSelfReferenceInInitializerIsOneError(t *testing.T) {
	diags := checkSource(t, "fn main() { let a = a; }\n")
	errs := errorsOf(diags)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(errs), errs)
	}
	if errs[0].Code != diag.ResolveSelfReferentialInit {
		t.Fatalf("expected ResolveSelfReferentialInit, got %v", errs[0].Code)
	}
}

// Scenario 3: undefined type in alias.
func TestUndefinedTypeInAliasIsOneError(t *testing.T) {
	diags := checkSource(t, "type Alias = Missing;\n")
	errs := errorsOf(diags)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(errs), errs)
	}
	if errs[0].Code != diag.ResolveUndefinedType {
		t.Fatalf("expected ResolveUndefinedType, got %v", errs[0].Code)
	}
}

// Scenario 4: generic call arity mismatch.
func TestGenericCallArityMismatchIsOneError(t *testing.T) {
	diags := checkSource(t, "fn id<T>(x: T) -> T { x }\nfn main() { id<i32, i32>(1); }\n")
	errs := errorsOf(diags)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(errs), errs)
	}
	if errs[0].Code != diag.ResolveCallArityMismatch {
		t.Fatalf("expected ResolveCallArityMismatch, got %v", errs[0].Code)
	}
}

// Scenario 5: module not found.
func TestUnresolvedModuleIsOneError(t *testing.T) {
	diags := checkSource(t, "mod foo;\n")
	errs := errorsOf(diags)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(errs), errs)
	}
	if errs[0].Code != diag.ModuleUnresolved {
		t.Fatalf("expected ModuleUnresolved, got %v", errs[0].Code)
	}
}

// Scenario 6: cross-file import, first Ok then a missing leaf is an error.
func TestCrossFileImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.tox"), "pub fn hello() {}\n")
	writeFile(t, filepath.Join(dir, "main.tox"), "mod a;\nuse a::{hello};\n")

	d := driver.New()
	mainID, err := d.Files.Load(filepath.Join(dir, "main.tox"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	results := d.ResolveTree(mainID)
	var diags []diag.Diagnostic
	for _, r := range results {
		diags = append(diags, r.Diags...)
	}
	if errs := errorsOf(diags); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}

	writeFile(t, filepath.Join(dir, "main.tox"), "mod a;\nuse a::{hello, bye};\n")
	d2 := driver.New()
	mainID2, err := d2.Files.Load(filepath.Join(dir, "main.tox"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	results2 := d2.ResolveTree(mainID2)
	var diags2 []diag.Diagnostic
	for _, r := range results2 {
		diags2 = append(diags2, r.Diags...)
	}
	errs := errorsOf(diags2)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(errs), errs)
	}
	if errs[0].Code != diag.ImportUnresolvedLeaf {
		t.Fatalf("expected ImportUnresolvedLeaf, got %v", errs[0].Code)
	}
}

func TestUnusedVariableWarnsOnScopePop(t *testing.T) {
	diags := checkSource(t, "fn main() { let a = 1; }\n")
	warns := warningsOf(diags)
	if len(warns) != 1 || warns[0].Code != diag.ResolveUnusedVariable {
		t.Fatalf("expected exactly one unused-variable warning, got %+v", diags)
	}
}

func TestShadowingWarnsOnlyInSameScope(t *testing.T) {
	same := checkSource(t, "fn main() { let x = 1; let x = 2; x; }\n")
	sameWarns := warningsOf(same)
	found := false
	for _, w := range sameWarns {
		if w.Code == diag.ResolveShadowedBinding {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a shadowing warning for re-declaring x in the same scope, got %+v", same)
	}

	nested := checkSource(t, "fn main() { let x = 1; if x { let x = 2; x; } }\n")
	for _, w := range warningsOf(nested) {
		if w.Code == diag.ResolveShadowedBinding {
			t.Fatalf("did not expect a shadowing warning when the inner x is in a nested scope, got %+v", nested)
		}
	}
}

func TestDuplicateClassMethodIsAnErrorNotTopLevelCollision(t *testing.T) {
	diags := checkSource(t, "class Box { fn get() {} fn get() {} }\n")
	errs := errorsOf(diags)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(errs), errs)
	}
	if errs[0].Code != diag.ResolveDuplicateClassMethod {
		t.Fatalf("expected ResolveDuplicateClassMethod, got %v", errs[0].Code)
	}
}

func TestMethodsOfDifferentClassesDoNotCollide(t *testing.T) {
	diags := checkSource(t, "class Box { fn get() {} }\nclass Crate { fn get() {} }\n")
	if errs := errorsOf(diags); len(errs) != 0 {
		t.Fatalf("expected no errors, methods are scoped per class, got %+v", errs)
	}
}

func TestResolveTreeIsDeterministicAcrossRuns(t *testing.T) {
	src := "fn main() { let a = a; }\n"
	first := checkSource(t, src)
	second := checkSource(t, src)
	if len(first) != len(second) {
		t.Fatalf("expected identical diagnostic counts across independent runs, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Code != second[i].Code || first[i].Message != second[i].Message {
			t.Fatalf("expected byte-equal diagnostics across runs, got %+v vs %+v", first[i], second[i])
		}
	}
}

func TestResolveSourceFileIsMemoizedPerFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tox")
	writeFile(t, path, "fn main() {}\n")

	d := driver.New()
	fileID, err := d.Files.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d.ResolveTree(fileID)
	missesAfterFirst := d.Queries.Stats().Misses

	d.ResolveTree(fileID)
	if d.Queries.Stats().Misses != missesAfterFirst {
		t.Fatalf("expected the second ResolveTree to hit the cache entirely, misses grew from %d to %d",
			missesAfterFirst, d.Queries.Stats().Misses)
	}
}
