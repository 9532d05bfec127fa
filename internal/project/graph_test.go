package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"toxc/internal/ir"
	"toxc/internal/project"
	"toxc/internal/source"
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

func TestResolveSiblingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.tox"), "mod utils;\n")
	writeFile(t, filepath.Join(dir, "utils.tox"), "fn noop() {}\n")

	fset := source.NewFileSet()
	mainID, err := fset.Load(filepath.Join(dir, "main.tox"))
	if err != nil {
		t.Fatalf("load main: %v", err)
	}

	irs := ir.NewInterners()
	b := project.NewBuilder(fset, irs)
	sf := &ir.SourceFile{
		File: mainID,
		Modules: []ir.Module{{
			Name: irs.InternName("utils"),
			File: mainID,
		}},
	}
	diags := b.AddFile(sf)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}

	target, ok := b.Graph.Edge(mainID, irs.InternName("utils"))
	if !ok {
		t.Fatalf("expected an edge for utils")
	}
	if filepath.Base(fset.Path(target)) != "utils.tox" {
		t.Fatalf("expected utils.tox, got %s", fset.Path(target))
	}
}

func TestResolveSubdirWinsWhenBothExist(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.tox"), "mod shapes;\n")
	writeFile(t, filepath.Join(dir, "shapes.tox"), "fn noop() {}\n")
	writeFile(t, filepath.Join(dir, "shapes", "shapes.tox"), "fn circle() {}\n")

	fset := source.NewFileSet()
	mainID, err := fset.Load(filepath.Join(dir, "main.tox"))
	if err != nil {
		t.Fatalf("load main: %v", err)
	}

	irs := ir.NewInterners()
	b := project.NewBuilder(fset, irs)
	sf := &ir.SourceFile{
		File:    mainID,
		Modules: []ir.Module{{Name: irs.InternName("shapes"), File: mainID}},
	}
	diags := b.AddFile(sf)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	target, ok := b.Graph.Edge(mainID, irs.InternName("shapes"))
	if !ok {
		t.Fatalf("expected an edge for shapes")
	}
	if got := filepath.ToSlash(fset.Path(target)); got == "" || filepath.Base(got) != "shapes.tox" || filepath.Base(filepath.Dir(got)) != "shapes" {
		t.Fatalf("expected shapes/shapes.tox, got %s", got)
	}
}

func TestResolveUnresolvedModuleErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.tox"), "mod ghost;\n")

	fset := source.NewFileSet()
	mainID, err := fset.Load(filepath.Join(dir, "main.tox"))
	if err != nil {
		t.Fatalf("load main: %v", err)
	}
	irs := ir.NewInterners()
	b := project.NewBuilder(fset, irs)
	sf := &ir.SourceFile{
		File:    mainID,
		Modules: []ir.Module{{Name: irs.InternName("ghost"), File: mainID}},
	}
	diags := b.AddFile(sf)
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(diags))
	}
}

func TestReachableVisitsTransitiveModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.tox"), "mod b;\n")
	writeFile(t, filepath.Join(dir, "b.tox"), "mod c;\n")
	writeFile(t, filepath.Join(dir, "c.tox"), "fn leaf() {}\n")

	fset := source.NewFileSet()
	irs := ir.NewInterners()
	b := project.NewBuilder(fset, irs)

	aID, _ := fset.Load(filepath.Join(dir, "a.tox"))
	b.AddFile(&ir.SourceFile{File: aID, Modules: []ir.Module{{Name: irs.InternName("b"), File: aID}}})

	bID, ok := b.Graph.Edge(aID, irs.InternName("b"))
	if !ok {
		t.Fatalf("expected edge a -> b")
	}
	b.AddFile(&ir.SourceFile{File: bID, Modules: []ir.Module{{Name: irs.InternName("c"), File: bID}}})

	reach := b.Graph.Reachable(aID)
	if len(reach) != 3 {
		t.Fatalf("expected 3 reachable files, got %d", len(reach))
	}
}
