// Package driver implements C10: it wires the lexer/parser adapter (C11),
// the lowerer (C5), the module graph builder (C6), the export table
// builder (C7), the name resolver (C8), and the import resolver (C9)
// into the single conceptual entry point spec §4.10 and §6 describe —
// resolve_source_file — memoized through the query engine (C4).
package driver

import (
	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/lexer"
	"toxc/internal/lower"
	"toxc/internal/parser"
	"toxc/internal/project"
	"toxc/internal/query"
	"toxc/internal/source"
	"toxc/internal/symbols"
)

// Driver owns every compilation-wide table a run of the front-end needs:
// the file store, the shared interners, the query cache, and the module
// graph being built up as files are discovered.
type Driver struct {
	Files   *source.FileSet
	Strs    *source.Interner
	IRs     *ir.Interners
	Queries *query.Engine
	Graph   *project.Builder

	tables  map[source.FileID]*symbols.FileTable
	lowered map[source.FileID]*ir.SourceFile
}

// New creates a Driver over a fresh FileSet.
func New() *Driver {
	files := source.NewFileSet()
	irs := ir.NewInterners()
	return &Driver{
		Files:   files,
		Strs:    source.NewInterner(),
		IRs:     irs,
		Queries: query.New(),
		Graph:   project.NewBuilder(files, irs),
		tables:  make(map[source.FileID]*symbols.FileTable),
		lowered: make(map[source.FileID]*ir.SourceFile),
	}
}

// FileResult is everything resolve_source_file produces for one file.
type FileResult struct {
	File  source.FileID
	SF    *ir.SourceFile
	Table *symbols.FileTable
	Diags []diag.Diagnostic
}

// Lower runs C11+C5 for fileID, memoized through the query engine under
// the Lower query kind.
func (d *Driver) Lower(fileID source.FileID) query.WithError[*ir.SourceFile] {
	key := query.Of1(query.Lower, fileID)
	return query.Get(d.Queries, key, func() query.WithError[*ir.SourceFile] {
		bag := diag.NewBag()
		reporter := &diag.BagReporter{Bag: bag}

		file := d.Files.Get(fileID)
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		res := parser.ParseFile(fileID, lx, d.Strs, reporter)
		sf := lower.File(res.Tree, res.File, fileID, d.Strs, d.IRs, reporter)
		return query.WithDiags(sf, bag.Items())
	})
}

// addFileToGraph runs C6 for sf, memoized through the query engine under the
// ModuleGraph query kind, so re-discovering the same tree (e.g. resolving
// the same root twice) does not re-stat the filesystem or re-diagnose the
// same unresolved modules (spec §4.4 "the second call must not re-execute
// cached sub-queries").
func (d *Driver) addFileToGraph(sf *ir.SourceFile) []diag.Diagnostic {
	key := query.Of1(query.ModuleGraph, sf.File)
	result := query.Get(d.Queries, key, func() query.WithError[struct{}] {
		return query.WithDiags(struct{}{}, d.Graph.AddFile(sf))
	})
	return result.Diags
}

// buildFileTable runs C7 for sf, memoized through the query engine under the
// ResolveExports query kind (spec §4.4 names resolve_exports(FileId) as a
// first-class memoized query).
func (d *Driver) buildFileTable(sf *ir.SourceFile) (*symbols.FileTable, []diag.Diagnostic) {
	key := query.Of1(query.ResolveExports, sf.File)
	result := query.Get(d.Queries, key, func() query.WithError[*symbols.FileTable] {
		table, diags := symbols.BuildFileTable(sf)
		return query.WithDiags(table, diags)
	})
	return result.Value, result.Diags
}

// discover lowers fileID and every file transitively reachable from it
// through `mod` declarations, building each file's module-graph edges and
// export table along the way (C5, C6, C7). It runs to a fixed point
// before any import or name resolution starts, so by the time C9 needs a
// sibling's export table, every file in the tree already has one —
// regardless of which order the module graph happens to discover files
// in (spec §4.6/§4.10 don't mandate a particular visitation order).
func (d *Driver) discover(root source.FileID) ([]source.FileID, []diag.Diagnostic) {
	var order []source.FileID
	var diags []diag.Diagnostic
	visited := map[source.FileID]bool{}
	queue := []source.FileID{root}

	for len(queue) > 0 {
		fileID := queue[0]
		queue = queue[1:]
		if visited[fileID] {
			continue
		}
		visited[fileID] = true
		order = append(order, fileID)

		lowered := d.Lower(fileID)
		diags = append(diags, lowered.Diags...)
		sf := lowered.Value
		d.lowered[fileID] = sf

		diags = append(diags, d.addFileToGraph(sf)...)

		table, tableDiags := d.buildFileTable(sf)
		diags = append(diags, tableDiags...)
		d.tables[fileID] = table

		for _, child := range d.Graph.Graph.Edges[fileID] {
			if !visited[child] {
				queue = append(queue, child)
			}
		}
	}
	return order, diags
}

// ResolveSourceFile implements spec §4.10's pipeline for a single
// already-discovered file: resolve its imports against the now-complete
// table registry, then walk every function body (memoized per file under
// the ResolveSourceFile query kind).
func (d *Driver) ResolveSourceFile(fileID source.FileID) FileResult {
	key := query.Of1(query.ResolveSourceFile, fileID)
	return query.Get(d.Queries, key, func() FileResult {
		sf := d.lowered[fileID]
		table := d.tables[fileID]
		var diags []diag.Diagnostic

		imported := make(map[ir.NameId]symbols.ImportedSymbol)
		for _, imp := range sf.Imports {
			got, impDiags := symbols.ResolveImport(d.Graph.Graph, d.tables, d.IRs, fileID, &imp)
			diags = append(diags, impDiags...)
			for name, sym := range got {
				imported[name] = sym
			}
		}

		bag := diag.NewBag()
		reporter := &diag.BagReporter{Bag: bag}
		symbols.ResolveFile(d.IRs, reporter, fileID, table, imported, sf)
		diags = append(diags, bag.Items()...)

		return FileResult{File: fileID, SF: sf, Table: table, Diags: diags}
	})
}

// ResolveTree resolves root plus every file transitively reachable from it
// through `mod` declarations (spec §6 "toxc check <path>" over a module
// tree).
func (d *Driver) ResolveTree(root source.FileID) []FileResult {
	order, discoverDiags := d.discover(root)

	results := make([]FileResult, 0, len(order))
	for _, fileID := range order {
		results = append(results, d.ResolveSourceFile(fileID))
	}
	if len(discoverDiags) > 0 {
		results = append([]FileResult{{File: root, Diags: discoverDiags}}, results...)
	}
	return results
}

// HasErrors reports whether any FileResult in results carries an
// error-severity diagnostic (spec §4.10 "return failure iff any error
// severity was observed").
func HasErrors(results []FileResult) bool {
	for _, r := range results {
		for _, dg := range r.Diags {
			if dg.Severity == diag.SevError {
				return true
			}
		}
	}
	return false
}
