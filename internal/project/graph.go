// Package project implements C6, the Module Graph Builder: it turns each
// file's `mod` declarations into edges of a FileId -> NameId -> FileId
// graph, applying the sibling-file-vs-subdirectory resolution table of
// spec §4.6. Grounded in the teacher's internal/project/dag package, whose
// plain edge-list-of-ids shape (rather than the original Rust's nested
// HashMap) this mirrors.
package project

import (
	"os"
	"path/filepath"
	"strings"

	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/source"
)

// Graph is the module graph: every file that participates (as a declarer
// or a target) is a node; edges carry the `mod` name that produced them.
// A node with no outgoing edges still gets an empty map so lookups never
// nil-panic (spec §4.6: "initialized to an empty edge map").
type Graph struct {
	Nodes map[source.FileID]struct{}
	Edges map[source.FileID]map[ir.NameId]source.FileID
}

// NewGraph creates an empty module graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[source.FileID]struct{}),
		Edges: make(map[source.FileID]map[ir.NameId]source.FileID),
	}
}

func (g *Graph) ensure(f source.FileID) {
	g.Nodes[f] = struct{}{}
	if g.Edges[f] == nil {
		g.Edges[f] = make(map[ir.NameId]source.FileID)
	}
}

func (g *Graph) addEdge(from source.FileID, name ir.NameId, to source.FileID) {
	g.ensure(from)
	g.ensure(to)
	g.Edges[from][name] = to
}

// Edge looks up the file a `mod name` declaration in from resolves to.
func (g *Graph) Edge(from source.FileID, name ir.NameId) (source.FileID, bool) {
	targets, ok := g.Edges[from]
	if !ok {
		return 0, false
	}
	to, ok := targets[name]
	return to, ok
}

// Reachable returns every file reachable from `from` by following `mod`
// edges, `from` included, visited in breadth-first discovery order
// (SPEC_FULL §4.6's additive helper; no CLI command calls it).
func (g *Graph) Reachable(from source.FileID) []source.FileID {
	seen := map[source.FileID]bool{from: true}
	order := []source.FileID{from}
	queue := []source.FileID{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, to := range g.Edges[cur] {
			if seen[to] {
				continue
			}
			seen[to] = true
			order = append(order, to)
			queue = append(queue, to)
		}
	}
	return order
}

// Builder incrementally builds a Graph one file at a time, loading sibling
// and subdirectory candidate files through a FileSet as `mod` declarations
// demand them.
type Builder struct {
	Graph *Graph
	Files *source.FileSet
	Names *ir.Interners
}

// NewBuilder creates a Builder writing into a fresh Graph.
func NewBuilder(files *source.FileSet, names *ir.Interners) *Builder {
	return &Builder{Graph: NewGraph(), Files: files, Names: names}
}

// AddFile resolves every `mod` declaration in sf, inserting edges into the
// graph and loading newly discovered files, per the resolution table of
// spec §4.6. It returns the diagnostics produced for unresolved modules;
// AddFile itself is not recursive — the driver (C10) calls it again for
// each newly loaded file.
func (b *Builder) AddFile(sf *ir.SourceFile) []diag.Diagnostic {
	b.Graph.ensure(sf.File)
	var diags []diag.Diagnostic
	path := b.Files.Path(sf.File)
	dir := filepath.Dir(path)

	for _, m := range sf.Modules {
		name := string(b.Names.LookupName(m.Name))
		target, d := b.resolve(dir, path, name, m.Span)
		if d != nil {
			diags = append(diags, *d)
			continue
		}
		b.Graph.addEdge(sf.File, m.Name, target)
	}
	return diags
}

// resolve implements the spec §4.6 resolution table for one `mod name`
// declaration found in the file at declaringPath (directory dir).
func (b *Builder) resolve(dir, declaringPath, name string, span source.Span) (source.FileID, *diag.Diagnostic) {
	sibling := filepath.Join(dir, name+".tox")
	subdir := filepath.Join(dir, name, name+".tox")

	siblingExists := fileExists(sibling)
	subdirExists := fileExists(subdir)
	differs := normalize(declaringPath) != normalize(sibling)

	switch {
	case !siblingExists && !subdirExists:
		d := diag.NewError(diag.ModuleUnresolved, span, "unresolved module "+name)
		return 0, &d

	case siblingExists && !subdirExists && differs:
		return b.load(sibling), nil

	case siblingExists && !subdirExists && !differs:
		d := diag.NewError(diag.ModuleMissingSubdir, span, "sub-module folder for "+name+" is missing")
		return 0, &d

	case !siblingExists && subdirExists:
		return b.load(subdir), nil

	case siblingExists && subdirExists:
		// subdir wins whenever it exists, whether or not the declaring
		// file differs from the sibling candidate (spec §4.6 table).
		return b.load(subdir), nil

	default:
		d := diag.NewError(diag.ModuleUnresolved, span, "unresolved module "+name)
		return 0, &d
	}
}

func (b *Builder) load(path string) source.FileID {
	if id, ok := b.Files.GetLatest(path); ok {
		return id
	}
	id, err := b.Files.Load(path)
	if err != nil {
		return b.Files.AddVirtual(path, nil)
	}
	return id
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func normalize(p string) string {
	return filepath.ToSlash(strings.TrimSuffix(filepath.Clean(p), ""))
}
