package symbols

import (
	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/project"
	"toxc/internal/source"
)

// ResolveImport implements C9 for one lowered `use` declaration: it walks
// the module graph from fileID through every non-terminal path segment,
// then checks the terminal leaf name(s) — either a brace group or the
// path's own last segment — against the target file's export table
// (spec §4.9).
func ResolveImport(graph *project.Graph, tables map[source.FileID]*FileTable, irs *ir.Interners, fileID source.FileID, imp *ir.Import) (map[ir.NameId]ImportedSymbol, []diag.Diagnostic) {
	if len(imp.Segments) == 0 {
		return nil, nil
	}

	segs := imp.Segments
	last := segs[len(segs)-1]

	var nonTerminal, leaves []ir.Segment
	if len(last.Nested) > 0 {
		nonTerminal = segs
		leaves = last.Nested
	} else if len(segs) >= 2 {
		nonTerminal = segs[:len(segs)-1]
		leaves = []ir.Segment{last}
	} else {
		return nil, []diag.Diagnostic{diag.NewError(diag.ImportUnresolvedPath, last.Span,
			"malformed import path "+string(irs.LookupName(last.Name)))}
	}

	var diags []diag.Diagnostic
	cur := fileID
	pathText := ""
	for _, seg := range nonTerminal {
		pathText += string(irs.LookupName(seg.Name))
		next, ok := graph.Edge(cur, seg.Name)
		if !ok {
			diags = append(diags, diag.NewError(diag.ImportUnresolvedPath, seg.Span,
				"unresolved import "+pathText))
			return nil, diags
		}
		cur = next
		pathText += "::"
	}

	target := tables[cur]
	if target == nil {
		return nil, append(diags, diag.NewError(diag.ImportUnresolvedPath, last.Span,
			"unresolved import "+pathText))
	}

	imported := make(map[ir.NameId]ImportedSymbol, len(leaves))
	for _, leaf := range leaves {
		entry, ok := target.Exports[leaf.Name]
		if !ok {
			diags = append(diags, diag.NewError(diag.ImportUnresolvedLeaf, leaf.Span,
				"couldn't find the import "+pathText+string(irs.LookupName(leaf.Name))))
			continue
		}
		imported[leaf.Name] = ImportedSymbol{Kind: entry.Kind, TypeParams: entry.TypeParams, Span: entry.Span}
	}
	return imported, diags
}
