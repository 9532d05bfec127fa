package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"toxc/internal/ir"
)

// irSummary is what `toxc parse` dumps — a thin projection of a lowered
// file's top-level items, since full IR pretty-printing is out of scope
// for this adapter layer (SPEC_FULL §1: C11 "produces a span-carrying
// AST" is the only contract it owes spec §8).
type irSummary struct {
	Imports   int      `json:"imports"`
	Modules   []string `json:"modules"`
	Functions []string `json:"functions"`
	Classes   []string `json:"classes"`
	Enums     []string `json:"enums"`
	TypeAlias []string `json:"type_aliases"`
}

func summarize(sf *ir.SourceFile, irs *ir.Interners) irSummary {
	s := irSummary{Imports: len(sf.Imports)}
	for _, m := range sf.Modules {
		s.Modules = append(s.Modules, string(irs.LookupName(m.Name)))
	}
	for _, fn := range sf.Functions {
		s.Functions = append(s.Functions, string(irs.LookupName(fn.Name)))
	}
	for _, c := range sf.Classes {
		s.Classes = append(s.Classes, string(irs.LookupName(c.Name)))
	}
	for _, e := range sf.Enums {
		s.Enums = append(s.Enums, string(irs.LookupName(e.Name)))
	}
	for _, a := range sf.TypeAlias {
		s.TypeAlias = append(s.TypeAlias, string(irs.LookupName(a.Name)))
	}
	return s
}

// FormatIRPretty prints a lowered file's top-level shape.
func FormatIRPretty(w io.Writer, sf *ir.SourceFile, irs *ir.Interners) error {
	s := summarize(sf, irs)
	if _, err := fmt.Fprintf(w, "imports: %d\n", s.Imports); err != nil {
		return err
	}
	for label, names := range map[string][]string{
		"mod":   s.Modules,
		"fn":    s.Functions,
		"class": s.Classes,
		"enum":  s.Enums,
		"type":  s.TypeAlias,
	} {
		for _, n := range names {
			if _, err := fmt.Fprintf(w, "%s %s\n", label, n); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatIRJSON prints a lowered file's top-level shape as JSON.
func FormatIRJSON(w io.Writer, sf *ir.SourceFile, irs *ir.Interners) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summarize(sf, irs))
}
