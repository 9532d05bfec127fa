package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"toxc/internal/diag"
	"toxc/internal/driver"
	"toxc/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "resolve a tox source tree and report diagnostics",
	Long: `check runs the full front-end pipeline (lower, build the module graph,
resolve imports and names) over a single file or, for a directory, the
tree reachable from its tox.toml [run].main entry point.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	entry, err := resolveEntryPoint(target)
	if err != nil {
		return err
	}

	d := driver.New()
	fileID, err := d.Files.Load(entry)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", entry, err)
	}

	results := d.ResolveTree(fileID)

	bag := diag.NewBag()
	for _, r := range results {
		for _, dg := range r.Diags {
			bag.Add(dg)
		}
	}

	interactive, err := cmd.Root().PersistentFlags().GetBool("interactive")
	if err != nil {
		return err
	}
	if interactive && bag.Len() > 0 {
		return browseDiagnostics(bag, d.Files)
	}

	if bag.Len() > 0 {
		if err := renderDiagnostics(cmd, bag, d.Files); err != nil {
			return err
		}
	}

	if driver.HasErrors(results) {
		os.Exit(1)
	}
	return nil
}

// resolveEntryPoint turns a CLI path argument into a concrete source file:
// a direct file path is used as-is; a directory (or the implicit ".")
// looks for tox.toml and follows its [run].main (SPEC_FULL §4.10).
func resolveEntryPoint(target string) (string, error) {
	st, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", target, err)
	}
	if !st.IsDir() {
		return target, nil
	}

	manifest, ok, err := project.LoadManifest(target)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s: no tox.toml found; pass an explicit file", filepath.Clean(target))
	}
	return manifest.EntryPath(), nil
}
