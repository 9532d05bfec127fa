package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toxc/internal/diag"
	"toxc/internal/diagfmt"
	"toxc/internal/source"
)

func colorEnabled(cmd *cobra.Command, w *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return isTerminal(w), nil
	}
}

// renderDiagnostics prints bag to stderr using the format selected by
// --format (an empty format selects the pretty terminal renderer; any
// other unknown format is an error).
func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	bag.Sort()

	format, err := cmd.Root().PersistentFlags().GetString("format")
	if err != nil {
		return err
	}
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return diagfmt.JSON(os.Stderr, bag, fs, diagfmt.EncodeOpts{Max: maxDiags})
	case "msgpack":
		return diagfmt.Msgpack(os.Stderr, bag, fs, diagfmt.EncodeOpts{Max: maxDiags})
	case "pretty", "":
		useColor, err := colorEnabled(cmd, os.Stderr)
		if err != nil {
			return err
		}
		items := bag.Items()
		if maxDiags > 0 && len(items) > maxDiags {
			trimmed := diag.NewBag()
			for _, d := range items[:maxDiags] {
				trimmed.Add(d)
			}
			bag = trimmed
		}
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{Color: useColor, Context: 2})
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
