// Command toxc is the compiler front-end's CLI: tox.toml-aware project
// checking plus standalone lexer/parser debugging entry points (SPEC_FULL
// §4.10, C13), modeled on the teacher's cmd/surge.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "toxc",
	Short: "tox language compiler front-end",
	Long:  `toxc interns, lowers, and resolves tox source trees, reporting structured diagnostics.`,
}

func main() {
	rootCmd.Version = versionString()
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "pretty", "diagnostic output format (pretty|json|msgpack)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = unlimited)")
	rootCmd.PersistentFlags().Bool("interactive", false, "browse diagnostics in an interactive TUI instead of printing them")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
