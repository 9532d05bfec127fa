package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"toxc/internal/diag"
	"toxc/internal/source"
	"toxc/internal/tui"
)

// browseDiagnostics hands bag off to the C14 interactive browser instead
// of printing it (SPEC_FULL §4.10 `--interactive`).
func browseDiagnostics(bag *diag.Bag, fs *source.FileSet) error {
	bag.Sort()
	program := tea.NewProgram(tui.NewModel(bag, fs))
	_, err := program.Run()
	return err
}
