// Package tui implements C14, the optional `toxc check --interactive`
// diagnostic browser: a paged list view over a diag.Bag, grounded in the
// teacher's internal/ui progress model but built on bubbles/list instead
// of a one-shot progress bar, since browsing is stateful/navigable rather
// than a single forward-moving pipeline.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toxc/internal/diag"
	"toxc/internal/source"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

type item struct {
	diag.Diagnostic
	path string
	line uint32
	col  uint32
}

func (i item) Title() string {
	style := warningStyle
	if i.Severity == diag.SevError {
		style = errorStyle
	}
	return fmt.Sprintf("%s %s:%d:%d  %s", style.Render(i.Severity.String()), i.path, i.line, i.col, i.Code.String())
}

func (i item) Description() string { return i.Message }
func (i item) FilterValue() string  { return i.path + " " + i.Message }

// Model is the bubbletea model backing the diagnostic browser.
type Model struct {
	list list.Model
}

// NewModel builds a browser over every diagnostic in bag, resolved to
// display paths/positions via fs.
func NewModel(bag *diag.Bag, fs *source.FileSet) Model {
	items := make([]list.Item, 0, bag.Len())
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		items = append(items, item{Diagnostic: d, path: f.FormatPath("auto", fs.BaseDir()), line: start.Line, col: start.Col})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "toxc diagnostics"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return Model{list: l}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(detailStyle.Render("↑/↓ navigate · / filter · q quit"))
	return b.String()
}
