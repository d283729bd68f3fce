package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuivoc/internal/known"
)

func newKnownTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{{Title: "Known word", Width: 30}}),
		table.WithHeight(10),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(lipgloss.Color("#C89A3A")).
		Bold(false)
	t.SetStyles(styles)
	return t
}

func (m *Model) refreshKnownTable() {
	words := m.known.Words()
	sort.Strings(words)
	rows := make([]table.Row, len(words))
	for i, word := range words {
		rows[i] = table.Row{word}
	}
	m.knownTable.SetRows(rows)
	if cursor := m.knownTable.Cursor(); cursor >= len(rows) {
		m.knownTable.SetCursor(maxInt(0, len(rows)-1))
	}
}

func (m *Model) updateKnown(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.removeSelectedKnown()
		return nil
	case "i":
		return m.startPrompt(promptImport, "Import JSON: ", "")
	case "e":
		m.exportKnown(time.Now())
		return nil
	case "X":
		if m.known.Len() > 0 {
			m.confirmClear = true
		}
		return nil
	}
	var cmd tea.Cmd
	m.knownTable, cmd = m.knownTable.Update(msg)
	return cmd
}

func (m *Model) removeSelectedKnown() {
	row := m.knownTable.SelectedRow()
	if len(row) == 0 {
		return
	}
	if _, err := m.known.Remove(m.ctx, row[0]); err != nil {
		m.setError(fmt.Errorf("failed to save known words: %w", err))
	} else {
		m.setStatus("%s removed", row[0])
	}
	m.knownChanged()
}

func (m *Model) importKnown(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	added, err := m.known.Import(m.ctx, data)
	m.knownChanged()
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}
	m.setStatus("imported %d new words", added)
	return nil
}

func (m *Model) exportKnown(now time.Time) {
	data, err := m.known.Export()
	if err != nil {
		m.setError(err)
		return
	}
	dir := m.opts.ExportDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, known.ExportFileName(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		m.setError(fmt.Errorf("failed to export: %w", err))
		return
	}
	m.setStatus("exported %d words to %s", m.known.Len(), path)
}

func (m *Model) updateConfirmClear(msg tea.KeyMsg) {
	m.confirmClear = false
	if msg.String() != "y" {
		m.setStatus("clear cancelled")
		return
	}
	if err := m.known.Clear(m.ctx); err != nil {
		m.setError(fmt.Errorf("failed to save known words: %w", err))
	} else {
		m.setStatus("known words cleared")
	}
	m.knownChanged()
}

func (m *Model) renderKnown() string {
	if m.known.Len() == 0 {
		return mutedStyle.Render("No known words. Mark words on the Vocabulary tab or press i to import.")
	}
	return m.knownTable.View()
}
