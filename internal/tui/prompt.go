package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type promptKind int

const (
	promptOpen promptKind = iota
	promptImport
	promptDuration
	promptInterval
)

type prompt struct {
	kind  promptKind
	input textinput.Model
}

func (m *Model) startPrompt(kind promptKind, label, value string) tea.Cmd {
	input := textinput.New()
	input.Prompt = label
	input.CharLimit = 0
	input.SetValue(value)
	if m.width > 0 {
		input.Width = maxInt(10, m.width-lipgloss.Width(label)-2)
	}
	m.prompt = &prompt{kind: kind, input: input}
	return m.prompt.input.Focus()
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt = nil
		return nil
	case tea.KeyEnter:
		p := m.prompt
		m.prompt = nil
		return m.applyPrompt(p.kind, p.input.Value())
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return cmd
}

func (m *Model) applyPrompt(kind promptKind, value string) tea.Cmd {
	switch kind {
	case promptOpen:
		patterns := strings.Fields(value)
		if len(patterns) == 0 {
			return nil
		}
		if err := m.loadDocuments(patterns); err != nil {
			m.setError(err)
			return nil
		}
		return m.watchDocuments()
	case promptImport:
		path := strings.TrimSpace(value)
		if path == "" {
			return nil
		}
		if err := m.importKnown(path); err != nil {
			m.setError(err)
		}
	case promptDuration:
		d, err := parseDuration(value)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.duration = d
	case promptInterval:
		n, err := parseInterval(value)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.interval = n
	}
	return nil
}
