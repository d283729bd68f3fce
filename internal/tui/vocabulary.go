package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuivoc/internal/vocab"
)

func (m *Model) updateVocabulary(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
	case "right", "l":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case "up", "k":
		m.selected = moveVertical(m.chipLines(), m.selected, -1)
	case "down", "j":
		m.selected = moveVertical(m.chipLines(), m.selected, 1)
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = maxInt(0, len(m.entries)-1)
	case "enter":
		m.markSelectedKnown()
	case "o":
		return m.startPrompt(promptOpen, "Open: ", strings.Join(m.documents, " "))
	}
	return nil
}

func (m *Model) markSelectedKnown() {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return
	}
	word := m.entries[m.selected].Word
	if _, err := m.known.Add(m.ctx, word); err != nil {
		m.setError(fmt.Errorf("failed to save known words: %w", err))
	} else {
		m.setStatus("%s marked known", word)
	}
	m.knownChanged()
}

// loadDocuments expands and extracts the given paths. On failure the
// current documents and ranking are kept.
func (m *Model) loadDocuments(patterns []string) error {
	freqs, paths, err := m.opts.Extractor.ExtractDocuments(patterns)
	if err != nil {
		return err
	}
	m.documents = paths
	m.freqs = freqs
	m.selected = 0
	m.rerank()
	m.setStatus("%d documents, %d distinct tokens", len(paths), freqs.Len())
	m.logger.Info("documents extracted", "documents", len(paths), "tokens", freqs.Total())
	return nil
}

func (m *Model) rerank() {
	m.entries = vocab.Rank(m.freqs, m.known, m.opts.Limit)
	if m.selected >= len(m.entries) {
		m.selected = maxInt(0, len(m.entries)-1)
	}
}

func (m *Model) watchDocuments() tea.Cmd {
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.logger.Warn("failed to close document watcher", "error", err)
		}
		m.watcher = nil
	}
	if !m.opts.Watch || len(m.documents) == 0 {
		return nil
	}
	w, err := vocab.NewWatcher(m.documents, watchDebounce, m.logger)
	if err != nil {
		m.setError(fmt.Errorf("failed to watch documents: %w", err))
		return nil
	}
	w.Start(m.ctx)
	m.watcher = w
	return waitForChanges(w.Changes())
}

func (m *Model) handleDocumentsChanged(msg documentsChangedMsg) tea.Cmd {
	if m.watcher == nil || msg.source != m.watcher.Changes() {
		return nil
	}
	m.logger.Debug("documents changed", "paths", msg.paths)
	freqs, _, err := m.opts.Extractor.ExtractDocuments(m.documents)
	if err != nil {
		m.setError(err)
	} else {
		m.freqs = freqs
		m.rerank()
		m.setStatus("reloaded %d changed documents", len(msg.paths))
	}
	return waitForChanges(m.watcher.Changes())
}

func (m *Model) chipLines() [][]int {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return layoutChips(buildChips(m.entries, m.selected), width)
}

func (m *Model) renderVocabulary(height int) string {
	if len(m.entries) == 0 {
		if len(m.documents) == 0 {
			return mutedStyle.Render("No documents. Press o to open a file or glob.")
		}
		return mutedStyle.Render("No new words.")
	}
	chips := buildChips(m.entries, m.selected)
	width := m.width
	if width <= 0 {
		width = 80
	}
	lines := layoutChips(chips, width)
	rendered := renderChipLines(chips, lines)
	start := lineOf(lines, m.selected) - height + 1
	if start < 0 {
		start = 0
	}
	end := minInt(len(rendered), start+height)
	return strings.Join(rendered[start:end], "\n")
}
