// Package tui provides the Bubble Tea vocabulary and rehearsal interface.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuivoc/internal/known"
	"github.com/verte-zerg/tuivoc/internal/model"
	"github.com/verte-zerg/tuivoc/internal/rehearsal"
	"github.com/verte-zerg/tuivoc/internal/vocab"
)

// Tab identifies a top-level view.
type Tab int

const (
	TabVocabulary Tab = iota
	TabKnown
	TabRehearse
)

const watchDebounce = 300 * time.Millisecond

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// HistoryRecorder persists finished rehearsals.
type HistoryRecorder interface {
	InsertRehearsal(ctx context.Context, rec model.RehearsalRecord) error
}

// Options configures the application model.
type Options struct {
	Known     *known.Set
	History   HistoryRecorder
	Extractor vocab.Extractor
	Documents []string
	Limit     int
	Rehearse  model.RehearseConfig
	ExportDir string
	Watch     bool
	Shuffler  *rehearsal.Shuffler
	Logger    *slog.Logger
	Tab       Tab
}

type tickMsg struct {
	gen uint64
}

type documentsChangedMsg struct {
	source <-chan []string
	paths  []string
}

// Model implements the Bubble Tea application.
type Model struct {
	opts   Options
	known  *known.Set
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	tabs      []string
	activeTab Tab
	width     int
	height    int

	documents []string
	freqs     vocab.Frequencies
	entries   []model.WordFrequency
	selected  int
	watcher   *vocab.Watcher

	knownTable table.Model

	scheduler  *rehearsal.Scheduler
	duration   time.Duration
	interval   int
	bar        progress.Model
	lastRecord *model.RehearsalRecord

	prompt       *prompt
	confirmClear bool

	status    string
	statusErr bool
}

// NewModel constructs the application model and extracts the initial
// documents. Extraction failures are shown in the status line.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		opts:      opts,
		known:     opts.Known,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		tabs:      []string{"Vocabulary", "Known", "Rehearse"},
		activeTab: opts.Tab,
		duration:  opts.Rehearse.Duration,
		interval:  opts.Rehearse.IntervalSeconds,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	if m.interval < 1 {
		m.interval = 1
	}
	m.scheduler = rehearsal.NewScheduler(m.known.Words, opts.Shuffler)
	m.scheduler.OnFinish(m.recordRehearsal)
	m.knownTable = newKnownTable()
	m.refreshKnownTable()
	if len(opts.Documents) > 0 {
		if err := m.loadDocuments(opts.Documents); err != nil {
			m.setError(err)
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.watchDocuments()
}

// Close stops background work. An active rehearsal is stopped and recorded.
func (m *Model) Close() {
	m.scheduler.Stop()
	m.cancel()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.logger.Warn("failed to close document watcher", "error", err)
		}
		m.watcher = nil
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tickMsg:
		if m.scheduler.Tick(msg.gen) {
			return m, tickCmd(msg.gen)
		}
		return m, nil
	case documentsChangedMsg:
		return m, m.handleDocumentsChanged(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.prompt != nil {
			return m, m.updatePrompt(msg)
		}
		if m.confirmClear {
			m.updateConfirmClear(msg)
			return m, nil
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.moveTab(1)
			return m, nil
		case "shift+tab":
			m.moveTab(-1)
			return m, nil
		case "1", "2", "3":
			m.activeTab = Tab(msg.Runes[0] - '1')
			return m, nil
		}
		switch m.activeTab {
		case TabVocabulary:
			return m, m.updateVocabulary(msg)
		case TabKnown:
			return m, m.updateKnown(msg)
		default:
			return m, m.updateRehearse(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := padLines(m.renderTabs(), m.width)
	footer := padLines(m.renderFooter(), m.width)
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	var body string
	switch m.activeTab {
	case TabVocabulary:
		body = m.renderVocabulary(bodyHeight)
	case TabKnown:
		body = m.renderKnown()
	default:
		body = m.renderRehearse(bodyHeight)
	}
	return strings.Join([]string{header, fitLines(body, m.width, bodyHeight), footer}, "\n")
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.knownTable.SetWidth(m.width)
	m.knownTable.SetHeight(maxInt(1, m.height-6))
	m.knownTable.SetColumns([]table.Column{{Title: "Known word", Width: maxInt(10, m.width-4)}})
	m.bar.Width = minInt(60, maxInt(10, m.width-4))
	if m.prompt != nil {
		m.prompt.input.Width = maxInt(10, m.width-lipgloss.Width(m.prompt.input.Prompt)-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := Tab(len(m.tabs))
	next := m.activeTab + Tab(delta)
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if Tab(i) == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFooter() string {
	lines := []string{footerStyle.Render(truncateLine(m.help(), m.width))}
	switch {
	case m.prompt != nil:
		lines = append(lines, m.prompt.input.View())
	case m.confirmClear:
		lines = append(lines, confirmStyle.Render(fmt.Sprintf("Clear all %d known words? y/n", m.known.Len())))
	case m.status != "":
		style := noticeStyle
		if m.statusErr {
			style = errorStyle
		}
		lines = append(lines, style.Render(truncateLine(m.status, m.width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) help() string {
	if m.prompt != nil {
		return "enter: apply  esc: cancel"
	}
	switch m.activeTab {
	case TabVocabulary:
		return "Nav: tab  Move: arrows  Mark known: enter  Open: o  Quit: q"
	case TabKnown:
		return "Nav: tab  Remove: enter  Import: i  Export: e  Clear: X  Quit: q"
	default:
		if m.scheduler.Session().Active() {
			return "Nav: tab  Pause/resume: space  Stop: s  Quit: q"
		}
		return "Nav: tab  Start: enter  Duration: d  Interval: n  Quit: q"
	}
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.logger.Warn("tui action failed", "error", err)
}

// knownChanged re-ranks the vocabulary and refreshes the known table after
// any known-set mutation.
func (m *Model) knownChanged() {
	m.rerank()
	m.refreshKnownTable()
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func waitForChanges(ch <-chan []string) tea.Cmd {
	return func() tea.Msg {
		paths, ok := <-ch
		if !ok {
			return nil
		}
		return documentsChangedMsg{source: ch, paths: paths}
	}
}
