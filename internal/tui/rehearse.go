package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuivoc/internal/rehearsal"
)

func (m *Model) updateRehearse(msg tea.KeyMsg) tea.Cmd {
	session := m.scheduler.Session()
	if msg.Type == tea.KeySpace {
		switch session.State {
		case rehearsal.Running:
			m.scheduler.Pause()
		case rehearsal.Paused:
			if gen, ok := m.scheduler.Resume(); ok {
				return tickCmd(gen)
			}
		}
		return nil
	}
	switch msg.String() {
	case "s":
		m.scheduler.Stop()
	case "enter":
		if session.Active() {
			return nil
		}
		return m.startRehearsal()
	case "d":
		if !session.Active() {
			return m.startPrompt(promptDuration, "Duration: ", m.duration.String())
		}
	case "n":
		if !session.Active() {
			return m.startPrompt(promptInterval, "Interval (seconds): ", strconv.Itoa(m.interval))
		}
	}
	return nil
}

func (m *Model) startRehearsal() tea.Cmd {
	gen, ok := m.scheduler.Start(int(m.duration/time.Second), m.interval)
	if !ok {
		m.setError(fmt.Errorf("rehearsal needs known words and a positive duration"))
		return nil
	}
	m.status = ""
	m.logger.Info("rehearsal started", "id", m.scheduler.Session().ID, "words", m.known.Len())
	return tickCmd(gen)
}

func (m *Model) recordRehearsal(s rehearsal.Session, endedAt time.Time) {
	rec := s.Record(endedAt)
	m.lastRecord = &rec
	m.logger.Info("rehearsal finished", "id", rec.ID, "elapsed", rec.ElapsedSeconds, "completed", rec.Completed)
	if m.opts.History == nil {
		return
	}
	if err := m.opts.History.InsertRehearsal(m.ctx, rec); err != nil {
		m.setError(fmt.Errorf("failed to save rehearsal: %w", err))
	}
}

// parseDuration accepts Go durations ("2m30s"), clock values ("1:30",
// "01:02:03") or a bare number of seconds.
func parseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	var d time.Duration
	switch {
	case strings.Contains(value, ":"):
		secs, err := parseClock(value)
		if err != nil {
			return 0, err
		}
		d = time.Duration(secs) * time.Second
	default:
		if secs, err := strconv.Atoi(value); err == nil {
			value = strconv.Itoa(secs) + "s"
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
		d = parsed
	}
	if d < time.Second {
		return 0, fmt.Errorf("duration must be at least 1s")
	}
	return d.Truncate(time.Second), nil
}

func parseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || (i > 0 && n > 59) {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
		total = total*60 + n
	}
	return total, nil
}

func parseInterval(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("interval must be a positive number of seconds")
	}
	return n, nil
}

func (m *Model) renderRehearse(height int) string {
	session := m.scheduler.Session()
	if !session.Active() {
		return m.renderRehearseIdle()
	}
	word := session.Current()
	if word == "" {
		word = "-"
	}
	lines := []string{
		wordStyle.Render(word),
		"",
		session.Clock(),
		m.bar.ViewAs(session.Progress()),
	}
	if session.State == rehearsal.Paused {
		lines = append(lines, pausedStyle.Render("paused"))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 {
		return content
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderRehearseIdle() string {
	lines := []string{
		fmt.Sprintf("Duration: %s", rehearsal.FormatClock(int(m.duration/time.Second))),
		fmt.Sprintf("Interval: %ds", m.interval),
		fmt.Sprintf("Known words: %d", m.known.Len()),
	}
	if rec := m.lastRecord; rec != nil {
		outcome := "stopped"
		if rec.Completed {
			outcome = "completed"
		}
		lines = append(lines, "", mutedStyle.Render(fmt.Sprintf(
			"Last session %s after %s, %d words shown",
			outcome, rehearsal.FormatClock(rec.ElapsedSeconds), rec.WordsShown,
		)))
	}
	return strings.Join(lines, "\n")
}
