// Package stats renders rehearsal history and vocabulary listings.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/tuivoc/internal/model"
	"github.com/verte-zerg/tuivoc/internal/rehearsal"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
	columnGap           = 2
)

// Summary aggregates rehearsal history.
type Summary struct {
	Sessions       int
	Completed      int
	PracticeSeconds int
	WordsShown     int
}

// Summarize totals the given records.
func Summarize(records []model.RehearsalRecord) Summary {
	var s Summary
	for _, rec := range records {
		s.Sessions++
		if rec.Completed {
			s.Completed++
		}
		s.PracticeSeconds += rec.ElapsedSeconds
		s.WordsShown += rec.WordsShown
	}
	return s
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderReport prints the summary and a per-session table.
func RenderReport(w io.Writer, report Report) error {
	if len(report.Records) == 0 {
		_, err := fmt.Fprintln(w, "No rehearsals yet.")
		return err
	}
	sum := report.Summary
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d (%d completed)", sum.Sessions, sum.Completed),
		fmt.Sprintf("Practice time: %s", rehearsal.FormatClock(sum.PracticeSeconds)),
		fmt.Sprintf("Words shown: %d", sum.WordsShown),
		fmt.Sprintf("Words per session: %s", Sparkline(report.WordsPerSession())),
		"",
	}
	headers := []string{"Ended", "Duration", "Practised", "Interval", "Words", "Done"}
	rows := make([][]string, 0, len(report.Records))
	for _, rec := range report.Records {
		done := "no"
		if rec.Completed {
			done = "yes"
		}
		rows = append(rows, []string{
			rec.EndedAt.Local().Format("2006-01-02 15:04"),
			rehearsal.FormatClock(rec.TotalSeconds),
			rehearsal.FormatClock(rec.ElapsedSeconds),
			strconv.Itoa(rec.IntervalSeconds) + "s",
			strconv.Itoa(rec.WordsShown),
			done,
		})
	}
	lines = append(lines, formatTable(headers, rows, map[int]bool{3: true, 4: true})...)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderVocabulary prints ranked entries as "WORD count" cells laid out in
// as many columns as fit width.
func RenderVocabulary(w io.Writer, entries []model.WordFrequency, width int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No new words.")
		return err
	}
	cells := make([]string, len(entries))
	cellWidth := 0
	for i, entry := range entries {
		cells[i] = fmt.Sprintf("%s %d", entry.Word, entry.Count)
		if cw := displayWidth(cells[i]); cw > cellWidth {
			cellWidth = cw
		}
	}
	cols := (width + columnGap) / (cellWidth + columnGap)
	if cols < 1 {
		cols = 1
	}
	rowsCount := (len(cells) + cols - 1) / cols
	for r := 0; r < rowsCount; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			idx := c*rowsCount + r
			if idx >= len(cells) {
				break
			}
			if c > 0 {
				b.WriteString(strings.Repeat(" ", columnGap))
			}
			b.WriteString(padCell(cells[idx], cellWidth, false))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// TerminalWidth returns the stdout width, or a fallback when stdout is not
// a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
