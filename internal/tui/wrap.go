package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuivoc/internal/model"
)

const chipGap = 1

var (
	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Background(lipgloss.Color("#3A3A3A")).
			Padding(0, 1)
	selectedChipStyle = chipStyle.
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(lipgloss.Color("#C89A3A")).
				Bold(true)
)

type chip struct {
	s     string
	width int
}

func buildChips(entries []model.WordFrequency, selected int) []chip {
	out := make([]chip, 0, len(entries))
	for i, entry := range entries {
		label := fmt.Sprintf("%s %d", entry.Word, entry.Count)
		style := chipStyle
		if i == selected {
			style = selectedChipStyle
		}
		out = append(out, chip{
			s:     style.Render(label),
			width: runewidth.StringWidth(label) + 2,
		})
	}
	return out
}

// layoutChips packs chips greedily into lines no wider than width and
// returns the chip indices of each line. A chip wider than width gets a
// line of its own.
func layoutChips(chips []chip, width int) [][]int {
	if len(chips) == 0 {
		return nil
	}
	var lines [][]int
	line := []int{}
	lineWidth := 0
	for i, c := range chips {
		need := c.width
		if len(line) > 0 {
			need += chipGap
		}
		if width > 0 && len(line) > 0 && lineWidth+need > width {
			lines = append(lines, line)
			line = []int{}
			lineWidth = 0
			need = c.width
		}
		line = append(line, i)
		lineWidth += need
	}
	return append(lines, line)
}

func renderChipLines(chips []chip, lines [][]int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var b strings.Builder
		for j, idx := range line {
			if j > 0 {
				b.WriteString(strings.Repeat(" ", chipGap))
			}
			b.WriteString(chips[idx].s)
		}
		out = append(out, b.String())
	}
	return out
}

func lineOf(lines [][]int, idx int) int {
	for i, line := range lines {
		if len(line) > 0 && idx >= line[0] && idx <= line[len(line)-1] {
			return i
		}
	}
	return 0
}

// moveVertical returns the chip index delta lines away from selected,
// keeping the column where the target line is long enough.
func moveVertical(lines [][]int, selected, delta int) int {
	if len(lines) == 0 {
		return selected
	}
	current := lineOf(lines, selected)
	col := selected - lines[current][0]
	target := current + delta
	if target < 0 {
		target = 0
	}
	if target >= len(lines) {
		target = len(lines) - 1
	}
	row := lines[target]
	if col >= len(row) {
		col = len(row) - 1
	}
	return row[col]
}
