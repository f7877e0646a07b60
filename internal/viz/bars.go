package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var partials = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

type column struct {
	value int
	lit   bool
}

// bucket folds values into at most cols columns, keeping the tallest value
// of each bucket and marking it lit when any member is highlighted.
func bucket(values, highlight []int, cols int) []column {
	n := len(values)
	if n == 0 || cols <= 0 {
		return nil
	}
	if cols > n {
		cols = n
	}
	size := (n + cols - 1) / cols

	lit := make(map[int]bool, len(highlight))
	for _, i := range highlight {
		lit[i] = true
	}

	out := make([]column, 0, cols)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		c := column{value: values[start]}
		for i := start; i < end; i++ {
			c.value = max(c.value, values[i])
			c.lit = c.lit || lit[i]
		}
		out = append(out, c)
	}
	return out
}

// cell returns the glyph for a column of height eighths at row (0 = bottom).
func cell(eighths, row int) rune {
	e := eighths - row*8
	switch {
	case e <= 0:
		return ' '
	case e >= 8:
		return '█'
	default:
		return partials[e-1]
	}
}

// renderBars draws values as rows of block glyphs, top row first.
func renderBars(values, highlight []int, maxValue, cols, rows int, base, lit lipgloss.Style) []string {
	columns := bucket(values, highlight, cols)
	if len(columns) == 0 || rows <= 0 {
		return nil
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	heights := make([]int, len(columns))
	for i, c := range columns {
		heights[i] = (c.value*rows*8 + maxValue/2) / maxValue
	}

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		row := rows - 1 - r
		var sb strings.Builder
		var run strings.Builder
		runLit := columns[0].lit
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := base
			if runLit {
				style = lit
			}
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for i, c := range columns {
			if c.lit != runLit {
				flush()
				runLit = c.lit
			}
			run.WriteRune(cell(heights[i], row))
		}
		flush()
		lines[r] = sb.String()
	}
	return lines
}
