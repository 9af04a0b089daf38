package layout

import (
	"strings"

	"github.com/dasdy/termslides/model"
)

// Canvas is a fixed grid of height rows, each exactly width characters wide.
// Writes replace characters in place and never change a row's length.
type Canvas struct {
	width  int
	height int
	rows   [][]rune
}

func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	rows := make([][]rune, height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", width))
	}

	return &Canvas{width: width, height: height, rows: rows}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

// Lines returns the rows of the canvas as strings.
func (c *Canvas) Lines() []string {
	lines := make([]string, len(c.rows))
	for i, row := range c.rows {
		lines[i] = string(row)
	}

	return lines
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Place writes text with its top-left corner at pos. Every line is prefixed with
// indent spaces. Lines that fall below the canvas end the placement, lines above
// it are skipped. Characters past the right edge are dropped, unless transition
// is set: then they continue on the next row, and every later line of the block
// moves down by one row per continuation. A line that wraps over three rows
// pushes the next line down by two, so wrapped rows are never overwritten.
func (c *Canvas) Place(text string, pos model.Position, transition bool, indent int) {
	lines := splitLines(text)
	top := resolve(pos.Y, c.height, len(lines))
	pad := strings.Repeat(" ", max(indent, 0))
	wrapSteps := 0

	for i, raw := range lines {
		line := []rune(pad + raw)
		row := top + i + wrapSteps

		if row > c.height-1 {
			return
		}

		if row < 0 {
			continue
		}

		rest := c.writeLine(row, resolve(pos.X, c.width, len(line)), line)

		for transition && len(rest) > 0 {
			row++
			if row > c.height-1 {
				return
			}

			wrapSteps++

			remaining := c.writeLine(row, c.continuationColumn(pos.X, len(rest)), rest)
			if len(remaining) == len(rest) {
				break
			}

			rest = remaining
		}
	}
}

// writeLine copies the visible part of line into row at col and returns the
// part that did not fit on the right.
func (c *Canvas) writeLine(row, col int, line []rune) []rune {
	if col < 0 {
		if -col >= len(line) {
			return nil
		}

		line = line[-col:]
		col = 0
	}

	visible := min(len(line), c.width-col)
	if visible <= 0 {
		return line
	}

	copy(c.rows[row][col:col+visible], line[:visible])

	return line[visible:]
}

// continuationColumn anchors wrapped text. Offsets from the far edge and
// symbolic alignments are applied again, everything else restarts at column 0.
func (c *Canvas) continuationColumn(x model.Coordinate, length int) int {
	if x.Kind == model.FromFar || x.Symbolic() {
		return resolve(x, c.width, length)
	}

	return 0
}

// resolve turns a coordinate into an absolute offset along an axis of the given
// dimension, for a block that spans extent cells along that axis.
func resolve(coord model.Coordinate, dimension, extent int) int {
	switch coord.Kind {
	case model.Absolute:
		return coord.Offset
	case model.FromFar:
		return dimension + coord.Offset
	case model.Aligned:
	}

	switch coord.Align {
	case model.AlignCenter:
		return max(0, dimension/2-extent/2)
	case model.AlignEnd:
		return max(0, dimension-extent)
	case model.AlignStart:
	}

	return 0
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
