package puzzle

import "strings"

// Grid is a rectangular block of bytes, one row per input line.
type Grid struct {
	cells [][]byte
	cols  int
}

// ParseGrid reads a rectangular grid. Blank lines are skipped, ragged rows are rejected.
func ParseGrid(input string) (*Grid, error) {
	lines := Lines(input)
	if len(lines) == 0 {
		return nil, InvalidInput("empty grid")
	}
	g := &Grid{cols: len(lines[0])}
	for i, line := range lines {
		if len(line) != g.cols {
			return nil, InvalidInput("row %d has %d columns, expected %d", i, len(line), g.cols)
		}
		g.cells = append(g.cells, []byte(line))
	}
	return g, nil
}

func (g *Grid) Rows() int { return len(g.cells) }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.Y < len(g.cells) && c.X < g.cols
}

// At returns the byte at c, or 0 outside the grid.
func (g *Grid) At(c Coord) byte {
	if !g.InBounds(c) {
		return 0
	}
	return g.cells[c.Y][c.X]
}

func (g *Grid) Set(c Coord, b byte) {
	if g.InBounds(c) {
		g.cells[c.Y][c.X] = b
	}
}

// Find returns the first position holding b in row-major order.
func (g *Grid) Find(b byte) (Coord, bool) {
	for y, row := range g.cells {
		for x, cell := range row {
			if cell == b {
				return Coord{X: x, Y: y}, true
			}
		}
	}
	return Coord{}, false
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []byte {
	return append([]byte(nil), g.cells[y]...)
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{cols: g.cols, cells: make([][]byte, len(g.cells))}
	for i, row := range g.cells {
		out.cells[i] = append([]byte(nil), row...)
	}
	return out
}

func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
