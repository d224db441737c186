package solutions

import (
	"github.com/jo-hoe/goadvent/internal/puzzle"
	"github.com/jo-hoe/goadvent/internal/render"
)

// PointOfIncidenceSolver finds the mirror line in each pattern of ash and rocks.
type PointOfIncidenceSolver struct{}

func init() { mustRegister(PointOfIncidenceSolver{}) }

func (PointOfIncidenceSolver) Day() int      { return 13 }
func (PointOfIncidenceSolver) Title() string { return "Point of Incidence" }

// mirror is a reflection line. Index is the number of columns to the left of a
// vertical line, or rows above a horizontal one.
type mirror struct {
	vertical bool
	index    int
	smudge   puzzle.Coord
}

func (m mirror) score() int64 {
	if m.vertical {
		return int64(m.index)
	}
	return 100 * int64(m.index)
}

// smudgesFor returns the number of cells that must change for the pattern to
// reflect exactly, along with the first such cell.
func smudgesFor(g *puzzle.Grid, vertical bool, index int) (int, puzzle.Coord) {
	diffs := 0
	var first puzzle.Coord
	compare := func(a, b puzzle.Coord) {
		if g.At(a) != g.At(b) {
			if diffs == 0 {
				first = a
			}
			diffs++
		}
	}
	if vertical {
		for k := 0; index-1-k >= 0 && index+k < g.Cols(); k++ {
			for y := 0; y < g.Rows(); y++ {
				compare(puzzle.Coord{X: index - 1 - k, Y: y}, puzzle.Coord{X: index + k, Y: y})
			}
		}
	} else {
		for k := 0; index-1-k >= 0 && index+k < g.Rows(); k++ {
			for x := 0; x < g.Cols(); x++ {
				compare(puzzle.Coord{X: x, Y: index - 1 - k}, puzzle.Coord{X: x, Y: index + k})
			}
		}
	}
	return diffs, first
}

// findMirror returns the line that reflects the pattern with exactly smudges differences.
func findMirror(g *puzzle.Grid, smudges int) (mirror, bool) {
	for c := 1; c < g.Cols(); c++ {
		if n, at := smudgesFor(g, true, c); n == smudges {
			return mirror{vertical: true, index: c, smudge: at}, true
		}
	}
	for r := 1; r < g.Rows(); r++ {
		if n, at := smudgesFor(g, false, r); n == smudges {
			return mirror{vertical: false, index: r, smudge: at}, true
		}
	}
	return mirror{}, false
}

func smudgesForPart(part puzzle.Part) int {
	if part == puzzle.PartTwo {
		return 1
	}
	return 0
}

func parsePatterns(input string) ([]*puzzle.Grid, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return nil, puzzle.InvalidInput("no patterns")
	}
	patterns := make([]*puzzle.Grid, 0, len(blocks))
	for _, block := range blocks {
		g, err := puzzle.ParseGrid(block)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, g)
	}
	return patterns, nil
}

func (PointOfIncidenceSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	patterns, err := parsePatterns(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for i, g := range patterns {
		m, ok := findMirror(g, smudgesForPart(part))
		if !ok {
			return 0, puzzle.InvalidInput("pattern %d has no reflection", i+1)
		}
		sum += m.score()
	}
	return sum, nil
}

// Animate shows each pattern, then the same pattern with its mirror line and,
// for part two, the smudge that had to be cleaned.
func (PointOfIncidenceSolver) Animate(part puzzle.Part, input string) ([]*render.Scene, error) {
	if !part.Valid() {
		return nil, unknownPart(part)
	}
	patterns, err := parsePatterns(input)
	if err != nil {
		return nil, err
	}
	cols, rows := 0, 0
	for _, g := range patterns {
		cols = max(cols, g.Cols())
		rows = max(rows, g.Rows())
	}
	cell := gridCell(cols, rows)
	stride := frameStride(2 * len(patterns))

	var frames []*render.Scene
	var sum int64
	for i, g := range patterns {
		m, ok := findMirror(g, smudgesForPart(part))
		if !ok {
			return nil, puzzle.InvalidInput("pattern %d has no reflection", i+1)
		}
		sum += m.score()
		if i%stride != 0 && i != len(patterns)-1 {
			continue
		}

		plain := render.NewGridScene(cols, rows, cell)
		for y := 0; y < g.Rows(); y++ {
			for x := 0; x < g.Cols(); x++ {
				if g.At(puzzle.Coord{X: x, Y: y}) == '#' {
					plain.FillCell(x, y, render.White)
				} else {
					plain.FillCell(x, y, render.Gray)
				}
			}
		}
		plain.Header("Part %v  pattern %d/%d", part, i+1, len(patterns))

		found := plain.Clone()
		found.Labels = nil
		c := float64(cell)
		if m.vertical {
			x := float64(m.index) * c
			found.Add(render.Line{X1: x, Y1: render.HeaderHeight, X2: x, Y2: render.HeaderHeight + float64(g.Rows())*c, Width: 2, Stroke: render.Red})
		} else {
			y := render.HeaderHeight + float64(m.index)*c
			found.Add(render.Line{X1: 0, Y1: y, X2: float64(g.Cols()) * c, Y2: y, Width: 2, Stroke: render.Red})
		}
		if part == puzzle.PartTwo {
			found.FillCell(m.smudge.X, m.smudge.Y, render.Yellow)
		}
		found.Header("Part %v  pattern %d/%d  +%d  sum %d", part, i+1, len(patterns), m.score(), sum)
		frames = append(frames, plain, found)
	}
	return frames, nil
}
