package solutions

import (
	"github.com/jo-hoe/goadvent/internal/common"
	"github.com/jo-hoe/goadvent/internal/puzzle"
	"github.com/jo-hoe/goadvent/internal/render"
)

// FloorWillBeLavaSolver follows a light beam through mirrors and splitters.
type FloorWillBeLavaSolver struct{}

func init() { mustRegister(FloorWillBeLavaSolver{}) }

func (FloorWillBeLavaSolver) Day() int      { return 16 }
func (FloorWillBeLavaSolver) Title() string { return "The Floor Will Be Lava" }

type beam struct {
	pos     puzzle.Coord
	heading puzzle.Direction
}

// deflect returns the headings a beam leaves tile with after entering it heading d.
func deflect(tile byte, d puzzle.Direction) []puzzle.Direction {
	horizontal := d == puzzle.Left || d == puzzle.Right
	switch tile {
	case '/':
		switch d {
		case puzzle.Right:
			return []puzzle.Direction{puzzle.Up}
		case puzzle.Up:
			return []puzzle.Direction{puzzle.Right}
		case puzzle.Left:
			return []puzzle.Direction{puzzle.Down}
		default:
			return []puzzle.Direction{puzzle.Left}
		}
	case '\\':
		switch d {
		case puzzle.Right:
			return []puzzle.Direction{puzzle.Down}
		case puzzle.Down:
			return []puzzle.Direction{puzzle.Right}
		case puzzle.Left:
			return []puzzle.Direction{puzzle.Up}
		default:
			return []puzzle.Direction{puzzle.Left}
		}
	case '|':
		if horizontal {
			return []puzzle.Direction{puzzle.Up, puzzle.Down}
		}
	case '-':
		if !horizontal {
			return []puzzle.Direction{puzzle.Left, puzzle.Right}
		}
	}
	return []puzzle.Direction{d}
}

// energize traces the beam entering at start and returns the energised tiles in
// wavefront order: waves[i] holds the tiles first lit at step i.
func energize(g *puzzle.Grid, start beam) [][]puzzle.Coord {
	seen := make(map[beam]bool)
	lit := make(map[puzzle.Coord]bool)
	var waves [][]puzzle.Coord
	front := []beam{start}
	for len(front) > 0 {
		var wave []puzzle.Coord
		var next []beam
		for _, b := range front {
			if !g.InBounds(b.pos) || seen[b] {
				continue
			}
			seen[b] = true
			if !lit[b.pos] {
				lit[b.pos] = true
				wave = append(wave, b.pos)
			}
			for _, d := range deflect(g.At(b.pos), b.heading) {
				next = append(next, beam{pos: b.pos.Step(d), heading: d})
			}
		}
		if len(wave) > 0 {
			waves = append(waves, wave)
		}
		front = next
	}
	return waves
}

func energizedCount(g *puzzle.Grid, start beam) int64 {
	var n int64
	for _, wave := range energize(g, start) {
		n += int64(len(wave))
	}
	return n
}

// edgeEntries lists every beam entering the grid from its border.
func edgeEntries(g *puzzle.Grid) []beam {
	var out []beam
	for x := 0; x < g.Cols(); x++ {
		out = append(out,
			beam{pos: puzzle.Coord{X: x, Y: 0}, heading: puzzle.Down},
			beam{pos: puzzle.Coord{X: x, Y: g.Rows() - 1}, heading: puzzle.Up})
	}
	for y := 0; y < g.Rows(); y++ {
		out = append(out,
			beam{pos: puzzle.Coord{X: 0, Y: y}, heading: puzzle.Right},
			beam{pos: puzzle.Coord{X: g.Cols() - 1, Y: y}, heading: puzzle.Left})
	}
	return out
}

// bestEntry tries all edge entries in parallel.
func bestEntry(g *puzzle.Grid) (beam, int64) {
	entries := edgeEntries(g)
	counts := make([]int64, len(entries))
	common.ParallelFor(len(entries), func(i int) {
		counts[i] = energizedCount(g, entries[i])
	})
	best := 0
	for i, n := range counts {
		if n > counts[best] {
			best = i
		}
	}
	return entries[best], counts[best]
}

func parseContraption(input string) (*puzzle.Grid, error) {
	g, err := puzzle.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			switch g.At(puzzle.Coord{X: x, Y: y}) {
			case '.', '/', '\\', '|', '-':
			default:
				return nil, puzzle.InvalidInput("unexpected tile at %d,%d", x, y)
			}
		}
	}
	return g, nil
}

var topLeftEntry = beam{pos: puzzle.Coord{X: 0, Y: 0}, heading: puzzle.Right}

func (FloorWillBeLavaSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	g, err := parseContraption(input)
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartOne {
		return energizedCount(g, topLeftEntry), nil
	}
	_, n := bestEntry(g)
	return n, nil
}

// Animate spreads the light wave by wave. Part two replays the best edge entry.
func (FloorWillBeLavaSolver) Animate(part puzzle.Part, input string) ([]*render.Scene, error) {
	if !part.Valid() {
		return nil, unknownPart(part)
	}
	g, err := parseContraption(input)
	if err != nil {
		return nil, err
	}
	start := topLeftEntry
	if part == puzzle.PartTwo {
		start, _ = bestEntry(g)
	}

	cell := gridCell(g.Cols(), g.Rows())
	base := render.NewGridScene(g.Cols(), g.Rows(), cell)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.At(puzzle.Coord{X: x, Y: y}) != '.' {
				base.FillCell(x, y, render.Gray)
			}
		}
	}

	waves := energize(g, start)
	stride := frameStride(len(waves))
	frames := []*render.Scene{base.Clone()}
	frames[0].Header("Part %v  entry %d,%d heading %v", part, start.pos.X, start.pos.Y, start.heading)
	current := base
	lit := 0
	for i, wave := range waves {
		for _, c := range wave {
			current.FillCell(c.X, c.Y, render.Yellow)
		}
		lit += len(wave)
		if i%stride != 0 && i != len(waves)-1 {
			continue
		}
		frame := current.Clone()
		frame.Header("Part %v  step %d  energized %d", part, i+1, lit)
		frames = append(frames, frame)
	}
	return frames, nil
}
