package solutions

import (
	"github.com/jo-hoe/goadvent/internal/puzzle"
	"github.com/jo-hoe/goadvent/internal/render"
)

// PipeMazeSolver traces the pipe loop through the start tile.
type PipeMazeSolver struct{}

func init() { mustRegister(PipeMazeSolver{}) }

func (PipeMazeSolver) Day() int      { return 10 }
func (PipeMazeSolver) Title() string { return "Pipe Maze" }

// pipeEnds maps each pipe to the two directions it connects.
var pipeEnds = map[byte][2]puzzle.Direction{
	'|': {puzzle.Up, puzzle.Down},
	'-': {puzzle.Left, puzzle.Right},
	'L': {puzzle.Up, puzzle.Right},
	'J': {puzzle.Up, puzzle.Left},
	'7': {puzzle.Down, puzzle.Left},
	'F': {puzzle.Down, puzzle.Right},
}

func pipeFor(a, b puzzle.Direction) (byte, bool) {
	for pipe, ends := range pipeEnds {
		if (ends[0] == a && ends[1] == b) || (ends[0] == b && ends[1] == a) {
			return pipe, true
		}
	}
	return 0, false
}

type pipeLoop struct {
	grid   *puzzle.Grid
	path   []puzzle.Coord
	onLoop map[puzzle.Coord]bool
}

// tracePipeLoop replaces S by the pipe it must be and follows the loop back to it.
func tracePipeLoop(input string) (*pipeLoop, error) {
	grid, err := puzzle.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	start, ok := grid.Find('S')
	if !ok {
		return nil, puzzle.InvalidInput("no start tile S")
	}

	var exits []puzzle.Direction
	for _, d := range puzzle.Directions {
		ends, ok := pipeEnds[grid.At(start.Step(d))]
		if ok && (ends[0] == d.Opposite() || ends[1] == d.Opposite()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		return nil, puzzle.InvalidInput("start tile connects to %d pipes, expected 2", len(exits))
	}
	startPipe, _ := pipeFor(exits[0], exits[1])
	grid.Set(start, startPipe)

	loop := &pipeLoop{grid: grid, onLoop: make(map[puzzle.Coord]bool)}
	pos, heading := start, exits[0]
	for {
		loop.path = append(loop.path, pos)
		loop.onLoop[pos] = true
		pos = pos.Step(heading)
		if pos == start {
			return loop, nil
		}
		ends, ok := pipeEnds[grid.At(pos)]
		switch {
		case !ok:
			return nil, puzzle.InvalidInput("loop broken at %v", pos)
		case ends[0] == heading.Opposite():
			heading = ends[1]
		case ends[1] == heading.Opposite():
			heading = ends[0]
		default:
			return nil, puzzle.InvalidInput("pipe at %v does not connect", pos)
		}
		if loop.onLoop[pos] {
			return nil, puzzle.InvalidInput("loop crosses itself at %v", pos)
		}
	}
}

// enclosed returns the tile count inside the loop from the shoelace area and Pick's theorem.
func (l *pipeLoop) enclosed() int64 {
	var area2 int64
	n := len(l.path)
	for i := range l.path {
		a, b := l.path[i], l.path[(i+1)%n]
		area2 += int64(a.X*b.Y - b.X*a.Y)
	}
	if area2 < 0 {
		area2 = -area2
	}
	return area2/2 - int64(n)/2 + 1
}

// insideTiles lists the enclosed tiles by scanline parity: a tile is inside when
// an odd number of north-facing loop pipes lie to its left.
func (l *pipeLoop) insideTiles() []puzzle.Coord {
	var out []puzzle.Coord
	for y := 0; y < l.grid.Rows(); y++ {
		inside := false
		for x := 0; x < l.grid.Cols(); x++ {
			c := puzzle.Coord{X: x, Y: y}
			if l.onLoop[c] {
				switch l.grid.At(c) {
				case '|', 'L', 'J':
					inside = !inside
				}
				continue
			}
			if inside {
				out = append(out, c)
			}
		}
	}
	return out
}

func (PipeMazeSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	loop, err := tracePipeLoop(input)
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartOne {
		return int64(len(loop.path) / 2), nil
	}
	return loop.enclosed(), nil
}

// Animate draws the loop being traced from the start tile. Part two ends with
// the enclosed tiles filled in.
func (PipeMazeSolver) Animate(part puzzle.Part, input string) ([]*render.Scene, error) {
	if !part.Valid() {
		return nil, unknownPart(part)
	}
	loop, err := tracePipeLoop(input)
	if err != nil {
		return nil, err
	}
	g := loop.grid
	cell := gridCell(g.Cols(), g.Rows())
	base := render.NewGridScene(g.Cols(), g.Rows(), cell)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if _, ok := pipeEnds[g.At(puzzle.Coord{X: x, Y: y})]; ok {
				base.FillCell(x, y, render.Gray)
			}
		}
	}
	base.FillCell(loop.path[0].X, loop.path[0].Y, render.Yellow)

	var frames []*render.Scene
	stride := frameStride(len(loop.path))
	current := base
	for i := 1; i < len(loop.path); i++ {
		c := loop.path[i]
		current.FillCell(c.X, c.Y, render.Hue(float64(i)/float64(len(loop.path))))
		if i%stride == 0 || i == len(loop.path)-1 {
			frame := current.Clone()
			frame.Header("Part %v  step %d  farthest %d", part, i, min(i, len(loop.path)-i))
			frames = append(frames, frame)
		}
	}

	if part == puzzle.PartTwo {
		inside := loop.insideTiles()
		for _, c := range inside {
			current.FillCell(c.X, c.Y, render.LightBlue)
		}
		current.Header("Part %v  enclosed %d", part, len(inside))
		frames = append(frames, current)
	}
	return frames, nil
}
