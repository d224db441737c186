package solutions

import (
	"github.com/jo-hoe/goadvent/internal/puzzle"
	"github.com/jo-hoe/goadvent/internal/render"
)

// ParabolicReflectorSolver tilts a platform of rolling rocks and weighs the north beams.
type ParabolicReflectorSolver struct{}

func init() { mustRegister(ParabolicReflectorSolver{}) }

func (ParabolicReflectorSolver) Day() int      { return 14 }
func (ParabolicReflectorSolver) Title() string { return "Parabolic Reflector Dish" }

const spinCycles = 1_000_000_000

// spinOrder is the tilt sequence of one spin cycle.
var spinOrder = [4]puzzle.Direction{puzzle.Up, puzzle.Left, puzzle.Down, puzzle.Right}

// rollStep moves every round rock one cell towards d if that cell is empty,
// scanning from the leading edge so rocks never pass through each other.
func rollStep(g *puzzle.Grid, d puzzle.Direction) bool {
	moved := false
	delta := d.Delta()
	visit := func(c puzzle.Coord) {
		if g.At(c) != 'O' {
			return
		}
		next := c.Add(delta)
		if g.InBounds(next) && g.At(next) == '.' {
			g.Set(next, 'O')
			g.Set(c, '.')
			moved = true
		}
	}
	rows, cols := g.Rows(), g.Cols()
	switch d {
	case puzzle.Up:
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				visit(puzzle.Coord{X: x, Y: y})
			}
		}
	case puzzle.Down:
		for y := rows - 1; y >= 0; y-- {
			for x := 0; x < cols; x++ {
				visit(puzzle.Coord{X: x, Y: y})
			}
		}
	case puzzle.Left:
		for x := 0; x < cols; x++ {
			for y := 0; y < rows; y++ {
				visit(puzzle.Coord{X: x, Y: y})
			}
		}
	case puzzle.Right:
		for x := cols - 1; x >= 0; x-- {
			for y := 0; y < rows; y++ {
				visit(puzzle.Coord{X: x, Y: y})
			}
		}
	}
	return moved
}

// tilt rolls every round rock as far as it goes towards d.
func tilt(g *puzzle.Grid, d puzzle.Direction) {
	delta := d.Delta()
	start := puzzle.Coord{}
	if delta.X > 0 {
		start.X = g.Cols() - 1
	}
	if delta.Y > 0 {
		start.Y = g.Rows() - 1
	}
	// Walk each lane from the edge rocks roll towards, tracking the next free slot.
	lanes, length := g.Cols(), g.Rows()
	if delta.Y == 0 {
		lanes, length = g.Rows(), g.Cols()
	}
	for lane := 0; lane < lanes; lane++ {
		at := func(i int) puzzle.Coord {
			if delta.Y != 0 {
				return puzzle.Coord{X: lane, Y: start.Y - i*delta.Y}
			}
			return puzzle.Coord{X: start.X - i*delta.X, Y: lane}
		}
		free := 0
		for i := 0; i < length; i++ {
			c := at(i)
			switch g.At(c) {
			case '#':
				free = i + 1
			case 'O':
				if free != i {
					g.Set(at(free), 'O')
					g.Set(c, '.')
				}
				free++
			}
		}
	}
}

func spin(g *puzzle.Grid) {
	for _, d := range spinOrder {
		tilt(g, d)
	}
}

// northLoad weighs each round rock by its distance from the south edge.
func northLoad(g *puzzle.Grid) int64 {
	var load int64
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.At(puzzle.Coord{X: x, Y: y}) == 'O' {
				load += int64(g.Rows() - y)
			}
		}
	}
	return load
}

func spunGrid(g *puzzle.Grid) *puzzle.Grid {
	next := g.Clone()
	spin(next)
	return next
}

func sameGrid(a, b *puzzle.Grid) bool {
	return a.String() == b.String()
}

func (ParabolicReflectorSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	g, err := parsePlatform(input)
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartOne {
		tilt(g, puzzle.Up)
		return northLoad(g), nil
	}

	mu, lambda := puzzle.FindCycle(g, spunGrid, sameGrid)
	remaining := spinCycles
	if remaining > mu {
		remaining = mu + (remaining-mu)%lambda
	}
	for i := 0; i < remaining; i++ {
		spin(g)
	}
	return northLoad(g), nil
}

func parsePlatform(input string) (*puzzle.Grid, error) {
	g, err := puzzle.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			switch g.At(puzzle.Coord{X: x, Y: y}) {
			case 'O', '#', '.':
			default:
				return nil, puzzle.InvalidInput("unexpected tile at %d,%d", x, y)
			}
		}
	}
	return g, nil
}

func platformScene(g *puzzle.Grid, cell int) *render.Scene {
	s := render.NewGridScene(g.Cols(), g.Rows(), cell)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			switch g.At(puzzle.Coord{X: x, Y: y}) {
			case '#':
				s.FillCell(x, y, render.Gray)
			case 'O':
				cx, cy := s.CellCenter(x, y)
				s.Add(render.Circle{CX: cx, CY: cy, R: float64(cell) * 0.4, Fill: render.Yellow})
			}
		}
	}
	return s
}

// Animate rolls the rocks one cell per frame for the single north tilt of part one.
// Part two shows one frame per tilt of each spin cycle until the platform starts
// repeating.
func (ParabolicReflectorSolver) Animate(part puzzle.Part, input string) ([]*render.Scene, error) {
	if !part.Valid() {
		return nil, unknownPart(part)
	}
	g, err := parsePlatform(input)
	if err != nil {
		return nil, err
	}
	cell := gridCell(g.Cols(), g.Rows())

	type step struct {
		grid  *puzzle.Grid
		cycle int
		dir   puzzle.Direction
	}
	steps := []step{{grid: g.Clone(), dir: puzzle.Up}}
	if part == puzzle.PartOne {
		for rollStep(g, puzzle.Up) {
			steps = append(steps, step{grid: g.Clone(), dir: puzzle.Up})
		}
	} else {
		mu, lambda := puzzle.FindCycle(g, spunGrid, sameGrid)
		for cycle := 1; cycle <= mu+lambda; cycle++ {
			for _, d := range spinOrder {
				tilt(g, d)
				steps = append(steps, step{grid: g.Clone(), cycle: cycle, dir: d})
			}
		}
	}

	stride := frameStride(len(steps))
	var frames []*render.Scene
	for i, st := range steps {
		if i%stride != 0 && i != len(steps)-1 {
			continue
		}
		frame := platformScene(st.grid, cell)
		if part == puzzle.PartOne {
			frame.Header("Part %v  tilt %v  load %d", part, st.dir, northLoad(st.grid))
		} else {
			frame.Header("Part %v  cycle %d  tilt %v  load %d", part, st.cycle, st.dir, northLoad(st.grid))
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
