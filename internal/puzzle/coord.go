package puzzle

import "fmt"

// Coord is a grid position; Y grows downwards.
type Coord struct {
	X, Y int
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Delta())
}

// Neighbors8 returns the eight surrounding positions.
func (c Coord) Neighbors8() []Coord {
	out := make([]Coord, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Coord{X: c.X + dx, Y: c.Y + dy})
		}
	}
	return out
}

// Direction is one of the four grid headings, in clockwise order.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all headings clockwise starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) CW() Direction {
	return (d + 1) % 4
}

func (d Direction) CCW() Direction {
	return (d + 3) % 4
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) Delta() Coord {
	switch d {
	case Up:
		return Coord{X: 0, Y: -1}
	case Right:
		return Coord{X: 1, Y: 0}
	case Down:
		return Coord{X: 0, Y: 1}
	case Left:
		return Coord{X: -1, Y: 0}
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "?"
}
