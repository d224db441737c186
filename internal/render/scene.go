package render

import (
	"fmt"
	"image/color"
	"strings"
)

// Shape is a primitive that can be written into an SVG document.
type Shape interface {
	writeSVG(b *strings.Builder)
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       color.RGBA
}

// Circle is a filled circle.
type Circle struct {
	CX, CY, R float64
	Fill      color.RGBA
}

// Line is a stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Stroke         color.RGBA
}

// Label is text drawn on top of the rasterised shapes. X/Y is the baseline origin.
type Label struct {
	X, Y  int
	Text  string
	Color color.RGBA
}

// Scene is one animation frame described in pixel coordinates.
type Scene struct {
	Width      int
	Height     int
	Background color.RGBA
	Shapes     []Shape
	Labels     []Label

	// cell is the grid cell size for scenes created by NewGridScene.
	cell int
	// offsetY shifts grid cells down to leave room for a header.
	offsetY int
}

var (
	Black     = color.RGBA{R: 0x0f, G: 0x0f, B: 0x23, A: 0xff}
	White     = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	Gray      = color.RGBA{R: 0x55, G: 0x55, B: 0x66, A: 0xff}
	Red       = color.RGBA{R: 0xe0, G: 0x3b, B: 0x3b, A: 0xff}
	Green     = color.RGBA{R: 0x3b, G: 0xc0, B: 0x4b, A: 0xff}
	Blue      = color.RGBA{R: 0x3b, G: 0x7b, B: 0xe0, A: 0xff}
	Yellow    = color.RGBA{R: 0xff, G: 0xff, B: 0x66, A: 0xff}
	LightBlue = color.RGBA{R: 0x5c, G: 0xd1, B: 0xff, A: 0xff}
)

// HeaderHeight is the pixel height reserved above grid cells for a text header.
const HeaderHeight = 18

// NewScene creates an empty scene on the default dark background.
func NewScene(width, height int) *Scene {
	return &Scene{Width: width, Height: height, Background: Black}
}

// NewGridScene creates a scene sized for cols x rows cells of the given pixel size,
// with a header strip on top.
func NewGridScene(cols, rows, cell int) *Scene {
	s := NewScene(cols*cell, rows*cell+HeaderHeight)
	s.cell = cell
	s.offsetY = HeaderHeight
	return s
}

// Add appends shapes to the scene.
func (s *Scene) Add(shapes ...Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLabel appends a text label.
func (s *Scene) AddLabel(x, y int, text string, c color.RGBA) {
	s.Labels = append(s.Labels, Label{X: x, Y: y, Text: text, Color: c})
}

// Header writes a single line of text into the header strip.
func (s *Scene) Header(format string, args ...any) {
	s.AddLabel(4, HeaderHeight-5, fmt.Sprintf(format, args...), White)
}

// FillCell fills grid cell (x, y), leaving a one pixel gap when cells are large enough.
func (s *Scene) FillCell(x, y int, fill color.RGBA) {
	c := float64(s.cell)
	gap := 0.0
	if s.cell >= 6 {
		gap = 1
	}
	s.Add(Rect{
		X:    float64(x)*c + gap/2,
		Y:    float64(y)*c + float64(s.offsetY) + gap/2,
		W:    c - gap,
		H:    c - gap,
		Fill: fill,
	})
}

// CellCenter returns the pixel centre of grid cell (x, y).
func (s *Scene) CellCenter(x, y int) (float64, float64) {
	c := float64(s.cell)
	return float64(x)*c + c/2, float64(y)*c + c/2 + float64(s.offsetY)
}

// Clone returns a copy of the scene that can be extended without touching the original.
func (s *Scene) Clone() *Scene {
	clone := *s
	clone.Shapes = append([]Shape(nil), s.Shapes...)
	clone.Labels = append([]Label(nil), s.Labels...)
	return &clone
}

// Hue returns a saturated colour for h in [0, 1).
func Hue(h float64) color.RGBA {
	h -= float64(int(h))
	if h < 0 {
		h++
	}
	r, g, b := hueToRGB(h+1.0/3), hueToRGB(h), hueToRGB(h-1.0/3)
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 0xff}
}

func hueToRGB(t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return 6 * t
	case t < 1.0/2:
		return 1
	case t < 2.0/3:
		return (2.0/3 - t) * 6
	default:
		return 0
	}
}
