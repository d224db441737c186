package render

import (
	"fmt"
	"image/color"
	"strings"
)

// SVG serialises the scene's shapes into an SVG document with explicit pixel size.
// Labels are not part of the document; they are drawn after rasterisation.
func SVG(s *Scene) []byte {
	var b strings.Builder
	b.Grow(64 + 80*len(s.Shapes))
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		s.Width, s.Height, s.Width, s.Height)
	for _, shape := range s.Shapes {
		shape.writeSVG(&b)
	}
	b.WriteString(`</svg>`)
	return []byte(b.String())
}

func (r Rect) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		num(r.X), num(r.Y), num(r.W), num(r.H), hex(r.Fill))
}

func (c Circle) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		num(c.CX), num(c.CY), num(c.R), hex(c.Fill))
}

func (l Line) writeSVG(b *strings.Builder) {
	w := l.Width
	if w <= 0 {
		w = 1
	}
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="square"/>`,
		num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), hex(l.Stroke), num(w))
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func num(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
