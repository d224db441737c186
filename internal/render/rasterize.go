package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Rasterize renders the scene into an RGBA image of the scene's size.
func Rasterize(s *Scene) (*image.RGBA, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid scene dimensions: %dx%d", s.Width, s.Height)
	}

	dst := createCanvas(s.Width, s.Height, s.Background)

	if len(s.Shapes) > 0 {
		icon, err := oksvg.ReadIconStream(bytes.NewReader(SVG(s)), oksvg.WarnErrorMode)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scene SVG: %w", err)
		}
		icon.SetTarget(0, 0, float64(s.Width), float64(s.Height))

		scanner := rasterx.NewScannerGV(s.Width, s.Height, dst, dst.Bounds())
		dasher := rasterx.NewDasher(s.Width, s.Height, scanner)
		icon.Draw(dasher, 1.0)
	}

	drawLabels(dst, s.Labels)
	return dst, nil
}

func createCanvas(w, h int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return img
}

func drawLabels(dst *image.RGBA, labels []Label) {
	for _, label := range labels {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(label.Color),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(label.X, label.Y),
		}
		d.DrawString(label.Text)
	}
}
