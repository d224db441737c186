package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Fit scales img down so that it fits within maxW x maxH, preserving aspect ratio.
// A non-positive bound is treated as unbounded; images are never scaled up.
func Fit(img *image.RGBA, maxW, maxH int) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	tw, th := computeScaledDimensions(w, h, maxW, maxH)
	if tw == w && th == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func computeScaledDimensions(w, h, maxW, maxH int) (int, int) {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		if s := float64(maxH) / float64(h); s < scale {
			scale = s
		}
	}
	if scale == 1.0 {
		return w, h
	}
	tw := int(float64(w) * scale)
	th := int(float64(h) * scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	return tw, th
}
