package render

import (
	"image"
	"image/color"
)

// Quantize maps img onto the palette. With dither set, integer Floyd-Steinberg error
// diffusion (non-serpentine, weights 7/3/5/1 over 16) spreads the quantisation error;
// otherwise each pixel takes its nearest palette colour.
func Quantize(img *image.RGBA, pal color.Palette, dither bool) *image.Paletted {
	bounds := img.Bounds()
	out := image.NewPaletted(bounds, pal)
	w := bounds.Dx()
	h := bounds.Dy()

	const fsScale = 16
	const wRight = 7
	const wDownLeft = 3
	const wDown = 5
	const wDownRight = 1

	errCurrR := make([]int, w)
	errCurrG := make([]int, w)
	errCurrB := make([]int, w)
	errNextR := make([]int, w)
	errNextG := make([]int, w)
	errNextB := make([]int, w)

	// nearest colour lookups repeat heavily on flat scenes
	cache := make(map[uint32]uint8)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			xx := bounds.Min.X + x
			yy := bounds.Min.Y + y

			c := img.RGBAAt(xx, yy)
			r := int(c.R)
			g := int(c.G)
			b := int(c.B)
			if dither {
				r = clamp8(r + roundDiv(errCurrR[x], fsScale))
				g = clamp8(g + roundDiv(errCurrG[x], fsScale))
				b = clamp8(b + roundDiv(errCurrB[x], fsScale))
			}

			key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
			idx, ok := cache[key]
			if !ok {
				idx = nearest(pal, r, g, b)
				cache[key] = idx
			}
			out.SetColorIndex(xx, yy, idx)

			if !dither {
				continue
			}

			chosen := color.RGBAModel.Convert(pal[idx]).(color.RGBA)
			er := r - int(chosen.R)
			eg := g - int(chosen.G)
			eb := b - int(chosen.B)

			if x+1 < w {
				errCurrR[x+1] += er * wRight
				errCurrG[x+1] += eg * wRight
				errCurrB[x+1] += eb * wRight
			}
			if y+1 < h {
				if x-1 >= 0 {
					errNextR[x-1] += er * wDownLeft
					errNextG[x-1] += eg * wDownLeft
					errNextB[x-1] += eb * wDownLeft
				}
				errNextR[x] += er * wDown
				errNextG[x] += eg * wDown
				errNextB[x] += eb * wDown
				if x+1 < w {
					errNextR[x+1] += er * wDownRight
					errNextG[x+1] += eg * wDownRight
					errNextB[x+1] += eb * wDownRight
				}
			}
		}

		errCurrR, errNextR = errNextR, errCurrR
		errCurrG, errNextG = errNextG, errCurrG
		errCurrB, errNextB = errNextB, errCurrB
		for i := 0; i < w; i++ {
			errNextR[i] = 0
			errNextG[i] = 0
			errNextB[i] = 0
		}
	}

	return out
}

// nearest returns the index of the palette colour closest in sRGB Euclidean distance.
func nearest(pal color.Palette, r, g, b int) uint8 {
	bestIdx := 0
	bestDist := int(^uint(0) >> 1)
	for i, pc := range pal {
		p := color.RGBAModel.Convert(pc).(color.RGBA)
		dr := r - int(p.R)
		dg := g - int(p.G)
		db := b - int(p.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			bestIdx = i
		}
	}
	return uint8(bestIdx)
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func roundDiv(e, scale int) int {
	if e >= 0 {
		return (e + scale/2) / scale
	}
	return (e - scale/2) / scale
}
