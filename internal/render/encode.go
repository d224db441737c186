package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"log/slog"

	"github.com/jo-hoe/goadvent/internal/common"
)

// ErrNoFrames is returned when there is nothing to encode.
var ErrNoFrames = errors.New("no frames to encode")

// Options control how scenes become images.
type Options struct {
	MaxWidth   int  // 0 = unbounded
	MaxHeight  int  // 0 = unbounded
	FrameDelay int  // GIF frame delay in 100ths of a second
	MaxFrames  int  // 0 = keep all frames
	Dither     bool // Floyd-Steinberg when quantising GIF frames
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		MaxWidth:   1024,
		MaxHeight:  1024,
		FrameDelay: 8,
		MaxFrames:  300,
	}
}

// EncodeGIF renders the scenes into a looping animated GIF.
func EncodeGIF(scenes []*Scene, opts Options) ([]byte, error) {
	scenes = Sample(scenes, opts.MaxFrames)
	if len(scenes) == 0 {
		return nil, ErrNoFrames
	}
	slog.Debug("render: encoding gif", "frames", len(scenes), "dither", opts.Dither)

	frames := make([]*image.Paletted, len(scenes))
	errs := make([]error, len(scenes))
	common.ParallelFor(len(scenes), func(i int) {
		img, err := Rasterize(scenes[i])
		if err != nil {
			errs[i] = fmt.Errorf("frame %d: %w", i, err)
			return
		}
		frames[i] = Quantize(Fit(img, opts.MaxWidth, opts.MaxHeight), palette.Plan9, opts.Dither)
	})
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("failed to rasterize frames: %w", err)
	}

	delay := opts.FrameDelay
	if delay <= 0 {
		delay = DefaultOptions().FrameDelay
	}
	anim := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}
	// hold the final state a little longer
	anim.Delay[len(anim.Delay)-1] = delay * 10

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("failed to encode gif: %w", err)
	}
	slog.Debug("render: gif complete", "output_size_bytes", buf.Len())
	return buf.Bytes(), nil
}

// EncodePNG renders a single scene as PNG.
func EncodePNG(scene *Scene, opts Options) ([]byte, error) {
	if scene == nil {
		return nil, ErrNoFrames
	}
	img, err := Rasterize(scene)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, Fit(img, opts.MaxWidth, opts.MaxHeight)); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Sample keeps at most limit scenes, evenly spaced, always including first and last.
func Sample(scenes []*Scene, limit int) []*Scene {
	if limit <= 0 || len(scenes) <= limit {
		return scenes
	}
	if limit == 1 {
		return scenes[len(scenes)-1:]
	}
	out := make([]*Scene, 0, limit)
	last := len(scenes) - 1
	for i := 0; i < limit; i++ {
		out = append(out, scenes[i*last/(limit-1)])
	}
	return out
}
