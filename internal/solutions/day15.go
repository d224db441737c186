package solutions

import (
	"strconv"
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
	"github.com/jo-hoe/goadvent/internal/render"
)

// LensLibrarySolver runs the HASH and HASHMAP procedures of the initialization sequence.
type LensLibrarySolver struct{}

func init() { mustRegister(LensLibrarySolver{}) }

func (LensLibrarySolver) Day() int      { return 15 }
func (LensLibrarySolver) Title() string { return "Lens Library" }

const lensBoxes = 256

// hash is the Holiday ASCII String Helper algorithm.
func hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % lensBoxes
	}
	return h
}

type lens struct {
	label string
	focal int
}

type lensStep struct {
	raw   string
	label string
	// focal is 0 for a removal.
	focal int
}

// lensShelf is the row of boxes the HASHMAP procedure fills.
type lensShelf [lensBoxes][]lens

func (s *lensShelf) apply(step lensStep) {
	box := &s[hash(step.label)]
	for i, l := range *box {
		if l.label != step.label {
			continue
		}
		if step.focal == 0 {
			*box = append((*box)[:i:i], (*box)[i+1:]...)
		} else {
			(*box)[i].focal = step.focal
		}
		return
	}
	if step.focal != 0 {
		*box = append(*box, lens{label: step.label, focal: step.focal})
	}
}

func (s *lensShelf) focusingPower() int64 {
	var power int64
	for b, box := range s {
		for slot, l := range box {
			power += int64((b + 1) * (slot + 1) * l.focal)
		}
	}
	return power
}

func parseLensSteps(input string) ([]lensStep, error) {
	text := strings.ReplaceAll(puzzle.Normalize(input), "\n", "")
	if text == "" {
		return nil, puzzle.InvalidInput("empty initialization sequence")
	}
	var steps []lensStep
	for _, raw := range strings.Split(text, ",") {
		step := lensStep{raw: raw}
		switch {
		case strings.HasSuffix(raw, "-"):
			step.label = strings.TrimSuffix(raw, "-")
		case strings.Contains(raw, "="):
			label, focalText, _ := strings.Cut(raw, "=")
			focal, err := strconv.Atoi(focalText)
			if err != nil || focal < 1 || focal > 9 {
				return nil, puzzle.InvalidInput("invalid focal length in %q", raw)
			}
			step.label, step.focal = label, focal
		default:
			return nil, puzzle.InvalidInput("step %q is neither '-' nor '='", raw)
		}
		if step.label == "" {
			return nil, puzzle.InvalidInput("step %q has no label", raw)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (LensLibrarySolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	steps, err := parseLensSteps(input)
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartOne {
		var sum int64
		for _, step := range steps {
			sum += int64(hash(step.raw))
		}
		return sum, nil
	}
	var shelf lensShelf
	for _, step := range steps {
		shelf.apply(step)
	}
	return shelf.focusingPower(), nil
}

const (
	boxesPerRow = 16
	boxSize     = 40
	lensWidth   = 5
)

func boxOrigin(b int) (float64, float64) {
	return float64(b%boxesPerRow*boxSize) + 1, float64(render.HeaderHeight+b/boxesPerRow*boxSize) + 1
}

// Animate lays the 256 boxes out as a 16x16 grid. Part one marks the box each
// step hashes to; part two shows the lenses in every box, coloured by focal length.
func (LensLibrarySolver) Animate(part puzzle.Part, input string) ([]*render.Scene, error) {
	if !part.Valid() {
		return nil, unknownPart(part)
	}
	steps, err := parseLensSteps(input)
	if err != nil {
		return nil, err
	}

	base := render.NewScene(boxesPerRow*boxSize, render.HeaderHeight+lensBoxes/boxesPerRow*boxSize)
	for b := 0; b < lensBoxes; b++ {
		x, y := boxOrigin(b)
		base.Add(render.Rect{X: x, Y: y, W: boxSize - 2, H: boxSize - 2, Fill: render.Gray})
	}

	stride := frameStride(len(steps))
	var frames []*render.Scene
	var shelf lensShelf
	var sum int64
	for i, step := range steps {
		h := hash(step.raw)
		sum += int64(h)
		shelf.apply(step)
		if i%stride != 0 && i != len(steps)-1 {
			continue
		}

		frame := base.Clone()
		if part == puzzle.PartOne {
			x, y := boxOrigin(h)
			frame.Add(render.Rect{X: x, Y: y, W: boxSize - 2, H: boxSize - 2, Fill: render.Yellow})
			frame.Header("Part %v  step %d/%d  %s -> %d  sum %d", part, i+1, len(steps), step.raw, h, sum)
		} else {
			for b, box := range shelf {
				x, y := boxOrigin(b)
				for slot, l := range box {
					lx := x + 2 + float64(slot*(lensWidth+1))
					if lx+lensWidth > x+boxSize-2 {
						break
					}
					height := float64(l.focal) * 3.5
					frame.Add(render.Rect{X: lx, Y: y + boxSize - 4 - height, W: lensWidth, H: height, Fill: render.Hue(float64(l.focal) / 10)})
				}
			}
			x, y := boxOrigin(hash(step.label))
			frame.Add(render.Line{X1: x, Y1: y + boxSize - 2, X2: x + boxSize - 2, Y2: y + boxSize - 2, Width: 2, Stroke: render.Yellow})
			frame.Header("Part %v  step %d/%d  %s  power %d", part, i+1, len(steps), step.raw, shelf.focusingPower())
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
