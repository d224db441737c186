package solutions

import (
	"math"
	"sort"
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
	"github.com/jo-hoe/goadvent/internal/render"
)

// AlmanacSolver follows seeds through the almanac's chain of range mappings.
type AlmanacSolver struct{}

func init() { mustRegister(AlmanacSolver{}) }

func (AlmanacSolver) Day() int      { return 5 }
func (AlmanacSolver) Title() string { return "If You Give A Seed A Fertilizer" }

// span is the half-open interval [start, end).
type span struct {
	start, end int64
}

// rangeMapping shifts every value in src by offset.
type rangeMapping struct {
	src    span
	offset int64
}

// almanacStage is one "x-to-y map" block.
type almanacStage struct {
	name     string
	mappings []rangeMapping
}

func (AlmanacSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	seeds, stages, err := parseAlmanac(input, part)
	if err != nil {
		return 0, err
	}
	return bestLocation(seeds, stages), nil
}

// bestLocation pushes seed spans through every stage and returns the lowest location.
func bestLocation(seeds []span, stages []almanacStage) int64 {
	spans := seeds
	for _, stage := range stages {
		spans = propagate(spans, stage.mappings)
	}
	return lowestStart(spans)
}

// propagate maps spans through one stage. Parts of a span covered by a mapping are
// shifted; parts not covered by any mapping pass through unchanged.
func propagate(spans []span, mappings []rangeMapping) []span {
	pending := append([]span(nil), spans...)
	var mapped []span
	for _, m := range mappings {
		var rest []span
		for _, s := range pending {
			lo := max(s.start, m.src.start)
			hi := min(s.end, m.src.end)
			if lo >= hi {
				rest = append(rest, s)
				continue
			}
			mapped = append(mapped, span{start: lo + m.offset, end: hi + m.offset})
			if s.start < lo {
				rest = append(rest, span{start: s.start, end: lo})
			}
			if hi < s.end {
				rest = append(rest, span{start: hi, end: s.end})
			}
		}
		pending = rest
	}
	return append(mapped, pending...)
}

func parseAlmanac(input string, part puzzle.Part) ([]span, []almanacStage, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return nil, nil, puzzle.InvalidInput("empty almanac")
	}
	seedText, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return nil, nil, puzzle.InvalidInput("expected 'seeds:' header")
	}
	values, err := puzzle.Ints(seedText)
	if err != nil {
		return nil, nil, err
	}
	if len(values) == 0 {
		return nil, nil, puzzle.InvalidInput("no seeds")
	}

	var seeds []span
	switch part {
	case puzzle.PartOne:
		for _, v := range values {
			seeds = append(seeds, span{start: v, end: v + 1})
		}
	case puzzle.PartTwo:
		if len(values)%2 != 0 {
			return nil, nil, puzzle.InvalidInput("seed ranges need start/length pairs")
		}
		for i := 0; i < len(values); i += 2 {
			seeds = append(seeds, span{start: values[i], end: values[i] + values[i+1]})
		}
	}

	var stages []almanacStage
	for _, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		name, ok := strings.CutSuffix(strings.TrimSpace(lines[0]), " map:")
		if !ok {
			return nil, nil, puzzle.InvalidInput("expected map header, got %q", lines[0])
		}
		stage := almanacStage{name: name}
		for _, line := range lines[1:] {
			nums, err := puzzle.Ints(line)
			if err != nil {
				return nil, nil, err
			}
			if len(nums) != 3 {
				return nil, nil, puzzle.InvalidInput("mapping needs three numbers: %q", line)
			}
			dest, src, length := nums[0], nums[1], nums[2]
			stage.mappings = append(stage.mappings, rangeMapping{
				src:    span{start: src, end: src + length},
				offset: dest - src,
			})
		}
		sort.Slice(stage.mappings, func(i, j int) bool {
			return stage.mappings[i].src.start < stage.mappings[j].src.start
		})
		stages = append(stages, stage)
	}
	if len(stages) == 0 {
		return nil, nil, puzzle.InvalidInput("no maps")
	}
	return seeds, stages, nil
}

const (
	almanacLabelW = 96
	almanacLineW  = 520
	almanacRowH   = 36
)

// Animate draws one number line per resource. Seed spans move down the lines
// one stage at a time; before each move the stage's source ranges are marked
// on the current line.
func (AlmanacSolver) Animate(part puzzle.Part, input string) ([]*render.Scene, error) {
	if !part.Valid() {
		return nil, unknownPart(part)
	}
	seeds, stages, err := parseAlmanac(input, part)
	if err != nil {
		return nil, err
	}

	levels := [][]span{seeds}
	for _, stage := range stages {
		levels = append(levels, propagate(levels[len(levels)-1], stage.mappings))
	}
	var top int64 = 1
	for _, level := range levels {
		for _, s := range level {
			top = max(top, s.end)
		}
	}
	for _, stage := range stages {
		for _, m := range stage.mappings {
			top = max(top, m.src.end)
		}
	}

	xOf := func(v int64) float64 {
		return almanacLabelW + float64(v)/float64(top)*almanacLineW
	}
	rowY := func(row int) float64 {
		return float64(render.HeaderHeight + row*almanacRowH + almanacRowH/2)
	}
	drawSpans := func(s *render.Scene, row int, spans []span) {
		fill := render.Hue(float64(row) / float64(len(levels)))
		for _, sp := range spans {
			x := xOf(sp.start)
			w := max(2, xOf(sp.end)-x)
			s.Add(render.Rect{X: x, Y: rowY(row) - 6, W: w, H: 12, Fill: fill})
		}
	}

	base := render.NewScene(almanacLabelW+almanacLineW+16, render.HeaderHeight+len(levels)*almanacRowH+4)
	for row := range levels {
		name := "seed"
		if row > 0 {
			name = stages[row-1].name
			if _, to, ok := strings.Cut(name, "-to-"); ok {
				name = to
			}
		}
		y := rowY(row)
		base.Add(render.Line{X1: xOf(0), Y1: y, X2: xOf(top), Y2: y, Width: 1, Stroke: render.Gray})
		base.AddLabel(4, int(y)+4, name, render.White)
	}

	var frames []*render.Scene
	current := base.Clone()
	drawSpans(current, 0, levels[0])
	for row, stage := range stages {
		marked := current.Clone()
		for _, m := range stage.mappings {
			x := xOf(m.src.start)
			marked.Add(render.Rect{X: x, Y: rowY(row) - 12, W: max(1, xOf(m.src.end)-x), H: 3, Fill: render.Yellow})
		}
		marked.Header("Part %v  %s", part, stage.name)
		frames = append(frames, marked)

		drawSpans(current, row+1, levels[row+1])
		frame := current.Clone()
		frame.Header("Part %v  %s  lowest %d", part, stage.name, lowestStart(levels[row+1]))
		frames = append(frames, frame)
	}
	return frames, nil
}

func lowestStart(spans []span) int64 {
	best := int64(math.MaxInt64)
	for _, s := range spans {
		best = min(best, s.start)
	}
	return best
}
