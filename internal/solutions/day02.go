package solutions

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
	"github.com/jo-hoe/goadvent/internal/render"
)

// CubeConundrumSolver checks cube draws against the bag's contents.
type CubeConundrumSolver struct{}

func init() { mustRegister(CubeConundrumSolver{}) }

func (CubeConundrumSolver) Day() int      { return 2 }
func (CubeConundrumSolver) Title() string { return "Cube Conundrum" }

type cubeColor int

const (
	cubeRed cubeColor = iota
	cubeGreen
	cubeBlue
)

// cubeSet counts cubes per colour, indexed by cubeColor.
type cubeSet [3]int64

// cubeBag is what the elf claims is in the bag.
var cubeBag = cubeSet{12, 13, 14}

type cubeGame struct {
	id     int64
	rounds []cubeSet
}

func (g cubeGame) possible(bag cubeSet) bool {
	for _, round := range g.rounds {
		for c, n := range round {
			if n > bag[c] {
				return false
			}
		}
	}
	return true
}

// fewest returns the per-colour maximum over all rounds.
func (g cubeGame) fewest() cubeSet {
	var out cubeSet
	for _, round := range g.rounds {
		for c, n := range round {
			out[c] = max(out[c], n)
		}
	}
	return out
}

func (CubeConundrumSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	games, err := parseCubeGames(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, game := range games {
		switch part {
		case puzzle.PartOne:
			if game.possible(cubeBag) {
				sum += game.id
			}
		case puzzle.PartTwo:
			f := game.fewest()
			sum += f[cubeRed] * f[cubeGreen] * f[cubeBlue]
		}
	}
	return sum, nil
}

func parseCubeGames(input string) ([]cubeGame, error) {
	var games []cubeGame
	for _, line := range puzzle.Lines(input) {
		game, err := parseCubeGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

// parseCubeGame reads "Game 5: 8 blue, 3 green; 2 red".
func parseCubeGame(line string) (cubeGame, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(header, "Game ") {
		return cubeGame{}, puzzle.InvalidInput("expected 'Game <id>:' in %q", line)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(header, "Game ")), 10, 64)
	if err != nil {
		return cubeGame{}, puzzle.InvalidInput("invalid game id in %q", line)
	}
	game := cubeGame{id: id}
	for _, roundText := range strings.Split(body, ";") {
		var round cubeSet
		for _, draw := range strings.Split(roundText, ",") {
			draw = strings.TrimSpace(draw)
			if draw == "" {
				continue
			}
			countText, colorText, ok := strings.Cut(draw, " ")
			if !ok {
				return cubeGame{}, puzzle.InvalidInput("invalid draw %q", draw)
			}
			n, err := strconv.ParseInt(countText, 10, 64)
			if err != nil {
				return cubeGame{}, puzzle.InvalidInput("invalid cube count %q", draw)
			}
			switch strings.TrimSpace(colorText) {
			case "red":
				round[cubeRed] += n
			case "green":
				round[cubeGreen] += n
			case "blue":
				round[cubeBlue] += n
			default:
				return cubeGame{}, puzzle.InvalidInput("unknown cube colour %q", colorText)
			}
		}
		game.rounds = append(game.rounds, round)
	}
	return game, nil
}

const (
	cubeRowHeight = 22
	cubeBarWidth  = 6
	cubeRoundGap  = 6
	cubeLabelW    = 70
	cubeScale     = 1.0
)

// Animate reveals one game per frame. Each round is drawn as three bars, with the bag
// limits as guide lines; part two overlays the fewest cubes needed.
func (CubeConundrumSolver) Animate(part puzzle.Part, input string) ([]*render.Scene, error) {
	if !part.Valid() {
		return nil, unknownPart(part)
	}
	games, err := parseCubeGames(input)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, puzzle.InvalidInput("no games")
	}

	maxRounds := 0
	for _, g := range games {
		maxRounds = max(maxRounds, len(g.rounds))
	}
	width := cubeLabelW + maxRounds*(3*cubeBarWidth+cubeRoundGap) + 120
	height := render.HeaderHeight + len(games)*cubeRowHeight + 4
	palette := [3]color.RGBA{render.Red, render.Green, render.Blue}

	base := render.NewScene(width, height)
	var frames []*render.Scene
	var sum int64
	current := base
	for i, game := range games {
		next := current.Clone()
		y := float64(render.HeaderHeight + i*cubeRowHeight + cubeRowHeight - 2)
		for r, round := range game.rounds {
			x := float64(cubeLabelW + r*(3*cubeBarWidth+cubeRoundGap))
			for c, n := range round {
				h := float64(n) * cubeScale
				next.Add(render.Rect{X: x + float64(c*cubeBarWidth), Y: y - h, W: cubeBarWidth - 1, H: h, Fill: palette[c]})
			}
		}

		status := render.Gray
		switch part {
		case puzzle.PartOne:
			if game.possible(cubeBag) {
				status = render.Green
				sum += game.id
			} else {
				status = render.Red
			}
		case puzzle.PartTwo:
			f := game.fewest()
			power := f[cubeRed] * f[cubeGreen] * f[cubeBlue]
			sum += power
			status = render.LightBlue
			next.AddLabel(width-115, int(y)-4, "power "+strconv.FormatInt(power, 10), render.White)
		}
		next.AddLabel(4, int(y)-4, "Game "+strconv.FormatInt(game.id, 10), status)

		frame := next.Clone()
		frame.Header("Part %v  game %d/%d  sum %d", part, i+1, len(games), sum)
		frames = append(frames, frame)
		current = next
	}
	return frames, nil
}
