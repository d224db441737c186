package solutions

import (
	"testing"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const day02Sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestCubeConundrum_Sample(t *testing.T) {
	solveAndCheck(t, CubeConundrumSolver{}, puzzle.PartOne, day02Sample, 8)
	solveAndCheck(t, CubeConundrumSolver{}, puzzle.PartTwo, day02Sample, 2286)
}

func TestParseCubeGame(t *testing.T) {
	tests := []struct {
		line   string
		id     int64
		rounds []cubeSet
	}{
		{"Game 1: ", 1, []cubeSet{{}}},
		{"Game 2: 3 blue", 2, []cubeSet{{0, 0, 3}}},
		{"Game 4: 8 blue, 3 green, 2 red", 4, []cubeSet{{2, 3, 8}}},
		{"Game 5: 8 blue; 3 green; 2 red", 5, []cubeSet{{0, 0, 8}, {0, 3, 0}, {2, 0, 0}}},
	}
	for _, tt := range tests {
		game, err := parseCubeGame(tt.line)
		if err != nil {
			t.Fatalf("parseCubeGame(%q) error: %v", tt.line, err)
		}
		if game.id != tt.id {
			t.Errorf("parseCubeGame(%q) id = %d, want %d", tt.line, game.id, tt.id)
		}
		if len(game.rounds) != len(tt.rounds) {
			t.Fatalf("parseCubeGame(%q) rounds = %v, want %v", tt.line, game.rounds, tt.rounds)
		}
		for i := range tt.rounds {
			if game.rounds[i] != tt.rounds[i] {
				t.Errorf("parseCubeGame(%q) round %d = %v, want %v", tt.line, i, game.rounds[i], tt.rounds[i])
			}
		}
	}
}

func TestCubeGame_Fewest(t *testing.T) {
	game, err := parseCubeGame("Game 1: 7 blue, 2 green; 2 blue; 2 red, 12 green")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := game.fewest(); got != (cubeSet{2, 12, 7}) {
		t.Errorf("fewest = %v, want [2 12 7]", got)
	}
}

func TestCubeConundrum_InvalidInput(t *testing.T) {
	expectInvalidInput(t, CubeConundrumSolver{}, "Game x: 1 red")
	expectInvalidInput(t, CubeConundrumSolver{}, "Game 1: 1 purple")
}

func TestCubeConundrum_Animate(t *testing.T) {
	animateAndCheck(t, CubeConundrumSolver{}, puzzle.PartOne, day02Sample)
	animateAndCheck(t, CubeConundrumSolver{}, puzzle.PartTwo, day02Sample)
}
