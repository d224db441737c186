package solutions

import (
	"testing"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const day04Sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestScratchcards_Sample(t *testing.T) {
	solveAndCheck(t, ScratchcardsSolver{}, puzzle.PartOne, day04Sample, 13)
	solveAndCheck(t, ScratchcardsSolver{}, puzzle.PartTwo, day04Sample, 30)
}

func TestScratchcards_Wins(t *testing.T) {
	cards, err := parseScratchcards(day04Sample)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	want := []int{4, 2, 2, 1, 0, 0}
	for i, card := range cards {
		if card.wins != want[i] {
			t.Errorf("card %d wins = %d, want %d", card.id, card.wins, want[i])
		}
	}
}

func TestScratchcards_InvalidInput(t *testing.T) {
	expectInvalidInput(t, ScratchcardsSolver{}, "Card 1: 1 2 3")
	expectInvalidInput(t, ScratchcardsSolver{}, "Card 1: 1 x | 3")
}
