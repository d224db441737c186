package solutions

import (
	"strconv"
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// ScratchcardsSolver scores scratchcards and counts the copies they win.
type ScratchcardsSolver struct{}

func init() { mustRegister(ScratchcardsSolver{}) }

func (ScratchcardsSolver) Day() int      { return 4 }
func (ScratchcardsSolver) Title() string { return "Scratchcards" }

type scratchcard struct {
	id   int
	wins int
}

func (ScratchcardsSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	cards, err := parseScratchcards(input)
	if err != nil {
		return 0, err
	}

	switch part {
	case puzzle.PartOne:
		var sum int64
		for _, card := range cards {
			if card.wins > 0 {
				sum += 1 << (card.wins - 1)
			}
		}
		return sum, nil
	default:
		// copies[i] holds how many instances of card i exist; wins only ever
		// copy later cards, so a single forward pass settles every count.
		copies := make([]int64, len(cards))
		for i := range copies {
			copies[i] = 1
		}
		var total int64
		for i, card := range cards {
			total += copies[i]
			for j := i + 1; j <= i+card.wins && j < len(cards); j++ {
				copies[j] += copies[i]
			}
		}
		return total, nil
	}
}

func parseScratchcards(input string) ([]scratchcard, error) {
	var cards []scratchcard
	for _, line := range puzzle.Lines(input) {
		card, err := parseScratchcard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// parseScratchcard reads "Card 1: 41 48 | 83 86 6".
func parseScratchcard(line string) (scratchcard, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(header, "Card") {
		return scratchcard{}, puzzle.InvalidInput("expected 'Card <id>:' in %q", line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(header, "Card")))
	if err != nil {
		return scratchcard{}, puzzle.InvalidInput("invalid card id in %q", line)
	}
	winningText, chosenText, ok := strings.Cut(body, "|")
	if !ok {
		return scratchcard{}, puzzle.InvalidInput("missing '|' in %q", line)
	}
	winning, err := puzzle.Ints(winningText)
	if err != nil {
		return scratchcard{}, err
	}
	chosen, err := puzzle.Ints(chosenText)
	if err != nil {
		return scratchcard{}, err
	}
	set := make(map[int64]struct{}, len(winning))
	for _, n := range winning {
		set[n] = struct{}{}
	}
	card := scratchcard{id: id}
	for _, n := range chosen {
		if _, hit := set[n]; hit {
			card.wins++
			delete(set, n)
		}
	}
	return card, nil
}
