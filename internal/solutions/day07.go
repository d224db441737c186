package solutions

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// CamelCardsSolver ranks poker-like hands and totals the winnings.
type CamelCardsSolver struct{}

func init() { mustRegister(CamelCardsSolver{}) }

func (CamelCardsSolver) Day() int      { return 7 }
func (CamelCardsSolver) Title() string { return "Camel Cards" }

type handKind int

const (
	highCard handKind = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

const (
	cardOrder      = "23456789TJQKA"
	cardOrderJoker = "J23456789TQKA"
)

type camelHand struct {
	cards  string
	bid    int64
	kind   handKind
	values [5]int
}

func newCamelHand(cards string, bid int64, jokers bool) (camelHand, error) {
	if len(cards) != 5 {
		return camelHand{}, puzzle.InvalidInput("hand %q must have 5 cards", cards)
	}
	order := cardOrder
	if jokers {
		order = cardOrderJoker
	}
	h := camelHand{cards: cards, bid: bid}
	for i := 0; i < 5; i++ {
		v := strings.IndexByte(order, cards[i])
		if v < 0 {
			return camelHand{}, puzzle.InvalidInput("unknown card %q in %q", cards[i], cards)
		}
		h.values[i] = v
	}
	h.kind = classifyHand(cards, jokers)
	return h, nil
}

// classifyHand determines the hand type. Jokers join the largest group of other
// cards, which always yields the strongest possible hand.
func classifyHand(cards string, jokers bool) handKind {
	counts := make(map[byte]int, 5)
	wild := 0
	for i := 0; i < len(cards); i++ {
		if jokers && cards[i] == 'J' {
			wild++
			continue
		}
		counts[cards[i]]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		return fiveOfAKind
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}

func (h camelHand) less(o camelHand) bool {
	if h.kind != o.kind {
		return h.kind < o.kind
	}
	for i := range h.values {
		if h.values[i] != o.values[i] {
			return h.values[i] < o.values[i]
		}
	}
	return false
}

func (CamelCardsSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	hands, err := parseCamelHands(input, part == puzzle.PartTwo)
	if err != nil {
		return 0, err
	}
	sort.SliceStable(hands, func(i, j int) bool { return hands[i].less(hands[j]) })
	var total int64
	for rank, hand := range hands {
		total += int64(rank+1) * hand.bid
	}
	return total, nil
}

func parseCamelHands(input string, jokers bool) ([]camelHand, error) {
	var hands []camelHand
	for _, line := range puzzle.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, puzzle.InvalidInput("expected '<hand> <bid>', got %q", line)
		}
		bid, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, puzzle.InvalidInput("invalid bid in %q", line)
		}
		hand, err := newCamelHand(fields[0], bid, jokers)
		if err != nil {
			return nil, err
		}
		hands = append(hands, hand)
	}
	return hands, nil
}
