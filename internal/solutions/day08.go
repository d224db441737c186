package solutions

import (
	"sort"
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// HauntedWastelandSolver follows left/right instructions through a node network.
type HauntedWastelandSolver struct{}

func init() { mustRegister(HauntedWastelandSolver{}) }

func (HauntedWastelandSolver) Day() int      { return 8 }
func (HauntedWastelandSolver) Title() string { return "Haunted Wasteland" }

type wastelandMap struct {
	instructions string
	nodes        map[string][2]string
}

// walk counts steps from start until done reports true. A walk longer than
// every (node, instruction) state means done is never reached.
func (m wastelandMap) walk(start string, done func(string) bool) (int64, error) {
	limit := int64(len(m.nodes)*len(m.instructions)) + 1
	node := start
	var steps int64
	for !done(node) {
		if steps > limit {
			return 0, puzzle.InvalidInput("no end node reachable from %s", start)
		}
		next, ok := m.nodes[node]
		if !ok {
			return 0, puzzle.InvalidInput("unknown node %s", node)
		}
		if m.instructions[steps%int64(len(m.instructions))] == 'L' {
			node = next[0]
		} else {
			node = next[1]
		}
		steps++
	}
	return steps, nil
}

func (HauntedWastelandSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	m, err := parseWastelandMap(input)
	if err != nil {
		return 0, err
	}

	if part == puzzle.PartOne {
		if _, ok := m.nodes["AAA"]; !ok {
			return 0, puzzle.InvalidInput("network has no AAA node")
		}
		return m.walk("AAA", func(n string) bool { return n == "ZZZ" })
	}

	var starts []string
	for name := range m.nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, puzzle.InvalidInput("network has no start nodes")
	}
	sort.Strings(starts)
	lengths := make([]int64, 0, len(starts))
	for _, start := range starts {
		n, err := m.walk(start, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		lengths = append(lengths, n)
	}
	return puzzle.LCM(lengths...), nil
}

func parseWastelandMap(input string) (wastelandMap, error) {
	lines := puzzle.Lines(input)
	if len(lines) < 2 {
		return wastelandMap{}, puzzle.InvalidInput("expected instructions followed by nodes")
	}
	m := wastelandMap{instructions: strings.TrimSpace(lines[0]), nodes: make(map[string][2]string)}
	if strings.Trim(m.instructions, "LR") != "" {
		return wastelandMap{}, puzzle.InvalidInput("instructions may only contain L and R: %q", m.instructions)
	}
	for _, line := range lines[1:] {
		name, targets, ok := strings.Cut(line, "=")
		if !ok {
			return wastelandMap{}, puzzle.InvalidInput("expected 'AAA = (BBB, CCC)', got %q", line)
		}
		targets = strings.Trim(strings.TrimSpace(targets), "()")
		left, right, ok := strings.Cut(targets, ",")
		if !ok {
			return wastelandMap{}, puzzle.InvalidInput("expected two targets in %q", line)
		}
		m.nodes[strings.TrimSpace(name)] = [2]string{strings.TrimSpace(left), strings.TrimSpace(right)}
	}
	return m, nil
}
