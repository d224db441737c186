package solutions

import (
	"strconv"
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// HotSpringsSolver counts the arrangements of damaged springs consistent with each row.
type HotSpringsSolver struct{}

func init() { mustRegister(HotSpringsSolver{}) }

func (HotSpringsSolver) Day() int      { return 12 }
func (HotSpringsSolver) Title() string { return "Hot Springs" }

const springUnfold = 5

type springRow struct {
	springs string
	groups  []int
}

func (r springRow) unfold(times int) springRow {
	springs := make([]string, times)
	var groups []int
	for i := range springs {
		springs[i] = r.springs
		groups = append(groups, r.groups...)
	}
	return springRow{springs: strings.Join(springs, "?"), groups: groups}
}

// arrangements counts placements with a table over (spring index, group index).
func (r springRow) arrangements() int64 {
	n, m := len(r.springs), len(r.groups)
	memo := make([][]int64, n+1)
	for i := range memo {
		memo[i] = make([]int64, m+1)
		for j := range memo[i] {
			memo[i][j] = -1
		}
	}

	var count func(i, j int) int64
	count = func(i, j int) int64 {
		if i >= n {
			if j == m {
				return 1
			}
			return 0
		}
		if memo[i][j] >= 0 {
			return memo[i][j]
		}
		var total int64
		c := r.springs[i]
		if c == '.' || c == '?' {
			total += count(i+1, j)
		}
		if (c == '#' || c == '?') && j < m && r.fits(i, r.groups[j]) {
			total += count(min(n, i+r.groups[j]+1), j+1)
		}
		memo[i][j] = total
		return total
	}
	return count(0, 0)
}

// fits reports whether a damaged run of size length can start at i.
func (r springRow) fits(i, length int) bool {
	end := i + length
	if end > len(r.springs) {
		return false
	}
	if strings.ContainsRune(r.springs[i:end], '.') {
		return false
	}
	return end == len(r.springs) || r.springs[end] != '#'
}

func (HotSpringsSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	var sum int64
	for _, line := range puzzle.Lines(input) {
		row, err := parseSpringRow(line)
		if err != nil {
			return 0, err
		}
		if part == puzzle.PartTwo {
			row = row.unfold(springUnfold)
		}
		sum += row.arrangements()
	}
	return sum, nil
}

func parseSpringRow(line string) (springRow, error) {
	springs, groupText, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return springRow{}, puzzle.InvalidInput("expected '<springs> <groups>', got %q", line)
	}
	if strings.Trim(springs, ".#?") != "" {
		return springRow{}, puzzle.InvalidInput("unknown spring state in %q", springs)
	}
	row := springRow{springs: springs}
	for _, g := range strings.Split(groupText, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(g))
		if err != nil || n <= 0 {
			return springRow{}, puzzle.InvalidInput("invalid group size %q in %q", g, line)
		}
		row.groups = append(row.groups, n)
	}
	return row, nil
}
