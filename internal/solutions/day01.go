package solutions

import (
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// TrebuchetSolver recovers calibration values from the first and last digit of each line.
type TrebuchetSolver struct{}

func init() { mustRegister(TrebuchetSolver{}) }

func (TrebuchetSolver) Day() int      { return 1 }
func (TrebuchetSolver) Title() string { return "Trebuchet?!" }

func (TrebuchetSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	var sum int64
	for _, line := range puzzle.Lines(input) {
		sum += calibration(line, part == puzzle.PartTwo)
	}
	return sum, nil
}

var spelledDigits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at s[i]. Spelled digits may overlap ("twone").
func digitAt(s string, i int, spelled bool) (int64, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int64(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, word := range spelledDigits {
		if strings.HasPrefix(s[i:], word) {
			return int64(n + 1), true
		}
	}
	return 0, false
}

// calibration returns first*10+last, or 0 for lines without digits.
func calibration(line string, spelled bool) int64 {
	var first, last int64
	found := false
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			first = d
			found = true
			break
		}
	}
	if !found {
		return 0
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			last = d
			break
		}
	}
	return first*10 + last
}
