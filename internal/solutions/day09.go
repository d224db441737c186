package solutions

import "github.com/jo-hoe/goadvent/internal/puzzle"

// MirageMaintenanceSolver extrapolates sensor histories by repeated differencing.
type MirageMaintenanceSolver struct{}

func init() { mustRegister(MirageMaintenanceSolver{}) }

func (MirageMaintenanceSolver) Day() int      { return 9 }
func (MirageMaintenanceSolver) Title() string { return "Mirage Maintenance" }

func (MirageMaintenanceSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	var sum int64
	for _, line := range puzzle.Lines(input) {
		history, err := puzzle.Ints(line)
		if err != nil {
			return 0, err
		}
		if part == puzzle.PartTwo {
			reverse(history)
		}
		sum += extrapolate(history)
	}
	return sum, nil
}

// extrapolate returns the value following seq. Extrapolating backwards is the
// same as extrapolating the reversed sequence forwards.
func extrapolate(seq []int64) int64 {
	if len(seq) == 0 {
		return 0
	}
	var next int64
	diffs := append([]int64(nil), seq...)
	for {
		next += diffs[len(diffs)-1]
		allZero := true
		for i := 0; i+1 < len(diffs); i++ {
			diffs[i] = diffs[i+1] - diffs[i]
			if diffs[i] != 0 {
				allZero = false
			}
		}
		diffs = diffs[:len(diffs)-1]
		if allZero || len(diffs) == 0 {
			return next
		}
	}
}

func reverse(s []int64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
