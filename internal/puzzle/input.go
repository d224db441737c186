package puzzle

import (
	"strconv"
	"strings"
)

// Normalize converts CRLF to LF and trims trailing whitespace.
func Normalize(input string) string {
	return strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), " \t\n")
}

// Lines returns the non-empty lines of input.
func Lines(input string) []string {
	var out []string
	for _, line := range strings.Split(Normalize(input), "\n") {
		if line = strings.TrimRight(line, " \t"); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Blocks splits input on blank lines.
func Blocks(input string) []string {
	var out []string
	for _, block := range strings.Split(Normalize(input), "\n\n") {
		if block = strings.Trim(block, "\n"); block != "" {
			out = append(out, block)
		}
	}
	return out
}

// Ints parses whitespace separated integers.
func Ints(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, InvalidInput("not a number: %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
