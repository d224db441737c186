package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Part selects which of the two daily questions is answered.
type Part int

const (
	PartOne Part = iota + 1
	PartTwo
)

var ErrInvalidPart = errors.New("invalid part")

// ParsePart accepts "one", "two", "1" or "2" (case-insensitive).
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one", "1":
		return PartOne, nil
	case "two", "2":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected one or two)", ErrInvalidPart, s)
	}
}

func (p Part) String() string {
	switch p {
	case PartOne:
		return "One"
	case PartTwo:
		return "Two"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// Valid reports whether p is PartOne or PartTwo.
func (p Part) Valid() bool {
	return p == PartOne || p == PartTwo
}

// MarshalText encodes the part as "one" or "two".
func (p Part) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPart, int(p))
	}
	return []byte(strings.ToLower(p.String())), nil
}

func (p *Part) UnmarshalText(text []byte) error {
	parsed, err := ParsePart(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
