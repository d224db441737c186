package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// GenerateKey derives the cache key of a (day, part, input) triple. Inputs that
// differ only in line endings or trailing whitespace share a key.
func GenerateKey(day int, part puzzle.Part, input string) string {
	sum := sha256.Sum256([]byte(puzzle.Normalize(input)))
	return fmt.Sprintf("d%02d-p%d-%s", day, int(part), hex.EncodeToString(sum[:])[:16])
}
