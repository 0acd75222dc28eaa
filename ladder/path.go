package ladder

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/domino14/wordladder/dictionary"
)

// reconstructPath follows predecessors back from goal. The first word with
// no predecessor is the start word.
func reconstructPath(cameFrom map[string]string, goal string) []string {
	path := []string{goal}
	cur := goal
	for {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path
}

// OneApart reports whether a and b have the same length and differ in
// exactly one position.
func OneApart(a, b string) bool {
	if utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		return false
	}
	return Hamming(a, b) == 1
}

// ValidatePath checks that every word of path is in the dictionary and that
// consecutive words are one substitution apart. An empty path is invalid.
func ValidatePath(dict dictionary.Dictionary, path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i, word := range path {
		if !dict.Contains(word) {
			return fmt.Errorf("%w: %v is not in %v", ErrInvalidPath, word, dict.Name())
		}
		if i > 0 && !OneApart(strings.ToLower(path[i-1]), strings.ToLower(word)) {
			return fmt.Errorf("%w: %v -> %v is not a single substitution",
				ErrInvalidPath, path[i-1], word)
		}
	}
	return nil
}
