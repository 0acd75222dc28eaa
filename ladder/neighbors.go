package ladder

import (
	"strings"

	"github.com/domino14/wordladder/dictionary"
)

// DefaultAlphabet is the set of letters tried at each position.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// NeighborGenerator finds the dictionary words one substitution away from
// a word. It is not safe for concurrent use when a cache is attached.
type NeighborGenerator struct {
	dict     dictionary.Dictionary
	alphabet []rune
	cache    *adjacencyCache
}

func NewNeighborGenerator(dict dictionary.Dictionary, alphabet string) *NeighborGenerator {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	return &NeighborGenerator{
		dict:     dict,
		alphabet: []rune(strings.ToLower(alphabet)),
	}
}

// Neighbors returns every dictionary word formed by replacing exactly one
// letter of word. Order is by position, then by alphabet order. The word
// itself need not be in the dictionary and is never returned. The returned
// slice must not be modified.
func (g *NeighborGenerator) Neighbors(word string) []string {
	if g.cache != nil {
		if nbs, ok := g.cache.get(word); ok {
			return nbs
		}
	}
	nbs := g.generate(word)
	if g.cache != nil {
		g.cache.put(word, nbs)
	}
	return nbs
}

func (g *NeighborGenerator) generate(word string) []string {
	letters := []rune(word)
	seen := make(map[string]struct{})
	var nbs []string
	for i, orig := range letters {
		for _, r := range g.alphabet {
			if r == orig {
				continue
			}
			letters[i] = r
			candidate := string(letters)
			if _, ok := seen[candidate]; ok {
				continue
			}
			if g.dict.Contains(candidate) {
				seen[candidate] = struct{}{}
				nbs = append(nbs, candidate)
			}
		}
		letters[i] = orig
	}
	return nbs
}
