// Package dictionary holds the word sets that ladders are searched over.
package dictionary

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

// ErrDictionaryUnavailable is returned when a word source could not be
// loaded, or loaded no words at all.
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// Dictionary is a read-only set of lowercase words. Implementations must be
// safe for concurrent reads.
type Dictionary interface {
	Name() string
	Contains(word string) bool
}

// Wordlist is a Dictionary backed by an in-memory set.
type Wordlist struct {
	name        string
	words       map[string]struct{}
	fingerprint uint64
}

// NewWordlist builds a Wordlist from words. Words are lowercased and
// trimmed; empty entries are dropped.
func NewWordlist(name string, words []string) *Wordlist {
	w := &Wordlist{name: name, words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		w.words[word] = struct{}{}
	}
	w.fingerprint = fingerprint(w.words)
	return w
}

func fingerprint(words map[string]struct{}) uint64 {
	sorted := lo.Keys(words)
	sort.Strings(sorted)
	h := xxhash.New()
	for _, word := range sorted {
		h.Write([]byte(word))
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

func (w *Wordlist) Name() string {
	return w.name
}

func (w *Wordlist) Contains(word string) bool {
	_, ok := w.words[strings.ToLower(word)]
	return ok
}

func (w *Wordlist) Size() int {
	return len(w.words)
}

// Fingerprint identifies the word set independently of its name or the
// order it was loaded in.
func (w *Wordlist) Fingerprint() uint64 {
	return w.fingerprint
}

// Words returns the sorted words of the given length, counted in letters.
// A length of 0 returns every word.
func (w *Wordlist) Words(length int) []string {
	words := lo.Filter(lo.Keys(w.words), func(word string, _ int) bool {
		return length == 0 || utf8.RuneCountInString(word) == length
	})
	sort.Strings(words)
	return words
}

// Lengths returns a count of words per word length.
func (w *Wordlist) Lengths() map[int]int {
	return lo.CountValuesBy(lo.Keys(w.words), func(word string) int {
		return utf8.RuneCountInString(word)
	})
}
