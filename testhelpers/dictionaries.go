// Package testhelpers holds small dictionaries with known ladders.
package testhelpers

import (
	"github.com/domino14/wordladder/config"
	"github.com/domino14/wordladder/dictionary"
)

var DefaultConfig = config.DefaultConfig()

// SmallDictionary has two shortest ladders from cat to dog:
// cat-cot-cog-dog and cat-cot-dot-dog.
func SmallDictionary() *dictionary.Wordlist {
	return dictionary.NewWordlist("small", []string{"cat", "cot", "cog", "dog", "dot", "cag"})
}

// DisconnectedDictionary has no ladder between its two words.
func DisconnectedDictionary() *dictionary.Wordlist {
	return dictionary.NewWordlist("disconnected", []string{"cat", "dog"})
}

// GreedyTrapDictionary makes greedy best-first search take a detour from
// aaa to ddd. The shortest ladder is aaa-aab-abb-abd-dbd-ddd; greedy search
// returns aaa-ada-adb-abb-abd-dbd-ddd.
func GreedyTrapDictionary() *dictionary.Wordlist {
	return dictionary.NewWordlist("greedytrap",
		[]string{"aaa", "aab", "abb", "abd", "ada", "adb", "dbd", "ddd"})
}

// Wordlist loads the word list shipped in the data directory.
func Wordlist() *dictionary.Wordlist {
	wl, err := dictionary.GetWordlist(&DefaultConfig, "words.txt", dictionary.EncodingUTF8)
	if err != nil {
		panic(err)
	}
	return wl
}
