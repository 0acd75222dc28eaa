package dictionary

import (
	"fmt"
	"strings"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/domino14/word-golib/kwg"
	"github.com/domino14/word-golib/tilemapping"
)

// KWGDictionary answers membership queries against a compiled KWG lexicon,
// the same word graphs used for move generation. It cannot enumerate words.
type KWGDictionary struct {
	name string
	lex  kwg.Lexicon
	tm   *tilemapping.TileMapping
}

// NewKWGDictionary loads the named lexicon and the letter distribution used
// to convert strings into machine words.
func NewKWGDictionary(cfg *wglconfig.Config, lexiconName, letterDistribution string) (*KWGDictionary, error) {
	dist, err := tilemapping.GetDistribution(cfg, letterDistribution)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}
	k, err := kwg.GetKWG(cfg, lexiconName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}
	return &KWGDictionary{
		name: lexiconName,
		lex:  kwg.Lexicon{KWG: *k},
		tm:   dist.TileMapping(),
	}, nil
}

func (d *KWGDictionary) Name() string {
	return d.name
}

func (d *KWGDictionary) Contains(word string) bool {
	if word == "" {
		return false
	}
	// Lowercase letters are designated blanks in a tile mapping, so the
	// lookup goes through the uppercase form.
	mw, err := tilemapping.ToMachineWord(strings.ToUpper(word), d.tm)
	if err != nil {
		return false
	}
	return d.lex.HasWord(mw)
}
