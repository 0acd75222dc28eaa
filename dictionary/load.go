package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/domino14/word-golib/cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "latin1"
)

// LoadWordlist reads a newline-delimited word list. Words are lowercased;
// lines of differing lengths are kept as-is.
func LoadWordlist(name string, r io.Reader, encoding string) (*Wordlist, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf-8":
	case EncodingLatin1, "iso-8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("%w: unsupported encoding %q", ErrDictionaryUnavailable, encoding)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %v: %w", ErrDictionaryUnavailable, name, err)
	}
	wl := NewWordlist(name, words)
	if wl.Size() == 0 {
		return nil, fmt.Errorf("%w: %v contains no words", ErrDictionaryUnavailable, name)
	}
	log.Debug().Str("name", name).Int("words", wl.Size()).
		Uint64("fingerprint", wl.Fingerprint()).Msg("loaded-wordlist")
	return wl, nil
}

// LoadWordlistFile opens and reads a word list file. The dictionary is
// named after the file.
func LoadWordlistFile(path, encoding string) (*Wordlist, error) {
	file, _, err := cache.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}
	defer file.Close()
	return LoadWordlist(filepath.Base(path), file, encoding)
}
