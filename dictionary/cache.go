package dictionary

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/domino14/word-golib/cache"
	wglconfig "github.com/domino14/word-golib/config"

	"github.com/domino14/wordladder/config"
)

const (
	WordlistCacheKeyPrefix = "wordlist:"
	KWGCacheKeyPrefix      = "kwg:"
)

// WordlistLoadFunc loads a word list into the global object cache. The key
// holds the encoding and the path: wordlist:<encoding>:<path>.
func WordlistLoadFunc(cfg *wglconfig.Config, key string) (interface{}, error) {
	fields := strings.SplitN(strings.TrimPrefix(key, WordlistCacheKeyPrefix), ":", 2)
	if len(fields) != 2 {
		return nil, errors.New("wordlist cache key missing fields: " + key)
	}
	path := fields[1]
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.DataPath, path)
	}
	return LoadWordlistFile(path, fields[0])
}

// KWGLoadFunc loads a KWG dictionary into the global object cache. The key
// is kwg:<letter distribution>:<lexicon>.
func KWGLoadFunc(cfg *wglconfig.Config, key string) (interface{}, error) {
	fields := strings.SplitN(strings.TrimPrefix(key, KWGCacheKeyPrefix), ":", 2)
	if len(fields) != 2 {
		return nil, errors.New("kwg cache key missing fields: " + key)
	}
	return NewKWGDictionary(cfg, fields[1], fields[0])
}

// GetWordlist returns a cached word list, loading it if needed. Relative
// names are resolved against the data path.
func GetWordlist(cfg *config.Config, name, encoding string) (*Wordlist, error) {
	if encoding == "" {
		encoding = EncodingUTF8
	}
	path := cfg.DictionaryPath(name)
	obj, err := cache.Load(cfg.WGLConfig(), WordlistCacheKeyPrefix+encoding+":"+path, WordlistLoadFunc)
	if err != nil {
		if errors.Is(err, ErrDictionaryUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}
	wl, ok := obj.(*Wordlist)
	if !ok {
		return nil, fmt.Errorf("%w: cached object for %v is not a word list", ErrDictionaryUnavailable, name)
	}
	return wl, nil
}

// GetKWG returns a cached KWG-backed dictionary.
func GetKWG(cfg *config.Config, lexiconName, letterDistribution string) (*KWGDictionary, error) {
	obj, err := cache.Load(cfg.WGLConfig(), KWGCacheKeyPrefix+letterDistribution+":"+lexiconName, KWGLoadFunc)
	if err != nil {
		if errors.Is(err, ErrDictionaryUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}
	d, ok := obj.(*KWGDictionary)
	if !ok {
		return nil, fmt.Errorf("%w: cached object for %v is not a lexicon", ErrDictionaryUnavailable, lexiconName)
	}
	return d, nil
}

// Default returns the dictionary named in the config: the KWG lexicon if one
// is set, otherwise the default word list.
func Default(cfg *config.Config) (Dictionary, error) {
	if lex := cfg.GetString(config.ConfigDefaultLexicon); lex != "" {
		return GetKWG(cfg, lex, cfg.GetString(config.ConfigDefaultLetterDistribution))
	}
	return GetWordlist(cfg, cfg.GetString(config.ConfigDefaultDictionary),
		cfg.GetString(config.ConfigDictionaryEncoding))
}
