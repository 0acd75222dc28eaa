// Package batch solves many ladder queries in parallel and summarizes how
// each strategy performed.
package batch

import (
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/domino14/wordladder/ladder"
)

var ErrNotEnoughWords = errors.New("not enough words to draw queries from")

// Query is one search to run. An empty Strategy means the runner's default.
type Query struct {
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Strategy string `yaml:"strategy,omitempty"`
}

// Outcome pairs a query with its result, or with the error that kept it
// from running. Error is a string so outcomes can be written out as YAML.
// Strategy is the strategy the query ran with, empty if it did not parse.
type Outcome struct {
	Query    Query          `yaml:"query"`
	Strategy string         `yaml:"strategy,omitempty"`
	Result   *ladder.Result `yaml:"result,omitempty"`
	Error    string         `yaml:"error,omitempty"`
}

// WordSource can enumerate its words of a given length.
type WordSource interface {
	Words(length int) []string
}

// LoadQueries reads a YAML list of queries.
func LoadQueries(r io.Reader) ([]Query, error) {
	var queries []Query
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&queries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding queries: %w", err)
	}
	return queries, nil
}

// WriteYAML writes outcomes as a YAML list.
func WriteYAML(w io.Writer, outcomes []Outcome) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(outcomes); err != nil {
		return err
	}
	return enc.Close()
}

// RandomQueries draws n random start/end pairs of the given length, one
// query per pair for each strategy. Start and end are always different
// words; whether a ladder connects them is left to chance.
func RandomQueries(words WordSource, length, n int, strategies []ladder.Strategy) ([]Query, error) {
	pool := words.Words(length)
	if len(pool) < 2 {
		return nil, fmt.Errorf("%w: %d words of length %d", ErrNotEnoughWords, len(pool), length)
	}
	if len(strategies) == 0 {
		strategies = []ladder.Strategy{ladder.AStar}
	}
	queries := make([]Query, 0, n*len(strategies))
	for range n {
		i := frand.Intn(len(pool))
		j := frand.Intn(len(pool) - 1)
		if j >= i {
			j++
		}
		queries = append(queries, lo.Map(strategies, func(s ladder.Strategy, _ int) Query {
			return Query{Start: pool[i], End: pool[j], Strategy: s.String()}
		})...)
	}
	return queries, nil
}
