// Package ladder searches for word ladders: chains of dictionary words of
// equal length where each word differs from the previous one in exactly one
// letter. The graph is implicit; neighbors are generated on demand.
package ladder

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordladder/dictionary"
)

// Solver runs ladder searches over one dictionary. A Solver is not safe for
// concurrent use; create one per goroutine. The dictionary itself may be
// shared.
type Solver struct {
	dict      dictionary.Dictionary
	alphabet  string
	heuristic Heuristic
	neighbors *NeighborGenerator
	cacheSize int
}

type Option func(*Solver)

// WithAlphabet sets the letters tried at each position.
func WithAlphabet(alphabet string) Option {
	return func(s *Solver) { s.alphabet = alphabet }
}

// WithAdjacencyCache keeps up to size neighbor lists between expansions and
// searches. A size of 0 disables the cache.
func WithAdjacencyCache(size int) Option {
	return func(s *Solver) { s.cacheSize = size }
}

// WithHeuristic replaces Hamming distance for the greedy and A* strategies.
// A* only returns shortest ladders if h never overestimates.
func WithHeuristic(h Heuristic) Option {
	return func(s *Solver) { s.heuristic = h }
}

func NewSolver(dict dictionary.Dictionary, options ...Option) *Solver {
	s := &Solver{
		dict:      dict,
		alphabet:  DefaultAlphabet,
		heuristic: Hamming,
	}
	for _, opt := range options {
		opt(s)
	}
	s.neighbors = NewNeighborGenerator(dict, s.alphabet)
	if s.cacheSize > 0 {
		s.neighbors.cache = newAdjacencyCache(s.cacheSize)
	}
	return s
}

func (s *Solver) Dictionary() dictionary.Dictionary {
	return s.dict
}

// Neighbors returns the dictionary words one substitution away from word.
func (s *Solver) Neighbors(word string) []string {
	return s.neighbors.Neighbors(strings.ToLower(word))
}

// CacheStats returns the adjacency cache hit and miss counts.
func (s *Solver) CacheStats() (hits, misses int) {
	if s.neighbors.cache == nil {
		return 0, 0
	}
	return s.neighbors.cache.hits, s.neighbors.cache.misses
}

// Validate checks the preconditions of a search without running it.
func (s *Solver) Validate(start, goal string, strategy Strategy) error {
	start, goal = strings.ToLower(start), strings.ToLower(goal)
	if !s.dict.Contains(start) {
		return fmt.Errorf("%w: %v", ErrInvalidWord, start)
	}
	if !s.dict.Contains(goal) {
		return fmt.Errorf("%w: %v", ErrInvalidWord, goal)
	}
	if utf8.RuneCountInString(start) != utf8.RuneCountInString(goal) {
		return fmt.Errorf("%w: %v (%d), %v (%d)", ErrIncompatibleLengths,
			start, utf8.RuneCountInString(start), goal, utf8.RuneCountInString(goal))
	}
	if !strategy.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStrategy, int(strategy))
	}
	return nil
}

// Solve searches for a ladder from start to goal. Precondition failures are
// returned as errors before any search work. A search that exhausts the
// frontier is not an error; it returns a Result with Found unset.
// The context is checked once per frontier pop.
func (s *Solver) Solve(ctx context.Context, start, goal string, strategy Strategy) (*Result, error) {
	if err := s.Validate(start, goal, strategy); err != nil {
		return nil, err
	}
	start, goal = strings.ToLower(start), strings.ToLower(goal)

	ts := time.Now()
	var path []string
	var expanded int
	var err error
	switch strategy {
	case UniformCost:
		path, expanded, err = s.costOrdered(ctx, start, goal, false)
	case AStar:
		path, expanded, err = s.costOrdered(ctx, start, goal, true)
	case GreedyBestFirst:
		path, expanded, err = s.greedy(ctx, start, goal)
	}
	elapsed := time.Since(ts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Strategy: strategy,
		Start:    start,
		Goal:     goal,
		Path:     path,
		Found:    path != nil,
		Expanded: expanded,
		Elapsed:  elapsed,
	}
	log.Debug().Str("strategy", strategy.String()).
		Str("start", start).Str("goal", goal).
		Bool("found", res.Found).Int("length", res.Length()).
		Int("expanded", expanded).Dur("elapsed", elapsed).
		Msg("ladder-search")
	return res, nil
}

// costOrdered is uniform-cost search, or A* when withHeuristic is set. Words
// may be pushed more than once; entries whose cost is above the best known
// cost for their word are discarded on pop.
func (s *Solver) costOrdered(ctx context.Context, start, goal string, withHeuristic bool) ([]string, int, error) {
	costSoFar := map[string]int{start: 0}
	cameFrom := make(map[string]string)
	f := &frontier{}

	priority := func(word string, cost int) int {
		if withHeuristic {
			return cost + s.heuristic(word, goal)
		}
		return cost
	}
	f.push(start, 0, priority(start, 0))

	expanded := 0
	for f.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, expanded, err
		}
		cur := f.pop()
		if cur.cost > costSoFar[cur.word] {
			continue
		}
		if cur.word == goal {
			return reconstructPath(cameFrom, goal), expanded, nil
		}
		expanded++
		newCost := cur.cost + 1
		for _, nb := range s.neighbors.Neighbors(cur.word) {
			if old, ok := costSoFar[nb]; ok && newCost >= old {
				continue
			}
			costSoFar[nb] = newCost
			cameFrom[nb] = cur.word
			f.push(nb, newCost, priority(nb, newCost))
		}
	}
	return nil, expanded, nil
}

// greedy is greedy best-first search. It orders by the heuristic only and
// never expands a word twice, so the ladder it returns can be longer than
// the shortest one. The first predecessor recorded for a word is kept.
func (s *Solver) greedy(ctx context.Context, start, goal string) ([]string, int, error) {
	visited := make(map[string]struct{})
	cameFrom := make(map[string]string)
	f := &frontier{}
	f.push(start, 0, s.heuristic(start, goal))

	expanded := 0
	for f.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, expanded, err
		}
		cur := f.pop()
		if _, ok := visited[cur.word]; ok {
			continue
		}
		if cur.word == goal {
			return reconstructPath(cameFrom, goal), expanded, nil
		}
		visited[cur.word] = struct{}{}
		expanded++
		for _, nb := range s.neighbors.Neighbors(cur.word) {
			if _, ok := visited[nb]; ok {
				continue
			}
			if _, ok := cameFrom[nb]; ok {
				continue
			}
			cameFrom[nb] = cur.word
			f.push(nb, cur.cost+1, s.heuristic(nb, goal))
		}
	}
	return nil, expanded, nil
}
