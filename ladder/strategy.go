package ladder

import (
	"fmt"
	"strings"
)

// Strategy selects how the frontier is ordered.
type Strategy int

const (
	// UniformCost orders by path cost alone; it finds a shortest ladder.
	UniformCost Strategy = iota
	// GreedyBestFirst orders by the heuristic alone. It is fast but may
	// return a longer ladder than necessary.
	GreedyBestFirst
	// AStar orders by cost plus heuristic; it finds a shortest ladder while
	// usually expanding fewer words than UniformCost.
	AStar
)

// AllStrategies lists every strategy, in display order.
var AllStrategies = []Strategy{UniformCost, GreedyBestFirst, AStar}

func (s Strategy) String() string {
	switch s {
	case UniformCost:
		return "ucs"
	case GreedyBestFirst:
		return "greedy"
	case AStar:
		return "astar"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

func (s Strategy) valid() bool {
	return s >= UniformCost && s <= AStar
}

// StrategyFromString parses a strategy selector. Matching is
// case-insensitive.
func StrategyFromString(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ucs", "uniform", "uniformcost", "uniform-cost", "dijkstra":
		return UniformCost, nil
	case "greedy", "gbfs", "greedybestfirst", "greedy-best-first":
		return GreedyBestFirst, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// MarshalText lets strategies appear by name in YAML and JSON.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := StrategyFromString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
