package ladder

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome of one search. When no ladder exists, Found is
// false and Path is empty; a search from a word to itself is found with a
// one-word path.
type Result struct {
	Strategy Strategy      `yaml:"strategy" json:"strategy"`
	Start    string        `yaml:"start" json:"start"`
	Goal     string        `yaml:"goal" json:"goal"`
	Path     []string      `yaml:"path,omitempty" json:"path,omitempty"`
	Found    bool          `yaml:"found" json:"found"`
	Expanded int           `yaml:"expanded" json:"expanded"`
	Elapsed  time.Duration `yaml:"elapsed" json:"elapsed"`
}

// Length is the number of words in the ladder.
func (r *Result) Length() int {
	return len(r.Path)
}

// Edges is the number of substitutions in the ladder, or 0 if none was found.
func (r *Result) Edges() int {
	if !r.Found {
		return 0
	}
	return len(r.Path) - 1
}

func (r *Result) String() string {
	if !r.Found {
		return fmt.Sprintf("%v: no ladder from %v to %v (expanded %d words in %v)",
			r.Strategy, r.Start, r.Goal, r.Expanded, r.Elapsed)
	}
	return fmt.Sprintf("%v: %v (%d words, %d steps, expanded %d words in %v)",
		r.Strategy, strings.Join(r.Path, " -> "), r.Length(), r.Edges(), r.Expanded, r.Elapsed)
}
