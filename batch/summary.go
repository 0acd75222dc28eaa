package batch

import (
	"fmt"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/domino14/wordladder/ladder"
	"github.com/domino14/wordladder/stats"
)

const maxHistogramBins = 15

// StrategySummary aggregates the outcomes of one strategy. Length and
// Expanded only count queries where a ladder was found; Elapsed counts
// every query that ran.
type StrategySummary struct {
	Strategy ladder.Strategy
	Queries  int
	Found    int
	NotFound int
	Errors   int

	Length    stats.Statistic
	Expanded  stats.Statistic
	ElapsedMS stats.Statistic

	lengths []float64
}

func (s *StrategySummary) MedianLength() float64 {
	return stats.Median(s.lengths)
}

type Summary struct {
	Strategies []*StrategySummary
	// Errors counts outcomes whose strategy could not be determined.
	Errors int
}

// Summarize groups outcomes by strategy. Strategies with no outcomes are
// left out.
func Summarize(outcomes []Outcome) *Summary {
	sum := &Summary{}
	ran := lo.Filter(outcomes, func(o Outcome, _ int) bool { return o.Result != nil })
	byStrategy := lo.GroupBy(ran, func(o Outcome) ladder.Strategy { return o.Result.Strategy })

	failed := lo.Filter(outcomes, func(o Outcome, _ int) bool { return o.Result == nil })
	failedBy := make(map[ladder.Strategy]int)
	for _, o := range failed {
		s, err := ladder.StrategyFromString(o.Strategy)
		if err != nil {
			sum.Errors++
			continue
		}
		failedBy[s]++
	}

	for _, strat := range ladder.AllStrategies {
		group := byStrategy[strat]
		if len(group) == 0 && failedBy[strat] == 0 {
			continue
		}
		ss := &StrategySummary{
			Strategy: strat,
			Queries:  len(group) + failedBy[strat],
			Errors:   failedBy[strat],
		}
		for _, o := range group {
			ss.ElapsedMS.Push(float64(o.Result.Elapsed.Microseconds()) / 1000)
			if !o.Result.Found {
				ss.NotFound++
				continue
			}
			ss.Found++
			ss.Length.Push(float64(o.Result.Length()))
			ss.Expanded.Push(float64(o.Result.Expanded))
			ss.lengths = append(ss.lengths, float64(o.Result.Length()))
		}
		sum.Strategies = append(sum.Strategies, ss)
	}
	return sum
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-8s%-9s%-7s%-10s%-8s%-12s%-10s%-14s%-10s\n",
		"Strat", "Queries", "Found", "NotFound", "Errors", "Avg len", "Med len", "Avg expanded", "Avg ms")
	for _, ss := range s.Strategies {
		fmt.Fprintf(&sb, "%-8s%-9d%-7d%-10d%-8d%-12.2f%-10.1f%-14.1f%-10.3f\n",
			ss.Strategy, ss.Queries, ss.Found, ss.NotFound, ss.Errors,
			ss.Length.Mean(), ss.MedianLength(), ss.Expanded.Mean(), ss.ElapsedMS.Mean())
	}
	if s.Errors > 0 {
		fmt.Fprintf(&sb, "%d queries had an invalid strategy\n", s.Errors)
	}
	for _, ss := range s.Strategies {
		if ss.Length.Count() < 2 || ss.Length.Min() == ss.Length.Max() {
			continue
		}
		bins := min(int(ss.Length.Max()-ss.Length.Min())+1, maxHistogramBins)
		fmt.Fprintf(&sb, "\nLadder length (%v):\n", ss.Strategy)
		h := histogram.Hist(bins, ss.lengths)
		if err := histogram.Fprint(&sb, h, histogram.Linear(40)); err != nil {
			fmt.Fprintf(&sb, "(histogram: %v)\n", err)
		}
	}
	return sb.String()
}
