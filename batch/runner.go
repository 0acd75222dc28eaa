package batch

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordladder/dictionary"
	"github.com/domino14/wordladder/ladder"
)

// Runner solves queries on a fixed number of threads. Each thread owns its
// own ladder.Solver; the dictionary is shared read-only.
type Runner struct {
	dict     dictionary.Dictionary
	threads  int
	strategy ladder.Strategy
	options  []ladder.Option
}

// NewRunner creates a runner. threads <= 0 means one thread per CPU.
// options are passed to every solver the runner creates.
func NewRunner(dict dictionary.Dictionary, threads int, defaultStrategy ladder.Strategy,
	options ...ladder.Option) *Runner {

	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &Runner{
		dict:     dict,
		threads:  threads,
		strategy: defaultStrategy,
		options:  options,
	}
}

func (r *Runner) Threads() int {
	return r.threads
}

// Run solves every query and returns outcomes in query order. Queries that
// fail validation get an Outcome with Error set; they do not stop the
// batch. Run stops early and returns the context's error if ctx is done.
func (r *Runner) Run(ctx context.Context, queries []Query) ([]Outcome, error) {
	outcomes := make([]Outcome, len(queries))
	var next atomic.Int64
	threads := min(r.threads, max(len(queries), 1))

	log.Debug().Int("queries", len(queries)).Int("threads", threads).Msg("batch-start")
	ts := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for t := range threads {
		g.Go(func() error {
			solver := ladder.NewSolver(r.dict, r.options...)
			solved := 0
			defer func() {
				log.Debug().Int("thread", t).Int("solved", solved).Msg("batch-thread-exiting")
			}()
			for {
				i := int(next.Add(1) - 1)
				if i >= len(queries) {
					return nil
				}
				o, err := r.solve(ctx, solver, queries[i])
				if err != nil {
					return err
				}
				outcomes[i] = o
				solved++
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info().Int("queries", len(queries)).Dur("elapsed", time.Since(ts)).Msg("batch-done")
	return outcomes, nil
}

// solve returns an error only when the whole batch should stop.
func (r *Runner) solve(ctx context.Context, solver *ladder.Solver, q Query) (Outcome, error) {
	o := Outcome{Query: q}
	strategy := r.strategy
	if q.Strategy != "" {
		s, err := ladder.StrategyFromString(q.Strategy)
		if err != nil {
			o.Error = err.Error()
			return o, nil
		}
		strategy = s
	}
	o.Strategy = strategy.String()
	res, err := solver.Solve(ctx, q.Start, q.End, strategy)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return o, err
	}
	if err != nil {
		o.Error = err.Error()
		return o, nil
	}
	o.Result = res
	return o, nil
}
