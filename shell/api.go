package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordladder/batch"
	"github.com/domino14/wordladder/config"
	"github.com/domino14/wordladder/dictionary"
	"github.com/domino14/wordladder/ladder"
)

const (
	defaultRandomLength = 4
	defaultBatchCount   = 100
	maxSuggestions      = 10
)

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage()
	}
	return usageTopic(cmd.args[0])
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <wordlist file> [-encoding utf8|latin1]")
	}
	encoding := cmd.options.StringDefault("encoding", sc.config.GetString(config.ConfigDictionaryEncoding))
	wl, err := dictionary.GetWordlist(sc.config, cmd.args[0], encoding)
	if err != nil {
		return nil, err
	}
	sc.setDictionary(wl)
	return msg(fmt.Sprintf("Loaded %v (%d words)", wl.Name(), wl.Size())), nil
}

func (sc *ShellController) lexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: lexicon <name> [-dist english]")
	}
	dist := cmd.options.StringDefault("dist", sc.config.GetString(config.ConfigDefaultLetterDistribution))
	d, err := dictionary.GetKWG(sc.config, cmd.args[0], dist)
	if err != nil {
		return nil, err
	}
	sc.setDictionary(d)
	return msg("Loaded lexicon " + d.Name()), nil
}

// strategies parses a -strategy option, which may also be "all".
func (sc *ShellController) strategies(options CmdOptions) ([]ladder.Strategy, error) {
	s := options.String("strategy")
	if s == "" {
		return []ladder.Strategy{sc.options.strategy}, nil
	}
	if strings.ToLower(s) == "all" {
		return ladder.AllStrategies, nil
	}
	strat, err := ladder.StrategyFromString(s)
	if err != nil {
		return nil, err
	}
	return []ladder.Strategy{strat}, nil
}

// suggest adds "did you mean" candidates to an invalid-word error.
func (sc *ShellController) suggest(err error, words ...string) error {
	if !errors.Is(err, ladder.ErrInvalidWord) {
		return err
	}
	for _, w := range words {
		if sc.dict.Contains(w) {
			continue
		}
		nbs := sc.solver.Neighbors(w)
		if len(nbs) == 0 {
			continue
		}
		return fmt.Errorf("%w (did you mean: %v?)", err,
			strings.Join(lo.Subset(nbs, 0, maxSuggestions), ", "))
	}
	return err
}

func (sc *ShellController) ladder(cmd *shellcmd) (*Response, error) {
	if err := sc.requireDictionary(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: ladder <start> <end> [-strategy ucs|greedy|astar|all]")
	}
	strats, err := sc.strategies(cmd.options)
	if err != nil {
		return nil, err
	}
	start, end := cmd.args[0], cmd.args[1]

	results := make([]*ladder.Result, 0, len(strats))
	for _, strat := range strats {
		res, err := sc.solver.Solve(context.Background(), start, end, strat)
		if err != nil {
			return nil, sc.suggest(err, start, end)
		}
		results = append(results, res)
	}
	if len(results) == 1 {
		return msg(results[0].String()), nil
	}
	return msg(compareResults(results)), nil
}

func compareResults(results []*ladder.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-8s%-8s%-8s%-10s%-14s%s\n", "Strat", "Words", "Steps", "Expanded", "Time", "Ladder")
	for _, r := range results {
		path := "(none)"
		if r.Found {
			path = strings.Join(r.Path, " ")
		}
		fmt.Fprintf(&sb, "%-8s%-8d%-8d%-10d%-14v%s\n",
			r.Strategy, r.Length(), r.Edges(), r.Expanded, r.Elapsed, path)
	}
	return sb.String()
}

func (sc *ShellController) neighbors(cmd *shellcmd) (*Response, error) {
	if err := sc.requireDictionary(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: neighbors <word>")
	}
	nbs := sc.solver.Neighbors(cmd.args[0])
	if len(nbs) == 0 {
		return msg("No neighbors for " + cmd.args[0]), nil
	}
	return msg(fmt.Sprintf("%d: %v", len(nbs), strings.Join(nbs, " "))), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if err := sc.requireDictionary(); err != nil {
		return nil, err
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: check <word> [<word>...]")
	}
	lines := lo.Map(cmd.args, func(w string, _ int) string {
		if sc.dict.Contains(w) {
			return w + " is valid"
		}
		return w + " is not in " + sc.dict.Name()
	})
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) verify(cmd *shellcmd) (*Response, error) {
	if err := sc.requireDictionary(); err != nil {
		return nil, err
	}
	if err := ladder.ValidatePath(sc.dict, cmd.args); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Valid ladder: %d words, %d steps", len(cmd.args), len(cmd.args)-1)), nil
}

func (sc *ShellController) wordSource() (batch.WordSource, error) {
	if err := sc.requireDictionary(); err != nil {
		return nil, err
	}
	ws, ok := sc.dict.(batch.WordSource)
	if !ok {
		return nil, fmt.Errorf("dictionary %v cannot list its words; load a word list", sc.dict.Name())
	}
	return ws, nil
}

func (sc *ShellController) random(cmd *shellcmd) (*Response, error) {
	ws, err := sc.wordSource()
	if err != nil {
		return nil, err
	}
	length, err := cmd.options.IntDefault("length", defaultRandomLength)
	if err != nil {
		return nil, err
	}
	strats, err := sc.strategies(cmd.options)
	if err != nil {
		return nil, err
	}
	queries, err := batch.RandomQueries(ws, length, 1, strats)
	if err != nil {
		return nil, err
	}
	results := make([]*ladder.Result, 0, len(queries))
	for _, q := range queries {
		strat, err := ladder.StrategyFromString(q.Strategy)
		if err != nil {
			return nil, err
		}
		res, err := sc.solver.Solve(context.Background(), q.Start, q.End, strat)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if len(results) == 1 {
		return msg(results[0].String()), nil
	}
	return msg(compareResults(results)), nil
}

func (sc *ShellController) batch(cmd *shellcmd) (*Response, error) {
	if err := sc.requireDictionary(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: batch <queries.yaml> | batch random [-length n] [-count k]")
	}
	threads, err := cmd.options.IntDefault("threads", sc.options.threads)
	if err != nil {
		return nil, err
	}
	var queries []batch.Query
	if cmd.args[0] == "random" {
		queries, err = sc.randomBatch(cmd.options)
	} else {
		queries, err = loadQueryFile(cmd.args[0])
	}
	if err != nil {
		return nil, err
	}

	runner := batch.NewRunner(sc.dict, threads, sc.options.strategy, sc.solverOptions()...)
	outcomes, err := runner.Run(context.Background(), queries)
	if err != nil {
		return nil, err
	}
	if out := cmd.options.String("out"); out != "" {
		if err := writeOutcomes(out, outcomes); err != nil {
			return nil, err
		}
		log.Info().Str("file", out).Int("outcomes", len(outcomes)).Msg("wrote-batch-results")
	}
	return msg(batch.Summarize(outcomes).String()), nil
}

func (sc *ShellController) randomBatch(options CmdOptions) ([]batch.Query, error) {
	ws, err := sc.wordSource()
	if err != nil {
		return nil, err
	}
	length, err := options.IntDefault("length", defaultRandomLength)
	if err != nil {
		return nil, err
	}
	count, err := options.IntDefault("count", defaultBatchCount)
	if err != nil {
		return nil, err
	}
	strats, err := sc.strategies(options)
	if err != nil {
		return nil, err
	}
	return batch.RandomQueries(ws, length, count, strats)
}

func loadQueryFile(path string) ([]batch.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return batch.LoadQueries(f)
}

func writeOutcomes(path string, outcomes []batch.Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return batch.WriteYAML(f, outcomes)
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(sc.options.ToDisplayText()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		_, val := sc.options.Show(opt)
		return msg(val), nil
	}
	ret, err := sc.Set(opt, cmd.args[1])
	if err != nil {
		return nil, err
	}
	return msg("set " + opt + " to " + ret), nil
}

func (sc *ShellController) Set(key, value string) (string, error) {
	switch key {
	case "strategy":
		s, err := ladder.StrategyFromString(value)
		if err != nil {
			return "", err
		}
		sc.options.strategy = s
		return s.String(), nil
	case "cache":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", err
		}
		if f < 0 || f > 0.5 {
			return "", errors.New("cache fraction must be between 0 and 0.5")
		}
		sc.options.cacheFraction = f
		sc.rebuildSolver()
		return value, nil
	case "threads":
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", err
		}
		if n < 1 {
			return "", errors.New("threads must be at least 1")
		}
		sc.options.threads = n
		return value, nil
	}
	return "", errors.New("option " + key + " not recognized")
}

func (sc *ShellController) info(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	if sc.gitVersion != "" {
		fmt.Fprintf(&sb, "Version: %v\n", sc.gitVersion)
	}
	if sc.dict == nil {
		sb.WriteString("Dictionary: (none)\n")
	} else {
		fmt.Fprintf(&sb, "Dictionary: %v\n", sc.dict.Name())
		if wl, ok := sc.dict.(*dictionary.Wordlist); ok {
			fmt.Fprintf(&sb, "  words: %d\n  fingerprint: %016x\n", wl.Size(), wl.Fingerprint())
			lengths := wl.Lengths()
			keys := lo.Keys(lengths)
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(&sb, "  length %d: %d\n", k, lengths[k])
			}
		}
		hits, misses := sc.solver.CacheStats()
		fmt.Fprintf(&sb, "Adjacency cache: %d hits, %d misses\n", hits, misses)
	}
	sb.WriteString(sc.options.ToDisplayText())
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}
