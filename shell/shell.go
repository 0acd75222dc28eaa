package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordladder/config"
	"github.com/domino14/wordladder/dictionary"
	"github.com/domino14/wordladder/ladder"
)

var errNoDictionary = fmt.Errorf("%w: no dictionary loaded; use load or lexicon",
	dictionary.ErrDictionaryUnavailable)

// Options to configure the interactive shell
type ShellOptions struct {
	strategy      ladder.Strategy
	cacheFraction float64
	threads       int
}

func NewShellOptions(cfg *config.Config) *ShellOptions {
	opts := &ShellOptions{strategy: ladder.AStar}
	if s, err := ladder.StrategyFromString(cfg.GetString(config.ConfigDefaultStrategy)); err == nil {
		opts.strategy = s
	} else {
		log.Warn().Err(err).Msg("bad-default-strategy-using-astar")
	}
	opts.cacheFraction = cfg.GetFloat64(config.ConfigAdjacencyCacheFraction)
	opts.threads = cfg.GetInt(config.ConfigBatchThreads)
	return opts
}

func (opts *ShellOptions) Show(key string) (bool, string) {
	switch key {
	case "strategy":
		return true, opts.strategy.String()
	case "cache":
		return true, strconv.FormatFloat(opts.cacheFraction, 'g', -1, 64)
	case "threads":
		return true, strconv.Itoa(opts.threads)
	default:
		return false, "No such option: " + key
	}
}

func (opts *ShellOptions) ToDisplayText() string {
	keys := []string{"strategy", "cache", "threads"}
	out := strings.Builder{}
	out.WriteString("Settings:\n")
	for _, key := range keys {
		_, val := opts.Show(key)
		out.WriteString("  " + key + ": ")
		out.WriteString(val + "\n")
	}
	return out.String()
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l          *readline.Instance
	out        io.Writer
	config     *config.Config
	execPath   string
	gitVersion string
	options    *ShellOptions

	dict   dictionary.Dictionary
	solver *ladder.Solver
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := newController(cfg, execPath, gitVersion)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mwordladder>\033[0m ",
		HistoryFile:     "/tmp/wordladder_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

// newController sets up everything but the terminal. The default
// dictionary is loaded if possible; otherwise the shell starts without one.
func newController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := &ShellController{
		out:        os.Stderr,
		config:     cfg,
		execPath:   config.FindBasePath(execPath),
		gitVersion: gitVersion,
		options:    NewShellOptions(cfg),
	}
	dict, err := dictionary.Default(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("no-default-dictionary")
		return sc
	}
	sc.setDictionary(dict)
	return sc
}

func (sc *ShellController) setDictionary(dict dictionary.Dictionary) {
	sc.dict = dict
	sc.rebuildSolver()
}

// rebuildSolver creates a fresh solver, and with it a fresh adjacency
// cache, for the current dictionary and options.
func (sc *ShellController) rebuildSolver() {
	if sc.dict == nil {
		return
	}
	sc.solver = ladder.NewSolver(sc.dict, sc.solverOptions()...)
	log.Debug().Str("dictionary", sc.dict.Name()).Msg("solver-ready")
}

func (sc *ShellController) solverOptions() []ladder.Option {
	var opts []ladder.Option
	if size := ladder.AdjacencyCacheSize(sc.options.cacheFraction); size > 0 {
		opts = append(opts, ladder.WithAdjacencyCache(size))
	}
	return opts
}

func (sc *ShellController) requireDictionary() error {
	if sc.dict == nil {
		return errNoDictionary
	}
	return nil
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "lexicon":
		return sc.lexicon(cmd)
	case "ladder", "l":
		return sc.ladder(cmd)
	case "neighbors", "nb":
		return sc.neighbors(cmd)
	case "check":
		return sc.check(cmd)
	case "verify":
		return sc.verify(cmd)
	case "random":
		return sc.random(cmd)
	case "batch":
		return sc.batch(cmd)
	case "set":
		return sc.set(cmd)
	case "info":
		return sc.info(cmd)
	case "script":
		return sc.script(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

func (sc *ShellController) handleLine(line string) {
	resp, err := sc.standardModeSwitch(line)
	if err != nil {
		sc.showError(err)
	} else if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

// Execute runs a single command line, as given on the command line of the
// executable, and returns.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	if strings.TrimSpace(line) == "exit" {
		return
	}
	sc.handleLine(line)
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		sc.handleLine(line)
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	if sc.solver != nil {
		hits, misses := sc.solver.CacheStats()
		log.Debug().Int("hits", hits).Int("misses", misses).Msg("adjacency-cache-stats")
	}
	log.Info().Msg("shell cleaned up")
}
