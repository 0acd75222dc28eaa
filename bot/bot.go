// Package bot answers ladder requests over NATS.
package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordladder/config"
	"github.com/domino14/wordladder/dictionary"
	"github.com/domino14/wordladder/ladder"
)

const maxSuggestions = 10

// Request asks for a ladder. An empty Strategy means the bot's default.
type Request struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Strategy string `json:"strategy,omitempty"`
}

// Response is the bot's answer. On failure only Error, and possibly
// Suggestions, are set.
type Response struct {
	Start       string   `json:"start,omitempty"`
	End         string   `json:"end,omitempty"`
	Strategy    string   `json:"strategy,omitempty"`
	Path        []string `json:"path,omitempty"`
	Found       bool     `json:"found"`
	Edges       int      `json:"edges"`
	Expanded    int      `json:"expanded"`
	ElapsedMS   float64  `json:"elapsed_ms"`
	Dictionary  string   `json:"dictionary,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type Bot struct {
	config   *config.Config
	dict     dictionary.Dictionary
	strategy ladder.Strategy

	// Requests are answered one at a time on a shared solver so its
	// adjacency cache carries over between them.
	mu     sync.Mutex
	solver *ladder.Solver
}

func NewBot(cfg *config.Config, dict dictionary.Dictionary) *Bot {
	strategy, err := ladder.StrategyFromString(cfg.GetString(config.ConfigDefaultStrategy))
	if err != nil {
		log.Warn().Err(err).Msg("bad-default-strategy-using-astar")
		strategy = ladder.AStar
	}
	var opts []ladder.Option
	if size := ladder.AdjacencyCacheSize(cfg.GetFloat64(config.ConfigAdjacencyCacheFraction)); size > 0 {
		opts = append(opts, ladder.WithAdjacencyCache(size))
	}
	return &Bot{
		config:   cfg,
		dict:     dict,
		strategy: strategy,
		solver:   ladder.NewSolver(dict, opts...),
	}
}

func errorResponse(message string, err error) *Response {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &Response{Error: msg}
}

// Solve answers one request.
func (bot *Bot) Solve(ctx context.Context, req *Request) *Response {
	strategy := bot.strategy
	if req.Strategy != "" {
		s, err := ladder.StrategyFromString(req.Strategy)
		if err != nil {
			return errorResponse("bad request", err)
		}
		strategy = s
	}

	bot.mu.Lock()
	defer bot.mu.Unlock()

	res, err := bot.solver.Solve(ctx, req.Start, req.End, strategy)
	if err != nil {
		resp := errorResponse("cannot solve", err)
		if errors.Is(err, ladder.ErrInvalidWord) {
			resp.Suggestions = bot.suggestions(req.Start, req.End)
		}
		return resp
	}
	return &Response{
		Start:      res.Start,
		End:        res.Goal,
		Strategy:   res.Strategy.String(),
		Path:       res.Path,
		Found:      res.Found,
		Edges:      res.Edges(),
		Expanded:   res.Expanded,
		ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
		Dictionary: bot.dict.Name(),
	}
}

// suggestions returns dictionary words one letter away from the first
// invalid word.
func (bot *Bot) suggestions(words ...string) []string {
	for _, w := range words {
		if bot.dict.Contains(w) {
			continue
		}
		return lo.Subset(bot.solver.Neighbors(w), 0, maxSuggestions)
	}
	return nil
}

func (bot *Bot) handle(data []byte) *Response {
	req := &Request{}
	if err := json.Unmarshal(data, req); err != nil {
		return errorResponse("could not decode request", err)
	}
	if strings.TrimSpace(req.Start) == "" || strings.TrimSpace(req.End) == "" {
		return errorResponse("bad request", errors.New("start and end are required"))
	}
	ts := time.Now()
	resp := bot.Solve(context.Background(), req)
	log.Info().Str("start", req.Start).Str("end", req.End).Bool("found", resp.Found).
		Str("error", resp.Error).Dur("took", time.Since(ts)).Msg("answered-request")
	return resp
}

// Main subscribes the bot to channel and answers requests until ctx is
// done.
func Main(ctx context.Context, channel string, bot *Bot) error {
	nc, err := nats.Connect(bot.config.GetString(config.ConfigNatsURL))
	if err != nil {
		return err
	}
	defer nc.Close()

	sub, err := nc.Subscribe(channel, func(m *nats.Msg) {
		log.Debug().Msgf("RECV: %d bytes", len(m.Data))
		resp := bot.handle(m.Data)
		data, err := json.Marshal(resp)
		if err != nil {
			// Should never happen, ideally, but we need to do something sensible here.
			m.Respond([]byte(err.Error()))
			return
		}
		if err := m.Respond(data); err != nil {
			log.Err(err).Msg("respond-failed")
		}
	})
	if err != nil {
		return err
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	if err := nc.LastError(); err != nil {
		return err
	}
	log.Info().Msgf("Listening on [%s]", channel)

	<-ctx.Done()
	log.Info().Msg("draining subscription")
	return sub.Drain()
}
