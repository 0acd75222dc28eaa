// ladderclient sends a single ladder request to a running bot.
//
//	ladderclient [--nats-url url] [--nats-channel subject] <start> <end> [strategy]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordladder/bot"
	"github.com/domino14/wordladder/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if len(cfg.Args) < 2 || len(cfg.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: ladderclient <start> <end> [strategy]")
		os.Exit(2)
	}
	req := &bot.Request{Start: cfg.Args[0], End: cfg.Args[1]}
	if len(cfg.Args) == 3 {
		req.Strategy = cfg.Args[2]
	}

	nc, err := nats.Connect(cfg.GetString(config.ConfigNatsURL))
	if err != nil {
		log.Fatal().Err(err).Msg("nats-connect")
	}
	defer nc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := bot.NewClient(nc, cfg.GetString(config.ConfigNatsChannel))
	resp, err := client.RequestLadder(ctx, req)
	if err != nil && !errors.Is(err, bot.ErrBotResponse) {
		log.Fatal().Err(err).Msg("request-failed")
	}
	if resp.Error != "" {
		fmt.Println("Error: " + resp.Error)
		if len(resp.Suggestions) > 0 {
			fmt.Println("Did you mean: " + strings.Join(resp.Suggestions, ", "))
		}
		os.Exit(1)
	}
	if !resp.Found {
		fmt.Printf("No ladder from %v to %v (%v, expanded %d)\n", resp.Start, resp.End, resp.Strategy, resp.Expanded)
		return
	}
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode")
	}
	fmt.Println(strings.Join(resp.Path, " -> "))
	fmt.Println(string(out))
}
