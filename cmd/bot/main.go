package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordladder/bot"
	"github.com/domino14/wordladder/config"
	"github.com/domino14/wordladder/dictionary"
)

func main() {
	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	cfg.AdjustRelativePaths(exPath)
	log.Info().Msgf("Loaded config: %v, exPath: %v", cfg.SanitizedSettings(), exPath)

	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	dict, err := dictionary.Default(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot-load-dictionary")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := bot.NewBot(cfg, dict)
	if err := bot.Main(ctx, cfg.GetString(config.ConfigNatsChannel), b); err != nil {
		log.Fatal().Err(err).Msg("bot-exited")
	}
	log.Info().Msg("server gracefully shutting down")
}
