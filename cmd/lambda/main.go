package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordladder/bot"
	"github.com/domino14/wordladder/config"
	"github.com/domino14/wordladder/dictionary"
)

var cfg *config.Config
var nc *nats.Conn

var (
	botOnce sync.Once
	theBot  *bot.Bot
	botErr  error
)

const HardTimeLimit = 60 * time.Second

func getBot() (*bot.Bot, error) {
	botOnce.Do(func() {
		var dict dictionary.Dictionary
		dict, botErr = dictionary.Default(cfg)
		if botErr != nil {
			return
		}
		theBot = bot.NewBot(cfg, dict)
	})
	return theBot, botErr
}

// HandleRequest solves the event's query and returns the JSON-encoded
// response. If the event names a reply channel, the response is also sent
// there and we wait for an acknowledgement.
func HandleRequest(ctx context.Context, evt bot.LambdaEvent) (string, error) {
	logger := log.With().
		Str("requestID", evt.RequestID).
		Logger()

	b, err := getBot()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, HardTimeLimit)
	defer cancel()

	resp := b.Solve(ctx, &evt.Request)
	logger.Info().Str("start", evt.Start).Str("end", evt.End).
		Bool("found", resp.Found).Str("error", resp.Error).Msg("solved")

	data, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	if evt.ReplyChannel != "" && nc != nil {
		logger.Info().Msg("ladder-sending-via-nats")
		err = retry.Do(
			func() error {
				// We're just waiting for an acknowledgement. The actual
				// data doesn't matter.
				_, err := nc.Request(evt.ReplyChannel, data, 3*time.Second)
				return err
			},
			retry.Context(ctx),
			retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
				logger.Err(err).Uint("n", n).
					Msg("did-not-receive-ack-try-again")
				return retry.BackOffDelay(n, err, config)
			}),
		)
		if err != nil {
			logger.Err(err).Msg("ladder-reply-failed")
		}
	}
	logger.Info().Msg("exiting-fn")
	return string(data), nil
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg = &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	cfg.AdjustRelativePaths(exPath)
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	nc, err = nats.Connect(cfg.GetString(config.ConfigNatsURL))
	if err != nil {
		log.Fatal().AnErr("natsConnectErr", err).Msg(":(")
	}

	lambda.Start(HandleRequest)
}
