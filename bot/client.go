package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

var ErrBotResponse = errors.New("bot returned an error")

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultAttempts       = 3
)

type Client struct {
	// NATS connection
	nc       *nats.Conn
	channel  string
	timeout  time.Duration
	attempts uint
}

func NewClient(nc *nats.Conn, channel string) *Client {
	return &Client{
		nc:       nc,
		channel:  channel,
		timeout:  DefaultRequestTimeout,
		attempts: DefaultAttempts,
	}
}

// retryable reports whether a failed request might succeed if sent again.
func retryable(err error) bool {
	return errors.Is(err, nats.ErrTimeout) || errors.Is(err, nats.ErrNoResponders)
}

// RequestLadder sends a request to the bot and waits for its answer,
// retrying with backoff when no bot answers in time. A response carrying an
// error is returned along with ErrBotResponse.
func (c *Client) RequestLadder(ctx context.Context, req *Request) (*Response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var msg *nats.Msg
	err = retry.Do(
		func() error {
			var err error
			msg, err = c.nc.Request(c.channel, data, c.timeout)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Msg("no-answer-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		if c.nc.LastError() != nil {
			log.Error().Msgf("%v for request", c.nc.LastError())
		}
		return nil, err
	}
	log.Debug().Msgf("res: %v", string(msg.Data))

	resp := &Response{}
	if err := json.Unmarshal(msg.Data, resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return resp, fmt.Errorf("%w: %s", ErrBotResponse, resp.Error)
	}
	return resp, nil
}
