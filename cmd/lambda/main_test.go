package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordladder/bot"
	"github.com/domino14/wordladder/config"
)

func TestHandleRequest(t *testing.T) {
	is := is.New(t)
	dc := config.DefaultConfig()
	cfg = &dc

	evt := bot.LambdaEvent{
		Request:   bot.Request{Start: "cold", End: "warm", Strategy: "astar"},
		RequestID: "foo",
	}
	ret, err := HandleRequest(context.Background(), evt)
	is.NoErr(err)

	resp := &bot.Response{}
	is.NoErr(json.Unmarshal([]byte(ret), resp))
	is.True(resp.Found)
	is.Equal(resp.Path, []string{"cold", "cord", "word", "ward", "warm"})

	evt.Request = bot.Request{Start: "cold", End: "xqzv"}
	ret, err = HandleRequest(context.Background(), evt)
	is.NoErr(err)
	is.NoErr(json.Unmarshal([]byte(ret), resp))
	is.True(resp.Error != "")
}
