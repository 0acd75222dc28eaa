package bot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordladder/testhelpers"
)

func newTestBot() *Bot {
	return NewBot(&testhelpers.DefaultConfig, testhelpers.Wordlist())
}

func TestHandle(t *testing.T) {
	is := is.New(t)
	b := newTestBot()

	resp := b.handle([]byte(`{"start": "cold", "end": "warm"}`))
	is.Equal(resp.Error, "")
	is.True(resp.Found)
	is.Equal(resp.Strategy, "astar")
	is.Equal(resp.Path, []string{"cold", "cord", "word", "ward", "warm"})
	is.Equal(resp.Edges, 4)
	is.Equal(resp.Dictionary, "words.txt")

	resp = b.handle([]byte(`{"start": "COLD", "end": "warm", "strategy": "ucs"}`))
	is.Equal(resp.Strategy, "ucs")
	is.Equal(resp.Start, "cold")
	is.Equal(len(resp.Path), 5)

	resp = b.handle([]byte(`{"start": "jazz", "end": "fish"}`))
	is.Equal(resp.Error, "")
	is.True(!resp.Found)
	is.Equal(len(resp.Path), 0)
	is.Equal(resp.Edges, 0)
}

func TestHandleErrors(t *testing.T) {
	b := newTestBot()
	cases := []struct {
		name     string
		data     string
		contains string
	}{
		{"bad json", `{"start": `, "could not decode request"},
		{"missing end", `{"start": "cat"}`, "start and end are required"},
		{"bad strategy", `{"start": "cat", "end": "dog", "strategy": "dfs"}`, "invalid strategy"},
		{"lengths", `{"start": "cat", "end": "cold"}`, "different lengths"},
		{"invalid word", `{"start": "cxt", "end": "dog"}`, "not in the dictionary"},
	}
	for _, c := range cases {
		resp := b.handle([]byte(c.data))
		assert.Contains(t, resp.Error, c.contains, c.name)
		assert.False(t, resp.Found, c.name)
		assert.Empty(t, resp.Path, c.name)
	}
}

func TestSuggestions(t *testing.T) {
	is := is.New(t)
	b := newTestBot()
	resp := b.Solve(context.Background(), &Request{Start: "cold", End: "wxrm"})
	is.True(resp.Error != "")
	is.True(len(resp.Suggestions) > 0)
	is.True(len(resp.Suggestions) <= maxSuggestions)
	for _, s := range resp.Suggestions {
		is.True(b.dict.Contains(s))
	}
}

func TestResponseJSON(t *testing.T) {
	is := is.New(t)
	b := newTestBot()
	data, err := json.Marshal(b.handle([]byte(`{"start": "cat", "end": "dog"}`)))
	is.NoErr(err)
	var m map[string]any
	is.NoErr(json.Unmarshal(data, &m))
	is.Equal(m["found"], true)
	_, hasError := m["error"]
	is.True(!hasError)

	evt := LambdaEvent{}
	is.NoErr(json.Unmarshal([]byte(`{"start": "cat", "end": "dog", "reply_channel": "r.1"}`), &evt))
	is.Equal(evt.Start, "cat")
	is.Equal(evt.ReplyChannel, "r.1")
}
