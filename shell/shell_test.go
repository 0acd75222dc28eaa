package shell

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordladder/dictionary"
	"github.com/domino14/wordladder/ladder"
	"github.com/domino14/wordladder/testhelpers"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"batch -out /path/to/results.yaml queries.yaml",
			&shellcmd{"batch", []string{"queries.yaml"}, CmdOptions{"out": {"/path/to/results.yaml"}}},
			nil},
		{"ladder cold warm",
			&shellcmd{"ladder", []string{"cold", "warm"}, CmdOptions{}},
			nil},
		{"ladder cold warm -strategy all ",
			&shellcmd{"ladder",
				[]string{"cold", "warm"},
				CmdOptions{"strategy": {"all"}}},
			nil,
		},
		{`load "my words.txt" -encoding latin1`,
			&shellcmd{"load", []string{"my words.txt"}, CmdOptions{"encoding": {"latin1"}}},
			nil},
		{"ladder cold warm -strategy",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func newTestController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	sc := newController(&testhelpers.DefaultConfig, ".", "test")
	buf := &bytes.Buffer{}
	sc.out = buf
	return sc, buf
}

func run(t *testing.T, sc *ShellController, line string) (string, error) {
	t.Helper()
	resp, err := sc.standardModeSwitch(line)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", nil
	}
	return resp.message, nil
}

func TestLadderCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	is.True(sc.dict != nil)

	out, err := run(t, sc, "ladder cold warm")
	is.NoErr(err)
	is.True(strings.Contains(out, "cold -> cord -> word -> ward -> warm"))
	is.True(strings.HasPrefix(out, "astar:"))

	out, err = run(t, sc, "ladder cold warm -strategy all")
	is.NoErr(err)
	is.True(strings.Contains(out, "ucs"))
	is.True(strings.Contains(out, "greedy"))
	is.True(strings.Contains(out, "astar"))

	out, err = run(t, sc, "ladder jazz fish -strategy ucs")
	is.NoErr(err)
	is.True(strings.Contains(out, "no ladder"))
}

func TestLadderCommandErrors(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)

	_, err := run(t, sc, "ladder cold")
	is.True(err != nil)
	_, err = run(t, sc, "ladder cold warm -strategy bfs")
	is.True(errors.Is(err, ladder.ErrInvalidStrategy))
	_, err = run(t, sc, "ladder cat cold")
	is.True(errors.Is(err, ladder.ErrIncompatibleLengths))

	// cxt is not a word; cat and cut are one letter away.
	_, err = run(t, sc, "ladder cxt dog")
	is.True(errors.Is(err, ladder.ErrInvalidWord))
	is.True(strings.Contains(err.Error(), "did you mean"))
	is.True(strings.Contains(err.Error(), "cat"))

	_, err = run(t, sc, "frobnicate")
	is.True(err != nil)
}

func TestNoDictionary(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	sc.dict, sc.solver = nil, nil
	_, err := run(t, sc, "ladder cat dog")
	is.True(errors.Is(err, dictionary.ErrDictionaryUnavailable))
	_, err = run(t, sc, "load nonexistent.txt")
	is.True(errors.Is(err, dictionary.ErrDictionaryUnavailable))
}

func TestNeighborsCheckVerify(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	sc.setDictionary(testhelpers.SmallDictionary())

	out, err := run(t, sc, "neighbors cot")
	is.NoErr(err)
	is.Equal(out, "3: dot cat cog")

	out, err = run(t, sc, "check cat xyz")
	is.NoErr(err)
	is.Equal(out, "cat is valid\nxyz is not in small")

	out, err = run(t, sc, "verify cat cot dot dog")
	is.NoErr(err)
	is.Equal(out, "Valid ladder: 4 words, 3 steps")

	_, err = run(t, sc, "verify cat dog")
	is.True(errors.Is(err, ladder.ErrInvalidPath))
}

func TestSetAndInfo(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)

	out, err := run(t, sc, "set strategy ucs")
	is.NoErr(err)
	is.Equal(out, "set strategy to ucs")
	out, err = run(t, sc, "ladder cold warm")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "ucs:"))

	_, err = run(t, sc, "set strategy dfs")
	is.True(err != nil)
	_, err = run(t, sc, "set cache 0.9")
	is.True(err != nil)
	_, err = run(t, sc, "set threads 0")
	is.True(err != nil)

	out, err = run(t, sc, "set cache 0.0001")
	is.NoErr(err)
	is.Equal(out, "set cache to 0.0001")
	_, err = run(t, sc, "ladder cold warm")
	is.NoErr(err)
	_, err = run(t, sc, "ladder cold warm")
	is.NoErr(err)
	hits, _ := sc.solver.CacheStats()
	is.True(hits > 0)

	out, err = run(t, sc, "set strategy")
	is.NoErr(err)
	is.Equal(out, "ucs")

	out, err = run(t, sc, "info")
	is.NoErr(err)
	is.True(strings.Contains(out, "words.txt"))
	is.True(strings.Contains(out, "length 3:"))
	is.True(strings.Contains(out, "strategy: ucs"))
}

func TestRandomCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	out, err := run(t, sc, "random -length 3 -strategy all")
	is.NoErr(err)
	is.True(strings.Contains(out, "Strat"))

	_, err = run(t, sc, "random -length 12")
	is.True(err != nil)
}

func TestBatchCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	dir := t.TempDir()
	qfile := filepath.Join(dir, "queries.yaml")
	is.NoErr(os.WriteFile(qfile, []byte("- start: cold\n  end: warm\n- start: cat\n  end: dog\n  strategy: greedy\n"), 0o644))
	outfile := filepath.Join(dir, "results.yaml")

	out, err := run(t, sc, "batch "+qfile+" -threads 2 -out "+outfile)
	is.NoErr(err)
	is.True(strings.Contains(out, "greedy"))
	is.True(strings.Contains(out, "astar"))

	written, err := os.ReadFile(outfile)
	is.NoErr(err)
	is.True(strings.Contains(string(written), "- cold"))

	out, err = run(t, sc, "batch random -length 3 -count 5 -strategy all")
	is.NoErr(err)
	is.True(strings.Contains(out, "ucs"))
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	out, err := run(t, sc, "help")
	is.NoErr(err)
	is.True(strings.Contains(out, "Commands:"))
	out, err = run(t, sc, "help ladder")
	is.NoErr(err)
	is.True(strings.Contains(out, "uniform-cost"))
	_, err = run(t, sc, "help nope")
	is.True(err != nil)
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	script := filepath.Join(t.TempDir(), "test.lua")
	is.NoErr(os.WriteFile(script, []byte(`
local json = require("json")
local res, err = ladder_solve("cold", "warm", "ucs")
assert(err == nil)
local _, bad = ladder_solve("cold", "xqzv")
return json.encode({
	path = res.path,
	found = res.found,
	strategy = res.strategy,
	neighbors = ladder_neighbors("cot"),
	valid = ladder_check("cot"),
	invalid = ladder_check("xqzv"),
	err = bad,
})
`), 0o644))

	out, err := run(t, sc, "script "+script)
	is.NoErr(err)

	var got struct {
		Path      []string `json:"path"`
		Found     bool     `json:"found"`
		Strategy  string   `json:"strategy"`
		Neighbors []string `json:"neighbors"`
		Valid     bool     `json:"valid"`
		Invalid   bool     `json:"invalid"`
		Err       string   `json:"err"`
	}
	is.NoErr(json.Unmarshal([]byte(out), &got))
	is.Equal(len(got.Path), 5)
	is.Equal(got.Path[0], "cold")
	is.Equal(got.Path[4], "warm")
	is.True(got.Found)
	is.Equal(got.Strategy, "ucs")
	is.True(len(got.Neighbors) > 0)
	is.True(got.Valid)
	is.True(!got.Invalid)
	is.True(strings.Contains(got.Err, "not in the dictionary"))

	_, err = run(t, sc, "script /nonexistent/file.lua")
	is.True(err != nil)
}

func TestAutocomplete(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	c := NewShellCompleter(sc)

	complete := func(line string) []string {
		matches, _ := c.Do([]rune(line), len(line))
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = string(m)
		}
		return out
	}
	is.Equal(complete("lad"), []string{"der"})
	is.Equal(complete("ladder cold warm -strategy a"), []string{"star", "ll"})
	is.Equal(complete("ladder cold warm -s"), []string{"trategy"})
	is.Equal(complete("set "), []string{"strategy", "cache", "threads"})
	is.Equal(complete("set strategy g"), []string{"reedy"})
	is.True(len(complete("load w")) > 0)
}
