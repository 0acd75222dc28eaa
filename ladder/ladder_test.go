package ladder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordladder/dictionary"
	"github.com/domino14/wordladder/testhelpers"
)

func TestStrategyFromString(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
		err  error
	}{
		{"ucs", UniformCost, nil},
		{"UCS", UniformCost, nil},
		{"dijkstra", UniformCost, nil},
		{"Greedy", GreedyBestFirst, nil},
		{"gbfs", GreedyBestFirst, nil},
		{"A*", AStar, nil},
		{" astar ", AStar, nil},
		{"bfs", 0, ErrInvalidStrategy},
		{"", 0, ErrInvalidStrategy},
	}
	for _, c := range cases {
		got, err := StrategyFromString(c.in)
		if c.err != nil {
			assert.True(t, errors.Is(err, c.err), c.in)
			continue
		}
		assert.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestStrategyText(t *testing.T) {
	for _, s := range AllStrategies {
		b, err := s.MarshalText()
		assert.NoError(t, err)
		var back Strategy
		assert.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}
	_, err := Strategy(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidStrategy)
	assert.Equal(t, "strategy(9)", Strategy(9).String())
}

func TestHamming(t *testing.T) {
	assert.Equal(t, 0, Hamming("cat", "cat"))
	assert.Equal(t, 1, Hamming("cat", "cot"))
	assert.Equal(t, 3, Hamming("cat", "dog"))
	assert.Equal(t, 1, Hamming("thé", "the"))
	assert.Equal(t, 1, Hamming("café", "cafs"))
	assert.Equal(t, 2, Hamming("café", "cabs"))
}

func TestHammingDifferentLengths(t *testing.T) {
	assert.Equal(t, 1, Hamming("abc", "ab"))
	assert.Equal(t, 1, Hamming("ab", "abc"))
	assert.Equal(t, 2, Hamming("cat", "cots"))
	assert.Equal(t, 3, Hamming("", "dog"))
}

func TestNeighbors(t *testing.T) {
	g := NewNeighborGenerator(testhelpers.SmallDictionary(), "")
	assert.Equal(t, []string{"cot", "cag"}, g.Neighbors("cat"))
	assert.Equal(t, []string{"dot", "cat", "cog"}, g.Neighbors("cot"))
	assert.Equal(t, []string{"cot", "dog"}, g.Neighbors("dot"))
	// Words outside the dictionary still have neighbors.
	assert.Equal(t, []string{"cat", "cot"}, g.Neighbors("cut"))
	assert.Empty(t, g.Neighbors("zzz"))
}

func TestNeighborsNeverIncludeWord(t *testing.T) {
	wl := testhelpers.Wordlist()
	g := NewNeighborGenerator(wl, DefaultAlphabet)
	for _, w := range wl.Words(3)[:50] {
		nbs := g.Neighbors(w)
		seen := map[string]bool{}
		for _, nb := range nbs {
			assert.NotEqual(t, w, nb)
			assert.Len(t, nb, len(w))
			assert.True(t, OneApart(w, nb))
			assert.False(t, seen[nb], "duplicate neighbor %v", nb)
			seen[nb] = true
		}
	}
}

func TestFrontierOrder(t *testing.T) {
	f := &frontier{}
	f.push("b", 0, 2)
	f.push("a", 0, 1)
	f.push("c", 0, 2)
	f.push("d", 0, 1)
	f.push("e", 0, 0)
	var order []string
	for f.Len() > 0 {
		order = append(order, f.pop().word)
	}
	// ties pop first-in, first-out
	assert.Equal(t, []string{"e", "a", "d", "b", "c"}, order)
}

func TestReconstructPath(t *testing.T) {
	cameFrom := map[string]string{"cot": "cat", "dot": "cot", "dog": "dot", "cag": "cat"}
	assert.Equal(t, []string{"cat", "cot", "dot", "dog"}, reconstructPath(cameFrom, "dog"))
	assert.Equal(t, []string{"cat"}, reconstructPath(cameFrom, "cat"))
	assert.Equal(t, []string{"cat", "cag"}, reconstructPath(cameFrom, "cag"))
}

func TestValidatePath(t *testing.T) {
	d := testhelpers.SmallDictionary()
	assert.NoError(t, ValidatePath(d, []string{"cat", "cot", "cog", "dog"}))
	assert.NoError(t, ValidatePath(d, []string{"cat"}))
	assert.ErrorIs(t, ValidatePath(d, nil), ErrInvalidPath)
	assert.ErrorIs(t, ValidatePath(d, []string{"cat", "cog"}), ErrInvalidPath)
	assert.ErrorIs(t, ValidatePath(d, []string{"cat", "cut", "cot"}), ErrInvalidPath)
	assert.ErrorIs(t, ValidatePath(d, []string{"cat", "cat"}), ErrInvalidPath)
}

func TestAdjacencyCacheSize(t *testing.T) {
	assert.Equal(t, 0, AdjacencyCacheSize(0))
	assert.GreaterOrEqual(t, AdjacencyCacheSize(1e-12), minAdjacencyCacheSize)
}

func TestAdjacencyCacheClearsWhenFull(t *testing.T) {
	c := newAdjacencyCache(2)
	c.put("a", nil)
	c.put("b", []string{"x"})
	c.put("c", []string{"y"})
	_, ok := c.get("a")
	assert.False(t, ok)
	nbs, ok := c.get("c")
	assert.True(t, ok)
	assert.Equal(t, []string{"y"}, nbs)
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, 1, c.misses)
}

func TestResultString(t *testing.T) {
	r := &Result{Strategy: AStar, Start: "cat", Goal: "dog",
		Path: []string{"cat", "cot", "dot", "dog"}, Found: true, Expanded: 4}
	assert.Contains(t, r.String(), "cat -> cot -> dot -> dog (4 words, 3 steps")
	nf := &Result{Strategy: UniformCost, Start: "cat", Goal: "dog"}
	assert.Contains(t, nf.String(), "no ladder from cat to dog")
	assert.Equal(t, 0, nf.Edges())
}

func TestNeighborsOfWordOutsideAlphabet(t *testing.T) {
	wl := dictionary.NewWordlist("accents", []string{"thé", "the", "tho"})
	g := NewNeighborGenerator(wl, "")
	assert.Equal(t, []string{"the", "tho"}, g.Neighbors("thé"))
	// é is not in the default alphabet
	assert.Equal(t, []string{"tho"}, g.Neighbors("the"))
}
