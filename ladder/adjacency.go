package ladder

import (
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// Rough memory footprint of one cached entry: the key, the slice header and
// a handful of neighbor strings.
const adjacencyEntrySize = 256

const minAdjacencyCacheSize = 1 << 10

// AdjacencyCacheSize returns how many words fit in a neighbor cache using
// the given fraction of total system memory. It returns 0 for a fraction of
// 0 or less.
func AdjacencyCacheSize(fractionOfMemory float64) int {
	if fractionOfMemory <= 0 {
		return 0
	}
	totalMem := memory.TotalMemory()
	n := int(fractionOfMemory * float64(totalMem) / adjacencyEntrySize)
	if n < minAdjacencyCacheSize {
		n = minAdjacencyCacheSize
	}
	log.Debug().Uint64("total-mem", totalMem).Int("entries", n).Msg("adjacency-cache-size")
	return n
}

// adjacencyCache remembers neighbor lists across searches on the same
// dictionary. When it fills up it is cleared wholesale.
type adjacencyCache struct {
	entries  map[string][]string
	capacity int
	hits     int
	misses   int
}

func newAdjacencyCache(capacity int) *adjacencyCache {
	return &adjacencyCache{
		entries:  make(map[string][]string),
		capacity: capacity,
	}
}

func (c *adjacencyCache) get(word string) ([]string, bool) {
	nbs, ok := c.entries[word]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nbs, ok
}

func (c *adjacencyCache) put(word string, nbs []string) {
	if len(c.entries) >= c.capacity {
		log.Debug().Int("entries", len(c.entries)).Msg("adjacency-cache-full-clearing")
		clear(c.entries)
	}
	c.entries[word] = nbs
}
