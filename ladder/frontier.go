package ladder

import "container/heap"

// node is one frontier entry. A word may be in the frontier several times
// with different costs; stale entries are skipped when popped.
type node struct {
	word     string
	cost     int
	priority int
	seq      uint64
}

// frontier is a min-heap on priority. Equal priorities pop in the order
// they were pushed.
type frontier struct {
	items []*node
	seq   uint64
}

func (f frontier) Len() int { return len(f.items) }

func (f frontier) Less(i, j int) bool {
	if f.items[i].priority != f.items[j].priority {
		return f.items[i].priority < f.items[j].priority
	}
	return f.items[i].seq < f.items[j].seq
}

func (f frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(*node))
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return item
}

func (f *frontier) push(word string, cost, priority int) {
	f.seq++
	heap.Push(f, &node{word: word, cost: cost, priority: priority, seq: f.seq})
}

func (f *frontier) pop() *node {
	return heap.Pop(f).(*node)
}
