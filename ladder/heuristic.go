package ladder

// Heuristic estimates the number of substitutions left between word and
// goal. Both words have the same length.
type Heuristic func(word, goal string) int

// Hamming counts the positions where word and goal differ. With unit-cost
// substitutions it never overestimates and is consistent, which A* needs to
// return shortest ladders. Words of different lengths are compared over the
// shorter one, and each extra rune counts as one difference.
func Hamming(word, goal string) int {
	a, b := []rune(word), []rune(goal)
	if len(a) > len(b) {
		a, b = b, a
	}
	n := len(b) - len(a)
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
