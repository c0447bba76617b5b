package freq

import "container/heap"

// WordScore pairs a word with its frequency score: the sum of Frequency
// over the word's distinct letters, case-folded. Repeated letters count
// once. The score is computed at construction and never re-derived.
type WordScore struct {
	Word  string
	Score int
}

// NewWordScore scores word against the shared table.
func NewWordScore(word string, cf *CharFreq) WordScore {
	var seen uint32
	score := 0
	for i := 0; i < len(word); i++ {
		idx, ok := index(word[i])
		if !ok {
			continue
		}
		bit := uint32(1) << uint(idx)
		if seen&bit != 0 {
			continue
		}
		seen |= bit
		score += cf.counts[idx]
	}
	return WordScore{Word: word, Score: score}
}

// compare defines the ranking total order: score ascending, then words
// reverse-lexicographic (the greater word orders lower). Popping the
// maximum therefore yields highest score first and, on score ties, the
// lexicographically smaller word first.
func compare(a, b WordScore) int {
	switch {
	case a.Score < b.Score:
		return -1
	case a.Score > b.Score:
		return 1
	}
	switch {
	case a.Word < b.Word:
		return 1
	case a.Word > b.Word:
		return -1
	}
	return 0
}

// TopK collects scored words and drains the best of them. Inserts are
// unbounded; only the drain is capped.
type TopK struct {
	h scoreHeap
}

// NewTopK returns an empty collector.
func NewTopK() *TopK {
	return &TopK{}
}

// Add inserts one scored word.
func (t *TopK) Add(ws WordScore) {
	heap.Push(&t.h, ws)
}

// Len reports how many words have been collected.
func (t *TopK) Len() int {
	return t.h.Len()
}

// Drain pops up to k words, best first. k <= 0 yields nothing; entries
// beyond k stay unpopped and are discarded with the collector.
func (t *TopK) Drain(k int) []WordScore {
	if k < 0 {
		k = 0
	}
	if k > t.h.Len() {
		k = t.h.Len()
	}
	out := make([]WordScore, 0, k)
	for ; k > 0; k-- {
		out = append(out, heap.Pop(&t.h).(WordScore))
	}
	return out
}

// scoreHeap is a max-heap under compare.
type scoreHeap []WordScore

func (h scoreHeap) Len() int           { return len(h) }
func (h scoreHeap) Less(i, j int) bool { return compare(h[i], h[j]) > 0 }
func (h scoreHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *scoreHeap) Push(x any) {
	*h = append(*h, x.(WordScore))
}

func (h *scoreHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
