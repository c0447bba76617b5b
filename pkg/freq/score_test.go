package freq

import (
	"reflect"
	"testing"
)

func testTable() *CharFreq {
	cf := New()
	for _, c := range []byte{'a', 'a', 'a', 'b', 'c'} {
		cf.Add(c)
	}
	return cf
}

func TestWordScoreDistinctLetters(t *testing.T) {
	cf := testTable()

	testCases := []struct {
		word        string
		want        int
		description string
	}{
		{"aaaaaaabc", 5, "repeated letters count once"},
		{"abc", 5, "each distinct letter contributes"},
		{"bcd", 2, "letters absent from the table score zero"},
		{"xyz", 0, "all unknown letters"},
		{"ABC", 5, "scoring is case-folded"},
		{"a-a", 3, "non-letters are skipped"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			ws := NewWordScore(tc.word, cf)
			if ws.Score != tc.want {
				t.Errorf("score(%q) = %d, want %d", tc.word, ws.Score, tc.want)
			}
		})
	}
}

// Equal scores drain the lexicographically smaller word first; the
// greater word orders lower under the reverse-lexicographic tie-break.
func TestTopKPopOrder(t *testing.T) {
	cf := testTable()

	topk := NewTopK()
	for _, word := range []string{"abc", "cba", "bcd"} {
		topk.Add(NewWordScore(word, cf))
	}

	got := topk.Drain(3)
	want := []WordScore{
		{Word: "abc", Score: 5},
		{Word: "cba", Score: 5},
		{Word: "bcd", Score: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Drain(3) = %v, want %v", got, want)
	}
	if topk.Len() != 0 {
		t.Errorf("collector should be empty after a full drain")
	}
}

func TestTopKDrainBounds(t *testing.T) {
	cf := testTable()

	testCases := []struct {
		k           int
		want        int
		description string
	}{
		{0, 0, "zero emits nothing"},
		{-1, 0, "negative treated as zero"},
		{2, 2, "partial drain"},
		{10, 4, "k beyond collected emits everything"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			topk := NewTopK()
			for _, word := range []string{"abcde", "bcdea", "cdeab", "deabc"} {
				topk.Add(NewWordScore(word, cf))
			}
			if got := topk.Drain(tc.k); len(got) != tc.want {
				t.Errorf("Drain(%d) returned %d words, want %d", tc.k, len(got), tc.want)
			}
		})
	}
}

func TestTopKHighestScoreFirst(t *testing.T) {
	cf := New()
	for _, c := range []byte("eeeettaaoo") {
		cf.Add(c)
	}

	topk := NewTopK()
	for _, word := range []string{"queue", "eaten", "zzzzz"} {
		topk.Add(NewWordScore(word, cf))
	}

	got := topk.Drain(3)
	if got[0].Word != "eaten" {
		t.Errorf("expected 'eaten' (e,a,t,n) to outscore the rest, got %q", got[0].Word)
	}
	if got[2].Word != "zzzzz" {
		t.Errorf("expected 'zzzzz' last, got %q", got[2].Word)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("drain order not descending by score: %v", got)
		}
	}
}
