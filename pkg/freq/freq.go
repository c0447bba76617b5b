// Package freq maintains per-letter occurrence counts over a corpus and
// the word scoring built on top of them.
package freq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
)

const letters = 26

// lineRe matches one persisted frequency entry, e.g. "e:1842".
var lineRe = regexp.MustCompile(`^([a-z]):(\d+)$`)

// LetterCount is one entry of a ranked listing.
type LetterCount struct {
	Letter byte
	Count  int
}

// CharFreq counts occurrences of the 26 ASCII letters. Uppercase folds
// to lowercase; everything else is ignored.
type CharFreq struct {
	counts [letters]int
}

// New returns an empty table.
func New() *CharFreq {
	return &CharFreq{}
}

// index maps an ASCII letter to its table slot, reporting false for any
// other byte.
func index(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	}
	return 0, false
}

// Add records one occurrence of c. Non-letter bytes are a no-op, so
// whole text blobs can be fed through unfiltered.
func (cf *CharFreq) Add(c byte) {
	if i, ok := index(c); ok {
		cf.counts[i]++
	}
}

// Frequency returns the count for c, or 0 when c is not an ASCII letter.
func (cf *CharFreq) Frequency(c byte) int {
	if i, ok := index(c); ok {
		return cf.counts[i]
	}
	return 0
}

// Total returns the number of letters recorded so far.
func (cf *CharFreq) Total() int {
	total := 0
	for _, n := range cf.counts {
		total += n
	}
	return total
}

// Ranked returns all 26 letters ordered by descending count; equal
// counts order alphabetically.
func (cf *CharFreq) Ranked() []LetterCount {
	out := make([]LetterCount, letters)
	for i, n := range cf.counts {
		out[i] = LetterCount{Letter: byte('a' + i), Count: n}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Letter < out[j].Letter
	})
	return out
}

// Load overwrites letter counts from "letter:count" lines. Lines that do
// not match the format are skipped; letters never mentioned keep their
// prior value.
func (cf *CharFreq) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := lineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		cf.counts[m[1][0]-'a'] = count
	}
	return scanner.Err()
}

// Save writes all 26 entries in Ranked order, zero counts included.
func (cf *CharFreq) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, lc := range cf.Ranked() {
		if _, err := fmt.Fprintf(bw, "%c:%d\n", lc.Letter, lc.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadFile reads a persisted table from path.
func LoadFile(path string) (*CharFreq, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frequency file: %w", err)
	}
	defer f.Close()

	cf := New()
	if err := cf.Load(f); err != nil {
		return nil, fmt.Errorf("read frequency file: %w", err)
	}
	return cf, nil
}

// SaveFile writes the table to path, replacing any existing file.
func (cf *CharFreq) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frequency file: %w", err)
	}
	if err := cf.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("write frequency file: %w", err)
	}
	return f.Close()
}
