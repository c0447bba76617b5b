// Package dictionary provides access to the word source: a streaming
// line scan for one-shot runs and a resident patricia trie for serve
// mode, where the same source answers many queries.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Scan streams the word source at path line by line into fn. Lines are
// passed through verbatim; callers lowercase before matching. A non-nil
// error from fn aborts the scan.
func Scan(path string, fn func(word string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word source: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read word source: %w", err)
	}
	return nil
}

// Dict is a resident word list keyed by lowercased word. The stored
// item is the original line, so output preserves source casing.
type Dict struct {
	trie  *patricia.Trie
	words int
}

// Load reads the entire word source into a trie.
func Load(path string) (*Dict, error) {
	d := &Dict{trie: patricia.NewTrie()}
	err := Scan(path, func(word string) error {
		if word == "" {
			return nil
		}
		if d.trie.Insert(patricia.Prefix(strings.ToLower(word)), word) {
			d.words++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("dictionary loaded: %d words", d.words)
	return d, nil
}

// Len returns the number of loaded words.
func (d *Dict) Len() int {
	return d.words
}

// Walk visits every stored word whose lowercased form starts with
// prefix, passing the lowercase key and the original line. An empty
// prefix visits the whole dictionary.
func (d *Dict) Walk(prefix string, fn func(lower, original string) error) error {
	return d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		return fn(string(p), item.(string))
	})
}
