// Package filter implements the constraint rules that narrow candidate
// words: excluded letters, letters pinned to a position, and letters
// known to be in the word but somewhere else.
package filter

import "strings"

// WordLength is the fixed candidate length for the puzzle grid.
const WordLength = 5

// CharPosition binds a letter to a zero-based index in the word.
// Whether the binding means "must match" or "must not match" depends on
// which Filter list holds it.
type CharPosition struct {
	Char     byte
	Position int
}

// Filter holds one round's worth of parsed puzzle feedback. All fields
// are fixed at construction; Accept never mutates.
type Filter struct {
	length         int
	ignoreChars    []byte
	charPositions  []CharPosition
	elsewhereChars []CharPosition
}

// New builds a Filter over the fixed word length. Entries in
// elsewhereChars carry two rules at once: the letter must not sit at the
// given position, yet must appear somewhere in the word.
func New(ignoreChars []byte, charPositions, elsewhereChars []CharPosition) *Filter {
	return &Filter{
		length:         WordLength,
		ignoreChars:    ignoreChars,
		charPositions:  charPositions,
		elsewhereChars: elsewhereChars,
	}
}

// Accept reports whether word survives every constraint. It is pure and
// case-sensitive; callers lowercase beforehand.
func (f *Filter) Accept(word string) bool {
	if len(word) != f.length {
		return false
	}
	for _, c := range f.ignoreChars {
		if strings.IndexByte(word, c) >= 0 {
			return false
		}
	}
	if !f.acceptPositions(word) {
		return false
	}
	return f.acceptPresence(word)
}

// acceptPositions checks the pinned and excluded position rules.
func (f *Filter) acceptPositions(word string) bool {
	for _, cp := range f.charPositions {
		if cp.Position >= len(word) || word[cp.Position] != cp.Char {
			return false
		}
	}
	for _, cp := range f.elsewhereChars {
		if cp.Position < len(word) && word[cp.Position] == cp.Char {
			return false
		}
	}
	return true
}

// acceptPresence checks that every "elsewhere" letter occurs somewhere
// in the word.
func (f *Filter) acceptPresence(word string) bool {
	for _, cp := range f.elsewhereChars {
		if strings.IndexByte(word, cp.Char) < 0 {
			return false
		}
	}
	return true
}

// KnownPrefix returns the longest run of pinned letters starting at
// position zero. Trie-backed dictionaries use it to narrow traversal;
// an empty result means a full scan.
func (f *Filter) KnownPrefix() string {
	prefix := make([]byte, 0, f.length)
	for len(prefix) < f.length {
		pos := len(prefix)
		found := false
		for _, cp := range f.charPositions {
			if cp.Position == pos {
				prefix = append(prefix, cp.Char)
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return string(prefix)
}
