package filter

// ParsePositions turns a five-character pattern into positional
// constraints. '*' marks "no constraint at this index". A pattern of any
// other length contributes nothing: malformed input loosens the filter
// instead of failing it.
func ParsePositions(pattern string) []CharPosition {
	var out []CharPosition
	if len(pattern) != WordLength {
		return out
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '*' {
			continue
		}
		out = append(out, CharPosition{Char: pattern[i], Position: i})
	}
	return out
}

// ParseIgnoreChars explodes a string of banned letters. No dedup; the
// filter tolerates repeats.
func ParseIgnoreChars(chars string) []byte {
	return []byte(chars)
}

// ParseElsewhere parses each "present but wrong spot" pattern
// independently and concatenates the results. Patterns that are not
// exactly five characters are skipped.
func ParseElsewhere(patterns []string) []CharPosition {
	var out []CharPosition
	for _, p := range patterns {
		out = append(out, ParsePositions(p)...)
	}
	return out
}
