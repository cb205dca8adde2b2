package search

import (
	"unicode"
	"unicode/utf8"
)

// Find returns every word-boundary match of query in text, in
// left-to-right order. Comparison is case-insensitive under Unicode
// simple folding, so a match always spans exactly as many runes as
// the query. Scanning is non-overlapping: after a match is accepted
// the scan resumes past its end. An empty query yields no matches.
//
// A position counts as a word boundary when the adjacent rune is not
// alphanumeric or there is no adjacent rune at all. Runes that cannot
// be classified (decoding artifacts, combining marks) land on the
// boundary side, so non-ASCII neighbors never suppress a match.
func Find(text, query string) MatchSet {
	return scan(text, query, true)
}

// Occurrences returns every plain substring match of query, with the
// same folding and non-overlap rules as Find but no word-boundary
// restriction. Replace-style operations build on this: their targets
// are often fragments of longer identifiers.
func Occurrences(text, query string) MatchSet {
	return scan(text, query, false)
}

// ContainsFold reports whether query occurs anywhere in text under
// the same case-insensitive comparison as Occurrences.
func ContainsFold(text, query string) bool {
	if query == "" {
		return false
	}
	src := []rune(text)
	pat := []rune(query)
	for i := 0; i+len(pat) <= len(src); i++ {
		if foldEqual(src[i:i+len(pat)], pat) {
			return true
		}
	}
	return false
}

func scan(text, query string, wholeWord bool) MatchSet {
	if query == "" || text == "" {
		return nil
	}
	src := []rune(text)
	pat := []rune(query)
	if len(pat) > len(src) {
		return nil
	}

	var out MatchSet
	for i := 0; i+len(pat) <= len(src); {
		if !foldEqual(src[i:i+len(pat)], pat) {
			i++
			continue
		}
		if wholeWord && (!boundaryBefore(src, i) || !boundaryAfter(src, i+len(pat))) {
			i++
			continue
		}
		out = append(out, Match{Start: i, Len: len(pat)})
		i += len(pat)
	}
	return out
}

func foldEqual(s, pat []rune) bool {
	for i := range pat {
		if !runeEqualFold(s[i], pat[i]) {
			return false
		}
	}
	return true
}

// runeEqualFold reports whether a and b are equal under Unicode
// simple case folding (the rune-wise relation behind strings.EqualFold).
func runeEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// isWordRune reports whether r counts as alphanumeric for boundary
// checks. The replacement rune from malformed input is unclassifiable
// and treated as a boundary.
func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func boundaryBefore(src []rune, start int) bool {
	return start == 0 || !isWordRune(src[start-1])
}

func boundaryAfter(src []rune, end int) bool {
	return end >= len(src) || !isWordRune(src[end])
}
