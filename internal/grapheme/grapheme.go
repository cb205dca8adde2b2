package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Each calls fn for every grapheme cluster of text in order, stopping
// early when fn returns false.
func Each(text string, fn func(cluster string) bool) {
	if text == "" {
		return
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		if !fn(g.Str()) {
			return
		}
	}
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	n := 0
	Each(text, func(string) bool {
		n++
		return true
	})
	return n
}

// Slice returns the grapheme-safe substring for cluster indices [start, end).
func Slice(text string, start, end int) string {
	if text == "" || end <= start {
		return ""
	}
	if start < 0 {
		start = 0
	}

	var sb strings.Builder
	idx := 0
	Each(text, func(cluster string) bool {
		if idx >= end {
			return false
		}
		if idx >= start {
			sb.WriteString(cluster)
		}
		idx++
		return true
	})
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
