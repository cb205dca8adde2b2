package buffer

import (
	"strings"

	"github.com/evanfield/skald/internal/grapheme"
)

// Metrics summarizes a document for status displays.
type Metrics struct {
	Words int // maximal runs of non-whitespace clusters
	Chars int // user-perceived characters (grapheme clusters), line breaks included
	Lines int // newline-delimited lines; an empty document has one
}

// Measure counts text in one pass over its grapheme clusters.
func Measure(text string) Metrics {
	m := Metrics{Lines: strings.Count(text, "\n") + 1}

	inWord := false
	grapheme.Each(text, func(cluster string) bool {
		m.Chars++
		if grapheme.IsSpace(cluster) {
			inWord = false
		} else if !inWord {
			inWord = true
			m.Words++
		}
		return true
	})
	return m
}

// Metrics returns the measurements for the current document.
func (b *Buffer) Metrics() Metrics { return Measure(b.text) }
