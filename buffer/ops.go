package buffer

import (
	"strings"

	"github.com/evanfield/skald/search"
)

// LinePlacement selects which side of the reference line InsertLine
// targets.
type LinePlacement uint8

const (
	PlaceBefore LinePlacement = iota
	PlaceAfter
)

// Replace substitutes occurrences of needle with replacement and
// returns the new text with the number of substitutions. Matching is
// case-insensitive plain substring — deliberately not word-boundary
// restricted, unlike search.Find: replace targets are often fragments
// of longer identifiers. The scan is a single left-to-right pass over
// the input, so replacement text is never rescanned. With all false
// only the first occurrence is replaced.
func Replace(text, needle, replacement string, all bool) (string, int) {
	occ := search.Occurrences(text, needle)
	if len(occ) == 0 {
		return text, 0
	}
	if !all {
		occ = occ[:1]
	}
	return splice(text, occ, func(matched string) string { return replacement }), len(occ)
}

// WrapMatches inserts prefix before and suffix after every plain
// substring occurrence of needle, preserving the matched text as it
// appears in the document. Matching follows Replace, not search.Find.
func WrapMatches(text, needle, prefix, suffix string) (string, int) {
	occ := search.Occurrences(text, needle)
	if len(occ) == 0 {
		return text, 0
	}
	return splice(text, occ, func(matched string) string { return prefix + matched + suffix }), len(occ)
}

// splice rewrites text by substituting each matched span with
// sub(matched). Matches must be ordered and non-overlapping, which
// search.Occurrences guarantees.
func splice(text string, occ search.MatchSet, sub func(matched string) string) string {
	src := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, m := range occ {
		sb.WriteString(string(src[last:m.Start]))
		sb.WriteString(sub(string(src[m.Start:m.End()])))
		last = m.End()
	}
	sb.WriteString(string(src[last:]))
	return sb.String()
}

// PrefixLines prepends prefix to every non-empty line and returns the
// number of lines changed. Empty lines stay untouched so the result
// carries no whitespace-only lines.
func PrefixLines(text, prefix string) (string, int) {
	return prefixLinesWhere(text, prefix, func(line string) bool { return line != "" })
}

// PrefixMatchingLines prepends prefix to every line containing needle,
// compared case-insensitively. An empty needle selects no lines.
func PrefixMatchingLines(text, prefix, needle string) (string, int) {
	if needle == "" {
		return text, 0
	}
	return prefixLinesWhere(text, prefix, func(line string) bool {
		return search.ContainsFold(line, needle)
	})
}

func prefixLinesWhere(text, prefix string, want func(line string) bool) (string, int) {
	if prefix == "" {
		return text, 0
	}
	lines := strings.Split(text, "\n")
	count := 0
	for i, line := range lines {
		if !want(line) {
			continue
		}
		lines[i] = prefix + line
		count++
	}
	if count == 0 {
		return text, 0
	}
	return strings.Join(lines, "\n"), count
}

// InsertLine inserts content as its own line immediately before or
// after the 1-indexed line number. Out-of-range numbers clamp to the
// nearest edge, so the operation always succeeds and always reports
// one affected location.
func InsertLine(text, content string, line int, place LinePlacement) (string, int) {
	lines := strings.Split(text, "\n")

	idx := line - 1
	if place == PlaceAfter {
		idx = line
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(lines) {
		idx = len(lines)
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:idx]...)
	out = append(out, content)
	out = append(out, lines[idx:]...)
	return strings.Join(out, "\n"), 1
}

// Prepend concatenates prefix in front of the document.
func Prepend(text, prefix string) (string, int) {
	return prefix + text, 1
}

// Append concatenates suffix after the document.
func Append(text, suffix string) (string, int) {
	return text + suffix, 1
}
