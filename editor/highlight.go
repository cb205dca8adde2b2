package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HighlightSpan marks a highlighted stretch of one line. StartCol and
// EndCol are rune indices into the line text, half-open
// [StartCol, EndCol).
type HighlightSpan struct {
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

// HighlightStyles selects the emphasis applied to matches.
type HighlightStyles struct {
	Match   lipgloss.Style // every match
	Current lipgloss.Style // the match under the cursor
}

// DefaultHighlightStyles underlines matches and reverses the current
// one, which reads on any terminal background.
func DefaultHighlightStyles() HighlightStyles {
	return HighlightStyles{
		Match:   lipgloss.NewStyle().Underline(true),
		Current: lipgloss.NewStyle().Reverse(true),
	}
}

// HighlightLines maps the session's current match set onto per-row
// spans for a rendering surface, keyed by 0-based row. A match whose
// query contains a newline is split across the rows it covers. Spans
// per row come back normalized: clamped to the line, ordered, and
// non-overlapping.
//
// The result is a snapshot; it goes stale with the next mutation or
// query change, like the match set it is derived from.
func (s *Session) HighlightLines(st HighlightStyles) map[int][]HighlightSpan {
	if len(s.matches) == 0 {
		return nil
	}

	src := []rune(s.buf.Text())
	starts := lineStartOffsets(src)
	out := make(map[int][]HighlightSpan)

	cur := s.cursor.Index()
	for i, m := range s.matches {
		style := st.Match
		if i == cur {
			style = st.Current
		}
		emitRowSpans(out, starts, src, m.Start, m.End(), style)
	}

	for row, spans := range out {
		out[row] = normalizeSpans(spans, rowLen(starts, src, row))
	}
	return out
}

// lineStartOffsets returns the rune offset of each line start,
// beginning with 0.
func lineStartOffsets(src []rune) []int {
	starts := []int{0}
	for i, r := range src {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// rowLen returns the rune length of row excluding its newline.
func rowLen(starts []int, src []rune, row int) int {
	if row < 0 || row >= len(starts) {
		return 0
	}
	if row == len(starts)-1 {
		return len(src) - starts[row]
	}
	return starts[row+1] - 1 - starts[row]
}

// emitRowSpans splits the document-offset span [start, end) into
// per-row column spans and appends them to out.
func emitRowSpans(out map[int][]HighlightSpan, starts []int, src []rune, start, end int, style lipgloss.Style) {
	for start < end {
		row := sort.Search(len(starts), func(i int) bool { return starts[i] > start }) - 1
		lineEnd := starts[row] + rowLen(starts, src, row)

		segEnd := end
		if segEnd > lineEnd {
			segEnd = lineEnd
		}
		if segEnd > start {
			out[row] = append(out[row], HighlightSpan{
				StartCol: start - starts[row],
				EndCol:   segEnd - starts[row],
				Style:    style,
			})
		}

		if row == len(starts)-1 {
			return
		}
		start = starts[row+1]
	}
}

// normalizeSpans clamps spans to the line, orders them, and drops any
// overlap so renderers can apply them in a single pass.
func normalizeSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	if lineLen < 0 {
		lineLen = 0
	}

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end <= start {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	merged := out[:0]
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// RenderLine applies spans to line and returns the styled string.
// Spans must be normalized (RenderLine assumes ordered, non-overlapping
// columns, as HighlightLines produces).
func RenderLine(line string, spans []HighlightSpan) string {
	if len(spans) == 0 {
		return line
	}

	src := []rune(line)
	var sb strings.Builder
	last := 0
	for _, sp := range spans {
		if sp.StartCol > len(src) {
			break
		}
		end := sp.EndCol
		if end > len(src) {
			end = len(src)
		}
		sb.WriteString(string(src[last:sp.StartCol]))
		sb.WriteString(sp.Style.Render(string(src[sp.StartCol:end])))
		last = end
	}
	sb.WriteString(string(src[last:]))
	return sb.String()
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
