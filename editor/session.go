package editor

import (
	"github.com/evanfield/skald/buffer"
	"github.com/evanfield/skald/search"
)

// Config configures a Session.
type Config struct {
	// Initial document text. Must be valid UTF-8.
	Text string

	// Initial search query, may be empty.
	Query string
}

// Session holds one document and keeps its search state consistent:
// every committed mutation recomputes the match set against the live
// query and re-clamps the cursor before control returns to the caller.
//
// A Session is not safe for concurrent use. Hosts invoking it from
// more than one goroutine (a UI loop and a tool runner, say) must
// serialize access around it.
type Session struct {
	buf     *buffer.Buffer
	query   string
	matches search.MatchSet
	cursor  search.Cursor
	jump    search.JumpBack
}

// NewSession validates cfg.Text and returns a ready session.
func NewSession(cfg Config) (*Session, error) {
	buf, err := buffer.New(cfg.Text)
	if err != nil {
		return nil, err
	}
	s := &Session{buf: buf}
	s.SetQuery(cfg.Query)
	return s, nil
}

// Text returns the current document text.
func (s *Session) Text() string { return s.buf.Text() }

// Version returns the buffer's commit counter. It changes exactly
// when the document does, so hosts can use it to skip redundant
// re-rendering.
func (s *Session) Version() uint64 { return s.buf.Version() }

// Query returns the live search query.
func (s *Session) Query() string { return s.query }

// Metrics returns word/char/line counts for the current document.
func (s *Session) Metrics() buffer.Metrics { return s.buf.Metrics() }

// Matches returns the current match set. The returned slice is valid
// only until the next mutation or query change; callers must not
// retain it across edits.
func (s *Session) Matches() search.MatchSet { return s.matches }

// SetQuery installs a new query and recomputes matches and cursor.
// The jump-back slot is left as it is.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.recompute()
}

// SetText replaces the whole document through the same validation and
// recomputation path as the mutation operations.
func (s *Session) SetText(text string) error {
	return s.commit(text)
}

// Current returns the match under the cursor, or false when the set
// is empty (or, defensively, when the index is somehow out of range).
func (s *Session) Current() (search.Match, bool) {
	return s.matches.At(s.cursor.Index())
}

// CurrentIndex returns the cursor's match index. With no matches it
// is the conventional sentinel 0, not a valid index.
func (s *Session) CurrentIndex() int { return s.cursor.Index() }

// Next advances the cursor to the following match, wrapping at the
// end. caret is the rune offset the rendering surface reports as the
// position the user is standing at; it is remembered for JumpBack.
// With no matches nothing happens and nothing is remembered.
func (s *Session) Next(caret int) (search.Match, bool) {
	return s.advance(search.Forward, caret)
}

// Previous advances the cursor to the preceding match, wrapping at
// the start. See Next for the caret contract.
func (s *Session) Previous(caret int) (search.Match, bool) {
	return s.advance(search.Backward, caret)
}

func (s *Session) advance(d search.Direction, caret int) (search.Match, bool) {
	if len(s.matches) == 0 {
		return search.Match{}, false
	}
	s.jump.Record(caret)
	s.cursor.Advance(d)
	return s.Current()
}

// JumpBack returns the caret offset recorded before the last
// navigation and disarms the slot. False means nothing was recorded;
// that is a status, not a failure.
func (s *Session) JumpBack() (int, bool) { return s.jump.Consume() }

// CanJumpBack reports whether a jump-back offset is armed.
func (s *Session) CanJumpBack() bool { return s.jump.Armed() }

// Replace substitutes occurrences of needle with replacement (first
// only, or all) and reports how many locations changed.
func (s *Session) Replace(needle, replacement string, all bool) (int, error) {
	next, n := buffer.Replace(s.buf.Text(), needle, replacement, all)
	return n, s.commit(next)
}

// WrapMatches surrounds every occurrence of needle with prefix and
// suffix.
func (s *Session) WrapMatches(needle, prefix, suffix string) (int, error) {
	next, n := buffer.WrapMatches(s.buf.Text(), needle, prefix, suffix)
	return n, s.commit(next)
}

// PrefixLines prepends prefix to every non-empty line.
func (s *Session) PrefixLines(prefix string) (int, error) {
	next, n := buffer.PrefixLines(s.buf.Text(), prefix)
	return n, s.commit(next)
}

// PrefixMatchingLines prepends prefix to every line containing needle.
func (s *Session) PrefixMatchingLines(prefix, needle string) (int, error) {
	next, n := buffer.PrefixMatchingLines(s.buf.Text(), prefix, needle)
	return n, s.commit(next)
}

// InsertLine inserts content as a new line next to the 1-indexed line
// number, clamping out-of-range numbers.
func (s *Session) InsertLine(content string, line int, place buffer.LinePlacement) (int, error) {
	next, n := buffer.InsertLine(s.buf.Text(), content, line, place)
	return n, s.commit(next)
}

// Prepend concatenates text in front of the document.
func (s *Session) Prepend(text string) (int, error) {
	next, n := buffer.Prepend(s.buf.Text(), text)
	return n, s.commit(next)
}

// Append concatenates text after the document.
func (s *Session) Append(text string) (int, error) {
	next, n := buffer.Append(s.buf.Text(), text)
	return n, s.commit(next)
}

// commit installs text and recomputes search state. Recomputation
// happens even on a rejected commit; the buffer is unchanged then,
// but the invariant "match set always describes the committed text"
// is cheap to re-establish unconditionally.
func (s *Session) commit(text string) error {
	err := s.buf.Commit(text)
	s.recompute()
	return err
}

func (s *Session) recompute() {
	s.matches = search.Find(s.buf.Text(), s.query)
	s.cursor.Recompute(len(s.matches))
}
