package editor

import (
	"errors"
	"testing"

	"github.com/evanfield/skald/buffer"
	"github.com/evanfield/skald/search"
)

func mustSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSession_RejectsInvalidUTF8(t *testing.T) {
	if _, err := NewSession(Config{Text: "bad \xfe"}); !errors.Is(err, buffer.ErrInvalidUTF8) {
		t.Fatalf("err=%v, want ErrInvalidUTF8", err)
	}
}

func TestSetQuery_RecomputesMatchesAndCursor(t *testing.T) {
	s := mustSession(t, Config{Text: "Hello, world!\nThis is a test.\nHello again!"})

	s.SetQuery("hello")
	if got := len(s.Matches()); got != 2 {
		t.Fatalf("matches=%d, want 2", got)
	}
	if m, ok := s.Current(); !ok || m != (search.Match{Start: 0, Len: 5}) {
		t.Fatalf("current=%v,%v, want {0 5},true", m, ok)
	}

	s.SetQuery("absent")
	if got := len(s.Matches()); got != 0 {
		t.Fatalf("matches=%d, want 0", got)
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("current should be absent with no matches")
	}
	if got := s.CurrentIndex(); got != 0 {
		t.Fatalf("index=%d, want sentinel 0", got)
	}
}

func TestNavigation_WrapsAndRecordsJumpBack(t *testing.T) {
	s := mustSession(t, Config{Text: "a b a b a", Query: "a"})
	if got := len(s.Matches()); got != 3 {
		t.Fatalf("matches=%d, want 3", got)
	}

	if m, ok := s.Next(7); !ok || m.Start != 4 {
		t.Fatalf("Next=%v,%v, want start 4", m, ok)
	}
	if !s.CanJumpBack() {
		t.Fatalf("jump-back should be armed after navigation")
	}

	// Navigating again overwrites the slot.
	if m, ok := s.Next(4); !ok || m.Start != 8 {
		t.Fatalf("Next=%v,%v, want start 8", m, ok)
	}
	off, ok := s.JumpBack()
	if !ok || off != 4 {
		t.Fatalf("JumpBack=%d,%v, want 4,true", off, ok)
	}
	if s.CanJumpBack() {
		t.Fatalf("slot should be empty after JumpBack")
	}
	if _, ok := s.JumpBack(); ok {
		t.Fatalf("second JumpBack must report not available")
	}

	// Previous wraps from the first match to the last.
	s2 := mustSession(t, Config{Text: "x y x", Query: "x"})
	if m, ok := s2.Previous(0); !ok || m.Start != 4 {
		t.Fatalf("Previous=%v,%v, want start 4", m, ok)
	}
}

func TestNavigation_NoMatchesIsNoOp(t *testing.T) {
	s := mustSession(t, Config{Text: "nothing", Query: "absent"})

	if _, ok := s.Next(3); ok {
		t.Fatalf("Next with no matches must report false")
	}
	if s.CanJumpBack() {
		t.Fatalf("no navigation happened, slot must stay empty")
	}
}

func TestSetQuery_LeavesJumpBackArmed(t *testing.T) {
	s := mustSession(t, Config{Text: "a a", Query: "a"})
	s.Next(1)

	s.SetQuery("different")
	if !s.CanJumpBack() {
		t.Fatalf("query change must not clear the jump-back slot")
	}
}

func TestMutation_RecomputesBeforeNextRead(t *testing.T) {
	s := mustSession(t, Config{Text: "foo bar foo bar foo", Query: "foo"})
	s.Next(0)
	s.Next(0)
	if got := s.CurrentIndex(); got != 2 {
		t.Fatalf("index=%d, want 2", got)
	}

	// Removing the last two occurrences shrinks the set under the cursor.
	n, err := s.Replace("bar foo bar foo", "gone", false)
	if err != nil || n != 1 {
		t.Fatalf("Replace=%d,%v", n, err)
	}
	if got := len(s.Matches()); got != 1 {
		t.Fatalf("matches=%d, want 1", got)
	}
	if got := s.CurrentIndex(); got != 0 {
		t.Fatalf("index=%d, want clamped 0", got)
	}
	if m, ok := s.Current(); !ok || m != (search.Match{Start: 0, Len: 3}) {
		t.Fatalf("current=%v,%v", m, ok)
	}
}

func TestMutations_ReportAffectedCounts(t *testing.T) {
	s := mustSession(t, Config{Text: "one two\nthree two", Query: "two"})

	n, err := s.WrapMatches("two", "[", "]")
	if err != nil || n != 2 {
		t.Fatalf("WrapMatches=%d,%v, want 2,nil", n, err)
	}
	if got, want := s.Text(), "one [two]\nthree [two]"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	n, err = s.PrefixLines("> ")
	if err != nil || n != 2 {
		t.Fatalf("PrefixLines=%d,%v, want 2,nil", n, err)
	}

	n, err = s.PrefixMatchingLines("* ", "three")
	if err != nil || n != 1 {
		t.Fatalf("PrefixMatchingLines=%d,%v, want 1,nil", n, err)
	}

	n, err = s.InsertLine("middle", 1, buffer.PlaceAfter)
	if err != nil || n != 1 {
		t.Fatalf("InsertLine=%d,%v, want 1,nil", n, err)
	}
	if got, want := s.Text(), "> one [two]\nmiddle\n* > three [two]"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	n, err = s.Prepend("head\n")
	if err != nil || n != 1 {
		t.Fatalf("Prepend=%d,%v, want 1,nil", n, err)
	}
	n, err = s.Append("\ntail")
	if err != nil || n != 1 {
		t.Fatalf("Append=%d,%v, want 1,nil", n, err)
	}
	if got, want := s.Text(), "head\n> one [two]\nmiddle\n* > three [two]\ntail"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestMutation_NoOccurrencesIsSuccessWithZero(t *testing.T) {
	s := mustSession(t, Config{Text: "stable", Query: "stable"})
	v := s.Version()

	n, err := s.Replace("missing", "x", true)
	if err != nil || n != 0 {
		t.Fatalf("Replace=%d,%v, want 0,nil", n, err)
	}
	if got := s.Version(); got != v {
		t.Fatalf("version=%d, want unchanged %d", got, v)
	}
	if got := len(s.Matches()); got != 1 {
		t.Fatalf("matches=%d, want 1", got)
	}
}

func TestSetText_ReloadsThroughValidation(t *testing.T) {
	s := mustSession(t, Config{Text: "old old", Query: "old"})

	if err := s.SetText("old fresh"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if got := len(s.Matches()); got != 1 {
		t.Fatalf("matches=%d, want 1", got)
	}

	if err := s.SetText("nope \xff"); !errors.Is(err, buffer.ErrInvalidUTF8) {
		t.Fatalf("err=%v, want ErrInvalidUTF8", err)
	}
	if got, want := s.Text(), "old fresh"; got != want {
		t.Fatalf("text=%q after rejected reload, want %q", got, want)
	}
}
