package grapheme

import "testing"

func TestCount_ClustersNotRunes(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "héllo", want: 5},
		{text: "é", want: 1},            // e + combining acute
		{text: "👨‍👩‍👧‍👦", want: 1},              // ZWJ family
		{text: "a👍b", want: 3},
		{text: "line\nbreak", want: 10},
	}

	for _, tc := range cases {
		if got := Count(tc.text); got != tc.want {
			t.Fatalf("Count(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestEach_StopsEarly(t *testing.T) {
	seen := 0
	Each("abcdef", func(cluster string) bool {
		seen++
		return seen < 3
	})
	if seen != 3 {
		t.Fatalf("seen=%d, want 3", seen)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	cases := []struct {
		text       string
		start, end int
		want       string
	}{
		{text: "hello", start: 1, end: 4, want: "ell"},
		{text: "a👨‍👩‍👧‍👦b", start: 1, end: 2, want: "👨‍👩‍👧‍👦"},
		{text: "abc", start: -2, end: 2, want: "ab"},
		{text: "abc", start: 2, end: 2, want: ""},
		{text: "abc", start: 2, end: 99, want: "c"},
		{text: "", start: 0, end: 5, want: ""},
	}

	for _, tc := range cases {
		if got := Slice(tc.text, tc.start, tc.end); got != tc.want {
			t.Fatalf("Slice(%q,%d,%d)=%q, want %q", tc.text, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	cases := []struct {
		cluster string
		want    bool
	}{
		{cluster: " ", want: true},
		{cluster: "\t", want: true},
		{cluster: "\n", want: true},
		{cluster: " ", want: true},
		{cluster: "a", want: false},
		{cluster: "", want: false},
	}

	for _, tc := range cases {
		if got := IsSpace(tc.cluster); got != tc.want {
			t.Fatalf("IsSpace(%q)=%v, want %v", tc.cluster, got, tc.want)
		}
	}
}
