package buffer

import "testing"

func TestMeasure(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Metrics
	}{
		{name: "empty", text: "", want: Metrics{Words: 0, Chars: 0, Lines: 1}},
		{name: "single word", text: "hello", want: Metrics{Words: 1, Chars: 5, Lines: 1}},
		{name: "sentence", text: "the quick brown fox", want: Metrics{Words: 4, Chars: 19, Lines: 1}},
		{name: "multiline", text: "one\ntwo three\n", want: Metrics{Words: 3, Chars: 14, Lines: 3}},
		{name: "extra whitespace", text: "  a\t b  ", want: Metrics{Words: 2, Chars: 8, Lines: 1}},
		{name: "combining mark is one char", text: "é ok", want: Metrics{Words: 2, Chars: 4, Lines: 1}},
		{name: "zwj emoji is one char", text: "👨‍👩‍👧‍👦", want: Metrics{Words: 1, Chars: 1, Lines: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Measure(tc.text); got != tc.want {
				t.Fatalf("Measure(%q)=%+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestBuffer_Metrics(t *testing.T) {
	b, err := New("a b\nc")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := b.Metrics(), (Metrics{Words: 3, Chars: 5, Lines: 2}); got != want {
		t.Fatalf("Metrics=%+v, want %+v", got, want)
	}
}
