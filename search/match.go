package search

// Match is one located span: Start is the rune offset of its first
// rune, Len the number of runes it covers.
type Match struct {
	Start int
	Len   int
}

// End returns the rune offset one past the last rune of the match.
func (m Match) End() int { return m.Start + m.Len }

// MatchSet is the ordered matches for one query against one text
// snapshot, in left-to-right occurrence order. Identity is positional:
// a match is addressed only by its index.
type MatchSet []Match

// At returns the match at index i, or false when i is out of range.
func (s MatchSet) At(i int) (Match, bool) {
	if i < 0 || i >= len(s) {
		return Match{}, false
	}
	return s[i], true
}
