package search

// JumpBack remembers a single caret offset: where the caller stood
// immediately before the last match navigation. It is one slot, not a
// stack — a new navigation overwrites the previous value, and a
// consume clears it.
type JumpBack struct {
	offset int
	armed  bool
}

// Record stores offset, overwriting any previously stored value.
func (j *JumpBack) Record(offset int) {
	j.offset = offset
	j.armed = true
}

// Consume returns the stored offset and clears the slot. When nothing
// is stored it reports false and the slot stays empty.
func (j *JumpBack) Consume() (int, bool) {
	if !j.armed {
		return 0, false
	}
	off := j.offset
	j.offset = 0
	j.armed = false
	return off, true
}

// Armed reports whether the slot holds a value. A UI can use this to
// enable its jump-back affordance.
func (j *JumpBack) Armed() bool { return j.armed }
