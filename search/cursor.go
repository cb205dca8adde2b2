package search

// Direction selects which neighbor Advance moves to.
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Cursor tracks the current position within a MatchSet as a pure
// {count, index} state machine. The zero value is ready to use and
// denotes "no matches"; by convention the index is 0 then, a sentinel
// rather than a valid position.
type Cursor struct {
	index int
	count int
}

// Advance moves one match forward or backward, wrapping around at
// either end. With no matches it does nothing.
func (c *Cursor) Advance(d Direction) {
	if c.count == 0 {
		return
	}
	c.index = (c.index + int(d) + c.count) % c.count
}

// Recompute installs the size of a freshly computed MatchSet and
// re-clamps the index so it never dangles after the set shrinks.
// Call it after every buffer mutation or query change.
func (c *Cursor) Recompute(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	switch {
	case count == 0:
		c.index = 0
	case c.index >= count:
		c.index = count - 1
	}
}

// Index returns the current match index. Only meaningful while
// Count() > 0.
func (c *Cursor) Index() int { return c.index }

// Count returns the match count last installed by Recompute.
func (c *Cursor) Count() int { return c.count }
