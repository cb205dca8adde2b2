// Package search locates case-insensitive literal matches of a query
// inside a text snapshot and tracks navigation state over them.
//
// Offsets are 0-based rune (codepoint) indices into the text a match
// set was computed from. Matches are snapshot-relative values: any
// edit to the text invalidates the whole set, and callers must
// recompute before reading offsets again.
package search
