// Package buffer implements the owned document model for skald: a
// single mutable Unicode text buffer plus the pure mutation primitives
// and counting helpers that operate on its text.
//
// Offsets are 0-based rune (codepoint) indices. The Buffer is mutated
// only through Commit; the operation functions in ops.go are pure and
// return a new text together with the number of locations they
// changed, leaving the commit (and the match recomputation that must
// follow it) to the orchestrating session.
package buffer
