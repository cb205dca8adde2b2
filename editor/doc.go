// Package editor orchestrates the skald engine. A Session owns the
// document buffer, the live search query, and the match, cursor, and
// jump-back state, and sequences every operation so that stored
// offsets are never read against a stale snapshot.
//
// The package exposes plain synchronous query and command methods and
// no notification mechanism: hosts poll Version or wire their own
// event propagation after a committed mutation.
package editor
