package buffer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when text offered to the buffer is not
// valid UTF-8. Malformed input is rejected at this boundary so that
// every downstream rune offset stays well defined.
var ErrInvalidUTF8 = errors.New("buffer: text is not valid UTF-8")

// Buffer is the single owned document. The version counter increments
// on every effective commit, giving rendering surfaces a cheap "did
// anything change" signal without the buffer tracking observers.
type Buffer struct {
	text    string
	version uint64
}

// New validates text and returns a buffer holding it.
func New(text string) (*Buffer, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	return &Buffer{text: text}, nil
}

// Text returns the current document text.
func (b *Buffer) Text() string { return b.text }

// Version returns the commit counter.
func (b *Buffer) Version() uint64 { return b.version }

// RuneLen returns the document length in runes.
func (b *Buffer) RuneLen() int { return utf8.RuneCountInString(b.text) }

// Lines returns the newline-delimited lines of the document. An empty
// document has one empty line.
func (b *Buffer) Lines() []string { return strings.Split(b.text, "\n") }

// Commit replaces the document text. Identical text is a no-op and
// does not bump the version.
func (b *Buffer) Commit(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	if text == b.text {
		return nil
	}
	b.text = text
	b.version++
	return nil
}
