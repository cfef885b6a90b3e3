package lexer

import "unicode/utf8"

// slot is one decoded character and where it sits in the source.
type slot struct {
	offset int
	ch     rune
	width  int
	ok     bool
}

func (s slot) end() int {
	return s.offset + s.width
}

// Cursor walks the characters of a source text with one character of
// lookahead. It tracks the previously consumed, currently consumed and
// peeked characters so that Index always reports the byte offset of the
// next character to be consumed.
//
// A Cursor is a small value; Snapshot and Restore copy it whole.
type Cursor struct {
	src  string
	read int // offset just past the peeked slot

	previous slot
	current  slot
	peeked   slot
}

// Snapshot is a saved Cursor position. Restoring it replaces the entire
// cursor state; there is no partial rollback.
type Snapshot struct {
	read     int
	previous slot
	current  slot
	peeked   slot
}

// NewCursor returns a cursor positioned before the first character of src.
func NewCursor(src string) Cursor {
	c := Cursor{src: src}
	c.peeked = c.decode()
	return c
}

// decode reads the character at c.read and moves c.read past it. Invalid
// UTF-8 decodes as utf8.RuneError with a width of one byte.
func (c *Cursor) decode() slot {
	if c.read >= len(c.src) {
		return slot{offset: len(c.src)}
	}

	b := c.src[c.read]
	s := slot{offset: c.read, ch: rune(b), width: 1, ok: true}
	if b >= utf8.RuneSelf {
		s.ch, s.width = utf8.DecodeRuneInString(c.src[c.read:])
	}
	c.read += s.width
	return s
}

// Index returns the byte offset of the next character to be consumed.
func (c *Cursor) Index() int {
	if c.peeked.ok {
		return c.peeked.offset
	}
	if c.current.ok {
		return c.current.end()
	}
	if c.previous.ok {
		return c.previous.end()
	}
	// Fresh empty source, or advanced repeatedly past the end.
	return len(c.src)
}

// Peek returns the next character without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	return c.peeked.ch, c.peeked.ok
}

// Advance consumes and returns the peeked character, refilling the
// lookahead. On an exhausted cursor it reports false.
func (c *Cursor) Advance() (rune, bool) {
	next := c.peeked
	if !next.ok {
		next = c.decode()
	}

	c.previous = c.current
	c.current = next
	c.peeked = c.decode()

	return c.current.ch, c.current.ok
}

// Source returns the complete text the cursor walks.
func (c *Cursor) Source() string {
	return c.src
}

// Snapshot captures the current position.
func (c *Cursor) Snapshot() Snapshot {
	return Snapshot{
		read:     c.read,
		previous: c.previous,
		current:  c.current,
		peeked:   c.peeked,
	}
}

// Restore rewinds the cursor to a position captured by Snapshot.
func (c *Cursor) Restore(s Snapshot) {
	c.read = s.read
	c.previous = s.previous
	c.current = s.current
	c.peeked = s.peeked
}
