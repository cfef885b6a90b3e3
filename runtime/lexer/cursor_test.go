package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// step is one observed cursor state: what Peek and Index report before an
// Advance, and what that Advance returns.
type step struct {
	index    int
	peek     rune
	peekOK   bool
	advance  rune
	advOK    bool
	indexOut int
}

func walk(t *testing.T, src string, steps []step) {
	t.Helper()
	c := NewCursor(src)
	for i, s := range steps {
		assert.Equal(t, s.index, c.Index(), "step %d: index before advance", i)

		peek, ok := c.Peek()
		assert.Equal(t, s.peekOK, ok, "step %d: peek ok", i)
		assert.Equal(t, s.peek, peek, "step %d: peek", i)

		got, ok := c.Advance()
		assert.Equal(t, s.advOK, ok, "step %d: advance ok", i)
		assert.Equal(t, s.advance, got, "step %d: advance", i)

		assert.Equal(t, s.indexOut, c.Index(), "step %d: index after advance", i)
	}
}

func TestCursorEmptySource(t *testing.T) {
	walk(t, "", []step{
		{index: 0, indexOut: 0},
		{index: 0, indexOut: 0},
	})
}

func TestCursorSingleSpace(t *testing.T) {
	walk(t, " ", []step{
		{index: 0, peek: ' ', peekOK: true, advance: ' ', advOK: true, indexOut: 1},
		{index: 1, indexOut: 1},
		{index: 1, indexOut: 1},
	})
}

func TestCursorIdentifier(t *testing.T) {
	walk(t, "main", []step{
		{index: 0, peek: 'm', peekOK: true, advance: 'm', advOK: true, indexOut: 1},
		{index: 1, peek: 'a', peekOK: true, advance: 'a', advOK: true, indexOut: 2},
		{index: 2, peek: 'i', peekOK: true, advance: 'i', advOK: true, indexOut: 3},
		{index: 3, peek: 'n', peekOK: true, advance: 'n', advOK: true, indexOut: 4},
		{index: 4, indexOut: 4},
	})
}

func TestCursorMultiByteCharacters(t *testing.T) {
	walk(t, "é€x", []step{
		{index: 0, peek: 'é', peekOK: true, advance: 'é', advOK: true, indexOut: 2},
		{index: 2, peek: '€', peekOK: true, advance: '€', advOK: true, indexOut: 5},
		{index: 5, peek: 'x', peekOK: true, advance: 'x', advOK: true, indexOut: 6},
		{index: 6, indexOut: 6},
	})
}

func TestCursorInvalidUTF8IsOneByte(t *testing.T) {
	walk(t, "\xffa", []step{
		{index: 0, peek: utf8.RuneError, peekOK: true, advance: utf8.RuneError, advOK: true, indexOut: 1},
		{index: 1, peek: 'a', peekOK: true, advance: 'a', advOK: true, indexOut: 2},
	})
}

func TestCursorSnapshotRestore(t *testing.T) {
	c := NewCursor("<<=x")
	c.Advance()

	saved := c.Snapshot()
	c.Advance()
	c.Advance()
	assert.Equal(t, 3, c.Index())

	c.Restore(saved)
	assert.Equal(t, 1, c.Index())
	peek, ok := c.Peek()
	assert.True(t, ok)
	assert.Equal(t, '<', peek)

	// The restored cursor replays exactly the same characters.
	var replay []rune
	for {
		ch, ok := c.Advance()
		if !ok {
			break
		}
		replay = append(replay, ch)
	}
	assert.Equal(t, []rune{'<', '=', 'x'}, replay)
	assert.Equal(t, 4, c.Index())
}

func TestCursorSnapshotIsIndependentValue(t *testing.T) {
	c := NewCursor("abc")
	saved := c.Snapshot()

	c.Advance()
	c.Advance()
	c.Advance()
	c.Advance()

	c.Restore(saved)
	assert.Equal(t, 0, c.Index())
	ch, ok := c.Advance()
	assert.True(t, ok)
	assert.Equal(t, 'a', ch)
}

func TestCursorSource(t *testing.T) {
	c := NewCursor("int x;")
	c.Advance()
	assert.Equal(t, "int x;", c.Source())
}
