package queue

import (
	"github.com/sharedcode/kvfifo"
	"github.com/sharedcode/kvfifo/btree"
)

// KeyCursor traverses the queue's distinct keys in comparer order, visiting
// each live key exactly once regardless of how many entries carry it.
//
// A cursor reads the state its queue had when it was created. It stays valid
// across other instances' mutations (they fork their own state first), but a
// mutation through the owning queue itself leaves the cursor on the old
// snapshot; create a new cursor after mutating.
type KeyCursor[TK btree.Ordered, TV any] struct {
	cursor *btree.Cursor[TK, []kvfifo.UUID]
}

// KeyCursor returns an unpositioned cursor over the queue's distinct keys.
func (q *Queue[TK, TV]) KeyCursor() *KeyCursor[TK, TV] {
	return &KeyCursor[TK, TV]{
		cursor: btree.NewCursor(q.state.index),
	}
}

// First positions the cursor on the smallest key, returning false when the
// queue has none.
func (c *KeyCursor[TK, TV]) First() bool {
	return c.cursor.First()
}

// Last positions the cursor on the largest key, returning false when the
// queue has none.
func (c *KeyCursor[TK, TV]) Last() bool {
	return c.cursor.Last()
}

// Next advances to the next larger key, returning false past the last one.
func (c *KeyCursor[TK, TV]) Next() bool {
	return c.cursor.Next()
}

// Previous steps back to the next smaller key, returning false before the
// first one.
func (c *KeyCursor[TK, TV]) Previous() bool {
	return c.cursor.Previous()
}

// Find positions the cursor on the given key, returning false when the queue
// has no entry with it.
func (c *KeyCursor[TK, TV]) Find(key TK) bool {
	return c.cursor.Find(key, false)
}

// Key returns the key the cursor is positioned on. Only valid after a
// positioning call returned true.
func (c *KeyCursor[TK, TV]) Key() TK {
	return c.cursor.GetCurrentItem().Key
}

// EntryCount returns the number of live entries carrying the current key.
func (c *KeyCursor[TK, TV]) EntryCount() int {
	return len(*c.cursor.GetCurrentItem().Value)
}

// IsPositioned reports whether the cursor currently points at a key.
func (c *KeyCursor[TK, TV]) IsPositioned() bool {
	return c.cursor.IsPositioned()
}
