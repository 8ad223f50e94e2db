// Package seqlist provides the sequence store: a doubly linked list of key/value
// entries whose nodes live in a map keyed by kvfifo.UUID, so every entry has a
// stable position handle. Insertions and removals elsewhere in the list never
// invalidate a live handle; only removing the entry itself does.
package seqlist

import (
	"github.com/sharedcode/kvfifo"
)

// Item contains a sequence entry's handle, key & value parts.
type Item[TK any, TV any] struct {
	// ID is the entry's stable position handle.
	ID kvfifo.UUID
	// Key is the key part in the key/value pair.
	Key TK
	// Value points to the actual data stored with the key.
	Value *TV
}

// node wraps an Item with its neighbor links. Links are UUIDs resolved through
// the lookup map, mirroring a node repository.
type node[TK any, TV any] struct {
	item   Item[TK, TV]
	prevID kvfifo.UUID
	nextID kvfifo.UUID
}

// List is an ordered sequence of key/value entries in insertion (FIFO) order.
type List[TK any, TV any] struct {
	lookup map[kvfifo.UUID]*node[TK, TV]
	headID kvfifo.UUID
	tailID kvfifo.UUID
	count  int64
}

// NewList instantiates an empty sequence list.
func NewList[TK any, TV any]() *List[TK, TV] {
	return &List[TK, TV]{
		lookup: make(map[kvfifo.UUID]*node[TK, TV]),
	}
}

// PushBack appends a new entry at the back and returns its handle. O(1).
func (l *List[TK, TV]) PushBack(key TK, value TV) kvfifo.UUID {
	n := &node[TK, TV]{
		item: Item[TK, TV]{
			ID:    kvfifo.NewUUID(),
			Key:   key,
			Value: &value,
		},
		prevID: l.tailID,
	}
	l.lookup[n.item.ID] = n
	if l.tailID.IsNil() {
		l.headID = n.item.ID
	} else {
		l.lookup[l.tailID].nextID = n.item.ID
	}
	l.tailID = n.item.ID
	l.count++
	return n.item.ID
}

// PopFront removes & returns the earliest entry. Returns false if the list is empty. O(1).
func (l *List[TK, TV]) PopFront() (Item[TK, TV], bool) {
	if l.headID.IsNil() {
		var zero Item[TK, TV]
		return zero, false
	}
	n := l.lookup[l.headID]
	l.Remove(l.headID)
	return n.item, true
}

// Remove erases the entry with the given handle. Only that handle is invalidated. O(1).
func (l *List[TK, TV]) Remove(id kvfifo.UUID) bool {
	n, ok := l.lookup[id]
	if !ok {
		return false
	}
	if n.prevID.IsNil() {
		l.headID = n.nextID
	} else {
		l.lookup[n.prevID].nextID = n.nextID
	}
	if n.nextID.IsNil() {
		l.tailID = n.prevID
	} else {
		l.lookup[n.nextID].prevID = n.prevID
	}
	delete(l.lookup, id)
	l.count--
	return true
}

// MoveToBack splices the entry with the given handle to the back of the list.
// The entry's handle, key & value are untouched; nothing gets copied. O(1).
func (l *List[TK, TV]) MoveToBack(id kvfifo.UUID) bool {
	n, ok := l.lookup[id]
	if !ok {
		return false
	}
	if l.tailID == id {
		// Already at the back.
		return true
	}
	// Unlink from the current position.
	if n.prevID.IsNil() {
		l.headID = n.nextID
	} else {
		l.lookup[n.prevID].nextID = n.nextID
	}
	l.lookup[n.nextID].prevID = n.prevID
	// Relink at the back.
	n.prevID = l.tailID
	n.nextID = kvfifo.NilUUID
	l.lookup[l.tailID].nextID = id
	l.tailID = id
	return true
}

// Front returns the earliest entry. Returns false if the list is empty. O(1).
func (l *List[TK, TV]) Front() (Item[TK, TV], bool) {
	return l.Get(l.headID)
}

// Back returns the latest entry. Returns false if the list is empty. O(1).
func (l *List[TK, TV]) Back() (Item[TK, TV], bool) {
	return l.Get(l.tailID)
}

// Get returns the entry with the given handle. O(1).
func (l *List[TK, TV]) Get(id kvfifo.UUID) (Item[TK, TV], bool) {
	n, ok := l.lookup[id]
	if !ok {
		var zero Item[TK, TV]
		return zero, false
	}
	return n.item, true
}

// FirstID returns the earliest entry's handle, or NilUUID if the list is empty.
// Use together with NextID for in-order walks.
func (l *List[TK, TV]) FirstID() kvfifo.UUID {
	return l.headID
}

// NextID returns the handle of the entry after id, or NilUUID at the end of the list.
func (l *List[TK, TV]) NextID(id kvfifo.UUID) kvfifo.UUID {
	n, ok := l.lookup[id]
	if !ok {
		return kvfifo.NilUUID
	}
	return n.nextID
}

// Count returns the number of entries in the list.
func (l *List[TK, TV]) Count() int64 {
	return l.count
}
