// Package queue provides an in-memory, generic, ordered key/value FIFO queue.
//
// Entries keep their global insertion (FIFO) order while every key's
// occurrences are also tracked in a key-sorted index, giving O(log n) access to
// the first/last entry of a key, O(log n) repositioning of all of a key's
// entries to the back, and a distinct-key traversal.
//
// Queues have value semantics through Clone: a clone is O(1) and shares state
// with its source until either side mutates (copy-on-write). Handing the *Queue
// over is the move. The queue is single-threaded; mutating instances that share
// state from multiple goroutines without external synchronization is a
// precondition violation and is not detected.
package queue

import (
	"errors"

	"github.com/sharedcode/kvfifo"
	"github.com/sharedcode/kvfifo/btree"
)

var errContainerEmpty = errors.New("the container is empty")
var errKeyNotFound = errors.New("key not found")

// Queue is an ordered key/value FIFO container. Use New to create one; the zero
// value is not usable.
type Queue[TK btree.Ordered, TV any] struct {
	state       *state[TK, TV]
	comparer    btree.ComparerFunc[TK]
	keyCopier   kvfifo.Copier[TK]
	valueCopier kvfifo.Copier[TV]
	slotLength  int
	// mustFork records that a mutable reference into the (possibly shared) state
	// was handed out; clones & mutations must fork eagerly from then on.
	mustFork bool
}

// Option customizes a Queue at construction time.
type Option[TK btree.Ordered, TV any] func(*Queue[TK, TV])

// WithKeyCopier supplies a deep-copy hook for keys whose duplication can fail.
func WithKeyCopier[TK btree.Ordered, TV any](c kvfifo.Copier[TK]) Option[TK, TV] {
	return func(q *Queue[TK, TV]) {
		q.keyCopier = c
	}
}

// WithValueCopier supplies a deep-copy hook for values whose duplication can fail.
func WithValueCopier[TK btree.Ordered, TV any](c kvfifo.Copier[TV]) Option[TK, TV] {
	return func(q *Queue[TK, TV]) {
		q.valueCopier = c
	}
}

// WithSlotLength overrides the key index's B-tree node slot length.
func WithSlotLength[TK btree.Ordered, TV any](slotLength int) Option[TK, TV] {
	return func(q *Queue[TK, TV]) {
		q.slotLength = slotLength
	}
}

// New creates an empty queue. A nil comparer falls back to
// btree.CoerceComparer on the key's type.
func New[TK btree.Ordered, TV any](comparer btree.ComparerFunc[TK], options ...Option[TK, TV]) (*Queue[TK, TV], error) {
	q := Queue[TK, TV]{
		comparer: comparer,
	}
	for _, o := range options {
		o(&q)
	}
	s, err := q.newState()
	if err != nil {
		return nil, err
	}
	q.state = s
	return &q, nil
}

// Push appends an entry at the back of the queue and registers its handle at
// the back of the key's bucket. The key & value are run through the copier
// hooks before anything is mutated, so a CopyFailure leaves the queue unchanged.
func (q *Queue[TK, TV]) Push(key TK, value TV) error {
	if err := q.ensureOwned(); err != nil {
		return err
	}
	k, err := q.copyKey(key)
	if err != nil {
		return err
	}
	v, err := q.copyValue(value)
	if err != nil {
		return err
	}
	return pushInto(q.state, k, v)
}

// Pop removes the earliest entry of the queue. Fails with ContainerEmpty when
// there is none; the check happens before any mutation.
func (q *Queue[TK, TV]) Pop() error {
	if q.state.seq.Count() == 0 {
		return kvfifo.Error{Code: kvfifo.ContainerEmpty, Err: errContainerEmpty}
	}
	if err := q.ensureOwned(); err != nil {
		return err
	}
	it, _ := q.state.seq.PopFront()
	// The popped entry is its key's earliest occurrence, i.e. the bucket head.
	q.state.index.Find(it.Key, false)
	bucketItem := q.state.index.GetCurrentItem()
	b := *bucketItem.Value
	if len(b) <= 1 {
		q.state.index.RemoveCurrentItem()
		return nil
	}
	*bucketItem.Value = b[1:]
	return nil
}

// PopKey removes the earliest entry with the given key. Fails with KeyNotFound
// when the key has no live entries; the check happens before any mutation.
func (q *Queue[TK, TV]) PopKey(key TK) error {
	if !q.state.index.Find(key, false) {
		return kvfifo.Error{Code: kvfifo.KeyNotFound, Err: errKeyNotFound, UserData: key}
	}
	if err := q.ensureOwned(); err != nil {
		return err
	}
	// Re-find on the (possibly freshly forked) private state.
	q.state.index.Find(key, false)
	bucketItem := q.state.index.GetCurrentItem()
	b := *bucketItem.Value
	q.state.seq.Remove(b[0])
	if len(b) <= 1 {
		q.state.index.RemoveCurrentItem()
		return nil
	}
	*bucketItem.Value = b[1:]
	return nil
}

// MoveToBack relocates every entry with the given key to the back of the queue,
// preserving their order among themselves. Fails with KeyNotFound when the key
// has no live entries. Relocation splices list nodes and copies nothing, so once
// the copy-on-write fork has succeeded the operation cannot fail mid-way.
func (q *Queue[TK, TV]) MoveToBack(key TK) error {
	if !q.state.index.Find(key, false) {
		return kvfifo.Error{Code: kvfifo.KeyNotFound, Err: errKeyNotFound, UserData: key}
	}
	if err := q.ensureOwned(); err != nil {
		return err
	}
	q.state.index.Find(key, false)
	bucketItem := q.state.index.GetCurrentItem()
	for _, handle := range *bucketItem.Value {
		q.state.seq.MoveToBack(handle)
	}
	return nil
}

// Clear empties the queue. It installs a fresh private state instead of forking
// the shared one, so it never fails and other instances sharing the old state
// are unaffected.
func (q *Queue[TK, TV]) Clear() {
	// newState validated the slot length when the queue was constructed, so it
	// cannot fail here.
	s, _ := q.newState()
	q.state.refs--
	q.state = s
	q.mustFork = false
}

// Front returns the earliest entry. Fails with ContainerEmpty when there is none.
func (q *Queue[TK, TV]) Front() (kvfifo.KeyValuePair[TK, TV], error) {
	var zero kvfifo.KeyValuePair[TK, TV]
	it, ok := q.state.seq.Front()
	if !ok {
		return zero, kvfifo.Error{Code: kvfifo.ContainerEmpty, Err: errContainerEmpty}
	}
	return kvfifo.KeyValuePair[TK, TV]{Key: it.Key, Value: *it.Value}, nil
}

// Back returns the latest entry. Fails with ContainerEmpty when there is none.
func (q *Queue[TK, TV]) Back() (kvfifo.KeyValuePair[TK, TV], error) {
	var zero kvfifo.KeyValuePair[TK, TV]
	it, ok := q.state.seq.Back()
	if !ok {
		return zero, kvfifo.Error{Code: kvfifo.ContainerEmpty, Err: errContainerEmpty}
	}
	return kvfifo.KeyValuePair[TK, TV]{Key: it.Key, Value: *it.Value}, nil
}

// First returns the earliest entry with the given key. Fails with KeyNotFound
// when the key has no live entries.
func (q *Queue[TK, TV]) First(key TK) (kvfifo.KeyValuePair[TK, TV], error) {
	var zero kvfifo.KeyValuePair[TK, TV]
	handle, err := q.keyedHandle(key, false)
	if err != nil {
		return zero, err
	}
	it, _ := q.state.seq.Get(handle)
	return kvfifo.KeyValuePair[TK, TV]{Key: it.Key, Value: *it.Value}, nil
}

// Last returns the latest entry with the given key. Fails with KeyNotFound
// when the key has no live entries.
func (q *Queue[TK, TV]) Last(key TK) (kvfifo.KeyValuePair[TK, TV], error) {
	var zero kvfifo.KeyValuePair[TK, TV]
	handle, err := q.keyedHandle(key, true)
	if err != nil {
		return zero, err
	}
	it, _ := q.state.seq.Get(handle)
	return kvfifo.KeyValuePair[TK, TV]{Key: it.Key, Value: *it.Value}, nil
}

// FrontRef returns a mutable reference to the earliest entry's value. The queue
// forks shared state first and remembers that an alias is outstanding, so later
// clones fork eagerly (see Clone).
func (q *Queue[TK, TV]) FrontRef() (*TV, error) {
	if q.state.seq.Count() == 0 {
		return nil, kvfifo.Error{Code: kvfifo.ContainerEmpty, Err: errContainerEmpty}
	}
	if err := q.ensureOwned(); err != nil {
		return nil, err
	}
	q.mustFork = true
	it, _ := q.state.seq.Front()
	return it.Value, nil
}

// BackRef returns a mutable reference to the latest entry's value.
// Same forking & aliasing rules as FrontRef.
func (q *Queue[TK, TV]) BackRef() (*TV, error) {
	if q.state.seq.Count() == 0 {
		return nil, kvfifo.Error{Code: kvfifo.ContainerEmpty, Err: errContainerEmpty}
	}
	if err := q.ensureOwned(); err != nil {
		return nil, err
	}
	q.mustFork = true
	it, _ := q.state.seq.Back()
	return it.Value, nil
}

// FirstRef returns a mutable reference to the value of the earliest entry with
// the given key. Same forking & aliasing rules as FrontRef.
func (q *Queue[TK, TV]) FirstRef(key TK) (*TV, error) {
	return q.keyedRef(key, false)
}

// LastRef returns a mutable reference to the value of the latest entry with
// the given key. Same forking & aliasing rules as FrontRef.
func (q *Queue[TK, TV]) LastRef(key TK) (*TV, error) {
	return q.keyedRef(key, true)
}

// Size returns the number of entries in the queue. O(1).
func (q *Queue[TK, TV]) Size() int {
	return int(q.state.seq.Count())
}

// IsEmpty reports whether the queue has no entries. O(1).
func (q *Queue[TK, TV]) IsEmpty() bool {
	return q.state.seq.Count() == 0
}

// Count returns the number of entries with the given key, or 0. O(log n).
func (q *Queue[TK, TV]) Count(key TK) int {
	if !q.state.index.Find(key, false) {
		return 0
	}
	return len(*q.state.index.GetCurrentItem().Value)
}

// keyedHandle returns the handle of the key's earliest (or latest) occurrence.
func (q *Queue[TK, TV]) keyedHandle(key TK, last bool) (kvfifo.UUID, error) {
	if !q.state.index.Find(key, false) {
		return kvfifo.NilUUID, kvfifo.Error{Code: kvfifo.KeyNotFound, Err: errKeyNotFound, UserData: key}
	}
	b := *q.state.index.GetCurrentItem().Value
	if last {
		return b[len(b)-1], nil
	}
	return b[0], nil
}

func (q *Queue[TK, TV]) keyedRef(key TK, last bool) (*TV, error) {
	if _, err := q.keyedHandle(key, last); err != nil {
		return nil, err
	}
	if err := q.ensureOwned(); err != nil {
		return nil, err
	}
	// Re-resolve on the (possibly freshly forked) private state.
	handle, _ := q.keyedHandle(key, last)
	q.mustFork = true
	it, _ := q.state.seq.Get(handle)
	return it.Value, nil
}
