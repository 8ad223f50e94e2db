package queue

import (
	"log/slog"

	"github.com/sharedcode/kvfifo"
	"github.com/sharedcode/kvfifo/btree"
	"github.com/sharedcode/kvfifo/seqlist"
)

// state is the sharable payload of a queue: the FIFO sequence plus the
// key-sorted index of handle buckets, and how many Queue instances point at it.
type state[TK btree.Ordered, TV any] struct {
	seq   *seqlist.List[TK, TV]
	index *btree.Btree[TK, []kvfifo.UUID]
	refs  int
}

func (q *Queue[TK, TV]) newState() (*state[TK, TV], error) {
	idx, err := btree.New[TK, []kvfifo.UUID](q.slotLength, true, q.comparer)
	if err != nil {
		return nil, err
	}
	return &state[TK, TV]{
		seq:   seqlist.NewList[TK, TV](),
		index: idx,
		refs:  1,
	}, nil
}

// pushInto appends an already-copied entry to a state: back of the sequence,
// back of the key's handle bucket.
func pushInto[TK btree.Ordered, TV any](s *state[TK, TV], key TK, value TV) error {
	handle := s.seq.PushBack(key, value)
	if s.index.Find(key, false) {
		bucketItem := s.index.GetCurrentItem()
		*bucketItem.Value = append(*bucketItem.Value, handle)
		return nil
	}
	if _, err := s.index.Add(key, []kvfifo.UUID{handle}); err != nil {
		s.seq.Remove(handle)
		return err
	}
	return nil
}

// ensureOwned gives the queue a private state before a mutation: it forks when
// the current state is shared with other instances or when a mutable value
// reference was handed out earlier. Strong failure safety hinges on forking
// first; a fork that fails mid-way is discarded whole and the shared state is
// left untouched.
func (q *Queue[TK, TV]) ensureOwned() error {
	if q.state.refs == 1 && !q.mustFork {
		return nil
	}
	s, err := q.rebuildState(q.state)
	if err != nil {
		return err
	}
	q.state.refs--
	q.state = s
	q.mustFork = false
	return nil
}

// rebuildState deep-copies a state by re-pushing every entry in sequence order
// into a fresh one, running keys & values through the copier hooks. Buckets are
// rebuilt as a side effect and come out in the same relative order.
func (q *Queue[TK, TV]) rebuildState(src *state[TK, TV]) (*state[TK, TV], error) {
	s, err := q.newState()
	if err != nil {
		return nil, err
	}
	for id := src.seq.FirstID(); !id.IsNil(); id = src.seq.NextID(id) {
		it, _ := src.seq.Get(id)
		k, err := q.copyKey(it.Key)
		if err != nil {
			return nil, err
		}
		v, err := q.copyValue(*it.Value)
		if err != nil {
			return nil, err
		}
		if err := pushInto(s, k, v); err != nil {
			return nil, err
		}
	}
	slog.Debug("forked queue state", "size", s.seq.Count(), "sharers", src.refs)
	return s, nil
}

// Clone returns a new queue with the same contents. Cloning is O(1) and shares
// state until either side mutates, except when the source handed out a mutable
// value reference earlier; then the clone pays for a private copy right away,
// which can fail with CopyFailure and leaves the source untouched.
func (q *Queue[TK, TV]) Clone() (*Queue[TK, TV], error) {
	c := Queue[TK, TV]{
		comparer:    q.comparer,
		keyCopier:   q.keyCopier,
		valueCopier: q.valueCopier,
		slotLength:  q.slotLength,
	}
	if q.mustFork {
		s, err := q.rebuildState(q.state)
		if err != nil {
			return nil, err
		}
		c.state = s
		return &c, nil
	}
	q.state.refs++
	c.state = q.state
	return &c, nil
}

func (q *Queue[TK, TV]) copyKey(key TK) (TK, error) {
	if q.keyCopier == nil {
		return key, nil
	}
	k, err := q.keyCopier(key)
	if err != nil {
		var zero TK
		return zero, kvfifo.Error{Code: kvfifo.CopyFailure, Err: err}
	}
	return k, nil
}

func (q *Queue[TK, TV]) copyValue(value TV) (TV, error) {
	if q.valueCopier == nil {
		return value, nil
	}
	v, err := q.valueCopier(value)
	if err != nil {
		var zero TV
		return zero, kvfifo.Error{Code: kvfifo.CopyFailure, Err: err}
	}
	return v, nil
}
