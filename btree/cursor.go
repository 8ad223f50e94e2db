package btree

// Cursor is a B-tree cursor. It allows independent iteration on an underlying
// Btree and behaves like it is the Btree though it is not: it only holds the
// current item reference "state", swapping it in & out around each call so that
// other operations on the tree (or other cursors) don't disturb its position.
type Cursor[TK Ordered, TV any] struct {
	*Btree[TK, TV]
	currentItemRef currentItemRef
}

func NewCursor[TK Ordered, TV any](btree *Btree[TK, TV]) *Cursor[TK, TV] {
	return &Cursor[TK, TV]{
		Btree: btree,
	}
}

// First positions the cursor at the smallest key.
func (b3 *Cursor[TK, TV]) First() bool {
	b3.Btree.currentItemRef = b3.currentItemRef
	defer func() {
		b3.currentItemRef = b3.Btree.currentItemRef
	}()
	return b3.Btree.First()
}

// Last positions the cursor at the largest key.
func (b3 *Cursor[TK, TV]) Last() bool {
	b3.Btree.currentItemRef = b3.currentItemRef
	defer func() {
		b3.currentItemRef = b3.Btree.currentItemRef
	}()
	return b3.Btree.Last()
}

// Next advances the cursor forward.
func (b3 *Cursor[TK, TV]) Next() bool {
	b3.Btree.currentItemRef = b3.currentItemRef
	defer func() {
		b3.currentItemRef = b3.Btree.currentItemRef
	}()
	return b3.Btree.Next()
}

// Previous moves the cursor backward.
func (b3 *Cursor[TK, TV]) Previous() bool {
	b3.Btree.currentItemRef = b3.currentItemRef
	defer func() {
		b3.currentItemRef = b3.Btree.currentItemRef
	}()
	return b3.Btree.Previous()
}

// Find positions the cursor on an exact or first match.
func (b3 *Cursor[TK, TV]) Find(key TK, firstItemWithKey bool) bool {
	b3.Btree.currentItemRef = b3.currentItemRef
	defer func() {
		b3.currentItemRef = b3.Btree.currentItemRef
	}()
	return b3.Btree.Find(key, firstItemWithKey)
}

// GetCurrentItem returns the item the cursor is positioned on.
func (b3 *Cursor[TK, TV]) GetCurrentItem() Item[TK, TV] {
	b3.Btree.currentItemRef = b3.currentItemRef
	return b3.Btree.GetCurrentItem()
}

// IsPositioned reports whether the cursor currently references an item.
func (b3 *Cursor[TK, TV]) IsPositioned() bool {
	return !b3.currentItemRef.getNodeID().IsNil()
}
