package btree

import (
	"fmt"

	"github.com/sharedcode/kvfifo"
)

// DefaultSlotLength is the node slot count used when the caller passes 0.
// In-memory trees don't need a wide array; 8 keeps nodes small and walks short.
const DefaultSlotLength = 8

const minimumSlotLength = 4

// currentItemRef contains the node ID & item slot index of the B-tree's current item.
type currentItemRef struct {
	nodeID        kvfifo.UUID
	nodeItemIndex int
}

func (c currentItemRef) getNodeItemIndex() int {
	return c.nodeItemIndex
}

func (c currentItemRef) getNodeID() kvfifo.UUID {
	return c.nodeID
}

// Btree is a generic in-memory B-tree. It keeps keys sorted per the comparer and
// maintains a "current item" cursor that Find and the navigation methods position.
type Btree[TK Ordered, TV any] struct {
	slotLength     int
	isUnique       bool
	rootID         kvfifo.UUID
	count          int64
	nodeRepository NodeRepository[TK, TV]
	comparer       ComparerFunc[TK]
	coercedCompare func(x, y any) int
	currentItemRef currentItemRef

	// Scratch buffers used when splitting a full node. Safe to share across calls
	// since the B-tree is single-threaded.
	tempSlots    []*Item[TK, TV]
	tempChildren []kvfifo.UUID
}

// New creates an in-memory B-tree with the given node slot length. Slot length is
// normalized to the minimum and made even, as splits hand out equal halves.
// A nil comparer falls back to CoerceComparer on the key's type.
func New[TK Ordered, TV any](slotLength int, isUnique bool, comparer ComparerFunc[TK]) (*Btree[TK, TV], error) {
	if slotLength == 0 {
		slotLength = DefaultSlotLength
	}
	if slotLength < minimumSlotLength {
		return nil, fmt.Errorf("slotLength %d is below the minimum of %d", slotLength, minimumSlotLength)
	}
	// Splits assume even slot counts.
	if slotLength%2 != 0 {
		slotLength--
	}
	b := Btree[TK, TV]{
		slotLength:     slotLength,
		isUnique:       isUnique,
		nodeRepository: NewNodeRepository[TK, TV](),
		comparer:       comparer,
		tempSlots:      make([]*Item[TK, TV], slotLength+1),
		tempChildren:   make([]kvfifo.UUID, slotLength+2),
	}
	if comparer == nil {
		var zero TK
		b.coercedCompare = CoerceComparer(zero)
	}
	root := newNode[TK, TV](slotLength)
	root.newID(kvfifo.NilUUID)
	b.rootID = root.ID
	b.saveNode(root)
	return &b, nil
}

// Add adds an item to the B-tree. It does not check for duplicates unless the
// tree is unique, in which case a duplicate add returns false and positions the
// cursor on the existing item.
func (btree *Btree[TK, TV]) Add(key TK, value TV) (bool, error) {
	item := newItem[TK, TV](key, value)
	ok := btree.rootNode().add(btree, item)
	if !ok {
		return false, nil
	}
	btree.count++
	return true, nil
}

// Find searches the B-tree for an item with the given key and positions the
// cursor on it. Returns true if found, otherwise false; on a miss the cursor is
// left on the nearest greater item to support range scans. firstItemWithKey is
// useful when the tree allows duplicates: true positions the cursor on the first
// item with the key per ordering.
func (btree *Btree[TK, TV]) Find(key TK, firstItemWithKey bool) bool {
	if btree.count == 0 {
		btree.setCurrentItemID(kvfifo.NilUUID, 0)
		return false
	}
	return btree.rootNode().find(btree, key, firstItemWithKey)
}

// GetCurrentItem returns the current item, or the zero Item if the cursor is unset.
func (btree *Btree[TK, TV]) GetCurrentItem() Item[TK, TV] {
	var zero Item[TK, TV]
	if btree.currentItemRef.getNodeID().IsNil() {
		return zero
	}
	n := btree.getNode(btree.currentItemRef.getNodeID())
	if n == nil {
		return zero
	}
	itm := n.Slots[btree.currentItemRef.getNodeItemIndex()]
	if itm == nil {
		return zero
	}
	return *itm
}

// UpdateCurrentValue replaces the current item's value.
func (btree *Btree[TK, TV]) UpdateCurrentValue(newValue TV) (bool, error) {
	if btree.currentItemRef.getNodeID().IsNil() {
		return false, nil
	}
	n := btree.getNode(btree.currentItemRef.getNodeID())
	if n == nil {
		return false, nil
	}
	itm := n.Slots[btree.currentItemRef.getNodeItemIndex()]
	if itm == nil {
		return false, nil
	}
	itm.Value = &newValue
	btree.saveNode(n)
	return true, nil
}

// Remove finds the item with the given key then removes it.
func (btree *Btree[TK, TV]) Remove(key TK) (bool, error) {
	if !btree.Find(key, false) {
		return false, nil
	}
	return btree.RemoveCurrentItem()
}

// RemoveCurrentItem removes the item the cursor is positioned on.
func (btree *Btree[TK, TV]) RemoveCurrentItem() (bool, error) {
	if btree.currentItemRef.getNodeID().IsNil() {
		return false, nil
	}
	node := btree.getNode(btree.currentItemRef.getNodeID())
	if node == nil {
		return false, nil
	}
	index := btree.currentItemRef.getNodeItemIndex()
	if node.hasChildren() {
		if ok := node.removeItemOnNodeWithNilChild(btree, index); !ok {
			// Both neighboring children exist: swap in the in-order successor from
			// the leaf branch, then vacate the successor's original slot.
			succ, succIndex := node.getSuccessorOnLeafBranch(btree, index)
			node.Slots[index] = succ.Slots[succIndex]
			btree.saveNode(node)
			if succ.hasChildren() {
				succ.removeItemOnNodeWithNilChild(btree, succIndex)
			} else {
				succ.fixVacatedSlot(btree, succIndex)
			}
		}
	} else {
		node.fixVacatedSlot(btree, index)
	}
	btree.count--
	btree.setCurrentItemID(kvfifo.NilUUID, 0)
	return true, nil
}

// First positions the cursor to the first item as per key ordering.
// Use GetCurrentItem to retrieve the current item.
func (btree *Btree[TK, TV]) First() bool {
	if btree.count == 0 {
		btree.setCurrentItemID(kvfifo.NilUUID, 0)
		return false
	}
	return btree.rootNode().moveToFirst(btree)
}

// Last positions the cursor to the last item as per key ordering.
func (btree *Btree[TK, TV]) Last() bool {
	if btree.count == 0 {
		btree.setCurrentItemID(kvfifo.NilUUID, 0)
		return false
	}
	return btree.rootNode().moveToLast(btree)
}

// Next positions the cursor to the next item as per key ordering.
func (btree *Btree[TK, TV]) Next() bool {
	if btree.currentItemRef.getNodeID().IsNil() {
		return false
	}
	node := btree.getNode(btree.currentItemRef.getNodeID())
	if node == nil {
		return false
	}
	return node.moveToNext(btree)
}

// Previous positions the cursor to the previous item as per key ordering.
func (btree *Btree[TK, TV]) Previous() bool {
	if btree.currentItemRef.getNodeID().IsNil() {
		return false
	}
	node := btree.getNode(btree.currentItemRef.getNodeID())
	if node == nil {
		return false
	}
	return node.moveToPrevious(btree)
}

// IsUnique returns true if the B-tree is configured to store items with unique keys.
func (btree *Btree[TK, TV]) IsUnique() bool {
	return btree.isUnique
}

// Count returns the number of items in this B-tree.
func (btree *Btree[TK, TV]) Count() int64 {
	return btree.count
}

func (btree *Btree[TK, TV]) compare(x TK, y TK) int {
	if btree.comparer != nil {
		return btree.comparer(x, y)
	}
	return btree.coercedCompare(x, y)
}

func (btree *Btree[TK, TV]) getSlotLength() int {
	return btree.slotLength
}

func (btree *Btree[TK, TV]) setCurrentItemID(nodeID kvfifo.UUID, itemIndex int) {
	btree.currentItemRef.nodeID = nodeID
	btree.currentItemRef.nodeItemIndex = itemIndex
}

func (btree *Btree[TK, TV]) rootNode() *Node[TK, TV] {
	return btree.nodeRepository.Get(btree.rootID)
}

func (btree *Btree[TK, TV]) getNode(nodeID kvfifo.UUID) *Node[TK, TV] {
	return btree.nodeRepository.Get(nodeID)
}

func (btree *Btree[TK, TV]) saveNode(node *Node[TK, TV]) {
	btree.nodeRepository.Add(node)
}

func (btree *Btree[TK, TV]) removeNode(node *Node[TK, TV]) {
	btree.nodeRepository.Remove(node.ID)
}
