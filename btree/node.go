package btree

import (
	"sort"

	"github.com/sharedcode/kvfifo"
)

// Item contains a key/value pair.
type Item[TK Ordered, TV any] struct {
	// ID is the Item's kvfifo.UUID, so items can be differentiated even when the
	// tree allows duplicated keys.
	ID kvfifo.UUID
	// Key is the key part in the key/value pair.
	Key TK
	// Value points to the actual data stored with the key.
	Value *TV
}

func newItem[TK Ordered, TV any](key TK, value TV) *Item[TK, TV] {
	return &Item[TK, TV]{
		ID:    kvfifo.NewUUID(),
		Key:   key,
		Value: &value,
	}
}

// Node contains a B-tree node's data.
type Node[TK Ordered, TV any] struct {
	ID       kvfifo.UUID
	ParentID kvfifo.UUID
	// Slots is an array where the Items get stored.
	Slots []*Item[TK, TV]
	// Count of items in this node.
	Count int
	// ChildrenIDs holds the IDs of this node's children. Individual entries can be
	// NilUUID after removals; navigation and insertion tolerate such nil children.
	ChildrenIDs []kvfifo.UUID
}

// newNode creates a new node.
func newNode[TK Ordered, TV any](slotCount int) *Node[TK, TV] {
	return &Node[TK, TV]{
		Slots: make([]*Item[TK, TV], slotCount),
	}
}

func (node *Node[TK, TV]) newID(parentID kvfifo.UUID) {
	node.ID = kvfifo.NewUUID()
	node.ParentID = parentID
}

// add traverses the B-tree to find the leaf node where the item should be inserted
// according to sort order. The actual insertion on the target node is handled by addOnLeaf.
func (node *Node[TK, TV]) add(btree *Btree[TK, TV], item *Item[TK, TV]) bool {
	currentNode := node
	var index int
	for {
		var itemExists bool
		index, itemExists = currentNode.getIndexToInsertTo(btree, item)
		// itemExists will be true if and only if btree.IsUnique() is true, thus,
		// will prevent insert of duplicated key item.
		if itemExists {
			// set the current item pointer to the duplicate item.
			btree.setCurrentItemID(currentNode.ID, index)
			return false
		}
		if currentNode.hasChildren() {
			if ok := currentNode.addItemOnNodeWithNilChild(btree, item, index); ok {
				return true
			}
			// if not an outermost node let next lower level node do the 'Add'.
			currentNode = currentNode.getChild(btree, index)
			if currentNode == nil {
				return false
			}
		} else {
			break
		}
	}
	if btree.isUnique && currentNode.Count > 0 {
		currItemIndex := index
		if index > 0 && index >= currentNode.Count {
			currItemIndex--
		}
		if btree.compare(currentNode.Slots[currItemIndex].Key, item.Key) == 0 {
			// set the current item pointer to the discovered existing item.
			btree.setCurrentItemID(currentNode.ID, currItemIndex)
			return false
		}
	}
	currentNode.addOnLeaf(btree, item, index)
	return true
}

// addOnLeaf inserts the item on the outermost (leaf) node. At this point, the correct
// node to add the item to has been reached after traversing inner nodes of the B-tree.
func (node *Node[TK, TV]) addOnLeaf(btree *Btree[TK, TV], item *Item[TK, TV], index int) {
	// If node is not yet full, insert and shift items to the right.
	if node.Count < btree.getSlotLength() {
		node.insertSlotItem(item, index)
		btree.saveNode(node)
		return
	}

	// Node is full: assemble the overflowed slot set in the temp slots then split.
	copy(btree.tempSlots, node.Slots)
	copy(btree.tempSlots[index+1:], btree.tempSlots[index:])
	btree.tempSlots[index] = item

	slotsHalf := btree.getSlotLength() >> 1
	if node.isRootNode() {
		// Break up the root into two children and keep this node as the root,
		// so the root's identity is stable across splits.
		leftNode := newNode[TK, TV](btree.getSlotLength())
		leftNode.newID(node.ID)
		rightNode := newNode[TK, TV](btree.getSlotLength())
		rightNode.newID(node.ID)
		copyArrayElements(leftNode.Slots, btree.tempSlots, slotsHalf)
		leftNode.Count = slotsHalf
		copyArrayElements(rightNode.Slots, btree.tempSlots[slotsHalf+1:], slotsHalf)
		rightNode.Count = slotsHalf

		clear(node.Slots)
		node.Slots[0] = btree.tempSlots[slotsHalf]
		node.Count = 1

		btree.saveNode(leftNode)
		btree.saveNode(rightNode)
		node.ChildrenIDs = make([]kvfifo.UUID, btree.getSlotLength()+1)
		node.ChildrenIDs[0] = leftNode.ID
		node.ChildrenIDs[1] = rightNode.ID
		btree.saveNode(node)

		clear(btree.tempSlots)
		return
	}

	// Non-root leaf: this node becomes the left sibling, a new right sibling takes
	// the upper half and the middle item gets promoted to the parent.
	rightNode := newNode[TK, TV](btree.getSlotLength())
	rightNode.newID(node.ParentID)
	clear(node.Slots)
	copyArrayElements(node.Slots, btree.tempSlots, slotsHalf)
	node.Count = slotsHalf
	copyArrayElements(rightNode.Slots, btree.tempSlots[slotsHalf+1:], slotsHalf)
	rightNode.Count = slotsHalf

	middle := btree.tempSlots[slotsHalf]
	btree.saveNode(node)
	btree.saveNode(rightNode)
	clear(btree.tempSlots)

	parent := node.getParent(btree)
	parent.promote(btree, middle, rightNode.ID, parent.getIndexOfChild(node))
}

// promote inserts the separator item with its right child into this node. If the
// node is full, it splits and propagates the promotion up the tree (splitting
// ancestors as needed). Root splits increase tree height.
func (node *Node[TK, TV]) promote(btree *Btree[TK, TV], item *Item[TK, TV], rightID kvfifo.UUID, childIndex int) {
	if node.Count < btree.getSlotLength() {
		// Node is not yet full; insert the separator and its right child.
		shiftSlots(node.Slots, childIndex, node.Count)
		node.Slots[childIndex] = item
		shiftSlots(node.ChildrenIDs, childIndex+1, node.Count+1)
		node.ChildrenIDs[childIndex+1] = rightID
		node.Count++
		btree.saveNode(node)
		return
	}

	// Node is full: assemble the overflowed slots & children in the temp buffers.
	copyArrayElements(btree.tempSlots, node.Slots, btree.getSlotLength())
	shiftSlots(btree.tempSlots, childIndex, btree.getSlotLength())
	btree.tempSlots[childIndex] = item
	copyArrayElements(btree.tempChildren, node.ChildrenIDs, btree.getSlotLength()+1)
	shiftSlots(btree.tempChildren, childIndex+1, btree.getSlotLength()+1)
	btree.tempChildren[childIndex+1] = rightID

	slotsHalf := btree.getSlotLength() >> 1
	if node.isRootNode() {
		// No parent: break up this node into two children and keep node as root.
		leftNode := newNode[TK, TV](btree.getSlotLength())
		leftNode.newID(node.ID)
		rightNode := newNode[TK, TV](btree.getSlotLength())
		rightNode.newID(node.ID)

		copyArrayElements(leftNode.Slots, btree.tempSlots, slotsHalf)
		leftNode.Count = slotsHalf
		copyArrayElements(rightNode.Slots, btree.tempSlots[slotsHalf+1:], slotsHalf)
		rightNode.Count = slotsHalf
		leftNode.ChildrenIDs = make([]kvfifo.UUID, btree.getSlotLength()+1)
		rightNode.ChildrenIDs = make([]kvfifo.UUID, btree.getSlotLength()+1)
		copyArrayElements(leftNode.ChildrenIDs, btree.tempChildren, slotsHalf+1)
		copyArrayElements(rightNode.ChildrenIDs, btree.tempChildren[slotsHalf+1:], slotsHalf+1)

		clear(node.Slots)
		clear(node.ChildrenIDs)

		// Make the new siblings parents of their children.
		btree.saveNode(leftNode)
		btree.saveNode(rightNode)
		leftNode.updateChildrenParent(btree)
		rightNode.updateChildrenParent(btree)

		node.Slots[0] = btree.tempSlots[slotsHalf]
		node.Count = 1
		node.ChildrenIDs[0] = leftNode.ID
		node.ChildrenIDs[1] = rightNode.ID
		btree.saveNode(node)

		clear(btree.tempSlots)
		clear(btree.tempChildren)
		return
	}

	// This node becomes the left sibling, a new right sibling takes the upper half
	// and the middle separator gets promoted another level up.
	rightNode := newNode[TK, TV](btree.getSlotLength())
	rightNode.newID(node.ParentID)
	rightNode.ChildrenIDs = make([]kvfifo.UUID, btree.getSlotLength()+1)

	clear(node.Slots)
	clear(node.ChildrenIDs)
	copyArrayElements(node.Slots, btree.tempSlots, slotsHalf)
	node.Count = slotsHalf
	copyArrayElements(rightNode.Slots, btree.tempSlots[slotsHalf+1:], slotsHalf)
	rightNode.Count = slotsHalf
	copyArrayElements(node.ChildrenIDs, btree.tempChildren, slotsHalf+1)
	copyArrayElements(rightNode.ChildrenIDs, btree.tempChildren[slotsHalf+1:], slotsHalf+1)

	middle := btree.tempSlots[slotsHalf]
	btree.saveNode(rightNode)
	rightNode.updateChildrenParent(btree)
	btree.saveNode(node)
	node.updateChildrenParent(btree)

	clear(btree.tempSlots)
	clear(btree.tempChildren)

	// Trigger another promotion.
	parent := node.getParent(btree)
	parent.promote(btree, middle, rightNode.ID, parent.getIndexOfChild(node))
}

// find walks the tree to locate the key and positions the B-tree cursor.
// If firstItemWithKey is true and duplicates exist, it selects the first match;
// otherwise it selects the exact match or the nearest neighbor when not found
// (to support range scans).
func (node *Node[TK, TV]) find(btree *Btree[TK, TV], key TK, firstItemWithKey bool) bool {
	n := node
	foundItemIndex := 0
	foundNodeID := kvfifo.NilUUID
	index := 0
	for n != nil {
		index = 0
		if n.Count > 0 {
			index = sort.Search(n.Count, func(index int) bool {
				return btree.compare(n.Slots[index].Key, key) >= 0
			})
			// If key is found in node n.
			if index < n.Count && btree.compare(n.Slots[index].Key, key) == 0 {
				// Make the found node & item index the "current item" of btree.
				foundNodeID = n.ID
				foundItemIndex = index
				if !firstItemWithKey {
					break
				}
			}
		}
		// Check children if there are.
		if n.hasChildren() {
			// Short circuit if child is nil as there is no more duplicate on left side.
			if n.ChildrenIDs[index] == kvfifo.NilUUID {
				break
			}
			n = n.getChild(btree, index)
			continue
		}
		// Short circuit loop if there are no more children.
		break
	}
	if !foundNodeID.IsNil() {
		btree.setCurrentItemID(foundNodeID, foundItemIndex)
		return true
	}
	// This must be the outermost node. Make the nearest item the current one to
	// give the caller the chance to check items nearest to the sought key.
	if index >= n.Count {
		index = n.Count - 1
	}
	if index < 0 {
		btree.setCurrentItemID(kvfifo.NilUUID, 0)
		return false
	}
	if n.Slots[index] != nil {
		btree.setCurrentItemID(n.ID, index)
	} else {
		index--
		btree.setCurrentItemID(n.ID, index)
		// Make the next greater item the current item.
		n.moveToNext(btree)
	}
	return false
}

// moveToFirst positions the cursor at the smallest key in the tree by
// traversing the left-most branch until a leaf is reached.
func (node *Node[TK, TV]) moveToFirst(btree *Btree[TK, TV]) bool {
	n := node
	prev := n
	for n.ChildrenIDs != nil {
		prev = n
		cid := n.ChildrenIDs[0]
		// If nil child, then we've reached the 1st item's node, stop the walk.
		if cid == kvfifo.NilUUID {
			break
		}
		n = btree.getNode(cid)
		if n == nil {
			break
		}
	}
	if n != nil {
		prev = n
	}
	btree.setCurrentItemID(prev.ID, 0)
	return true
}

// moveToLast positions the cursor at the largest key in the tree by
// traversing the right-most branch until a leaf is reached.
func (node *Node[TK, TV]) moveToLast(btree *Btree[TK, TV]) bool {
	n := node
	for n.ChildrenIDs != nil {
		cid := n.ChildrenIDs[n.Count]
		// If nil child, then we've reached the last item's node, stop the walk.
		if cid == kvfifo.NilUUID {
			break
		}
		n = btree.getNode(cid)
		if n == nil {
			return false
		}
	}
	btree.setCurrentItemID(n.ID, n.Count-1)
	return n.ID != kvfifo.NilUUID
}

// moveToNext advances the cursor to the next in-order item.
// When the current node has children, it descends into the right child;
// otherwise it climbs up to the first ancestor where the current node was a left child.
func (node *Node[TK, TV]) moveToNext(btree *Btree[TK, TV]) bool {
	n := node
	slotIndex := btree.currentItemRef.getNodeItemIndex()
	slotIndex++
	goRightDown := n.hasChildren()
	if goRightDown {
		for {
			if n == nil {
				btree.setCurrentItemID(kvfifo.NilUUID, 0)
				return false
			}
			if n.hasChildren() {
				if ok := n.goRightUpItemOnNodeWithNilChild(btree, slotIndex); ok {
					return true
				}
				if n.ChildrenIDs[slotIndex] == kvfifo.NilUUID {
					// goRightUp already exhausted the tree.
					return false
				}
				n = n.getChild(btree, slotIndex)
				slotIndex = 0
			} else {
				btree.setCurrentItemID(n.ID, 0)
				return true
			}
		}
	}
	for {
		if n == nil {
			btree.setCurrentItemID(kvfifo.NilUUID, 0)
			return false
		}
		// Check if slotIndex is within the occupied slots.
		if slotIndex < n.Count {
			btree.setCurrentItemID(n.ID, slotIndex)
			return true
		}
		// Check if this is the root node. (Root nodes don't have a parent.)
		if n.isRootNode() {
			// Root node: set the current item to nil (end of B-tree reached).
			btree.setCurrentItemID(kvfifo.NilUUID, 0)
			return false
		}
		p := n.getParent(btree)
		slotIndex = p.getIndexOfChild(n)
		n = p
	}
}

// moveToPrevious moves the cursor to the previous in-order item.
// When the current node has children, it descends into the left neighbor subtree;
// otherwise it climbs up to the first ancestor where the current node was a right child.
func (node *Node[TK, TV]) moveToPrevious(btree *Btree[TK, TV]) bool {
	n := node
	slotIndex := btree.currentItemRef.getNodeItemIndex()
	goLeftDown := n.hasChildren()
	if goLeftDown {
		for {
			if n.hasChildren() {
				if ok := n.goLeftUpItemOnNodeWithNilChild(btree, slotIndex); ok {
					return true
				}
				if n.ChildrenIDs[slotIndex] == kvfifo.NilUUID {
					// goLeftUp already exhausted the tree.
					return false
				}
				n = n.getChild(btree, slotIndex)
				if n == nil {
					// Set the current item to nil; end of B-tree reached.
					btree.setCurrentItemID(kvfifo.NilUUID, 0)
					return false
				}
				slotIndex = n.Count
			} else {
				// 'slotIndex-1' since we are now using slotIndex as index to the slots.
				btree.setCurrentItemID(n.ID, slotIndex-1)
				return true
			}
		}
	}
	slotIndex--
	for {
		// Check if slotIndex indexes an occupied slot.
		if slotIndex >= 0 {
			btree.setCurrentItemID(n.ID, slotIndex)
			return true
		}
		if n.isRootNode() {
			// Set the current item to nil; end of B-tree reached.
			btree.setCurrentItemID(kvfifo.NilUUID, 0)
			return false
		}
		p := n.getParent(btree)
		slotIndex = p.getIndexOfChild(n) - 1
		n = p
	}
}

// fixVacatedSlot removes the item at position from a leaf node and restores the
// B-tree invariants: it compacts the slots, handles the root special case, and
// unlinks the node when it becomes empty.
func (node *Node[TK, TV]) fixVacatedSlot(btree *Btree[TK, TV], position int) {
	// If there are more than 1 items in slot then we move the items 1 slot to omit deleted item slot.
	if node.Count > 1 {
		if position < node.Count-1 {
			moveArrayElements(node.Slots,
				position,
				position+1,
				node.Count-position-1)
		}
		// Nullify the last slot.
		node.Count--
		node.Slots[node.Count] = nil
		btree.saveNode(node)
		return
	}
	if node.isRootNode() {
		// Delete the single item in root node.
		node.Count = 0
		node.Slots[0] = nil
		btree.saveNode(node)
		return
	}
	node.unlink(btree)
}

// removeItemOnNodeWithNilChild will manage these remove item cases:
// - remove item on a node slot with nil left child
// - remove item on a node slot with nil right child
// - remove item on the right edge node slot with nil right child
func (node *Node[TK, TV]) removeItemOnNodeWithNilChild(btree *Btree[TK, TV], index int) bool {
	if !node.hasChildren() || node.ChildrenIDs[index] != kvfifo.NilUUID && node.ChildrenIDs[index+1] != kvfifo.NilUUID {
		return false
	}
	itemsToMove := node.Count - index
	if node.ChildrenIDs[index] == kvfifo.NilUUID {
		if index < node.Count {
			moveArrayElements(node.Slots, index, index+1, itemsToMove)
			moveArrayElements(node.ChildrenIDs, index, index+1, itemsToMove+1)
		}
	} else {
		if index < node.Count {
			moveArrayElements(node.Slots, index, index+1, itemsToMove)
			moveArrayElements(node.ChildrenIDs, index+1, index+2, itemsToMove+1)
		}
	}
	// Set to nil the last item & its child.
	node.Slots[node.Count-1] = nil
	node.ChildrenIDs[node.Count] = kvfifo.NilUUID
	node.Count--

	if node.Count == 0 && node.ChildrenIDs[0] != kvfifo.NilUUID {
		if node.isRootNode() {
			// Copy contents of the single child to this root node.
			nc := node.getChild(btree, 0)
			copy(node.Slots, nc.Slots)
			node.ChildrenIDs = nil
			if nc.hasChildren() {
				node.ChildrenIDs = make([]kvfifo.UUID, btree.getSlotLength()+1)
				copy(node.ChildrenIDs, nc.ChildrenIDs)
			}
			node.Count = nc.Count
			btree.removeNode(nc)
			btree.saveNode(node)
			node.updateChildrenParent(btree)
			return true
		}

		// Promote the single child as parent's new child instead of this node.
		p := node.getParent(btree)
		ion := p.getIndexOfChild(node)
		p.ChildrenIDs[ion] = node.ChildrenIDs[0]
		nc := node.getChild(btree, 0)
		nc.ParentID = p.ID
		btree.saveNode(nc)
		btree.saveNode(p)
		// Remove this node since it is now empty.
		btree.removeNode(node)
		return true
	}

	if node.Count == 0 {
		node.unlink(btree)
		return true
	}

	btree.saveNode(node)
	return true
}

// addItemOnNodeWithNilChild occupies a nil child slot with a new child node
// holding the item, instead of descending further.
func (node *Node[TK, TV]) addItemOnNodeWithNilChild(btree *Btree[TK, TV], item *Item[TK, TV], index int) bool {
	if node.ChildrenIDs[index] != kvfifo.NilUUID {
		return false
	}
	// Create a new child node & populate it with the item.
	child := newNode[TK, TV](btree.getSlotLength())
	child.newID(node.ID)
	node.ChildrenIDs[index] = child.ID
	child.Slots[0] = item
	child.Count = 1
	btree.saveNode(node)
	btree.saveNode(child)
	return true
}

// goRightUpItemOnNodeWithNilChild handles moveToNext on a node with a nil child:
// climb until an occupied right slot is found.
func (node *Node[TK, TV]) goRightUpItemOnNodeWithNilChild(btree *Btree[TK, TV], index int) bool {
	if node.ChildrenIDs[index] != kvfifo.NilUUID {
		return false
	}
	n := node
	i := index
	for {
		if n == nil {
			btree.setCurrentItemID(kvfifo.NilUUID, 0)
			return false
		}
		// Check if there is an item on the right slot.
		if i < n.Count {
			btree.setCurrentItemID(n.ID, i)
			return true
		}
		// Check if this is the root node. (Root nodes don't have a parent.)
		if n.isRootNode() {
			// This is root node; set the current item to nil (end of B-tree reached).
			btree.setCurrentItemID(kvfifo.NilUUID, 0)
			return false
		}
		p := n.getParent(btree)
		i = p.getIndexOfChild(n)
		n = p
	}
}

// goLeftUpItemOnNodeWithNilChild handles moveToPrevious on a node with a nil child:
// climb until an occupied left slot is found.
func (node *Node[TK, TV]) goLeftUpItemOnNodeWithNilChild(btree *Btree[TK, TV], index int) bool {
	if node.ChildrenIDs[index] != kvfifo.NilUUID {
		return false
	}
	n := node
	i := index - 1
	for {
		// Check if slotIndex indexes an occupied slot.
		if i >= 0 {
			btree.setCurrentItemID(n.ID, i)
			return true
		}
		if n.isRootNode() {
			// Set the current item to nil; end of B-tree reached.
			btree.setCurrentItemID(kvfifo.NilUUID, 0)
			return false
		}
		p := n.getParent(btree)
		i = p.getIndexOfChild(n) - 1
		n = p
	}
}

// getSuccessorOnLeafBranch locates the in-order successor of the item at index,
// descending into the right child then left-most until the leaf branch is reached.
// Caller guarantees the right child is not nil.
func (node *Node[TK, TV]) getSuccessorOnLeafBranch(btree *Btree[TK, TV], index int) (*Node[TK, TV], int) {
	n := node.getChild(btree, index+1)
	for n.hasChildren() {
		if n.ChildrenIDs[0] == kvfifo.NilUUID {
			break
		}
		n = n.getChild(btree, 0)
	}
	return n, 0
}

// unlink removes this node from its parent when it becomes empty, pruning
// nil child pointers and deleting the node from the repository.
func (node *Node[TK, TV]) unlink(btree *Btree[TK, TV]) {
	p := node.getParent(btree)
	if !p.hasChildren() {
		return
	}
	// Prune empty children.
	i := p.getIndexOfChild(node)
	p.ChildrenIDs[i] = kvfifo.NilUUID
	if p.isNilChildren() {
		p.ChildrenIDs = nil
	}
	btree.saveNode(p)
	btree.removeNode(node)
}

func (node *Node[TK, TV]) isNilChildren() bool {
	for _, id := range node.ChildrenIDs {
		if id != kvfifo.NilUUID {
			return false
		}
	}
	return true
}

// updateChildrenParent fixes ParentID pointers of all existing children to
// reference this node after structural changes (split/promote).
func (node *Node[TK, TV]) updateChildrenParent(btree *Btree[TK, TV]) {
	if !node.hasChildren() {
		return
	}
	for _, id := range node.ChildrenIDs {
		if id == kvfifo.NilUUID {
			continue
		}
		child := btree.getNode(id)
		if child != nil {
			child.ParentID = node.ID
			btree.saveNode(child)
		}
	}
}

func (node *Node[TK, TV]) insertSlotItem(item *Item[TK, TV], position int) {
	copy(node.Slots[position+1:], node.Slots[position:])
	node.Slots[position] = item
	node.Count++
}

func (node *Node[TK, TV]) getIndexToInsertTo(btree *Btree[TK, TV], item *Item[TK, TV]) (int, bool) {
	if node.Count == 0 {
		// Empty node.
		return 0, false
	}
	index := sort.Search(node.Count, func(index int) bool {
		return btree.compare(node.Slots[index].Key, item.Key) >= 0
	})
	if btree.isUnique {
		i := index
		if i >= node.Count {
			i--
		}
		// Returns index in slot that is available for insert.
		// Also returns true if an existing item with such key is found.
		return index, btree.compare(node.Slots[i].Key, item.Key) == 0
	}
	// Returns index in slot that is available for insert.
	return index, false
}

func (node *Node[TK, TV]) getChildID(index int) kvfifo.UUID {
	if len(node.ChildrenIDs) == 0 {
		return kvfifo.NilUUID
	}
	return node.ChildrenIDs[index]
}

func (node *Node[TK, TV]) getChild(btree *Btree[TK, TV], childSlotIndex int) *Node[TK, TV] {
	id := node.getChildID(childSlotIndex)
	if id == kvfifo.NilUUID {
		return nil
	}
	return btree.getNode(id)
}

// hasChildren returns true if the node has children.
func (node *Node[TK, TV]) hasChildren() bool {
	return len(node.ChildrenIDs) > 0
}

// isRootNode returns true if the node has no parent.
func (node *Node[TK, TV]) isRootNode() bool {
	return node.ParentID == kvfifo.NilUUID
}

func (node *Node[TK, TV]) getParent(btree *Btree[TK, TV]) *Node[TK, TV] {
	if node.ParentID.IsNil() {
		return nil
	}
	return btree.getNode(node.ParentID)
}

// getIndexOfChild returns the index of the given child within this node's ChildrenIDs.
func (node *Node[TK, TV]) getIndexOfChild(child *Node[TK, TV]) int {
	for i := range node.ChildrenIDs {
		if node.ChildrenIDs[i] == child.ID {
			return i
		}
	}
	return -1
}

// copyArrayElements is a helper function for internal use only.
func copyArrayElements[T any](destination, source []T, count int) {
	if source == nil || destination == nil {
		return
	}
	for i := 0; i < count; i++ {
		destination[i] = source[i]
	}
}

func shiftSlots[T any](array []T, position int, noOfOccupiedSlots int) {
	if position < noOfOccupiedSlots {
		// Create a vacant slot by shifting node contents one slot.
		moveArrayElements(array, position+1, position, noOfOccupiedSlots-position)
	}
}

// moveArrayElements is a helper function for internal use only.
func moveArrayElements[T any](array []T, destStartIndex, srcStartIndex, count int) {
	if array == nil {
		return
	}
	addValue := -1
	srcIndex := srcStartIndex + count - 1
	destIndex := destStartIndex + count - 1
	if destStartIndex < srcStartIndex {
		srcIndex = srcStartIndex
		destIndex = destStartIndex
		addValue = 1
	}
	for i := 0; i < count; i++ {
		// Only process if within array range.
		if destIndex < 0 || srcIndex < 0 || destIndex >= len(array) || srcIndex >= len(array) {
			break
		}
		array[destIndex] = array[srcIndex]
		destIndex = destIndex + addValue
		srcIndex = srcIndex + addValue
	}
}
