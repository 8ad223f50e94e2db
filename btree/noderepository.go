package btree

import (
	"github.com/sharedcode/kvfifo"
)

// NodeRepository specifies the node repository used by the B-tree.
type NodeRepository[TK Ordered, TV any] interface {
	// Add will upsert the node.
	Add(n *Node[TK, TV])
	// Get returns the Node with the given nodeID, or nil if absent.
	Get(nodeID kvfifo.UUID) *Node[TK, TV]
	// Update will upsert the node.
	Update(n *Node[TK, TV])
	// Remove will remove the node with nodeID.
	Remove(nodeID kvfifo.UUID)
}

// in-memory implementation of NodeRepository. Uses a map to manage nodes in memory.
type nodeRepository[TK Ordered, TV any] struct {
	lookup map[kvfifo.UUID]*Node[TK, TV]
}

// NewNodeRepository instantiates a NodeRepository that uses a map to manage items.
func NewNodeRepository[TK Ordered, TV any]() NodeRepository[TK, TV] {
	return &nodeRepository[TK, TV]{
		lookup: make(map[kvfifo.UUID]*Node[TK, TV]),
	}
}

// Add will upsert node to the map.
func (nr *nodeRepository[TK, TV]) Add(n *Node[TK, TV]) {
	nr.lookup[n.ID] = n
}

// Update will upsert node to the map.
func (nr *nodeRepository[TK, TV]) Update(n *Node[TK, TV]) {
	nr.lookup[n.ID] = n
}

// Get will retrieve a node with nodeID from the map.
func (nr *nodeRepository[TK, TV]) Get(nodeID kvfifo.UUID) *Node[TK, TV] {
	return nr.lookup[nodeID]
}

// Remove will remove a node with nodeID from the map.
func (nr *nodeRepository[TK, TV]) Remove(nodeID kvfifo.UUID) {
	delete(nr.lookup, nodeID)
}
