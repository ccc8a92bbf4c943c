package rbtree

import (
	"fmt"

	"github.com/amp-labs/amp-rbtree/sortable"
)

// Color is the color of a node.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

// String returns the one-letter tag used by the printer.
func (c Color) String() string {
	if c == Black {
		return "B"
	}

	return "R"
}

// direction names a child slot, and doubles as a rotation direction.
type direction byte

const (
	left direction = iota
	right
)

func (d direction) opposite() direction {
	return 1 - d
}

func (d direction) String() string {
	switch d {
	case left:
		return "left"
	case right:
		return "right"
	default:
		return "not recognized"
	}
}

// Node is a single tree node. Real nodes always have two non-nil children;
// empty positions hold sentinel leaves.
type Node[K sortable.Sortable[K]] struct {
	key     K
	color   Color
	left    *Node[K]
	right   *Node[K]
	parent  *Node[K]
	nilLeaf bool
}

func newLeaf[K sortable.Sortable[K]](parent *Node[K]) *Node[K] {
	return &Node[K]{color: Black, nilLeaf: true, parent: parent}
}

func newNode[K sortable.Sortable[K]](parent *Node[K], key K, color Color) *Node[K] {
	n := &Node[K]{key: key, color: color, parent: parent}
	n.left = newLeaf(n)
	n.right = newLeaf(n)

	return n
}

// Key returns the stored key. Sentinels and nil nodes return the zero value.
func (n *Node[K]) Key() K {
	if n.IsNil() {
		var zero K

		return zero
	}

	return n.key
}

// Color returns the node color. Nil nodes and sentinels are black.
func (n *Node[K]) Color() Color {
	if n == nil {
		return Black
	}

	return n.color
}

// IsNil reports whether n is absent or a sentinel leaf.
func (n *Node[K]) IsNil() bool {
	return n == nil || n.nilLeaf
}

// IsRed reports whether n is red. Leaf sentinels are never red.
func (n *Node[K]) IsRed() bool {
	return n.Color() == Red
}

// IsBlack reports whether n is black.
func (n *Node[K]) IsBlack() bool {
	return n.Color() == Black
}

// Left returns the left child, or nil when that position is a leaf.
func (n *Node[K]) Left() *Node[K] {
	if n.IsNil() || n.left.IsNil() {
		return nil
	}

	return n.left
}

// Right returns the right child, or nil when that position is a leaf.
func (n *Node[K]) Right() *Node[K] {
	if n.IsNil() || n.right.IsNil() {
		return nil
	}

	return n.right
}

// Parent returns the parent node, or nil for the root.
func (n *Node[K]) Parent() *Node[K] {
	if n == nil {
		return nil
	}

	return n.parent
}

// String returns a string representation of the node showing its key and color.
func (n *Node[K]) String() string {
	if n.IsNil() {
		return "(nil : B)"
	}

	return fmt.Sprintf("(%v : %s)", n.key, n.color)
}

func (n *Node[K]) child(d direction) *Node[K] {
	if d == left {
		return n.left
	}

	return n.right
}

func (n *Node[K]) setChild(d direction, c *Node[K]) {
	if d == left {
		n.left = c
	} else {
		n.right = c
	}
}

// side reports which child slot of its parent n occupies. n must have a parent.
func (n *Node[K]) side() direction {
	if n.parent.left == n {
		return left
	}

	return right
}

// sibling returns the other child of n's parent; a sentinel at the fringe.
func (n *Node[K]) sibling() *Node[K] {
	return n.parent.child(n.side().opposite())
}
