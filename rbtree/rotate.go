package rbtree

import (
	"github.com/amp-labs/amp-rbtree/assert"
	"github.com/amp-labs/amp-rbtree/sortable"
)

// rotate promotes pivot into the slot held by its parent. dir is the rotation
// direction: right when pivot is the left child, left when it is the right one.
//
// Right rotation around pivot x with parent y:
//
//	    g                g
//	    |                |
//	    y                x
//	   / \              / \
//	  x   c     =>     a   y
//	 / \                  / \
//	a   b                b   c
//
// The inner child b moves under y. If y had no parent, pivot ends up with no
// parent and the caller must update its root reference. With recolor set,
// pivot becomes black and the old parent red.
func rotate[K sortable.Sortable[K]](pivot *Node[K], dir direction, recolor bool) {
	parent := pivot.parent

	assert.NotNil(parent, "rbtree: rotating %v which has no parent", pivot)
	assert.True(parent.child(dir.opposite()) == pivot,
		"rbtree: %v cannot rotate %s from its side", pivot, dir)

	grand := parent.parent
	if grand != nil {
		grand.setChild(parent.side(), pivot)
	}

	pivot.parent = grand

	inner := pivot.child(dir)
	assert.NotNil(inner, "rbtree: %v has no %s child, not even a leaf", pivot, dir)

	pivot.setChild(dir, parent)
	parent.parent = pivot
	parent.setChild(dir.opposite(), inner)
	inner.parent = parent

	if recolor {
		pivot.color = Black
		parent.color = Red
	}
}
