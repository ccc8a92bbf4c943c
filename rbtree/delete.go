package rbtree

import (
	"github.com/amp-labs/amp-rbtree/assert"
	"github.com/amp-labs/amp-rbtree/sortable"
)

// Delete removes key from the tree rooted at root and returns the new root,
// which is nil once the tree is empty. Deleting an absent key is a no-op and
// returns root unchanged.
func Delete[K sortable.Sortable[K]](root *Node[K], key K) *Node[K] {
	e := newEngine(root, nil, nil)
	e.delete(key)

	return e.root
}

// delete reports whether key was found and removed.
func (e *engine[K]) delete(key K) bool {
	target := search(e.root, key)
	if target == nil {
		return false
	}

	if !target.left.nilLeaf && !target.right.nilLeaf {
		// Two real children: take over the in-order successor's key and remove
		// the successor, which has no left child.
		successor := leftmost(target.right)
		target.key = successor.key
		target = successor
	}

	e.deleteOneChild(target)

	if e.root.IsNil() {
		e.root = nil
	}

	e.stats.deleted()

	return true
}

// deleteOneChild splices out a node that has at most one real child.
func (e *engine[K]) deleteOneChild(node *Node[K]) {
	child := node.right
	if child.nilLeaf {
		child = node.left
	}

	e.replace(node, child)

	wasBlack := node.color == Black
	node.parent, node.left, node.right = nil, nil, nil

	switch {
	case !wasBlack:
	case child.color == Red:
		child.color = Black
	default:
		e.fixDoubleBlack(child)
	}
}

// replace puts child in node's slot under node's parent, or makes it the root.
func (e *engine[K]) replace(node, child *Node[K]) {
	child.parent = node.parent

	if node.parent == nil {
		e.root = child

		return
	}

	node.parent.setChild(node.side(), child)
}

// fixDoubleBlack resolves the missing black on node's side. Each pass
// re-derives the parent and sibling since earlier cases may have rotated.
func (e *engine[K]) fixDoubleBlack(node *Node[K]) {
	for {
		parent := node.parent

		// Case 1: the deficiency reached the root and is absorbed there.
		if parent == nil {
			e.deleteCase(1, node)
			e.root = node

			return
		}

		side := node.side()
		sibling := parent.child(side.opposite())

		assert.False(sibling.nilLeaf, "rbtree: double-black %v has no sibling", node)

		// Case 2: red sibling. Rotate it up so the new sibling is black.
		if sibling.color == Red {
			e.deleteCase(2, node)
			e.rotate(sibling, side, true)
			sibling = parent.child(side.opposite())
		}

		near := sibling.child(side)
		far := sibling.child(side.opposite())

		if near.color == Black && far.color == Black {
			sibling.color = Red

			// Case 3: everything black, push the deficiency up.
			if parent.color == Black {
				e.deleteCase(3, node)
				node = parent

				continue
			}

			// Case 4: red parent absorbs it.
			e.deleteCase(4, node)
			parent.color = Black

			return
		}

		// Case 5: near nephew red, far nephew black. Rotate the near nephew up
		// to turn this into case 6.
		if far.color == Black {
			e.deleteCase(5, node)
			e.rotate(near, side.opposite(), true)
			sibling = near
			far = sibling.child(side.opposite())
		}

		// Case 6: far nephew red. The rotation toward node adds the missing black.
		e.deleteCase(6, node)
		sibling.color = parent.color
		parent.color = Black
		far.color = Black
		e.rotate(sibling, side, false)

		return
	}
}

func (e *engine[K]) deleteCase(n int, node *Node[K]) {
	e.stats.deleteCase(n)
	e.debug("rbtree delete fix-up", "case", n, "node", node)
}
