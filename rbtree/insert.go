package rbtree

import (
	"fmt"

	"github.com/amp-labs/amp-rbtree/sortable"
)

// Insert adds key to the tree rooted at root and returns the new root.
// A nil root is an empty tree. If key is already present the tree is left
// unchanged and an error wrapping ErrDuplicateKey is returned together with
// the original root.
func Insert[K sortable.Sortable[K]](root *Node[K], key K) (*Node[K], error) {
	e := newEngine(root, nil, nil)
	if err := e.insert(key); err != nil {
		return root, err
	}

	return e.root, nil
}

func (e *engine[K]) insert(key K) error {
	if e.root.IsNil() {
		e.root = newNode(nil, key, Black)
		e.stats.inserted()

		return nil
	}

	cur := e.root

	for {
		if key.Equals(cur.key) {
			e.stats.duplicate()

			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}

		dir := right
		if key.LessThan(cur.key) {
			dir = left
		}

		next := cur.child(dir)
		if next.nilLeaf {
			node := newNode(cur, key, Red)
			cur.setChild(dir, node)
			e.fixInsert(node)
			e.stats.inserted()

			return nil
		}

		cur = next
	}
}

// fixInsert walks up from a freshly linked red node and repairs red-red
// violations. Each pass looks at a red child under a red parent; the parent is
// never the root because the root is always black.
func (e *engine[K]) fixInsert(child *Node[K]) {
	for {
		parent := child.parent
		if parent == nil || parent.color == Black || child.color == Black {
			return
		}

		grand := parent.parent
		parentSide := parent.side()
		uncle := parent.sibling()

		if uncle.color == Black {
			if child.side() == parentSide {
				// Straight line: one rotation of the parent settles it.
				e.debug("rbtree insert fix-up", "shape", "straight", "node", child.key)
				e.stats.straightLine()
				e.rotate(parent, parentSide.opposite(), true)
			} else {
				// Zig-zag: straighten first, then rotate the new top.
				e.debug("rbtree insert fix-up", "shape", "zigzag", "node", child.key)
				e.stats.zigZag()
				e.rotate(child, parentSide, false)
				e.rotate(child, parentSide.opposite(), true)
			}

			return
		}

		// Red uncle: push the blackness down one level and retry above.
		e.debug("rbtree insert fix-up", "shape", "recolor", "node", child.key)
		e.stats.recolored()

		parent.color = Black
		uncle.color = Black

		if grand.parent != nil {
			grand.color = Red
		}

		child = grand
	}
}
