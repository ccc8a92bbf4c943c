package rbtree

import (
	"github.com/amp-labs/amp-rbtree/errors"
	"github.com/amp-labs/amp-rbtree/sortable"
)

// Validate reports whether the tree rooted at root is a valid red-black tree:
// the root is black, every root-to-leaf path has the same number of black
// nodes, and no red node has a red parent. An empty tree is valid.
//
// Validate only reads the tree. The mutators never call it; it exists for tests.
func Validate[K sortable.Sortable[K]](root *Node[K]) bool {
	if root.IsNil() {
		return true
	}

	if root.color != Black {
		return false
	}

	return uniformBlackHeight(root) && noRedRed(root, Black)
}

// uniformBlackHeight is a single depth-first pass comparing the black count of
// every path against the first one seen.
func uniformBlackHeight[K sortable.Sortable[K]](root *Node[K]) bool {
	want := -1

	var walk func(n *Node[K], count int) bool

	walk = func(n *Node[K], count int) bool {
		if n.IsBlack() {
			count++
		}

		if n.IsNil() {
			if want < 0 {
				want = count

				return true
			}

			return count == want
		}

		return walk(n.left, count) && walk(n.right, count)
	}

	return walk(root, 0)
}

func noRedRed[K sortable.Sortable[K]](n *Node[K], parentColor Color) bool {
	if n.IsNil() {
		return true
	}

	if n.color == Red && parentColor == Red {
		return false
	}

	return noRedRed(n.left, n.color) && noRedRed(n.right, n.color)
}

// Check inspects every node and returns all broken invariants joined into one
// error, or nil for a valid tree. Besides what Validate covers it verifies
// sentinel colors, key order and parent back-references. Each finding wraps
// ErrInvariantViolation.
func Check[K sortable.Sortable[K]](root *Node[K]) error {
	if root == nil {
		return nil
	}

	var (
		found   errors.Collection
		prev    K
		seenKey bool
	)

	if !root.nilLeaf && root.color != Black {
		found.Addf(ErrInvariantViolation, "root %v is red", root)
	}

	// check returns the black-height of n, counting n itself.
	var check func(n, parent *Node[K]) int

	check = func(n, parent *Node[K]) int {
		if n == nil {
			found.Addf(ErrInvariantViolation, "%v has a missing child pointer", parent)

			return 0
		}

		if n.parent != parent {
			found.Addf(ErrInvariantViolation, "%v points at parent %v instead of %v", n, n.parent, parent)
		}

		if n.nilLeaf {
			if n.color != Black {
				found.Addf(ErrInvariantViolation, "leaf under %v is red", parent)
			}

			return 1
		}

		if n.color == Red && parent != nil && parent.color == Red {
			found.Addf(ErrInvariantViolation, "red %v has red parent %v", n, parent)
		}

		leftHeight := check(n.left, n)

		if seenKey && !prev.LessThan(n.key) {
			found.Addf(ErrInvariantViolation, "key %v follows %v in order", n.key, prev)
		}

		prev, seenKey = n.key, true

		rightHeight := check(n.right, n)

		if leftHeight != rightHeight {
			found.Addf(ErrInvariantViolation, "%v has black-height %d on the left and %d on the right",
				n, leftHeight, rightHeight)
		}

		if n.color == Black {
			return leftHeight + 1
		}

		return leftHeight
	}

	check(root, nil)

	return found.GetError()
}
