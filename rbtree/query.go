package rbtree

import (
	"iter"

	"github.com/amp-labs/amp-rbtree/sortable"
)

// search returns the real node holding key, or nil.
func search[K sortable.Sortable[K]](root *Node[K], key K) *Node[K] {
	cur := root

	for !cur.IsNil() {
		switch {
		case key.Equals(cur.key):
			return cur
		case key.LessThan(cur.key):
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return nil
}

// leftmost returns the smallest real node of a non-empty subtree.
func leftmost[K sortable.Sortable[K]](n *Node[K]) *Node[K] {
	for !n.left.nilLeaf {
		n = n.left
	}

	return n
}

func rightmost[K sortable.Sortable[K]](n *Node[K]) *Node[K] {
	for !n.right.nilLeaf {
		n = n.right
	}

	return n
}

// Contains reports whether key is stored in the tree rooted at root.
func Contains[K sortable.Sortable[K]](root *Node[K], key K) bool {
	return search(root, key) != nil
}

// Min returns the smallest key, or false for an empty tree.
func Min[K sortable.Sortable[K]](root *Node[K]) (K, bool) {
	if root.IsNil() {
		var zero K

		return zero, false
	}

	return leftmost(root).key, true
}

// Max returns the largest key, or false for an empty tree.
func Max[K sortable.Sortable[K]](root *Node[K]) (K, bool) {
	if root.IsNil() {
		var zero K

		return zero, false
	}

	return rightmost(root).key, true
}

// Len counts the real nodes. Time complexity: O(n).
func Len[K sortable.Sortable[K]](root *Node[K]) int {
	count := 0

	for range All(root) {
		count++
	}

	return count
}

// Height is the number of real nodes on the longest root-to-leaf path.
func Height[K sortable.Sortable[K]](root *Node[K]) int {
	if root.IsNil() {
		return 0
	}

	return 1 + max(Height(root.left), Height(root.right))
}

// BlackHeight counts the black nodes from root down to a leaf, leaf included
// and root excluded, following the leftmost path. On a valid tree every path
// gives the same answer. An empty tree has black-height 0.
func BlackHeight[K sortable.Sortable[K]](root *Node[K]) int {
	if root.IsNil() {
		return 0
	}

	height := 0

	for n := root.left; n != nil; n = n.left {
		if n.color == Black {
			height++
		}
	}

	return height
}

// All yields the keys in increasing order. The walk is iterative so it does
// not grow the call stack with the tree height.
func All[K sortable.Sortable[K]](root *Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		var stack []*Node[K]

		cur := root

		for !cur.IsNil() || len(stack) > 0 {
			for !cur.IsNil() {
				stack = append(stack, cur)
				cur = cur.left
			}

			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(cur.key) {
				return
			}

			cur = cur.right
		}
	}
}
