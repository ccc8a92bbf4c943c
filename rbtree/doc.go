// Package rbtree implements a red-black tree over unique keys.
//
// The tree is a self-balancing binary search tree that keeps the following
// properties after every completed insert and delete:
//  1. The root, if any, is black.
//  2. No red node has a red parent or a red child.
//  3. Every nil leaf is black.
//  4. Every path from a node down to the nil leaves beneath it crosses the
//     same number of black nodes.
//  5. An in-order walk of the real nodes yields strictly increasing keys.
//
// These properties bound the height by 2·log2(n+1), so search, insertion and
// deletion are O(log n).
//
// Every leaf position is occupied by its own black sentinel node that knows
// its parent, which lets the fix-up code ask for siblings and nephews at the
// fringe without nil checks.
//
// Two API levels are offered. The functions [Insert], [Delete] and [Validate]
// work on bare roots and return the new root. [Tree] wraps a root with a size
// counter, optional debug logging of every rebalancing step and [Stats].
//
// Neither level is safe for concurrent mutation; callers must serialize
// writers themselves.
package rbtree
