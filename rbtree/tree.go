package rbtree

import (
	"iter"

	"github.com/amp-labs/amp-rbtree/sortable"
)

// Tree is an ordered set of unique keys backed by a red-black tree.
//
// Insert, Delete and Contains run in O(log n). Len is O(1). A Tree must not be
// mutated from several goroutines at once; Stats may be read concurrently.
type Tree[K sortable.Sortable[K]] struct {
	engine engine[K]
	size   int
}

// New creates an empty tree.
func New[K sortable.Sortable[K]](opts ...Option) *Tree[K] {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	if o.stats == nil {
		o.stats = &Stats{}
	}

	return &Tree[K]{engine: newEngine[K](nil, o.logger, o.stats)}
}

// Insert adds key. It returns an error wrapping ErrDuplicateKey, and leaves
// the tree untouched, if key is already present.
func (t *Tree[K]) Insert(key K) error {
	if err := t.engine.insert(key); err != nil {
		return err
	}

	t.size++

	return nil
}

// InsertAll inserts keys in order and stops at the first error. Keys inserted
// before the failure stay in the tree.
func (t *Tree[K]) InsertAll(keys ...K) error {
	for _, key := range keys {
		if err := t.Insert(key); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes key and reports whether it was present.
func (t *Tree[K]) Delete(key K) bool {
	if !t.engine.delete(key) {
		return false
	}

	t.size--

	return true
}

// Contains reports whether key is present.
func (t *Tree[K]) Contains(key K) bool {
	return Contains(t.engine.root, key)
}

// Len returns the number of keys.
func (t *Tree[K]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K]) Height() int {
	return Height(t.engine.root)
}

// BlackHeight returns the black-height of the root.
func (t *Tree[K]) BlackHeight() int {
	return BlackHeight(t.engine.root)
}

// Min returns the smallest key, or false if the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	return Min(t.engine.root)
}

// Max returns the largest key, or false if the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	return Max(t.engine.root)
}

// Seq returns an iterator over the keys in increasing order.
// The tree must not be modified while iterating.
func (t *Tree[K]) Seq() iter.Seq[K] {
	return All(t.engine.root)
}

// Keys returns all keys in increasing order.
func (t *Tree[K]) Keys() []K {
	if t.size == 0 {
		return nil
	}

	keys := make([]K, 0, t.size)
	for key := range t.Seq() {
		keys = append(keys, key)
	}

	return keys
}

// Root exposes the root node for read-only inspection; nil when empty.
func (t *Tree[K]) Root() *Node[K] {
	return t.engine.root
}

// Validate reports whether the tree satisfies the red-black invariants.
func (t *Tree[K]) Validate() bool {
	return Validate(t.engine.root)
}

// Check returns every broken invariant, or nil.
func (t *Tree[K]) Check() error {
	return Check(t.engine.root)
}

// Stats returns the counters the tree records into.
func (t *Tree[K]) Stats() *Stats {
	return t.engine.stats
}

// Clear drops every key. Counters are kept.
func (t *Tree[K]) Clear() {
	t.engine.root = nil
	t.size = 0
}

// String renders the tree sideways, see Printer.
func (t *Tree[K]) String() string {
	return Sprint(t.engine.root)
}
