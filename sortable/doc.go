// Package sortable provides the [Sortable] key contract used by
// [github.com/amp-labs/amp-rbtree/rbtree] together with ready-made wrappers
// for common primitive types: [Int], [Int64], [Float64], [String] and [Byte].
//
// # Usage
//
//	tree := rbtree.New[sortable.Int]()
//	_ = tree.InsertAll(42, 10, 25)
//
//	for key := range tree.Seq() {
//	    fmt.Println(int(key)) // 10, 25, 42
//	}
//
// Any type satisfying [cmp.Ordered] can be used through [Ordered] and [Of]
// instead of writing a wrapper.
//
// # Custom Keys
//
// Implement Equals and LessThan consistently: exactly one of a.LessThan(b),
// a.Equals(b), b.LessThan(a) must hold for any pair. The tree relies on this to
// reject duplicates and to keep in-order traversal strictly increasing.
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Equals(o Version) bool { return v == o }
//
//	func (v Version) LessThan(o Version) bool {
//	    if v.Major != o.Major {
//	        return v.Major < o.Major
//	    }
//	    return v.Minor < o.Minor
//	}
//
// # Thread Safety
//
// The wrapper types are immutable values. Trees keyed by them are not safe for
// concurrent mutation and need external synchronization.
package sortable
