package sortable

import "strconv"

// Int is a sortable wrapper type for the built-in int type.
//
//	tree := rbtree.New[sortable.Int]()
//	_ = tree.InsertAll(41, 38, 31)
//	// tree.Keys() == []sortable.Int{31, 38, 41}
//
// Untyped integer constants convert implicitly, so literal key lists need no casts.
type Int int

var _ Sortable[Int] = Int(0)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return i < other
}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// Int64 is a sortable wrapper for int64 keys, e.g. timestamps or price ticks.
type Int64 int64

var _ Sortable[Int64] = Int64(0)

func (i Int64) Equals(other Int64) bool {
	return i == other
}

func (i Int64) LessThan(other Int64) bool {
	return i < other
}

func (i Int64) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Float64 is a sortable wrapper for float64 keys. NaN sorts before every other
// value and equals itself, matching cmp.Compare, so it can be stored once.
type Float64 float64

var _ Sortable[Float64] = Float64(0)

func (f Float64) Equals(other Float64) bool {
	return Compare(Ordered[float64]{float64(f)}, Ordered[float64]{float64(other)}) == 0
}

func (f Float64) LessThan(other Float64) bool {
	return Ordered[float64]{float64(f)}.LessThan(Ordered[float64]{float64(other)})
}

func (f Float64) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
