package sortable

// String is a sortable wrapper for string keys, ordered bytewise.
type String string

var _ Sortable[String] = String("")

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// Byte is a sortable wrapper type for the built-in byte type.
//
// To convert back to a regular byte, use a type conversion:
//
//	var s sortable.Byte = 'x'
//	regularByte := byte(s)
type Byte byte

var _ Sortable[Byte] = Byte(0)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return b == other
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return b < other
}
