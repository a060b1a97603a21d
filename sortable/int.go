package sortable

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, allowing integers to be stored
// in sorted containers like sorted.Vector.
//
// Example:
//
//	v := sorted.New[sortable.Int]()
//	v.Push(sortable.Int(5))
//	v.Push(sortable.Int(3))
//	v.Push(sortable.Int(7))
//	// Traversal yields: 3, 5, 7 (sorted order)
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Int64 is a sortable wrapper type for the built-in int64 type.
type Int64 int64

var _ Sortable[Int64] = (*Int64)(nil)

// Equals returns true if this Int64 has the same value as the other Int64.
func (i Int64) Equals(other Int64) bool {
	return int64(i) == int64(other)
}

// LessThan returns true if this Int64 is numerically less than the other Int64.
func (i Int64) LessThan(other Int64) bool {
	return int64(i) < int64(other)
}

// Uint64 is a sortable wrapper type for the built-in uint64 type.
type Uint64 uint64

var _ Sortable[Uint64] = (*Uint64)(nil)

// Equals returns true if this Uint64 has the same value as the other Uint64.
func (u Uint64) Equals(other Uint64) bool {
	return uint64(u) == uint64(other)
}

// LessThan returns true if this Uint64 is numerically less than the other Uint64.
func (u Uint64) LessThan(other Uint64) bool {
	return uint64(u) < uint64(other)
}
