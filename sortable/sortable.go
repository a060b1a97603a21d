// Package sortable defines the comparison contract for elements stored in
// sorted containers, plus wrapper types for common primitives.
package sortable

// Sortable is the element contract for ordered containers. Equals and
// LessThan must describe a single total order: for any a and b, exactly one
// of a.Equals(b), a.LessThan(b), b.LessThan(a) holds.
type Sortable[T any] interface {
	// Equals reports whether the two values compare equal under the order.
	Equals(other T) bool

	// LessThan reports whether this value orders strictly before other.
	LessThan(other T) bool
}

// GreaterThan reports whether a orders strictly after b. It is derived from
// the two interface methods so element types never implement a third one.
func GreaterThan[T Sortable[T]](a, b T) bool {
	return !a.LessThan(b) && !a.Equals(b)
}
