// Package sortable provides the element contract for the sorted containers
// in this module, together with wrapper types for common primitives.
//
// # Overview
//
// The package defines the [Sortable] interface and ready-to-use
// implementations for primitive types: [Int], [Int64], [Uint64], [Float64],
// [Byte], [String], [NaturalString], and [Time]. These types are designed
// to work with [github.com/amp-labs/sortedvec/sorted.Vector] and its keyed
// view.
//
// Sortable combines equality with a strict ordering. Greater-than is not
// part of the interface; use [GreaterThan], which derives it from the other
// two methods.
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Account struct {
//	    ID   int64
//	    Name string
//	}
//
//	func (a Account) Equals(other Account) bool {
//	    return a.ID == other.ID
//	}
//
//	func (a Account) LessThan(other Account) bool {
//	    return a.ID < other.ID
//	}
//
// Equals and LessThan must agree on a single total order. Containers in
// this module do not verify consistency; an inconsistent implementation
// produces containers whose search results are undefined.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. Containers using these types may not be
// thread-safe and require external synchronization for concurrent access.
package sortable
