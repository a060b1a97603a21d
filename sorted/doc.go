// Package sorted provides a growable vector that keeps its elements sorted
// while still allowing raw indexed and iterator mutation, deferring the
// cost of re-establishing order until a read actually depends on it.
//
// # State machine
//
// A [Vector] is clean, dirty at one index, or dirty with unknown scope.
// Ordered insertion ([Vector.Push], [Vector.Replace]) preserves clean.
// A single mutable access ([Vector.Set], [Vector.Ref], mutable iterator
// dereference) narrows a clean vector to dirty-at-one-index; a second
// access widens to unknown scope, as does [Vector.Storage] or a merge.
//
// Repair is lazy and proportional to the damage: a single misplaced
// element is relocated with one binary search plus one rotation, while
// unknown-scope damage costs a full sort. Operations that depend on order
// run the pending repair automatically unless autorepair is suspended.
//
// # Batching mutations
//
// To amortize many mutations into one re-sort:
//
//	v.SuspendAutorepair()
//	for i := range n {
//	    v.Set(i, next())
//	}
//	v.ResumeAutorepair() // one full sort
//
// # Searching
//
// The find family ([Vector.Find], [Vector.FindFirst], [Vector.FindLast],
// [Vector.FindNext], [Vector.FindPrev], [Vector.FindFloor],
// [Vector.FindCeil], and the linear variants) searches an inclusive range
// and returns [None] when nothing matches; no search ever returns an
// error. Searches are const: on a dirty vector they fall back to linear
// scans (floor and ceil, which have no meaningful linear analog, return
// None) rather than repairing behind the caller's back.
//
// [Keyed] wraps a vector so lookups can pass a projected key instead of a
// fully constructed element.
//
// # Concurrency
//
// Vectors are single-threaded. Note that mutable element access is a
// hidden writer even when the caller only reads through it: it may trigger
// a repair pass and always marks the vector dirty.
package sorted
