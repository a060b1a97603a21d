package sorted

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/sortedvec/sortable"
)

// ErrOutOfRange is returned by checked element access when the index is not
// less than the current length.
var ErrOutOfRange = errors.New("index out of range")

// Vector is a contiguous sequence kept sorted ascending under the element
// ordering. Mutable element access is allowed without an immediate re-sort:
// the vector records what was touched and re-establishes order lazily, just
// before the next operation that depends on it.
//
// A vector is either clean (fully sorted), dirty at a single index (one
// element may be out of place relative to its neighbors), or dirty with
// unknown scope. Repair relocates a single misplaced element in
// O(log n + distance); unknown-scope damage falls back to a full sort.
//
// Vectors are not safe for concurrent use.
type Vector[T sortable.Sortable[T]] struct {
	storage   []T
	state     state
	suspended bool

	// epoch counts structural mutations (insert, erase, clear, assign).
	// Iterators capture it at acquisition and report staleness through
	// Valid.
	epoch uint64
}

// New creates an empty vector.
func New[T sortable.Sortable[T]]() *Vector[T] {
	return &Vector[T]{}
}

// Of creates a vector holding the given elements, sorted.
func Of[T sortable.Sortable[T]](elems ...T) *Vector[T] {
	return From(elems)
}

// From creates a vector from a copy of the given slice. The source is fully
// sorted even if the caller believes it is already ordered; sortedness of
// inputs is never trusted.
func From[T sortable.Sortable[T]](s []T) *Vector[T] {
	v := &Vector[T]{storage: slices.Clone(s)}
	v.Sort()

	return v
}

// Clone creates a copy of the vector, including its corruption state and
// the autorepair suspend flag.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		storage:   slices.Clone(v.storage),
		state:     v.state,
		suspended: v.suspended,
	}
}

// Assign replaces the contents with a copy of the given slice and sorts it.
func (v *Vector[T]) Assign(s []T) {
	v.storage = slices.Clone(s)
	v.epoch++
	v.Sort()
}

// AssignIter replaces the contents with the half-open iterator range
// [first, last) and sorts it. Both iterators must come from the same
// vector; otherwise the call is a no-op.
func (v *Vector[T]) AssignIter(first, last ConstIterator[T]) {
	if first.owner == nil || first.owner != last.owner {
		return
	}

	v.Assign(first.owner.storage[first.pos:last.pos])
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.storage)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return len(v.storage) == 0
}

// Cap returns the capacity of the backing storage.
func (v *Vector[T]) Cap() int {
	return cap(v.storage)
}

// Reserve grows the backing storage so at least n more elements can be
// appended without reallocation.
func (v *Vector[T]) Reserve(n int) {
	v.storage = slices.Grow(v.storage, n)
}

// ShrinkToFit drops unused trailing capacity.
func (v *Vector[T]) ShrinkToFit() {
	v.storage = slices.Clip(v.storage)
}

// Clear removes all elements and resets the vector to the clean state.
// The autorepair suspend flag is left as-is.
func (v *Vector[T]) Clear() {
	v.storage = nil
	v.state = cleanState()
	v.epoch++
}

// Get returns the element at index i without affecting the corruption
// state. Out-of-range indices panic, matching slice semantics.
func (v *Vector[T]) Get(i int) T {
	return v.storage[i]
}

// At is the checked variant of Get. It returns ErrOutOfRange when i is not
// a valid index.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.storage) {
		var zeroVal T

		return zeroVal, fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, len(v.storage))
	}

	return v.storage[i], nil
}

// Front returns the first element. Panics on an empty vector.
func (v *Vector[T]) Front() T {
	return v.storage[0]
}

// Back returns the last element. Panics on an empty vector.
func (v *Vector[T]) Back() T {
	return v.storage[len(v.storage)-1]
}

// touch runs the pre-access repair policy and records a write at pos.
// The pending repair (if any) resolves the previous touch first, so the
// recorded index refers to the post-repair layout.
func (v *Vector[T]) touch(pos int) {
	if !v.suspended {
		v.Repair()
	}

	v.state = v.state.touched(pos)
}

// Set overwrites the element at index i. This is a mutable access: the
// pending repair runs first (unless autorepair is suspended) and the
// vector is marked dirty at i, widening to unknown scope if it was
// already dirty.
func (v *Vector[T]) Set(i int, t T) {
	v.touch(i)
	v.storage[i] = t
}

// Ref returns a mutable pointer to the element at index i, with the same
// corruption-state transition as Set. The pointer is only valid until the
// next structural mutation.
func (v *Vector[T]) Ref(i int) *T {
	v.touch(i)

	return &v.storage[i]
}

// SetFront overwrites the first element.
func (v *Vector[T]) SetFront(t T) {
	v.Set(0, t)
}

// SetBack overwrites the last element.
func (v *Vector[T]) SetBack(t T) {
	v.Set(len(v.storage)-1, t)
}

// Push inserts a new element. On a clean vector it goes directly to its
// ordered position: before the first strictly greater element, or after
// the run of equal elements when equals exist, so duplicates keep their
// encounter order at insertion time. On a dirty vector (autorepair
// suspended, or repair unavailable) the element is appended and the state
// widens to unknown scope, since no local relocation can be proven
// sufficient.
func (v *Vector[T]) Push(t T) {
	if v.state.dirty() && !v.suspended {
		v.Repair()
	}

	if v.state.dirty() {
		v.storage = append(v.storage, t)
		v.state = dirtyMany()
		v.epoch++

		return
	}

	if len(v.storage) == 0 {
		v.storage = append(v.storage, t)
		v.epoch++

		return
	}

	pos := v.FindCeil(t)

	switch {
	case pos == None:
		v.storage = append(v.storage, t)
	case v.storage[pos].Equals(t):
		for pos < len(v.storage) && v.storage[pos].Equals(t) {
			pos++
		}

		v.storage = slices.Insert(v.storage, pos, t)
	default:
		v.storage = slices.Insert(v.storage, pos, t)
	}

	v.epoch++
}

// Replace overwrites an element equal to t with t, if one exists. The
// element found is not necessarily the first of an equal-run. When no equal
// element exists, Replace behaves like Push.
func (v *Vector[T]) Replace(t T) {
	if v.state.dirty() && !v.suspended {
		v.Repair()
	}

	pos := v.Find(t)
	if pos == None {
		v.Push(t)

		return
	}

	// Overwriting an equal element cannot break the order.
	v.storage[pos] = t
}

// Erase removes the element at index i. If the vector is dirty and
// autorepair is active, repair runs first; removal itself cannot break a
// clean invariant, so no re-check follows.
func (v *Vector[T]) Erase(i int) {
	if v.state.dirty() && !v.suspended {
		v.Repair()
	}

	v.storage = slices.Delete(v.storage, i, i+1)
	v.epoch++
}

// EraseRange removes the inclusive index range [first, last].
func (v *Vector[T]) EraseRange(first, last int) {
	if v.state.dirty() && !v.suspended {
		v.Repair()
	}

	v.storage = slices.Delete(v.storage, first, last+1)
	v.epoch++
}

// EraseIter removes the half-open iterator range [first, last). Both
// iterators must belong to this vector; otherwise the call is a no-op.
func (v *Vector[T]) EraseIter(first, last Iterator[T]) {
	if first.owner != v || last.owner != v || first.pos >= last.pos {
		return
	}

	v.EraseRange(first.pos, last.pos-1)
}

// Merge appends every element of other and immediately restores order with
// a full sort. O((n+m) log(n+m)).
func (v *Vector[T]) Merge(other *Vector[T]) {
	v.MergeSlice(other.storage)
}

// MergeSlice appends every element of s and immediately restores order
// with a full sort.
func (v *Vector[T]) MergeSlice(s []T) {
	v.storage = slices.Grow(v.storage, len(s))
	v.storage = append(v.storage, s...)
	v.state = dirtyMany()
	v.epoch++
	v.Repair()
}

// MergeReplace folds every element of other through Replace, giving upsert
// semantics: elements equal to an existing one overwrite it, new elements
// are inserted in order. O(m * (log n + shift)).
func (v *Vector[T]) MergeReplace(other *Vector[T]) {
	v.MergeReplaceSlice(other.storage)
}

// MergeReplaceSlice folds every element of s through Replace.
func (v *Vector[T]) MergeReplaceSlice(s []T) {
	v.storage = slices.Grow(v.storage, len(s))

	for _, t := range s {
		v.Replace(t)
	}
}

// Concat returns a new vector holding the elements of both vectors.
func (v *Vector[T]) Concat(other *Vector[T]) *Vector[T] {
	out := v.Clone()
	out.Merge(other)

	return out
}

// ConcatSlice returns a new vector holding the current elements plus those
// of s.
func (v *Vector[T]) ConcatSlice(s []T) *Vector[T] {
	out := v.Clone()
	out.MergeSlice(s)

	return out
}

// With returns a new vector holding the current elements plus t.
func (v *Vector[T]) With(t T) *Vector[T] {
	out := v.Clone()
	out.Push(t)

	return out
}

// SuspendAutorepair disables the automatic repair that normally precedes
// state-dependent operations, and defensively widens the state to unknown
// scope: until resumed, the vector cannot know how much damage mutable
// access will do. Use it to batch many mutations and pay the re-sort cost
// once, via ResumeAutorepair.
func (v *Vector[T]) SuspendAutorepair() {
	v.suspended = true
	v.state = dirtyMany()
}

// ResumeAutorepair re-enables automatic repair and immediately performs a
// repair pass.
func (v *Vector[T]) ResumeAutorepair() {
	v.suspended = false
	v.Repair()
}

// AutorepairSuspended reports whether automatic repair is currently
// disabled.
func (v *Vector[T]) AutorepairSuspended() bool {
	return v.suspended
}

// Corrupted reports whether sortedness is currently not guaranteed.
func (v *Vector[T]) Corrupted() bool {
	return v.state.dirty()
}

// State returns a human-readable description of the corruption state:
// "clean", "dirty-at", or "dirty-many".
func (v *Vector[T]) State() string {
	return v.state.String()
}

// View returns the backing slice for read-only use. Mutating it through
// this reference bypasses the corruption bookkeeping; use Storage for
// mutable access.
func (v *Vector[T]) View() []T {
	return v.storage
}

// Storage returns the backing slice for arbitrary mutation. The vector can
// no longer vouch for its order afterwards, so the state unconditionally
// widens to unknown scope. The pending repair runs first unless autorepair
// is suspended.
func (v *Vector[T]) Storage() []T {
	if !v.suspended {
		v.Repair()
	}

	v.state = dirtyMany()

	return v.storage
}

// Seq returns an iterator for ranging over all elements in storage order.
// The traversal is a pure read and does not affect the corruption state;
// on a clean vector it yields elements in ascending order.
//
// This method is compatible with Go 1.23+ range-over-func syntax:
//
//	for i, elem := range v.Seq() {
//	    // process index and element
//	}
func (v *Vector[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, t := range v.storage {
			if !yield(i, t) {
				return
			}
		}
	}
}
