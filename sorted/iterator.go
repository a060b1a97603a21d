package sorted

import "github.com/amp-labs/sortedvec/sortable"

// Iterator is a forward iterator with mutable access to its owning vector.
// It is a position plus a non-owning back-reference; equality compares
// owner identity and position. Iterators do not survive structural
// mutations (insert, erase, clear, assign) performed through other
// handles: each iterator captures the vector's epoch at acquisition and
// Valid reports false once the epochs diverge.
type Iterator[T sortable.Sortable[T]] struct {
	pos   int
	owner *Vector[T]
	epoch uint64
}

// ConstIterator is the read-only counterpart of Iterator. Acquiring and
// dereferencing it never changes the corruption state.
type ConstIterator[T sortable.Sortable[T]] struct {
	pos   int
	owner *Vector[T]
	epoch uint64
}

// Begin returns a mutable iterator at the first element. Acquiring it is a
// non-const access: the pending repair runs first and the vector is marked
// dirty, exactly like indexed mutable access.
func (v *Vector[T]) Begin() Iterator[T] {
	v.touch(0)

	return Iterator[T]{pos: 0, owner: v, epoch: v.epoch}
}

// End returns the past-the-end position marker. It is a pure marker and
// triggers no corruption-state change.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{pos: len(v.storage), owner: v, epoch: v.epoch}
}

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{pos: 0, owner: v, epoch: v.epoch}
}

// CEnd returns the read-only past-the-end position marker.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{pos: len(v.storage), owner: v, epoch: v.epoch}
}

// Next advances the iterator one position.
func (it *Iterator[T]) Next() {
	it.pos++
}

// Add returns an iterator offset forward by n positions.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n

	return it
}

// Sub returns an iterator offset backward by n positions. The offset is
// not bounds-checked.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n

	return it
}

// Pos returns the iterator's position index.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Equal reports whether both iterators reference the same position of the
// same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.owner == other.owner && it.pos == other.pos
}

// Valid reports whether the iterator is safe to dereference: it has an
// owner, its position is in range, and no structural mutation has happened
// since it was acquired.
func (it Iterator[T]) Valid() bool {
	return it.owner != nil &&
		it.epoch == it.owner.epoch &&
		it.pos >= 0 && it.pos < it.owner.Len()
}

// Value returns the element under the iterator without affecting the
// corruption state.
func (it Iterator[T]) Value() T {
	return it.owner.storage[it.pos]
}

// Set overwrites the element under the iterator. Like any mutable element
// access it runs the pending repair and marks the vector dirty.
func (it Iterator[T]) Set(t T) {
	it.owner.Set(it.pos, t)
}

// Ref returns a mutable pointer to the element under the iterator, with
// the same corruption-state transition as Set.
func (it Iterator[T]) Ref() *T {
	return it.owner.Ref(it.pos)
}

// Next advances the iterator one position.
func (it *ConstIterator[T]) Next() {
	it.pos++
}

// Add returns an iterator offset forward by n positions.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.pos += n

	return it
}

// Sub returns an iterator offset backward by n positions. The offset is
// not bounds-checked.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	it.pos -= n

	return it
}

// Pos returns the iterator's position index.
func (it ConstIterator[T]) Pos() int {
	return it.pos
}

// Equal reports whether both iterators reference the same position of the
// same vector.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.owner == other.owner && it.pos == other.pos
}

// Valid reports whether the iterator is safe to dereference.
func (it ConstIterator[T]) Valid() bool {
	return it.owner != nil &&
		it.epoch == it.owner.epoch &&
		it.pos >= 0 && it.pos < it.owner.Len()
}

// Value returns the element under the iterator.
func (it ConstIterator[T]) Value() T {
	return it.owner.storage[it.pos]
}
