package sorted

import "github.com/amp-labs/sortedvec/sortable"

// None is the reserved "not found" index returned uniformly by every
// search operation. Callers must check for it before using a result as an
// index.
const None = -1

// greaterThan reports whether a orders strictly after b.
func greaterThan[T sortable.Sortable[T]](a, b T) bool {
	return sortable.GreaterThan(a, b)
}

// span normalizes the optional inclusive search bounds accepted by the
// find family: zero values mean the whole vector, one value sets the start
// index, two values set start and end (None as the end means "through the
// last index"). ok is false when the vector is empty or the normalized
// range is inverted.
func (v *Vector[T]) span(bounds []int) (start, end int, ok bool) {
	if len(v.storage) == 0 {
		return 0, 0, false
	}

	start, end = 0, len(v.storage)-1

	if len(bounds) > 0 {
		start = bounds[0]
	}

	if len(bounds) > 1 && bounds[1] != None {
		end = bounds[1]
	}

	if start > end {
		return 0, 0, false
	}

	return start, end, true
}

// Find returns the index of an element equal to t within the inclusive
// range, or None. Each binary-search iteration probes the midpoint, then
// the current low bound, then the current high bound, returning on the
// first match; among duplicates the result is whichever probe matched
// first, not necessarily the first or last occurrence.
//
// On a dirty vector the binary-search assumptions no longer hold and Find
// delegates to FindLinear. O(log n) clean, O(n) dirty.
func (v *Vector[T]) Find(t T, bounds ...int) int {
	start, end, ok := v.span(bounds)
	if !ok {
		return None
	}

	if v.state.dirty() {
		return v.FindLinear(t, start, end)
	}

	f, l := start, end
	m := (f + l) / 2

	for f <= l {
		switch {
		case v.storage[m].Equals(t):
			return m
		case v.storage[f].Equals(t):
			return f
		case v.storage[l].Equals(t):
			return l
		}

		if v.storage[m].LessThan(t) {
			f = m + 1
		} else {
			l = m - 1
		}

		m = (f + l) / 2
	}

	return None
}

// FindFirst returns the lowest index of the equal-run matching t within
// the inclusive range, or None. It locates any match via Find, then scans
// outward to the run boundary. Dirty vectors fall back to
// FindLinearFirst.
func (v *Vector[T]) FindFirst(t T, bounds ...int) int {
	start, end, ok := v.span(bounds)
	if !ok {
		return None
	}

	if v.state.dirty() {
		return v.FindLinearFirst(t, start, end)
	}

	pos := v.Find(t, start, end)
	if pos == None {
		return None
	}

	for pos > start && v.storage[pos-1].Equals(t) {
		pos--
	}

	return pos
}

// FindLast returns the highest index of the equal-run matching t within
// the inclusive range, or None. Dirty vectors fall back to FindLinearLast
// scoped to the same range.
func (v *Vector[T]) FindLast(t T, bounds ...int) int {
	start, end, ok := v.span(bounds)
	if !ok {
		return None
	}

	if v.state.dirty() {
		return v.FindLinearLast(t, start, end)
	}

	pos := v.Find(t, start, end)
	if pos == None {
		return None
	}

	for pos < end && v.storage[pos+1].Equals(t) {
		pos++
	}

	return pos
}

// FindNext returns the next index holding an element equal to the one at
// pos, or None. An optional trailing argument bounds the search (inclusive
// end index). On a clean vector only the immediate neighbor needs
// checking, O(1); on a dirty vector the remaining range is re-searched.
// When pos is already the last index in range, FindNext returns None.
func (v *Vector[T]) FindNext(pos int, endBound ...int) int {
	if len(v.storage) == 0 {
		return None
	}

	end := len(v.storage) - 1
	if len(endBound) > 0 && endBound[0] != None {
		end = endBound[0]
	}

	if pos >= end {
		return None
	}

	if v.state.dirty() {
		return v.FindFirst(v.storage[pos], pos+1, end)
	}

	if v.storage[pos].Equals(v.storage[pos+1]) {
		return pos + 1
	}

	return None
}

// FindPrev returns the previous index holding an element equal to the one
// at pos, or None. An optional trailing argument bounds the search
// (inclusive start index). The clean/dirty split mirrors FindNext.
func (v *Vector[T]) FindPrev(pos int, startBound ...int) int {
	if len(v.storage) == 0 {
		return None
	}

	start := 0
	if len(startBound) > 0 {
		start = startBound[0]
	}

	if pos <= start {
		return None
	}

	if v.state.dirty() {
		return v.FindLast(v.storage[pos], start, pos-1)
	}

	if v.storage[pos].Equals(v.storage[pos-1]) {
		return pos - 1
	}

	return None
}

// FindLinear scans the inclusive range forward for an element equal to t,
// returning the first match or None. It makes no sortedness assumption:
// this is the fallback for corrupted vectors and the escape hatch for
// callers who distrust the invariant. O(range length).
func (v *Vector[T]) FindLinear(t T, bounds ...int) int {
	start, end, ok := v.span(bounds)
	if !ok {
		return None
	}

	for i := start; i <= end; i++ {
		if v.storage[i].Equals(t) {
			return i
		}
	}

	return None
}

// FindLinearFirst returns the first linear match in range. A forward scan
// already yields the first match, so this is the same walk as FindLinear;
// the name exists for symmetry with FindLinearLast.
func (v *Vector[T]) FindLinearFirst(t T, bounds ...int) int {
	return v.FindLinear(t, bounds...)
}

// FindLinearLast scans the inclusive range backward for an element equal
// to t, returning the last match or None.
func (v *Vector[T]) FindLinearLast(t T, bounds ...int) int {
	start, end, ok := v.span(bounds)
	if !ok {
		return None
	}

	for i := end; i >= start; i-- {
		if v.storage[i].Equals(t) {
			return i
		}
	}

	return None
}

// FindFloor returns the largest index in the inclusive range whose element
// is less than or equal to t: None when every element in range exceeds t,
// the end index when every element is less. Floor is only defined on a
// clean vector; a dirty vector returns None unconditionally and callers
// must repair first for a meaningful result.
func (v *Vector[T]) FindFloor(t T, bounds ...int) int {
	start, end, ok := v.span(bounds)
	if !ok || v.state.dirty() {
		return None
	}

	if greaterThan(v.storage[start], t) {
		return None
	}

	if v.storage[end].LessThan(t) {
		return end
	}

	f, l := start, end
	for f < l {
		m := (f + l + 1) / 2
		if greaterThan(v.storage[m], t) {
			l = m - 1
		} else {
			f = m
		}
	}

	return f
}

// FindCeil returns the smallest index in the inclusive range whose element
// is greater than or equal to t: the start index when the first element
// already reaches t, None when every element in range is less. Like
// FindFloor it is only defined on a clean vector and returns None
// unconditionally on a dirty one.
func (v *Vector[T]) FindCeil(t T, bounds ...int) int {
	start, end, ok := v.span(bounds)
	if !ok || v.state.dirty() {
		return None
	}

	if !v.storage[start].LessThan(t) {
		return start
	}

	if v.storage[end].LessThan(t) {
		return None
	}

	f, l := start, end
	for f < l {
		m := (f + l) / 2
		if v.storage[m].LessThan(t) {
			f = m + 1
		} else {
			l = m
		}
	}

	return f
}
