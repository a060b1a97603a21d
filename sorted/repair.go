package sorted

import "sort"

// Sort unconditionally re-sorts the storage and resets the state to clean.
// Used whenever the scope of disorder is unknown: construction from an
// arbitrary sequence, merges, and unknown-scope repair.
func (v *Vector[T]) Sort() {
	sort.Slice(v.storage, func(i, j int) bool {
		return v.storage[i].LessThan(v.storage[j])
	})

	v.state = cleanState()
}

// Repair restores the clean invariant. A clean vector is left untouched.
//
// When exactly one index may be out of place, the rest of the sequence is
// already sorted, so an insertion-style relocation suffices: check the two
// adjacent relations around the index, binary-search the target slot in
// the consistent remainder, and rotate the single element into it. Costs
// O(log n) to locate plus O(distance moved) to shift.
//
// When the scope of disorder is unknown, Repair falls back to a full sort.
func (v *Vector[T]) Repair() {
	switch v.state.kind {
	case stateClean:
		return
	case stateDirtyMany:
		v.Sort()

		return
	case stateDirtyAt:
	}

	pos := v.state.pos

	// The searches below assume a clean vector; the prefix and suffix
	// around pos genuinely are sorted, so clearing the state first is
	// sound as long as they stay scoped away from pos.
	v.state = cleanState()

	switch {
	case pos > 0 && v.storage[pos].LessThan(v.storage[pos-1]):
		// Element must move left: find the ceiling slot in the sorted
		// prefix and rotate down to it.
		dst := v.FindCeil(v.storage[pos], 0, pos-1)
		v.shiftRight(dst, pos)
	case pos < len(v.storage)-1 && greaterThan(v.storage[pos], v.storage[pos+1]):
		// Element must move right: find the floor slot in the sorted
		// suffix and rotate up to it.
		dst := v.FindFloor(v.storage[pos], pos+1, len(v.storage)-1)
		v.shiftLeft(pos, dst)
	}
	// Neither adjacent relation violated: the element already sits where
	// it belongs.
}

// shiftRight relocates the element at last down to first, moving every
// element of [first, last-1] one slot toward the end.
func (v *Vector[T]) shiftRight(first, last int) {
	if first == last {
		return
	}

	t := v.storage[last]
	copy(v.storage[first+1:last+1], v.storage[first:last])
	v.storage[first] = t
}

// shiftLeft relocates the element at first up to last, moving every
// element of [first+1, last] one slot toward the front.
func (v *Vector[T]) shiftLeft(first, last int) {
	if first == last {
		return
	}

	t := v.storage[first]
	copy(v.storage[first:last], v.storage[first+1:last+1])
	v.storage[last] = t
}
